package eval

import (
	"testing"

	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/scope"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(input)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return Eval(program, scope.New())
}

func TestEvalIntegerExpression(t *testing.T) {
	cases := map[string]int64{
		"5":                         5,
		"10":                        10,
		"-5":                        -5,
		"5 + 5 + 5 + 5 - 10":        10,
		"2 * 2 * 2 * 2 * 2":         32,
		"5 * 2 + 10":                20,
		"5 + 2 * 10":                25,
		"20 + 2 * -10":              0,
		"50 / 2 * 2 + 10":           60,
		"2 * (5 + 10)":              30,
		"3 * 3 * 3 + 10":            37,
		"(5 + 10 * 2 + 15 / 3) * 2 + -10": 50,
	}
	for input, want := range cases {
		result := testEval(t, input)
		integer, ok := result.(*object.Integer)
		require.True(t, ok, "input %s: not an Integer, got %T (%+v)", input, result, result)
		require.Equal(t, want, integer.Value, "input: %s", input)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	cases := map[string]bool{
		"true":             true,
		"false":            false,
		"1 < 2":            true,
		"1 > 2":            false,
		"1 == 1":           true,
		"1 != 1":           false,
		"true == true":     true,
		"true != false":    true,
		"(1 < 2) == true":  true,
		"(1 < 2) == false": false,
	}
	for input, want := range cases {
		result := testEval(t, input)
		boolean, ok := result.(*object.Boolean)
		require.True(t, ok, "input %s: not a Boolean, got %T", input, result)
		require.Equal(t, want, boolean.Value, "input: %s", input)
	}
}

func TestBangOperator(t *testing.T) {
	cases := map[string]bool{
		"!true":  false,
		"!false": true,
		"!5":     false,
		"!!true": true,
		"!!5":    true,
	}
	for input, want := range cases {
		result := testEval(t, input).(*object.Boolean)
		require.Equal(t, want, result.Value, "input: %s", input)
	}
}

func TestTruthinessOfZeroAndNull(t *testing.T) {
	result := testEval(t, "if (0) { 1 } else { 2 }")
	require.Equal(t, int64(1), result.(*object.Integer).Value)

	result = testEval(t, "if (null) { 1 } else { 2 }")
	require.Equal(t, int64(2), result.(*object.Integer).Value)
}

func TestIfElseExpressions(t *testing.T) {
	require.Equal(t, int64(10), testEval(t, "if (true) { 10 }").(*object.Integer).Value)
	require.Equal(t, NULL, testEval(t, "if (false) { 10 }"))
	require.Equal(t, int64(10), testEval(t, "if (1) { 10 }").(*object.Integer).Value)
	require.Equal(t, int64(10), testEval(t, "if (1 < 2) { 10 }").(*object.Integer).Value)
	require.Equal(t, NULL, testEval(t, "if (1 > 2) { 10 }"))
	require.Equal(t, int64(20), testEval(t, "if (1 > 2) { 10 } else { 20 }").(*object.Integer).Value)
}

func TestReturnStatements(t *testing.T) {
	cases := map[string]int64{
		"return 10;":                9999, // placeholder overwritten below
		"return 10; 9;":             10,
		"return 2 * 5; 9;":          10,
		"9; return 2 * 5; 9;":       10,
		"if (10 > 1) { if (10 > 1) { return 10; } return 1; }": 10,
	}
	delete(cases, "return 10;")
	cases["return 10;"] = 10
	for input, want := range cases {
		result := testEval(t, input)
		integer, ok := result.(*object.Integer)
		require.True(t, ok, "input %s: got %T", input, result)
		require.Equal(t, want, integer.Value, "input: %s", input)
	}
}

func TestErrorHandling(t *testing.T) {
	cases := map[string]string{
		"5 + true;":                           "type mismatch: INTEGER + BOOLEAN",
		"5 + true; 5;":                        "type mismatch: INTEGER + BOOLEAN",
		"-true":                               "unknown operator: -BOOLEAN",
		"true + false;":                       "unknown operator: BOOLEAN + BOOLEAN",
		"5; true + false; 5":                  "unknown operator: BOOLEAN + BOOLEAN",
		"if (10 > 1) { true + false; }":       "unknown operator: BOOLEAN + BOOLEAN",
		"if (10 > 1) { if (10 > 1) { return true + false; }; return 1; };": "unknown operator: BOOLEAN + BOOLEAN",
		"foobar":                              "identifier not found: foobar",
		`"Hello" - "World"`:                   "unknown operator: STRING - STRING",
	}
	for input, wantMsg := range cases {
		result := testEval(t, input)
		errObj, ok := result.(*object.Error)
		require.True(t, ok, "input %s: expected Error, got %T (%+v)", input, result, result)
		require.Equal(t, wantMsg, errObj.Message, "input: %s", input)
	}
}

func TestErrorShortCircuit(t *testing.T) {
	result := testEval(t, `(1 + true) + (1 / 0);`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "type mismatch: INTEGER + BOOLEAN", errObj.Message)
}

func TestLetStatements(t *testing.T) {
	cases := map[string]int64{
		"let a = 5; a;":                               5,
		"let a = 5 * 5; a;":                            25,
		"let a = 5; let b = a; b;":                     5,
		"let a = 5; let b = a; let c = a + b + 5; c;":   15,
	}
	for input, want := range cases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}
}

func TestFunctionObject(t *testing.T) {
	result := testEval(t, "fn(x) { x + 2; };")
	fn := result
	require.Equal(t, object.FUNCTION_OBJ, fn.Type())
}

func TestFunctionApplication(t *testing.T) {
	cases := map[string]int64{
		"let identity = fn(x) { x; }; identity(5);":             5,
		"let identity = fn(x) { return x; }; identity(5);":      5,
		"let double = fn(x) { x * 2; }; double(5);":              10,
		"let add = fn(x, y) { x + y; }; add(5, 5);":               10,
		"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));":  20,
		"fn(x) { x; }(5)":                                        5,
	}
	for input, want := range cases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}
}

func TestClosures(t *testing.T) {
	input := `let newAdder = fn(x) { fn(y) { x + y }; }; let addTwo = newAdder(2); addTwo(3);`
	require.Equal(t, int64(5), testEval(t, input).(*object.Integer).Value)
}

func TestStringLiteral(t *testing.T) {
	result := testEval(t, `"Hello World!"`)
	str, ok := result.(*object.String)
	require.True(t, ok)
	require.Equal(t, "Hello World!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	result := testEval(t, `"Hello" + " " + "World!"`)
	str := result.(*object.String)
	require.Equal(t, "Hello World!", str.Value)
}

func TestBuiltinFunctions(t *testing.T) {
	intCases := map[string]int64{
		`len("")`:              0,
		`len("four")`:          4,
		`len("hello world")`:   11,
		`len([1, 2, 3])`:       3,
		`len([])`:              0,
	}
	for input, want := range intCases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}

	errCases := map[string]string{
		`len(1)`:          "argument to `len` not supported, got INTEGER",
		`len("one", "two")`: "wrong number of arguments. got=2, want=1",
	}
	for input, want := range errCases {
		result := testEval(t, input)
		errObj, ok := result.(*object.Error)
		require.True(t, ok, "input %s: got %T", input, result)
		require.Equal(t, want, errObj.Message, "input: %s", input)
	}
}

func TestArrayLiterals(t *testing.T) {
	result := testEval(t, "[1, 2 * 2, 3 + 3]")
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	require.Equal(t, int64(1), arr.Elements[0].(*object.Integer).Value)
	require.Equal(t, int64(4), arr.Elements[1].(*object.Integer).Value)
	require.Equal(t, int64(6), arr.Elements[2].(*object.Integer).Value)
}

func TestArrayIndexExpressions(t *testing.T) {
	nullCases := []string{
		"[1, 2, 3][3]",
		"[1, 2, 3][-1]",
		"[][0]",
	}
	for _, input := range nullCases {
		require.Equal(t, NULL, testEval(t, input), "input: %s", input)
	}

	intCases := map[string]int64{
		"[1, 2, 3][0]":                                1,
		"[1, 2, 3][1]":                                2,
		"[1, 2, 3][2]":                                3,
		"let i = 0; [1][i];":                           1,
		"let myArray = [1, 2, 3]; myArray[2];":          3,
		"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];": 6,
		"let myArray = [1, 2, 3]; let i = myArray[0]; myArray[i]":        2,
	}
	for input, want := range intCases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}
}

func TestPushDoesNotMutate(t *testing.T) {
	result := testEval(t, "let a = [1]; push(a, 2); len(a);")
	require.Equal(t, int64(1), result.(*object.Integer).Value)
}

func TestHashLiterals(t *testing.T) {
	input := `let two = "two";
	{
		"one": 10 - 9,
		two: 1 + 1,
		"thr" + "ee": 6 / 2,
		4: 4,
		true: 5,
		false: 6
	}`

	result := testEval(t, input)
	hash, ok := result.(*object.Hash)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 6)
}

func TestHashIndexExpressions(t *testing.T) {
	nullCases := []string{
		`{"foo": 5}["bar"]`,
		`{}["foo"]`,
	}
	for _, input := range nullCases {
		require.Equal(t, NULL, testEval(t, input), "input: %s", input)
	}

	intCases := map[string]int64{
		`{"foo": 5}["foo"]`:          5,
		`let key = "foo"; {"foo": 5}[key]`: 5,
		`{5: 5}[5]`:                  5,
		`{true: 5}[true]`:            5,
		`{false: 5}[false]`:          5,
	}
	for input, want := range intCases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}
}

func TestBuiltinNullIsFalsy(t *testing.T) {
	cases := map[string]int64{
		"if (first([])) { 1 } else { 2 }": 2,
		"if (last([])) { 1 } else { 2 }":  2,
		"if (rest([])) { 1 } else { 2 }":  2,
		"!first([])":                      0, // placeholder, removed below and checked as a Boolean
	}
	delete(cases, "!first([])")
	for input, want := range cases {
		require.Equal(t, want, testEval(t, input).(*object.Integer).Value, "input: %s", input)
	}

	require.Equal(t, TRUE, testEval(t, "!first([])"))
	require.Equal(t, TRUE, testEval(t, "!last([])"))
	require.Equal(t, TRUE, testEval(t, "!rest([])"))
}

func TestStructuralEquality(t *testing.T) {
	boolCases := map[string]bool{
		"[1, 2] == [1, 2]":                       true,
		"[1, 2] == [1, 3]":                       false,
		"[1, 2] != [1, 3]":                       true,
		"[1, [2, 3]] == [1, [2, 3]]":              true,
		"[] == []":                               true,
		`{"a": 1} == {"a": 1}`:                   true,
		`{"a": 1} == {"a": 2}`:                    false,
		`{"a": 1, "b": 2} == {"b": 2, "a": 1}`:    true,
		"null == null":                            true,
	}
	for input, want := range boolCases {
		result := testEval(t, input)
		boolean, ok := result.(*object.Boolean)
		require.True(t, ok, "input %s: not a Boolean, got %T (%+v)", input, result, result)
		require.Equal(t, want, boolean.Value, "input: %s", input)
	}
}

func TestUnusableHashKey(t *testing.T) {
	result := testEval(t, `{"name": "Monkey"}[fn(x) { x }]`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	require.Contains(t, errObj.Message, "unusable as hash key")
}

func TestEndToEndScenarios(t *testing.T) {
	require.Equal(t, int64(50), testEval(t, "(5 + 10 * 2 + 15 / 3) * 2 + -10;").(*object.Integer).Value)

	require.Equal(t, int64(20), testEval(t, "let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));").(*object.Integer).Value)

	require.Equal(t, int64(5), testEval(t, "let newAdder = fn(x){ fn(y){ x+y } }; let addTwo = newAdder(2); addTwo(3);").(*object.Integer).Value)

	err := testEval(t, "if (10 > 1) { if (10 > 1) { return true + false; }; return 1; };").(*object.Error)
	require.Equal(t, "unknown operator: BOOLEAN + BOOLEAN", err.Message)

	require.Equal(t, int64(3), testEval(t, `let two = "two"; {"one": 10-9, two: 1+1, "thr"+"ee": 6/2}["three"];`).(*object.Integer).Value)

	mapResult := testEval(t, `let map = fn(arr, f){ let iter = fn(a, acc){ if (len(a)==0) { acc } else { iter(rest(a), push(acc, f(first(a)))) } }; iter(arr, []) }; map([1,2,3], fn(x){ x*2 });`)
	arr := mapResult.(*object.Array)
	require.Len(t, arr.Elements, 3)
	require.Equal(t, int64(2), arr.Elements[0].(*object.Integer).Value)
	require.Equal(t, int64(4), arr.Elements[1].(*object.Integer).Value)
	require.Equal(t, int64(6), arr.Elements[2].(*object.Integer).Value)
}

func TestArityMismatchIsSilentZip(t *testing.T) {
	result := testEval(t, "let add = fn(x, y) { x + y; }; add(1);")
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "identifier not found: y", errObj.Message)
}

func TestDivisionByZero(t *testing.T) {
	result := testEval(t, "1 / 0")
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "division by zero", errObj.Message)
}
