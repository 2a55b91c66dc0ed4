package eval

import (
	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/scope"
)

// evalIndexExpression implements spec.md §4.3.2's IndexExpr rule.
func evalIndexExpression(node *parser.IndexExpression, env *scope.Environment) object.Object {
	left := Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := Eval(node.Index, env)
	if isError(index) {
		return index
	}

	switch {
	case left.Type() == object.ARRAY_OBJ && index.Type() == object.INTEGER_OBJ:
		return evalArrayIndexExpression(left, index)
	case left.Type() == object.HASH_OBJ:
		return evalHashIndexExpression(left, index)
	default:
		return newError("index operator not supported: %s[%s]", left.Type(), index.Type())
	}
}

func evalArrayIndexExpression(array, index object.Object) object.Object {
	arrayObject := array.(*object.Array)
	idx := index.(*object.Integer).Value
	max := int64(len(arrayObject.Elements) - 1)

	if idx < 0 || idx > max {
		return NULL
	}
	return arrayObject.Elements[idx]
}

func evalHashIndexExpression(hash, index object.Object) object.Object {
	hashObject := hash.(*object.Hash)

	key, ok := index.(object.Hashable)
	if !ok {
		return newError("unusable as hash key: %s", index.Inspect())
	}

	pair, ok := hashObject.Pairs[key.HashKey()]
	if !ok {
		return NULL
	}
	return pair.Value
}

// evalHashLiteral implements spec.md §4.3.2's HashLit rule.
func evalHashLiteral(node *parser.HashLiteral, env *scope.Environment) object.Object {
	pairs := make(map[object.HashKey]object.HashPair, len(node.Pairs))

	for _, pairNode := range node.Pairs {
		key := Eval(pairNode.Key, env)
		if isError(key) {
			return key
		}

		hashKey, ok := key.(object.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Inspect())
		}

		value := Eval(pairNode.Value, env)
		if isError(value) {
			return value
		}

		pairs[hashKey.HashKey()] = object.HashPair{Key: key, Value: value}
	}
	return &object.Hash{Pairs: pairs}
}
