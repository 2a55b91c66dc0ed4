package parser

import "github.com/adaeze-chen/lumen/lexer"

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past the peek token if it has type t, otherwise records
// a peekError and leaves the token stream untouched.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.addErrorf("expected next token to be %s, got %s (%q) instead", t, p.peekToken.Type, p.peekToken.Literal)
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	p.addErrorf("no prefix parse function for %s found", t)
}
