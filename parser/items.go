package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/token"
)

// parseItem dispatches on an optional leading `pub` and then the item
// keyword.
func (p *Parser) parseItem() (*ast.Item, *errordefs.SyntaxError) {
	public := false
	if p.current().Kind == token.Keyword(token.Pub) {
		public = true
		p.advance()
	}

	tok := p.current()
	var kind ast.ItemKind

	switch tok.Kind {
	case token.Keyword(token.Const):
		c, err := p.parseConst()
		if err != nil {
			return nil, err
		}
		kind = c
	case token.Keyword(token.Static):
		s, err := p.parseStatic()
		if err != nil {
			return nil, err
		}
		kind = s
	case token.Keyword(token.Func):
		f, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		kind = f
	default:
		return nil, errordefs.Syntax(errordefs.UnexpectedKind(errordefs.SourceToken)).
			Ctx(errordefs.SpanContext(tok.Span, p.src))
	}

	return &ast.Item{Public: public, Kind: kind}, nil
}

// parseConst is `const IDENT : TYPE = EXPR ;`.
func (p *Parser) parseConst() (*ast.Constant, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.Const)); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.Identifier())
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Punctuation(token.Colon)); err != nil {
		return nil, err
	}

	typeNode, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PunctuationAssignment(token.AssignStraight)); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Punctuation(token.Semicolon)); err != nil {
		return nil, err
	}

	return &ast.Constant{Name: nameTok.Value, Type: typeNode, Value: value}, nil
}

// parseStatic is `static [mut] IDENT [: TYPE] = EXPR ;`.
func (p *Parser) parseStatic() (*ast.Static, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.Static)); err != nil {
		return nil, err
	}

	mutable := false
	if p.current().Kind == token.Keyword(token.Mut) {
		mutable = true
		p.advance()
	}

	nameTok, err := p.expect(token.Identifier())
	if err != nil {
		return nil, err
	}

	var typeNode *ast.TypeNode
	if p.current().Kind == token.Punctuation(token.Colon) {
		p.advance()
		typeNode, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.PunctuationAssignment(token.AssignStraight)); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Punctuation(token.Semicolon)); err != nil {
		return nil, err
	}

	return &ast.Static{Name: nameTok.Value, Type: typeNode, Value: value, Mutable: mutable}, nil
}
