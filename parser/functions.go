package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/token"
)

// parseFunction is `func IDENT ( ARGS ) [ -> TYPE [ : TYPE ] ] BODY`.
// When the `-> T1 : T2` form is used, T1.Raw becomes the named return
// variable and T2 becomes the declared return type.
func (p *Parser) parseFunction() (*ast.Function, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.Func)); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.Identifier())
	if err != nil {
		return nil, err
	}

	args, err := p.parseFunctionArguments()
	if err != nil {
		return nil, err
	}

	var typeNode *ast.TypeNode
	var returnVar *string

	if p.current().Kind == token.Punctuation(token.ReturnSeparator) {
		p.advance()
		typeNode, err = p.parseType()
		if err != nil {
			return nil, err
		}

		if p.current().Kind == token.Punctuation(token.Colon) {
			p.advance()
			rv := typeNode.Raw
			returnVar = &rv

			typeNode, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:      nameTok.Value,
		Args:      args,
		Type:      typeNode,
		ReturnVar: returnVar,
		Body:      body,
	}, nil
}

// parseFunctionArguments is a comma-separated `( IDENT [: TYPE] [= EXPR], ... )`
// list, each entry satisfying the at-least-one-of type/default invariant.
func (p *Parser) parseFunctionArguments() ([]*ast.Arg, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Punctuation(token.ParenOpen)); err != nil {
		return nil, err
	}

	var args []*ast.Arg

	for {
		if p.current().Kind == token.Punctuation(token.ParenClose) || p.current().Kind == token.EOF() {
			break
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

		var def ast.Expression
		if p.current().Kind == token.PunctuationAssignment(token.AssignStraight) {
			p.advance()
			def, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}

		if typeNode == nil && def == nil {
			return nil, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceToken)).
				Msg("argument requires type or default value").
				Ctx(errordefs.SpanContext(nameTok.Span, p.src))
		}

		args = append(args, &ast.Arg{Name: nameTok.Value, Type: typeNode, Default: def})

		if p.current().Kind != token.Punctuation(token.Comma) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(token.Punctuation(token.ParenClose)); err != nil {
		return nil, err
	}

	return args, nil
}
