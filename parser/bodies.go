package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/token"
)

// parseBody reads either a brace-delimited multiline body or a single
// `=>`-introduced inline element.
func (p *Parser) parseBody() (*ast.Body, *errordefs.SyntaxError) {
	tok, err := p.expectMultiple([]token.Kind{
		token.Punctuation(token.BraceOpen),
		token.Punctuation(token.InlineBody),
	})
	if err != nil {
		return nil, err
	}

	if tok.Kind == token.Punctuation(token.BraceOpen) {
		elements, err := p.parseMultilineBodyElements()
		if err != nil {
			return nil, err
		}
		return &ast.Body{Kind: &ast.MultilineBody{Elements: elements}}, nil
	}

	element, err := p.parseBodyElement()
	if err != nil {
		return nil, err
	}
	return &ast.Body{Kind: &ast.InlineBody{Element: element}}, nil
}

// parseMultilineBodyElements reads elements until `}` or EOF; the
// opening brace is assumed already consumed.
func (p *Parser) parseMultilineBodyElements() ([]*ast.Element, *errordefs.SyntaxError) {
	var elements []*ast.Element

	for {
		if p.current().Kind == token.Punctuation(token.BraceClose) || p.current().Kind == token.EOF() {
			break
		}

		el, err := p.parseBodyElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}

	if _, err := p.expect(token.Punctuation(token.BraceClose)); err != nil {
		return nil, err
	}

	return elements, nil
}

// parseBodyElement is `;` → Empty, `{` → nested multiline body, else a
// Statement.
func (p *Parser) parseBodyElement() (*ast.Element, *errordefs.SyntaxError) {
	if p.current().Kind == token.Punctuation(token.Semicolon) {
		p.advance()
		return &ast.Element{Kind: ast.EmptyElement{}}, nil
	}

	if p.current().Kind == token.Punctuation(token.BraceOpen) {
		p.advance()
		elements, err := p.parseMultilineBodyElements()
		if err != nil {
			return nil, err
		}
		return &ast.Element{Kind: ast.NestedBodyElement{Body: &ast.Body{Kind: &ast.MultilineBody{Elements: elements}}}}, nil
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Element{Kind: ast.StatementElement{Statement: stmt}}, nil
}
