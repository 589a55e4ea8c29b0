package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/token"
)

// parseType captures an identifier token as a raw type name. This is the
// widening point ast.TypeNode documents: a later pass can replace this
// with a structured type grammar without touching callers.
func (p *Parser) parseType() (*ast.TypeNode, *errordefs.SyntaxError) {
	tok, err := p.expect(token.Identifier())
	if err != nil {
		return nil, err
	}
	return &ast.TypeNode{Raw: tok.Value}, nil
}
