// Package parser implements the hand-written recursive-descent parser of
// spec section 4.F: a single pass over a random-access token slice that
// produces a strongly-typed ast.Project.
//
// The struct shape — a parser holding the token slice, a cursor, and an
// accumulated error list — follows the reference Rust parser's Parser
// struct; expect/expect_multiple follow its validation helpers. Unlike
// the reference, every parse_X function here leaves the cursor exactly
// one past its own last consumed token on success, a single uniform
// "post-advance" convention applied throughout rather than the
// reference's mix of pre- and post-advance call sites, which left a
// nested if/while statement without an else clause one token short of
// consistent with the rest of the grammar.
package parser

import (
	"strings"

	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/source"
	"github.com/meowind/meowind/token"
)

// Parser holds the mutable state of one parse pass.
type Parser struct {
	Project *ast.Project
	Errors  []*errordefs.SyntaxError

	tokens []token.Token
	src    *source.File
	cursor int
}

// New builds a Parser over tokens, anchoring diagnostics to src.
func New(tokens []token.Token, src *source.File, projectName string, kind ast.ProjectKind) *Parser {
	return &Parser{
		Project: ast.NewProject(projectName, kind),
		tokens:  tokens,
		src:     src,
	}
}

// Parse runs a Parser over tokens to completion and returns it.
func Parse(tokens []token.Token, src *source.File, projectName string, kind ast.ProjectKind) *Parser {
	p := New(tokens, src, projectName, kind)
	p.process()
	return p
}

// process parses one Item at a time until EOF. An Item-level failure is
// recorded and parsing stops — the front end commits fully-formed items
// only.
func (p *Parser) process() {
	if len(p.tokens) == 0 {
		return
	}

	for p.current().Kind != token.EOF() {
		item, err := p.parseItem()
		if err != nil {
			p.Errors = append(p.Errors, err)
			return
		}
		p.Project.Root.Items = append(p.Project.Root.Items, item)
	}
}

func (p *Parser) current() token.Token {
	if p.cursor >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.cursor]
}

func (p *Parser) previous() (token.Token, bool) {
	if p.cursor == 0 {
		return token.Token{}, false
	}
	return p.tokens[p.cursor-1], true
}

func (p *Parser) advance() {
	p.cursor++
}

// expect validates the current token's kind, consuming and returning it
// on a match. On mismatch it anchors the diagnostic at the end of the
// previous token when one exists (so "expected ;" points just after the
// token that should have been followed by one), falling back to the
// current token's start.
func (p *Parser) expect(kind token.Kind) (token.Token, *errordefs.SyntaxError) {
	tok := p.current()
	if tok.Kind == kind {
		p.advance()
		return tok, nil
	}

	anchor := source.NewPoint(tok.Span.Start.Line, tok.Span.Start.Col)
	if prev, ok := p.previous(); ok {
		anchor = source.NewPoint(prev.Span.End.Line, prev.Span.End.Col)
	}

	return token.Token{}, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceToken)).
		Msg("expected %s", kind.String()).
		Ctx(errordefs.PointContext(anchor, p.src))
}

// expectMultiple accepts any one of kinds, consuming and returning the
// current token on a match.
func (p *Parser) expectMultiple(kinds []token.Kind) (token.Token, *errordefs.SyntaxError) {
	tok := p.current()
	for _, k := range kinds {
		if tok.Kind == k {
			p.advance()
			return tok, nil
		}
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return token.Token{}, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceToken)).
		Msg("expected %s", strings.Join(names, " or ")).
		Ctx(errordefs.SpanContext(tok.Span, p.src))
}
