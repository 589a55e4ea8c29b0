package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/source"
	"github.com/meowind/meowind/token"
)

// parseExpression rejects EOF, then enters the precedence-climbing
// grammar at its lowest level.
func (p *Parser) parseExpression() (ast.Expression, *errordefs.SyntaxError) {
	tok := p.current()
	if tok.Kind == token.EOF() {
		return nil, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceExpression)).
			Ctx(errordefs.PointContext(source.NewPoint(tok.Span.Start.Line, tok.Span.Start.Col), p.src))
	}
	return p.parseAssignmentExpression()
}

// parseAssignmentExpression is right-associative: `a = b = c` parses as
// `a = (b = c)`.
func (p *Parser) parseAssignmentExpression() (ast.Expression, *errordefs.SyntaxError) {
	left, err := p.parseBinaryExpression(ast.LowestBinaryKind())
	if err != nil {
		return nil, err
	}

	cur := p.current()
	if cur.Kind.Category == token.CategoryPunctuation && cur.Kind.Punct == token.Assignment {
		p.advance()
		right, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		left = ast.Assignment{Left: left, Op: cur.Kind.Assign, Right: right}
	}

	return left, nil
}

// parseBinaryExpression climbs precedence level by level. It exits the
// loop on an assignment operator, `=>`, or any punctuation that doesn't
// belong to this level — never erroring on a stray non-binary
// punctuation, since that token simply belongs to whatever production
// called this one.
func (p *Parser) parseBinaryExpression(level ast.BinaryKind) (ast.Expression, *errordefs.SyntaxError) {
	expr, err := p.parseBinaryExpressionOperand(level)
	if err != nil {
		return nil, err
	}

	for {
		cur := p.current()
		if cur.Kind.Category != token.CategoryPunctuation {
			break
		}
		if cur.Kind.Punct == token.Assignment || cur.Kind.Punct == token.InlineBody {
			break
		}

		kind, ok := ast.BinaryKindFromPunct(cur.Kind.Punct)
		if !ok || kind != level {
			break
		}

		p.advance()
		right, err := p.parseBinaryExpressionOperand(level)
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Kind: kind, Left: expr, Op: cur.Kind.Punct, Right: right}
	}

	return expr, nil
}

func (p *Parser) parseBinaryExpressionOperand(level ast.BinaryKind) (ast.Expression, *errordefs.SyntaxError) {
	if next, ok := ast.BinaryKindFromPrecedence(level.Precedence() + 1); ok {
		return p.parseBinaryExpression(next)
	}
	return p.parseCallOrResolutionExpression()
}

// parseCallOrResolutionExpression parses a resolution chain and, if a
// call follows, chains calls left-associatively.
func (p *Parser) parseCallOrResolutionExpression() (ast.Expression, *errordefs.SyntaxError) {
	res, err := p.parseResolutionExpression()
	if err != nil {
		return nil, err
	}

	if p.current().Kind == token.Punctuation(token.ParenOpen) {
		return p.parseCallExpression(res)
	}

	return res, nil
}

func (p *Parser) parseCallExpression(callee ast.Expression) (ast.Expression, *errordefs.SyntaxError) {
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}

	var expr ast.Expression = ast.Call{Callee: callee, Args: args}

	if p.current().Kind == token.Punctuation(token.ParenOpen) {
		return p.parseCallExpression(expr)
	}

	return expr, nil
}

func (p *Parser) parseCallArguments() ([]ast.Expression, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Punctuation(token.ParenOpen)); err != nil {
		return nil, err
	}

	var args []ast.Expression

	for {
		if p.current().Kind == token.Punctuation(token.ParenClose) || p.current().Kind == token.EOF() {
			break
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)

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

// parseResolutionExpression is left-associative: `a::b.c` parses as
// `((a::b).c)`.
func (p *Parser) parseResolutionExpression() (ast.Expression, *errordefs.SyntaxError) {
	left, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		var kind ast.ResolutionKind
		switch p.current().Kind {
		case token.Punctuation(token.MemberSeparator):
			kind = ast.Member
		case token.Punctuation(token.NamespaceSeparator):
			kind = ast.Namespace
		default:
			return left, nil
		}

		p.advance()
		right, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}
		left = ast.Resolution{Left: left, Right: right, Kind: kind}
	}
}

func (p *Parser) parsePrimaryExpression() (ast.Expression, *errordefs.SyntaxError) {
	tok := p.current()

	switch tok.Kind.Category {
	case token.CategoryIdentifier:
		p.advance()
		return ast.Identifier{Name: tok.Value}, nil

	case token.CategoryLiteral:
		p.advance()
		return ast.Literal{Kind: tok.Kind.Literal, Value: tok.Value}, nil

	case token.CategoryPunctuation:
		if tok.Kind == token.Punctuation(token.ParenOpen) {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Punctuation(token.ParenClose)); err != nil {
				return nil, err
			}
			return expr, nil
		}

		if unKind, ok := ast.UnaryKindFromPunct(tok.Kind.Punct); ok {
			p.advance()
			right, err := p.parsePrimaryExpression()
			if err != nil {
				return nil, err
			}
			return ast.Unary{Kind: unKind, Op: tok.Kind.Punct, Right: right}, nil
		}
	}

	return nil, errordefs.Syntax(errordefs.UnexpectedKind(errordefs.SourceToken)).
		Msg("specified token cannot be used for expressions").
		Ctx(errordefs.SpanContext(tok.Span, p.src))
}
