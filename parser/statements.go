package parser

import (
	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/token"
)

// parseStatement dispatches on the current keyword, falling back to an
// expression statement.
func (p *Parser) parseStatement() (ast.Statement, *errordefs.SyntaxError) {
	switch p.current().Kind {
	case token.Keyword(token.Let):
		return p.parseVariableDeclaration()
	case token.Keyword(token.Func):
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		return ast.FunctionDeclaration{Function: fn}, nil
	case token.Keyword(token.Return):
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Punctuation(token.Semicolon)); err != nil {
			return nil, err
		}
		return ast.ReturnStatement{Expr: expr}, nil
	case token.Keyword(token.If):
		ifNode, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		return ast.IfStatement{If: ifNode}, nil
	case token.Keyword(token.While):
		whileNode, err := p.parseWhileLoop()
		if err != nil {
			return nil, err
		}
		return ast.WhileStatement{While: whileNode}, nil
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Punctuation(token.Semicolon)); err != nil {
			return nil, err
		}
		return ast.ExpressionStatement{Expr: expr}, nil
	}
}

// parseVariableDeclaration is `let [mut] IDENT [: TYPE] [= EXPR] ;`,
// satisfying the at-least-one-of type/value invariant.
func (p *Parser) parseVariableDeclaration() (ast.VariableDeclaration, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.Let)); err != nil {
		return ast.VariableDeclaration{}, err
	}

	mutable := false
	if p.current().Kind == token.Keyword(token.Mut) {
		mutable = true
		p.advance()
	}

	nameTok, err := p.expect(token.Identifier())
	if err != nil {
		return ast.VariableDeclaration{}, err
	}

	var typeNode *ast.TypeNode
	if p.current().Kind == token.Punctuation(token.Colon) {
		p.advance()
		typeNode, err = p.parseType()
		if err != nil {
			return ast.VariableDeclaration{}, err
		}
	}

	var value ast.Expression
	if p.current().Kind == token.PunctuationAssignment(token.AssignStraight) {
		p.advance()
		value, err = p.parseExpression()
		if err != nil {
			return ast.VariableDeclaration{}, err
		}
	}

	if typeNode == nil && value == nil {
		return ast.VariableDeclaration{}, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceToken)).
			Msg("variable requires type or default value").
			Ctx(errordefs.SpanContext(nameTok.Span, p.src))
	}

	if _, err := p.expect(token.Punctuation(token.Semicolon)); err != nil {
		return ast.VariableDeclaration{}, err
	}

	return ast.VariableDeclaration{Name: nameTok.Value, Type: typeNode, Value: value, Mutable: mutable}, nil
}

// parseIfStatement is `if COND BODY [ else ( if … | BODY ) ]`. Chained
// else-if is a recursive If link whose kind is IfCond.
func (p *Parser) parseIfStatement() (*ast.If, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.If)); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseLink *ast.If
	if p.current().Kind == token.Keyword(token.Else) {
		p.advance()

		if p.current().Kind == token.Keyword(token.If) {
			elseLink, err = p.parseIfStatement()
			if err != nil {
				return nil, err
			}
		} else {
			elseBody, err := p.parseBody()
			if err != nil {
				return nil, err
			}
			elseLink = &ast.If{Kind: ast.IfElse{}, Body: elseBody}
		}
	}

	return &ast.If{Kind: ast.IfCond{Cond: cond, Else: elseLink}, Body: body}, nil
}

// parseWhileLoop is `while COND BODY [ else ( while … | BODY ) ]`,
// modeled symmetrically with parseIfStatement.
func (p *Parser) parseWhileLoop() (*ast.While, *errordefs.SyntaxError) {
	if _, err := p.expect(token.Keyword(token.While)); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseLink *ast.While
	if p.current().Kind == token.Keyword(token.Else) {
		p.advance()

		if p.current().Kind == token.Keyword(token.While) {
			elseLink, err = p.parseWhileLoop()
			if err != nil {
				return nil, err
			}
		} else {
			elseBody, err := p.parseBody()
			if err != nil {
				return nil, err
			}
			elseLink = &ast.While{Kind: ast.WhileElse{}, Body: elseBody}
		}
	}

	return &ast.While{Kind: ast.WhileCond{Cond: cond, Else: elseLink}, Body: body}, nil
}
