package parser

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/lexer"
	"github.com/meowind/meowind/source"
	"github.com/meowind/meowind/token"
)

func newParser(t *testing.T, text string) *Parser {
	t.Helper()
	src := source.New("test.mw", text)
	lx := lexer.Tokenize(src)
	if len(lx.Errors) != 0 {
		t.Fatalf("unexpected lexer errors for %q: %v", text, lx.Errors)
	}
	return New(lx.Tokens, src, "test", ast.Program)
}

func parseExpr(t *testing.T, text string) ast.Expression {
	t.Helper()
	p := newParser(t, text)
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("parseExpression(%q): %v", text, err)
	}
	return expr
}

func TestParseBinaryPrecedenceClimbing(t *testing.T) {
	got := parseExpr(t, "1 + 2 * 3")
	want := ast.Binary{
		Kind: ast.Additive,
		Left: ast.Literal{Kind: token.Integer, Value: "1"},
		Op:   token.OperatorPlus,
		Right: ast.Binary{
			Kind:  ast.Multiplicative,
			Left:  ast.Literal{Kind: token.Integer, Value: "2"},
			Op:    token.OperatorMultiply,
			Right: ast.Literal{Kind: token.Integer, Value: "3"},
		},
	}
	if diff := diffExpr(got, want); diff != nil {
		t.Fatalf("unexpected AST for %q:\n%v", "1 + 2 * 3", diff)
	}
}

func TestParseExponentialIsLeftAssociative(t *testing.T) {
	got := parseExpr(t, "2 ** 3 ** 4")
	want := ast.Binary{
		Kind: ast.Exponential,
		Left: ast.Binary{
			Kind:  ast.Exponential,
			Left:  ast.Literal{Kind: token.Integer, Value: "2"},
			Op:    token.OperatorPower,
			Right: ast.Literal{Kind: token.Integer, Value: "3"},
		},
		Op:    token.OperatorPower,
		Right: ast.Literal{Kind: token.Integer, Value: "4"},
	}
	if diff := diffExpr(got, want); diff != nil {
		t.Fatalf("unexpected AST for %q:\n%v", "2 ** 3 ** 4", diff)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	got := parseExpr(t, "a = b = c")
	want := ast.Assignment{
		Left: ast.Identifier{Name: "a"},
		Op:   token.AssignStraight,
		Right: ast.Assignment{
			Left:  ast.Identifier{Name: "b"},
			Op:    token.AssignStraight,
			Right: ast.Identifier{Name: "c"},
		},
	}
	if diff := diffExpr(got, want); diff != nil {
		t.Fatalf("unexpected AST for %q:\n%v", "a = b = c", diff)
	}
}

func TestParseResolutionChainIsLeftAssociative(t *testing.T) {
	got := parseExpr(t, "a::b.c")
	want := ast.Resolution{
		Kind: ast.Member,
		Left: ast.Resolution{
			Kind:  ast.Namespace,
			Left:  ast.Identifier{Name: "a"},
			Right: ast.Identifier{Name: "b"},
		},
		Right: ast.Identifier{Name: "c"},
	}
	if diff := diffExpr(got, want); diff != nil {
		t.Fatalf("unexpected AST for %q:\n%v", "a::b.c", diff)
	}
}

func TestParseChainedCalls(t *testing.T) {
	got := parseExpr(t, "f(x)(y)")
	want := ast.Call{
		Callee: ast.Call{
			Callee: ast.Identifier{Name: "f"},
			Args:   []ast.Expression{ast.Identifier{Name: "x"}},
		},
		Args: []ast.Expression{ast.Identifier{Name: "y"}},
	}
	if diff := diffExpr(got, want); diff != nil {
		t.Fatalf("unexpected AST for %q:\n%v", "f(x)(y)", diff)
	}
}

// TestParseNestedIfWithoutElseDoesNotConsumeNextSibling is a regression
// test for the parser's uniform post-advance convention: a nested if
// statement with no else clause must leave the cursor exactly after its
// own closing brace, not one token further, so the following sibling
// statement parses intact.
func TestParseNestedIfWithoutElseDoesNotConsumeNextSibling(t *testing.T) {
	p := newParser(t, `func f() { if true { a; } b; }`)
	p.process()
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors)
	}
	if len(p.Project.Root.Items) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(p.Project.Root.Items))
	}

	fn, ok := p.Project.Root.Items[0].Kind.(*ast.Function)
	if !ok {
		t.Fatalf("expected a Function item, got %#v", p.Project.Root.Items[0].Kind)
	}

	body, ok := fn.Body.Kind.(*ast.MultilineBody)
	if !ok {
		t.Fatalf("expected a multiline body, got %#v", fn.Body.Kind)
	}
	if len(body.Elements) != 2 {
		t.Fatalf("expected 2 body elements (the if, then b;), got %d: %#v", len(body.Elements), body.Elements)
	}

	ifEl, ok := body.Elements[0].Kind.(ast.StatementElement)
	if !ok {
		t.Fatalf("expected the first element to be a statement, got %#v", body.Elements[0].Kind)
	}
	if _, ok := ifEl.Statement.(ast.IfStatement); !ok {
		t.Fatalf("expected the first statement to be an if, got %#v", ifEl.Statement)
	}

	secondEl, ok := body.Elements[1].Kind.(ast.StatementElement)
	if !ok {
		t.Fatalf("expected the second element to be a statement, got %#v", body.Elements[1].Kind)
	}
	exprStmt, ok := secondEl.Statement.(ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected the second statement to be an expression statement, got %#v", secondEl.Statement)
	}
	if diff := diffExpr(exprStmt.Expr, ast.Identifier{Name: "b"}); diff != nil {
		t.Fatalf("unexpected second statement expression:\n%v", diff)
	}
}

func TestParseIfElseChain(t *testing.T) {
	p := newParser(t, `func f() { if true { a; } else if false { b; } else { c; } }`)
	p.process()
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors)
	}

	fn := p.Project.Root.Items[0].Kind.(*ast.Function)
	body := fn.Body.Kind.(*ast.MultilineBody)
	ifStmt := body.Elements[0].Kind.(ast.StatementElement).Statement.(ast.IfStatement)

	cond, ok := ifStmt.If.Kind.(ast.IfCond)
	if !ok {
		t.Fatalf("expected the top-level if to be IfCond, got %#v", ifStmt.If.Kind)
	}
	if cond.Else == nil {
		t.Fatalf("expected an else-if chain link")
	}

	elifCond, ok := cond.Else.Kind.(ast.IfCond)
	if !ok {
		t.Fatalf("expected the chained else-if to be IfCond, got %#v", cond.Else.Kind)
	}
	if elifCond.Else == nil {
		t.Fatalf("expected a trailing else")
	}
	if _, ok := elifCond.Else.Kind.(ast.IfElse); !ok {
		t.Fatalf("expected the trailing else to be IfElse, got %#v", elifCond.Else.Kind)
	}
}

func TestParseVariableDeclarationRequiresTypeOrValue(t *testing.T) {
	p := newParser(t, "let a;")
	_, err := p.parseVariableDeclaration()
	if err == nil {
		t.Fatalf("expected an error for a variable with neither type nor value")
	}
}

func TestParseInlineBody(t *testing.T) {
	p := newParser(t, "func f() => 1;")
	p.process()
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors)
	}

	fn := p.Project.Root.Items[0].Kind.(*ast.Function)
	inline, ok := fn.Body.Kind.(*ast.InlineBody)
	if !ok {
		t.Fatalf("expected an inline body, got %#v", fn.Body.Kind)
	}
	stmt, ok := inline.Element.Kind.(ast.StatementElement)
	if !ok {
		t.Fatalf("expected the inline element to be a statement, got %#v", inline.Element.Kind)
	}
	exprStmt, ok := stmt.Statement.(ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %#v", stmt.Statement)
	}
	if diff := diffExpr(exprStmt.Expr, ast.Literal{Kind: token.Integer, Value: "1"}); diff != nil {
		t.Fatalf("unexpected inline body expression:\n%v", diff)
	}
}

func diffExpr(got, want ast.Expression) []string {
	return deep.Equal(got, want)
}
