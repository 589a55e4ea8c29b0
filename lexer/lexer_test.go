package lexer

import (
	"testing"

	"github.com/meowind/meowind/source"
	"github.com/meowind/meowind/token"
)

type wantTok struct {
	kind     token.Kind
	value    string
	hasValue bool
}

func assertTokens(t *testing.T, got []token.Token, want []wantTok) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot: %#v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind {
			t.Errorf("token %d kind = %#v, want %#v", i, got[i].Kind, w.kind)
		}
		if got[i].HasValue != w.hasValue || got[i].Value != w.value {
			t.Errorf("token %d value = (%q, hasValue=%v), want (%q, hasValue=%v)", i, got[i].Value, got[i].HasValue, w.value, w.hasValue)
		}
	}
}

func TestTokenizeEmptyInputAlwaysEndsInEOF(t *testing.T) {
	l := Tokenize(source.New("a.mw", ""))
	if len(l.Tokens) != 1 || l.Tokens[0].Kind != token.EOF() {
		t.Fatalf("expected exactly one EOF token for empty input, got %#v", l.Tokens)
	}
	if len(l.Errors) != 0 {
		t.Fatalf("expected no errors for empty input, got %v", l.Errors)
	}
}

func TestTokenizeVariableDeclaration(t *testing.T) {
	l := Tokenize(source.New("a.mw", "let a = 1;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Keyword(token.Let), "", false},
		{token.Identifier(), "a", true},
		{token.PunctuationAssignment(token.AssignStraight), "", false},
		{token.Literal(token.Integer), "1", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
	if len(l.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", l.Errors)
	}
}

func TestTokenizeAdjacentSimplePunctuationSpans(t *testing.T) {
	l := Tokenize(source.New("a.mw", "f()"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Identifier(), "f", true},
		{token.Punctuation(token.ParenOpen), "", false},
		{token.Punctuation(token.ParenClose), "", false},
		{token.EOF(), "", false},
	})

	wantSpans := []source.Span{
		source.OneLine(1, 1, 2), // f
		source.OneLine(1, 2, 3), // (
		source.OneLine(1, 3, 4), // )
		source.OneLine(1, 4, 4), // EOF
	}
	for i, want := range wantSpans {
		if l.Tokens[i].Span != want {
			t.Errorf("token %d span = %#v, want %#v", i, l.Tokens[i].Span, want)
		}
	}
}

func TestTokenizeFloatLiteralDotLookahead(t *testing.T) {
	l := Tokenize(source.New("a.mw", "1.5;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Literal(token.Float), "1.5", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeMemberSeparatorDotLookahead(t *testing.T) {
	l := Tokenize(source.New("a.mw", "a.b;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Identifier(), "a", true},
		{token.Punctuation(token.MemberSeparator), "", false},
		{token.Identifier(), "b", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeNegativeExponentFloat(t *testing.T) {
	l := Tokenize(source.New("a.mw", "1e-5;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Literal(token.Float), "1e-5", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeSubtractionIsNotExponentSign(t *testing.T) {
	l := Tokenize(source.New("a.mw", "a-5;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Identifier(), "a", true},
		{token.Punctuation(token.OperatorMinus), "", false},
		{token.Literal(token.Integer), "5", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeStringLiteral(t *testing.T) {
	l := Tokenize(source.New("a.mw", `"hi";`))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Literal(token.String), "hi", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeUnterminatedStringRecovers(t *testing.T) {
	l := Tokenize(source.New("a.mw", `"hi`))
	if len(l.Errors) != 1 {
		t.Fatalf("expected exactly one error for unterminated string, got %v", l.Errors)
	}
	if l.Tokens[len(l.Tokens)-1].Kind != token.EOF() {
		t.Fatalf("expected lexing to still terminate in EOF, got %#v", l.Tokens)
	}
}

func TestTokenizeMultilineStringIsRejected(t *testing.T) {
	l := Tokenize(source.New("a.mw", "\"a\nb\""))
	if len(l.Errors) == 0 {
		t.Fatalf("expected an error for a string literal spanning multiple lines")
	}
}

func TestTokenizeBooleanLiteralsAreRetagged(t *testing.T) {
	l := Tokenize(source.New("a.mw", "true false iff"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Literal(token.Boolean), "true", true},
		{token.Literal(token.Boolean), "false", true},
		{token.Identifier(), "iff", true},
		{token.EOF(), "", false},
	})
}

func TestTokenizeUnrecognizedPunctuationIsUndefinedAndErrors(t *testing.T) {
	l := Tokenize(source.New("a.mw", "@;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Undefined(), "@", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
	if len(l.Errors) != 1 {
		t.Fatalf("expected exactly one error for an unrecognized punctuation character, got %v", l.Errors)
	}
}

func TestTokenizeGreedyLongestMatchDecomposition(t *testing.T) {
	l := Tokenize(source.New("a.mw", "a!==b;"))
	assertTokens(t, l.Tokens, []wantTok{
		{token.Identifier(), "a", true},
		{token.Punctuation(token.OperatorNotEqual), "", false},
		{token.PunctuationAssignment(token.AssignStraight), "", false},
		{token.Identifier(), "b", true},
		{token.Punctuation(token.Semicolon), "", false},
		{token.EOF(), "", false},
	})
}

func TestTokenizeIdentifierCannotStartWithDigit(t *testing.T) {
	l := Tokenize(source.New("a.mw", "1abc;"))
	if len(l.Errors) != 1 {
		t.Fatalf("expected exactly one error for a digit-led identifier, got %v", l.Errors)
	}
	if l.Tokens[0].Kind != token.InvalidIdentifier() {
		t.Fatalf("expected the malformed token to be InvalidIdentifier, got %#v", l.Tokens[0])
	}
}
