// Package token defines the lexer's output alphabet: a closed sum of
// token kinds, the literal/keyword/punctuation sub-kinds they nest, and
// the string conversions the lexer and diagnostics need.
//
// Go has no native sum type, so Kind is modeled the way
// github.com/aundis/formula's SyntaxKind models its flat token enum —
// a small comparable struct — generalized with payload fields so a Kind
// can nest a LiteralKind, KeywordKind, PunctuationKind, or AssignKind the
// way the reference's `Punctuation::Assignment(AssignKind)` nests.
package token

import (
	"strconv"

	"github.com/meowind/meowind/source"
)

// Category is the outermost discriminant of a token Kind.
type Category int

const (
	CategoryUndefined Category = iota
	CategoryEOF
	CategoryInvalidIdentifier
	CategoryIdentifier
	CategoryLiteral
	CategoryKeyword
	CategoryPunctuation
)

// LiteralKind distinguishes the literal token shapes.
type LiteralKind int

const (
	Integer LiteralKind = iota
	Float
	String
	Boolean
)

// IsNumber reports whether the literal kind is a numeric one.
func (k LiteralKind) IsNumber() bool {
	return k == Integer || k == Float
}

func (k LiteralKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	default:
		return "unknown literal"
	}
}

// KeywordKind enumerates the reserved words of spec section 6.
type KeywordKind int

const (
	Let KeywordKind = iota
	Func
	Mut
	Pub
	Const
	Static
	True
	False
	Return
	While
	If
	Else
)

var keywordText = map[KeywordKind]string{
	Let:    "let",
	Func:   "func",
	Mut:    "mut",
	Pub:    "pub",
	Const:  "const",
	Static: "static",
	True:   "true",
	False:  "false",
	Return: "return",
	While:  "while",
	If:     "if",
	Else:   "else",
}

var keywordFromText map[string]KeywordKind

func init() {
	keywordFromText = make(map[string]KeywordKind, len(keywordText))
	for k, s := range keywordText {
		keywordFromText[s] = k
	}
}

func (k KeywordKind) String() string {
	if s, ok := keywordText[k]; ok {
		return s
	}
	return "unknown keyword"
}

// KeywordFromString recognizes a reserved word, the lexer's
// keyword-or-identifier decision point.
func KeywordFromString(s string) (KeywordKind, bool) {
	k, ok := keywordFromText[s]
	return k, ok
}

// AssignKind enumerates the nested Assignment punctuation payload.
type AssignKind int

const (
	AssignStraight AssignKind = iota
	AssignPlus
	AssignMinus
	AssignMultiply
	AssignDivide
	AssignModulo
	AssignPower
)

var assignText = map[AssignKind]string{
	AssignStraight: "=",
	AssignPlus:     "+=",
	AssignMinus:    "-=",
	AssignMultiply: "*=",
	AssignDivide:   "/=",
	AssignModulo:   "%=",
	AssignPower:    "**=",
}

var assignFromText map[string]AssignKind

func init() {
	assignFromText = make(map[string]AssignKind, len(assignText))
	for k, s := range assignText {
		assignFromText[s] = k
	}
}

func (k AssignKind) String() string {
	if s, ok := assignText[k]; ok {
		return s
	}
	return "unknown assignment"
}

// PunctuationKind enumerates every bracket, separator, and operator kind
// spec section 3 lists, other than the nested Assignment payload.
type PunctuationKind int

const (
	ParenOpen PunctuationKind = iota
	ParenClose
	BraceOpen
	BraceClose
	BracketOpen
	BracketClose

	Semicolon
	Comma
	Colon
	NamespaceSeparator // ::
	MemberSeparator    // .
	ReturnSeparator    // ->

	OperatorPlus
	OperatorMinus
	OperatorMultiply
	OperatorDivide
	OperatorModulo
	OperatorPower

	OperatorEqual
	OperatorNotEqual
	OperatorLessEqual
	OperatorGreaterEqual
	AngleOpen  // <, overloaded with relational "less than"
	AngleClose // >, overloaded with relational "greater than"

	OperatorAnd
	OperatorOr
	OperatorNot

	OperatorTilde
	InlineBody // =>

	Assignment // nested: carries an AssignKind
)

var punctuationText = map[PunctuationKind]string{
	ParenOpen:   "(",
	ParenClose:  ")",
	BraceOpen:   "{",
	BraceClose:  "}",
	BracketOpen: "[",
	BracketClose: "]",

	Semicolon:          ";",
	Comma:              ",",
	Colon:              ":",
	NamespaceSeparator: "::",
	MemberSeparator:    ".",
	ReturnSeparator:    "->",

	OperatorPlus:     "+",
	OperatorMinus:    "-",
	OperatorMultiply: "*",
	OperatorDivide:   "/",
	OperatorModulo:   "%",
	OperatorPower:    "**",

	OperatorEqual:        "==",
	OperatorNotEqual:     "!=",
	OperatorLessEqual:    "<=",
	OperatorGreaterEqual: ">=",
	AngleOpen:            "<",
	AngleClose:           ">",

	OperatorAnd: "&&",
	OperatorOr:  "||",
	OperatorNot: "!",

	OperatorTilde: "~",
	InlineBody:    "=>",
}

var punctuationFromText map[string]PunctuationKind

func init() {
	punctuationFromText = make(map[string]PunctuationKind, len(punctuationText))
	for k, s := range punctuationText {
		punctuationFromText[s] = k
	}
}

func (k PunctuationKind) String() string {
	if s, ok := punctuationText[k]; ok {
		return s
	}
	if k == Assignment {
		return "="
	}
	return "unknown punctuation"
}

// Kind is a token's full type: a Category tag plus whichever nested
// payload that category carries. It is a small comparable struct so
// parser code can write `tok.Kind == Keyword(Const)` the way the
// reference matches enum variants.
type Kind struct {
	Category Category
	Literal  LiteralKind
	Keyword  KeywordKind
	Punct    PunctuationKind
	Assign   AssignKind
}

func Undefined() Kind           { return Kind{Category: CategoryUndefined} }
func EOF() Kind                 { return Kind{Category: CategoryEOF} }
func InvalidIdentifier() Kind   { return Kind{Category: CategoryInvalidIdentifier} }
func Identifier() Kind          { return Kind{Category: CategoryIdentifier} }
func Literal(lit LiteralKind) Kind {
	return Kind{Category: CategoryLiteral, Literal: lit}
}
func Keyword(kw KeywordKind) Kind {
	return Kind{Category: CategoryKeyword, Keyword: kw}
}
func Punctuation(p PunctuationKind) Kind {
	return Kind{Category: CategoryPunctuation, Punct: p}
}
func PunctuationAssignment(a AssignKind) Kind {
	return Kind{Category: CategoryPunctuation, Punct: Assignment, Assign: a}
}

// PunctuationFromString decodes a punctuation run, falling back to the
// assignment-operator lookup for unrecognized strings — spec section 4.C:
// "the lexer recovers this via the punctuation decoder, which for
// unrecognized strings falls back to assignment lookup."
func PunctuationFromString(s string) (Kind, bool) {
	if p, ok := punctuationFromText[s]; ok {
		return Punctuation(p), true
	}
	if a, ok := assignFromText[s]; ok {
		return PunctuationAssignment(a), true
	}
	return Kind{}, false
}

func (k Kind) String() string {
	switch k.Category {
	case CategoryUndefined:
		return "undefined"
	case CategoryEOF:
		return "end of file"
	case CategoryInvalidIdentifier:
		return "invalid identifier"
	case CategoryIdentifier:
		return "identifier"
	case CategoryLiteral:
		return k.Literal.String() + " literal"
	case CategoryKeyword:
		return "'" + k.Keyword.String() + "'"
	case CategoryPunctuation:
		if k.Punct == Assignment {
			return "'" + k.Assign.String() + "'"
		}
		return "'" + k.Punct.String() + "'"
	default:
		return "unknown"
	}
}

// Token is one lexed unit: its span, kind, and optional captured lexeme.
type Token struct {
	Span  source.Span
	Kind  Kind
	Value string
	// HasValue distinguishes an explicit empty string from "no lexeme
	// captured", since e.g. EOF carries neither.
	HasValue bool
}

// New constructs a Token without a captured lexeme.
func New(span source.Span, kind Kind) Token {
	return Token{Span: span, Kind: kind}
}

// NewWithValue constructs a Token carrying a captured lexeme.
func NewWithValue(span source.Span, kind Kind, value string) Token {
	return Token{Span: span, Kind: kind, Value: value, HasValue: true}
}

func (t Token) String() string {
	loc := "(" + strconv.Itoa(t.Span.Start.Line) + ", " + strconv.Itoa(t.Span.Start.Col) + ")"
	if t.HasValue {
		return t.Kind.String() + " \"" + t.Value + "\" at " + loc
	}
	return t.Kind.String() + " at " + loc
}
