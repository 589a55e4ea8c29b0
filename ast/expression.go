package ast

import "github.com/meowind/meowind/token"

// Expression is the closed Literal|Identifier|Call|Resolution|Binary|
// Unary|Assignment sum every value-producing node belongs to.
type Expression interface {
	expression()
}

// Literal is a number, string, or boolean literal carried verbatim from
// its token.
type Literal struct {
	Kind  token.LiteralKind
	Value string
}

func (Literal) expression() {}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
}

func (Identifier) expression() {}

// Call is `CALLEE(ARGS...)`.
type Call struct {
	Callee Expression
	Args   []Expression
}

func (Call) expression() {}

// ResolutionKind distinguishes `a.b` (Member) from `a::b` (Namespace).
type ResolutionKind int

const (
	Member ResolutionKind = iota
	Namespace
)

// Resolution is a member or namespace access, left-associative:
// `a::b.c` parses as `Resolution{Resolution{a,b,Namespace}, c, Member}`.
type Resolution struct {
	Left  Expression
	Right Expression
	Kind  ResolutionKind
}

func (Resolution) expression() {}

// BinaryKind is the closed precedence-level sum spec section 4.F's
// binary table names, ordered low to high: LogicalAnd, LogicalOr,
// Equality, Relational, Additive, Multiplicative, Exponential.
type BinaryKind int

const (
	LogicalAnd BinaryKind = iota
	LogicalOr
	Equality
	Relational
	Additive
	Multiplicative
	Exponential
)

// BinaryKindFromPunct maps an operator punctuation to its BinaryKind.
func BinaryKindFromPunct(p token.PunctuationKind) (BinaryKind, bool) {
	switch p {
	case token.OperatorAnd:
		return LogicalAnd, true
	case token.OperatorOr:
		return LogicalOr, true
	case token.OperatorEqual, token.OperatorNotEqual:
		return Equality, true
	case token.AngleOpen, token.AngleClose, token.OperatorLessEqual, token.OperatorGreaterEqual:
		return Relational, true
	case token.OperatorPlus, token.OperatorMinus:
		return Additive, true
	case token.OperatorMultiply, token.OperatorDivide, token.OperatorModulo:
		return Multiplicative, true
	case token.OperatorPower:
		return Exponential, true
	default:
		return 0, false
	}
}

// LowestBinaryKind is the entry precedence level for the climber.
func LowestBinaryKind() BinaryKind { return LogicalAnd }

// BinaryKindFromPrecedence maps a numeric level (-4..2) back to its kind.
func BinaryKindFromPrecedence(level int) (BinaryKind, bool) {
	switch level {
	case -4:
		return LogicalAnd, true
	case -3:
		return LogicalOr, true
	case -2:
		return Equality, true
	case -1:
		return Relational, true
	case 0:
		return Additive, true
	case 1:
		return Multiplicative, true
	case 2:
		return Exponential, true
	default:
		return 0, false
	}
}

// Precedence returns the numeric level of a BinaryKind.
func (k BinaryKind) Precedence() int {
	switch k {
	case LogicalAnd:
		return -4
	case LogicalOr:
		return -3
	case Equality:
		return -2
	case Relational:
		return -1
	case Additive:
		return 0
	case Multiplicative:
		return 1
	case Exponential:
		return 2
	default:
		return 0
	}
}

// Binary is a two-operand operator expression. All table operators are
// left-associative except Exponential, which the grammar deliberately
// leaves left-associative too (see the module's Open Question note).
type Binary struct {
	Kind  BinaryKind
	Left  Expression
	Op    token.PunctuationKind
	Right Expression
}

func (Binary) expression() {}

// UnaryKind is the closed ArithmeticNegation|LogicalNegation sum.
type UnaryKind int

const (
	ArithmeticNegation UnaryKind = iota
	LogicalNegation
)

// UnaryKindFromPunct maps a prefix operator punctuation to its UnaryKind.
func UnaryKindFromPunct(p token.PunctuationKind) (UnaryKind, bool) {
	switch p {
	case token.OperatorMinus:
		return ArithmeticNegation, true
	case token.OperatorNot:
		return LogicalNegation, true
	default:
		return 0, false
	}
}

// Unary is a single-operand prefix operator expression.
type Unary struct {
	Kind  UnaryKind
	Op    token.PunctuationKind
	Right Expression
}

func (Unary) expression() {}

// Assignment is `LEFT OP RIGHT`, right-associative.
type Assignment struct {
	Left  Expression
	Op    token.AssignKind
	Right Expression
}

func (Assignment) expression() {}
