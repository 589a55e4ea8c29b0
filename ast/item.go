package ast

// Item is a top-level namespace member: a constant, a static, or a
// function, each optionally exported with `pub`.
type Item struct {
	Public bool
	Kind   ItemKind
}

// ItemKind is the closed Constant|Static|Function sum.
type ItemKind interface {
	itemKind()
}

// Constant is `const NAME: TYPE = VALUE;` — type is required.
type Constant struct {
	Name  string
	Type  *TypeNode
	Value Expression
}

func (*Constant) itemKind() {}

// Static is `static [mut] NAME [: TYPE] = VALUE;` — type is optional.
type Static struct {
	Name    string
	Type    *TypeNode
	Value   Expression
	Mutable bool
}

func (*Static) itemKind() {}

// Function is `func NAME(ARGS) [-> TYPE [: TYPE]] BODY`.
type Function struct {
	Name string
	Args []*Arg
	// Type is the declared return type, absent for an implicit-unit
	// function.
	Type *TypeNode
	// ReturnVar is set when the `-> T1 : T2` named-return-variable form
	// was used; T1.Raw becomes ReturnVar and T2 becomes Type.
	ReturnVar *string
	Body      *Body
}

func (*Function) itemKind() {}

// Arg is one function parameter. At least one of Type or Default must be
// present — the parser enforces this invariant, it is not re-checked
// here.
type Arg struct {
	Name    string
	Type    *TypeNode
	Default Expression
}
