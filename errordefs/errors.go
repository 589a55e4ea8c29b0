// Package errordefs implements the diagnostic taxonomy of spec section 7:
// command-line, syntax, and (placeholder) compiler errors, each built
// through a fluent kind/msg/ctx builder and rendered with the wire format
// of spec section 6.
//
// This mirrors the reference implementation's Default-struct builder
// chaining (CompilerError::kind/msg/ctx in errors/compiler.rs) as Go
// value-receiver methods that return a modified copy, the same
// copy-and-override shape as Rust's `Self { field: .., ..self.clone() }`.
package errordefs

import (
	"fmt"
	"os"
)

// MeowindError is any diagnostic this package can render and print.
type MeowindError interface {
	error
}

// List accumulates diagnostics for one compiler stage. PrintAndExitIfAny
// stays in the core (rather than being driver-only) so the convenience is
// available to any caller, while the decision to actually call it —
// exiting the process — remains the driver's (spec section 9).
type List[T MeowindError] struct {
	Items []T
}

// Push appends a diagnostic to the list.
func (l *List[T]) Push(err T) {
	l.Items = append(l.Items, err)
}

// Any reports whether the list has accumulated any diagnostics.
func (l *List[T]) Any() bool {
	return len(l.Items) > 0
}

// PrintAndExitIfAny prints every diagnostic in emission order and exits
// the process with status 1 if the list is non-empty. It does nothing for
// an empty list.
func (l *List[T]) PrintAndExitIfAny() {
	if !l.Any() {
		return
	}
	for _, err := range l.Items {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}

// SyntaxErrorSource names what kind of thing a syntax diagnostic is about.
type SyntaxErrorSource int

const (
	SourceCharacter SyntaxErrorSource = iota
	SourceToken
	SourceExpression
)

func (s SyntaxErrorSource) String() string {
	switch s {
	case SourceCharacter:
		return "character"
	case SourceToken:
		return "token"
	case SourceExpression:
		return "expression"
	default:
		return "unknown"
	}
}

type syntaxErrorTag int

const (
	tagExpected syntaxErrorTag = iota
	tagUnexpected
	tagInvalid
)

// SyntaxErrorKind is the closed Expected/Unexpected/Invalid × Character/
// Token/Expression sum from spec section 7.
type SyntaxErrorKind struct {
	tag    syntaxErrorTag
	source SyntaxErrorSource
}

func ExpectedKind(src SyntaxErrorSource) SyntaxErrorKind   { return SyntaxErrorKind{tagExpected, src} }
func UnexpectedKind(src SyntaxErrorSource) SyntaxErrorKind { return SyntaxErrorKind{tagUnexpected, src} }
func InvalidKind(src SyntaxErrorSource) SyntaxErrorKind    { return SyntaxErrorKind{tagInvalid, src} }

func (k SyntaxErrorKind) String() string {
	var verb string
	switch k.tag {
	case tagExpected:
		verb = "expected"
	case tagUnexpected:
		verb = "unexpected"
	case tagInvalid:
		verb = "invalid"
	default:
		verb = "unknown"
	}
	return verb + " " + k.source.String()
}

// SyntaxError is a lexer or parser diagnostic. Construct one with Syntax,
// which fixes the required Kind field, then chain Msg and Ctx.
type SyntaxError struct {
	kind SyntaxErrorKind
	msg  string
	ctx  *Context
}

// Syntax constructs a SyntaxError with its required kind.
func Syntax(kind SyntaxErrorKind) *SyntaxError {
	return &SyntaxError{kind: kind}
}

// Msg returns a copy of the error with an explanatory message attached.
func (e SyntaxError) Msg(format string, args ...interface{}) *SyntaxError {
	e.msg = fmt.Sprintf(format, args...)
	return &e
}

// Ctx returns a copy of the error anchored to a source Context.
func (e SyntaxError) Ctx(ctx Context) *SyntaxError {
	e.ctx = &ctx
	return &e
}

// Error renders the diagnostic in the wire format of spec section 6.
func (e *SyntaxError) Error() string {
	body := colKindLabel.Sprint("syntax error") + ": " + e.kind.String()
	if e.msg != "" {
		body += ": " + e.msg
	}
	if e.ctx != nil {
		body += "\n" + e.ctx.Render()
	}
	return body
}

// CommandLineErrorKind is the closed InvalidArguments/FailedToReadFile sum
// from spec section 7.
type CommandLineErrorKind int

const (
	InvalidArguments CommandLineErrorKind = iota
	FailedToReadFile
)

func (k CommandLineErrorKind) String() string {
	switch k {
	case InvalidArguments:
		return "invalid arguments"
	case FailedToReadFile:
		return "failed to read file"
	default:
		return "unknown"
	}
}

// CommandLineError reports a driver-level usage or I/O failure.
type CommandLineError struct {
	kind CommandLineErrorKind
	msg  string
}

// CommandLine constructs a CommandLineError with its required kind.
func CommandLine(kind CommandLineErrorKind) *CommandLineError {
	return &CommandLineError{kind: kind}
}

// Msg returns a copy of the error with an explanatory message attached.
func (e CommandLineError) Msg(format string, args ...interface{}) *CommandLineError {
	e.msg = fmt.Sprintf(format, args...)
	return &e
}

func (e *CommandLineError) Error() string {
	return fmt.Sprintf("%s: %s: %s", colKindLabel.Sprint("command line error"), e.kind, e.msg)
}

// CompilerErrorKind is the closed Undeclared/AlreadyDeclared sum spec
// section 7 reserves for a later semantic-analysis stage; nothing in this
// front end constructs one today.
type CompilerErrorKind int

const (
	Undeclared CompilerErrorKind = iota
	AlreadyDeclared
)

func (k CompilerErrorKind) String() string {
	switch k {
	case Undeclared:
		return "undeclared"
	case AlreadyDeclared:
		return "already declared"
	default:
		return "unknown"
	}
}

// CompilerError is the placeholder diagnostic type for later semantic
// stages (name resolution, redeclaration checks). Its Kind is optional,
// unlike SyntaxError's and CommandLineError's, matching the reference's
// Option<CompilerErrorKind>.
type CompilerError struct {
	kind    *CompilerErrorKind
	hasKind bool
	msg     string
	ctx     *Context
}

// Compiler constructs an empty CompilerError; chain Kind, Msg, and Ctx.
func Compiler() *CompilerError {
	return &CompilerError{}
}

func (e CompilerError) Kind(kind CompilerErrorKind) *CompilerError {
	e.kind = &kind
	e.hasKind = true
	return &e
}

func (e CompilerError) Msg(format string, args ...interface{}) *CompilerError {
	e.msg = fmt.Sprintf(format, args...)
	return &e
}

func (e CompilerError) Ctx(ctx Context) *CompilerError {
	e.ctx = &ctx
	return &e
}

func (e *CompilerError) Error() string {
	body := colKindLabel.Sprint("compiler error")
	if e.hasKind {
		body += ": " + e.kind.String()
	}
	if e.msg != "" {
		body += ": " + e.msg
	}
	if e.ctx != nil {
		body += "\n" + e.ctx.Render()
	}
	return body
}
