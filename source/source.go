// Package source models the compiler's only input: a single file's path,
// full text, and the line/grapheme indices the lexer and diagnostic
// renderer both read from.
package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// File is an immutable source file: its path, its full text, and the
// lines obtained by splitting on '\n'. Lines and columns are 1-based.
type File struct {
	Path  string
	Text  string
	Lines []string
}

// New builds a File from a path and its full text.
func New(path, text string) *File {
	return &File{
		Path:  path,
		Text:  text,
		Lines: strings.Split(text, "\n"),
	}
}

// Empty is the zero-value-safe default File, standing in for the Rust
// reference's DEFAULT_SRC_CONTENTS sentinel. Go structs are already
// zero-value-usable, so this only exists to give that sentinel a named
// home for callers translating the reference's Default impls.
func Empty() *File {
	return New("", "")
}

// LineGraphemes returns the user-perceived characters of line ln (1-based)
// as a slice of grapheme clusters, used for column-accurate windowing in
// both the lexer and the diagnostic renderer.
func (f *File) LineGraphemes(ln int) []string {
	if ln < 1 || ln > len(f.Lines) {
		return nil
	}
	return Graphemes(f.Lines[ln-1])
}

// Graphemes splits s into Unicode grapheme clusters.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Point is a single location within a File: a 1-based line and column.
// On its own it does not carry enough information to render a
// diagnostic — pair it with a File via a Context.
type Point struct {
	Line int
	Col  int
}

// NewPoint constructs a Point.
func NewPoint(line, col int) Point {
	return Point{Line: line, Col: col}
}

// Span is a pair of Points delimiting a lexeme or syntactic construct.
// A Span may be single-line or cross-line.
type Span struct {
	Start Point
	End   Point
}

// NewSpan constructs a Span from two Points.
func NewSpan(start, end Point) Span {
	return Span{Start: start, End: end}
}

// OneLine builds a Span that starts and ends on the same line.
func OneLine(ln, startCol, endCol int) Span {
	return NewSpan(NewPoint(ln, startCol), NewPoint(ln, endCol))
}

// MultiLine builds a Span whose endpoints may be on different lines.
func MultiLine(startLn, startCol, endLn, endCol int) Span {
	return NewSpan(NewPoint(startLn, startCol), NewPoint(endLn, endCol))
}

// SingleLine reports whether the span's endpoints share a line.
func (s Span) SingleLine() bool {
	return s.Start.Line == s.End.Line
}
