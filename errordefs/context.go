package errordefs

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/meowind/meowind/source"
)

// defaultExtends is the number of graphemes a rendered diagnostic window
// extends to either side of the pointed-at location, per spec section 4.A.
const defaultExtends = 20

var (
	colKindLabel = color.New(color.FgRed, color.Bold)
	colLocation  = color.New(color.Bold)
	colCaretLine = color.New(color.FgCyan, color.Bold)
	colHighlight = color.New(color.FgWhite, color.Underline)
	colContext   = color.New(color.FgHiBlack)
)

// Context anchors a diagnostic to a location in a source.File: either a
// single Point or a Span. Rendering is pure with respect to the File and
// never panics. Column indices that fall outside the anchored line are
// clamped to the line's bounds, and a line number outside the File
// renders an empty snippet; neither case is reported.
type Context struct {
	file    *source.File
	span    source.Span
	isPoint bool
}

// PointContext anchors a diagnostic at a single source location.
func PointContext(p source.Point, file *source.File) Context {
	return Context{file: file, span: source.Span{Start: p, End: p}, isPoint: true}
}

// SpanContext anchors a diagnostic to a range of source locations.
func SpanContext(span source.Span, file *source.File) Context {
	return Context{file: file, span: span, isPoint: false}
}

// Render produces the annotated-snippet body spec section 6 describes:
// a bold "path:(ln,col): <snippet>" line, followed for point contexts by
// a cyan-bold caret line aligned under the pointed-at column.
func (c Context) Render() string {
	if c.isPoint {
		return c.renderPoint(defaultExtends)
	}
	return c.renderSpan(defaultExtends)
}

func (c Context) renderPoint(extends int) string {
	ln, col := c.span.Start.Line, c.span.Start.Col
	graphemes := c.file.LineGraphemes(ln)

	startIdx := col - min(extends, col)
	endIdx := min(col+extends, len(graphemes))
	window := cloneStrings(graphemes[clampIdx(startIdx, len(graphemes)):clampIdx(endIdx, len(graphemes))])

	cursor := col - startIdx - 1
	trimmed, leftTrim := trimGraphemes(window)
	cursor -= leftTrim
	cursor = clampIdx(cursor, len(trimmed))

	text := strings.Join(trimmed, "")
	if startIdx > 0 {
		text = "... " + text
		cursor += 4
	}
	if endIdx < len(graphemes) {
		text = text + " ..."
	}

	prefix := fmt.Sprintf("%s:(%d, %d): ", c.file.Path, ln, col)
	header := colLocation.Sprintf("%s:(%d, %d)", c.file.Path, ln, col) + ": " + text

	padding := strings.Repeat(" ", len([]rune(prefix))+cursor)
	caretLine := colCaretLine.Sprint(padding + "HERE ^")

	return header + "\n" + caretLine
}

func (c Context) renderSpan(extends int) string {
	if c.span.SingleLine() {
		return c.renderSpanLine(c.span.Start.Line, c.span.Start.Col, c.span.End.Col, extends, true, true)
	}

	var lines []string
	lines = append(lines, c.renderSpanLine(c.span.Start.Line, c.span.Start.Col, -1, extends, true, false))
	for ln := c.span.Start.Line + 1; ln < c.span.End.Line; ln++ {
		graphemes := c.file.LineGraphemes(ln)
		full := strings.Join(graphemes, "")
		lines = append(lines, colHighlight.Sprint(full))
	}
	lines = append(lines, c.renderSpanLine(c.span.End.Line, -1, c.span.End.Col, extends, false, true))
	return strings.Join(lines, "\n")
}

// renderSpanLine renders one line of a span highlight. A negative startCol
// highlights from the line's first column (used for a span's last line);
// a negative endCol highlights through the line's end (used for a span's
// first line). clipLeft and clipRight say whether the window is cut to
// extends graphemes on that side: the first line is clipped on the left,
// the last line on the right.
func (c Context) renderSpanLine(ln, startCol, endCol int, extends int, clipLeft, clipRight bool) string {
	graphemes := c.file.LineGraphemes(ln)

	if startCol < 0 {
		startCol = 1
	}
	if endCol < 0 {
		endCol = len(graphemes) + 1
	}

	windowStart := 0
	if clipLeft {
		windowStart = startCol - min(extends, startCol)
	}
	windowEnd := len(graphemes)
	if clipRight {
		windowEnd = min(endCol+extends, len(graphemes))
	}
	windowStart = clampIdx(windowStart, len(graphemes))
	windowEnd = clampIdx(windowEnd, len(graphemes))
	if windowEnd < windowStart {
		windowEnd = windowStart
	}

	localStart := clampIdx(startCol-1-windowStart, windowEnd-windowStart)
	localEnd := clampIdx(endCol-1-windowStart, windowEnd-windowStart)
	if localEnd < localStart {
		localEnd = localStart
	}

	window := graphemes[windowStart:windowEnd]
	before := strings.Join(window[:localStart], "")
	highlight := strings.Join(window[localStart:localEnd], "")
	after := strings.Join(window[localEnd:], "")

	text := colContext.Sprint(before) + colHighlight.Sprint(highlight) + colContext.Sprint(after)
	if clipLeft && windowStart > 0 {
		text = "... " + text
	}
	if clipRight && windowEnd < len(graphemes) {
		text = text + " ..."
	}

	return colLocation.Sprintf("%s:(%d, %d)", c.file.Path, ln, startCol) + ": " + text
}

func trimGraphemes(gs []string) (trimmed []string, leftTrim int) {
	start := 0
	for start < len(gs) && strings.TrimSpace(gs[start]) == "" {
		start++
	}
	end := len(gs)
	for end > start && strings.TrimSpace(gs[end-1]) == "" {
		end--
	}
	return gs[start:end], start
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
