// Package lexer implements the Unicode-aware, single-pass character state
// machine spec section 4.D describes: a synchronous, non-suspending loop
// over a source.File's graphemes that accumulates Tokens and
// errordefs.SyntaxErrors, recovering at the next safe boundary instead of
// aborting.
//
// The struct shape — a scanner holding mutable cursor/buffer state plus an
// accumulated token and diagnostic list — follows
// github.com/aundis/formula's Scanner (CreateScanner, onError callback,
// tokenPos/pos bookkeeping); the dispatch algorithm itself follows the
// reference Rust lexer's character-by-character decomposition, since that
// is "the hard part" spec section 1 calls out and the more detailed source
// of truth for its exact behavior.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/source"
	"github.com/meowind/meowind/token"
)

var simplePunctuation = map[string]token.PunctuationKind{
	"(": token.ParenOpen,
	")": token.ParenClose,
	"{": token.BraceOpen,
	"}": token.BraceClose,
	"[": token.BracketOpen,
	"]": token.BracketClose,
	";": token.Semicolon,
	",": token.Comma,
}

// Lexer holds the mutable state of one tokenization pass.
type Lexer struct {
	src *source.File

	Tokens []token.Token
	Errors []*errordefs.SyntaxError

	curLn, curCol int
	startColBuf   int
	kindBuf       token.Kind
	valueBuf      strings.Builder
	punctBuf      strings.Builder
	insideString  bool
}

// New builds a Lexer positioned at the start of src.
func New(src *source.File) *Lexer {
	return &Lexer{
		src:         src,
		curLn:       1,
		curCol:      0,
		startColBuf: 1,
		kindBuf:     token.Undefined(),
	}
}

// Tokenize lexes src to completion and returns the resulting Lexer.
func Tokenize(src *source.File) *Lexer {
	l := New(src)
	l.process()
	return l
}

func (l *Lexer) process() {
	gr := uniseg.NewGraphemes(l.src.Text)
	for gr.Next() {
		l.iteration(gr.Str())
	}
	l.curCol++

	if l.insideString {
		l.Errors = append(l.Errors, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceCharacter)).
			Msg("expected double quote to close string literal").
			Ctx(errordefs.PointContext(source.NewPoint(l.curLn, l.curCol), l.src)))
	}

	if l.punctBuf.Len() > 0 {
		l.processComplexPunctuation("\n")
	} else {
		l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
	}

	l.pushNew(source.OneLine(l.curLn, l.curCol, l.curCol), token.EOF(), "", false)
}

func (l *Lexer) iteration(gr string) {
	if gr == "\r" {
		return
	}

	if gr == "\n" {
		l.handleNewline()
		return
	}

	l.curCol++

	if gr == "\"" {
		l.handleQuote()
		return
	}

	if l.insideString {
		l.valueBuf.WriteString(gr)
		return
	}

	if kind, ok := simplePunctuation[gr]; ok {
		l.handleSimplePunctuation(kind)
		return
	}

	if isASCIIPunctuationStr(gr) && gr != "_" {
		l.accumulatePunctuation(gr)
		return
	}

	if l.punctBuf.Len() > 0 {
		l.processComplexPunctuation(gr)
	}

	if isWhitespaceStr(gr) {
		l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
		l.startColBuf = l.curCol + 1
		return
	}

	l.classifyAndAppend(gr)
}

func (l *Lexer) handleNewline() {
	l.curCol++

	if l.insideString {
		l.Errors = append(l.Errors, errordefs.Syntax(errordefs.ExpectedKind(errordefs.SourceCharacter)).
			Msg("regular string literals cannot be over multiple lines").
			Ctx(errordefs.PointContext(source.NewPoint(l.curLn, l.curCol), l.src)))
		l.insideString = false
		l.resetBuffers()
	} else {
		if l.punctBuf.Len() > 0 {
			l.processComplexPunctuation("\n")
		} else {
			l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
		}
	}

	l.curLn++
	l.curCol = 0
	l.startColBuf = 1
}

func (l *Lexer) handleQuote() {
	l.insideString = !l.insideString

	if l.insideString {
		if l.punctBuf.Len() > 0 {
			l.processComplexPunctuation("\"")
		} else {
			l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
		}
		l.startColBuf = l.curCol
		l.kindBuf = token.Literal(token.String)
		return
	}

	l.pushNew(source.OneLine(l.curLn, l.startColBuf, l.curCol+1), token.Literal(token.String), l.valueBuf.String(), true)
	l.resetBuffers()
	l.startColBuf = l.curCol + 1
	l.kindBuf = token.Undefined()
}

func (l *Lexer) handleSimplePunctuation(kind token.PunctuationKind) {
	if l.punctBuf.Len() > 0 {
		l.processComplexPunctuation("")
	} else {
		l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
	}

	// curCol is already this character's own column (incremented at the
	// top of iteration before dispatch), unlike the deferred punctBuf
	// flush paths, where curCol has moved on to the char after the run.
	l.pushNew(source.OneLine(l.curLn, l.curCol, l.curCol+1), token.Punctuation(kind), "", false)
	l.startColBuf = l.curCol + 1
}

func (l *Lexer) accumulatePunctuation(gr string) {
	if l.punctBuf.Len() == 0 && l.kindBuf != token.Literal(token.Integer) {
		l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
		l.startColBuf = l.curCol
	}
	l.punctBuf.WriteString(gr)
}

func (l *Lexer) classifyAndAppend(gr string) {
	switch {
	case l.kindBuf.Category == token.CategoryUndefined:
		if isAlphaStr(gr) || gr == "_" {
			l.kindBuf = token.Identifier()
		} else if isASCIIDigitStr(gr) {
			l.kindBuf = token.Literal(token.Integer)
		}
	case l.kindBuf.Category == token.CategoryLiteral && l.kindBuf.Literal.IsNumber():
		if isAlphaStr(gr) && gr != "e" && gr != "E" {
			l.kindBuf = token.InvalidIdentifier()
			l.Errors = append(l.Errors, errordefs.Syntax(errordefs.UnexpectedKind(errordefs.SourceCharacter)).
				Msg("identifiers cannot start with a digit").
				Ctx(errordefs.SpanContext(source.OneLine(l.curLn, l.startColBuf, l.curCol), l.src)))
		}
	}

	l.valueBuf.WriteString(gr)
}

// pushKeywordOrIdent flushes the value buffer, emitting a Keyword,
// Literal(Boolean) for `true`/`false` (spec section 6's re-tagging rule),
// or the buffer's captured kind.
func (l *Lexer) pushKeywordOrIdent(span source.Span) {
	text := l.valueBuf.String()

	if kw, ok := token.KeywordFromString(text); ok {
		if kw == token.True || kw == token.False {
			l.pushNew(span, token.Literal(token.Boolean), text, true)
		} else {
			l.pushNew(span, token.Keyword(kw), "", false)
		}
	} else {
		l.pushNewNotEmpty(span, l.kindBuf, text)
	}

	l.resetBuffers()
}

// processComplexPunctuation flushes the pending punctuation run. A lone
// "." or "-" gets the lookahead-based number-literal treatment of spec
// section 4.D; anything else runs the greedy longest-match decomposer.
func (l *Lexer) processComplexPunctuation(next string) {
	switch l.punctBuf.String() {
	case ".":
		l.recognizeDot(next)
	case "-":
		l.recognizeMinus(next)
	default:
		l.decomposeComplexPunctuation()
	}
	l.punctBuf.Reset()
}

func (l *Lexer) recognizeDot(next string) {
	if isASCIIDigitStr(next) {
		l.kindBuf = token.Literal(token.Float)
		l.valueBuf.WriteString(".")
		return
	}

	if l.kindBuf == token.Literal(token.Integer) {
		l.pushKeywordOrIdent(source.OneLine(l.curLn, l.startColBuf, l.curCol))
		l.startColBuf = l.curCol
	}

	l.pushNew(source.OneLine(l.curLn, l.curCol-1, l.curCol), token.Punctuation(token.MemberSeparator), "", false)
	l.startColBuf = l.curCol
}

func (l *Lexer) recognizeMinus(next string) {
	text := l.valueBuf.String()
	endsInExponent := strings.HasSuffix(text, "e") || strings.HasSuffix(text, "E")

	if isASCIIDigitStr(next) && endsInExponent && l.kindBuf.Category == token.CategoryLiteral && l.kindBuf.Literal.IsNumber() {
		l.kindBuf = token.Literal(token.Float)
		l.valueBuf.WriteString("-")
		return
	}

	l.pushNew(source.OneLine(l.curLn, l.curCol-1, l.curCol), token.Punctuation(token.OperatorMinus), "", false)
	l.startColBuf = l.curCol
}

// decomposeComplexPunctuation performs the greedy longest-match
// decomposition spec section 4.D describes: starting at index i, extend j
// to the end of the run, remembering the longest prefix that names a
// punctuation kind (so "&&" matches even though "&" alone does not), emit
// that match, and continue from just after it. A position from which no
// prefix matches emits a single Undefined token covering the rest of the
// run and stops.
func (l *Lexer) decomposeComplexPunctuation() {
	run := []rune(l.punctBuf.String())

	if len(run) == 1 {
		s := string(run)
		if kind, ok := token.PunctuationFromString(s); ok {
			l.pushNew(source.OneLine(l.curLn, l.curCol-1, l.curCol), kind, "", false)
		} else {
			l.pushNew(source.OneLine(l.curLn, l.curCol-1, l.curCol), token.Undefined(), s, true)
		}
		l.startColBuf = l.curCol
		return
	}

	nextCharIdx := 0
	for nextCharIdx < len(run) {
		currentCharIdx := nextCharIdx

		var (
			validKind token.Kind
			hasValid  bool
			candidate strings.Builder
		)
		for pi := nextCharIdx; pi < len(run); pi++ {
			candidate.WriteRune(run[pi])
			if kind, ok := token.PunctuationFromString(candidate.String()); ok {
				nextCharIdx = pi + 1
				validKind = kind
				hasValid = true
			}
		}

		startCol := l.startColBuf + currentCharIdx
		endCol := l.startColBuf + nextCharIdx

		if !hasValid {
			remaining := string(run[currentCharIdx:])
			l.pushNew(source.OneLine(l.curLn, startCol, l.startColBuf+len(run)), token.Undefined(), remaining, true)
			break
		}

		l.pushNew(source.OneLine(l.curLn, startCol, endCol), validKind, "", false)
	}

	l.startColBuf = l.curCol
}

func (l *Lexer) push(tok token.Token) {
	if tok.Kind.Category == token.CategoryUndefined {
		l.Errors = append(l.Errors, errordefs.Syntax(errordefs.InvalidKind(errordefs.SourceToken)).
			Ctx(errordefs.SpanContext(tok.Span, l.src)))
	}
	l.Tokens = append(l.Tokens, tok)
}

func (l *Lexer) pushNew(span source.Span, kind token.Kind, value string, hasValue bool) {
	if hasValue {
		l.push(token.NewWithValue(span, kind, value))
	} else {
		l.push(token.New(span, kind))
	}
}

func (l *Lexer) pushNewNotEmpty(span source.Span, kind token.Kind, value string) {
	if value == "" {
		return
	}
	l.push(token.NewWithValue(span, kind, value))
}

func (l *Lexer) resetBuffers() {
	l.valueBuf.Reset()
	l.kindBuf = token.Undefined()
}

func isASCIIPunctuationStr(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return false
	}
	return isASCIIPunctuationRune(r)
}

func isASCIIPunctuationRune(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

func isWhitespaceStr(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isAlphaStr(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func isASCIIDigitStr(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
