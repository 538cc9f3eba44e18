package lexer

import (
	"pawnfmt/internal/chunk"
)

// scanText scans a quote-delimited literal with backslash escapes.
// An unescaped newline terminates the literal early and is reported.
func (lx *Lexer) scanText(quote byte, kind chunk.Kind, reportKind string) {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col

	lx.cursor.Bump() // opening quote
	for {
		if lx.cursor.EOF() {
			lx.report(reportKind, lx.cursor.SpanFrom(start), "literal not terminated before end of file")
			break
		}
		b := lx.cursor.Peek()
		if b == '\n' {
			lx.report(reportKind, lx.cursor.SpanFrom(start), "literal not terminated before end of line")
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
		if b == quote {
			break
		}
	}

	lx.emit(kind, lx.cursor.SpanFrom(start), startLine, startCol)
}

// scanComment scans '//' line comments and '/* ... */' block comments.
func (lx *Lexer) scanComment() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col

	lx.cursor.Bump() // '/'
	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.emit(chunk.Comment, lx.cursor.SpanFrom(start), startLine, startCol)
		return
	}

	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '*' && lx.cursor.Eat('/') {
			closed = true
			break
		}
	}
	if !closed {
		lx.report(ReportUnterminatedComment, lx.cursor.SpanFrom(start), "block comment not terminated")
	}
	lx.emit(chunk.Comment, lx.cursor.SpanFrom(start), startLine, startCol)
}
