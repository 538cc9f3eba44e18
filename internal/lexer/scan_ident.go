package lexer

import (
	"pawnfmt/internal/chunk"
)

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. Keywords are case-sensitive; Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col

	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := chunk.Ident
	if k, ok := chunk.LookupKeyword(text); ok {
		kind = k
	}
	lx.emit(kind, sp, startLine, startCol)
}

// scanNumber scans a numeric literal: decimal, hex (0x...), and rational
// forms. The exact shape is not validated; the formatter only needs the
// extent of the literal.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col

	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if isIdentContinue(b) || b == '.' {
			lx.cursor.Bump()
			continue
		}
		break
	}

	lx.emit(chunk.Number, lx.cursor.SpanFrom(start), startLine, startCol)
}
