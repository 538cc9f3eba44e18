package lexer

import (
	"pawnfmt/internal/chunk"
)

// Greediness: 4-byte operators first, then 3, 2, 1.
func (lx *Lexer) scanOperatorOrPunct() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col
	emit := func(k chunk.Kind) {
		lx.emit(k, lx.cursor.SpanFrom(start), startLine, startCol)
	}

	switch {
	case lx.try4('>', '>', '>', '='):
		emit(chunk.Operator)
		return
	case lx.try3('<', '<', '='), lx.try3('>', '>', '='), lx.try3('>', '>', '>'), lx.try3('.', '.', '.'):
		emit(chunk.Operator)
		return
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '='), lx.try2('>', '='),
		lx.try2('&', '&'), lx.try2('|', '|'), lx.try2('<', '<'), lx.try2('>', '>'),
		lx.try2('+', '='), lx.try2('-', '='), lx.try2('*', '='), lx.try2('/', '='),
		lx.try2('%', '='), lx.try2('&', '='), lx.try2('|', '='), lx.try2('^', '='),
		lx.try2('+', '+'), lx.try2('-', '-'), lx.try2(':', ':'):
		emit(chunk.Operator)
		return
	}

	b := lx.cursor.Bump()
	switch b {
	case '(':
		emit(chunk.LParen)
	case ')':
		emit(chunk.RParen)
	case '{':
		emit(chunk.LBrace)
	case '}':
		emit(chunk.RBrace)
	case '[':
		emit(chunk.LBracket)
	case ']':
		emit(chunk.RBracket)
	case ';':
		emit(chunk.Semicolon)
	case ',':
		emit(chunk.Comma)
	case ':':
		emit(chunk.Colon)
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', '?', '.':
		emit(chunk.Operator)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(ReportUnknownChar, sp, "unknown character")
		lx.emit(chunk.Invalid, sp, startLine, startCol)
	}
}

func (lx *Lexer) try2(b0, b1 byte) bool {
	c0, c1, ok := lx.cursor.Peek2()
	if !ok || c0 != b0 || c1 != b1 {
		return false
	}
	lx.cursor.Off += 2
	return true
}

func (lx *Lexer) try3(b0, b1, b2 byte) bool {
	if lx.cursor.Off+2 >= lx.cursor.limit() {
		return false
	}
	c := lx.file.Content
	if c[lx.cursor.Off] != b0 || c[lx.cursor.Off+1] != b1 || c[lx.cursor.Off+2] != b2 {
		return false
	}
	lx.cursor.Off += 3
	return true
}

func (lx *Lexer) try4(b0, b1, b2, b3 byte) bool {
	if lx.cursor.Off+3 >= lx.cursor.limit() {
		return false
	}
	c := lx.file.Content
	if c[lx.cursor.Off] != b0 || c[lx.cursor.Off+1] != b1 ||
		c[lx.cursor.Off+2] != b2 || c[lx.cursor.Off+3] != b3 {
		return false
	}
	lx.cursor.Off += 4
	return true
}
