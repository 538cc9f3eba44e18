package lexer

import (
	"github.com/mattn/go-runewidth"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/source"
)

// Lexer scans a source file into the initial chunk stream: real tokens only,
// levels counted from real braces/parens/brackets, preprocessor regions
// flagged. Virtual delimiters are added later by the vbrace passes.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	stream *chunk.Stream

	line uint32
	col  uint32

	level      uint32
	braceLevel uint32

	inPreproc   bool
	atLineStart bool
	lastByte    byte // last non-whitespace byte on the current line
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts.withDefaults(),
		stream:      chunk.NewStream(),
		line:        1,
		col:         1,
		atLineStart: true,
	}
}

// Scan runs the lexer to EOF and returns the chunk stream.
// The returned stream always ends with an EOF chunk.
func Scan(file *source.File, opts Options) *chunk.Stream {
	return New(file, opts).Scan()
}

func (lx *Lexer) Scan() *chunk.Stream {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\r':
			lx.cursor.Bump()
			lx.col++
		case ch == '\t':
			lx.cursor.Bump()
			lx.col = lx.nextTabStop(lx.col)
		case ch == '\n':
			lx.scanNewline()
		case ch == '\\':
			// Line continuation marker; meaningful inside preprocessor
			// regions, skipped elsewhere. The byte is recovered by the
			// emitter from the raw source.
			lx.cursor.Bump()
			lx.col++
			lx.lastByte = '\\'
			lx.atLineStart = false
		case ch == '#' && lx.atLineStart && !lx.inPreproc:
			lx.scanPreproc()
		case ch == '/':
			if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == '/' || b1 == '*') {
				lx.scanComment()
			} else {
				lx.scanOperatorOrPunct()
			}
		case ch == '"':
			lx.scanText('"', chunk.String, ReportUnterminatedString)
		case ch == '\'':
			lx.scanText('\'', chunk.Char, ReportUnterminatedChar)
		case isDec(ch):
			lx.scanNumber()
		case isIdentStart(ch):
			lx.scanIdentOrKeyword()
		default:
			lx.scanOperatorOrPunct()
		}
	}

	lx.stream.Append(&chunk.Chunk{
		Kind:       chunk.EOF,
		Span:       source.At(lx.file.ID, lx.cursor.Off),
		Line:       lx.line,
		Col:        lx.col,
		Level:      lx.level,
		BraceLevel: lx.braceLevel,
	})
	return lx.stream
}

func (lx *Lexer) nextTabStop(col uint32) uint32 {
	tw := uint32(lx.opts.TabWidth)
	return col + tw - ((col - 1) % tw)
}

// emit creates a chunk for the span, applies level bookkeeping, links it
// into the stream and advances the visual position past its text.
func (lx *Lexer) emit(kind chunk.Kind, sp source.Span, startLine, startCol uint32) *chunk.Chunk {
	text := string(lx.file.Content[sp.Start:sp.End])
	c := &chunk.Chunk{
		Kind:       kind,
		Text:       text,
		Span:       sp,
		Line:       startLine,
		Col:        startCol,
		Level:      lx.level,
		BraceLevel: lx.braceLevel,
	}
	if lx.inPreproc {
		c.Flags |= chunk.FlagInPreproc
	} else {
		// Braces inside preprocessor regions are opaque and do not change
		// nesting for the surrounding code.
		switch kind {
		case chunk.LParen, chunk.LBracket:
			c.Level = lx.level
			lx.level++
		case chunk.LBrace:
			c.Level = lx.level
			lx.level++
			c.BraceLevel = lx.braceLevel
			lx.braceLevel++
		case chunk.RParen, chunk.RBracket:
			if lx.level > 0 {
				lx.level--
			}
			c.Level = lx.level
		case chunk.RBrace:
			if lx.level > 0 {
				lx.level--
			}
			c.Level = lx.level
			if lx.braceLevel > 0 {
				lx.braceLevel--
			}
			c.BraceLevel = lx.braceLevel
		}
	}

	lx.stream.Append(c)
	lx.atLineStart = false
	if len(text) > 0 {
		lx.lastByte = text[len(text)-1]
	}
	lx.advancePos(text)
	return c
}

// advancePos moves the line/col counters past text, expanding tabs and
// accounting for wide runes.
func (lx *Lexer) advancePos(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			lx.line++
			lx.col = 1
		case '\t':
			lx.col = lx.nextTabStop(lx.col)
		default:
			if w := runewidth.RuneWidth(r); w > 0 {
				lx.col += uint32(w)
			}
		}
	}
}

func (lx *Lexer) scanNewline() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col
	lx.cursor.Bump()

	// A preprocessor region ends at a newline not preceded by a
	// continuation backslash; that terminating newline belongs to the
	// surrounding code, not the region.
	if lx.inPreproc && lx.lastByte != '\\' {
		lx.inPreproc = false
	}

	lx.emit(chunk.Newline, lx.cursor.SpanFrom(start), startLine, startCol)
	lx.atLineStart = true
	lx.lastByte = 0
}

// scanPreproc consumes '#' plus the directive word and opens a
// preprocessor region lasting until an uncontinued newline.
func (lx *Lexer) scanPreproc() {
	start := lx.cursor.Mark()
	startLine, startCol := lx.line, lx.col
	lx.cursor.Bump() // '#'
	// '#  include' styles keep the gap inside the directive chunk
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.inPreproc = true
	lx.emit(chunk.Preproc, lx.cursor.SpanFrom(start), startLine, startCol)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '@' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}
