package chunk

import (
	"pawnfmt/internal/source"
)

// Chunk is one node of the formatting stream: a real token produced by the
// lexer or a virtual delimiter synthesized by the engine.
type Chunk struct {
	Kind Kind
	Text string
	Span source.Span

	// Original position, preserved for virtual chunks too so diagnostics
	// and later passes can anchor on it.
	Line uint32 // 1-based
	Col  uint32 // 1-based visual column, tabs expanded

	// Level counts open real+virtual braces, parens and brackets at this
	// chunk. BraceLevel counts braces only.
	Level      uint32
	BraceLevel uint32

	Parent Parent
	Flags  Flags

	prev, next *Chunk
}

// Next returns the following chunk in the stream, or nil at the tail.
func (c *Chunk) Next() *Chunk { return c.next }

// Prev returns the preceding chunk in the stream, or nil at the head.
func (c *Chunk) Prev() *Chunk { return c.prev }

// IsVirtual reports whether the chunk was synthesized by the engine.
func (c *Chunk) IsVirtual() bool { return c.Flags&FlagVirtual != 0 }

// IsInvisible reports whether the chunk has been scrubbed inert.
func (c *Chunk) IsInvisible() bool { return c.Flags&FlagInvisible != 0 }

// InPreproc reports whether the chunk belongs to a preprocessor region.
func (c *Chunk) InPreproc() bool { return c.Flags&FlagInPreproc != 0 }

// IsSignificant reports whether the chunk participates in statement-boundary
// decisions. Newlines, comments, preprocessor content and invisible virtual
// semicolons are all transparent.
func (c *Chunk) IsSignificant() bool {
	if c.Flags&(FlagInPreproc|FlagInvisible) != 0 {
		return false
	}
	switch c.Kind {
	case Invalid, EOF, Newline, Comment, Preproc:
		return false
	default:
		return true
	}
}

// NextSignificant returns the next significant chunk, or nil.
func (c *Chunk) NextSignificant() *Chunk {
	for n := c.next; n != nil; n = n.next {
		if n.IsSignificant() {
			return n
		}
	}
	return nil
}

// PrevSignificant returns the previous significant chunk, or nil.
func (c *Chunk) PrevSignificant() *Chunk {
	for p := c.prev; p != nil; p = p.prev {
		if p.IsSignificant() {
			return p
		}
	}
	return nil
}

// IsCloseBrace reports whether the chunk closes a real or virtual block.
func (c *Chunk) IsCloseBrace() bool {
	return c.Kind == RBrace || c.Kind == VBraceClose
}

// EndsStatement reports whether the chunk is a terminator after which no
// virtual semicolon is needed.
func (c *Chunk) EndsStatement() bool {
	switch c.Kind {
	case Semicolon, VSemicolon:
		return true
	default:
		return false
	}
}

// ContinuesExpr reports whether a line ending on this chunk syntactically
// demands a following token, so the statement cannot be closed here.
// Postfix ++/-- are complete expressions and do not defer closure.
func (c *Chunk) ContinuesExpr() bool {
	switch c.Kind {
	case Comma, Colon, LBrace, VBraceOpen, LParen, LBracket:
		return true
	case Operator:
		return c.Text != "++" && c.Text != "--"
	default:
		return false
	}
}
