package vbrace

import (
	"pawnfmt/internal/chunk"
)

// Prescan walks the stream at brace level zero looking for function
// definitions whose body is not wrapped in braces and marks the first body
// chunk with FlagUnbracedBody. The inserter opens a virtual function region
// when it reaches a marked chunk. Running Prescan twice is harmless: the
// marker is a flag, not an inserted chunk.
func Prescan(s *chunk.Stream) {
	for c := s.First(); c != nil; c = c.Next() {
		if c.Kind != chunk.Ident || c.BraceLevel != 0 || c.InPreproc() || c.IsVirtual() {
			continue
		}
		if !atFunctionPosition(c) {
			continue
		}
		lp := c.NextSignificant()
		if lp == nil || lp.Kind != chunk.LParen {
			continue
		}
		rp := matchingClose(lp)
		if rp == nil {
			return
		}
		body := rp.NextSignificant()
		if body == nil {
			return
		}
		switch body.Kind {
		case chunk.LBrace, chunk.Semicolon, chunk.Comma:
			// braced definition, prototype or declarator list
		case chunk.Operator:
			if body.Text != "=" {
				body.Flags |= chunk.FlagUnbracedBody
			}
		default:
			body.Flags |= chunk.FlagUnbracedBody
		}
		c = rp
	}
}

// atFunctionPosition reports whether an identifier at brace level zero sits
// where a function name may start: at the beginning of the file, after a
// finished statement or block, after a return tag colon, or after a
// declaration modifier. An identifier opening a fresh line at column 1 also
// qualifies, since a preceding unbraced body may have ended without any
// terminator chunk.
func atFunctionPosition(c *chunk.Chunk) bool {
	prev := c.PrevSignificant()
	if prev == nil {
		return true
	}
	switch prev.Kind {
	case chunk.Semicolon, chunk.VSemicolon, chunk.RBrace, chunk.VBraceClose, chunk.Colon:
		return true
	}
	if chunk.IsModifier(prev.Kind) {
		return true
	}
	return c.Col == 1 && prev.Line < c.Line
}

// matchingClose finds the ')' that closes lp, skipping nested pairs.
func matchingClose(lp *chunk.Chunk) *chunk.Chunk {
	depth := 0
	for p := lp; p != nil; p = p.NextSignificant() {
		switch p.Kind {
		case chunk.LParen:
			depth++
		case chunk.RParen:
			depth--
			if depth == 0 {
				return p
			}
		}
	}
	return nil
}
