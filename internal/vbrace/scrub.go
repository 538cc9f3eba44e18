package vbrace

import (
	"pawnfmt/internal/chunk"
)

// ScrubVSemis hides virtual semicolons that directly follow the closing
// brace of a construct already terminated by its block structure, so that
// emitting them as real ';' would not produce stray semicolons after
// if/else/switch bodies. The pass both sets and clears the flag, so running
// it again after further insertion converges on the same result.
func ScrubVSemis(s *chunk.Stream) {
	for c := s.First(); c != nil; c = c.Next() {
		if c.Kind != chunk.VSemicolon {
			continue
		}
		prev := c.PrevSignificant()
		if prev != nil && prev.IsCloseBrace() && scrubParent(prev.Parent) {
			c.Flags |= chunk.FlagInvisible
		} else {
			c.Flags &^= chunk.FlagInvisible
		}
	}
}

func scrubParent(p chunk.Parent) bool {
	switch p {
	case chunk.ParentIf, chunk.ParentElse, chunk.ParentSwitch, chunk.ParentCase:
		return true
	default:
		return false
	}
}
