// Package testkit holds invariant checkers shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/source"
)

// CheckStreamInvariants runs structural checks on a normalized stream:
// 1) prev/next links are mutually consistent
// 2) real chunk spans stay inside the file and never move backwards
// 3) virtual chunks are zero-width
// 4) every virtual brace open has a matching close at the same level
func CheckStreamInvariants(s *chunk.Stream, sf *source.File) error {
	if s == nil || sf == nil {
		return fmt.Errorf("nil stream or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var opens []*chunk.Chunk
	var lastEnd uint32
	n := 0
	for c := s.First(); c != nil; c = c.Next() {
		n++
		if nx := c.Next(); nx != nil && nx.Prev() != c {
			return fmt.Errorf("broken link after %v at %d:%d", c.Kind, c.Line, c.Col)
		}

		if c.IsVirtual() {
			if c.Span.Len() != 0 {
				return fmt.Errorf("virtual %v at %d:%d has width %d", c.Kind, c.Line, c.Col, c.Span.Len())
			}
		} else if c.Span.File == sf.ID {
			if c.Span.End > lenContent {
				return fmt.Errorf("%v span ends beyond content: %d > %d", c.Kind, c.Span.End, lenContent)
			}
			if c.Span.Start < lastEnd {
				return fmt.Errorf("%v at %d:%d overlaps the previous chunk", c.Kind, c.Line, c.Col)
			}
			lastEnd = c.Span.End
		}

		switch c.Kind {
		case chunk.VBraceOpen:
			opens = append(opens, c)
		case chunk.VBraceClose:
			if len(opens) == 0 {
				return fmt.Errorf("virtual close without open at %d:%d", c.Line, c.Col)
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			if open.Level != c.Level {
				return fmt.Errorf("virtual close level %d does not match open level %d", c.Level, open.Level)
			}
		}
	}
	if len(opens) != 0 {
		return fmt.Errorf("%d virtual braces left open", len(opens))
	}
	if n != s.Len() {
		return fmt.Errorf("stream length %d does not match traversal %d", s.Len(), n)
	}
	return nil
}
