package format

import (
	"errors"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/source"
)

// Options controls text emission.
type Options struct {
	// AddSemicolons materializes visible virtual semicolons as real ';'
	// bytes at their insertion points. Invisible ones are always skipped.
	AddSemicolons bool
}

// Emit writes the stream back out as text. Every real chunk is copied from
// the source together with the gap preceding it, so whitespace, comments
// and preprocessor lines survive byte for byte. With AddSemicolons off the
// output is identical to the input.
func Emit(sf *source.File, s *chunk.Stream, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	if s == nil {
		return nil, errors.New("format: nil stream")
	}

	w := NewWriter(sf)
	prev := 0
	for c := s.First(); c != nil; c = c.Next() {
		if c.IsVirtual() {
			if opt.AddSemicolons && c.Kind == chunk.VSemicolon && !c.IsInvisible() {
				_ = w.WriteByte(';')
			}
			continue
		}
		if c.Span.File != sf.ID {
			continue
		}
		end := int(c.Span.End)
		w.CopyRange(prev, end)
		if end > prev {
			prev = end
		}
	}
	w.CopyRange(prev, len(sf.Content))
	return w.Bytes(), nil
}
