package vbrace

import (
	"github.com/mattn/go-runewidth"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/source"
)

// AddVSemiAfter synthesizes a virtual semicolon and links it into the
// stream immediately after ref. The new chunk is zero-width: its span is
// anchored at the end of ref and its column is where a real ';' would sit,
// so diagnostics and later passes can place it without emitting text.
func AddVSemiAfter(s *chunk.Stream, ref *chunk.Chunk, parent chunk.Parent) *chunk.Chunk {
	vs := &chunk.Chunk{
		Kind:       chunk.VSemicolon,
		Span:       source.At(ref.Span.File, ref.Span.End),
		Line:       ref.Line,
		Col:        ref.Col + textWidth(ref.Text),
		Level:      ref.Level,
		BraceLevel: ref.BraceLevel,
		Parent:     parent,
		Flags:      chunk.FlagVirtual,
	}
	return s.InsertAfter(ref, vs)
}

func textWidth(text string) uint32 {
	return uint32(runewidth.StringWidth(text))
}
