package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pawnfmt/internal/chunk"
)

type ChunkOutput struct {
	Kind       string `json:"kind"`
	Text       string `json:"text,omitempty"`
	Line       uint32 `json:"line"`
	Col        uint32 `json:"col"`
	Level      uint32 `json:"level"`
	BraceLevel uint32 `json:"brace_level"`
	Parent     string `json:"parent,omitempty"`
	Flags      string `json:"flags,omitempty"`
}

var virtualColor = color.New(color.FgMagenta, color.Bold)

// FormatChunksPretty dumps the stream one chunk per line, with virtual
// chunks highlighted so delimiter insertion is easy to inspect.
func FormatChunksPretty(w io.Writer, s *chunk.Stream, colored bool) error {
	i := 0
	for c := s.First(); c != nil; c = c.Next() {
		i++
		kind := runewidth.FillRight(c.Kind.String(), 12)
		if colored && c.IsVirtual() {
			kind = virtualColor.Sprint(kind)
		}
		fmt.Fprintf(w, "%4d: %s L%d B%d at %d:%d", i, kind, c.Level, c.BraceLevel, c.Line, c.Col)
		if c.Parent != chunk.ParentNone {
			fmt.Fprintf(w, " parent=%s", c.Parent)
		}
		if fl := flagString(c.Flags); fl != "" {
			fmt.Fprintf(w, " [%s]", fl)
		}
		if c.Text != "" {
			fmt.Fprintf(w, " %q", c.Text)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatChunksJSON dumps the stream as a JSON array.
func FormatChunksJSON(w io.Writer, s *chunk.Stream) error {
	var output []ChunkOutput
	for c := s.First(); c != nil; c = c.Next() {
		out := ChunkOutput{
			Kind:       c.Kind.String(),
			Text:       c.Text,
			Line:       c.Line,
			Col:        c.Col,
			Level:      c.Level,
			BraceLevel: c.BraceLevel,
			Flags:      flagString(c.Flags),
		}
		if c.Parent != chunk.ParentNone {
			out.Parent = c.Parent.String()
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func flagString(f chunk.Flags) string {
	var parts []string
	if f&chunk.FlagVirtual != 0 {
		parts = append(parts, "virtual")
	}
	if f&chunk.FlagInvisible != 0 {
		parts = append(parts, "invisible")
	}
	if f&chunk.FlagInPreproc != 0 {
		parts = append(parts, "preproc")
	}
	if f&chunk.FlagUnbracedBody != 0 {
		parts = append(parts, "unbraced-body")
	}
	return strings.Join(parts, ",")
}
