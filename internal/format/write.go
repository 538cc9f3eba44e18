package format

import (
	"pawnfmt/internal/source"
)

// Writer accumulates emitted output and copies byte ranges from the
// original source file.
type Writer struct {
	sf  *source.File
	buf []byte
}

// NewWriter creates a writer sized for roughly the input length.
func NewWriter(sf *source.File) *Writer {
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)+len(sf.Content)/16),
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// CopyRange copies a clamped byte range of the source file to the output.
func (w *Writer) CopyRange(start, end int) {
	if w.sf == nil {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > len(w.sf.Content) {
		end = len(w.sf.Content)
	}
	if start >= end {
		return
	}
	w.buf = append(w.buf, w.sf.Content[start:end]...)
}

// CopySpan copies a span of the source file to the output.
func (w *Writer) CopySpan(sp source.Span) {
	if w.sf == nil || sp.File != w.sf.ID {
		return
	}
	w.CopyRange(int(sp.Start), int(sp.End))
}
