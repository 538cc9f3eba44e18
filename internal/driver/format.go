// Package driver wires the formatting pipeline: file loading, lexing,
// delimiter normalization and emission, with parallel directory runs and a
// disk cache keyed by content and options.
package driver

import (
	"bytes"
	"errors"
	"runtime"

	"pawnfmt/internal/diag"
	"pawnfmt/internal/format"
	"pawnfmt/internal/lexer"
	"pawnfmt/internal/source"
	"pawnfmt/internal/vbrace"
)

// Options controls a formatting run.
type Options struct {
	TabWidth       int
	AddSemicolons  bool
	MaxDiagnostics int
	Jobs           int
	Extensions     []string
	NoCache        bool
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = 8
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 256
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".pwn", ".inc", ".p"}
	}
	return o
}

// Result holds the outcome for one file.
type Result struct {
	Path    string
	FileID  source.FileID
	Output  []byte
	Changed bool
	Bag     *diag.Bag
}

// FormatFile loads one file into the set and formats it.
func FormatFile(fileSet *source.FileSet, path string, opt Options) (Result, error) {
	if fileSet == nil {
		return Result{}, errors.New("driver: nil file set")
	}
	opt = opt.withDefaults()

	bag := diag.NewBag(opt.MaxDiagnostics)
	id, err := fileSet.Load(path)
	if err != nil {
		return Result{Path: path, Bag: bag}, err
	}
	sf := fileSet.Get(id)
	out := formatSource(sf, bag, opt)
	return Result{
		Path:    path,
		FileID:  id,
		Output:  out,
		Changed: !bytes.Equal(out, sf.Content),
		Bag:     bag,
	}, nil
}

// FormatSource formats an already-loaded file.
func FormatSource(sf *source.File, opt Options) (Result, error) {
	if sf == nil {
		return Result{}, errors.New("driver: nil source file")
	}
	opt = opt.withDefaults()
	bag := diag.NewBag(opt.MaxDiagnostics)
	out := formatSource(sf, bag, opt)
	return Result{
		Path:    sf.Path,
		FileID:  sf.ID,
		Output:  out,
		Changed: !bytes.Equal(out, sf.Content),
		Bag:     bag,
	}, nil
}

func formatSource(sf *source.File, bag *diag.Bag, opt Options) []byte {
	rep := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	stream := lexer.Scan(sf, lexer.Options{Reporter: rep, TabWidth: opt.TabWidth})
	vbrace.Normalize(stream, &diag.BagReporter{Bag: bag})

	out, err := format.Emit(sf, stream, format.Options{AddSemicolons: opt.AddSemicolons})
	if err != nil {
		// Emit only fails on nil arguments; fall back to the input bytes.
		return sf.Content
	}
	return out
}
