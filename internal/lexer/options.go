package lexer

import (
	"pawnfmt/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; formatting diagnostics is the outer layer's job.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Reporter kinds emitted by the lexer.
const (
	ReportUnknownChar         = "unknown-char"
	ReportUnterminatedString  = "unterminated-string"
	ReportUnterminatedChar    = "unterminated-char"
	ReportUnterminatedComment = "unterminated-block-comment"
)

type Options struct {
	// Reporter may be nil; errors are then ignored (lexing continues).
	Reporter Reporter
	// TabWidth is the tab stop used to compute visual columns. Defaults to 8.
	TabWidth int
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = 8
	}
	return o
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
