package lexer

import (
	"pawnfmt/internal/diag"
	"pawnfmt/internal/source"
)

// ReporterAdapter bridges the lexer's thin Reporter to a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

type bagReporter struct {
	bag *diag.Bag
}

// Reporter returns a lexer.Reporter writing into the adapter's Bag.
func (a *ReporterAdapter) Reporter() Reporter {
	return &bagReporter{bag: a.Bag}
}

func (r *bagReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case ReportUnknownChar:
		code = diag.LexUnknownChar
	case ReportUnterminatedString:
		code = diag.LexUnterminatedString
	case ReportUnterminatedChar:
		code = diag.LexUnterminatedChar
	case ReportUnterminatedComment:
		code = diag.LexUnterminatedBlockComment
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
