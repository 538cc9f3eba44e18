package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pawnfmt/internal/diag"
	"pawnfmt/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
)

// Pretty formats diagnostics for humans, one per line:
// <path>:<line>:<col>: <severity>[<code>]: <message>
// followed by indented notes. Call bag.Sort() first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		loc := resolveLoc(fs, d.Primary)
		sev := severityLabel(d.Severity, opts.Color)
		fmt.Fprintf(w, "%s: %s[%s]: %s\n", loc, sev, d.Code.ID(), d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s: note: %s\n", resolveLoc(fs, n.Span), n.Msg)
		}
	}
}

func resolveLoc(fs *source.FileSet, sp source.Span) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}

func severityLabel(sev diag.Severity, colored bool) string {
	var c *color.Color
	var label string
	switch sev {
	case diag.SevError:
		c, label = sevErrorColor, "error"
	case diag.SevWarning:
		c, label = sevWarningColor, "warning"
	default:
		c, label = sevInfoColor, "info"
	}
	if !colored {
		return label
	}
	return c.Sprint(label)
}
