package diag

// Severity ranks how strongly a diagnostic should be surfaced. The zero
// value is informational, so an unset severity never escalates a report.
type Severity uint8

const (
	// SevInfo marks advisory output that needs no action.
	SevInfo Severity = iota
	// SevWarning marks a recoverable problem; formatting continued,
	// possibly with fewer delimiters inserted than the input implied.
	SevWarning
	// SevError marks a problem that makes the formatted result unreliable,
	// such as unbalanced braces or an unclosed grouping at end of file.
	SevError
)

// String returns the uppercase label used in rendered diagnostics.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
