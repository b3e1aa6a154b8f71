package domain

import "fmt"

// Diagnostic is a non-fatal warning produced while parsing legacy data.
// Skipped rows and backfilled defaults are reported here instead of failing
// the conversion; legacy configs are historically messy.
type Diagnostic struct {
	Line    int    `json:"line,omitempty"` // 1-based source line, 0 when not line-scoped
	Message string `json:"message"`
	RowSkip bool   `json:"-"` // true when a source row was dropped, not just defaulted
}

// Diagf builds a line-scoped diagnostic.
func Diagf(line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}

// SkipDiagf builds a diagnostic for a dropped source row.
func SkipDiagf(line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Line: line, Message: fmt.Sprintf(format, args...), RowSkip: true}
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}
