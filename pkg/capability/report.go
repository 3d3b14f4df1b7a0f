package capability

import (
	"io"
	"strings"

	"github.com/goliatone/go-patterns/internal/textwrap"
)

// ReportWidth is the column count a report line is padded to.
const ReportWidth = 70

const ellipsis = "..."

// Reporter writes single-line progress messages that overwrite each other.
// Errors end with a newline so they stay visible.
type Reporter struct {
	w io.Writer
}

// NewReporter binds a reporter to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes "\r" followed by message left-justified to ReportWidth
// columns. Non-error messages wider than ReportWidth are cut and end in
// "...". Write errors are returned unchanged.
func (r *Reporter) Report(message string, isError bool) error {
	_, err := io.WriteString(r.w, FormatReport(message, isError))
	if err != nil {
		return err
	}
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// FormatReport returns the exact bytes Report would write.
func FormatReport(message string, isError bool) string {
	if !isError && textwrap.Width(message) > ReportWidth {
		message = textwrap.Truncate(message, ReportWidth-len(ellipsis)) + ellipsis
	}
	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(message)
	if pad := ReportWidth - textwrap.Width(message); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	if isError {
		b.WriteByte('\n')
	}
	return b.String()
}
