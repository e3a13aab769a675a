// Package status reports the outcome of the last user action.
package status

import (
	"errors"
	"fmt"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Severity tags a status message and picks its style.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Reporter keeps only the last message shown.
type Reporter struct {
	message  string
	severity Severity
}

// Report replaces the current message.
func (r *Reporter) Report(msg string, sev Severity) {
	r.message = msg
	r.severity = sev
}

// Success reports a formatted success message.
func (r *Reporter) Success(format string, args ...any) {
	r.Report(fmt.Sprintf(format, args...), SeveritySuccess)
}

// Info reports a formatted neutral message.
func (r *Reporter) Info(format string, args ...any) {
	r.Report(fmt.Sprintf(format, args...), SeverityInfo)
}

// Error reports err as user-facing text.
func (r *Reporter) Error(err error) {
	r.Report(Describe(err), SeverityError)
}

// Clear removes the current message.
func (r *Reporter) Clear() {
	r.message = ""
	r.severity = SeverityInfo
}

// Last returns the current message and its severity.
func (r *Reporter) Last() (string, Severity) {
	return r.message, r.severity
}

// View renders the message with the style matching its severity.
func (r *Reporter) View() string {
	if r.message == "" {
		return ""
	}
	switch r.severity {
	case SeveritySuccess:
		return theme.StatusSuccess.Render(r.message)
	case SeverityError:
		return theme.StatusError.Render(r.message)
	default:
		return theme.StatusInfo.Render(r.message)
	}
}

// Describe turns an error into the message shown to the user.
func Describe(err error) string {
	var (
		unavailable *deck.ErrSourceUnavailable
		empty       *deck.ErrEmptyResult
		malformed   *deck.ErrMalformedJSON
		invalid     *deck.ErrInvalidSchema
		badCount    *deck.ErrInvalidCount
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unavailable):
		return fmt.Sprintf("Error: file %s.json not found.", unavailable.Source)
	case errors.As(err, &empty):
		return "Error: no data to display."
	case errors.As(err, &malformed):
		if malformed.Source != "" {
			return fmt.Sprintf("Error: %s.json is not valid JSON.", malformed.Source)
		}
		return "Error: invalid JSON. Check the syntax."
	case errors.As(err, &invalid):
		return "Error: invalid format. Expected an array of {question, answer} objects."
	case errors.As(err, &badCount):
		return fmt.Sprintf("Enter a count from 1 to %d.", badCount.Max)
	default:
		return "Error: " + err.Error()
	}
}
