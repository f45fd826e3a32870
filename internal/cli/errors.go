package cli

import (
	"errors"

	"github.com/temboplus/refdata/internal/cli/ui"
)

// hintedError carries fix suggestions alongside the failure, so the
// final render can show them under the message.
type hintedError struct {
	err         error
	suggestions []string
}

func (e *hintedError) Error() string { return e.err.Error() }

func (e *hintedError) Unwrap() error { return e.err }

// hint attaches try-this suggestions to an error.
func hint(err error, suggestions ...string) error {
	return &hintedError{err: err, suggestions: suggestions}
}

// RenderError formats a command failure for stderr, including any
// attached suggestions.
func RenderError(err error) string {
	var hinted *hintedError
	if errors.As(err, &hinted) {
		return ui.FormatError(hinted.err.Error(), hinted.suggestions...)
	}
	return ui.FormatError(err.Error())
}
