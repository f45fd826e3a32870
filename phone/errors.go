package phone

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNumber is returned whenever input cannot be parsed into a valid
// number: malformed characters, an unknown dial code, a wrong length, an
// unrecognized operator prefix, or no matching type pattern. The one
// condition reported differently is a shared dial code under
// ParseOptions.FailOnAmbiguity, which returns *AmbiguousDialCodeError.
var ErrInvalidNumber = errors.New("invalid phone number")

// AmbiguousDialCodeError reports a dial code owned by more than one country
// when the caller asked for ambiguity to fail instead of being resolved by
// trial validation.
type AmbiguousDialCodeError struct {
	DialCode   int
	Candidates []string // ISO 3166-1 alpha-2, metadata table order
}

func (e *AmbiguousDialCodeError) Error() string {
	return fmt.Sprintf("dial code +%d is shared by %s", e.DialCode, strings.Join(e.Candidates, ", "))
}
