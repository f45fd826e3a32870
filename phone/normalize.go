package phone

import "strings"

// cleanNumber is normalized input: the digits of the number and whether a
// leading '+' marked it as international.
type cleanNumber struct {
	intl   bool
	digits string
}

// String renders the canonical cleaned text. normalizeInput is idempotent
// over this form: normalizing it again yields an identical cleanNumber.
func (c cleanNumber) String() string {
	if c.intl {
		return "+" + c.digits
	}
	return c.digits
}

// normalizeInput reduces raw human input to digits plus an optional leading
// '+'. Only ASCII digits survive; spaces, dashes, dots, and parentheses are
// formatting noise and are dropped. A '+' is significant only as the first
// non-blank character — anywhere else it makes the input ambiguous
// ("255+712..." is not a number we can trust), so it rejects rather than
// being stripped. Anything else rejects too, including non-ASCII digits.
func normalizeInput(raw string) (cleanNumber, error) {
	s := strings.TrimSpace(raw)
	var b strings.Builder
	intl := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteByte(byte(r))
		case r == '+':
			if i != 0 {
				return cleanNumber{}, ErrInvalidNumber
			}
			intl = true
		case r == ' ', r == '\t', r == '-', r == '.', r == '(', r == ')':
			// formatting noise
		default:
			return cleanNumber{}, ErrInvalidNumber
		}
	}
	if b.Len() == 0 {
		return cleanNumber{}, ErrInvalidNumber
	}
	return cleanNumber{intl: intl, digits: b.String()}, nil
}

// allDigits reports whether s is non-empty and consists of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
