package phone

import (
	"strconv"
	"strings"
)

// Format selects one of the four textual renderings of a Number.
type Format int

const (
	// Compact is the bare national significant number: "712345678".
	Compact Format = iota
	// International is the dial code and the national number with display
	// grouping: "+255 712 345 678".
	International
	// National is the domestic dialing form with the trunk zero:
	// "0712 345 678". Countries without a known local convention render
	// the bare national number instead.
	National
	// RFC3966 is the tel URI form: "tel:+255712345678".
	RFC3966
)

// Format renders the number in the requested form. It is total: every
// Number renders in every format, falling back to ungrouped digits where
// no country grouping is defined, and unknown Format values render the
// canonical E.164 form.
func (n Number) Format(f Format) string {
	switch f {
	case Compact:
		return n.national
	case International:
		return "+" + strconv.Itoa(n.dialCode) + " " + n.grouped()
	case National:
		if _, ok := ruleFor(n.country); !ok {
			return n.national
		}
		return "0" + n.grouped()
	case RFC3966:
		return "tel:" + n.E164()
	}
	return n.E164()
}

// grouped returns the national number with the country's display grouping,
// or ungrouped when none is defined.
func (n Number) grouped() string {
	r, ok := ruleFor(n.country)
	if !ok || len(r.groups) == 0 {
		return n.national
	}
	var parts []string
	rest := n.national
	for _, g := range r.groups {
		if g >= len(rest) {
			break
		}
		parts = append(parts, rest[:g])
		rest = rest[g:]
	}
	parts = append(parts, rest)
	return strings.Join(parts, " ")
}
