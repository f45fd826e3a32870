package phone

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParseOptions steer country resolution for input that needs help.
type ParseOptions struct {
	// DefaultCountry is an ISO 3166-1 alpha-2 hint. It is required to parse
	// numbers in national format ("0712 345 678") and it settles shared
	// dial codes when the hinted country owns the code.
	DefaultCountry string

	// FailOnAmbiguity makes Parse return an *AmbiguousDialCodeError when a
	// dial code is owned by several countries and DefaultCountry does not
	// settle it. When false, the candidates are tried in metadata table
	// order and the first whose validator accepts the number wins.
	FailOnAmbiguity bool
}

// Parse parses raw input in international format into a validated Number.
// Input that is not a valid number yields ErrInvalidNumber; no partially
// validated Number is ever returned.
func Parse(raw string) (Number, error) {
	return ParseWithOptions(raw, ParseOptions{})
}

// ParseWithOptions parses raw input into a validated Number.
//
// Input beginning with '+' resolves its country through the dial-code
// table. Input without '+' is read in the DefaultCountry's national
// conventions; the four local shapes of the same Tanzanian number —
// "0712345678", "712345678", "255712345678", "+255712345678" — all
// canonicalize to +255712345678.
//
// For a resolved country the generic metadata validation is the baseline;
// a registered country rule is consulted as well, and its result wins
// because it is richer (it knows the operator). Failure to resolve a
// country at all fails the parse outright.
func ParseWithOptions(raw string, opts ParseOptions) (Number, error) {
	store, err := loadStore()
	if err != nil {
		return Number{}, fmt.Errorf("phone metadata unavailable: %w", err)
	}
	cleaned, err := normalizeInput(raw)
	if err != nil {
		return Number{}, err
	}
	if cleaned.intl {
		return parseInternational(store, cleaned.digits, opts)
	}
	hint := strings.ToUpper(opts.DefaultCountry)
	if hint == "" {
		return Number{}, ErrInvalidNumber
	}
	return parseNational(store, cleaned.digits, hint)
}

// IsValid reports whether raw parses as a valid number without any country
// hint, i.e. in international format.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// IsValidForCountry reports whether raw parses as a valid number of the
// given country, accepting national-format input.
func IsValidForCountry(raw, country string) bool {
	_, err := ParseWithOptions(raw, ParseOptions{DefaultCountry: country})
	return err == nil
}

// parseInternational resolves the dial code, applies the ambiguity policy,
// and validates the remainder for each candidate country in turn.
func parseInternational(s *metadataStore, digits string, opts ParseOptions) (Number, error) {
	match, ok := s.resolveDialCode(digits)
	if !ok {
		return Number{}, ErrInvalidNumber
	}
	candidates := match.candidates
	if len(candidates) > 1 {
		hint := strings.ToUpper(opts.DefaultCountry)
		switch {
		case hint != "" && slices.Contains(candidates, hint):
			candidates = []string{hint}
		case opts.FailOnAmbiguity:
			code, _ := strconv.Atoi(match.dialCode)
			return Number{}, &AmbiguousDialCodeError{
				DialCode:   code,
				Candidates: slices.Clone(match.candidates),
			}
		}
	}
	for _, cc := range candidates {
		if n, ok := validateForCountry(s, cc, match.national); ok {
			return n, nil
		}
	}
	return Number{}, ErrInvalidNumber
}

// parseNational reads bare digits in one country's national conventions.
func parseNational(s *metadataStore, digits, country string) (Number, error) {
	meta := s.country(country)
	if meta == nil {
		return Number{}, ErrInvalidNumber
	}
	for _, nsn := range nationalCandidates(meta, digits) {
		if n, ok := validateForCountry(s, country, nsn); ok {
			return n, nil
		}
	}
	return Number{}, ErrInvalidNumber
}

// nationalCandidates lists the plausible national-number readings of a bare
// digit string: as entered, with the trunk zero stripped, and with the
// country's own dial code stripped. Orderless input shapes, one canonical
// number.
func nationalCandidates(meta *countryMeta, digits string) []string {
	cands := []string{digits}
	if strings.HasPrefix(digits, "0") && len(digits) > 1 {
		cands = append(cands, digits[1:])
	}
	if dial := strconv.Itoa(meta.dialCode); strings.HasPrefix(digits, dial) && len(digits) > len(dial) {
		cands = append(cands, digits[len(dial):])
	}
	return cands
}

// validateForCountry runs the dispatcher's preference order for one
// resolved country: the specialized rule wins when registered and
// accepting, the generic metadata validation is the baseline.
func validateForCountry(s *metadataStore, country, nsn string) (Number, bool) {
	baseline, baselineOK := s.validateGeneric(country, nsn)
	if rule, ok := ruleFor(country); ok {
		if n, ok := rule.validate(nsn); ok {
			return n, true
		}
	}
	if baselineOK {
		return baseline, true
	}
	return Number{}, false
}
