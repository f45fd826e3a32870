package phone

// maxDialCodeLen bounds the resolver's prefix window. ITU country calling
// codes are 1-3 digits; 4 leaves headroom for metadata that keys territories
// on a longer prefix.
const maxDialCodeLen = 4

// dialMatch is the outcome of resolving the dial code at the head of an
// international digit string.
type dialMatch struct {
	dialCode   string   // matched dial-code digits
	candidates []string // owning countries, metadata table order
	national   string   // remaining digits, the national-number candidate
}

// resolveDialCode finds the country calling code prefixing digits by trying
// progressively longer prefixes; the first length with any owner wins.
// Shortest-match precedence mirrors telephony numbering: codes are not
// fixed-width, and no assigned code is a prefix of another assigned code.
// A dial code owned by several countries comes back with every candidate.
func (s *metadataStore) resolveDialCode(digits string) (dialMatch, bool) {
	for l := 1; l <= maxDialCodeLen && l < len(digits); l++ {
		prefix := digits[:l]
		if owners := s.byDial[prefix]; len(owners) > 0 {
			return dialMatch{
				dialCode:   prefix,
				candidates: owners,
				national:   digits[l:],
			}, true
		}
	}
	return dialMatch{}, false
}
