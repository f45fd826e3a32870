package phone

// validateGeneric checks a national-number candidate against a country's
// metadata: digit content, length bounds, then the type patterns in their
// fixed order. The first matching pattern classifies the number. Generic
// results never carry operator metadata — prefix ownership is only modeled
// for countries with a specialized rule set.
func (s *metadataStore) validateGeneric(country, nsn string) (Number, bool) {
	meta := s.country(country)
	if meta == nil {
		return Number{}, false
	}
	if !allDigits(nsn) || nsn[0] == '0' {
		return Number{}, false
	}
	if len(nsn) < meta.minLen || len(nsn) > meta.maxLen {
		return Number{}, false
	}
	for _, typ := range patternOrder {
		re := meta.patterns[typ]
		if re != nil && re.MatchString(nsn) {
			return Number{
				country:  country,
				dialCode: meta.dialCode,
				national: nsn,
				numType:  typ,
			}, true
		}
	}
	return Number{}, false
}
