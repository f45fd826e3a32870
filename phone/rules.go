package phone

// countryRule is a specialized national-number rule set. Countries that
// have one get exact-length and operator-prefix validation, and their
// numbers carry the owning operator. Supporting a new country is a matter
// of adding a rule value to countryRules — there is no type hierarchy to
// extend.
type countryRule struct {
	country   string              // ISO 3166-1 alpha-2
	dialCode  int                 // must agree with the metadata table
	nsnLength int                 // exact national-number length, not a range
	operators map[string]Operator // leading two NSN digits -> operator
	groups    []int               // digit grouping for display formatting
}

// countryRules registers every specialized rule set.
var countryRules = map[string]*countryRule{
	"TZ": &tanzaniaRule,
	"KE": &kenyaRule,
}

// ruleFor returns the specialized rule for a country, if one is registered.
func ruleFor(country string) (*countryRule, bool) {
	r, ok := countryRules[country]
	return r, ok
}

// validate checks a national-number candidate against the rule: digits
// only, the exact mandated length, and a recognized operator prefix. A
// rejection is not an error — the caller treats it as "try another
// strategy".
func (r *countryRule) validate(nsn string) (Number, bool) {
	if len(nsn) != r.nsnLength || !allDigits(nsn) {
		return Number{}, false
	}
	op, ok := r.operators[nsn[:2]]
	if !ok {
		return Number{}, false
	}
	return Number{
		country:  r.country,
		dialCode: r.dialCode,
		national: nsn,
		numType:  TypeMobile,
		operator: &op,
	}, true
}
