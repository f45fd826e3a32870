package bank

import (
	"slices"
	"strings"
)

// Bank is one registry record. The SWIFT code is the 8-character
// institution BIC; branch codes are not part of a bank's identity.
type Bank struct {
	Name      string `json:"name" toml:"name"`
	ShortName string `json:"shortName" toml:"short_name"`
	SWIFT     string `json:"swift" toml:"swift"`
	Country   string `json:"country" toml:"country"`
}

// IsZero reports whether b is the zero value rather than a registry record.
func (b Bank) IsZero() bool { return b.SWIFT == "" }

// FromSWIFT looks a bank up by SWIFT/BIC code, case-insensitively. An
// 11-character BIC matches through its institution prefix, so
// "CORUTZTZXXX" and "corutztz" both find CRDB.
func FromSWIFT(code string) (Bank, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Bank{}, false
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != swiftLenBase && len(code) != swiftLenBranch {
		return Bank{}, false
	}
	b, ok := r.bySWIFT[code[:swiftLenBase]]
	return b, ok
}

// FromName looks a bank up by full or short name. Matching is
// case-insensitive and ignores surrounding and repeated whitespace.
func FromName(name string) (Bank, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Bank{}, false
	}
	b, ok := r.byName[normalizeName(name)]
	return b, ok
}

// ByCountry returns every registered bank of an ISO 3166-1 alpha-2
// country, in registry order. The caller owns the returned slice.
func ByCountry(cc string) []Bank {
	r, err := loadRegistry()
	if err != nil {
		return nil
	}
	cc = strings.ToUpper(strings.TrimSpace(cc))
	var out []Bank
	for _, b := range r.banks {
		if b.Country == cc {
			out = append(out, b)
		}
	}
	return out
}

// All returns every registered bank in registry order. The caller owns
// the returned slice.
func All() []Bank {
	r, err := loadRegistry()
	if err != nil {
		return nil
	}
	return slices.Clone(r.banks)
}

// normalizeName upper-cases and collapses whitespace so "crdb  bank"
// matches "CRDB Bank".
func normalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
