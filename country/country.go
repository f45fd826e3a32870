// Package country is a static registry of ISO 3166-1 country records:
// alpha-2 and alpha-3 codes, country calling code and national currency.
// It covers the East African Community, its wider neighbourhood and the
// majors that regional payment flows touch; it is not the full ISO table.
package country

import (
	"slices"
	"strings"
)

// Country is one registry record.
type Country struct {
	Alpha2   string `json:"alpha2" toml:"alpha2"`
	Alpha3   string `json:"alpha3" toml:"alpha3"`
	Name     string `json:"name" toml:"name"`
	DialCode int    `json:"dialCode" toml:"dial_code"`
	Currency string `json:"currency" toml:"currency"`
}

// IsZero reports whether c is the zero value rather than a registry record.
func (c Country) IsZero() bool { return c.Alpha2 == "" }

// Flag returns the country's flag emoji, computed from the alpha-2 code
// as a pair of regional indicator symbols.
func (c Country) Flag() string {
	if len(c.Alpha2) != 2 {
		return ""
	}
	return string([]rune{
		0x1F1E6 + rune(c.Alpha2[0]-'A'),
		0x1F1E6 + rune(c.Alpha2[1]-'A'),
	})
}

// FromAlpha2 looks a country up by ISO 3166-1 alpha-2 code,
// case-insensitively.
func FromAlpha2(code string) (Country, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Country{}, false
	}
	c, ok := r.byAlpha2[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// FromAlpha3 looks a country up by ISO 3166-1 alpha-3 code,
// case-insensitively.
func FromAlpha3(code string) (Country, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Country{}, false
	}
	c, ok := r.byAlpha3[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// FromName looks a country up by its English name. Matching is
// case-insensitive and ignores surrounding and repeated whitespace.
func FromName(name string) (Country, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Country{}, false
	}
	c, ok := r.byName[strings.ToUpper(strings.Join(strings.Fields(name), " "))]
	return c, ok
}

// FromDialCode returns every country using a calling code, in registry
// order: most codes return one country, +1 returns the United States and
// Canada, +7 returns Russia and Kazakhstan. The caller owns the returned
// slice.
func FromDialCode(dialCode int) []Country {
	r, err := loadRegistry()
	if err != nil {
		return nil
	}
	return slices.Clone(r.byDial[dialCode])
}

// All returns every registered country in registry order. The caller
// owns the returned slice.
func All() []Country {
	r, err := loadRegistry()
	if err != nil {
		return nil
	}
	return slices.Clone(r.countries)
}
