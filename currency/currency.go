// Package currency is a static registry of ISO 4217 currencies covering
// East Africa and the majors, with locale-aware amount formatting.
package currency

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is one registry record. MinorUnits is the ISO 4217 exponent:
// the number of digits after the decimal separator (0 for UGX, 2 for TZS).
type Currency struct {
	Code       string `json:"code" toml:"code"`
	Numeric    int    `json:"numeric" toml:"numeric"`
	Name       string `json:"name" toml:"name"`
	Symbol     string `json:"symbol" toml:"symbol"`
	MinorUnits int    `json:"minorUnits" toml:"minor_units"`
}

// IsZero reports whether c is the zero value rather than a registry record.
func (c Currency) IsZero() bool { return c.Code == "" }

// english groups digits the way the registry's audience writes amounts.
var english = message.NewPrinter(language.English)

// Format renders an amount with the currency symbol, thousands grouping
// and the currency's minor-unit digits: TZS 1234567.8 formats as
// "TSh 1,234,567.80", UGX 50000 as "USh 50,000". Symbols that end in a
// letter are separated from the amount by a space; sign symbols like "$"
// attach directly.
func (c Currency) Format(amount float64) string {
	rendered := english.Sprint(number.Decimal(amount, number.Scale(c.MinorUnits)))
	if r, _ := utf8.DecodeLastRuneInString(c.Symbol); unicode.IsLetter(r) {
		return c.Symbol + " " + rendered
	}
	return c.Symbol + rendered
}

// FromCode looks a currency up by ISO 4217 alphabetic code,
// case-insensitively.
func FromCode(code string) (Currency, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Currency{}, false
	}
	c, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// FromNumeric looks a currency up by ISO 4217 numeric code.
func FromNumeric(numeric int) (Currency, bool) {
	r, err := loadRegistry()
	if err != nil {
		return Currency{}, false
	}
	c, ok := r.byNumeric[numeric]
	return c, ok
}

// All returns every registered currency in registry order. The caller
// owns the returned slice.
func All() []Currency {
	r, err := loadRegistry()
	if err != nil {
		return nil
	}
	return slices.Clone(r.currencies)
}
