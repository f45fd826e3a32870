package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temboplus/refdata/country"
)

const (
	swiftLenBase   = 8  // institution (4) + country (2) + location (2)
	swiftLenBranch = 11 // base + branch (3)
)

// Failure classes of ValidateSWIFT, matchable with errors.Is.
var (
	ErrSWIFTLength  = errors.New("swift code must be 8 or 11 characters")
	ErrSWIFTFormat  = errors.New("malformed swift code")
	ErrSWIFTCountry = errors.New("swift code names an unknown country")
)

// ValidateSWIFT checks code against the ISO 9362 structure: four letters
// of institution code, two letters of ISO 3166-1 country code, two
// alphanumeric location characters and an optional three-character
// alphanumeric branch. The country must be one the country package knows.
// Case does not matter. Registry membership is not checked; use FromSWIFT
// for that.
func ValidateSWIFT(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != swiftLenBase && len(code) != swiftLenBranch {
		return fmt.Errorf("%w (got %d)", ErrSWIFTLength, len(code))
	}
	if !isLetters(code[:4]) {
		return fmt.Errorf("%w: institution code %q is not four letters", ErrSWIFTFormat, code[:4])
	}
	cc := code[4:6]
	if !isLetters(cc) {
		return fmt.Errorf("%w: country code %q is not two letters", ErrSWIFTFormat, cc)
	}
	if _, ok := country.FromAlpha2(cc); !ok {
		return fmt.Errorf("%w: %q", ErrSWIFTCountry, cc)
	}
	if !isAlphanumeric(code[6:8]) {
		return fmt.Errorf("%w: location code %q is not alphanumeric", ErrSWIFTFormat, code[6:8])
	}
	if len(code) == swiftLenBranch && !isAlphanumeric(code[8:]) {
		return fmt.Errorf("%w: branch code %q is not alphanumeric", ErrSWIFTFormat, code[8:])
	}
	return nil
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
