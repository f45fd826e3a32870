package phone

import "strconv"

// Operator identifies a mobile network operator and the mobile-money
// service it runs.
type Operator struct {
	ID          string `json:"id"`          // stable identifier, e.g. "VODACOM"
	Name        string `json:"name"`        // display name, e.g. "Vodacom"
	MobileMoney string `json:"mobileMoney"` // mobile-money brand, e.g. "M-Pesa"
}

// NumberType classifies a number by the metadata pattern it matched.
// Numbers validated by a country rule are always TypeMobile: the operator
// prefix tables cover mobile ranges only.
type NumberType int

const (
	TypeUnknown NumberType = iota
	TypeLandline
	TypeMobile
	TypeTollFree
	TypePremiumRate
	TypeSharedCost
	TypeEmergency
	TypeSpecialServices
	TypeVoIP
	TypePersonal
)

// patternOrder is the fixed order in which generic validation applies type
// patterns. The first pattern that matches classifies the number.
var patternOrder = [...]NumberType{
	TypeLandline,
	TypeMobile,
	TypeTollFree,
	TypePremiumRate,
	TypeSharedCost,
	TypeEmergency,
	TypeSpecialServices,
	TypeVoIP,
	TypePersonal,
}

var typeNames = map[NumberType]string{
	TypeUnknown:         "unknown",
	TypeLandline:        "landline",
	TypeMobile:          "mobile",
	TypeTollFree:        "toll-free",
	TypePremiumRate:     "premium-rate",
	TypeSharedCost:      "shared-cost",
	TypeEmergency:       "emergency",
	TypeSpecialServices: "special-services",
	TypeVoIP:            "voip",
	TypePersonal:        "personal",
}

func (t NumberType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Number is a parsed and validated phone number. The zero value is not a
// valid number; the only way to obtain one is Parse or ParseWithOptions,
// so holding a non-zero Number is proof of validation.
type Number struct {
	country  string // ISO 3166-1 alpha-2
	dialCode int    // country calling code
	national string // national significant number: digits, no trunk zero
	numType  NumberType
	operator *Operator // set only by country-rule validation
}

// Country returns the ISO 3166-1 alpha-2 code of the owning country.
func (n Number) Country() string { return n.country }

// DialCode returns the numeric country calling code, e.g. 255.
func (n Number) DialCode() int { return n.dialCode }

// National returns the national significant number: digits only, without
// the dial code or a trunk zero.
func (n Number) National() string { return n.national }

// Type returns the classification of the number.
func (n Number) Type() NumberType { return n.numType }

// Operator returns the mobile network operator that owns the number's
// prefix. It is only known for countries with a specialized rule set;
// ok is false otherwise.
func (n Number) Operator() (op Operator, ok bool) {
	if n.operator == nil {
		return Operator{}, false
	}
	return *n.operator, true
}

// Label returns the operator display name, or "" when the operator is not
// known. Convenient for UI captions next to a formatted number.
func (n Number) Label() string {
	if n.operator == nil {
		return ""
	}
	return n.operator.Name
}

// E164 returns the canonical "+<dialcode><national>" form. It is the
// identity of the number: two Numbers are the same number exactly when
// their E164 strings are equal.
func (n Number) E164() string {
	return "+" + strconv.Itoa(n.dialCode) + n.national
}

// IsZero reports whether n is the zero value rather than a parsed number.
func (n Number) IsZero() bool { return n.national == "" }

// String returns the canonical E.164 form.
func (n Number) String() string { return n.E164() }
