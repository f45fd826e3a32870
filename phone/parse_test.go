package phone

import (
	"errors"
	"testing"

	"github.com/temboplus/refdata/internal/testutil"
)

func TestParse_TanzanianMobile(t *testing.T) {
	t.Parallel()
	n, err := Parse("+255712345678")
	testutil.NoError(t, err)
	testutil.Equal(t, "TZ", n.Country())
	testutil.Equal(t, 255, n.DialCode())
	testutil.Equal(t, "712345678", n.National())
	testutil.Equal(t, TypeMobile, n.Type())
	testutil.Equal(t, "+255712345678", n.E164())
	testutil.Equal(t, "+255712345678", n.String())
	testutil.False(t, n.IsZero(), "parsed number reported zero")

	op, ok := n.Operator()
	testutil.True(t, ok, "operator not resolved")
	testutil.Equal(t, "TIGO", op.ID)
	testutil.Equal(t, "Tigo", op.Name)
	testutil.Equal(t, "Tigo Pesa", op.MobileMoney)
	testutil.Equal(t, "Tigo", n.Label())
}

// The four ways a Tanzanian writes the same number all canonicalize to one
// E.164 string.
func TestParse_LocalShapes(t *testing.T) {
	t.Parallel()
	shapes := []string{
		"+255712345678",
		"255712345678",
		"0712345678",
		"712345678",
	}
	for _, raw := range shapes {
		n, err := ParseWithOptions(raw, ParseOptions{DefaultCountry: "TZ"})
		if err != nil {
			t.Fatalf("shape %q: %v", raw, err)
		}
		testutil.Equal(t, "+255712345678", n.E164())
		testutil.Equal(t, "712345678", n.National())
	}
}

func TestParse_Table(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		raw      string
		opts     ParseOptions
		wantE164 string
		wantType NumberType
		wantOpID string // "" means no operator expected
		wantErr  bool
	}{
		{
			name:     "tz vodacom with spacing",
			raw:      "+255 754 123 456",
			wantE164: "+255754123456",
			wantType: TypeMobile,
			wantOpID: "VODACOM",
		},
		{
			name:     "tz airtel with dashes",
			raw:      "+255-684-123-456",
			wantE164: "+255684123456",
			wantType: TypeMobile,
			wantOpID: "AIRTEL",
		},
		{
			name:     "tz halotel",
			raw:      "+255622123456",
			wantE164: "+255622123456",
			wantType: TypeMobile,
			wantOpID: "HALOTEL",
		},
		{
			name:     "tz ttcl mobile",
			raw:      "+255732123456",
			wantE164: "+255732123456",
			wantType: TypeMobile,
			wantOpID: "TTCL",
		},
		{
			name:     "tz zantel",
			raw:      "+255772123456",
			wantE164: "+255772123456",
			wantType: TypeMobile,
			wantOpID: "ZANTEL",
		},
		{
			name:     "tz landline validated generically",
			raw:      "+255222199760",
			wantE164: "+255222199760",
			wantType: TypeLandline,
		},
		{
			name:     "tz toll free",
			raw:      "+255800123456",
			wantE164: "+255800123456",
			wantType: TypeTollFree,
		},
		{
			name:    "tz unknown mobile range",
			raw:     "+255912345678",
			wantErr: true,
		},
		{
			name:    "tz too short",
			raw:     "+25571234567",
			wantErr: true,
		},
		{
			name:    "tz too long",
			raw:     "+2557123456789",
			wantErr: true,
		},
		{
			name:    "trunk zero inside international form",
			raw:     "+2550712345678",
			wantErr: true,
		},
		{
			name:     "ke safaricom",
			raw:      "+254712345678",
			wantE164: "+254712345678",
			wantType: TypeMobile,
			wantOpID: "SAFARICOM",
		},
		{
			name:     "ke new 11x range in national form",
			raw:      "0110123456",
			opts:     ParseOptions{DefaultCountry: "ke"},
			wantE164: "+254110123456",
			wantType: TypeMobile,
			wantOpID: "SAFARICOM",
		},
		{
			name:     "ke equitel",
			raw:      "+254765123456",
			wantE164: "+254765123456",
			wantType: TypeMobile,
			wantOpID: "EQUITEL",
		},
		{
			name:     "ke unregistered prefix falls back to metadata",
			raw:      "+254742123456",
			wantE164: "+254742123456",
			wantType: TypeMobile,
		},
		{
			name:     "us landline punctuation",
			raw:      "+1 (202) 555-0123",
			wantE164: "+12025550123",
			wantType: TypeLandline,
		},
		{
			name:     "gb london",
			raw:      "+44 20 7946 0958",
			wantE164: "+442079460958",
			wantType: TypeLandline,
		},
		{
			name:     "in mobile",
			raw:      "+91 98765 43210",
			wantE164: "+919876543210",
			wantType: TypeMobile,
		},
		{
			name:     "hint irrelevant for unshared dial code",
			raw:      "+255712345678",
			opts:     ParseOptions{DefaultCountry: "KE"},
			wantE164: "+255712345678",
			wantType: TypeMobile,
			wantOpID: "TIGO",
		},
		{
			name:    "unknown dial code",
			raw:     "+999123456789",
			wantErr: true,
		},
		{
			name:    "plus with no national digits",
			raw:     "+255",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "letters",
			raw:     "not a number",
			wantErr: true,
		},
		{
			name:    "national format without a hint",
			raw:     "0712345678",
			wantErr: true,
		},
		{
			name:    "unknown hint country",
			raw:     "0712345678",
			opts:    ParseOptions{DefaultCountry: "XX"},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := ParseWithOptions(tc.raw, tc.opts)
			if tc.wantErr {
				testutil.True(t, errors.Is(err, ErrInvalidNumber), "got %v, want ErrInvalidNumber", err)
				testutil.True(t, n.IsZero(), "error path returned non-zero number")
				return
			}
			testutil.NoError(t, err)
			testutil.Equal(t, tc.wantE164, n.E164())
			testutil.Equal(t, tc.wantType, n.Type())
			op, ok := n.Operator()
			if tc.wantOpID == "" {
				testutil.False(t, ok, "unexpected operator %v", op)
				testutil.Equal(t, "", n.Label())
			} else {
				testutil.True(t, ok, "operator not resolved")
				testutil.Equal(t, tc.wantOpID, op.ID)
			}
		})
	}
}

func TestParse_SharedDialCode(t *testing.T) {
	t.Parallel()

	t.Run("first owner wins by default", func(t *testing.T) {
		t.Parallel()
		n, err := Parse("+12025550123")
		testutil.NoError(t, err)
		testutil.Equal(t, "US", n.Country())
		testutil.Equal(t, 1, n.DialCode())
		testutil.Equal(t, "2025550123", n.National())
	})

	t.Run("hint settles ownership", func(t *testing.T) {
		t.Parallel()
		n, err := ParseWithOptions("+12025550123", ParseOptions{DefaultCountry: "CA"})
		testutil.NoError(t, err)
		testutil.Equal(t, "CA", n.Country())
	})

	t.Run("lowercase hint settles ownership", func(t *testing.T) {
		t.Parallel()
		n, err := ParseWithOptions("+12025550123", ParseOptions{DefaultCountry: "ca"})
		testutil.NoError(t, err)
		testutil.Equal(t, "CA", n.Country())
	})

	t.Run("hint that does not own the code is ignored", func(t *testing.T) {
		t.Parallel()
		n, err := ParseWithOptions("+12025550123", ParseOptions{DefaultCountry: "TZ"})
		testutil.NoError(t, err)
		testutil.Equal(t, "US", n.Country())
	})

	t.Run("strict mode reports the candidates", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithOptions("+12025550123", ParseOptions{FailOnAmbiguity: true})
		var ambErr *AmbiguousDialCodeError
		testutil.True(t, errors.As(err, &ambErr), "got %v, want *AmbiguousDialCodeError", err)
		testutil.Equal(t, 1, ambErr.DialCode)
		testutil.SliceLen(t, ambErr.Candidates, 2)
		testutil.Equal(t, "US", ambErr.Candidates[0])
		testutil.Equal(t, "CA", ambErr.Candidates[1])
		testutil.ErrorContains(t, err, "US")
		testutil.ErrorContains(t, err, "CA")
	})

	t.Run("strict mode with owning hint succeeds", func(t *testing.T) {
		t.Parallel()
		n, err := ParseWithOptions("+12025550123", ParseOptions{DefaultCountry: "CA", FailOnAmbiguity: true})
		testutil.NoError(t, err)
		testutil.Equal(t, "CA", n.Country())
	})

	// Russia and Kazakhstan share +7; their number plans are disjoint
	// enough for trial order to sort real numbers correctly.
	t.Run("kazakh mobile rejected by ru and claimed by kz", func(t *testing.T) {
		t.Parallel()
		n, err := Parse("+77011234567")
		testutil.NoError(t, err)
		testutil.Equal(t, "KZ", n.Country())
		testutil.Equal(t, TypeMobile, n.Type())
	})

	t.Run("russian mobile claimed first", func(t *testing.T) {
		t.Parallel()
		n, err := Parse("+79261234567")
		testutil.NoError(t, err)
		testutil.Equal(t, "RU", n.Country())
		testutil.Equal(t, TypeMobile, n.Type())
	})
}

// The digits as entered are the first candidate reading; stripping the
// dial code is a fallback, not the default.
func TestParse_NationalReadingOrder(t *testing.T) {
	t.Parallel()

	// Nine digits that happen to start with 255: a valid TZ landline, not
	// a truncated international number.
	n, err := ParseWithOptions("255712345", ParseOptions{DefaultCountry: "TZ"})
	testutil.NoError(t, err)
	testutil.Equal(t, "+255255712345", n.E164())
	testutil.Equal(t, TypeLandline, n.Type())

	// Twelve digits starting with 255: only the dial-stripped reading is
	// a valid TZ number.
	n, err = ParseWithOptions("255712345678", ParseOptions{DefaultCountry: "TZ"})
	testutil.NoError(t, err)
	testutil.Equal(t, "+255712345678", n.E164())
	testutil.Equal(t, TypeMobile, n.Type())
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	testutil.True(t, IsValid("+255712345678"), "valid international rejected")
	testutil.False(t, IsValid("0712345678"), "national format accepted without hint")
	testutil.False(t, IsValid("+255912345678"), "invalid range accepted")
	testutil.False(t, IsValid(""), "empty accepted")
}

func TestIsValidForCountry(t *testing.T) {
	t.Parallel()
	testutil.True(t, IsValidForCountry("0712345678", "TZ"), "TZ national rejected")
	testutil.True(t, IsValidForCountry("+255712345678", "TZ"), "TZ international rejected")
	testutil.False(t, IsValidForCountry("0912345678", "TZ"), "invalid TZ range accepted")
	testutil.False(t, IsValidForCountry("0712345678", ""), "empty country accepted national input")
}
