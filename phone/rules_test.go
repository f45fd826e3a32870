package phone

import (
	"strings"
	"testing"

	"github.com/temboplus/refdata/internal/testutil"
)

// Any candidate whose length differs from the mandated one is rejected,
// whatever its digits.
func TestCountryRule_LengthInvariant(t *testing.T) {
	t.Parallel()
	for cc, rule := range countryRules {
		for length := 0; length <= 14; length++ {
			if length == rule.nsnLength {
				continue
			}
			for _, fill := range []string{"7", "1", "0"} {
				candidate := strings.Repeat(fill, length)
				if _, ok := rule.validate(candidate); ok {
					t.Errorf("%s rule accepted %q (len %d, want %d)", cc, candidate, length, rule.nsnLength)
				}
			}
		}
	}
}

// Every configured prefix, padded with zeros to the mandated length,
// validates and resolves to its owner.
func TestCountryRule_PrefixInvariant(t *testing.T) {
	t.Parallel()
	for cc, rule := range countryRules {
		for prefix, want := range rule.operators {
			candidate := prefix + strings.Repeat("0", rule.nsnLength-len(prefix))
			n, ok := rule.validate(candidate)
			testutil.True(t, ok, "%s rule rejected %q", cc, candidate)
			op, hasOp := n.Operator()
			testutil.True(t, hasOp, "%s %q missing operator", cc, candidate)
			testutil.Equal(t, want.ID, op.ID)
			testutil.NotEqual(t, "", op.Name)
			testutil.NotEqual(t, "", op.MobileMoney)
			testutil.Equal(t, TypeMobile, n.Type())
			testutil.Equal(t, cc, n.Country())
		}
	}
}

func TestCountryRule_RejectsUnknownPrefix(t *testing.T) {
	t.Parallel()
	if _, ok := tanzaniaRule.validate("912345678"); ok {
		t.Error("TZ rule accepted unrecognized prefix 91")
	}
	if _, ok := kenyaRule.validate("991234567"); ok {
		t.Error("KE rule accepted unrecognized prefix 99")
	}
}

func TestCountryRule_RejectsNonDigits(t *testing.T) {
	t.Parallel()
	for _, candidate := range []string{"71234567a", "7123 5678", "712-45678"} {
		if _, ok := tanzaniaRule.validate(candidate); ok {
			t.Errorf("TZ rule accepted non-digit candidate %q", candidate)
		}
	}
}

func TestTanzaniaOperators(t *testing.T) {
	t.Parallel()
	cases := []struct {
		prefix, id, money string
	}{
		{"71", "TIGO", "Tigo Pesa"},
		{"74", "VODACOM", "M-Pesa"},
		{"78", "AIRTEL", "Airtel Money"},
		{"62", "HALOTEL", "HaloPesa"},
		{"73", "TTCL", "T-Pesa"},
		{"77", "ZANTEL", "Ezy Pesa"},
	}
	for _, c := range cases {
		op, ok := tanzaniaRule.operators[c.prefix]
		testutil.True(t, ok, "missing TZ prefix %s", c.prefix)
		testutil.Equal(t, c.id, op.ID)
		testutil.Equal(t, c.money, op.MobileMoney)
	}
}

func TestKenyaOperators(t *testing.T) {
	t.Parallel()
	cases := []struct {
		prefix, id, money string
	}{
		{"71", "SAFARICOM", "M-PESA"},
		{"11", "SAFARICOM", "M-PESA"},
		{"73", "AIRTEL", "Airtel Money"},
		{"77", "TELKOM", "T-Kash"},
		{"76", "EQUITEL", "Equitel Money"},
	}
	for _, c := range cases {
		op, ok := kenyaRule.operators[c.prefix]
		testutil.True(t, ok, "missing KE prefix %s", c.prefix)
		testutil.Equal(t, c.id, op.ID)
		testutil.Equal(t, c.money, op.MobileMoney)
	}
}
