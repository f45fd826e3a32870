package phone

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/require"
)

// Cross-checks against libphonenumber on numbers both engines carry
// metadata for. The corpus sticks to well-known allocated ranges: our
// validation is structural while libphonenumber also tracks per-range
// allocation, so the two engines can disagree on unallocated-but-well-formed
// numbers.
func TestAgainstLibphonenumber(t *testing.T) {
	t.Parallel()
	valid := []string{
		"+255712345678",
		"+255754123456",
		"+255684123456",
		"+254712345678",
		"+254110123456",
		"+79261234567",
		"+77011234567",
		"+442079460958",
		"+919876543210",
	}
	for _, raw := range valid {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			ours, err := Parse(raw)
			require.NoError(t, err)

			ref, err := phonenumbers.Parse(raw, "")
			require.NoError(t, err)
			require.True(t, phonenumbers.IsValidNumber(ref), "oracle rejected %s", raw)
			require.Equal(t, phonenumbers.Format(ref, phonenumbers.E164), ours.E164())
			require.Equal(t, phonenumbers.GetRegionCodeForNumber(ref), ours.Country())
		})
	}
}

func TestAgainstLibphonenumber_Invalid(t *testing.T) {
	t.Parallel()
	invalid := []string{
		"+255912345678", // no TZ range starts with 9
		"+25571234",     // short of the TZ length
		"+2550712345678",
	}
	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(raw)
			require.ErrorIs(t, err, ErrInvalidNumber)

			ref, err := phonenumbers.Parse(raw, "")
			if err != nil {
				return // oracle would not even parse it
			}
			require.False(t, phonenumbers.IsValidNumber(ref), "oracle accepted %s", raw)
		})
	}
}
