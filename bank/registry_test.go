package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temboplus/refdata/internal/testutil"
)

func TestNewRegistryBadTOML(t *testing.T) {
	_, err := newRegistry([]byte("[[banks]\nname = oops"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse bank registry")
}

func TestNewRegistryEmpty(t *testing.T) {
	_, err := newRegistry([]byte(""))
	require.Error(t, err)
	assert.ErrorContains(t, err, "no banks")
}

// Defective records are dropped one by one; the rest of the registry
// stays serviceable.
func TestNewRegistrySkipsDefectiveRecords(t *testing.T) {
	testutil.SilenceLogs(t)
	doc := []byte(`
[[banks]]
name = "Good Bank"
short_name = "Good"
swift = "CORUTZTZ"
country = "TZ"

[[banks]]
name = "Bad Swift Bank"
short_name = "BadSwift"
swift = "NOPE"
country = "TZ"

[[banks]]
name = ""
short_name = "Nameless"
swift = "NMIBTZTZ"
country = "TZ"

[[banks]]
name = "Duplicate Bank"
short_name = "Dup"
swift = "CORUTZTZXXX"
country = "TZ"
`)
	r, err := newRegistry(doc)
	require.NoError(t, err)
	assert.Len(t, r.banks, 1)
	assert.Equal(t, "Good Bank", r.banks[0].Name)

	_, ok := r.bySWIFT["NMIBTZTZ"]
	assert.False(t, ok)
}

func TestNewRegistryAllDefective(t *testing.T) {
	testutil.SilenceLogs(t)
	doc := []byte(`
[[banks]]
name = "Bad Swift Bank"
short_name = "BadSwift"
swift = "NOPE"
country = "TZ"
`)
	_, err := newRegistry(doc)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no usable banks")
}
