package phone

import (
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed metadata.toml
var metadataTOML []byte

// metadataFile mirrors the embedded TOML document.
type metadataFile struct {
	Countries map[string]countryEntry `toml:"countries"`
	Shared    map[string][]string     `toml:"shared"`
}

type countryEntry struct {
	DialCode  int               `toml:"dial_code"`
	MinLength int               `toml:"min_length"`
	MaxLength int               `toml:"max_length"`
	Patterns  map[string]string `toml:"patterns"`
}

// patternKeys maps the TOML pattern-table keys onto number types.
var patternKeys = map[string]NumberType{
	"landline":         TypeLandline,
	"mobile":           TypeMobile,
	"toll_free":        TypeTollFree,
	"premium_rate":     TypePremiumRate,
	"shared_cost":      TypeSharedCost,
	"emergency":        TypeEmergency,
	"special_services": TypeSpecialServices,
	"voip":             TypeVoIP,
	"personal":         TypePersonal,
}

// countryMeta is one country's dialing metadata with patterns compiled.
type countryMeta struct {
	country  string
	dialCode int
	minLen   int
	maxLen   int
	patterns map[NumberType]*regexp.Regexp
}

// metadataStore is the immutable metadata snapshot every parse consults.
// It is built once and never mutated afterwards, so it needs no locking.
type metadataStore struct {
	byCountry map[string]*countryMeta
	byDial    map[string][]string // dial-code digits -> owning countries
}

// countryCodeRe validates ISO 3166-1 alpha-2 keys in the metadata.
var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// newMetadataStore parses and indexes raw TOML metadata. A document that
// does not parse fails the whole load; a defective entry (bad country key,
// out-of-range dial code, inverted bounds, malformed pattern) is logged and
// skipped so one bad row cannot take down every lookup.
func newMetadataStore(raw []byte) (*metadataStore, error) {
	var doc metadataFile
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse phone metadata: %w", err)
	}
	if len(doc.Countries) == 0 {
		return nil, fmt.Errorf("phone metadata has no countries")
	}

	s := &metadataStore{
		byCountry: make(map[string]*countryMeta, len(doc.Countries)),
		byDial:    make(map[string][]string),
	}

	// Sorted build keeps candidate lists deterministic across loads.
	codes := make([]string, 0, len(doc.Countries))
	for cc := range doc.Countries {
		codes = append(codes, cc)
	}
	sort.Strings(codes)

	for _, cc := range codes {
		entry := doc.Countries[cc]
		if !countryCodeRe.MatchString(cc) {
			slog.Warn("phone metadata: skipping bad country key", "country", cc)
			continue
		}
		if entry.DialCode < 1 || entry.DialCode > 9999 {
			slog.Warn("phone metadata: skipping out-of-range dial code", "country", cc, "dialCode", entry.DialCode)
			continue
		}
		if entry.MinLength < 1 || entry.MaxLength < entry.MinLength {
			slog.Warn("phone metadata: skipping bad length bounds", "country", cc, "min", entry.MinLength, "max", entry.MaxLength)
			continue
		}
		meta := &countryMeta{
			country:  cc,
			dialCode: entry.DialCode,
			minLen:   entry.MinLength,
			maxLen:   entry.MaxLength,
			patterns: make(map[NumberType]*regexp.Regexp, len(entry.Patterns)),
		}
		for key, expr := range entry.Patterns {
			typ, ok := patternKeys[key]
			if !ok {
				slog.Warn("phone metadata: skipping unknown pattern type", "country", cc, "type", key)
				continue
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				slog.Warn("phone metadata: skipping malformed pattern", "country", cc, "type", key, "error", err)
				continue
			}
			meta.patterns[typ] = re
		}
		s.byCountry[cc] = meta
		dial := strconv.Itoa(entry.DialCode)
		s.byDial[dial] = append(s.byDial[dial], cc)
	}
	if len(s.byCountry) == 0 {
		return nil, fmt.Errorf("phone metadata has no usable countries")
	}

	// The shared table fixes the candidate order for dial codes owned by
	// several countries. Entries that do not line up with the country table
	// are dropped, not fatal.
	for dial, countries := range doc.Shared {
		if !allDigits(dial) {
			slog.Warn("phone metadata: skipping bad shared dial code", "dialCode", dial)
			continue
		}
		var owners []string
		for _, cc := range countries {
			meta := s.byCountry[cc]
			if meta == nil || strconv.Itoa(meta.dialCode) != dial {
				slog.Warn("phone metadata: shared entry does not own dial code", "dialCode", dial, "country", cc)
				continue
			}
			owners = append(owners, cc)
		}
		if len(owners) > 0 {
			s.byDial[dial] = owners
		}
	}
	return s, nil
}

// country returns the metadata for an ISO alpha-2 code, or nil.
func (s *metadataStore) country(cc string) *countryMeta {
	return s.byCountry[cc]
}

// loadStore lazily parses the embedded metadata exactly once. Concurrent
// first callers block until the single load finishes and then share the
// same snapshot — or the same error, which every later call keeps
// returning rather than retrying a half-built store.
var loadStore = sync.OnceValues(func() (*metadataStore, error) {
	return newMetadataStore(metadataTOML)
})

// Initialize eagerly loads the embedded dialing metadata. Parsing functions
// call it implicitly; calling it up front surfaces a defective metadata
// build at startup instead of on the first parse. Idempotent and safe for
// concurrent use.
func Initialize() error {
	_, err := loadStore()
	return err
}
