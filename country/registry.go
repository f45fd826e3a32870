package country

import (
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed countries.toml
var countriesTOML []byte

type registryFile struct {
	Countries []Country `toml:"countries"`
}

// registry is the immutable lookup snapshot. Built once, never mutated,
// no locking needed.
type registry struct {
	countries []Country
	byAlpha2  map[string]Country
	byAlpha3  map[string]Country
	byName    map[string]Country
	byDial    map[int][]Country
}

var (
	alpha2Re = regexp.MustCompile(`^[A-Z]{2}$`)
	alpha3Re = regexp.MustCompile(`^[A-Z]{3}$`)
)

// newRegistry parses and indexes the raw TOML registry. A document that
// does not parse fails the whole load; a defective record is logged and
// skipped so one bad row cannot take down every lookup.
func newRegistry(raw []byte) (*registry, error) {
	var doc registryFile
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse country registry: %w", err)
	}
	if len(doc.Countries) == 0 {
		return nil, fmt.Errorf("country registry has no countries")
	}

	r := &registry{
		byAlpha2: make(map[string]Country, len(doc.Countries)),
		byAlpha3: make(map[string]Country, len(doc.Countries)),
		byName:   make(map[string]Country, len(doc.Countries)),
		byDial:   make(map[int][]Country),
	}
	for _, c := range doc.Countries {
		switch {
		case !alpha2Re.MatchString(c.Alpha2):
			slog.Warn("country registry: skipping bad alpha-2 code", "alpha2", c.Alpha2)
			continue
		case !alpha3Re.MatchString(c.Alpha3):
			slog.Warn("country registry: skipping bad alpha-3 code", "alpha2", c.Alpha2, "alpha3", c.Alpha3)
			continue
		case c.Name == "":
			slog.Warn("country registry: skipping unnamed country", "alpha2", c.Alpha2)
			continue
		case c.DialCode < 1 || c.DialCode > 9999:
			slog.Warn("country registry: skipping out-of-range dial code", "alpha2", c.Alpha2, "dialCode", c.DialCode)
			continue
		case !alpha3Re.MatchString(c.Currency):
			slog.Warn("country registry: skipping bad currency code", "alpha2", c.Alpha2, "currency", c.Currency)
			continue
		}
		if _, dup := r.byAlpha2[c.Alpha2]; dup {
			slog.Warn("country registry: skipping duplicate country", "alpha2", c.Alpha2)
			continue
		}
		r.countries = append(r.countries, c)
		r.byAlpha2[c.Alpha2] = c
		r.byAlpha3[c.Alpha3] = c
		r.byName[strings.ToUpper(c.Name)] = c
		r.byDial[c.DialCode] = append(r.byDial[c.DialCode], c)
	}
	if len(r.countries) == 0 {
		return nil, fmt.Errorf("country registry has no usable countries")
	}
	return r, nil
}

var loadRegistry = sync.OnceValues(func() (*registry, error) {
	return newRegistry(countriesTOML)
})

// Initialize eagerly loads the embedded registry. Lookup functions load
// it implicitly; calling it up front surfaces a defective data build at
// startup. Idempotent and safe for concurrent use.
func Initialize() error {
	_, err := loadRegistry()
	return err
}
