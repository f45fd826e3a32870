package currency

import (
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed currencies.toml
var currenciesTOML []byte

type registryFile struct {
	Currencies []Currency `toml:"currencies"`
}

// registry is the immutable lookup snapshot. Built once, never mutated,
// no locking needed.
type registry struct {
	currencies []Currency
	byCode     map[string]Currency
	byNumeric  map[int]Currency
}

var codeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// newRegistry parses and indexes the raw TOML registry. A document that
// does not parse fails the whole load; a defective record is logged and
// skipped so one bad row cannot take down every lookup.
func newRegistry(raw []byte) (*registry, error) {
	var doc registryFile
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse currency registry: %w", err)
	}
	if len(doc.Currencies) == 0 {
		return nil, fmt.Errorf("currency registry has no currencies")
	}

	r := &registry{
		byCode:    make(map[string]Currency, len(doc.Currencies)),
		byNumeric: make(map[int]Currency, len(doc.Currencies)),
	}
	for _, c := range doc.Currencies {
		switch {
		case !codeRe.MatchString(c.Code):
			slog.Warn("currency registry: skipping bad code", "code", c.Code)
			continue
		case c.Numeric < 1 || c.Numeric > 999:
			slog.Warn("currency registry: skipping out-of-range numeric code", "code", c.Code, "numeric", c.Numeric)
			continue
		case c.Name == "" || c.Symbol == "":
			slog.Warn("currency registry: skipping incomplete record", "code", c.Code)
			continue
		case c.MinorUnits < 0 || c.MinorUnits > 4:
			slog.Warn("currency registry: skipping bad minor units", "code", c.Code, "minorUnits", c.MinorUnits)
			continue
		}
		if _, dup := r.byCode[c.Code]; dup {
			slog.Warn("currency registry: skipping duplicate code", "code", c.Code)
			continue
		}
		r.currencies = append(r.currencies, c)
		r.byCode[c.Code] = c
		if _, dup := r.byNumeric[c.Numeric]; !dup {
			r.byNumeric[c.Numeric] = c
		}
	}
	if len(r.currencies) == 0 {
		return nil, fmt.Errorf("currency registry has no usable currencies")
	}
	return r, nil
}

var loadRegistry = sync.OnceValues(func() (*registry, error) {
	return newRegistry(currenciesTOML)
})

// Initialize eagerly loads the embedded registry. Lookup functions load
// it implicitly; calling it up front surfaces a defective data build at
// startup. Idempotent and safe for concurrent use.
func Initialize() error {
	_, err := loadRegistry()
	return err
}
