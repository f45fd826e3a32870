package bank

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed banks.toml
var banksTOML []byte

type registryFile struct {
	Banks []Bank `toml:"banks"`
}

// registry is the immutable lookup snapshot. Built once, never mutated,
// no locking needed.
type registry struct {
	banks   []Bank
	bySWIFT map[string]Bank // 8-character institution BIC -> bank
	byName  map[string]Bank // normalized full and short names -> bank
}

// newRegistry parses and indexes the raw TOML registry. A document that
// does not parse fails the whole load; a defective record (bad SWIFT
// code, duplicate) is logged and skipped so one bad row cannot take down
// every lookup.
func newRegistry(raw []byte) (*registry, error) {
	var doc registryFile
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse bank registry: %w", err)
	}
	if len(doc.Banks) == 0 {
		return nil, fmt.Errorf("bank registry has no banks")
	}

	r := &registry{
		bySWIFT: make(map[string]Bank, len(doc.Banks)),
		byName:  make(map[string]Bank, 2*len(doc.Banks)),
	}
	for _, b := range doc.Banks {
		b.SWIFT = strings.ToUpper(strings.TrimSpace(b.SWIFT))
		b.Country = strings.ToUpper(strings.TrimSpace(b.Country))
		if err := ValidateSWIFT(b.SWIFT); err != nil {
			slog.Warn("bank registry: skipping record with bad swift code", "name", b.Name, "swift", b.SWIFT, "error", err)
			continue
		}
		if b.Name == "" || b.Country == "" {
			slog.Warn("bank registry: skipping incomplete record", "swift", b.SWIFT)
			continue
		}
		key := b.SWIFT[:swiftLenBase]
		if _, dup := r.bySWIFT[key]; dup {
			slog.Warn("bank registry: skipping duplicate swift code", "swift", b.SWIFT)
			continue
		}
		r.banks = append(r.banks, b)
		r.bySWIFT[key] = b
		// First registration of a name wins; country-local short names
		// like "Equity" stay pointed at the earlier (Tanzanian) entry.
		for _, name := range []string{b.Name, b.ShortName} {
			key := normalizeName(name)
			if key == "" {
				continue
			}
			if _, taken := r.byName[key]; !taken {
				r.byName[key] = b
			}
		}
	}
	if len(r.banks) == 0 {
		return nil, fmt.Errorf("bank registry has no usable banks")
	}
	return r, nil
}

var loadRegistry = sync.OnceValues(func() (*registry, error) {
	return newRegistry(banksTOML)
})

// Initialize eagerly loads the embedded registry. Lookup functions load
// it implicitly; calling it up front surfaces a defective data build at
// startup. Idempotent and safe for concurrent use.
func Initialize() error {
	_, err := loadRegistry()
	return err
}
