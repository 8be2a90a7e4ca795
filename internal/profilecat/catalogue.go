// Package profilecat implements L1 ProfileCatalogue: a static, read-only
// lookup of usage profiles covering the usage types described in DIN V
// 18599-10's table family (offices, teaching and assembly spaces,
// healthcare, retail, hospitality, technical and circulation areas) plus
// residential types. The catalogue is initialized once at process startup
// (via the package-level data table in profiles_data.go) and never mutated.
package profilecat

import (
	"github.com/e10lab/din18599/internal/apperrors"
	"github.com/e10lab/din18599/internal/model"
)

// Catalogue is a read-only collection of usage profiles keyed by their
// stable profile key.
type Catalogue struct {
	profiles map[string]model.UsageProfile
}

// New builds a Catalogue from the embedded standard table.
func New() *Catalogue {
	c := &Catalogue{profiles: make(map[string]model.UsageProfile, len(standardProfiles))}
	for _, p := range standardProfiles {
		c.profiles[p.Key] = p
	}
	return c
}

// Lookup resolves a profile key to its value, returning a cheap copy.
// Unknown keys return apperrors.UnknownProfile.
func (c *Catalogue) Lookup(key string) (model.UsageProfile, error) {
	p, ok := c.profiles[key]
	if !ok {
		return model.UsageProfile{}, apperrors.New(apperrors.UnknownProfile, key, "usage profile key not found in catalogue")
	}
	bacs := make(map[model.AutomationClass]model.BACSAdaptation, len(p.BACS))
	for class, adaptation := range p.BACS {
		bacs[class] = adaptation
	}
	p.BACS = bacs
	return p, nil
}

// Keys returns every profile key in the catalogue, for CLI inspection.
func (c *Catalogue) Keys() []string {
	keys := make([]string, 0, len(c.profiles))
	for k := range c.profiles {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of profiles in the catalogue.
func (c *Catalogue) Len() int { return len(c.profiles) }
