package genetics

import (
	"fmt"

	"github.com/astraling/genome/config"
)

// PickSpecies draws a species template by configured weight.
func PickSpecies(cfg *config.Config, rng Rand) *config.SpeciesTemplate {
	chosen := pick(rng, cfg.Species, func(t config.SpeciesTemplate) float64 { return t.Weight })
	return cfg.Derived.SpeciesIndex[chosen.ID]
}

// PickRarity resolves the rarity tier. A non-empty override bypasses
// the weighted draw entirely; it must name a configured tier or the
// call fails with ErrUnknownRarity.
func PickRarity(cfg *config.Config, override string, rng Rand) (*config.RarityTier, error) {
	if override != "" {
		tier, ok := cfg.Derived.RarityIndex[override]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRarity, override)
		}
		return tier, nil
	}
	chosen := pick(rng, cfg.Rarities, func(t config.RarityTier) float64 { return t.Weight })
	return cfg.Derived.RarityIndex[chosen.Name], nil
}
