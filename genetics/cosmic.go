package genetics

import "github.com/astraling/genome/config"

// assignCosmicAffinity picks an element uniformly from the species'
// affinity list, rolls a power level inside the element's range plus
// the rarity bonus, and grants abilities by power threshold:
// two above 0.8, one above 0.5, none otherwise.
func assignCosmicAffinity(cfg *config.Config, species *config.SpeciesTemplate, tier *config.RarityTier, rng Rand) (CosmicAffinity, error) {
	element := species.Affinities[pickIndex(rng, len(species.Affinities))]
	def, ok := cfg.Derived.AffinityIndex[element]
	if !ok {
		return CosmicAffinity{}, &config.ConfigError{
			Table: "affinities",
			Key:   element,
			Msg:   "referenced by species but not defined",
		}
	}

	power := uniform(rng, def.PowerMin, def.PowerMax) + tier.PowerBonus
	if power > 1 {
		power = 1
	}

	var abilityCount int
	switch {
	case power > 0.8:
		abilityCount = 2
	case power > 0.5:
		abilityCount = 1
	}

	return CosmicAffinity{
		Element:          element,
		PowerLevel:       power,
		SpecialAbilities: sample(rng, def.Abilities, abilityCount),
		VisualEffects:    def.VisualEffects,
	}, nil
}
