package genetics

import "github.com/astraling/genome/config"

// assignPersonality picks a core trait uniformly from the species'
// tendency list. Equal weighting is intentional: tendency order
// carries no frequency meaning. The modifier and preference maps are
// shared by reference with the config table.
func assignPersonality(cfg *config.Config, species *config.SpeciesTemplate, rng Rand) (Personality, error) {
	core := species.Tendencies[pickIndex(rng, len(species.Tendencies))]
	def, ok := cfg.Derived.TraitIndex[core]
	if !ok {
		return Personality{}, &config.ConfigError{
			Table: "personalities",
			Key:   core,
			Msg:   "referenced by species but not defined",
		}
	}

	quirkCount := 1
	if rng.Float64() < 0.3 {
		quirkCount = 2
	}

	return Personality{
		Core:             core,
		Quirks:           sample(rng, def.Quirks, quirkCount),
		SocialLevel:      uniform(rng, 0.2, 0.8),
		Independence:     uniform(rng, 0.2, 0.8),
		EmotionModifiers: def.EmotionModifiers,
		CarePreferences:  def.CarePreferences,
	}, nil
}
