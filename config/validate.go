package config

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed floating error for weight tables
// that must sum to 1.
const weightTolerance = 1e-6

// ConfigError reports an invalid or inconsistent genetics table. A
// profile is never generated from tables that fail validation.
type ConfigError struct {
	Table string
	Key   string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config: %s[%s]: %s", e.Table, e.Key, e.Msg)
	}
	return fmt.Sprintf("config: %s: %s", e.Table, e.Msg)
}

// Validate checks every structural invariant the generator relies on:
// weight tables sum to 1, probabilities stay in [0,1], palettes are
// non-empty, and every cross-table reference resolves.
func (c *Config) Validate() error {
	if err := c.validateSpecies(); err != nil {
		return err
	}
	if err := c.validateRarities(); err != nil {
		return err
	}
	if err := c.validatePersonalities(); err != nil {
		return err
	}
	if err := c.validateAffinities(); err != nil {
		return err
	}
	if err := c.validateShared(); err != nil {
		return err
	}
	return nil
}

func checkWeightSum(table string, sum float64) error {
	if math.Abs(sum-1) > weightTolerance {
		return &ConfigError{Table: table, Msg: fmt.Sprintf("weights sum to %g, want 1", sum)}
	}
	return nil
}

func checkProbability(table, key, field string, p float64) error {
	if p < 0 || p > 1 {
		return &ConfigError{Table: table, Key: key, Msg: fmt.Sprintf("%s = %g, want [0,1]", field, p)}
	}
	return nil
}

func (c *Config) validateSpecies() error {
	if len(c.Species) == 0 {
		return &ConfigError{Table: "species", Msg: "no templates configured"}
	}

	var sum float64
	for _, sp := range c.Species {
		sum += sp.Weight
		if sp.Weight <= 0 {
			return &ConfigError{Table: "species", Key: sp.ID, Msg: "weight must be positive"}
		}
		if len(sp.BodyPalette) == 0 || len(sp.WingPalette) == 0 || len(sp.EyePalette) == 0 {
			return &ConfigError{Table: "species", Key: sp.ID, Msg: "every palette needs at least one color"}
		}
		if sp.WingType == "" {
			return &ConfigError{Table: "species", Key: sp.ID, Msg: "missing wing type"}
		}
		if !contains(c.Shapes.Common, sp.PreferredShape) {
			return &ConfigError{Table: "species", Key: sp.ID,
				Msg: fmt.Sprintf("preferred shape %q is not a common shape", sp.PreferredShape)}
		}
		if len(sp.Tendencies) == 0 {
			return &ConfigError{Table: "species", Key: sp.ID, Msg: "no personality tendencies"}
		}
		for _, t := range sp.Tendencies {
			if _, ok := c.Derived.TraitIndex[t]; !ok {
				return &ConfigError{Table: "species", Key: sp.ID,
					Msg: fmt.Sprintf("tendency %q is not a defined personality", t)}
			}
		}
		if len(sp.Affinities) == 0 {
			return &ConfigError{Table: "species", Key: sp.ID, Msg: "no cosmic affinities"}
		}
		for _, a := range sp.Affinities {
			if _, ok := c.Derived.AffinityIndex[a]; !ok {
				return &ConfigError{Table: "species", Key: sp.ID,
					Msg: fmt.Sprintf("affinity %q is not a defined element", a)}
			}
		}
	}
	return checkWeightSum("species", sum)
}

func (c *Config) validateRarities() error {
	if len(c.Rarities) == 0 {
		return &ConfigError{Table: "rarities", Msg: "no tiers configured"}
	}

	var sum float64
	for _, tier := range c.Rarities {
		sum += tier.Weight
		if err := checkProbability("rarities", tier.Name, "marking_chance", tier.MarkingChance); err != nil {
			return err
		}
		if err := checkProbability("rarities", tier.Name, "marking_animation", tier.MarkingAnimation); err != nil {
			return err
		}
		if tier.MutationStrength < 0 {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "mutation strength must be non-negative"}
		}
		if len(tier.GradientPool) == 0 {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "empty gradient pool"}
		}
		if len(tier.MixingPatterns) == 0 {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "empty mixing pattern pool"}
		}
		if tier.MarkingChance > 0 && len(tier.MarkingPatterns) == 0 {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "markings possible but pattern pool empty"}
		}
		for _, fc := range tier.MutationFlags {
			if err := checkProbability("rarities", tier.Name, "mutation flag "+fc.Tag, fc.Chance); err != nil {
				return err
			}
		}
		if tier.WingShimmer.Min > tier.WingShimmer.Max {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "wing shimmer range inverted"}
		}
		f := tier.Features
		if err := checkProbability("rarities", tier.Name, "feature chance", f.Chance); err != nil {
			return err
		}
		if f.Min > f.Max {
			return &ConfigError{Table: "rarities", Key: tier.Name, Msg: "feature count range inverted"}
		}
		if f.Max > len(f.Pool) {
			return &ConfigError{Table: "rarities", Key: tier.Name,
				Msg: fmt.Sprintf("feature max %d exceeds pool size %d", f.Max, len(f.Pool))}
		}
		for _, def := range f.Pool {
			if len(def.Variants) == 0 {
				return &ConfigError{Table: "rarities", Key: tier.Name,
					Msg: fmt.Sprintf("feature %q has no variants", def.Name)}
			}
		}
	}
	return checkWeightSum("rarities", sum)
}

func (c *Config) validatePersonalities() error {
	for _, p := range c.Personalities {
		// Quirk draws are without replacement and can attach two.
		if len(p.Quirks) < 2 {
			return &ConfigError{Table: "personalities", Key: p.Name, Msg: "quirk pool needs at least two entries"}
		}
	}
	return nil
}

func (c *Config) validateAffinities() error {
	for _, a := range c.Affinities {
		if a.PowerMin < 0 || a.PowerMax > 1 || a.PowerMin > a.PowerMax {
			return &ConfigError{Table: "affinities", Key: a.Element,
				Msg: fmt.Sprintf("power range [%g,%g] invalid", a.PowerMin, a.PowerMax)}
		}
		// Power above 0.8 grants two abilities, drawn without replacement.
		if len(a.Abilities) < 2 {
			return &ConfigError{Table: "affinities", Key: a.Element, Msg: "ability pool needs at least two entries"}
		}
	}
	return nil
}

func (c *Config) validateShared() error {
	if len(c.Shapes.Common) != 3 {
		return &ConfigError{Table: "shapes", Msg: "want exactly three common shapes"}
	}
	if len(c.Shapes.Unique) == 0 {
		return &ConfigError{Table: "shapes", Msg: "empty unique shape pool"}
	}

	var sum float64
	for _, e := range c.EyeSizes {
		sum += e.Weight
	}
	if err := checkWeightSum("eye_sizes", sum); err != nil {
		return err
	}

	if len(c.Markings.Distributions) == 0 || len(c.Markings.ColorVariants) == 0 {
		return &ConfigError{Table: "markings", Msg: "distribution and color variant pools must be non-empty"}
	}
	if len(c.Animations.Types) == 0 || len(c.Animations.SyncModes) == 0 {
		return &ConfigError{Table: "animations", Msg: "type and sync mode pools must be non-empty"}
	}

	s := c.Synthesis
	if err := checkProbability("synthesis", "", "mutation_chance", s.MutationChance); err != nil {
		return err
	}
	if err := checkProbability("synthesis", "", "cosmic_blend_chance", s.CosmicBlendChance); err != nil {
		return err
	}
	if s.MixingMin < 0 || s.MixingMax > 1 || s.MixingMin > s.MixingMax {
		return &ConfigError{Table: "synthesis", Msg: fmt.Sprintf("mixing range [%g,%g] invalid", s.MixingMin, s.MixingMax)}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
