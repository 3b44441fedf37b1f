package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/astraling/genome/colormath"
)

// Color is an RGB color parsed from a "#RRGGBB" YAML scalar.
type Color struct {
	colormath.RGB
}

// UnmarshalYAML decodes a hex color scalar.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgb, err := parseHex(s)
	if err != nil {
		return err
	}
	c.RGB = rgb
	return nil
}

// MarshalYAML encodes the color back to its hex form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

func parseHex(s string) (colormath.RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return colormath.RGB{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return colormath.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return colormath.RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}

// SpeciesTemplate defines one hatchable species: its palettes, shape
// preference, wing type, and the personality/affinity pools the
// generator draws from. Weights across all templates sum to 1.
type SpeciesTemplate struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	BodyPalette    []Color  `yaml:"body_palette"`
	WingPalette    []Color  `yaml:"wing_palette"`
	EyePalette     []Color  `yaml:"eye_palette"`
	PreferredShape string   `yaml:"preferred_shape"`
	ShapeVariance  float64  `yaml:"shape_variance"`
	WingType       string   `yaml:"wing_type"`
	Tendencies     []string `yaml:"tendencies"`
	Affinities     []string `yaml:"affinities"`
	Weight         float64  `yaml:"weight"`
}

// RarityTier gates probability and richness of every other axis.
// Tiers are an ordered list; iteration order is part of the selection
// contract, not an accident of map iteration.
type RarityTier struct {
	Name             string       `yaml:"name"`
	Weight           float64      `yaml:"weight"`
	MarkingChance    float64      `yaml:"marking_chance"`
	MarkingPatterns  []string     `yaml:"marking_patterns"`
	MarkingAnimation float64      `yaml:"marking_animation"` // chance of an animated marking
	MutationStrength float64      `yaml:"mutation_strength"`
	Enhancement      Enhancement  `yaml:"enhancement"`
	GradientPool     []string     `yaml:"gradient_pool"`
	MixingPatterns   []string     `yaml:"mixing_patterns"`
	MutationFlags    []FlagChance `yaml:"mutation_flags"`
	WingShimmer      Range        `yaml:"wing_shimmer"`
	Features         FeatureRules `yaml:"features"`
	PowerBonus       float64      `yaml:"power_bonus"`
}

// Enhancement is the rarity-scaled color boost applied after mixing
// and mutation. Intensity also feeds the profile id's hex pair.
type Enhancement struct {
	Intensity float64 `yaml:"intensity"`
	Shimmer   float64 `yaml:"shimmer"`
	Boost     int     `yaml:"boost"`
}

// FlagChance is one rarity-gated mutation flag roll.
type FlagChance struct {
	Tag    string  `yaml:"tag"`
	Chance float64 `yaml:"chance"`
}

// Range is an inclusive [Min, Max] draw interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FeatureRules controls special feature presence and count per tier.
type FeatureRules struct {
	Chance float64      `yaml:"chance"`
	Min    int          `yaml:"min"`
	Max    int          `yaml:"max"`
	Pool   []FeatureDef `yaml:"pool"`
}

// FeatureDef is one drawable special feature. Dynamic features carry
// an animation descriptor when selected.
type FeatureDef struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
	Dynamic  bool     `yaml:"dynamic"`
}

// PersonalityTraitDef describes one core personality trait. The
// modifier and preference maps are shared by reference onto generated
// profiles and must be treated as read-only.
type PersonalityTraitDef struct {
	Name             string             `yaml:"name"`
	Description      string             `yaml:"description"`
	EmotionModifiers map[string]float64 `yaml:"emotion_modifiers"`
	CarePreferences  map[string]float64 `yaml:"care_preferences"`
	Quirks           []string           `yaml:"quirks"`
}

// CosmicAffinityDef describes one elemental affinity. Color is the
// tint the synthesizer blends into eye colors.
type CosmicAffinityDef struct {
	Element       string   `yaml:"element"`
	Description   string   `yaml:"description"`
	Color         Color    `yaml:"color"`
	PowerMin      float64  `yaml:"power_min"`
	PowerMax      float64  `yaml:"power_max"`
	VisualEffects []string `yaml:"visual_effects"`
	Abilities     []string `yaml:"abilities"`
}

// ShapeConfig holds the shared body shape pools. Common shapes are
// the everyday silhouettes every species can express; unique shapes
// are the 10% long-tail draws.
type ShapeConfig struct {
	Common []string `yaml:"common"`
	Unique []string `yaml:"unique"`
}

// WeightedName is one (key, weight) entry in an ordered choice table.
type WeightedName struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// MarkingOptions holds the shared marking descriptor vocabularies.
type MarkingOptions struct {
	Distributions []string `yaml:"distributions"`
	ColorVariants []string `yaml:"color_variants"`
}

// AnimationOptions holds the shared animation descriptor vocabularies.
type AnimationOptions struct {
	Types     []string `yaml:"types"`
	SyncModes []string `yaml:"sync_modes"`
}

// SynthesisConfig holds the color synthesis scalars.
type SynthesisConfig struct {
	MutationChance     float64 `yaml:"mutation_chance"`
	WingMutationFactor float64 `yaml:"wing_mutation_factor"`
	MixingMin          float64 `yaml:"mixing_min"`
	MixingMax          float64 `yaml:"mixing_max"`
	BodyMixRatio       float64 `yaml:"body_mix_ratio"`
	WingMixRatio       float64 `yaml:"wing_mix_ratio"`
	CosmicBlendChance  float64 `yaml:"cosmic_blend_chance"`
	CosmicBlendRatio   float64 `yaml:"cosmic_blend_ratio"`
}
