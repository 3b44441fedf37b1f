package genetics

import "github.com/astraling/genome/colormath"

// ProfileVersion is stamped into every generated profile's metadata.
const ProfileVersion = "1.0"

// GeneticProfile is the immutable record describing one creature's
// generated species, rarity, visual genome, personality, and cosmic
// affinity. It is plain data with no engine references; hosts may
// serialize it as-is.
type GeneticProfile struct {
	ID             string         `json:"id"`
	Species        string         `json:"species"`
	Rarity         string         `json:"rarity"`
	Traits         Traits         `json:"traits"`
	Personality    Personality    `json:"personality"`
	CosmicAffinity CosmicAffinity `json:"cosmic_affinity"`
	Breeding       BreedingData   `json:"breeding"`
	Lineage        Lineage        `json:"lineage"`
	Metadata       Metadata       `json:"metadata"`
}

// Traits groups the visual genome.
type Traits struct {
	BodyShape   BodyShape   `json:"body_shape"`
	ColorGenome ColorGenome `json:"color_genome"`
	Features    Features    `json:"features"`
}

// BodyShape is the silhouette tag plus how strongly it is expressed.
type BodyShape struct {
	Shape     string  `json:"shape"`
	Intensity float64 `json:"intensity"`
}

// ColorGenome holds the synthesized colors and their derived
// descriptors. Colors are RGB ints; hue and saturation are derived
// at synthesis time, not stored as HSL.
type ColorGenome struct {
	Primary           colormath.RGB `json:"primary"`
	Secondary         colormath.RGB `json:"secondary"`
	Accent            colormath.RGB `json:"accent"`
	Gradient          Gradient      `json:"gradient"`
	ShimmerIntensity  float64       `json:"shimmer_intensity"`
	ColorComplexity   float64       `json:"color_complexity"`
	HarmonicResonance float64       `json:"harmonic_resonance"`
	MixingPattern     string        `json:"mixing_pattern"`
	DominantHue       int           `json:"dominant_hue"`
	SaturationLevel   float64       `json:"saturation_level"`
	MutationFlags     []string      `json:"mutation_flags,omitempty"`
}

// Gradient describes how the primary and secondary colors spread
// across the body.
type Gradient struct {
	Type      string        `json:"type"`
	Start     colormath.RGB `json:"start"`
	End       colormath.RGB `json:"end"`
	Intensity float64       `json:"intensity"`
	Angle     float64       `json:"angle"`
}

// Features groups the non-color visual traits.
type Features struct {
	Eyes            Eyes             `json:"eyes"`
	Wings           Wings            `json:"wings"`
	Markings        Markings         `json:"markings"`
	SpecialFeatures []SpecialFeature `json:"special_features,omitempty"`
}

// Eyes holds eye size, color, and glow strength.
type Eyes struct {
	Size  string        `json:"size"`
	Color colormath.RGB `json:"color"`
	Glow  float64       `json:"glow"`
}

// Wings holds the species wing type with per-creature span and
// shimmer.
type Wings struct {
	Type    string  `json:"type"`
	Span    float64 `json:"span"`
	Shimmer float64 `json:"shimmer"`
}

// Markings describes the coat pattern, absent on some creatures.
type Markings struct {
	Present      bool       `json:"present"`
	Pattern      string     `json:"pattern,omitempty"`
	Distribution string     `json:"distribution,omitempty"`
	ColorVariant string     `json:"color_variant,omitempty"`
	Scale        float64    `json:"scale,omitempty"`
	Opacity      float64    `json:"opacity,omitempty"`
	Animation    *Animation `json:"animation,omitempty"`
}

// SpecialFeature is one rarity-gated extra (mane, halo, tendrils...).
type SpecialFeature struct {
	Name      string     `json:"name"`
	Variant   string     `json:"variant"`
	Intensity float64    `json:"intensity"`
	Animation *Animation `json:"animation,omitempty"`
}

// Animation describes how an animated marking or feature moves.
type Animation struct {
	Type      string  `json:"type"`
	Speed     float64 `json:"speed"`
	Intensity float64 `json:"intensity"`
	SyncMode  string  `json:"sync_mode"`
}

// Personality holds the behavioral genome. EmotionModifiers and
// CarePreferences are shared with the config tables and must be
// treated as read-only.
type Personality struct {
	Core             string             `json:"core"`
	Quirks           []string           `json:"quirks"`
	SocialLevel      float64            `json:"social_level"`
	Independence     float64            `json:"independence"`
	EmotionModifiers map[string]float64 `json:"emotion_modifiers"`
	CarePreferences  map[string]float64 `json:"care_preferences"`
}

// CosmicAffinity is the elemental category with its rolled power and
// abilities. VisualEffects is shared with the config table.
type CosmicAffinity struct {
	Element          string   `json:"element"`
	PowerLevel       float64  `json:"power_level"`
	SpecialAbilities []string `json:"special_abilities,omitempty"`
	VisualEffects    []string `json:"visual_effects"`
}

// BreedingData is reserved for the breeding system; the generator
// never fills it.
type BreedingData struct {
	Generation int `json:"generation"`
	TimesBred  int `json:"times_bred"`
}

// Lineage is reserved for the breeding system; the generator never
// fills it.
type Lineage struct {
	Parents   []string `json:"parents,omitempty"`
	Ancestors []string `json:"ancestors,omitempty"`
}

// Metadata records how the profile was produced.
type Metadata struct {
	GenerationMs float64 `json:"generation_ms"`
	Version      string  `json:"version"`
}
