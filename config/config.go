// Package config provides the static genetics tables consumed by the
// generator: species templates, rarity tiers, personality traits, and
// cosmic affinities. Tables ship as embedded defaults and merge with
// an optional user file; the generator treats a loaded Config as
// read-only.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every table the genetics generator consumes.
type Config struct {
	Species       []SpeciesTemplate     `yaml:"species"`
	Rarities      []RarityTier          `yaml:"rarities"`
	Personalities []PersonalityTraitDef `yaml:"personalities"`
	Affinities    []CosmicAffinityDef   `yaml:"affinities"`
	Shapes        ShapeConfig           `yaml:"shapes"`
	EyeSizes      []WeightedName        `yaml:"eye_sizes"`
	Markings      MarkingOptions        `yaml:"markings"`
	Animations    AnimationOptions      `yaml:"animations"`
	Synthesis     SynthesisConfig       `yaml:"synthesis"`

	// Derived lookup indexes computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// DerivedConfig holds lookup indexes built from the loaded tables.
type DerivedConfig struct {
	SpeciesIndex  map[string]*SpeciesTemplate
	RarityIndex   map[string]*RarityTier
	TraitIndex    map[string]*PersonalityTraitDef
	AffinityIndex map[string]*CosmicAffinityDef
}

// Load loads the genetics tables from a YAML file, merging with the
// embedded defaults. If path is empty, only defaults are used. The
// returned Config has passed Validate.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading tables file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing tables file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load tables: %v", err))
	}
	return cfg
}

// computeDerived builds the key indexes used for table lookups.
func (c *Config) computeDerived() {
	c.Derived.SpeciesIndex = make(map[string]*SpeciesTemplate, len(c.Species))
	for i := range c.Species {
		c.Derived.SpeciesIndex[c.Species[i].ID] = &c.Species[i]
	}

	c.Derived.RarityIndex = make(map[string]*RarityTier, len(c.Rarities))
	for i := range c.Rarities {
		c.Derived.RarityIndex[c.Rarities[i].Name] = &c.Rarities[i]
	}

	c.Derived.TraitIndex = make(map[string]*PersonalityTraitDef, len(c.Personalities))
	for i := range c.Personalities {
		c.Derived.TraitIndex[c.Personalities[i].Name] = &c.Personalities[i]
	}

	c.Derived.AffinityIndex = make(map[string]*CosmicAffinityDef, len(c.Affinities))
	for i := range c.Affinities {
		c.Derived.AffinityIndex[c.Affinities[i].Element] = &c.Affinities[i]
	}
}

// WriteYAML writes the tables to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling tables: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing tables file: %w", err)
	}
	return nil
}
