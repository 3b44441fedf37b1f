// Package genetics generates immutable creature genetic profiles from
// weighted configuration tables. Generation is a single synchronous
// pipeline per call: species, rarity, color genome, traits,
// personality, cosmic affinity, then id and metadata. All randomness
// comes from the caller's stream; the package keeps no RNG of its
// own.
package genetics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/astraling/genome/config"
)

// Summary is the per-generation telemetry payload.
type Summary struct {
	ID          string
	Species     string
	Rarity      string
	Personality string
	Element     string
}

// Observer receives one Summary per successful generation.
type Observer func(Summary)

// Generator produces genetic profiles from validated tables. It is
// safe for concurrent use as long as each call gets its own Rand.
type Generator struct {
	cfg      *config.Config
	observer Observer
	epoch    int64
	seq      atomic.Int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithObserver registers a telemetry callback, invoked synchronously
// once per successful generation.
func WithObserver(fn Observer) Option {
	return func(g *Generator) { g.observer = fn }
}

// New creates a Generator over tables that passed config validation.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:   cfg,
		epoch: time.Now().UnixMilli(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws every axis, including rarity, from the caller's
// random stream.
func (g *Generator) Generate(rng Rand) (*GeneticProfile, error) {
	return g.generate("", rng)
}

// GenerateWithRarity forces the rarity tier. The override must name a
// configured tier; unknown names fail with ErrUnknownRarity.
func (g *Generator) GenerateWithRarity(rarity string, rng Rand) (*GeneticProfile, error) {
	return g.generate(rarity, rng)
}

// GenerateWithSeed generates from a private PCG stream, for
// reproducible hatches.
func (g *Generator) GenerateWithSeed(seed uint64) (*GeneticProfile, error) {
	return g.generate("", NewSeeded(seed))
}

func (g *Generator) generate(override string, rng Rand) (*GeneticProfile, error) {
	start := time.Now()

	species := PickSpecies(g.cfg, rng)
	tier, err := PickRarity(g.cfg, override, rng)
	if err != nil {
		return nil, err
	}

	genome := synthesizeColorGenome(g.cfg, species, tier, rng)
	traits := composeTraits(g.cfg, species, tier, genome, rng)

	personality, err := assignPersonality(g.cfg, species, rng)
	if err != nil {
		return nil, fmt.Errorf("assigning personality for %s: %w", species.ID, err)
	}
	cosmic, err := assignCosmicAffinity(g.cfg, species, tier, rng)
	if err != nil {
		return nil, fmt.Errorf("assigning affinity for %s: %w", species.ID, err)
	}

	profile := &GeneticProfile{
		ID:             g.buildID(species.ID, personality.Core, tier.Enhancement.Intensity),
		Species:        species.ID,
		Rarity:         tier.Name,
		Traits:         traits,
		Personality:    personality,
		CosmicAffinity: cosmic,
		Metadata: Metadata{
			GenerationMs: float64(time.Since(start).Nanoseconds()) / 1e6,
			Version:      ProfileVersion,
		},
	}

	if g.observer != nil {
		g.observer(Summary{
			ID:          profile.ID,
			Species:     profile.Species,
			Rarity:      profile.Rarity,
			Personality: personality.Core,
			Element:     cosmic.Element,
		})
	}
	return profile, nil
}

// buildID assembles <species3>-<core3>-<hex2>-<tail4>. The tail mixes
// the generator's creation epoch with a strictly increasing sequence,
// so consecutive ids stay distinct for 36^4 calls.
func (g *Generator) buildID(species, core string, intensity float64) string {
	tail := strconv.FormatInt(g.epoch+g.seq.Add(1), 36)
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("%s-%s-%02x-%s",
		abbrev(species, 3),
		abbrev(core, 3),
		int(math.Round(intensity*100)),
		tail,
	)
}

func abbrev(s string, n int) string {
	s = strings.ReplaceAll(s, "_", "")
	if len(s) > n {
		s = s[:n]
	}
	return s
}
