package genetics

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"sync"
	"testing"

	"github.com/astraling/genome/config"
)

// TestGoldenMidpointGeneration pins the fully deterministic outcome
// of a constant midpoint RNG against the default tables: the 0.5 draw
// passes stellar_wyrm's 0.40 cumulative weight and lands on
// crystal_drake at 0.75; the rarity draw lands on common at 0.60; the
// 0.5 shape roll keeps the drake's preferred angular silhouette.
func TestGoldenMidpointGeneration(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	p, err := g.Generate(constRand(0.5))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if p.Species != "crystal_drake" {
		t.Errorf("species = %q, want crystal_drake", p.Species)
	}
	if p.Rarity != "common" {
		t.Errorf("rarity = %q, want common", p.Rarity)
	}
	if p.Traits.BodyShape.Shape != "angular" {
		t.Errorf("body shape = %q, want angular", p.Traits.BodyShape.Shape)
	}
	if math.Abs(p.Traits.BodyShape.Intensity-0.5) > 1e-9 {
		t.Errorf("shape intensity = %v, want 0.5", p.Traits.BodyShape.Intensity)
	}
	if p.Traits.Features.Eyes.Size != "medium" {
		t.Errorf("eye size = %q, want medium", p.Traits.Features.Eyes.Size)
	}
	if p.Traits.ColorGenome.Gradient.Type != "linear" {
		t.Errorf("gradient = %q, want linear (the only common gradient)", p.Traits.ColorGenome.Gradient.Type)
	}
	if p.Traits.Features.Markings.Present {
		t.Error("markings present; a 0.5 roll misses common's 0.4 chance")
	}
	if len(p.Traits.Features.SpecialFeatures) != 0 {
		t.Error("common profiles never carry special features")
	}
	if p.Personality.Core != "gentle" {
		t.Errorf("personality = %q, want gentle (middle tendency)", p.Personality.Core)
	}
	if p.CosmicAffinity.Element != "moon" {
		t.Errorf("element = %q, want moon", p.CosmicAffinity.Element)
	}
}

func TestOverrideHonored(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	for _, tier := range []string{"common", "uncommon", "rare", "legendary"} {
		t.Run(tier, func(t *testing.T) {
			trials := 100
			if tier == "legendary" {
				trials = 1000
			}
			for i := 0; i < trials; i++ {
				p, err := g.GenerateWithRarity(tier, NewSeeded(uint64(i)))
				if err != nil {
					t.Fatalf("GenerateWithRarity(%s) seed %d: %v", tier, i, err)
				}
				if p.Rarity != tier {
					t.Fatalf("rarity = %q, want %q (seed %d)", p.Rarity, tier, i)
				}
			}
		})
	}
}

func TestUnknownOverrideRejected(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	p, err := g.GenerateWithRarity("mythic", NewSeeded(1))
	if !errors.Is(err, ErrUnknownRarity) {
		t.Fatalf("err = %v, want ErrUnknownRarity", err)
	}
	if p != nil {
		t.Error("a rejected override must not return a profile")
	}
}

func TestStructuralCompleteness(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)
	rng := NewSeeded(31)

	for _, tier := range []string{"common", "uncommon", "rare", "legendary"} {
		t.Run(tier, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				p, err := g.GenerateWithRarity(tier, rng)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}

				if p.ID == "" || p.Species == "" || p.Rarity == "" {
					t.Fatal("missing identity fields")
				}
				if p.Traits.BodyShape.Shape == "" {
					t.Fatal("missing body shape")
				}
				if p.Traits.ColorGenome.Gradient.Type == "" || p.Traits.ColorGenome.MixingPattern == "" {
					t.Fatal("missing color genome descriptors")
				}
				if p.Traits.Features.Eyes.Size == "" || p.Traits.Features.Wings.Type == "" {
					t.Fatal("missing eye or wing data")
				}
				if p.Personality.Core == "" || len(p.Personality.Quirks) < 1 || len(p.Personality.Quirks) > 2 {
					t.Fatalf("bad personality: core=%q quirks=%v", p.Personality.Core, p.Personality.Quirks)
				}
				if p.Personality.EmotionModifiers == nil || p.Personality.CarePreferences == nil {
					t.Fatal("missing personality tables")
				}
				if p.CosmicAffinity.Element == "" {
					t.Fatal("missing cosmic element")
				}
				if p.Metadata.Version != ProfileVersion {
					t.Fatalf("version = %q, want %q", p.Metadata.Version, ProfileVersion)
				}
				if p.Metadata.GenerationMs < 0 {
					t.Fatal("negative generation time")
				}

				for _, c := range []int{
					p.Traits.ColorGenome.Primary.R, p.Traits.ColorGenome.Primary.G, p.Traits.ColorGenome.Primary.B,
					p.Traits.ColorGenome.Secondary.R, p.Traits.ColorGenome.Secondary.G, p.Traits.ColorGenome.Secondary.B,
					p.Traits.ColorGenome.Accent.R, p.Traits.ColorGenome.Accent.G, p.Traits.ColorGenome.Accent.B,
				} {
					if c < 0 || c > 255 {
						t.Fatalf("color channel %d out of range", c)
					}
				}
			}
		})
	}
}

func TestRangeInvariants(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)
	rng := NewSeeded(17)

	inUnit := func(name string, v float64) {
		t.Helper()
		if v < 0 || v > 1 {
			t.Fatalf("%s = %v, out of [0,1]", name, v)
		}
	}

	for i := 0; i < 10_000; i++ {
		p, err := g.Generate(rng)
		if err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}

		cg := p.Traits.ColorGenome
		inUnit("color complexity", cg.ColorComplexity)
		inUnit("harmonic resonance", cg.HarmonicResonance)
		inUnit("saturation level", cg.SaturationLevel)
		inUnit("shimmer intensity", cg.ShimmerIntensity)
		if cg.DominantHue < 0 || cg.DominantHue >= 360 {
			t.Fatalf("dominant hue = %d, out of [0,360)", cg.DominantHue)
		}

		bs := p.Traits.BodyShape
		if bs.Intensity < 0.3 || bs.Intensity > 0.7 {
			t.Fatalf("shape intensity = %v, out of [0.3,0.7]", bs.Intensity)
		}
		eyes := p.Traits.Features.Eyes
		if eyes.Glow < 0.2 || eyes.Glow > 1.0 {
			t.Fatalf("eye glow = %v, out of [0.2,1.0]", eyes.Glow)
		}
		wings := p.Traits.Features.Wings
		if wings.Span < 0.8 || wings.Span > 1.2 {
			t.Fatalf("wing span = %v, out of [0.8,1.2]", wings.Span)
		}
		inUnit("wing shimmer", wings.Shimmer)

		if p.Personality.SocialLevel < 0.2 || p.Personality.SocialLevel > 0.8 {
			t.Fatalf("social level = %v, out of [0.2,0.8]", p.Personality.SocialLevel)
		}
		if p.Personality.Independence < 0.2 || p.Personality.Independence > 0.8 {
			t.Fatalf("independence = %v, out of [0.2,0.8]", p.Personality.Independence)
		}
		inUnit("power level", p.CosmicAffinity.PowerLevel)
	}
}

func TestDistributionalConvergence(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)
	rng := NewSeeded(2024)

	const n = 100_000
	species := map[string]int{}
	rarities := map[string]int{}
	for i := 0; i < n; i++ {
		p, err := g.Generate(rng)
		if err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
		species[p.Species]++
		rarities[p.Rarity]++
	}

	for _, sp := range cfg.Species {
		freq := float64(species[sp.ID]) / n
		if math.Abs(freq-sp.Weight) > 0.02 {
			t.Errorf("species %s frequency = %v, want %v +- 0.02", sp.ID, freq, sp.Weight)
		}
	}
	for _, tier := range cfg.Rarities {
		freq := float64(rarities[tier.Name]) / n
		if math.Abs(freq-tier.Weight) > 0.02 {
			t.Errorf("rarity %s frequency = %v, want %v +- 0.02", tier.Name, freq, tier.Weight)
		}
	}
}

func TestMutationFlagGating(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	// A stream that always rolls above every flag chance produces no
	// flags at all.
	for i := 0; i < 100; i++ {
		p, err := g.GenerateWithRarity("common", constRand(0.99))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(p.Traits.ColorGenome.MutationFlags) != 0 {
			t.Fatalf("flags = %v under high rolls, want none", p.Traits.ColorGenome.MutationFlags)
		}
	}

	// Real streams only ever surface flags from the tier's own pool.
	commonPool := map[string]bool{}
	for _, fc := range cfg.Derived.RarityIndex["common"].MutationFlags {
		commonPool[fc.Tag] = true
	}
	rng := NewSeeded(8)
	for i := 0; i < 1000; i++ {
		p, err := g.GenerateWithRarity("common", rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for _, flag := range p.Traits.ColorGenome.MutationFlags {
			if !commonPool[flag] {
				t.Fatalf("common profile carries flag %q outside its pool", flag)
			}
		}
	}
}

func TestIDUniqueness(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)
	rng := NewSeeded(42)

	seen := make(map[string]bool, 10_000)
	for i := 0; i < 10_000; i++ {
		p, err := g.Generate(rng)
		if err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q at generation %d", p.ID, i)
		}
		seen[p.ID] = true
	}
}

func TestIDFormat(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	idPattern := regexp.MustCompile(`^[a-z]{1,3}-[a-z]{1,3}-[0-9a-f]{2}-[0-9a-z]{1,4}$`)

	p, err := g.Generate(constRand(0.5))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !idPattern.MatchString(p.ID) {
		t.Errorf("id %q does not match <species3>-<core3>-<hex2>-<tail4>", p.ID)
	}
	// crystal_drake + gentle + common intensity 0.10.
	if want := "cry-gen-0a-"; p.ID[:len(want)] != want {
		t.Errorf("id %q should start with %q", p.ID, want)
	}
}

func TestSeededReproducible(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	a, err := g.GenerateWithSeed(12345)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := g.GenerateWithSeed(12345)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// IDs and timing differ per call; the genetics must not.
	if !reflect.DeepEqual(a.Traits, b.Traits) {
		t.Error("traits differ for identical seeds")
	}
	if !reflect.DeepEqual(a.Personality, b.Personality) {
		t.Error("personality differs for identical seeds")
	}
	if !reflect.DeepEqual(a.CosmicAffinity, b.CosmicAffinity) {
		t.Error("cosmic affinity differs for identical seeds")
	}
	if a.ID == b.ID {
		t.Error("sequential generations must still mint distinct ids")
	}
}

func TestObserverCalledOncePerSuccess(t *testing.T) {
	cfg := config.MustLoad("")

	var got []Summary
	g := New(cfg, WithObserver(func(s Summary) { got = append(got, s) }))

	p, err := g.Generate(NewSeeded(3))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("observer called %d times, want 1", len(got))
	}
	s := got[0]
	if s.ID != p.ID || s.Species != p.Species || s.Rarity != p.Rarity ||
		s.Personality != p.Personality.Core || s.Element != p.CosmicAffinity.Element {
		t.Errorf("summary %+v does not match profile", s)
	}

	if _, err := g.GenerateWithRarity("bogus", NewSeeded(4)); err == nil {
		t.Fatal("want error for bogus rarity")
	}
	if len(got) != 1 {
		t.Error("observer must not fire on failed generation")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	cfg := config.MustLoad("")
	g := New(cfg)

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	ids := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := NewSeeded(seed)
			for i := 0; i < perWorker; i++ {
				p, err := g.Generate(rng)
				if err != nil {
					t.Errorf("worker %d: %v", seed, err)
					return
				}
				mu.Lock()
				ids[p.ID] = true
				mu.Unlock()
			}
		}(uint64(w + 1))
	}
	wg.Wait()

	if len(ids) != workers*perWorker {
		t.Errorf("unique ids = %d, want %d", len(ids), workers*perWorker)
	}
}
