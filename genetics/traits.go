package genetics

import "github.com/astraling/genome/config"

// composeTraits assembles the visual genome around an already
// synthesized color genome.
func composeTraits(cfg *config.Config, species *config.SpeciesTemplate, tier *config.RarityTier, genome ColorGenome, rng Rand) Traits {
	return Traits{
		BodyShape:   composeBodyShape(cfg, species, rng),
		ColorGenome: genome,
		Features: Features{
			Eyes:            composeEyes(cfg, species, rng),
			Wings:           composeWings(species, tier, rng),
			Markings:        composeMarkings(cfg, tier, rng),
			SpecialFeatures: composeSpecialFeatures(cfg, tier, rng),
		},
	}
}

// composeBodyShape: 60% the species' preferred shape, 30% one of the
// other common shapes, 10% a unique shape. Intensity stays in
// [0.3, 0.7]; the species' variance jitters it inside that band.
func composeBodyShape(cfg *config.Config, species *config.SpeciesTemplate, rng Rand) BodyShape {
	roll := rng.Float64()

	var shape string
	switch {
	case roll < 0.6:
		shape = species.PreferredShape
	case roll < 0.9:
		others := make([]string, 0, len(cfg.Shapes.Common))
		for _, s := range cfg.Shapes.Common {
			if s != species.PreferredShape {
				others = append(others, s)
			}
		}
		shape = others[pickIndex(rng, len(others))]
	default:
		shape = cfg.Shapes.Unique[pickIndex(rng, len(cfg.Shapes.Unique))]
	}

	intensity := uniform(rng, 0.3, 0.7)
	intensity += (rng.Float64() - 0.5) * species.ShapeVariance
	if intensity < 0.3 {
		intensity = 0.3
	}
	if intensity > 0.7 {
		intensity = 0.7
	}

	return BodyShape{Shape: shape, Intensity: intensity}
}

func composeEyes(cfg *config.Config, species *config.SpeciesTemplate, rng Rand) Eyes {
	size := pick(rng, cfg.EyeSizes, func(w config.WeightedName) float64 { return w.Weight })
	return Eyes{
		Size:  size.Name,
		Color: paletteDraw(rng, species.EyePalette),
		Glow:  uniform(rng, 0.2, 1.0),
	}
}

func composeWings(species *config.SpeciesTemplate, tier *config.RarityTier, rng Rand) Wings {
	return Wings{
		Type:    species.WingType,
		Span:    uniform(rng, 0.8, 1.2),
		Shimmer: uniform(rng, tier.WingShimmer.Min, tier.WingShimmer.Max),
	}
}

func composeMarkings(cfg *config.Config, tier *config.RarityTier, rng Rand) Markings {
	if rng.Float64() >= tier.MarkingChance {
		return Markings{}
	}

	m := Markings{
		Present:      true,
		Pattern:      tier.MarkingPatterns[pickIndex(rng, len(tier.MarkingPatterns))],
		Distribution: cfg.Markings.Distributions[pickIndex(rng, len(cfg.Markings.Distributions))],
		ColorVariant: cfg.Markings.ColorVariants[pickIndex(rng, len(cfg.Markings.ColorVariants))],
		Scale:        uniform(rng, 0.5, 1.5),
		Opacity:      uniform(rng, 0.3, 1.0),
	}
	if rng.Float64() < tier.MarkingAnimation {
		anim := drawAnimation(cfg, rng)
		m.Animation = &anim
	}
	return m
}

func composeSpecialFeatures(cfg *config.Config, tier *config.RarityTier, rng Rand) []SpecialFeature {
	rules := tier.Features
	if rules.Max == 0 || len(rules.Pool) == 0 {
		return nil
	}
	if rng.Float64() >= rules.Chance {
		return nil
	}

	count := rules.Min
	if rules.Max > rules.Min {
		count += pickIndex(rng, rules.Max-rules.Min+1)
	}

	defs := sample(rng, rules.Pool, count)
	out := make([]SpecialFeature, 0, len(defs))
	for _, def := range defs {
		f := SpecialFeature{
			Name:      def.Name,
			Variant:   def.Variants[pickIndex(rng, len(def.Variants))],
			Intensity: uniform(rng, 0.2, 1.0),
		}
		if def.Dynamic {
			anim := drawAnimation(cfg, rng)
			f.Animation = &anim
		}
		out = append(out, f)
	}
	return out
}

func drawAnimation(cfg *config.Config, rng Rand) Animation {
	return Animation{
		Type:      cfg.Animations.Types[pickIndex(rng, len(cfg.Animations.Types))],
		Speed:     uniform(rng, 0.5, 2.0),
		Intensity: uniform(rng, 0.3, 1.0),
		SyncMode:  cfg.Animations.SyncModes[pickIndex(rng, len(cfg.Animations.SyncModes))],
	}
}
