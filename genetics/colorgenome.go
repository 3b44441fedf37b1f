package genetics

import (
	"github.com/astraling/genome/colormath"
	"github.com/astraling/genome/config"
)

// paletteDraw picks one color uniformly from a palette.
func paletteDraw(rng Rand, palette []config.Color) colormath.RGB {
	return palette[pickIndex(rng, len(palette))].RGB
}

// cosmicPalette collects the tint colors of the species' affinities.
func cosmicPalette(cfg *config.Config, species *config.SpeciesTemplate) []colormath.RGB {
	out := make([]colormath.RGB, 0, len(species.Affinities))
	for _, el := range species.Affinities {
		if def, ok := cfg.Derived.AffinityIndex[el]; ok {
			out = append(out, def.Color.RGB)
		}
	}
	return out
}

// synthesizeColorGenome builds the three genome colors and their
// derived descriptors. Draw order is fixed: base draws, secondary
// mixing, cosmic eye blend, mutation, enhancement, then descriptors.
func synthesizeColorGenome(cfg *config.Config, species *config.SpeciesTemplate, tier *config.RarityTier, rng Rand) ColorGenome {
	syn := cfg.Synthesis
	mixing := uniform(rng, syn.MixingMin, syn.MixingMax)

	body := paletteDraw(rng, species.BodyPalette)
	wing := paletteDraw(rng, species.WingPalette)
	eye := paletteDraw(rng, species.EyePalette)

	// Secondary mixing, independent per surface.
	if rng.Float64() < mixing {
		body = colormath.Blend(body, paletteDraw(rng, species.BodyPalette), syn.BodyMixRatio)
	}
	if rng.Float64() < mixing {
		wing = colormath.Blend(wing, paletteDraw(rng, species.WingPalette), syn.WingMixRatio)
	}

	// Eyes can pick up the species' cosmic tint.
	if rng.Float64() < syn.CosmicBlendChance {
		if pal := cosmicPalette(cfg, species); len(pal) > 0 {
			eye = colormath.Blend(eye, pal[pickIndex(rng, len(pal))], syn.CosmicBlendRatio)
		}
	}

	// Mutation, strength keyed by rarity. Wings mutate less often.
	if rng.Float64() < syn.MutationChance {
		body = colormath.Mutate(body, tier.MutationStrength, rng)
	}
	if rng.Float64() < syn.WingMutationFactor*syn.MutationChance {
		wing = colormath.Mutate(wing, tier.MutationStrength, rng)
	}

	// Rarity brightness enhancement on all three colors.
	body = colormath.Brighten(body, tier.Enhancement.Boost)
	wing = colormath.Brighten(wing, tier.Enhancement.Boost)
	eye = colormath.Brighten(eye, tier.Enhancement.Boost)

	gradient := Gradient{
		Type:      tier.GradientPool[pickIndex(rng, len(tier.GradientPool))],
		Start:     body,
		End:       wing,
		Intensity: tier.Enhancement.Intensity,
		Angle:     rng.Float64() * 360,
	}

	var flags []string
	for _, fc := range tier.MutationFlags {
		if rng.Float64() < fc.Chance {
			flags = append(flags, fc.Tag)
		}
	}

	return ColorGenome{
		Primary:           body,
		Secondary:         wing,
		Accent:            eye,
		Gradient:          gradient,
		ShimmerIntensity:  tier.Enhancement.Shimmer,
		ColorComplexity:   colormath.Complexity(body, wing, eye),
		HarmonicResonance: colormath.Harmony([]colormath.RGB{body, wing, eye}),
		MixingPattern:     tier.MixingPatterns[pickIndex(rng, len(tier.MixingPatterns))],
		DominantHue:       colormath.DominantHue(body),
		SaturationLevel:   colormath.SaturationLevel(body, wing, eye),
		MutationFlags:     flags,
	}
}
