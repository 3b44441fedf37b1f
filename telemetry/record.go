// Package telemetry collects generation outcomes for batch reporting:
// per-axis frequency counts, goodness-of-fit against the configured
// weights, CSV/JSON output, and a showcase of the strongest hatches.
package telemetry

import "github.com/astraling/genome/genetics"

// GenerationRecord is one CSV row per generated profile.
type GenerationRecord struct {
	Seq          int     `csv:"seq"`
	ID           string  `csv:"id"`
	Species      string  `csv:"species"`
	Rarity       string  `csv:"rarity"`
	Personality  string  `csv:"personality"`
	Element      string  `csv:"element"`
	PowerLevel   float64 `csv:"power_level"`
	Complexity   float64 `csv:"color_complexity"`
	Harmony      float64 `csv:"harmonic_resonance"`
	DominantHue  int     `csv:"dominant_hue"`
	GenerationMs float64 `csv:"generation_ms"`
}

// FromProfile flattens a finished profile into a record.
func FromProfile(seq int, p *genetics.GeneticProfile) GenerationRecord {
	return GenerationRecord{
		Seq:          seq,
		ID:           p.ID,
		Species:      p.Species,
		Rarity:       p.Rarity,
		Personality:  p.Personality.Core,
		Element:      p.CosmicAffinity.Element,
		PowerLevel:   p.CosmicAffinity.PowerLevel,
		Complexity:   p.Traits.ColorGenome.ColorComplexity,
		Harmony:      p.Traits.ColorGenome.HarmonicResonance,
		DominantHue:  p.Traits.ColorGenome.DominantHue,
		GenerationMs: p.Metadata.GenerationMs,
	}
}
