package telemetry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/astraling/genome/config"
)

// WeightedKey is one expected (key, weight) entry for a fit check.
type WeightedKey struct {
	Key    string
	Weight float64
}

// AxisFit holds the goodness-of-fit of observed draw counts against
// configured weights for one selection axis.
type AxisFit struct {
	Axis     string  `json:"axis"`
	Total    int     `json:"total"`
	ChiSq    float64 `json:"chi_sq"`
	DoF      int     `json:"dof"`
	PValue   float64 `json:"p_value"`
	MaxDrift float64 `json:"max_drift"`
}

// GoodnessOfFit runs a chi-square test of observed counts against
// expected weights. Keys absent from observed count as zero. MaxDrift
// is the largest absolute gap between an empirical frequency and its
// configured weight.
func GoodnessOfFit(axis string, observed map[string]int, expected []WeightedKey) AxisFit {
	var total int
	for _, n := range observed {
		total += n
	}
	fit := AxisFit{Axis: axis, Total: total, PValue: 1}
	if total == 0 || len(expected) < 2 {
		return fit
	}

	var chi, maxDrift float64
	for _, e := range expected {
		exp := e.Weight * float64(total)
		obs := float64(observed[e.Key])
		if exp > 0 {
			chi += (obs - exp) * (obs - exp) / exp
		}
		if drift := math.Abs(obs/float64(total) - e.Weight); drift > maxDrift {
			maxDrift = drift
		}
	}

	fit.ChiSq = chi
	fit.DoF = len(expected) - 1
	fit.MaxDrift = maxDrift
	fit.PValue = 1 - distuv.ChiSquared{K: float64(fit.DoF)}.CDF(chi)
	return fit
}

// SpeciesWeights adapts the species table for fit checks, preserving
// table order.
func SpeciesWeights(cfg *config.Config) []WeightedKey {
	out := make([]WeightedKey, len(cfg.Species))
	for i, sp := range cfg.Species {
		out[i] = WeightedKey{Key: sp.ID, Weight: sp.Weight}
	}
	return out
}

// RarityWeights adapts the rarity table for fit checks.
func RarityWeights(cfg *config.Config) []WeightedKey {
	out := make([]WeightedKey, len(cfg.Rarities))
	for i, tier := range cfg.Rarities {
		out[i] = WeightedKey{Key: tier.Name, Weight: tier.Weight}
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (f AxisFit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("axis", f.Axis),
		slog.Int("total", f.Total),
		slog.Float64("chi_sq", f.ChiSq),
		slog.Int("dof", f.DoF),
		slog.Float64("p_value", f.PValue),
		slog.Float64("max_drift", f.MaxDrift),
	)
}

// WarnOnDrift logs when the empirical distribution strays from the
// configured weights at the given significance level.
func (f AxisFit) WarnOnDrift(pThreshold float64) {
	if f.Total > 0 && f.PValue < pThreshold {
		slog.Warn("generation distribution drift", "fit", f)
	}
}
