// Package colormath provides the color operations behind genome
// synthesis: blending, mutation, and the hue-based scoring that feeds
// harmony and complexity descriptors. Colors are stored as RGB ints;
// HSL is used only for scoring.
package colormath

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with channels in [0, 255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Rand is the uniform random source consumed by Mutate.
type Rand interface {
	Float64() float64
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// New returns an RGB with every channel clamped to [0, 255].
func New(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// HSL returns hue in [0, 360), saturation and lightness in [0, 1].
func (c RGB) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Blend interpolates each channel linearly and rounds.
// t=0 returns a unchanged, t=1 returns b unchanged.
func Blend(a, b RGB, t float64) RGB {
	lerp := func(x, y int) int {
		return clampChannel(int(math.Round(float64(x) + (float64(y)-float64(x))*t)))
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// Mutate perturbs each channel by (rand-0.5)*strength*255, clamped.
func Mutate(c RGB, strength float64, rng Rand) RGB {
	shift := func(v int) int {
		delta := (rng.Float64() - 0.5) * strength * 255
		return clampChannel(v + int(math.Round(delta)))
	}
	return RGB{R: shift(c.R), G: shift(c.G), B: shift(c.B)}
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Complementary inverts each channel.
func Complementary(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Brighten adds amount to every channel, clamped.
func Brighten(c RGB, amount int) RGB {
	return RGB{
		R: clampChannel(c.R + amount),
		G: clampChannel(c.G + amount),
		B: clampChannel(c.B + amount),
	}
}

// DominantHue returns the rounded HSL hue of c in [0, 360).
func DominantHue(c RGB) int {
	h, _, _ := c.HSL()
	hue := int(math.Round(h)) % 360
	if hue < 0 {
		hue += 360
	}
	return hue
}

// SaturationLevel returns the mean HSL saturation across colors.
func SaturationLevel(colors ...RGB) float64 {
	if len(colors) == 0 {
		return 0
	}
	var sum float64
	for _, c := range colors {
		_, s, _ := c.HSL()
		sum += s
	}
	return clamp01(sum / float64(len(colors)))
}

// Harmony scores how well a color set satisfies classical color-wheel
// relationships. Each unordered pair contributes 0.4 when the hue gap
// is within 30 deg of complementary (180), 0.3 within 20 deg of
// triadic (120), and 0.2 when analogous (under 60). Clamped to [0, 1].
func Harmony(colors []RGB) float64 {
	var score float64
	for i := 0; i < len(colors); i++ {
		hi, _, _ := colors[i].HSL()
		for j := i + 1; j < len(colors); j++ {
			hj, _, _ := colors[j].HSL()
			diff := math.Abs(hi - hj)
			if diff > 180 {
				diff = 360 - diff
			}
			switch {
			case math.Abs(diff-180) <= 30:
				score += 0.4
			case math.Abs(diff-120) <= 20:
				score += 0.3
			case diff < 60:
				score += 0.2
			}
		}
	}
	return clamp01(score)
}

// Complexity is the mean pairwise RGB distance between the three
// genome colors, normalized to [0, 1].
func Complexity(a, b, c RGB) float64 {
	mean := (Distance(a, b) + Distance(a, c) + Distance(b, c)) / 3
	return clamp01(mean / (255 * 3 * 3))
}
