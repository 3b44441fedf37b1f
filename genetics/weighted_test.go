package genetics

import "testing"

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type weighted struct {
	name   string
	weight float64
}

func weightOf(w weighted) float64 { return w.weight }

func TestPickMidpointDraw(t *testing.T) {
	// The documented golden case: cumulative 0.40 misses a 0.5 draw,
	// cumulative 0.75 catches it.
	table := []weighted{
		{"stellar_wyrm", 0.40},
		{"crystal_drake", 0.35},
		{"nebula_sprite", 0.25},
	}

	got := pick(constRand(0.5), table, weightOf)
	if got.name != "crystal_drake" {
		t.Errorf("pick at 0.5 = %q, want crystal_drake", got.name)
	}
}

func TestPickBoundaries(t *testing.T) {
	table := []weighted{{"a", 0.5}, {"b", 0.5}}

	if got := pick(constRand(0), table, weightOf); got.name != "a" {
		t.Errorf("pick at 0 = %q, want a", got.name)
	}
	if got := pick(constRand(0.999999), table, weightOf); got.name != "b" {
		t.Errorf("pick near 1 = %q, want b", got.name)
	}
}

func TestPickSingleEntry(t *testing.T) {
	table := []weighted{{"only", 1.0}}
	for _, r := range []float64{0, 0.4, 0.999} {
		if got := pick(constRand(r), table, weightOf); got.name != "only" {
			t.Errorf("pick at %v = %q, want only", r, got.name)
		}
	}
}

func TestPickConvergesToWeights(t *testing.T) {
	table := []weighted{{"a", 0.2}, {"b", 0.5}, {"c", 0.3}}
	rng := NewSeeded(99)

	counts := map[string]int{}
	const n = 200_000
	for i := 0; i < n; i++ {
		counts[pick(rng, table, weightOf).name]++
	}

	for _, entry := range table {
		freq := float64(counts[entry.name]) / n
		if diff := freq - entry.weight; diff > 0.01 || diff < -0.01 {
			t.Errorf("frequency of %q = %v, want %v +- 0.01", entry.name, freq, entry.weight)
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	rng := NewSeeded(5)

	for i := 0; i < 100; i++ {
		got := sample(rng, pool, 3)
		if len(got) != 3 {
			t.Fatalf("sample size = %d, want 3", len(got))
		}
		seen := map[string]bool{}
		for _, s := range got {
			if seen[s] {
				t.Fatalf("sample repeated %q", s)
			}
			seen[s] = true
		}
	}

	if got := sample(rng, pool, 10); len(got) != len(pool) {
		t.Errorf("oversized sample = %d entries, want %d", len(got), len(pool))
	}
	if got := sample(rng, pool, 0); got != nil {
		t.Errorf("zero sample = %v, want nil", got)
	}
}
