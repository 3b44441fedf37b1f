package telemetry

import (
	"sync"

	"github.com/astraling/genome/genetics"
)

// Collector accumulates generation outcomes. It is safe to use as the
// observer of a generator shared across concurrent hatch flows.
type Collector struct {
	mu       sync.Mutex
	total    int
	species  map[string]int
	rarities map[string]int
	elements map[string]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		species:  make(map[string]int),
		rarities: make(map[string]int),
		elements: make(map[string]int),
	}
}

// Observer returns the callback to register on a generator.
func (c *Collector) Observer() genetics.Observer {
	return func(s genetics.Summary) { c.record(s) }
}

func (c *Collector) record(s genetics.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total++
	c.species[s.Species]++
	c.rarities[s.Rarity]++
	c.elements[s.Element]++
}

// Snapshot holds copied counts at one point in time.
type Snapshot struct {
	Total    int            `json:"total"`
	Species  map[string]int `json:"species"`
	Rarities map[string]int `json:"rarities"`
	Elements map[string]int `json:"elements"`
}

// Snapshot copies the current counts.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Total:    c.total,
		Species:  copyCounts(c.species),
		Rarities: copyCounts(c.rarities),
		Elements: copyCounts(c.elements),
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
