package telemetry

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/astraling/genome/genetics"
)

// ShowcaseEntry is one hatch kept for display.
type ShowcaseEntry struct {
	ID         string  `json:"id"`
	Species    string  `json:"species"`
	Rarity     string  `json:"rarity"`
	Element    string  `json:"element"`
	PowerLevel float64 `json:"power_level"`
}

// Showcase keeps the strongest generated profiles, ordered by power
// level and bounded to a fixed size.
type Showcase struct {
	mu      sync.Mutex
	entries []ShowcaseEntry
	maxSize int
}

// NewShowcase creates a showcase holding at most maxSize entries.
func NewShowcase(maxSize int) *Showcase {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Showcase{maxSize: maxSize}
}

// Consider offers a profile to the showcase. Returns true if the
// profile was kept.
func (s *Showcase) Consider(p *genetics.GeneticProfile) bool {
	entry := ShowcaseEntry{
		ID:         p.ID,
		Species:    p.Species,
		Rarity:     p.Rarity,
		Element:    p.CosmicAffinity.Element,
		PowerLevel: p.CosmicAffinity.PowerLevel,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == s.maxSize && entry.PowerLevel <= s.entries[len(s.entries)-1].PowerLevel {
		return false
	}

	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].PowerLevel < entry.PowerLevel
	})
	s.entries = append(s.entries, ShowcaseEntry{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = entry

	if len(s.entries) > s.maxSize {
		s.entries = s.entries[:s.maxSize]
	}
	return true
}

// Entries returns a copy of the kept entries, strongest first.
func (s *Showcase) Entries() []ShowcaseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShowcaseEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// MarshalJSON serializes the kept entries.
func (s *Showcase) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}
