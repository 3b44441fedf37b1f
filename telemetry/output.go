package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/astraling/genome/config"
)

// OutputManager handles structured batch output with CSV logging.
// A nil manager (empty dir) turns every write into a no-op.
type OutputManager struct {
	dir     string
	genFile *os.File

	genHeaderWritten bool
}

// BatchSummary is the end-of-batch report written as summary.json.
type BatchSummary struct {
	Seed             uint64         `json:"seed"`
	Count            int            `json:"count"`
	Species          map[string]int `json:"species"`
	Rarities         map[string]int `json:"rarities"`
	Elements         map[string]int `json:"elements"`
	MeanGenerationMs float64        `json:"mean_generation_ms"`
	SpeciesFit       AxisFit        `json:"species_fit"`
	RarityFit        AxisFit        `json:"rarity_fit"`
}

// NewOutputManager creates an output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	genPath := filepath.Join(dir, "generations.csv")
	f, err := os.Create(genPath)
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}

	return &OutputManager{dir: dir, genFile: f}, nil
}

// WriteConfig saves the active tables as YAML alongside the records.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "tables.yaml"))
}

// WriteGeneration appends one record to generations.csv.
func (om *OutputManager) WriteGeneration(rec GenerationRecord) error {
	if om == nil {
		return nil
	}

	records := []GenerationRecord{rec}

	if !om.genHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.genFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
		om.genHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.genFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
	}
	return nil
}

// WriteSummary saves the batch summary as JSON.
func (om *OutputManager) WriteSummary(sum BatchSummary) error {
	if om == nil {
		return nil
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, "summary.json"), data, 0644); err != nil {
		return fmt.Errorf("writing summary.json: %w", err)
	}
	return nil
}

// WriteShowcase saves the showcase as JSON.
func (om *OutputManager) WriteShowcase(s *Showcase) error {
	if om == nil || s == nil {
		return nil
	}
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling showcase: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, "showcase.json"), data, 0644); err != nil {
		return fmt.Errorf("writing showcase.json: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.genFile == nil {
		return nil
	}
	return om.genFile.Close()
}
