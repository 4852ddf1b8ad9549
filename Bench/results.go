package Bench

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const timestampLayout = "20060102-150405"

// Results of a run. Series are indexed like DataSizes.
type Results struct {
	// mean seconds per search after each step.
	ExecTimes map[string][]float64 `json:"Exec_times" yaml:"exec_times"`
	// cumulative seconds spent inserting up to each step.
	InsertTimes map[string][]float64 `json:"Insert_times" yaml:"insert_times"`
	DataSizes   []int                `json:"Data_sizes" yaml:"data_sizes"`
}

// Engines that have a series, sorted.
func (r *Results) Engines() []string {
	return slices.Sorted(maps.Keys(r.ExecTimes))
}

// FileName encodes the final size, the step count and the time of the run.
func (r *Results) FileName(format string, at time.Time) string {
	final := 0
	if len(r.DataSizes) > 0 {
		final = r.DataSizes[len(r.DataSizes)-1]
	}
	return fmt.Sprintf("benchmark_results_%d_steps%d_%s.%s", final, len(r.DataSizes), at.Format(timestampLayout), format)
}

// Save writes r into dir, creating it if needed, and returns the file's path.
func (r *Results) Save(dir, format string, at time.Time) (string, error) {
	var (
		raw []byte
		err error
	)
	switch format {
	case "json":
		raw, err = json.MarshalIndent(r, "", "  ")
	case "yaml":
		raw, err = yaml.Marshal(r)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("encode results: %w", err)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, r.FileName(format, at))
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return path, nil
}

// LoadResults reads a file written by Save, picking the decoder by extension.
func LoadResults(path string) (*Results, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	var r Results
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &r)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &r)
	default:
		return nil, fmt.Errorf("unknown results extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for name, s := range r.ExecTimes {
		if len(s) != len(r.DataSizes) {
			return nil, fmt.Errorf("%s: %s has %d search times for %d sizes", path, name, len(s), len(r.DataSizes))
		}
	}
	return &r, nil
}
