package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nullcone/anecprobe/sweep"
)

// ErrNoRecords indicates an attempt to export an empty record set.
var ErrNoRecords = errors.New("results: no records to export")

// Export is the JSON file layout: a labeled, timestamped record set.
type Export struct {
	Sweep     string            `json:"sweep"`
	CreatedAt time.Time         `json:"created_at"`
	Records   []sweep.RunRecord `json:"records"`
}

// WriteJSON saves a record set under the given sweep label.
func WriteJSON(path, label string, recs []sweep.RunRecord) error {
	if len(recs) == 0 {
		return ErrNoRecords
	}
	exp := Export{Sweep: label, CreatedAt: time.Now().UTC(), Records: recs}
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("results: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a record set written by WriteJSON.
func ReadJSON(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	var exp Export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("results: decode %s: %w", path, err)
	}
	return &exp, nil
}
