package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadResults reads a persisted results.json file.
func LoadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, err
	}
	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return results, nil
}
