package rubric

import (
	"fmt"
	"os"

	"chemgrade/internal/spec"
)

// Load reads, parses, normalizes, and validates a rubric file.
func Load(path string) (spec.Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Rubric{}, fmt.Errorf("read rubric: %w", err)
	}
	rubric, err := spec.ParseRubric(data)
	if err != nil {
		return spec.Rubric{}, err
	}
	Normalize(&rubric)
	if err := Validate(&rubric); err != nil {
		return spec.Rubric{}, err
	}
	return rubric, nil
}
