package spec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRubric decodes a single-document YAML rubric with strict field checking.
func ParseRubric(data []byte) (Rubric, error) {
	var rubric Rubric
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rubric); err != nil {
		return Rubric{}, fmt.Errorf("parse rubric: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Rubric{}, fmt.Errorf("parse rubric: multiple YAML documents are not supported")
		}
		return Rubric{}, fmt.Errorf("parse rubric: %w", err)
	}
	return rubric, nil
}
