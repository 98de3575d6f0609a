package rubric

import (
	"fmt"
	"strings"

	"chemgrade/internal/spec"
)

// Issue captures a validation problem with a rubric field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates rubric validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "rubric validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a rubric for configuration mistakes. A malformed rubric is
// a hard error at load time; data-quality problems never reach this path.
func Validate(rubric *spec.Rubric) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if rubric.Version == 0 {
		add("version", "is required")
	} else if rubric.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", rubric.Version))
	}
	if rubric.Name == "" {
		add("name", "is required")
	}
	if rubric.MaxPoints < 0 {
		add("max_points", "must be >= 0")
	}
	if len(rubric.Sections) == 0 {
		add("sections", "at least one section is required")
	}

	sectionNames := map[string]struct{}{}
	itemNames := map[string]struct{}{}
	for s, section := range rubric.Sections {
		fieldPrefix := fmt.Sprintf("sections[%d]", s)
		if section.Name == "" {
			add(fieldPrefix+".name", "is required")
		} else if _, exists := sectionNames[section.Name]; exists {
			add("sections.name", fmt.Sprintf("duplicate name %q", section.Name))
		} else {
			sectionNames[section.Name] = struct{}{}
		}
		if section.MaxPoints < 0 {
			add(fieldPrefix+".max_points", "must be >= 0")
		}
		if len(section.Items) == 0 {
			add(fieldPrefix+".items", "must include at least one entry")
		}
		for i, item := range section.Items {
			itemField := fmt.Sprintf("%s.items[%d]", fieldPrefix, i)
			if item.Name == "" {
				add(itemField+".name", "is required")
			} else if _, exists := itemNames[item.Name]; exists {
				add("items.name", fmt.Sprintf("duplicate name %q", item.Name))
			} else {
				itemNames[item.Name] = struct{}{}
			}
			if item.Weight < 0 {
				add(itemField+".weight", "must be >= 0")
			}
			switch item.Kind {
			case spec.KindBoolean:
				if len(item.Bands) > 0 {
					add(itemField+".bands", "boolean items must not declare tolerance bands")
				}
			case spec.KindNumeric:
				validateNumericItem(item, itemField, add)
			case "":
				add(itemField+".kind", "is required")
			default:
				add(itemField+".kind", fmt.Sprintf("unsupported kind %q", item.Kind))
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validateNumericItem checks tolerance bands for ordering and range.
func validateNumericItem(item spec.Item, field string, add func(field, message string)) {
	if item.Error != spec.ErrorAbsolute && item.Error != spec.ErrorRelative {
		add(field+".error", fmt.Sprintf("unsupported error mode %q", item.Error))
	}
	if len(item.Bands) == 0 {
		add(field+".bands", "numeric items require at least one tolerance band")
		return
	}
	for b, band := range item.Bands {
		bandField := fmt.Sprintf("%s.bands[%d]", field, b)
		if band.MaxError < 0 {
			add(bandField+".max_error", "must be >= 0")
		}
		if band.Fraction < 0 || band.Fraction > 1 {
			add(bandField+".fraction", "must be within [0, 1]")
		}
		if b == 0 {
			continue
		}
		prev := item.Bands[b-1]
		if band.MaxError <= prev.MaxError {
			add(bandField+".max_error", "bands must be strictly ascending in max_error")
		}
		if band.Fraction > prev.Fraction {
			add(bandField+".fraction", "fractions must be non-increasing across bands")
		}
	}
}
