package rubric

import (
	"strings"

	"chemgrade/internal/spec"
)

// Normalize fills in defaults and trims whitespace before validation.
func Normalize(rubric *spec.Rubric) {
	rubric.Name = strings.TrimSpace(rubric.Name)
	for s := range rubric.Sections {
		section := &rubric.Sections[s]
		section.Name = strings.TrimSpace(section.Name)
		for i := range section.Items {
			item := &section.Items[i]
			item.Name = strings.TrimSpace(item.Name)
			item.Kind = strings.ToLower(strings.TrimSpace(item.Kind))
			item.Error = strings.ToLower(strings.TrimSpace(item.Error))
			if item.Kind == spec.KindNumeric && item.Error == "" {
				item.Error = spec.ErrorAbsolute
			}
			if item.Kind == spec.KindBoolean && item.AwardOn == nil {
				awardOn := true
				item.AwardOn = &awardOn
			}
		}
	}
}
