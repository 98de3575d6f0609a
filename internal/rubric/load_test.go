package rubric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chemgrade/internal/spec"
)

func validRubric() spec.Rubric {
	awardOn := true
	return spec.Rubric{
		Version:   1,
		Name:      "test",
		MaxPoints: 6,
		Sections: []spec.Section{
			{
				Name:      "qc",
				MaxPoints: 2,
				Items: []spec.Item{
					{Name: "converged", Kind: spec.KindBoolean, Weight: 2, AwardOn: &awardOn},
				},
			},
			{
				Name:      "numbers",
				MaxPoints: 4,
				Items: []spec.Item{
					{
						Name:   "strain_dH/6",
						Kind:   spec.KindNumeric,
						Weight: 4,
						Error:  spec.ErrorAbsolute,
						Bands: []spec.Band{
							{MaxError: 0.20, Fraction: 1.0},
							{MaxError: 0.50, Fraction: 0.5},
						},
					},
				},
			},
		},
	}
}

// TestValidateAcceptsWellFormedRubric verifies a correct rubric passes.
func TestValidateAcceptsWellFormedRubric(t *testing.T) {
	rubric := validRubric()
	if err := Validate(&rubric); err != nil {
		t.Fatalf("expected rubric to validate, got %v", err)
	}
}

// TestValidateRejectsNonMonotonicBands verifies band ordering is enforced.
func TestValidateRejectsNonMonotonicBands(t *testing.T) {
	rubric := validRubric()
	rubric.Sections[1].Items[0].Bands = []spec.Band{
		{MaxError: 0.50, Fraction: 1.0},
		{MaxError: 0.20, Fraction: 0.5},
	}
	err := Validate(&rubric)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "strictly ascending") {
		t.Fatalf("expected band ordering error, got %q", err.Error())
	}
}

// TestValidateRejectsNegativeWeight verifies out-of-range weights fail fast.
func TestValidateRejectsNegativeWeight(t *testing.T) {
	rubric := validRubric()
	rubric.Sections[0].Items[0].Weight = -1
	err := Validate(&rubric)
	if err == nil || !strings.Contains(err.Error(), "weight") {
		t.Fatalf("expected weight error, got %v", err)
	}
}

// TestValidateRejectsNumericItemWithoutBands verifies missing bands fail fast.
func TestValidateRejectsNumericItemWithoutBands(t *testing.T) {
	rubric := validRubric()
	rubric.Sections[1].Items[0].Bands = nil
	err := Validate(&rubric)
	if err == nil || !strings.Contains(err.Error(), "tolerance band") {
		t.Fatalf("expected missing band error, got %v", err)
	}
}

// TestValidateRejectsDuplicateItemNames verifies item names must be unique.
func TestValidateRejectsDuplicateItemNames(t *testing.T) {
	rubric := validRubric()
	rubric.Sections[0].Items[0].Name = "strain_dH/6"
	err := Validate(&rubric)
	if err == nil || !strings.Contains(err.Error(), "duplicate name") {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

// TestValidateRejectsBandsOnBooleanItem verifies boolean items reject bands.
func TestValidateRejectsBandsOnBooleanItem(t *testing.T) {
	rubric := validRubric()
	rubric.Sections[0].Items[0].Bands = []spec.Band{{MaxError: 1, Fraction: 1}}
	err := Validate(&rubric)
	if err == nil || !strings.Contains(err.Error(), "must not declare") {
		t.Fatalf("expected boolean band error, got %v", err)
	}
}

// TestNormalizeDefaults verifies error mode and award_on defaults.
func TestNormalizeDefaults(t *testing.T) {
	rubric := spec.Rubric{
		Version: 1,
		Name:    " padded ",
		Sections: []spec.Section{{
			Name: "s",
			Items: []spec.Item{
				{Name: "b", Kind: "Boolean", Weight: 1},
				{Name: "n", Kind: "NUMERIC", Weight: 1, Bands: []spec.Band{{MaxError: 1, Fraction: 1}}},
			},
		}},
	}
	Normalize(&rubric)
	if rubric.Name != "padded" {
		t.Fatalf("expected trimmed name, got %q", rubric.Name)
	}
	boolItem := rubric.Sections[0].Items[0]
	if boolItem.Kind != spec.KindBoolean || boolItem.AwardOn == nil || !*boolItem.AwardOn {
		t.Fatalf("unexpected boolean defaults: %+v", boolItem)
	}
	numItem := rubric.Sections[0].Items[1]
	if numItem.Kind != spec.KindNumeric || numItem.Error != spec.ErrorAbsolute {
		t.Fatalf("unexpected numeric defaults: %+v", numItem)
	}
}

// TestLoadRoundTrip verifies Load applies parse, normalize, and validate.
func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubric.yml")
	payload := `version: 1
name: ring-strain
max_points: 4
sections:
  - name: strain
    max_points: 4
    items:
      - name: strain_dH/6
        kind: numeric
        weight: 4.0
        bands:
          - {max_error: 0.20, fraction: 1.0}
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write rubric: %v", err)
	}
	rubric, err := Load(path)
	if err != nil {
		t.Fatalf("load rubric: %v", err)
	}
	if rubric.Sections[0].Items[0].Error != spec.ErrorAbsolute {
		t.Fatalf("expected default error mode, got %q", rubric.Sections[0].Items[0].Error)
	}
}

// TestLoadMissingFile verifies a readable error for absent rubric files.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil || !strings.Contains(err.Error(), "read rubric") {
		t.Fatalf("expected read error, got %v", err)
	}
}
