package groundtruth

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"chemgrade/internal/ladder"
	"chemgrade/internal/spec"
)

// The shipped ring-strain rubric: 44 points of per-structure QC checks, 8
// points for stating the correct reference ring, 48 points for the twelve
// strain values. Weights and bands follow the original benchmark grading.

var benchmarkStructures = []string{
	"cyclo/3", "cyclo/4", "cyclo/5", "cyclo/6", "cyclo/7", "cyclo/8",
	"methyl/3", "methyl/4", "methyl/5", "methyl/6", "methyl/7",
}

var qcChecks = []string{
	"geometry_present",
	"method_present",
	"basis_present",
	"tasks_present",
	"charge_mult_present",
	"scf_converged",
	"geom_converged",
	CheckImaginaryFreq,
}

// The imaginary-frequency column is the one check graded on absence: a
// converged minimum has no imaginary modes, so credit is awarded on false.
var awardOnAbsent = false

var strainBands = []spec.Band{
	{MaxError: 0.20, Fraction: 1.0},
	{MaxError: 0.50, Fraction: 0.5},
}

// DefaultRubric builds the ring-strain benchmark rubric.
func DefaultRubric() spec.Rubric {
	qc := spec.Section{Name: "inputs-qc", MaxPoints: 44}
	for _, structureKey := range benchmarkStructures {
		for _, check := range qcChecks {
			item := spec.Item{
				Name:   structureKey + "/" + check,
				Kind:   spec.KindBoolean,
				Weight: 0.5,
			}
			if check == CheckImaginaryFreq {
				item.AwardOn = &awardOnAbsent
			}
			qc.Items = append(qc.Items, item)
		}
	}

	reference := spec.Section{
		Name:      "reference-point",
		MaxPoints: 8,
		Items: []spec.Item{{
			Name:   MetricReferenceIsSix,
			Kind:   spec.KindBoolean,
			Weight: 8,
		}},
	}

	strain := spec.Section{Name: "strain-numeric", MaxPoints: 48}
	cfg := ladder.DefaultConfig
	for n := cfg.MinRing; n <= cfg.MaxRing; n++ {
		for _, name := range []string{MetricStrainH(n), MetricStrainG(n)} {
			strain.Items = append(strain.Items, spec.Item{
				Name:   name,
				Kind:   spec.KindNumeric,
				Weight: 4,
				Error:  spec.ErrorAbsolute,
				Bands:  strainBands,
			})
		}
	}

	return spec.Rubric{
		Version:   1,
		Name:      "ring-strain",
		MaxPoints: 100,
		Sections:  []spec.Section{qc, reference, strain},
	}
}

// DefaultRubricYAML renders the default rubric as a YAML document, suitable
// for scaffolding a rubric file the user can edit.
func DefaultRubricYAML() ([]byte, error) {
	out, err := yaml.Marshal(DefaultRubric())
	if err != nil {
		return nil, fmt.Errorf("render default rubric: %w", err)
	}
	return out, nil
}
