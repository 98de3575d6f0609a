package scoring

import (
	"chemgrade/internal/spec"
)

// Evaluate scores every rubric item against the ground-truth and predicted
// maps and aggregates the result. Items are visited in declared rubric order
// so floating-point summation, and therefore rounding, is reproducible.
// Section subtotals are clamped to the section maximum, and the grand total
// to the rubric maximum, so an over-generous extractor cannot inflate scores.
func Evaluate(rubric spec.Rubric, groundTruth, predicted map[string]Value) Report {
	report := Report{
		Rubric:        rubric.Name,
		PerItem:       make([]ItemScore, 0),
		SectionTotals: make([]SectionTotal, 0, len(rubric.Sections)),
	}

	grand := 0.0
	for _, section := range rubric.Sections {
		subtotal := 0.0
		for _, item := range section.Items {
			awarded, status := scoreItem(item, groundTruth, predicted)
			report.PerItem = append(report.PerItem, ItemScore{
				Name:    item.Name,
				Section: section.Name,
				Awarded: awarded,
				Max:     item.Weight,
				Status:  status,
			})
			subtotal += awarded
		}
		subtotal = clamp(subtotal, section.MaxPoints)
		report.SectionTotals = append(report.SectionTotals, SectionTotal{
			Name:    section.Name,
			Awarded: subtotal,
			Max:     section.MaxPoints,
		})
		grand += subtotal
	}

	report.GrandTotal = Total{
		Awarded: clamp(grand, rubric.MaxPoints),
		Max:     rubric.MaxPoints,
	}
	return report
}

// scoreItem dispatches one item to the boolean or numeric scorer. Boolean
// lookups prefer the predicted map so report-stated facts win when both maps
// carry a value; callers keep report-derived and folder-derived booleans in
// disjoint metric namespaces, so the precedence only ever decides
// report-level items.
func scoreItem(item spec.Item, groundTruth, predicted map[string]Value) (float64, Status) {
	switch item.Kind {
	case spec.KindBoolean:
		observed := lookupBool(predicted, item.Name)
		if observed == nil {
			observed = lookupBool(groundTruth, item.Name)
		}
		awardOn := true
		if item.AwardOn != nil {
			awardOn = *item.AwardOn
		}
		return ScoreBoolean(observed, awardOn, item.Weight)
	case spec.KindNumeric:
		gt := lookupNumber(groundTruth, item.Name)
		pred := lookupNumber(predicted, item.Name)
		return ScoreNumeric(gt, pred, item.Weight, item.Error, item.Bands)
	default:
		// Unreachable after rubric validation; still total.
		return 0, StatusMissing
	}
}

func lookupNumber(values map[string]Value, name string) *float64 {
	if values == nil {
		return nil
	}
	return values[name].Number
}

func lookupBool(values map[string]Value, name string) *bool {
	if values == nil {
		return nil
	}
	return values[name].Bool
}

func clamp(value, max float64) float64 {
	if max > 0 && value > max {
		return max
	}
	return value
}
