package scoring

import (
	"math"

	"chemgrade/internal/spec"
)

// Status classifies one scored rubric item.
type Status string

const (
	StatusFull    Status = "full"
	StatusPartial Status = "partial"
	StatusZero    Status = "zero"
	StatusMissing Status = "missing"
)

// ScoreNumeric awards a fraction of weight according to tiered tolerance
// bands. Bands are walked in ascending max_error order; the first band that
// covers the observed error determines the fraction. Either value missing, or
// a relative comparison against a zero ground truth, yields StatusMissing.
func ScoreNumeric(groundTruth, predicted *float64, weight float64, mode string, bands []spec.Band) (float64, Status) {
	if groundTruth == nil || predicted == nil {
		return 0, StatusMissing
	}
	err := math.Abs(*predicted - *groundTruth)
	if mode == spec.ErrorRelative {
		if *groundTruth == 0 {
			return 0, StatusMissing
		}
		err /= math.Abs(*groundTruth)
	}
	for _, band := range bands {
		if err <= band.MaxError {
			points := weight * band.Fraction
			switch {
			case band.Fraction >= 1:
				return points, StatusFull
			case band.Fraction > 0:
				return points, StatusPartial
			default:
				return 0, StatusZero
			}
		}
	}
	return 0, StatusZero
}

// ScoreBoolean awards the full weight when the observed flag matches the
// awarding condition. A nil observation scores as missing.
func ScoreBoolean(observed *bool, awardOn bool, weight float64) (float64, Status) {
	if observed == nil {
		return 0, StatusMissing
	}
	if *observed == awardOn {
		return weight, StatusFull
	}
	return 0, StatusZero
}
