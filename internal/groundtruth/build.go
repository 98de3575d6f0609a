// Package groundtruth assembles the reference answer for a benchmark run.
// It composes the folder inventory, duplicate selection, output extraction,
// and strain-ladder reconstruction into the flat metric table the rubric
// engine consumes. Data-quality problems degrade to missing metrics; only a
// failure to read the root directory is an error.
package groundtruth

import (
	"fmt"
	"sort"
	"sync"

	"chemgrade/internal/extract"
	"chemgrade/internal/inventory"
	"chemgrade/internal/ladder"
	"chemgrade/internal/scoring"
	"chemgrade/internal/structure"
)

// MetricReferenceIsSix is the metric name for the stated reference ring size.
const MetricReferenceIsSix = "reference_is_six"

// CheckImaginaryFreq is the check suffix for the imaginary-mode flag. True
// means the frequency spectrum has a negative mode; the rubric awards its
// points when the flag is false.
const CheckImaginaryFreq = "imaginary_freq"

// MetricStrainH names the cumulative enthalpy strain metric for ring size n.
func MetricStrainH(n int) string { return fmt.Sprintf("strain_dH/%d", n) }

// MetricStrainG names the cumulative free-energy strain metric for ring size n.
func MetricStrainG(n int) string { return fmt.Sprintf("strain_dG/%d", n) }

// Structure pairs one selected representative folder with its resolved
// identity and extracted facts.
type Structure struct {
	Identity structure.Identity
	Folder   inventory.Folder
	Facts    extract.Facts
}

// Truth is the assembled ground truth for one benchmark root.
type Truth struct {
	Structures []Structure
	Series     ladder.Series
	Values     map[string]scoring.Value
}

const extractWorkers = 4

// Build scans root and assembles the ground truth from its job folders.
func Build(root string) (Truth, error) {
	folders, err := inventory.Scan(root)
	if err != nil {
		return Truth{}, err
	}
	return FromFolders(folders), nil
}

// FromFolders assembles the ground truth from an already-scanned folder set.
func FromFolders(folders []inventory.Folder) Truth {
	representatives := structure.SelectRepresentatives(folders, extract.RealMinimum)
	structures := extractAll(representatives)

	truth := Truth{
		Structures: structures,
		Values:     make(map[string]scoring.Value),
	}

	cyclo := make(map[int]ladder.Energies)
	methyl := make(map[int]ladder.Energies)
	for _, s := range structures {
		recordChecks(truth.Values, s)
		energies := ladder.Energies{H: s.Facts.EnthalpyAU, G: s.Facts.GibbsAU}
		switch s.Identity.Role {
		case structure.RoleCyclo:
			cyclo[s.Identity.RingSize] = energies
		case structure.RoleMethyl:
			methyl[s.Identity.RingSize] = energies
		}
	}

	deltas := ladder.AdjacentDeltas(cyclo, methyl, ladder.HartreeToKcalPerMol)
	truth.Series = ladder.BuildSeries(deltas, ladder.DefaultConfig)
	for n := ladder.DefaultConfig.MinRing; n <= ladder.DefaultConfig.MaxRing; n++ {
		point := truth.Series[n]
		truth.Values[MetricStrainH(n)] = numericValue(point.H)
		truth.Values[MetricStrainG(n)] = numericValue(point.G)
	}
	return truth
}

// extractAll reads folder facts over a bounded worker pool. Results are
// re-ordered by structure key so downstream aggregation never depends on
// goroutine scheduling.
func extractAll(representatives []inventory.Folder) []Structure {
	structures := make([]Structure, len(representatives))
	sem := make(chan struct{}, extractWorkers)
	var wg sync.WaitGroup
	for i, folder := range representatives {
		wg.Add(1)
		go func(i int, folder inventory.Folder) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			structures[i] = Structure{
				Identity: structure.Classify(folder),
				Folder:   folder,
				Facts:    extract.FolderFacts(folder),
			}
		}(i, folder)
	}
	wg.Wait()
	sort.Slice(structures, func(i, j int) bool {
		return structures[i].Identity.Key < structures[j].Identity.Key
	})
	return structures
}

// recordChecks writes the per-structure QC booleans. Check names combine the
// structure key with the check suffix, e.g. "cyclo/6/scf_converged".
func recordChecks(values map[string]scoring.Value, s Structure) {
	key := string(s.Identity.Key)
	put := func(check string, v bool) {
		values[key+"/"+check] = scoring.Flag(v)
	}
	put("geometry_present", s.Facts.GeometryPresent)
	put("method_present", s.Facts.Input.MethodPresent)
	put("basis_present", s.Facts.Input.BasisPresent)
	put("tasks_present", s.Facts.Input.TasksPresent)
	put("charge_mult_present", s.Facts.Input.ChargeMultPresent)
	put("output_present", s.Facts.OutputPresent)
	put("scf_converged", s.Facts.SCFConverged)
	put("geom_converged", s.Facts.GeomConverged)
	// No frequency block means the flag is unknown, not clean; leaving the
	// metric absent scores the check as missing rather than awarding it.
	if s.Facts.ImaginaryPresent != nil {
		put(CheckImaginaryFreq, *s.Facts.ImaginaryPresent)
	}
}

func numericValue(v *float64) scoring.Value {
	if v == nil {
		return scoring.Missing()
	}
	return scoring.Num(*v)
}

// PredictionValues flattens a parsed agent report into the predicted metric
// map. Only values the report actually states appear; everything else is
// left absent so numeric items score as missing.
func PredictionValues(predictions extract.Predictions) map[string]scoring.Value {
	values := map[string]scoring.Value{
		MetricReferenceIsSix: scoring.Flag(predictions.ReferenceIsSixRing),
	}
	for n, row := range predictions.Rows {
		if row.StrainH != nil {
			values[MetricStrainH(n)] = scoring.Num(*row.StrainH)
		}
		if row.StrainG != nil {
			values[MetricStrainG(n)] = scoring.Num(*row.StrainG)
		}
	}
	return values
}
