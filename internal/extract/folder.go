package extract

import (
	"os"

	"chemgrade/internal/inventory"
)

// Facts aggregates everything extracted from one calculation folder. Fields
// stay nil or false when the underlying file is absent or unreadable; the
// folder itself is never rejected for missing data.
type Facts struct {
	Input            Input
	GeometryPresent  bool
	OutputPresent    bool
	EnthalpyAU       *float64
	GibbsAU          *float64
	SCFConverged     bool
	GeomConverged    bool
	ImaginaryPresent *bool
}

// FolderFacts reads a folder's primary input and output files and extracts
// the grading facts. I/O errors degrade to absent values.
func FolderFacts(folder inventory.Folder) Facts {
	facts := Facts{
		GeometryPresent: folder.GeometryFile != "",
		OutputPresent:   folder.HasOutput(),
	}
	if len(folder.InputFiles) > 0 {
		if text, err := os.ReadFile(folder.InputFiles[0]); err == nil {
			facts.Input = ParseInput(string(text))
		}
	}
	if path := folder.PrimaryOutput(); path != "" {
		if text, err := os.ReadFile(path); err == nil {
			output := ParseOutput(string(text))
			facts.EnthalpyAU = output.EnthalpyAU
			facts.GibbsAU = output.GibbsAU
			facts.SCFConverged = output.SCFConverged
			facts.GeomConverged = output.GeomConverged
			facts.ImaginaryPresent = output.ImaginaryFrequency()
		}
	}
	return facts
}

// RealMinimum reports whether the folder's best output shows an all-real
// frequency spectrum. Nil when no output carries a frequency block, so the
// selector can rank unreadable folders behind confirmed minima.
func RealMinimum(folder inventory.Folder) *bool {
	for _, path := range folder.OutputFiles {
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		output := ParseOutput(string(text))
		imaginary := output.ImaginaryFrequency()
		if imaginary == nil {
			continue
		}
		real := !*imaginary
		return &real
	}
	return nil
}
