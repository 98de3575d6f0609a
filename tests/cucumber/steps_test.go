package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"chemgrade/internal/cli"
	"chemgrade/internal/report"
)

type featureState struct {
	workDir    string
	root       string
	reportFile string
	rubricFile string
	outDir     string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
	results    *report.Results
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a benchmark tree with converged cyclohexane and methylcyclopentane jobs$`, state.aConvergedBenchmarkTree)
	ctx.Step(`^an agent report stating cyclohexane as the reference point$`, state.anAgentReportWithReference)
	ctx.Step(`^a rubric file with descending tolerance bands$`, state.aRubricWithDescendingBands)
	ctx.Step(`^I grade the benchmark$`, state.iGradeTheBenchmark)
	ctx.Step(`^I validate the rubric$`, state.iValidateTheRubric)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the "([^"]+)" section is fully awarded$`, state.theSectionIsFullyAwarded)
	ctx.Step(`^the "([^"]+)" item is scored "([^"]+)"$`, state.theItemIsScored)
	ctx.Step(`^every item in the "([^"]+)" section is scored "([^"]+)"$`, state.everyItemInSectionIsScored)
	ctx.Step(`^the error output mentions "([^"]+)"$`, state.theErrorOutputMentions)
}

func (s *featureState) reset() error {
	dir, err := os.MkdirTemp("", "chemgrade-cucumber-")
	if err != nil {
		return err
	}
	*s = featureState{workDir: dir, outDir: filepath.Join(dir, "out")}
	return nil
}

func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func carbonRingXYZ(n int, exoMethyl bool) string {
	bond := 1.53
	radius := bond / (2 * math.Sin(math.Pi/float64(n)))
	count := n
	if exoMethyl {
		count++
	}
	text := fmt.Sprintf("%d\nfixture\n", count)
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		text += fmt.Sprintf("C %.4f %.4f 0.0000\n", radius*math.Cos(angle), radius*math.Sin(angle))
	}
	if exoMethyl {
		text += fmt.Sprintf("C %.4f 0.0000 0.0000\n", radius+1.53)
	}
	return text
}

func orcaOutput(enthalpy, gibbs float64) string {
	return fmt.Sprintf(`                 *** SCF CONVERGED AFTER  14 CYCLES ***

    ***********************HURRAY***********************
    ***        THE OPTIMIZATION HAS CONVERGED         ***
    *****************************************************

-----------------------
VIBRATIONAL FREQUENCIES
-----------------------
   6:       312.45 cm**-1

Total Enthalpy                  ...    %.8f Eh
Final Gibbs free energy         ...    %.8f Eh
`, enthalpy, gibbs)
}

func (s *featureState) aConvergedBenchmarkTree() error {
	s.root = filepath.Join(s.workDir, "benchmark")
	input := "! B3LYP def2-SVP OPT FREQ\n* xyz 0 1\nC 0.0 0.0 0.0\n*\n"
	jobs := []struct {
		name     string
		xyz      string
		enthalpy float64
		gibbs    float64
	}{
		{"cyclohexane", carbonRingXYZ(6, false), -235.00, -235.04},
		{"methylcyclopentane", carbonRingXYZ(5, true), -235.01, -235.06},
	}
	for _, job := range jobs {
		dir := filepath.Join(s.root, job.name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		files := map[string]string{
			job.name + ".xyz": job.xyz,
			"orca.inp":        input,
			"orca.out":        orcaOutput(job.enthalpy, job.gibbs),
		}
		for name, content := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *featureState) anAgentReportWithReference() error {
	markdown := `# Ring strain results

Cyclohexane is the reference point with zero strain energy.

All values in kcal/mol:

| 5 | 6.275 | 12.550 |
`
	s.reportFile = filepath.Join(s.workDir, "report.md")
	return os.WriteFile(s.reportFile, []byte(markdown), 0o644)
}

func (s *featureState) aRubricWithDescendingBands() error {
	rubric := `version: 1
name: broken
max_points: 4
sections:
  - name: s
    max_points: 4
    items:
      - name: x
        kind: numeric
        weight: 4
        bands:
          - {max_error: 0.5, fraction: 1.0}
          - {max_error: 0.2, fraction: 0.5}
`
	s.rubricFile = filepath.Join(s.workDir, "rubric.yml")
	return os.WriteFile(s.rubricFile, []byte(rubric), 0o644)
}

func (s *featureState) iGradeTheBenchmark() error {
	args := []string{"grade", "--root", s.root, "--out", s.outDir, "--ui", "plain"}
	if s.reportFile != "" {
		args = append(args, "--report", s.reportFile)
	}
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	if s.exitCode != cli.ExitOK {
		return nil
	}
	entries, err := os.ReadDir(s.outDir)
	if err != nil || len(entries) != 1 {
		return fmt.Errorf("expected one run directory, got %v (%v)", entries, err)
	}
	results, err := report.LoadResults(filepath.Join(s.outDir, entries[0].Name(), "results.json"))
	if err != nil {
		return err
	}
	s.results = &results
	return nil
}

func (s *featureState) iValidateTheRubric() error {
	s.exitCode = cli.Run([]string{"validate", "--rubric", s.rubricFile}, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != cli.ExitOK {
		return fmt.Errorf("exit code %d, stderr: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == cli.ExitOK {
		return fmt.Errorf("expected a failure, got exit code 0")
	}
	return nil
}

func (s *featureState) theSectionIsFullyAwarded(name string) error {
	if s.results == nil {
		return fmt.Errorf("no results loaded")
	}
	for _, section := range s.results.Scores.SectionTotals {
		if section.Name == name {
			if section.Awarded != section.Max {
				return fmt.Errorf("section %s awarded %v of %v", name, section.Awarded, section.Max)
			}
			return nil
		}
	}
	return fmt.Errorf("section %s not found", name)
}

func (s *featureState) theItemIsScored(name, status string) error {
	if s.results == nil {
		return fmt.Errorf("no results loaded")
	}
	for _, item := range s.results.Scores.PerItem {
		if item.Name == name {
			if string(item.Status) != status {
				return fmt.Errorf("item %s scored %s, expected %s", name, item.Status, status)
			}
			return nil
		}
	}
	return fmt.Errorf("item %s not found", name)
}

func (s *featureState) everyItemInSectionIsScored(section, status string) error {
	if s.results == nil {
		return fmt.Errorf("no results loaded")
	}
	found := false
	for _, item := range s.results.Scores.PerItem {
		if item.Section != section {
			continue
		}
		found = true
		if string(item.Status) != status {
			return fmt.Errorf("item %s scored %s, expected %s", item.Name, item.Status, status)
		}
	}
	if !found {
		return fmt.Errorf("no items found in section %s", section)
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(token string) error {
	if !strings.Contains(s.stderr.String(), token) {
		return fmt.Errorf("stderr does not mention %q: %s", token, s.stderr.String())
	}
	return nil
}
