package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"chemgrade/internal/extract"
	"chemgrade/internal/groundtruth"
	"chemgrade/internal/report"
	"chemgrade/internal/rubric"
	"chemgrade/internal/scoring"
	"chemgrade/internal/spec"
	"chemgrade/internal/store"
	"chemgrade/internal/ui/live"
)

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		root := flags.String("root", "", "Benchmark directory to grade")
		rubricPath := flags.String("rubric", "", "Rubric file (default: the built-in ring-strain rubric)")
		reportPath := flags.String("report", "", "Agent markdown report with predicted strain values")
		outDir := flags.String("out", "results", "Directory for run outputs; empty disables writing")
		dbPath := flags.String("db", "", "DuckDB file to record the run in")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *root == "" {
			fmt.Fprintln(stderr, "--root is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		gradingRubric, err := loadRubric(*rubricPath)
		if err != nil {
			fmt.Fprintf(stderr, "load rubric:\n%s\n", err.Error())
			return ExitError
		}

		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
		}

		results, err := executeGrade(gradingRubric, *root, *reportPath, controller)
		if err != nil {
			controller.Close()
			controller.Wait()
			fmt.Fprintf(stderr, "grade: %v\n", err)
			return ExitError
		}

		runDir := ""
		if *outDir != "" {
			paths, err := report.WriteRunOutputs(results, *outDir)
			if err != nil {
				controller.Close()
				controller.Wait()
				fmt.Fprintf(stderr, "write outputs: %v\n", err)
				return ExitError
			}
			runDir = paths.RunDir()
		}

		if *dbPath != "" {
			if err := recordRun(*dbPath, results); err != nil {
				controller.Close()
				controller.Wait()
				fmt.Fprintf(stderr, "record run: %v\n", err)
				return ExitError
			}
		}

		controller.OnRunEnd(results.Scores.GrandTotal.Awarded, results.Scores.GrandTotal.Max)
		controller.Wait()

		fmt.Fprint(stdout, renderScoreSummary(results.Scores, !isTerminal(stdout)))
		if runDir != "" {
			fmt.Fprintf(stdout, "Results written to %s\n", runDir)
		}
		return ExitOK
	}
}

// loadRubric loads the rubric file, or falls back to the built-in
// ring-strain rubric when no path is given.
func loadRubric(path string) (spec.Rubric, error) {
	if path != "" {
		return rubric.Load(path)
	}
	r := groundtruth.DefaultRubric()
	rubric.Normalize(&r)
	if err := rubric.Validate(&r); err != nil {
		return spec.Rubric{}, err
	}
	return r, nil
}

// executeGrade runs the grading pipeline: ground truth assembly, report
// extraction, and rubric evaluation.
func executeGrade(gradingRubric spec.Rubric, root, reportPath string, controller *live.Controller) (report.Results, error) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	controller.OnRunStart(runID, root)

	controller.OnPhase("extract")
	truth, err := groundtruth.Build(root)
	if err != nil {
		return report.Results{}, err
	}
	rows := make([]report.StructureRow, 0, len(truth.Structures))
	for _, s := range truth.Structures {
		status := live.StatusIncomplete
		if s.Facts.OutputPresent {
			status = live.StatusExtracted
		}
		controller.OnStructure(string(s.Identity.Key), s.Folder.Name, status)
		rows = append(rows, report.StructureRow{
			Key:    string(s.Identity.Key),
			Folder: s.Folder.Name,
		})
	}

	predicted := map[string]scoring.Value{}
	if reportPath != "" {
		markdown, err := os.ReadFile(reportPath)
		if err != nil {
			return report.Results{}, fmt.Errorf("read report: %w", err)
		}
		predicted = groundtruth.PredictionValues(extract.ParseReport(string(markdown)))
	}

	controller.OnPhase("score")
	scores := scoring.Evaluate(gradingRubric, truth.Values, predicted)

	return report.Results{
		RunID:      runID,
		Rubric:     gradingRubric.Name,
		Root:       root,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		Structures: rows,
		Scores:     scores,
	}, nil
}

// recordRun persists the run into a DuckDB results database.
func recordRun(dbPath string, results report.Results) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		return err
	}
	_, err = db.SaveRun(ctx, results)
	return err
}
