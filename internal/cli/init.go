package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chemgrade/internal/groundtruth"
)

const defaultRubricFile = "rubric.yml"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		outPath := flags.String("out", defaultRubricFile, "Where to write the scaffolded rubric")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if _, err := os.Stat(*outPath); err == nil {
			fmt.Fprintf(stderr, "%s already exists; refusing to overwrite\n", *outPath)
			return ExitError
		}

		data, err := groundtruth.DefaultRubricYAML()
		if err != nil {
			fmt.Fprintf(stderr, "scaffold rubric: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			fmt.Fprintf(stderr, "write %s: %v\n", *outPath, err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}
