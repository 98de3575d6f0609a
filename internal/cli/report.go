package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chemgrade/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		htmlPath := flags.String("html", "", "Write the report to this file instead of stdout")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "a results.json path is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		results, err := report.LoadResults(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "load results: %v\n", err)
			return ExitError
		}
		html, err := report.RenderHTML(results)
		if err != nil {
			fmt.Fprintf(stderr, "render report: %v\n", err)
			return ExitError
		}

		if *htmlPath == "" {
			fmt.Fprint(stdout, html)
			return ExitOK
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "write %s: %v\n", *htmlPath, err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *htmlPath)
		return ExitOK
	}
}
