package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chemgrade/internal/groundtruth"
	"chemgrade/internal/ladder"
)

// runLadder builds the handler for the ladder command.
func runLadder(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		root := flags.String("root", "", "Benchmark directory to scan")
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

		truth, err := groundtruth.Build(*root)
		if err != nil {
			fmt.Fprintf(stderr, "build ladder: %v\n", err)
			return ExitError
		}

		fmt.Fprint(stdout, renderLadder(truth.Series, !isTerminal(stdout)))
		return ExitOK
	}
}

// renderLadder formats the strain series as an aligned text table.
func renderLadder(series ladder.Series, noColor bool) string {
	header := fmt.Sprintf("%-6s %12s %12s", "Ring", "dH kcal/mol", "dG kcal/mol")
	lines := []string{styleText(header, noColor, lipgloss.Color("33"), true)}
	cfg := ladder.DefaultConfig
	for n := cfg.MinRing; n <= cfg.MaxRing; n++ {
		point := series[n]
		lines = append(lines, fmt.Sprintf("%-6d %12s %12s",
			n, formatStrain(point.H), formatStrain(point.G)))
	}
	return strings.Join(lines, "\n") + "\n"
}

// formatStrain renders one strain value, keeping undefined values visibly
// distinct from zero.
func formatStrain(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *v)
}

// styleText applies optional lipgloss styling.
func styleText(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	style := lipgloss.NewStyle().Foreground(color)
	if bold {
		style = style.Bold(true)
	}
	return style.Render(text)
}
