package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"examen/internal/report"
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
		configPath := flags.String("config", "", "Path to config file (default: search for .examen/config.yml)")
		runID := flags.String("run", "", "Run id (default: latest run)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, root, err := loadPlayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		outputDir := resolveUnderRoot(root, cfg.Output.Dir)

		runDir := strings.TrimSpace(*runID)
		if runDir == "" {
			runDir, err = latestRun(outputDir)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to find a run: %v\n", err)
				return ExitError
			}
		}

		paths := report.Paths{Dir: filepath.Join(outputDir, runDir)}
		result, err := report.Load(paths.ResultsPath())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load run: %v\n", err)
			return ExitError
		}
		html, err := report.RenderHTML(result)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(paths.ReportPath(), []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", paths.ReportPath())
		return ExitOK
	}
}

// latestRun picks the newest run directory. Run ids start with a UTC
// timestamp, so lexical order is chronological.
func latestRun(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("read output dir: %w", err)
	}
	runs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			runs = append(runs, entry.Name())
		}
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no runs under %s", outputDir)
	}
	sort.Strings(runs)
	return runs[len(runs)-1], nil
}
