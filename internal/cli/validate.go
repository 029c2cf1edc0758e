package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"examen/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .examen/config.yml)")
		questionsPath := flags.String("questions", "", "Question bank path (overrides config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bankPath := strings.TrimSpace(*questionsPath)
		if bankPath == "" {
			cfg, root, err := loadPlayConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			bankPath = resolveUnderRoot(root, cfg.Quiz.Questions)
		}

		questions, err := question.Load(bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Bank OK (%d questions)\n", len(questions))
		return ExitOK
	}
}
