package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"examen/internal/config"
	"examen/internal/question"
	"examen/internal/report"
	"examen/internal/session"
	"examen/internal/ui/plain"
	"examen/internal/ui/quiz"
)

// playInput allows tests to override stdin for plain-mode sessions.
var playInput io.Reader

// runLiveUI allows tests to stub out the interactive program.
var runLiveUI = quiz.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .examen/config.yml)")
		questionsPath := flags.String("questions", "", "Question bank path (overrides config)")
		shuffle := flags.Bool("shuffle", false, "Shuffle question order")
		limit := flags.Int("limit", 0, "Limit the number of questions (0 = all)")
		seed := flags.Int64("seed", 0, "Shuffle seed for reproducible runs")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		noSave := flags.Bool("no-save", false, "Skip writing result artifacts")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		cfg, root, err := loadPlayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		seedSet := false
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "questions":
				cfg.Quiz.Questions = *questionsPath
			case "shuffle":
				cfg.Quiz.Shuffle = *shuffle
			case "limit":
				cfg.Quiz.Limit = *limit
			case "ui":
				cfg.UI.Mode = *uiMode
			case "no-color":
				cfg.UI.NoColor = *noColor
			case "seed":
				seedSet = true
			}
		})

		bankPath := resolveUnderRoot(root, cfg.Quiz.Questions)
		questions, err := question.Load(bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		opts := session.Options{Shuffle: cfg.Quiz.Shuffle, Limit: cfg.Quiz.Limit}
		if seedSet {
			opts.Rand = rand.New(rand.NewSource(*seed))
		}
		engine := session.New()
		if err := engine.Start(questions, opts); err != nil {
			if errors.Is(err, session.ErrEmptyRun) {
				fmt.Fprintf(stderr, "Nothing to play: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "Failed to start session: %v\n", err)
			}
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI.Mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		immediate := cfg.Quiz.Feedback == config.FeedbackImmediate
		var result session.Result
		if decision.useLive {
			result, err = runLiveUI(engine, quiz.Options{Immediate: immediate, NoColor: cfg.UI.NoColor})
			if err == nil {
				fmt.Fprintf(stdout, "Score: %d/%d (%.1f%%) in %.1fs\n",
					result.Score, result.Total, result.Percentage(), result.ElapsedSeconds)
			}
		} else {
			in := playInput
			if in == nil {
				in = os.Stdin
			}
			runner := &plain.Runner{In: in, Out: stdout, Feedback: immediate}
			result, err = runner.Run(engine)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", err)
			return ExitError
		}

		if cfg.SaveResults() && !*noSave {
			finished := time.Now()
			built := report.Build(report.NewRunID(finished), bankPath, engine.Run(), result, finished)
			paths, err := report.Write(resolveUnderRoot(root, cfg.Output.Dir), built)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to save results: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
			fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		}
		return ExitOK
	}
}

// loadPlayConfig loads the config file when one exists and falls back to the
// built-in defaults rooted at the working directory otherwise. An explicit
// --config path must exist.
func loadPlayConfig(configPath string) (config.Config, string, error) {
	if configPath == "" {
		found, err := config.FindConfigPath("")
		if err != nil {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return config.Config{}, "", wdErr
			}
			return config.Default(), wd, nil
		}
		cfg, err := config.Load(found)
		if err != nil {
			return config.Config{}, "", err
		}
		return cfg, config.RootFromConfigPath(found), nil
	}

	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, config.RootFromConfigPath(resolved), nil
}
