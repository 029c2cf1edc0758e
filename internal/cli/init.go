package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"examen/internal/config"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Project directory (default: current directory)")
		yes := flags.Bool("yes", false, "Accept all defaults without prompting")
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

		root := strings.TrimSpace(*dir)
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		root = abs

		configPath := config.ConfigPath(root)
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", configPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		bankFile := config.DefaultBankFile
		if !*yes {
			in := initInput
			if in == nil {
				in = os.Stdin
			}
			reader := bufio.NewReader(in)

			confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize examen config in %s?", config.ConfigDir(root)), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}

			bankFile, err = promptString(reader, stdout, "Question bank file", config.DefaultBankFile)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
		}

		bankPath := resolveUnderRoot(root, bankFile)
		bankWritten, err := config.Scaffold(configPath, bankPath, bankFile)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", configPath)
		if bankWritten {
			fmt.Fprintf(stdout, "Wrote %s\n", bankPath)
		}
		return ExitOK
	}
}
