// Package plain drives a quiz session over line-oriented input and output.
// It exercises the same engine contract as the live UI, which keeps it
// scriptable for pipes and acceptance tests.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"examen/internal/question"
	"examen/internal/session"
)

// Runner reads commands from In and renders to Out.
type Runner struct {
	In  io.Reader
	Out io.Writer
	// Feedback prints correctness after every submission instead of only in
	// the final review.
	Feedback bool
}

// Run drives a started engine until the session completes and returns the
// result. Input running out finishes the session early.
func (runner *Runner) Run(engine *session.Engine) (session.Result, error) {
	scanner := bufio.NewScanner(runner.In)
	for engine.Status() == session.InProgress {
		view, err := engine.CurrentView()
		if err != nil {
			return session.Result{}, err
		}
		runner.printView(view)

		fmt.Fprint(runner.Out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return session.Result{}, fmt.Errorf("read command: %w", err)
			}
			fmt.Fprintln(runner.Out)
			if err := engine.FinishNow(); err != nil {
				return session.Result{}, err
			}
			break
		}

		if err := runner.handle(engine, view, scanner.Text()); err != nil {
			return session.Result{}, err
		}
	}

	result, err := engine.Result()
	if err != nil {
		return session.Result{}, err
	}
	runner.printSummary(engine.Run(), result)
	return result, nil
}

// handle applies one command line to the engine.
func (runner *Runner) handle(engine *session.Engine, view session.View, line string) error {
	command, err := parseCommand(line)
	if err != nil {
		fmt.Fprintf(runner.Out, "%v\n", err)
		return nil
	}
	switch command.kind {
	case commandPrev:
		return engine.Retreat()
	case commandFinish:
		return engine.FinishNow()
	case commandSkip:
		if _, err := engine.Submit(nil); err != nil {
			return err
		}
		if runner.Feedback {
			fmt.Fprintln(runner.Out, "Skipped.")
		}
		return engine.Advance()
	case commandAnswer:
		record, err := engine.Submit(command.choices)
		if err != nil {
			var choiceErr *session.ChoiceError
			if errors.As(err, &choiceErr) {
				fmt.Fprintf(runner.Out, "Invalid selection: %v\n", err)
				return nil
			}
			return err
		}
		if runner.Feedback {
			runner.printFeedback(view, record)
		}
		return engine.Advance()
	default:
		return nil
	}
}

// printView renders the current question, marking any prior selection.
func (runner *Runner) printView(view session.View) {
	fmt.Fprintf(runner.Out, "\nQuestion %d of %d\n", view.Index+1, view.Total)
	fmt.Fprintln(runner.Out, view.Question.Prompt)
	if view.Question.Code != "" {
		fmt.Fprintln(runner.Out, indentCode(view.Question.Code))
	}
	if view.MultiSelect {
		fmt.Fprintf(runner.Out, "(select %d options)\n", len(view.Question.CorrectIndices))
	}
	for index, option := range view.Question.Options {
		marker := " "
		if containsIndex(view.Chosen, index) {
			marker = "*"
		}
		fmt.Fprintf(runner.Out, " %s %d) %s\n", marker, index+1, option)
	}
	fmt.Fprintln(runner.Out, "Answer with option numbers (e.g. 1 or 1,3), s = skip, p = previous, f = finish")
}

// printFeedback reports correctness right after a submission.
func (runner *Runner) printFeedback(view session.View, record session.AnswerRecord) {
	if record.Correct {
		fmt.Fprintln(runner.Out, "Correct!")
	} else {
		fmt.Fprintf(runner.Out, "Incorrect. Correct answer: %s\n", formatAnswerText(view.Question.Options, view.Question.CorrectIndices))
	}
	if view.Question.Explanation != "" {
		fmt.Fprintf(runner.Out, "Explanation: %s\n", view.Question.Explanation)
	}
}

// printSummary renders the final score and the per-question review.
func (runner *Runner) printSummary(run []question.Question, result session.Result) {
	fmt.Fprintf(runner.Out, "\nScore: %d/%d (%.1f%%) in %.1fs\n", result.Score, result.Total, result.Percentage(), result.ElapsedSeconds)
	for _, line := range reviewLines(run, result) {
		fmt.Fprintln(runner.Out, line)
	}
}
