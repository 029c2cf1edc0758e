package session

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"examen/internal/question"
)

// Clock reports the current time. It exists so tests can control elapsed
// time; the zero value of Options uses the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures how a run is built from a question bank.
type Options struct {
	// Shuffle applies a uniform random permutation to the run.
	Shuffle bool
	// Limit truncates the run after shuffling; 0 means unbounded.
	Limit int
	// Rand overrides the shuffle source, for deterministic runs.
	Rand *rand.Rand
	// Clock overrides the time source, for tests.
	Clock Clock
}

// Engine owns the session state machine. All operations are atomic from the
// caller's perspective; a single mutex guards the whole session, which is
// enough because every operation is cheap and synchronous.
type Engine struct {
	mu     sync.Mutex
	clock  Clock
	status Status
	state  state
}

// New returns an engine with no session started.
func New() *Engine {
	return &Engine{clock: systemClock{}}
}

// Status returns the current lifecycle state.
func (engine *Engine) Status() Status {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.status
}

// Start builds a fresh run from the given questions, replacing any previous
// session. When the run comes out empty the engine stays NotStarted and
// ErrEmptyRun is returned.
func (engine *Engine) Start(questions []question.Question, opts Options) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	engine.clock = opts.Clock
	if engine.clock == nil {
		engine.clock = systemClock{}
	}

	engine.status = NotStarted
	engine.state = state{}

	run := make([]question.Question, len(questions))
	copy(run, questions)
	if opts.Shuffle {
		source := opts.Rand
		if source == nil {
			source = rand.New(rand.NewSource(engine.clock.Now().UnixNano()))
		}
		source.Shuffle(len(run), func(i, j int) {
			run[i], run[j] = run[j], run[i]
		})
	}
	if opts.Limit > 0 && opts.Limit < len(run) {
		run = run[:opts.Limit]
	}
	if len(run) == 0 {
		return ErrEmptyRun
	}

	engine.state = state{run: run, startedAt: engine.clock.Now()}
	engine.status = InProgress
	return nil
}

// Run returns a copy of the session's question order. It is empty before a
// session starts. Renderers use it to show the final review in run order.
func (engine *Engine) Run() []question.Question {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	run := make([]question.Question, len(engine.state.run))
	copy(run, engine.state.run)
	return run
}

// CurrentView returns the question at the current position along with its
// selection mode and, when revisiting, the previously chosen indices.
func (engine *Engine) CurrentView() (View, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != InProgress {
		return View{}, &StateError{Op: "current view", Status: engine.status}
	}
	if engine.state.position >= len(engine.state.run) {
		return View{}, &StateError{Op: "current view", Status: Completed}
	}

	current := engine.state.run[engine.state.position]
	view := View{
		Index:       engine.state.position,
		Total:       len(engine.state.run),
		Question:    current,
		MultiSelect: current.MultiSelect(),
	}
	if engine.state.position < len(engine.state.answers) {
		record := engine.state.answers[engine.state.position]
		view.Answered = true
		view.Chosen = append([]int(nil), record.Chosen...)
	}
	return view, nil
}

// Submit records or overwrites the answer at the current position and
// returns the stored record. A nil or empty selection is a skip and is never
// scored correct. Re-answering first reverses the prior record's score
// contribution so the score never double-counts. Submit does not advance.
func (engine *Engine) Submit(choices []int) (AnswerRecord, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != InProgress {
		return AnswerRecord{}, &StateError{Op: "submit", Status: engine.status}
	}
	if engine.state.position >= len(engine.state.run) {
		return AnswerRecord{}, &StateError{Op: "submit", Status: Completed}
	}

	current := engine.state.run[engine.state.position]
	chosen := normalizeChoices(choices)
	for _, index := range chosen {
		if index < 0 || index >= len(current.Options) {
			return AnswerRecord{}, &ChoiceError{Index: index, Options: len(current.Options)}
		}
	}

	record := AnswerRecord{
		Index:   engine.state.position,
		Chosen:  chosen,
		Correct: chosen != nil && setsEqual(chosen, current.CorrectIndices),
	}

	if engine.state.position < len(engine.state.answers) {
		if engine.state.answers[engine.state.position].Correct {
			engine.state.score--
		}
		engine.state.answers[engine.state.position] = record
	} else {
		engine.state.answers = append(engine.state.answers, record)
	}
	if record.Correct {
		engine.state.score++
	}
	return record, nil
}

// Advance moves to the next question. Reaching the end of the run completes
// the session. Whether an answer is required before advancing is renderer
// policy, not enforced here.
func (engine *Engine) Advance() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != InProgress {
		return &StateError{Op: "advance", Status: engine.status}
	}
	if engine.state.position < len(engine.state.run) {
		engine.state.position++
	}
	if engine.state.position == len(engine.state.run) {
		engine.status = Completed
	}
	return nil
}

// Retreat moves back one question. It is a no-op at the first question and
// never deletes answer records or changes the score.
func (engine *Engine) Retreat() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != InProgress {
		return &StateError{Op: "retreat", Status: engine.status}
	}
	if engine.state.position > 0 {
		engine.state.position--
	}
	return nil
}

// FinishNow completes the session regardless of how many questions were
// answered. Unanswered trailing questions keep no record but still count
// toward the total.
func (engine *Engine) FinishNow() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != InProgress {
		return &StateError{Op: "finish", Status: engine.status}
	}
	engine.state.position = len(engine.state.run)
	engine.status = Completed
	return nil
}

// Reset discards the current session from any state.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.status = NotStarted
	engine.state = state{}
}

// normalizeChoices returns a sorted copy with duplicates removed, or nil for
// an empty selection so skips have a single representation.
func normalizeChoices(choices []int) []int {
	if len(choices) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(choices))
	normalized := make([]int, 0, len(choices))
	for _, index := range choices {
		if _, ok := seen[index]; ok {
			continue
		}
		seen[index] = struct{}{}
		normalized = append(normalized, index)
	}
	sort.Ints(normalized)
	return normalized
}

// setsEqual compares a sorted selection against the normalized correct set.
func setsEqual(chosen []int, correct question.IndexSet) bool {
	if len(chosen) != len(correct) {
		return false
	}
	for i := range chosen {
		if chosen[i] != correct[i] {
			return false
		}
	}
	return true
}
