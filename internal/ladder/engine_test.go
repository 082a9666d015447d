package ladder

import (
	"errors"
	"reflect"
	"testing"

	"github.com/samdwyer/wordladder/internal/dictionary"
)

var testWords = []string{
	"BOLD", "CORD", "WARM", "COLT", "GOLD", "COLD", "BOLT", "MOLT", "MALT",
	"WORD", "WARD", "CARD", "WORM",
}

func newTestEngine(t *testing.T, from, to string, limit int) *Engine {
	t.Helper()
	e, err := New(Rules{From: from, To: to, StepLimit: limit}, dictionary.New(4, testWords))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func submit(t *testing.T, e *Engine, input string) Result {
	t.Helper()
	res, err := e.Submit(input)
	if err != nil {
		t.Fatalf("Submit(%q): %v", input, err)
	}
	return res
}

func TestNewNormalizesWords(t *testing.T) {
	e := newTestEngine(t, "cold", "Warm", 20)
	if e.Start() != "COLD" || e.Target() != "WARM" {
		t.Errorf("Expected COLD -> WARM, got %s -> %s", e.Start(), e.Target())
	}
	if got := e.History(); !reflect.DeepEqual(got, []string{"COLD"}) {
		t.Errorf("Expected history [COLD], got %v", got)
	}
	if e.Outcome() != InProgress {
		t.Errorf("Expected in_progress, got %s", e.Outcome())
	}
}

func TestNewRejectsInconsistentRules(t *testing.T) {
	dict := dictionary.New(4, testWords)
	tests := []struct {
		name  string
		rules Rules
	}{
		{"short from", Rules{From: "COL", To: "WARM", StepLimit: 20}},
		{"long to", Rules{From: "COLD", To: "WARMS", StepLimit: 20}},
		{"identical", Rules{From: "cold", To: "COLD", StepLimit: 20}},
		{"zero limit", Rules{From: "COLD", To: "WARM", StepLimit: 0}},
	}
	for _, tt := range tests {
		if _, err := New(tt.rules, dict); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
	if _, err := New(Rules{From: "COLD", To: "WARM", StepLimit: 4}, nil); err == nil {
		t.Error("Expected error for nil dictionary")
	}
}

func TestSubmitRejections(t *testing.T) {
	tests := []struct {
		input string
		want  Rejection
	}{
		{"", WrongLength},
		{"COL", WrongLength},
		{"COLDS", WrongLength},
		{"C0LD", NonLetter},
		{"CO D", NonLetter},
		{"COLD", NotOneLetter}, // same as the current word: distance 0
		{"WARM", NotOneLetter},
		{"BOLT", NotOneLetter},
		{"COLX", NotInDictionary},
		{"HOLD", NotInDictionary},
	}

	for _, tt := range tests {
		e := newTestEngine(t, "COLD", "WARM", 20)
		res := submit(t, e, tt.input)
		if res.Accepted {
			t.Errorf("Submit(%q) should be rejected", tt.input)
		}
		if res.Rejection != tt.want {
			t.Errorf("Submit(%q): expected %s, got %s", tt.input, tt.want, res.Rejection)
		}
		if e.Moves() != 0 || e.Outcome() != InProgress {
			t.Errorf("Submit(%q) changed state: moves=%d outcome=%s", tt.input, e.Moves(), e.Outcome())
		}
	}
}

func TestSubmitRejectsEarlierWord(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)
	submit(t, e, "BOLD")

	res := submit(t, e, "cold")
	if res.Rejection != Repeated {
		t.Fatalf("Expected repeated, got %s", res.Rejection)
	}
	if got := e.History(); !reflect.DeepEqual(got, []string{"COLD", "BOLD"}) {
		t.Errorf("History changed after rejection: %v", got)
	}
}

func TestSubmitAcceptsLowerCase(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)

	res := submit(t, e, "bold")
	if !res.Accepted {
		t.Fatalf("Expected BOLD to be accepted, got %s", res.Rejection)
	}
	if res.Word != "BOLD" {
		t.Errorf("Expected normalized word BOLD, got %q", res.Word)
	}
	if e.Current() != "BOLD" || e.Moves() != 1 {
		t.Errorf("Expected current BOLD after 1 move, got %s after %d", e.Current(), e.Moves())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)
	h := e.History()
	h[0] = "XXXX"
	if e.Current() != "COLD" {
		t.Errorf("Modifying History() result changed engine state: %s", e.Current())
	}
}

func TestWinningLadder(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)

	for i, w := range []string{"CORD", "WORD", "WARD"} {
		res := submit(t, e, w)
		if !res.Accepted || res.Outcome != InProgress {
			t.Fatalf("Move %d (%s): accepted=%v outcome=%s", i+1, w, res.Accepted, res.Outcome)
		}
	}

	res := submit(t, e, "WARM")
	if res.Outcome != Won {
		t.Fatalf("Expected won, got %s", res.Outcome)
	}
	if e.Moves() != 4 {
		t.Errorf("Expected 4 moves, got %d", e.Moves())
	}

	if _, err := e.Submit("WORM"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver after win, got %v", err)
	}
}

func TestStepLimitExceeded(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 4)

	for _, w := range []string{"BOLD", "BOLT", "COLT"} {
		if res := submit(t, e, w); res.Outcome != InProgress {
			t.Fatalf("Move %s: expected in_progress, got %s", w, res.Outcome)
		}
	}

	// The fourth move fills the history to five entries, past the limit.
	res := submit(t, e, "MOLT")
	if !res.Accepted {
		t.Fatalf("Expected MOLT accepted, got %s", res.Rejection)
	}
	if res.Outcome != StepLimitExceeded {
		t.Fatalf("Expected step_limit_exceeded, got %s", res.Outcome)
	}
	if len(e.History()) != 5 {
		t.Errorf("Expected 5 history entries, got %d", len(e.History()))
	}
	if _, err := e.Submit("MALT"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
}

func TestWinOnLastStep(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 4)
	for _, w := range []string{"CORD", "WORD", "WARD", "WARM"} {
		submit(t, e, w)
	}
	if e.Outcome() != Won {
		t.Errorf("Reaching the target on the last allowed move should win, got %s", e.Outcome())
	}
}

func TestStepDoesNotAdvanceOnRejection(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)
	if e.Step() != 1 {
		t.Fatalf("Expected step 1, got %d", e.Step())
	}

	submit(t, e, "ZZZZ")
	submit(t, e, HelpToken)
	if e.Step() != 1 {
		t.Errorf("Rejected and help input should not advance the step, got %d", e.Step())
	}

	submit(t, e, "BOLD")
	if e.Step() != 2 {
		t.Errorf("Expected step 2 after one move, got %d", e.Step())
	}
}

func TestGiveUp(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)
	e.GiveUp()
	if e.Outcome() != GaveUp {
		t.Fatalf("Expected gave_up, got %s", e.Outcome())
	}
	if _, err := e.Submit("BOLD"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}

	won := newTestEngine(t, "COLD", "CORD", 20)
	submit(t, won, "CORD")
	won.GiveUp()
	if won.Outcome() != Won {
		t.Errorf("GiveUp should not override a finished game, got %s", won.Outcome())
	}
}

func TestSuggest(t *testing.T) {
	e := newTestEngine(t, "COLD", "GOLD", 20)

	res := submit(t, e, HelpToken)
	if !res.Help {
		t.Fatal("Expected help result")
	}
	want := []string{"GOLD", "BOLD", "CORD", "COLT"}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Errorf("Expected %v, got %v", want, res.Suggestions)
	}

	submit(t, e, "BOLD")
	want = []string{"GOLD", "BOLT"}
	if got := e.Suggest(); !reflect.DeepEqual(got, want) {
		t.Errorf("After BOLD expected %v, got %v", want, got)
	}
}

func TestSuggestExcludesHistoryAndTarget(t *testing.T) {
	e := newTestEngine(t, "COLD", "WARM", 20)
	for _, w := range []string{"BOLD", "BOLT", "COLT"} {
		submit(t, e, w)
	}

	history := map[string]bool{}
	for _, h := range e.History() {
		history[h] = true
	}
	for _, s := range e.Suggest() {
		if history[s] {
			t.Errorf("Suggestion %s is already in the ladder", s)
		}
		if s == e.Target() && Distance(e.Current(), e.Target()) != 1 {
			t.Errorf("Target suggested while more than one move away")
		}
	}
}

func TestSuggestNone(t *testing.T) {
	e, err := New(Rules{From: "ABCD", To: "WXYZ", StepLimit: 20}, dictionary.New(4, testWords))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := e.Suggest()
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil suggestions, got %#v", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"COLD", "COLD", 0},
		{"COLD", "BOLD", 1},
		{"COLD", "WARM", 4},
		{"RACE", "RACK", 1},
		{"AB", "ABC", 1},
		{"", "", 0},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if Distance(tt.a, tt.b) != Distance(tt.b, tt.a) {
			t.Errorf("Distance(%q, %q) is not symmetric", tt.a, tt.b)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		InProgress:        "in_progress",
		Won:               "won",
		GaveUp:            "gave_up",
		StepLimitExceeded: "step_limit_exceeded",
		Outcome(42):       "unknown",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), o.String(), want)
		}
	}
	if InProgress.Terminal() || !Won.Terminal() {
		t.Error("Only in_progress should be non-terminal")
	}
}

func TestRejectionMessage(t *testing.T) {
	if got := WrongLength.Message(5); got != "Word should be 5 characters long - try again." {
		t.Errorf("Unexpected wrong length message: %q", got)
	}
	if NotRejected.Message(4) != "" {
		t.Error("NotRejected should have no message")
	}
}
