package ladder

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wordladder/internal/dictionary"
	"github.com/samdwyer/wordladder/internal/words"
)

// HelpToken is the input that asks for suggestions instead of making a move.
const HelpToken = "?"

// ErrGameOver is returned when a move is submitted after the session ended.
var ErrGameOver = errors.New("ladder: game is over")

// Rules are the fixed parameters of one ladder.
type Rules struct {
	From      string // Starting word
	To        string // Target word
	StepLimit int    // Maximum number of accepted moves
}

// Result describes what happened to one submitted input.
type Result struct {
	Help        bool      // Input was the help token; Suggestions is set
	Suggestions []string  // Suggested next words, empty when there are none
	Accepted    bool      // Word was appended to the history
	Word        string    // Normalized input
	Rejection   Rejection // Why the word was refused, if it was
	Outcome     Outcome   // Outcome after processing the input
}

// Engine tracks one ladder session. It is not safe for concurrent use.
type Engine struct {
	rules   Rules
	dict    *dictionary.Dictionary
	history []string
	outcome Outcome
}

// New creates an engine for rules over dict. The words in rules are upper-cased.
func New(rules Rules, dict *dictionary.Dictionary) (*Engine, error) {
	if dict == nil {
		return nil, errors.New("ladder: nil dictionary")
	}
	rules.From = words.Normalize(rules.From)
	rules.To = words.Normalize(rules.To)

	length := dict.WordLength()
	if len(rules.From) != length || len(rules.To) != length {
		return nil, fmt.Errorf("ladder: words %q and %q must be %d letters long", rules.From, rules.To, length)
	}
	if rules.From == rules.To {
		return nil, fmt.Errorf("ladder: start and target are both %q", rules.From)
	}
	if rules.StepLimit < 1 {
		return nil, fmt.Errorf("ladder: step limit %d must be positive", rules.StepLimit)
	}

	return &Engine{
		rules:   rules,
		dict:    dict,
		history: []string{rules.From},
		outcome: InProgress,
	}, nil
}

// Submit processes one line of player input.
//
// The help token returns suggestions without using a turn. Any other input
// is checked in order for length, letters, a one-letter change from the
// current word, repeats and dictionary membership. A refused word leaves the
// engine unchanged; the caller re-prompts.
func (e *Engine) Submit(input string) (Result, error) {
	if e.outcome.Terminal() {
		return Result{Outcome: e.outcome}, ErrGameOver
	}

	if input == HelpToken {
		return Result{
			Help:        true,
			Suggestions: e.Suggest(),
			Outcome:     e.outcome,
		}, nil
	}

	word := words.Normalize(input)
	if r := e.check(word); r != NotRejected {
		return Result{Word: word, Rejection: r, Outcome: e.outcome}, nil
	}

	e.history = append(e.history, word)
	e.outcome = e.adjudicate(word)

	return Result{Accepted: true, Word: word, Outcome: e.outcome}, nil
}

// check validates an upper-case candidate word against the ladder rules.
func (e *Engine) check(word string) Rejection {
	if len(word) != e.WordLength() {
		return WrongLength
	}
	if !words.IsLetters(word) {
		return NonLetter
	}
	if Distance(e.Current(), word) != 1 {
		return NotOneLetter
	}
	if e.used(word) {
		return Repeated
	}
	if !e.dict.Contains(word) {
		return NotInDictionary
	}
	return NotRejected
}

// adjudicate decides the outcome after word was appended.
// History holds the start word plus every move, so the limit is exhausted
// once len(history) exceeds it.
func (e *Engine) adjudicate(word string) Outcome {
	switch {
	case Distance(word, e.rules.To) == 0:
		return Won
	case len(e.history) > e.rules.StepLimit:
		return StepLimitExceeded
	default:
		return InProgress
	}
}

// GiveUp ends the session. It has no effect once the session is over.
func (e *Engine) GiveUp() {
	if !e.outcome.Terminal() {
		e.outcome = GaveUp
	}
}

// Suggest lists dictionary words one letter away from the current word that
// are not yet in the ladder. The target comes first when it is one move away;
// the rest follow dictionary order.
func (e *Engine) Suggest() []string {
	current := e.Current()
	suggestions := []string{}

	if Distance(current, e.rules.To) == 1 {
		suggestions = append(suggestions, e.rules.To)
	}
	for _, w := range e.dict.Words() {
		if w == e.rules.To || Distance(current, w) != 1 || e.used(w) {
			continue
		}
		suggestions = append(suggestions, w)
	}
	return suggestions
}

// used reports whether word is already in the history.
func (e *Engine) used(word string) bool {
	for _, h := range e.history {
		if h == word {
			return true
		}
	}
	return false
}

// Current returns the most recently accepted word.
func (e *Engine) Current() string {
	return e.history[len(e.history)-1]
}

// History returns a copy of the accepted words, starting with the start word.
func (e *Engine) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// Moves returns the number of accepted moves, not counting the start word.
func (e *Engine) Moves() int {
	return len(e.history) - 1
}

// Step returns the number of the next move. Rejected input does not advance it.
func (e *Engine) Step() int {
	return len(e.history)
}

// Outcome returns the current outcome.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Start returns the starting word.
func (e *Engine) Start() string { return e.rules.From }

// Target returns the word the player has to reach.
func (e *Engine) Target() string { return e.rules.To }

// StepLimit returns the maximum number of moves.
func (e *Engine) StepLimit() int { return e.rules.StepLimit }

// WordLength returns the length of every word in the ladder.
func (e *Engine) WordLength() int { return e.dict.WordLength() }
