// Package game runs an interactive ladder session over a line-oriented
// terminal: it prompts, feeds each line to the engine and prints the result.
package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordladder/internal/ladder"
	"github.com/samdwyer/wordladder/internal/telemetry"
)

// Process exit statuses for finished sessions.
const (
	ExitWon               = 0
	ExitGaveUp            = 1
	ExitStepLimitExceeded = 18
)

// ExitCode maps a session outcome to the process exit status.
func ExitCode(o ladder.Outcome) int {
	switch o {
	case ladder.Won:
		return ExitWon
	case ladder.StepLimitExceeded:
		return ExitStepLimitExceeded
	default:
		return ExitGaveUp
	}
}

// Session drives one ladder from the welcome banner to the final message.
type Session struct {
	engine *ladder.Engine
	in     io.Reader
	out    io.Writer
	log    zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession creates a session reading player input from in and writing the
// transcript to out.
func NewSession(engine *ladder.Engine, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine: engine,
		in:     in,
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays the session until the engine reaches a terminal outcome. End of
// input and cancellation of ctx both count as giving up. The returned error
// is only set when the transcript could not be written.
func (s *Session) Run(ctx context.Context) (ladder.Outcome, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "ladder.session")
	defer span.End()

	// Stops the line reader once the session is over.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e := s.engine
	span.SetAttributes(
		attribute.String("ladder.from", e.Start()),
		attribute.String("ladder.to", e.Target()),
		attribute.Int("ladder.step_limit", e.StepLimit()),
	)

	p := &printer{w: s.out}
	p.printf("Welcome to WordLadder!\n")
	p.printf("Your goal is to turn '%s' into '%s' in at most %d steps\n", e.Start(), e.Target(), e.StepLimit())

	lines := s.readLines(ctx)
	for !e.Outcome().Terminal() && p.err == nil {
		p.printf("Enter word %d (or ? for help):\n", e.Step())
		if p.err != nil {
			break
		}

		select {
		case <-ctx.Done():
			s.log.Debug().Err(ctx.Err()).Msg("session cancelled")
			e.GiveUp()
		case line, ok := <-lines:
			if !ok {
				s.log.Debug().Msg("end of input")
				e.GiveUp()
				continue
			}
			s.turn(span, p, line)
		}
	}

	if p.err != nil {
		e.GiveUp()
		span.RecordError(p.err)
		return e.Outcome(), fmt.Errorf("write transcript: %w", p.err)
	}

	switch e.Outcome() {
	case ladder.Won:
		p.printf("You solved the ladder in %d steps.\n", e.Moves())
	case ladder.StepLimitExceeded:
		p.printf("Game over - no more attempts remaining.\n")
	default:
		p.printf("Game over - you gave up.\n")
	}

	span.SetAttributes(
		attribute.String("ladder.outcome", e.Outcome().String()),
		attribute.Int("ladder.moves", e.Moves()),
	)
	s.log.Debug().Str("outcome", e.Outcome().String()).Int("moves", e.Moves()).Msg("session finished")

	if p.err != nil {
		return e.Outcome(), fmt.Errorf("write transcript: %w", p.err)
	}
	return e.Outcome(), nil
}

// turn submits one input line and prints the engine's answer.
func (s *Session) turn(span trace.Span, p *printer, line string) {
	res, err := s.engine.Submit(line)
	if err != nil {
		// Run stops before a terminal outcome can be resubmitted.
		s.log.Error().Err(err).Msg("submit")
		return
	}

	switch {
	case res.Help:
		span.AddEvent("help", trace.WithAttributes(attribute.Int("suggestions", len(res.Suggestions))))
		printSuggestions(p, res.Suggestions)
	case res.Accepted:
		span.AddEvent("move.accepted", trace.WithAttributes(
			attribute.String("word", res.Word),
			attribute.Int("move", s.engine.Moves()),
		))
		s.log.Debug().Str("word", res.Word).Int("move", s.engine.Moves()).Msg("move accepted")
	default:
		span.AddEvent("move.rejected", trace.WithAttributes(
			attribute.String("word", res.Word),
			attribute.String("reason", res.Rejection.String()),
		))
		s.log.Debug().Str("word", res.Word).Stringer("reason", res.Rejection).Msg("move rejected")
		p.printf("%s\n", res.Rejection.Message(s.engine.WordLength()))
	}
}

func printSuggestions(p *printer, suggestions []string) {
	if len(suggestions) == 0 {
		p.printf("No suggestions found.\n")
		return
	}
	p.printf("Suggestions:-----------\n")
	for _, w := range suggestions {
		p.printf(" %s\n", w)
	}
	p.printf("-----End of Suggestions\n")
}

// readLines reads s.in in its own goroutine, one line of any length at a
// time with "\n" and a trailing "\r" removed. The channel is closed at end of
// input, on a read error, or once ctx is done. A goroutine blocked in a read
// when ctx ends lingers until the read returns.
func (s *Session) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		br := bufio.NewReader(s.in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				s.log.Error().Err(err).Msg("read input")
				return
			}
		}
	}()
	return lines
}

// printer remembers the first write error and skips later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
