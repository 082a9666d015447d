// Package config resolves command-line options into a ladder configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordladder/internal/telemetry"
	"github.com/samdwyer/wordladder/internal/words"
)

const (
	DefaultLength = 4
	MinLength     = 2
	MaxLength     = 9
	DefaultLimit  = 20
	MaxLimit      = 60

	// DefaultDictionary is used when neither --dictfile nor the environment names one.
	DefaultDictionary = "/usr/share/dict/words"

	// maxDraws bounds how often the supplier is asked again for a random
	// word that collides with the other end of the ladder.
	maxDraws = 16
)

// Config is the resolved, immutable game configuration.
type Config struct {
	WordLength     int
	StepLimit      int
	From           string // Upper case
	To             string // Upper case
	DictionaryPath string
}

// Defaults are values used for options that were not supplied.
type Defaults struct {
	DictionaryPath string
}

// Resolve validates args (without the program name) and builds a Config.
//
// Checks run in a fixed order and stop at the first failure, which is
// returned as *Error. Words that were not supplied are drawn from supplier
// once everything else is valid.
func Resolve(ctx context.Context, args []string, defaults Defaults, supplier words.Supplier) (Config, error) {
	tracer := telemetry.Tracer("config")
	_, span := tracer.Start(ctx, "config.resolve")
	defer span.End()

	cfg, err := resolve(args, defaults, supplier)
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) {
			span.SetAttributes(attribute.String("config.error", cfgErr.Kind.String()))
		}
		span.RecordError(err)
		return Config{}, err
	}

	span.SetAttributes(
		attribute.Int("config.word_length", cfg.WordLength),
		attribute.Int("config.step_limit", cfg.StepLimit),
		attribute.String("config.dictionary", cfg.DictionaryPath),
	)
	return cfg, nil
}

func resolve(args []string, defaults Defaults, supplier words.Supplier) (Config, error) {
	f, err := parseFlags(args)
	if err != nil {
		return Config{}, err
	}

	length := resolveLength(f)
	for _, w := range f.supplied() {
		if len(w) != length {
			return Config{}, newError(KindWordLengthMismatch)
		}
	}
	if length < MinLength || length > MaxLength {
		return Config{}, newError(KindLengthRange)
	}

	for _, w := range f.supplied() {
		if !words.IsLetters(w) {
			return Config{}, newError(KindNonLetter)
		}
	}
	if f.hasFrom && f.hasTo && words.Normalize(f.from) == words.Normalize(f.to) {
		return Config{}, newError(KindIdenticalWords)
	}

	limit := DefaultLimit
	if f.limit != 0 {
		limit = f.limit
	}
	if limit < length || limit > MaxLimit {
		return Config{}, newError(KindLimitRange)
	}

	path := resolveDictionary(f, defaults)
	if err := checkReadable(path); err != nil {
		return Config{}, &Error{Kind: KindDictionaryPath, Path: path}
	}

	from, to, err := fillWords(f, length, supplier)
	if err != nil {
		return Config{}, err
	}

	return Config{
		WordLength:     length,
		StepLimit:      limit,
		From:           from,
		To:             to,
		DictionaryPath: path,
	}, nil
}

// supplied returns the words given on the command line.
func (f flags) supplied() []string {
	var out []string
	if f.hasFrom {
		out = append(out, f.from)
	}
	if f.hasTo {
		out = append(out, f.to)
	}
	return out
}

// resolveLength prefers --length, then the length of a supplied word.
// Disagreeing words are caught by the consistency check that follows.
func resolveLength(f flags) int {
	switch {
	case f.length != 0:
		return f.length
	case f.hasFrom:
		return len(f.from)
	case f.hasTo:
		return len(f.to)
	default:
		return DefaultLength
	}
}

// resolveDictionary prefers --dictfile even when it is empty, so an empty
// path fails the readability check instead of selecting a default.
func resolveDictionary(f flags, defaults Defaults) string {
	if f.hasDictFile {
		return f.dictFile
	}
	if defaults.DictionaryPath != "" {
		return defaults.DictionaryPath
	}
	return DefaultDictionary
}

func checkReadable(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	return file.Close()
}

// fillWords upper-cases the supplied words and draws the missing ones.
func fillWords(f flags, length int, supplier words.Supplier) (from, to string, err error) {
	from, to = words.Normalize(f.from), words.Normalize(f.to)
	if f.hasFrom && f.hasTo {
		return from, to, nil
	}
	if supplier == nil {
		return "", "", errors.New("config: no word supplier for missing words")
	}

	if !f.hasFrom {
		if from, err = draw(supplier, length, to); err != nil {
			return "", "", err
		}
	}
	if !f.hasTo {
		if to, err = draw(supplier, length, from); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}

// draw asks supplier for a word of length different from avoid.
func draw(supplier words.Supplier, length int, avoid string) (string, error) {
	for i := 0; i < maxDraws; i++ {
		w, err := supplier.Word(length)
		if err != nil {
			return "", fmt.Errorf("draw %d-letter word: %w", length, err)
		}
		w = words.Normalize(w)
		if w != avoid {
			return w, nil
		}
	}
	return "", fmt.Errorf("draw %d-letter word: no word different from %q", length, avoid)
}
