// Package dictionary loads the candidate word set for a ladder.
package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordladder/internal/telemetry"
	"github.com/samdwyer/wordladder/internal/words"
)

// Dictionary is an immutable, ordered set of upper-case words of one length.
type Dictionary struct {
	length int
	words  []string
	index  map[string]struct{}
}

// New builds a dictionary from already filtered words. Words that do not
// match length or contain non-letters are dropped, the rest are upper-cased.
func New(length int, list []string) *Dictionary {
	d := &Dictionary{
		length: length,
		words:  make([]string, 0, len(list)),
		index:  make(map[string]struct{}, len(list)),
	}
	for _, w := range list {
		d.add(w)
	}
	return d
}

// Load reads one word per line from r and keeps the lines that are exactly
// length letters long. Malformed lines of any size are skipped without error.
func Load(r io.Reader, length int) (*Dictionary, error) {
	d := New(length, nil)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			d.add(strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read dictionary: %w", err)
		}
	}
}

// LoadFile opens path and loads it with Load, recording a trace span.
func LoadFile(ctx context.Context, path string, length int) (*Dictionary, error) {
	tracer := telemetry.Tracer("dictionary")
	_, span := tracer.Start(ctx, "dictionary.load")
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f, length)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("dictionary.path", path),
		attribute.Int("dictionary.word_length", length),
		attribute.Int("dictionary.words", d.Len()),
	)
	return d, nil
}

// add keeps line, without its "\n", if it is a word of the right length.
func (d *Dictionary) add(line string) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) != d.length || !words.IsLetters(line) {
		return
	}
	w := words.Normalize(line)
	if _, dup := d.index[w]; dup {
		return
	}
	d.index[w] = struct{}{}
	d.words = append(d.words, w)
}

// Contains reports whether w (upper case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}

// Words returns the words in load order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLength returns the length every word in the dictionary has.
func (d *Dictionary) WordLength() int {
	return d.length
}
