package config

import "fmt"

// Kind identifies a configuration failure. Each kind has its own message
// and process exit code.
type Kind int

const (
	KindUsage              Kind = iota + 1 // Malformed, unknown or repeated options
	KindNonLetter                          // A supplied word has non-letters
	KindLengthRange                        // Word length outside 2..9
	KindWordLengthMismatch                 // A supplied word disagrees with the length
	KindIdenticalWords                     // Start and target are the same word
	KindLimitRange                         // Step limit outside length..60
	KindDictionaryPath                     // Dictionary cannot be opened
)

// UsageText is printed for malformed command lines.
const UsageText = "Usage: wordladder [--from fromWord] [--to endWord] " +
	"[--limit stepLimit] [--length len] [--dictfile filename]"

var kindInfo = map[Kind]struct {
	name    string
	code    int
	message string
}{
	KindUsage:              {"usage", 7, UsageText},
	KindNonLetter:          {"non_letter", 4, "wordladder: Words must not contain non-letters"},
	KindLengthRange:        {"length_range", 15, fmt.Sprintf("wordladder: Word lengths must be from %d to %d (inclusive)", MinLength, MaxLength)},
	KindWordLengthMismatch: {"word_length_mismatch", 6, "wordladder: Word lengths should be consistent"},
	KindIdenticalWords:     {"identical_words", 10, "wordladder: Words must be different"},
	KindLimitRange:         {"limit_range", 5, fmt.Sprintf("wordladder: Limit on steps must be word length to %d (inclusive)", MaxLimit)},
	KindDictionaryPath:     {"dictionary_path", 11, "wordladder: File named \"%s\" cannot be opened"},
}

// String returns the kind's short name.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "unknown"
}

// ExitCode returns the process exit status for the kind.
func (k Kind) ExitCode() int {
	return kindInfo[k].code
}

// Error is a fatal configuration error. It satisfies the ExitCoder
// interface of github.com/urfave/cli/v3.
type Error struct {
	Kind Kind
	Path string // Dictionary path, set for KindDictionaryPath
}

func newError(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Error returns the message printed to stderr.
func (e *Error) Error() string {
	msg := kindInfo[e.Kind].message
	if e.Kind == KindDictionaryPath {
		return fmt.Sprintf(msg, e.Path)
	}
	return msg
}

// ExitCode returns the process exit status.
func (e *Error) ExitCode() int {
	return e.Kind.ExitCode()
}
