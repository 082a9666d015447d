package ladder

import "fmt"

// Rejection is the reason a submitted word was not accepted.
// The zero value means the word was not rejected.
type Rejection int

const (
	NotRejected Rejection = iota
	// WrongLength - the word does not have the ladder's word length.
	WrongLength
	// NonLetter - the word contains something other than a letter.
	NonLetter
	// NotOneLetter - the word is not exactly one letter away from the current word.
	NotOneLetter
	// Repeated - the word is already part of the ladder.
	Repeated
	// NotInDictionary - the word is not a dictionary entry.
	NotInDictionary
)

// String returns a short machine-friendly name, used for logs and trace events.
func (r Rejection) String() string {
	switch r {
	case NotRejected:
		return "none"
	case WrongLength:
		return "wrong_length"
	case NonLetter:
		return "non_letter"
	case NotOneLetter:
		return "not_one_letter"
	case Repeated:
		return "repeated"
	case NotInDictionary:
		return "not_in_dictionary"
	default:
		return "unknown"
	}
}

// Message returns the corrective text shown to the player.
// length is the required word length, used by WrongLength.
func (r Rejection) Message(length int) string {
	switch r {
	case WrongLength:
		return fmt.Sprintf("Word should be %d characters long - try again.", length)
	case NonLetter:
		return "Word should contain only letters - try again."
	case NotOneLetter:
		return "Word should have only one letter different - try again."
	case Repeated:
		return "Previous word can't be repeated - try again."
	case NotInDictionary:
		return "Word not found in dictionary - try again."
	default:
		return ""
	}
}
