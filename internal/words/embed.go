package words

import _ "embed"

// wordList is the built-in list random start and target words are drawn from.
// One upper-case word per line, lengths 2 to 9.
//
//go:embed wordlist.txt
var wordList string
