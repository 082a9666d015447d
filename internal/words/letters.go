package words

import "strings"

// IsLetters reports whether s is non-empty and made only of ASCII letters.
func IsLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Normalize returns s in upper case. The input is left untouched.
func Normalize(s string) string {
	return strings.ToUpper(s)
}
