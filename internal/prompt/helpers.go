package prompt

import (
	"strings"
	"unicode"
)

// filterRunes keeps the printable characters of typed or pasted text.
func filterRunes(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// deleteLastWord removes the last word from a string (for alt+backspace).
func deleteLastWord(s string) string {
	s = strings.TrimRight(s, " ")
	lastSpace := strings.LastIndex(s, " ")
	if lastSpace == -1 {
		return ""
	}
	return s[:lastSpace+1]
}

// dropLastRune removes the last character (for backspace).
func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
