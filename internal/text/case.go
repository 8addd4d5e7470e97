package text

import (
	"unicode"
	"unicode/utf8"
)

// ToSentenceCase upper-cases the first letter of s. Leading punctuation and
// whitespace are left alone.
func ToSentenceCase(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return s
		}
		return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
	}
	return s
}
