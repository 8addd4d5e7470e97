package applicant

import (
	"fmt"
	"strings"
)

// Gender selects pronouns in generated text.
type Gender int

const (
	Male Gender = iota
	Female
	Nonbinary
)

var genders = [...]struct {
	name, noun, pronoun, possessive string
}{
	Male:      {"male", "man", "he", "his"},
	Female:    {"female", "woman", "she", "her"},
	Nonbinary: {"nonbinary", "person", "they", "their"},
}

func (g Gender) valid() bool {
	return g >= 0 && int(g) < len(genders)
}

func (g Gender) String() string {
	if !g.valid() {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return genders[g].name
}

// Noun returns "man", "woman" or "person".
func (g Gender) Noun() string {
	if !g.valid() {
		return genders[Nonbinary].noun
	}
	return genders[g].noun
}

// Pronoun returns the subject pronoun.
func (g Gender) Pronoun() string {
	if !g.valid() {
		return genders[Nonbinary].pronoun
	}
	return genders[g].pronoun
}

// Possessive returns the possessive determiner.
func (g Gender) Possessive() string {
	if !g.valid() {
		return genders[Nonbinary].possessive
	}
	return genders[g].possessive
}

// ParseGender accepts the names returned by String and the nouns.
func ParseGender(s string) (Gender, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, g := range genders {
		if s == g.name || s == g.noun {
			return Gender(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}
