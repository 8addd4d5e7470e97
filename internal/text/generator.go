package text

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Categories resolves $name placeholders to candidate words.
type Categories interface {
	Category(name string) ([]string, error)
}

// Vars carries the substitutions for one expansion.
type Vars struct {
	// Args backs $0, $1, ...
	Args []string
	// Named backs $name and takes precedence over the atom store.
	Named map[string][]string
}

// Generator expands templates. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	atoms Categories
}

// NewGenerator creates a generator drawing from rng. atoms may be nil, in
// which case only Vars.Named resolves $name placeholders.
func NewGenerator(rng *rand.Rand, atoms Categories) *Generator {
	if rng == nil {
		rng = NewSource(0)
	}
	return &Generator{rng: rng, atoms: atoms}
}

// Intn returns a uniform int in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

// Pick returns a uniformly chosen element, or "" for an empty list.
func (g *Generator) Pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[g.Intn(len(candidates))]
}

// Generate expands tokens in order with args bound to $0, $1, ...
// A token may hold a whole template line; it is split with Tokenize first, so
// every '$' in a token is read as a placeholder. Write "$$" for a literal
// dollar sign: "costs $$5" expands to "costs $5".
func (g *Generator) Generate(args []string, tokens ...string) (string, error) {
	return g.GenerateWith(Vars{Args: args}, tokens...)
}

// GenerateWith expands tokens using positional and named substitutions.
func (g *Generator) GenerateWith(vars Vars, tokens ...string) (string, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		parts, err := Tokenize(tok)
		if err != nil {
			return "", err
		}
		for _, part := range parts {
			out, err := g.expand(vars, part)
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
		}
	}
	return sb.String(), nil
}

// GenerateRandom picks one template uniformly and expands it.
func (g *Generator) GenerateRandom(args []string, templates []Template) (string, error) {
	if len(templates) == 0 {
		return "", nil
	}
	return g.Generate(args, templates[g.Intn(len(templates))]...)
}

func (g *Generator) expand(vars Vars, tok string) (string, error) {
	kind, name, index, err := classify(tok)
	if err != nil {
		return "", err
	}

	switch kind {
	case alternationToken:
		return g.Pick(strings.Split(name, ",")), nil
	case positionalToken:
		if index >= len(vars.Args) {
			return "", &TemplateFormatError{Token: tok, Reason: "positional index out of range"}
		}
		return vars.Args[index], nil
	case namedToken:
		return g.named(vars, name)
	case escapeToken:
		return "$", nil
	default:
		return tok, nil
	}
}

func (g *Generator) named(vars Vars, name string) (string, error) {
	if words, ok := vars.Named[name]; ok && len(words) > 0 {
		return g.Pick(words), nil
	}
	if g.atoms == nil {
		return "", &MissingAtomCategoryError{Category: name, Suggestion: suggest(name, namedKeys(vars))}
	}

	words, err := g.atoms.Category(name)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", &MissingAtomCategoryError{Category: name}
	}
	return g.Pick(words), nil
}

func namedKeys(vars Vars) []string {
	keys := make([]string, 0, len(vars.Named))
	for k := range vars.Named {
		keys = append(keys, k)
	}
	return keys
}
