package text

import (
	"strconv"
	"strings"
)

// Template is an ordered list of tokens.
type Template []string

// String joins the tokens back into authored form.
func (t Template) String() string {
	return strings.Join(t, "")
}

type tokenKind int

const (
	literalToken tokenKind = iota
	alternationToken
	positionalToken
	namedToken
	escapeToken
)

// Escape is the token for a literal '$'.
const Escape = "$$"

// Tokenize splits an authored line into literal text, ${a,b} alternations and
// $name / $0 placeholders. "$$" becomes its own token and stands for a single
// literal '$'. Literal text is kept byte for byte.
func Tokenize(line string) (Template, error) {
	var tokens Template
	start := 0

	for i := 0; i < len(line); {
		if line[i] != '$' {
			i++
			continue
		}
		if i > start {
			tokens = append(tokens, line[start:i])
		}

		end, err := placeholderEnd(line, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, line[i:end])
		i = end
		start = end
	}

	if start < len(line) {
		tokens = append(tokens, line[start:])
	}
	return tokens, nil
}

// placeholderEnd returns the index just past the placeholder starting at line[i] == '$'.
func placeholderEnd(line string, i int) (int, error) {
	if i+1 >= len(line) {
		return 0, &TemplateFormatError{Token: line[i:], Reason: "dangling '$'"}
	}

	if line[i+1] == '$' {
		return i + 2, nil
	}

	if line[i+1] == '{' {
		for j := i + 2; j < len(line); j++ {
			switch line[j] {
			case '}':
				return j + 1, nil
			case '{':
				return 0, &TemplateFormatError{Token: line[i : j+1], Reason: "nested '{' in alternation"}
			}
		}
		return 0, &TemplateFormatError{Token: line[i:], Reason: "unclosed alternation"}
	}

	j := i + 1
	for j < len(line) && isNameByte(line[j]) {
		j++
	}
	if j == i+1 {
		return 0, &TemplateFormatError{Token: line[i : i+2], Reason: "'$' must be followed by a name, an index or '{'"}
	}
	return j, nil
}

func isNameByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// classify identifies a single token. For placeholders it returns the name,
// index or alternation body.
func classify(tok string) (kind tokenKind, name string, index int, err error) {
	if !strings.HasPrefix(tok, "$") {
		return literalToken, "", 0, nil
	}

	if tok == Escape {
		return escapeToken, "", 0, nil
	}

	body := tok[1:]
	if strings.HasPrefix(body, "{") {
		if !strings.HasSuffix(body, "}") || strings.Count(body, "{") != 1 || strings.Count(body, "}") != 1 {
			return 0, "", 0, &TemplateFormatError{Token: tok, Reason: "unbalanced braces"}
		}
		return alternationToken, body[1 : len(body)-1], 0, nil
	}

	if body == "" {
		return 0, "", 0, &TemplateFormatError{Token: tok, Reason: "dangling '$'"}
	}
	for i := 0; i < len(body); i++ {
		if !isNameByte(body[i]) {
			return 0, "", 0, &TemplateFormatError{Token: tok, Reason: "invalid placeholder name"}
		}
	}
	if body[0] >= '0' && body[0] <= '9' {
		n, convErr := strconv.Atoi(body)
		if convErr != nil {
			return 0, "", 0, &TemplateFormatError{Token: tok, Reason: "invalid positional index"}
		}
		return positionalToken, "", n, nil
	}
	return namedToken, body, 0, nil
}
