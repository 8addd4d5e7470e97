package text

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateFormat matches every *TemplateFormatError.
	ErrTemplateFormat = errors.New("malformed template")
	// ErrMissingCategory matches every *MissingAtomCategoryError.
	ErrMissingCategory = errors.New("missing atom category")
)

// TemplateFormatError reports a token that cannot be expanded.
type TemplateFormatError struct {
	Token  string
	Reason string
}

func (e *TemplateFormatError) Error() string {
	return fmt.Sprintf("template token %q: %s", e.Token, e.Reason)
}

// Is lets errors.Is match ErrTemplateFormat.
func (e *TemplateFormatError) Is(target error) bool {
	return target == ErrTemplateFormat
}

// MissingAtomCategoryError reports a $name placeholder with no candidates.
type MissingAtomCategoryError struct {
	Category   string
	Suggestion string
}

func (e *MissingAtomCategoryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no atom category %q (did you mean %q?)", e.Category, e.Suggestion)
	}
	return fmt.Sprintf("no atom category %q", e.Category)
}

// Is lets errors.Is match ErrMissingCategory.
func (e *MissingAtomCategoryError) Is(target error) bool {
	return target == ErrMissingCategory
}
