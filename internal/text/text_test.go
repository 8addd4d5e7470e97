package text

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"plain text", []string{"plain text"}},
		{"${Hi,Hello} $0!", []string{"${Hi,Hello}", " ", "$0", "!"}},
		{"$firstname $lastname", []string{"$firstname", " ", "$lastname"}},
		{"a ${,b} c", []string{"a ", "${,b}", " c"}},
		{"curly } stays", []string{"curly } stays"}},
		{"costs $$5", []string{"costs ", "$$", "5"}},
		{"US$$ $$$0", []string{"US", "$$", " ", "$$", "$0"}},
		{"", nil},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.line)
		if err != nil {
			t.Errorf("Tokenize(%q) error: %v", tt.line, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
		if got.String() != tt.line {
			t.Errorf("Template.String() = %q, want %q", got.String(), tt.line)
		}
	}
}

func TestTokenizeMalformed(t *testing.T) {
	lines := []string{
		"trailing $",
		"${a,b",
		"${a,{b}}",
		"cost $!",
		"$ space",
	}

	for _, line := range lines {
		_, err := Tokenize(line)
		var tfe *TemplateFormatError
		if !errors.As(err, &tfe) {
			t.Errorf("Tokenize(%q) error = %v, want *TemplateFormatError", line, err)
			continue
		}
		if !errors.Is(err, ErrTemplateFormat) {
			t.Errorf("Tokenize(%q) error does not match ErrTemplateFormat", line)
		}
	}
}

func TestGenerateAlternationAndPositional(t *testing.T) {
	g := NewGenerator(NewSource(42), nil)
	seen := map[string]int{}

	for i := 0; i < 200; i++ {
		out, err := g.Generate([]string{"World"}, "${Hi,Hello} $0!")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if out != "Hi World!" && out != "Hello World!" {
			t.Fatalf("Generate = %q", out)
		}
		seen[out]++
	}

	if seen["Hi World!"] == 0 || seen["Hello World!"] == 0 {
		t.Errorf("alternation never produced both outcomes: %v", seen)
	}
}

func TestGenerateLiteralTokens(t *testing.T) {
	g := NewGenerator(NewSource(1), nil)
	out, err := g.Generate([]string{"Odo"}, "Dear ", "$0", ",\n", "  see you.")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if want := "Dear Odo,\n  see you."; out != want {
		t.Errorf("Generate = %q, want %q", out, want)
	}
}

func TestGenerateDollarEscape(t *testing.T) {
	g := NewGenerator(NewSource(1), nil)

	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"costs $$5"}, "costs $5"},
		{[]string{"US$$"}, "US$"},
		{[]string{"$$$0 each"}, "$12 each"},
	}
	for _, tt := range tests {
		got, err := g.Generate([]string{"12"}, tt.tokens...)
		if err != nil {
			t.Errorf("Generate(%q) error: %v", tt.tokens, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.tokens, got, tt.want)
		}
	}

	// An unescaped '$' is still a placeholder.
	if _, err := g.Generate(nil, "US$"); !errors.Is(err, ErrTemplateFormat) {
		t.Errorf("Generate(\"US$\") error = %v, want ErrTemplateFormat", err)
	}
}

func TestGenerateEmptyAlternative(t *testing.T) {
	g := NewGenerator(NewSource(3), nil)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		out, err := g.Generate(nil, "a${, very} big")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		seen[out] = true
	}
	if !seen["a big"] || !seen["a very big"] {
		t.Errorf("outcomes = %v", seen)
	}
}

func TestGeneratePositionalOutOfRange(t *testing.T) {
	g := NewGenerator(NewSource(1), nil)
	_, err := g.Generate([]string{"only"}, "$0 and $1")
	var tfe *TemplateFormatError
	if !errors.As(err, &tfe) {
		t.Fatalf("error = %v, want *TemplateFormatError", err)
	}
	if tfe.Token != "$1" {
		t.Errorf("Token = %q, want $1", tfe.Token)
	}
}

func TestGenerateNamedVars(t *testing.T) {
	g := NewGenerator(NewSource(5), nil)
	vars := Vars{
		Args:  []string{"Greta"},
		Named: map[string][]string{"mood": {"grumpy"}},
	}
	out, err := g.GenerateWith(vars, "$0 is $mood")
	if err != nil {
		t.Fatalf("GenerateWith error: %v", err)
	}
	if out != "Greta is grumpy" {
		t.Errorf("GenerateWith = %q", out)
	}

	_, err = g.GenerateWith(vars, "$mod")
	var mce *MissingAtomCategoryError
	if !errors.As(err, &mce) {
		t.Fatalf("error = %v, want *MissingAtomCategoryError", err)
	}
	if mce.Category != "mod" || mce.Suggestion != "mood" {
		t.Errorf("error = %+v, want category mod suggesting mood", mce)
	}
	if !errors.Is(err, ErrMissingCategory) {
		t.Error("error does not match ErrMissingCategory")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	store := DefaultStore()
	a := NewGenerator(NewSource(99), store)
	b := NewGenerator(NewSource(99), store)

	for i := 0; i < 20; i++ {
		x, err := a.Generate(nil, "$firstname ${the,of} $town")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		y, _ := b.Generate(nil, "$firstname ${the,of} $town")
		if x != y {
			t.Fatalf("same seed diverged: %q vs %q", x, y)
		}
	}
}

func testStore() *Store {
	fsys := fstest.MapFS{
		"words/color.txt":    {Data: []byte("# colors\nred\n\n  green  \n")},
		"words/animal.yaml":  {Data: []byte("- cat\n- dog\n")},
		"lines/greeting.txt": {Data: []byte("Hello $color $animal\nBye\\nfor now\n")},
		"lines/broken.txt":   {Data: []byte("fine\n${oops\n")},
	}
	return NewStore(fsys, "words")
}

func TestStoreGetAtoms(t *testing.T) {
	s := testStore()

	got, err := s.GetAtoms("lines/greeting.txt")
	if err != nil {
		t.Fatalf("GetAtoms error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetAtoms returned %d templates, want 2", len(got))
	}
	if got[1].String() != "Bye\nfor now" {
		t.Errorf("escaped newline = %q", got[1].String())
	}

	again, _ := s.GetAtoms("lines/greeting.txt")
	if &again[0] != &got[0] {
		t.Error("GetAtoms did not return the cached templates")
	}

	if _, err := s.GetAtoms("lines/missing.txt"); err == nil {
		t.Error("GetAtoms on a missing file should fail")
	}

	_, err = s.GetAtoms("lines/broken.txt")
	if !errors.Is(err, ErrTemplateFormat) {
		t.Errorf("GetAtoms(broken) error = %v, want ErrTemplateFormat", err)
	}
}

func TestStoreCategory(t *testing.T) {
	s := testStore()

	colors, err := s.Category("color")
	if err != nil {
		t.Fatalf("Category(color) error: %v", err)
	}
	if len(colors) != 2 || colors[0] != "red" || colors[1] != "green" {
		t.Errorf("Category(color) = %q", colors)
	}

	animals, err := s.Category("animal")
	if err != nil || len(animals) != 2 {
		t.Errorf("Category(animal) = %q, %v", animals, err)
	}

	if got := s.Categories(); len(got) != 2 || got[0] != "animal" || got[1] != "color" {
		t.Errorf("Categories() = %q", got)
	}

	_, err = s.Category("colour")
	var mce *MissingAtomCategoryError
	if !errors.As(err, &mce) {
		t.Fatalf("error = %v, want *MissingAtomCategoryError", err)
	}
	if mce.Suggestion != "color" {
		t.Errorf("Suggestion = %q, want color", mce.Suggestion)
	}

	_, err = s.Category("zebra")
	if !errors.As(err, &mce) || mce.Suggestion != "" {
		t.Errorf("Category(zebra) error = %v, want no suggestion", err)
	}
}

func TestGenerateRandomFromStore(t *testing.T) {
	s := testStore()
	g := NewGenerator(NewSource(7), s)

	templates, err := s.GetAtoms("lines/greeting.txt")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		out, err := g.GenerateRandom(nil, templates)
		if err != nil {
			t.Fatalf("GenerateRandom error: %v", err)
		}
		if strings.Contains(out, "$") {
			t.Fatalf("unexpanded placeholder in %q", out)
		}
	}

	if out, err := g.GenerateRandom(nil, nil); err != nil || out != "" {
		t.Errorf("GenerateRandom(nil) = %q, %v", out, err)
	}
}

func TestDefaultStoreExpandsEverything(t *testing.T) {
	s := DefaultStore()
	g := NewGenerator(NewSource(2024), s)

	for _, p := range []string{"templates/biography.txt", "templates/hobby.txt", "templates/location.txt"} {
		templates, err := s.GetAtoms(p)
		if err != nil {
			t.Fatalf("GetAtoms(%s) error: %v", p, err)
		}
		if len(templates) == 0 {
			t.Fatalf("GetAtoms(%s) is empty", p)
		}
		args := []string{"Ada", "woman", "enjoys knitting", "she", "her"}
		for _, tmpl := range templates {
			out, err := g.Generate(args, tmpl...)
			if err != nil {
				t.Fatalf("%s: %q: %v", p, tmpl.String(), err)
			}
			if strings.Contains(out, "$") {
				t.Errorf("%s: unexpanded placeholder in %q", p, out)
			}
		}
	}
}

func TestGeneratorConcurrent(t *testing.T) {
	g := NewGenerator(NewSource(11), DefaultStore())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := g.Generate(nil, "$firstname $lastname"); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestToSentenceCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "Hello world"},
		{"", ""},
		{"Already", "Already"},
		{"  spaced", "  Spaced"},
		{"...ellipsis", "...Ellipsis"},
		{"élan", "Élan"},
		{"123", "123"},
	}

	for _, tt := range tests {
		if got := ToSentenceCase(tt.in); got != tt.want {
			t.Errorf("ToSentenceCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"firstname", "lastname", "town"}
	tests := []struct {
		name, want string
	}{
		{"firstnme", "firstname"},
		{"twn", "town"},
		{"profession", ""},
	}
	for _, tt := range tests {
		if got := suggest(tt.name, known); got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
