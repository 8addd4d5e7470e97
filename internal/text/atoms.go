package text

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed data
var defaultData embed.FS

// DefaultAtomDir is the directory holding $name word lists.
const DefaultAtomDir = "atoms"

// atomExtensions are tried in order when looking up a category.
var atomExtensions = []string{".txt", ".yaml", ".yml"}

// Store loads template and atom files from a filesystem. Each file is read
// at most once and treated as immutable afterwards.
type Store struct {
	fsys    fs.FS
	atomDir string

	mu    sync.Mutex
	cache map[string][]Template
}

// NewStore creates a store over fsys. $name placeholders resolve to
// <atomDir>/<name>.txt (or .yaml).
func NewStore(fsys fs.FS, atomDir string) *Store {
	if atomDir == "" {
		atomDir = DefaultAtomDir
	}
	return &Store{
		fsys:    fsys,
		atomDir: atomDir,
		cache:   make(map[string][]Template),
	}
}

// DefaultStore returns a store over the embedded atom pack.
func DefaultStore() *Store {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		panic(err)
	}
	return NewStore(sub, DefaultAtomDir)
}

// GetAtoms returns the templates in the file at p, one per entry.
func (s *Store) GetAtoms(p string) ([]Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.cache[p]; ok {
		return t, nil
	}

	lines, err := readEntries(s.fsys, p)
	if err != nil {
		return nil, err
	}

	templates := make([]Template, 0, len(lines))
	for i, line := range lines {
		t, err := Tokenize(line)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", p, i+1, err)
		}
		templates = append(templates, t)
	}

	s.cache[p] = templates
	return templates, nil
}

// Category returns the words for $name. Words are emitted as-is and are not
// expanded further.
func (s *Store) Category(name string) ([]string, error) {
	for _, ext := range atomExtensions {
		p := path.Join(s.atomDir, name+ext)
		templates, err := s.GetAtoms(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		words := make([]string, len(templates))
		for i, t := range templates {
			words[i] = t.String()
		}
		return words, nil
	}
	return nil, &MissingAtomCategoryError{Category: name, Suggestion: suggest(name, s.Categories())}
}

// Categories lists the category names available under the atom directory.
func (s *Store) Categories() []string {
	entries, err := fs.ReadDir(s.fsys, s.atomDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		for _, known := range atomExtensions {
			if ext == known {
				names = append(names, strings.TrimSuffix(e.Name(), ext))
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// readEntries reads a .txt file (one entry per non-blank line, # comments,
// literal \n as newline) or a .yaml file holding a list of strings.
func readEntries(fsys fs.FS, p string) ([]string, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	switch path.Ext(p) {
	case ".yaml", ".yml":
		var entries []string
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		return entries, nil
	}

	var entries []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, strings.ReplaceAll(line, `\n`, "\n"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return entries, nil
}

// suggest returns the closest known name within an edit distance scaled by
// its length, or "".
func suggest(name string, known []string) string {
	best, bestDist := "", -1
	for _, k := range known {
		d := levenshtein.ComputeDistance(name, k)
		if d > suggestLimit(len(k)) {
			continue
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && k < best) {
			best, bestDist = k, d
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
