// Package applicant generates job applicants for the colony hiring board.
package applicant

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/colonysim/internal/logger"
	"github.com/Faultbox/colonysim/internal/text"
)

// Template files in the atom pack.
const (
	BiographyTemplates = "templates/biography.txt"
	HobbyTemplates     = "templates/hobby.txt"
	LocationTemplates  = "templates/location.txt"
)

// Placeholders used when generation fails.
const (
	PlaceholderName        = "Unnamed Colonist"
	PlaceholderBiography   = "No biography on file."
	PlaceholderHomeTown    = "Parts Unknown"
	PlaceholderProfession  = "drifter"
	PlaceholderCoverLetter = "To whom it may concern,\nPlease hire me.\n"
)

// Templates loads template files by path. *text.Store implements it.
type Templates interface {
	GetAtoms(path string) ([]text.Template, error)
}

// Company is the employer named in cover letters.
type Company struct {
	Name  string
	Motto string
}

// Applicant is a generated candidate for hire.
type Applicant struct {
	ID               uuid.UUID
	Name             string
	Gender           Gender
	Class            *Class
	Level            *Level
	LevelIndex       int
	FormerProfession string
	HomeTown         string
	CoverLetter      string
	Biography        string
}

var justifications = []string{
	"I'm good at it.",
	"I need the money.",
	"I'm passionate about it.",
	"My mother made me apply.",
	"I have nothing better to do.",
	"I was told there would be snacks.",
	"It's my calling.",
	"I've always wanted to work at $1!",
}

// Generate creates an applicant for class at the given level. Text that fails
// to expand is logged and replaced with a placeholder.
func Generate(gen *text.Generator, tmpl Templates, class *Class, level int, company Company) (*Applicant, error) {
	lvl, err := class.Level(level)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(byteSource{gen})
	if err != nil {
		return nil, fmt.Errorf("applicant id: %w", err)
	}

	a := &Applicant{
		ID:         id,
		Gender:     Gender(gen.Intn(len(genders))),
		Class:      class,
		Level:      lvl,
		LevelIndex: level,
	}

	log := logger.Named("applicant")

	a.Name = orPlaceholder(log, "name", PlaceholderName, func() (string, error) {
		return gen.Generate(nil, "$firstname $lastname")
	})
	a.CoverLetter = orPlaceholder(log, "cover letter", PlaceholderCoverLetter, func() (string, error) {
		return coverLetter(gen, a.Name, lvl.Name, company)
	})

	if level > 0 {
		a.FormerProfession = class.Levels[level-1].Name
	} else {
		a.FormerProfession = orPlaceholder(log, "profession", PlaceholderProfession, func() (string, error) {
			return gen.Generate(nil, "$profession")
		})
	}

	a.HomeTown = orPlaceholder(log, "hometown", PlaceholderHomeTown, func() (string, error) {
		return randomTemplate(gen, tmpl, LocationTemplates, nil)
	})
	a.Biography = GenerateBiography(gen, tmpl, a.Name, a.Gender)

	return a, nil
}

// GenerateBiography writes a short sentence-cased biography for name.
func GenerateBiography(gen *text.Generator, tmpl Templates, name string, gender Gender) string {
	log := logger.Named("applicant")

	bio := orPlaceholder(log, "biography", PlaceholderBiography, func() (string, error) {
		hobby, err := randomTemplate(gen, tmpl, HobbyTemplates, nil)
		if err != nil {
			return "", err
		}
		args := []string{name, gender.Noun(), hobby, gender.Pronoun(), gender.Possessive()}
		return randomTemplate(gen, tmpl, BiographyTemplates, args)
	})
	return text.ToSentenceCase(bio)
}

func coverLetter(gen *text.Generator, name, position string, company Company) (string, error) {
	args := []string{name, company.Name, position}
	return gen.Generate(args,
		"${Dear,Hey,Hi,Hello,Sup,Yo}", " ", "$1", ",\n",
		"${Please,Do}", " ", "${consider,check out,look at,see,view}", " ",
		"${my,this}", " ",
		"${application for the position of,resume for,request to be a,offer as}",
		" ", "$2", ". ", gen.Pick(justifications), "\n",
		"${Thanks,Sincerely,Yours,--,Always}", ",\n    ", "$0",
	)
}

func randomTemplate(gen *text.Generator, tmpl Templates, path string, args []string) (string, error) {
	templates, err := tmpl.GetAtoms(path)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("%s has no templates", path)
	}
	return gen.GenerateRandom(args, templates)
}

func orPlaceholder(log *zap.Logger, what, placeholder string, fn func() (string, error)) string {
	s, err := fn()
	if err != nil {
		log.Warn("text generation failed, using placeholder",
			zap.String("field", what),
			zap.Error(err))
		return placeholder
	}
	return s
}

// byteSource feeds the generator's RNG to uuid so IDs replay with the seed.
type byteSource struct {
	gen *text.Generator
}

func (b byteSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b.gen.Intn(256))
	}
	return len(p), nil
}
