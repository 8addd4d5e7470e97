package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Faultbox/colonysim/internal/game/applicant"
	"github.com/Faultbox/colonysim/internal/text"
)

func cmdApplicant(args []string) error {
	fs := flag.NewFlagSet("applicant", flag.ExitOnError)
	count := fs.Int("n", 1, "Number of applicants")
	className := fs.String("class", "", "Employee class (random if empty)")
	level := fs.Int("level", 0, "Level index within the class")
	companyName := fs.String("company", "Colony Ventures", "Hiring company")
	motto := fs.String("motto", "We dig deeper.", "Company motto")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}

	gen, store := textTools(cfg)
	catalog := applicant.DefaultCatalog()
	company := applicant.Company{Name: *companyName, Motto: *motto}

	for i := 0; i < *count; i++ {
		var class *applicant.Class
		if *className == "" {
			class = &catalog.Classes[gen.Intn(len(catalog.Classes))]
		} else if class, err = catalog.Class(*className); err != nil {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(catalog.Names(), ", "))
		}

		a, err := applicant.Generate(gen, store, class, *level, company)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println(strings.Repeat("-", 60))
		}
		printApplicant(a)
	}
	return nil
}

func printApplicant(a *applicant.Applicant) {
	fmt.Printf("ID:         %s\n", a.ID)
	fmt.Printf("Name:       %s (%s)\n", a.Name, a.Gender)
	fmt.Printf("Position:   %s %s (level %d)\n", a.Class.Name, a.Level.Name, a.LevelIndex)
	fmt.Printf("Pay:        $%s/day\n", humanize.Commaf(a.Level.Pay))
	fmt.Printf("Hire cost:  $%s\n", humanize.Commaf(a.Level.HireCost))
	fmt.Printf("Formerly:   %s\n", a.FormerProfession)
	fmt.Printf("Hometown:   %s\n", a.HomeTown)
	fmt.Println()
	fmt.Println(a.CoverLetter)
	fmt.Println()
	fmt.Println(a.Biography)
}

func cmdBio(args []string) error {
	fs := flag.NewFlagSet("bio", flag.ExitOnError)
	name := fs.String("name", "", "Character name (random if empty)")
	genderName := fs.String("gender", "", "male, female or nonbinary (random if empty)")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}

	gen, store := textTools(cfg)

	gender := applicant.Gender(gen.Intn(3))
	if *genderName != "" {
		if gender, err = applicant.ParseGender(*genderName); err != nil {
			return err
		}
	}
	if *name == "" {
		if *name, err = gen.Generate(nil, "$firstname $lastname"); err != nil {
			return err
		}
	}

	fmt.Println(applicant.GenerateBiography(gen, store, *name, gender))
	return nil
}

// stringList collects a repeated flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdExpand(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	var positional stringList
	fs.Var(&positional, "arg", "Positional argument for $0, $1, ... (repeatable)")
	count := fs.Int("n", 1, "Expansions per template")
	sentence := fs.Bool("sentence", false, "Sentence-case the output")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: colonygen expand [-arg V]... TEMPLATE...")
	}

	gen, _ := textTools(cfg)
	for _, line := range fs.Args() {
		for i := 0; i < *count; i++ {
			out, err := gen.Generate(positional, line)
			if err != nil {
				return err
			}
			if *sentence {
				out = text.ToSentenceCase(out)
			}
			fmt.Println(out)
		}
	}
	return nil
}
