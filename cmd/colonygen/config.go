package main

import (
	"flag"
	"fmt"

	"github.com/Faultbox/colonysim/internal/config"
)

// cmdConfig writes the effective configuration (defaults, file and flags
// merged) so it can be edited by hand.
func cmdConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (user config directory if empty)")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}

	if *out == "" {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Wrote config to %s\n", config.DefaultPath())
		return nil
	}
	if err := cfg.SaveTo(*out); err != nil {
		return err
	}
	fmt.Printf("Wrote config to %s\n", *out)
	return nil
}
