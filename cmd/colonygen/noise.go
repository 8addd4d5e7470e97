package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Faultbox/colonysim/internal/engine/noise"
	"github.com/Faultbox/colonysim/internal/engine/texture"
)

func cmdNoise(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: colonygen noise bake|sample [options]")
	}
	switch args[0] {
	case "bake":
		return cmdNoiseBake(args[1:])
	case "sample":
		return cmdNoiseSample(args[1:])
	default:
		return fmt.Errorf("unknown noise command %q", args[0])
	}
}

func cmdNoiseBake(args []string) error {
	fs := flag.NewFlagSet("noise bake", flag.ExitOnError)
	out := fs.String("o", "noise.webp", "Output file (.webp or .png)")
	size := fs.Int("size", 0, "Texture size in texels (config default if 0)")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}
	if *size > 0 {
		cfg.Noise.Size = *size
	}

	field, err := noise.NewSimplexTexture(cfg.Noise.Seed, cfg.Noise.Size, cfg.Noise.Options())
	if err != nil {
		return err
	}
	if err := texture.Save(*out, field.Image()); err != nil {
		return err
	}

	fmt.Printf("Wrote %dx%d noise texture (seed %d) to %s\n", cfg.Noise.Size, cfg.Noise.Size, cfg.Noise.Seed, *out)
	return nil
}

func cmdNoiseSample(args []string) error {
	fs := flag.NewFlagSet("noise sample", flag.ExitOnError)
	path := fs.String("texture", "", "Noise texture image (simplex noise if empty)")
	t := fs.Float64("time", 0, "Time in seconds")
	cfg, err := parseCommon(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: colonygen noise sample [-texture FILE] x,y,z...")
	}
	if *path != "" {
		cfg.Noise.Texture = *path
	}

	field, err := cfg.Noise.Field()
	if err != nil {
		return err
	}

	for _, arg := range fs.Args() {
		p, err := parseVec3(arg)
		if err != nil {
			return err
		}
		o := field.Offset(p, float32(*t))
		fmt.Printf("%s -> (%.4f, %.4f, %.4f)\n", arg, o.X, o.Y, o.Z)
	}
	return nil
}
