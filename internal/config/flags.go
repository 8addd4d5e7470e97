package config

import "flag"

// Flags holds command-line overrides bound to a FlagSet.
type Flags struct {
	fs *flag.FlagSet

	config       *string
	debug        *bool
	seed         *int64
	ortho        *bool
	noiseTexture *string
	atoms        *string
	windowed     *bool
	fullscreen   *bool
	width        *int
	height       *int
}

// RegisterFlags binds the standard flags to fs. Parse fs before calling Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:           fs,
		config:       fs.String("config", "", "Path to config file"),
		debug:        fs.Bool("debug", false, "Enable debug logging"),
		seed:         fs.Int64("seed", 0, "Seed for text and noise generation"),
		ortho:        fs.Bool("ortho", false, "Start with an orthographic camera"),
		noiseTexture: fs.String("noise-texture", "", "Image to use as the noise texture"),
		atoms:        fs.String("atoms", "", "Directory with atom and template files"),
		windowed:     fs.Bool("windowed", false, "Run in windowed mode"),
		fullscreen:   fs.Bool("fullscreen", false, "Run in fullscreen mode"),
		width:        fs.Int("width", 0, "Window width"),
		height:       fs.Int("height", 0, "Window height"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply copies flag overrides onto cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}

	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.isSet("seed") {
		cfg.Text.Seed = *f.seed
		cfg.Noise.Seed = *f.seed
	}
	if *f.ortho {
		cfg.Camera.Projection = "orthographic"
	}
	if *f.noiseTexture != "" {
		cfg.Noise.Texture = *f.noiseTexture
	}
	if *f.atoms != "" {
		cfg.Text.AtomDir = *f.atoms
	}
	if *f.windowed {
		cfg.Graphics.Fullscreen = false
	}
	if *f.fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *f.width > 0 {
		cfg.Graphics.Width = *f.width
	}
	if *f.height > 0 {
		cfg.Graphics.Height = *f.height
	}
}

func (f *Flags) isSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
