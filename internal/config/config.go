// Package config handles toolkit configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/noise"
	"github.com/Faultbox/colonysim/internal/logger"
	"github.com/Faultbox/colonysim/pkg/math"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Sprites  SpritesConfig  `yaml:"sprites"`
	Noise    NoiseConfig    `yaml:"noise"`
	Text     TextConfig     `yaml:"text"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the initial orbit camera.
type CameraConfig struct {
	Projection string  `yaml:"projection"` // perspective or orthographic
	Distance   float32 `yaml:"distance"` // 0 fits the sprite grid
	Pitch      float32 `yaml:"pitch"` // radians
	Yaw        float32 `yaml:"yaw"`   // radians
}

// SpritesConfig controls the sprite grid shown by spriteview.
type SpritesConfig struct {
	Orientation billboard.OrientMode `yaml:"orientation"`
	Rotation    float32              `yaml:"rotation"` // radians about the view axis
	Distort     bool                 `yaml:"distort"`
	Silhouettes bool                 `yaml:"silhouettes"`
	GridSize    int                  `yaml:"grid_size"`
	Spacing     float32              `yaml:"spacing"`
	FrameSize   int                  `yaml:"frame_size"` // pixels per procedural frame
	Frames      int                  `yaml:"frames"`
}

// NoiseConfig describes the positional noise field.
type NoiseConfig struct {
	Seed      int64      `yaml:"seed"`
	Size      int        `yaml:"size"`
	CellSize  float32    `yaml:"cell_size"`
	Amplitude float32    `yaml:"amplitude"`
	Skew      float32    `yaml:"skew"`
	Drift     [3]float32 `yaml:"drift"`
	Texture   string     `yaml:"texture"` // image file; empty generates simplex noise
}

// TextConfig holds flavor-text generator settings.
type TextConfig struct {
	Seed    int64  `yaml:"seed"`     // 0 picks a time-based seed
	AtomDir string `yaml:"atom_dir"` // overrides the embedded atom pack
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := noise.DefaultOptions()
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Projection: camera.Perspective.String(),
			Pitch:      0.6,
		},
		Sprites: SpritesConfig{
			Orientation: billboard.Spherical,
			Distort:     true,
			GridSize:    16,
			Spacing:     1.5,
			FrameSize:   32,
			Frames:      4,
		},
		Noise: NoiseConfig{
			Seed:      1,
			Size:      64,
			CellSize:  opts.CellSize,
			Amplitude: opts.Amplitude,
			Skew:      opts.Skew,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := camera.ParseProjection(c.Camera.Projection); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if c.Sprites.GridSize < 0 || c.Sprites.FrameSize <= 0 || c.Sprites.Frames <= 0 {
		return fmt.Errorf("sprites: grid %d, frame size %d, frames %d", c.Sprites.GridSize, c.Sprites.FrameSize, c.Sprites.Frames)
	}
	if c.Noise.Size <= 0 || c.Noise.CellSize <= 0 {
		return fmt.Errorf("noise: size %d and cell size %v must be positive", c.Noise.Size, c.Noise.CellSize)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// ProjectionMode returns the parsed camera projection, defaulting to perspective.
func (c CameraConfig) ProjectionMode() camera.Projection {
	p, err := camera.ParseProjection(c.Projection)
	if err != nil {
		return camera.Perspective
	}
	return p
}

// Options converts the noise settings for the noise package.
func (n NoiseConfig) Options() noise.Options {
	return noise.Options{
		CellSize:  n.CellSize,
		Amplitude: n.Amplitude,
		Skew:      n.Skew,
		Drift:     math.Vec3{X: n.Drift[0], Y: n.Drift[1], Z: n.Drift[2]},
	}
}

// Field builds the noise field: the image at Texture when set, seeded
// simplex noise otherwise.
func (n NoiseConfig) Field() (*noise.RepeatingTexture, error) {
	if n.Texture != "" {
		return noise.Load(n.Texture, n.Size, n.Options())
	}
	return noise.NewSimplexTexture(n.Seed, n.Size, n.Options())
}
