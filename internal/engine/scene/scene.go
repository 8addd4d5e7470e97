// Package scene draws billboard sprites with OpenGL.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/sprite"
	"github.com/Faultbox/colonysim/internal/logger"
	"github.com/Faultbox/colonysim/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width       int32
	Height      int32
	ClearColor  [3]float32
	Silhouettes bool
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		ClearColor: [3]float32{0.35, 0.5, 0.65},
	}
}

// Scene owns the sprite list, their textures and the renderer.
type Scene struct {
	config   Config
	renderer *SpriteRenderer

	sprites     []*sprite.Sprite
	textures    map[string]uint32
	fallbackTex uint32

	// Resolver orients sprites. Its time is advanced by Update.
	Resolver billboard.Resolver

	// SilhouettesEnabled gates the silhouette pass for all sprites.
	SilhouettesEnabled bool

	elapsed   float32
	lastItems []DrawItem
	log       *zap.Logger
}

// New creates a scene. A GL context must be current.
func New(cfg Config, r billboard.Resolver) (*Scene, error) {
	s := &Scene{
		config:             cfg,
		textures:           make(map[string]uint32),
		Resolver:           r,
		SilhouettesEnabled: cfg.Silhouettes,
		log:                logger.Named("scene"),
	}

	renderer, err := NewSpriteRenderer()
	if err != nil {
		return nil, fmt.Errorf("sprite renderer: %w", err)
	}
	s.renderer = renderer
	s.createFallbackTexture()

	return s, nil
}

func (s *Scene) createFallbackTexture() {
	gl.GenTextures(1, &s.fallbackTex)
	gl.BindTexture(gl.TEXTURE_2D, s.fallbackTex)
	magenta := []uint8{255, 0, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(magenta))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
}

// AddTexture uploads img under name, replacing an existing texture.
func (s *Scene) AddTexture(name string, img *image.NRGBA) {
	if old, ok := s.textures[name]; ok {
		gl.DeleteTextures(1, &old)
	}
	s.textures[name] = UploadTexture(img)
}

// AddSprite adds a sprite to the scene.
func (s *Scene) AddSprite(sp *sprite.Sprite) {
	s.sprites = append(s.sprites, sp)
}

// Sprites returns the sprites in insertion order.
func (s *Scene) Sprites() []*sprite.Sprite {
	return s.sprites
}

// LastDrawCount returns how many sprites the last Render drew.
func (s *Scene) LastDrawCount() int {
	return len(s.lastItems)
}

// LastBatch returns the items drawn by the last Render, back to front.
func (s *Scene) LastBatch() []DrawItem {
	return s.lastItems
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int32) {
	s.config.Width = width
	s.config.Height = height
}

// Update advances animations and the noise clock.
func (s *Scene) Update(dt float32) {
	s.elapsed += dt
	for _, sp := range s.sprites {
		sp.Update(dt)
	}
}

// Render clears the frame and draws every sprite as seen from view.
func (s *Scene) Render(view camera.View, viewProj math.Mat4) {
	gl.Viewport(0, 0, s.config.Width, s.config.Height)
	c := s.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	items := BuildBatch(s.sprites, s.Resolver.WithTime(s.elapsed), view, s.log)
	s.lastItems = items
	if len(items) == 0 {
		return
	}

	s.renderer.Begin(viewProj)
	if s.SilhouettesEnabled {
		for _, item := range items {
			if item.Silhouette {
				s.renderer.DrawSilhouette(item, s.texture(item.Sprite.Sheet.Texture))
			}
		}
	}
	for _, item := range items {
		s.renderer.Draw(item, s.texture(item.Sprite.Sheet.Texture))
	}
	s.renderer.End()
}

func (s *Scene) texture(name string) uint32 {
	if id, ok := s.textures[name]; ok {
		return id
	}
	return s.fallbackTex
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	for name, id := range s.textures {
		gl.DeleteTextures(1, &id)
		delete(s.textures, name)
	}
	if s.fallbackTex != 0 {
		gl.DeleteTextures(1, &s.fallbackTex)
		s.fallbackTex = 0
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
}
