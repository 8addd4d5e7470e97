// Package game runs the interactive sprite viewer.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/colonysim/internal/config"
	"github.com/Faultbox/colonysim/internal/engine/billboard"
	"github.com/Faultbox/colonysim/internal/engine/camera"
	"github.com/Faultbox/colonysim/internal/engine/debug"
	"github.com/Faultbox/colonysim/internal/engine/input"
	"github.com/Faultbox/colonysim/internal/engine/picking"
	"github.com/Faultbox/colonysim/internal/engine/scene"
	"github.com/Faultbox/colonysim/internal/engine/sprite"
	"github.com/Faultbox/colonysim/internal/engine/window"
	"github.com/Faultbox/colonysim/internal/logger"
	"github.com/Faultbox/colonysim/pkg/math"
)

// Game is the viewer instance.
type Game struct {
	cfg     *config.Config
	running bool
	window  *window.Window
	scene   *scene.Scene
	input   *input.Input
	camera  *camera.OrbitCamera
	state   viewState
	shots   *debug.ScreenshotCapture
	log     *zap.Logger
}

// New opens the window and builds the sprite grid described by cfg.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
		state: viewState{
			mode:        cfg.Sprites.Orientation,
			distort:     cfg.Sprites.Distort,
			silhouettes: cfg.Sprites.Silhouettes,
			projection:  cfg.Camera.ProjectionMode(),
		},
	}

	field, err := cfg.Noise.Field()
	if err != nil {
		return nil, fmt.Errorf("noise field: %w", err)
	}

	g.window, err = window.New(window.Config{
		Title:      g.state.title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := g.window.GetSize()
	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width, sceneCfg.Height = int32(w), int32(h)
	sceneCfg.Silhouettes = true

	g.scene, err = scene.New(sceneCfg, billboard.NewResolver(field))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	img, sheet := sprite.GenerateGrassSheet(cfg.Sprites.FrameSize, cfg.Sprites.FrameSize, cfg.Sprites.Frames)
	g.scene.AddTexture(sheet.Texture, img)

	sprites, err := BuildGrid(sheet, cfg.Sprites.GridSize, cfg.Sprites.Spacing)
	if err != nil {
		g.Close()
		return nil, err
	}
	for _, s := range sprites {
		s.BillboardRotation = cfg.Sprites.Rotation
		g.scene.AddSprite(s)
	}
	g.state.apply(g.scene.Sprites())

	g.camera = camera.NewOrbitCamera()
	g.camera.Projection = g.state.projection
	g.camera.RotationX = cfg.Camera.Pitch
	g.camera.RotationY = cfg.Camera.Yaw
	half := float32(cfg.Sprites.GridSize) * cfg.Sprites.Spacing / 2
	g.camera.FitToBounds(-half, -half, half, half)
	if cfg.Camera.Distance > 0 {
		g.camera.Distance = cfg.Camera.Distance
	}

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture("screenshots", "spriteview", ".webp")

	g.log.Info("viewer initialized",
		zap.Int("sprites", len(sprites)),
		zap.Stringer("mode", g.state.mode),
		zap.Stringer("projection", g.state.projection))
	return g, nil
}

// BuildGrid lays out size*size animated sprites centred on the origin.
// Animations start at staggered times so neighbours do not sway in step.
func BuildGrid(sheet sprite.Sheet, size int, spacing float32) ([]*sprite.Sprite, error) {
	sprites := make([]*sprite.Sprite, 0, size*size)
	offset := float32(size-1) * spacing / 2

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			pos := math.Vec3{X: float32(x)*spacing - offset, Z: float32(z)*spacing - offset}
			s := sprite.New(fmt.Sprintf("tuft-%d-%d", x, z), sheet, math.TranslateVec(pos))
			if err := s.SetSimpleAnimation(0); err != nil {
				return nil, fmt.Errorf("sprite %s: %w", s.Name, err)
			}
			s.Update(float32((x*7+z*3)%11) * 0.07)
			sprites = append(sprites, s)
		}
	}
	return sprites, nil
}

// Run starts the main loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.scene.Update(dt)
		view := g.camera.View()
		g.scene.Render(view, g.camera.ViewProjection(g.window.Aspect()))
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("drawn", g.scene.LastDrawCount()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.GetSize()
			g.scene.Resize(int32(w), int32(h))
		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_RIGHT {
				g.pick(event.MouseX, event.MouseY)
			}
		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_F12 {
				g.screenshot()
				continue
			}
			if g.state.handleKey(event.Key) {
				g.state.apply(g.scene.Sprites())
				g.camera.Projection = g.state.projection
				g.window.SetTitle(g.state.title())
				g.log.Debug("view changed", zap.String("state", g.state.title()))
			}
		}
	}

	if dx, dy := g.input.Drag(); dx != 0 || dy != 0 {
		g.camera.HandleDrag(dx, dy)
	}
	if wheel := g.input.Wheel(); wheel != 0 {
		g.camera.HandleZoom(wheel)
	}
}

// pick logs the frontmost sprite under the cursor.
func (g *Game) pick(x, y int) {
	w, h := g.window.PointSize()
	ray, ok := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h),
		g.camera.ViewProjection(g.window.Aspect()))
	if !ok {
		return
	}

	items := g.scene.LastBatch()
	worlds := make([]math.Mat4, len(items))
	for i, item := range items {
		worlds[i] = item.World
	}
	i, dist := picking.Nearest(ray, worlds)
	if i < 0 {
		g.log.Debug("pick missed", zap.Int("x", x), zap.Int("y", y))
		return
	}
	s := items[i].Sprite
	g.log.Info("sprite picked",
		zap.String("sprite", s.Name),
		zap.Stringer("orientation", s.Orientation),
		zap.Float32("distance", dist))
}

// screenshot saves the last presented frame.
func (g *Game) screenshot() {
	w, h := g.window.GetSize()
	gl.ReadBuffer(gl.FRONT)
	path, err := g.shots.CaptureFromPixels(debug.ReadFramebuffer(w, h), w, h)
	gl.ReadBuffer(gl.BACK)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene and window.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
