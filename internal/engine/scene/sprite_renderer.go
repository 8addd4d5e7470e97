package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/colonysim/internal/engine/scene/shaders"
	"github.com/Faultbox/colonysim/internal/engine/shader"
	"github.com/Faultbox/colonysim/internal/engine/sprite"
	"github.com/Faultbox/colonysim/pkg/math"
)

// SpriteRenderer draws billboard quads with a per-sprite world matrix.
type SpriteRenderer struct {
	program uint32

	locViewProj        int32
	locWorld           int32
	locFrameUV         int32
	locTexture         int32
	locTint            int32
	locSilhouette      int32
	locSilhouetteColor int32

	vao uint32
	vbo uint32
}

// NewSpriteRenderer compiles the sprite shader and uploads the unit quad.
func NewSpriteRenderer() (*SpriteRenderer, error) {
	sr := &SpriteRenderer{}

	program, err := shader.CompileProgram(shaders.SpriteVertexShader, shaders.SpriteFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sprite shader: %w", err)
	}
	sr.program = program

	locs, err := shader.RequireUniforms(program,
		"uViewProj", "uWorld", "uFrameUV", "uTexture", "uTint", "uSilhouette", "uSilhouetteColor")
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("sprite shader: %w", err)
	}
	sr.locViewProj = locs["uViewProj"]
	sr.locWorld = locs["uWorld"]
	sr.locFrameUV = locs["uFrameUV"]
	sr.locTexture = locs["uTexture"]
	sr.locTint = locs["uTint"]
	sr.locSilhouette = locs["uSilhouette"]
	sr.locSilhouetteColor = locs["uSilhouetteColor"]

	sr.createQuad()
	return sr, nil
}

func (sr *SpriteRenderer) createQuad() {
	vertices := sprite.GenerateBillboardQuadVertices()

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Begin binds the program and sets per-frame state.
func (sr *SpriteRenderer) Begin(viewProj math.Mat4) {
	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1i(sr.locTexture, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(sr.vao)
}

// End restores the state changed by Begin.
func (sr *SpriteRenderer) End() {
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
}

// Draw renders one sprite. Depth test and writes stay on.
func (sr *SpriteRenderer) Draw(item DrawItem, textureID uint32) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Uniform1i(sr.locSilhouette, 0)
	sr.draw(item, textureID, item.Tint)
}

// DrawSilhouette renders the flat-coloured outline with depth testing off,
// so it shows through anything drawn in front of the sprite.
func (sr *SpriteRenderer) DrawSilhouette(item DrawItem, textureID uint32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Uniform1i(sr.locSilhouette, 1)
	c := item.SilhouetteColor
	gl.Uniform4f(sr.locSilhouetteColor, c[0], c[1], c[2], c[3])
	sr.draw(item, textureID, item.Tint)
}

func (sr *SpriteRenderer) draw(item DrawItem, textureID uint32, tint [4]float32) {
	gl.UniformMatrix4fv(sr.locWorld, 1, false, item.World.Ptr())
	gl.Uniform4f(sr.locFrameUV, item.UV[0], item.UV[1], item.UV[2], item.UV[3])
	gl.Uniform4f(sr.locTint, tint[0], tint[1], tint[2], tint[3])
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// UploadTexture creates a GL texture from a sprite sheet. Sheets use nearest
// filtering so frame edges do not bleed into each other.
func UploadTexture(img *image.NRGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texID
}

// Destroy releases all resources.
func (sr *SpriteRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}
