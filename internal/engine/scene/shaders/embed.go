// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SpriteVertexShader places the unit quad with a resolved world matrix.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader samples the sheet, or fills the silhouette colour.
//
//go:embed sprite.frag
var SpriteFragmentShader string
