// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ChunkVertexShader is the vertex shader for terrain chunks.
//
//go:embed chunk.vert
var ChunkVertexShader string

// ChunkFragmentShader is the fragment shader for terrain chunks.
//
//go:embed chunk.frag
var ChunkFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
