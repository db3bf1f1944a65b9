package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gridmesh/internal/engine/scene/shaders"
	"github.com/Faultbox/gridmesh/internal/engine/shader"
	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/internal/streaming"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// chunkBuffers is the GPU state of one spawned chunk.
type chunkBuffers struct {
	name       string
	chunk      grid.Vertex
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	model      math.Mat4
	color      [4]float32
}

// ChunkRenderer uploads chunk meshes and draws them. It is the
// streaming.Host of the viewer.
type ChunkRenderer struct {
	program *shader.Program

	next   streaming.Handle
	chunks map[streaming.Handle]*chunkBuffers
	log    *zap.Logger
}

var _ streaming.Host = (*ChunkRenderer)(nil)

// NewChunkRenderer compiles the chunk shader.
func NewChunkRenderer() (*ChunkRenderer, error) {
	program, err := shader.Compile(shaders.ChunkVertexShader, shaders.ChunkFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("chunk shader: %w", err)
	}

	return &ChunkRenderer{
		program: program,
		chunks:  make(map[streaming.Handle]*chunkBuffers),
		log:     logger.Named("scene"),
	}, nil
}

// Spawn uploads s.Mesh and returns the handle that draws it.
func (r *ChunkRenderer) Spawn(s streaming.Spawn) streaming.Handle {
	r.next++
	h := r.next

	b := &chunkBuffers{
		name:  s.Name,
		chunk: s.Chunk,
		model: math.Translate(s.Offset),
		color: terrain.UnconfiguredMaterial.Color,
	}
	if m := s.Material.OrDefault().Material; m != nil {
		b.color = m.Color
	}
	if s.Mesh != nil && len(s.Mesh.Indices) > 0 {
		b.upload(s.Mesh.Vertices, s.Mesh.Indices)
	}
	r.chunks[h] = b

	r.log.Debug("chunk uploaded",
		zap.Uint64("handle", uint64(h)),
		zap.String("name", s.Name),
		zap.Int32("indices", b.indexCount),
	)
	return h
}

// Despawn frees the buffers behind h. Unknown handles are ignored.
func (r *ChunkRenderer) Despawn(h streaming.Handle) {
	b, ok := r.chunks[h]
	if !ok {
		return
	}
	b.release()
	delete(r.chunks, h)

	r.log.Debug("chunk released",
		zap.Uint64("handle", uint64(h)),
		zap.String("name", b.name),
		zap.Stringer("chunk", b.chunk),
	)
}

// Len returns the number of live chunks.
func (r *ChunkRenderer) Len() int {
	return len(r.chunks)
}

func (b *chunkBuffers) upload(vertices []terrain.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	// VBO
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	b.indexCount = int32(len(indices))
}

func (b *chunkBuffers) release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}

// Render draws every live chunk.
func (r *ChunkRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3, light Lighting) {
	if len(r.chunks) == 0 {
		return
	}

	p := r.program
	p.Use()

	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(p.Uniform("uCameraPos"), cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(p.Uniform("uLightDir"), light.Direction[0], light.Direction[1], light.Direction[2])
	gl.Uniform3f(p.Uniform("uAmbient"), light.Ambient[0], light.Ambient[1], light.Ambient[2])
	gl.Uniform3f(p.Uniform("uDiffuse"), light.Diffuse[0], light.Diffuse[1], light.Diffuse[2])

	if light.FogEnabled {
		gl.Uniform1i(p.Uniform("uFogUse"), 1)
		gl.Uniform1f(p.Uniform("uFogNear"), light.FogNear)
		gl.Uniform1f(p.Uniform("uFogFar"), light.FogFar)
		gl.Uniform3f(p.Uniform("uFogColor"), light.FogColor[0], light.FogColor[1], light.FogColor[2])
	} else {
		gl.Uniform1i(p.Uniform("uFogUse"), 0)
	}

	locModel := p.Uniform("uModel")
	locColor := p.Uniform("uColor")
	for _, b := range r.chunks {
		if b.vao == 0 {
			continue
		}
		gl.UniformMatrix4fv(locModel, 1, false, b.model.Ptr())
		gl.Uniform4f(locColor, b.color[0], b.color[1], b.color[2], b.color[3])
		gl.BindVertexArray(b.vao)
		gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (r *ChunkRenderer) Destroy() {
	for h, b := range r.chunks {
		b.release()
		delete(r.chunks, h)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
