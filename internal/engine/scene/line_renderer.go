package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gridmesh/internal/engine/debug"
	"github.com/Faultbox/gridmesh/internal/engine/scene/shaders"
	"github.com/Faultbox/gridmesh/internal/engine/shader"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// LineRenderer draws debug line lists. The vertex buffer is replaced on
// every Update.
type LineRenderer struct {
	program  *shader.Program
	vao      uint32
	vbo      uint32
	capacity int
	count    int32
}

// NewLineRenderer compiles the line shader and allocates its buffers.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := shader.Compile(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	lr := &LineRenderer{program: program}
	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)
	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)

	stride := int32(unsafe.Sizeof(debug.LineVertex{}))
	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return lr, nil
}

// Update replaces the drawn lines.
func (lr *LineRenderer) Update(vertices []debug.LineVertex) {
	lr.count = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	size := len(vertices) * int(unsafe.Sizeof(debug.LineVertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	if size > lr.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		lr.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&vertices[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the current lines.
func (lr *LineRenderer) Render(viewProj math.Mat4) {
	if lr.count == 0 {
		return
	}
	lr.program.Use()
	gl.UniformMatrix4fv(lr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (lr *LineRenderer) Destroy() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	lr.program.Delete()
}
