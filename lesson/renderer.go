// Package lesson renders the rotating colored triangle of the OpenGL ES
// lessons.
//
// A host owns the GL context and drives a Renderer through its lifecycle:
// Init once the context is current, Resize whenever the drawable changes
// size, Draw once per frame and Release before the context goes away. All
// calls happen on the host's render goroutine and never overlap.
package lesson

import (
	"errors"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"github.com/kehaowei/opengl-lessons/glmat"
)

// Renderer is driven by a host that owns a GL context.
type Renderer interface {
	Init(glctx gl.Context, caps Capabilities)
	Resize(width, height int)
	Draw(elapsedMillis uint64)
	Release()
}

// Triangle draws a single triangle spinning about the Z axis.
//
// If either shader fails to compile or the program fails to link the
// failure is logged and Draw only clears the screen.
type Triangle struct {
	cfg Config

	gl      gl.Context
	program gl.Program
	buf     gl.Buffer

	mvp      gl.Uniform
	position gl.Attrib
	color    gl.Attrib

	view       f32.Mat4
	projection f32.Mat4
	mvpColMaj  [16]float32
}

var _ Renderer = (*Triangle)(nil)

// NewTriangle returns a Triangle rendering the scene described by cfg.
func NewTriangle(cfg Config) *Triangle {
	return &Triangle{cfg: cfg}
}

// Init compiles the shaders, uploads the vertex buffer and fixes the
// camera.
func (t *Triangle) Init(glctx gl.Context, caps Capabilities) {
	t.gl = glctx
	log := Logger()
	log.Debug("initializing triangle renderer", "gl", caps.String())

	c := t.cfg.ClearColor
	t.gl.ClearColor(c[0], c[1], c[2], c[3])
	t.view = glmat.LookAt(f32.Vec3(t.cfg.Eye), f32.Vec3(t.cfg.Target), f32.Vec3(t.cfg.Up))

	program, err := createProgram(t.gl, t.cfg.vertexSource(), t.cfg.fragmentSource())
	if err != nil {
		var serr *ShaderError
		if errors.As(err, &serr) {
			log.Error("error creating GL program, rendering disabled", "err", err, "source", serr.Source)
		} else {
			log.Error("error creating GL program, rendering disabled", "err", err)
		}
		t.program = gl.Program{}
		return
	}
	t.program = program

	t.mvp = t.gl.GetUniformLocation(t.program, mvpUniformName)
	t.position = t.gl.GetAttribLocation(t.program, positionAttribName)
	t.color = t.gl.GetAttribLocation(t.program, colorAttribName)

	t.buf = t.gl.CreateBuffer()
	t.gl.BindBuffer(gl.ARRAY_BUFFER, t.buf)
	t.gl.BufferData(gl.ARRAY_BUFFER, triangleVertexData, gl.STATIC_DRAW)
}

// Ready reports whether Init produced a usable program.
func (t *Triangle) Ready() bool {
	return t.program.Value != 0
}

// Resize sets the viewport and recomputes the projection. The height spans
// [-1, 1] at the near plane and the width follows the aspect ratio. A zero
// dimension produces the zero projection, which collapses every vertex.
func (t *Triangle) Resize(width, height int) {
	if t.gl != nil {
		t.gl.Viewport(0, 0, width, height)
	}
	t.projection = Projection(width, height, t.cfg.Near, t.cfg.Far)
}

// Projection returns the lesson perspective for a width x height drawable.
func Projection(width, height int, near, far float32) f32.Mat4 {
	if width <= 0 || height <= 0 {
		return f32.Mat4{}
	}
	ratio := float32(width) / float32(height)
	return glmat.Frustum(-ratio, ratio, -1, 1, near, far)
}

// Draw clears the screen and draws the triangle rotated for the given
// point in the animation.
func (t *Triangle) Draw(elapsedMillis uint64) {
	if t.gl == nil {
		return
	}
	t.gl.Clear(gl.DEPTH_BUFFER_BIT | gl.COLOR_BUFFER_BIT)
	if !t.Ready() {
		return
	}

	model := glmat.RotateZ(Angle(elapsedMillis, t.cfg.PeriodMillis))
	mvp := ModelViewProjection(t.projection, t.view, model)
	glmat.Serialize4(t.mvpColMaj[:], &mvp)

	t.gl.UseProgram(t.program)
	t.gl.UniformMatrix4fv(t.mvp, t.mvpColMaj[:])

	t.gl.BindBuffer(gl.ARRAY_BUFFER, t.buf)
	t.gl.EnableVertexAttribArray(t.position)
	t.gl.VertexAttribPointer(t.position, positionDataSize, gl.FLOAT, false, strideBytes, positionOffset)
	t.gl.EnableVertexAttribArray(t.color)
	t.gl.VertexAttribPointer(t.color, colorDataSize, gl.FLOAT, false, strideBytes, colorOffset)

	t.gl.DrawArrays(gl.TRIANGLES, 0, triangleVertexCount)

	t.gl.DisableVertexAttribArray(t.position)
	t.gl.DisableVertexAttribArray(t.color)
}

// ModelViewProjection combines the three transforms as
// projection * (view * model).
func ModelViewProjection(projection, view, model f32.Mat4) f32.Mat4 {
	return glmat.Mul(projection, glmat.Mul(view, model))
}

// Release deletes the GL objects created by Init. The Triangle may be
// initialized again afterwards.
func (t *Triangle) Release() {
	if t.gl == nil {
		return
	}
	if t.program.Value != 0 {
		t.gl.DeleteProgram(t.program)
	}
	if t.buf.Value != 0 {
		t.gl.DeleteBuffer(t.buf)
	}
	t.program = gl.Program{}
	t.buf = gl.Buffer{}
	t.gl = nil
}
