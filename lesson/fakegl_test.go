package lesson

import (
	"strings"

	"golang.org/x/mobile/gl"
)

// fakeGL records the calls a renderer makes. Calls it does not implement
// panic through the nil embedded interface.
type fakeGL struct {
	gl.Context

	calls []string
	next  uint32

	shaderSrc map[gl.Shader]string // compile fails for sources without main
	failLink  bool

	attribs   map[string]gl.Attrib
	uniform   []float32
	deleted   []string
	drawCount int
	viewport  [4]int
	bufData   []byte
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaderSrc: make(map[gl.Shader]string),
		attribs:   make(map[string]gl.Attrib),
	}
}

func (f *fakeGL) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeGL) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	f.record("CreateShader")
	return gl.Shader{Value: f.id()}
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource")
	f.shaderSrc[s] = src
}

func (f *fakeGL) CompileShader(s gl.Shader) { f.record("CompileShader") }

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi")
	if pname == gl.COMPILE_STATUS && strings.Contains(f.shaderSrc[s], "void main()") {
		return 1
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog")
	return "0:1: syntax error"
}

func (f *fakeGL) DeleteShader(s gl.Shader) {
	f.record("DeleteShader")
	f.deleted = append(f.deleted, "shader")
}

func (f *fakeGL) CreateProgram() gl.Program {
	f.record("CreateProgram")
	return gl.Program{Init: true, Value: f.id()}
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) { f.record("AttachShader") }

func (f *fakeGL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.record("BindAttribLocation")
	f.attribs[name] = a
}

func (f *fakeGL) LinkProgram(p gl.Program) { f.record("LinkProgram") }

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami")
	if pname == gl.LINK_STATUS && !f.failLink {
		return 1
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog")
	return "varying v_Color not written"
}

func (f *fakeGL) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram")
	f.deleted = append(f.deleted, "program")
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation")
	return gl.Uniform{Value: 7}
}

func (f *fakeGL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	f.record("GetAttribLocation")
	return f.attribs[name]
}

func (f *fakeGL) UseProgram(p gl.Program) { f.record("UseProgram") }

func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor") }

func (f *fakeGL) Clear(mask gl.Enum) { f.record("Clear") }

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.record("Viewport")
	f.viewport = [4]int{x, y, width, height}
}

func (f *fakeGL) CreateBuffer() gl.Buffer {
	f.record("CreateBuffer")
	return gl.Buffer{Value: f.id()}
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) { f.record("BindBuffer") }

func (f *fakeGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData")
	f.bufData = src
}

func (f *fakeGL) DeleteBuffer(b gl.Buffer) {
	f.record("DeleteBuffer")
	f.deleted = append(f.deleted, "buffer")
}

func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	f.record("UniformMatrix4fv")
	f.uniform = append(f.uniform[:0], src...)
}

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) { f.record("EnableVertexAttribArray") }

func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) { f.record("DisableVertexAttribArray") }

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer")
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays")
	f.drawCount += count
}
