package lesson

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// ShaderError reports a shader stage that failed to compile.
type ShaderError struct {
	Stage  string // "vertex" or "fragment"
	Source string
	Log    string // driver info log
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("could not compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("could not link program: %s", e.Log)
}

func stageName(ty gl.Enum) string {
	switch ty {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", uint32(ty))
}

// loadShader compiles src as a shader of type ty. A shader that fails to
// compile is deleted.
func loadShader(glctx gl.Context, ty gl.Enum, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(ty)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("could not create %s shader", stageName(ty))
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		err := &ShaderError{Stage: stageName(ty), Source: src, Log: glctx.GetShaderInfoLog(shader)}
		glctx.DeleteShader(shader)
		return gl.Shader{}, err
	}
	return shader, nil
}

// createProgram compiles and links a program with the position and color
// attributes pinned to their fixed slots. On failure no GL objects are left
// behind and the zero program is returned.
func createProgram(glctx gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	vertex, err := loadShader(glctx, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return gl.Program{}, err
	}
	defer glctx.DeleteShader(vertex)

	fragment, err := loadShader(glctx, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return gl.Program{}, err
	}
	defer glctx.DeleteShader(fragment)

	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, fmt.Errorf("could not create program")
	}
	glctx.AttachShader(program, vertex)
	glctx.AttachShader(program, fragment)
	glctx.BindAttribLocation(program, gl.Attrib{Value: positionSlot}, positionAttribName)
	glctx.BindAttribLocation(program, gl.Attrib{Value: colorSlot}, colorAttribName)
	glctx.LinkProgram(program)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		err := &LinkError{Log: glctx.GetProgramInfoLog(program)}
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	return program, nil
}
