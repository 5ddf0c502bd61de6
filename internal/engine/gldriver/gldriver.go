// Package gldriver implements the shader and uniform drivers on top of the
// OpenGL 2.1 bindings. GLSL 1.20 relies on the fixed-function attribute
// names (gl_Vertex, gl_Normal, ...), so a compatibility context is required.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glstate/internal/engine/shader"
	"github.com/Faultbox/glstate/internal/logger"
)

// Driver issues real GL calls. It must be used on the thread that owns the context.
type Driver struct{}

// Init loads the GL function pointers for the current context.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func Init() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return &Driver{}, nil
}

func (*Driver) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.Vertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (*Driver) ShaderSource(s uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(s, 1, csource, nil)
}

func (*Driver) CompileShader(s uint32) { gl.CompileShader(s) }

func (*Driver) ShaderCompiled(s uint32) bool {
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ShaderInfoLog(s uint32) string {
	var logLen int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(s, logLen, nil, gl.Str(log))
	return gl.GoStr(gl.Str(log))
}

func (*Driver) DeleteShader(s uint32) { gl.DeleteShader(s) }

func (*Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Driver) AttachShader(p, s uint32) { gl.AttachShader(p, s) }

func (*Driver) DetachShader(p, s uint32) { gl.DetachShader(p, s) }

func (*Driver) LinkProgram(p uint32) { gl.LinkProgram(p) }

func (*Driver) ProgramLinked(p uint32) bool {
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ProgramInfoLog(p uint32) string {
	var logLen int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(p, logLen, nil, gl.Str(log))
	return gl.GoStr(gl.Str(log))
}

func (*Driver) DeleteProgram(p uint32) { gl.DeleteProgram(p) }

func (*Driver) UseProgram(p uint32) { gl.UseProgram(p) }

func (*Driver) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (*Driver) Uniform1i(loc, v int32) { gl.Uniform1i(loc, v) }

func (*Driver) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (*Driver) Uniform3f(loc int32, v [3]float32) { gl.Uniform3fv(loc, 1, &v[0]) }

func (*Driver) Uniform4f(loc int32, v [4]float32) { gl.Uniform4fv(loc, 1, &v[0]) }

func (*Driver) UniformMatrix3(loc int32, m [9]float32) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (*Driver) UniformMatrix4(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
