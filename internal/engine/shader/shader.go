// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"errors"
	"fmt"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	// ErrVertexCompile is returned when the vertex shader fails to compile.
	ErrVertexCompile = errors.New("vertex shader compilation failed")
	// ErrFragmentCompile is returned when the fragment shader fails to compile.
	ErrFragmentCompile = errors.New("fragment shader compilation failed")
	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("shader linking failed")
)

// Driver is the part of the GL API needed to build a program.
// Handles follow GL conventions: 0 is never a valid object.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error wrapping ErrVertexCompile, ErrFragmentCompile
// or ErrLink. No GL objects are left behind on failure.
func CompileProgram(d Driver, vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(d, vertexSrc, Vertex)
	if err != nil {
		return 0, err
	}
	defer d.DeleteShader(vertShader)

	fragShader, err := compileShader(d, fragmentSrc, Fragment)
	if err != nil {
		return 0, err
	}
	defer d.DeleteShader(fragShader)

	program := d.CreateProgram()
	d.AttachShader(program, vertShader)
	d.AttachShader(program, fragShader)
	d.LinkProgram(program)

	linked := d.ProgramLinked(program)
	var log string
	if !linked {
		log = d.ProgramInfoLog(program)
	}

	// The program keeps its own copy of the binaries once linked.
	d.DetachShader(program, vertShader)
	d.DetachShader(program, fragShader)

	if !linked {
		d.DeleteProgram(program)
		return 0, withLog(ErrLink, log)
	}

	return program, nil
}

// compileShader compiles a single shader for the given stage.
func compileShader(d Driver, source string, stage Stage) (uint32, error) {
	shader := d.CreateShader(stage)
	d.ShaderSource(shader, source)
	d.CompileShader(shader)

	if !d.ShaderCompiled(shader) {
		log := d.ShaderInfoLog(shader)
		d.DeleteShader(shader)
		if stage == Vertex {
			return 0, withLog(ErrVertexCompile, log)
		}
		return 0, withLog(ErrFragmentCompile, log)
	}

	return shader, nil
}

func withLog(err error, log string) error {
	log = strings.TrimRight(log, "\x00\r\n ")
	if log == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, log)
}

// UniformLocation returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func UniformLocation(d Driver, program uint32, name string) int32 {
	return d.GetUniformLocation(program, name)
}

// MustUniformLocation returns the uniform location for the given name.
// Panics if the uniform is not found (useful for required uniforms).
func MustUniformLocation(d Driver, program uint32, name string) int32 {
	loc := d.GetUniformLocation(program, name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %d", name, program))
	}
	return loc
}
