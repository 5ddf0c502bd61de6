// Package glstate owns the scene shader program: it compiles the embedded
// vertex/fragment pair, makes the result the active program and feeds it
// the transform, light and material uniforms the shaders declare.
package glstate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/glstate/internal/engine/shader"
	"github.com/Faultbox/glstate/internal/engine/shaders"
	"github.com/Faultbox/glstate/internal/logger"
)

// Driver is the GL surface used by State.
type Driver interface {
	shader.Driver

	UseProgram(program uint32)
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v [3]float32)
	Uniform4f(location int32, v [4]float32)
	UniformMatrix3(location int32, m [9]float32)
	UniformMatrix4(location int32, m [16]float32)
}

// State holds the active scene program.
// It must only be used from the goroutine that owns the GL context.
type State struct {
	driver   Driver
	program  uint32
	uniforms map[string]int32
}

// New creates a State with no program. Call CompileShaders before drawing.
func New(d Driver) *State {
	return &State{
		driver:   d,
		uniforms: make(map[string]int32),
	}
}

// Program returns the active program handle, or 0 if none is linked.
func (s *State) Program() uint32 {
	return s.program
}

// CompileShaders compiles and links the embedded scene shaders and binds the
// program for subsequent rendering. Failures are logged and reported as false.
func (s *State) CompileShaders() bool {
	err := s.Compile()
	switch {
	case err == nil:
		return true
	case errors.Is(err, shader.ErrVertexCompile):
		logger.Error("FATAL: Vertex shader compilation failed.", zap.Error(err))
	case errors.Is(err, shader.ErrFragmentCompile):
		logger.Error("FATAL: Fragment shader compilation failed.", zap.Error(err))
	case errors.Is(err, shader.ErrLink):
		logger.Error("FATAL: Shader linking failed.", zap.Error(err))
	default:
		logger.Error("FATAL: shader program setup failed.", zap.Error(err))
	}
	return false
}

// Compile is CompileShaders with the underlying error instead of a flag.
// On failure any previously active program is released and Program returns 0.
func (s *State) Compile() error {
	program, err := shader.CompileProgram(s.driver, shaders.SceneVertexShader, shaders.SceneFragmentShader)
	s.release()
	if err != nil {
		return err
	}

	s.program = program
	s.driver.UseProgram(program)

	logger.Debug("scene program active", zap.Uint32("program", program))
	return nil
}

// Close deletes the active program.
func (s *State) Close() {
	s.release()
}

func (s *State) release() {
	if s.program == 0 {
		return
	}
	s.driver.UseProgram(0)
	s.driver.DeleteProgram(s.program)
	s.program = 0
	clear(s.uniforms)
}

// location returns the cached location of a uniform, -1 if the program has no
// such active uniform.
func (s *State) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := shader.UniformLocation(s.driver, s.program, name)
	if loc < 0 {
		logger.Debug("uniform inactive", zap.String("name", name))
	}
	s.uniforms[name] = loc
	return loc
}
