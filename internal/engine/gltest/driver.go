// Package gltest provides an in-memory GL driver for tests that need
// compile/link semantics without a GPU context.
package gltest

import (
	"fmt"
	"sort"

	"github.com/Faultbox/glstate/internal/engine/shader"
)

// Driver records every call and simulates object lifetimes.
// The zero value is not usable; call New.
type Driver struct {
	// Calls is the ordered log of driver calls, e.g. "CompileShader(1)".
	Calls []string

	// CompileErrors makes compilation of the given stage fail with the log text.
	CompileErrors map[shader.Stage]string
	// LinkError makes every link fail with the log text when non-empty.
	LinkError string
	// Uniforms lists the active uniforms of every linked program.
	// Names not present resolve to -1.
	Uniforms []string

	next     uint32
	stages   map[uint32]shader.Stage
	compiled map[uint32]bool
	programs map[uint32]bool
	linked   map[uint32]bool
	attached map[uint32]map[uint32]bool
	current  uint32
	values   map[int32]any
}

// New returns a driver where every compile and link succeeds.
func New() *Driver {
	return &Driver{
		CompileErrors: make(map[shader.Stage]string),
		stages:        make(map[uint32]shader.Stage),
		compiled:      make(map[uint32]bool),
		programs:      make(map[uint32]bool),
		linked:        make(map[uint32]bool),
		attached:      make(map[uint32]map[uint32]bool),
		values:        make(map[int32]any),
	}
}

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Driver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(stage shader.Stage) uint32 {
	id := d.alloc()
	d.stages[id] = stage
	d.record("CreateShader(%s)=%d", stage, id)
	return id
}

func (d *Driver) ShaderSource(s uint32, _ string) {
	d.record("ShaderSource(%d)", s)
}

func (d *Driver) CompileShader(s uint32) {
	d.record("CompileShader(%d)", s)
	_, fail := d.CompileErrors[d.stages[s]]
	d.compiled[s] = !fail
}

func (d *Driver) ShaderCompiled(s uint32) bool {
	return d.compiled[s]
}

func (d *Driver) ShaderInfoLog(s uint32) string {
	return d.CompileErrors[d.stages[s]]
}

func (d *Driver) DeleteShader(s uint32) {
	d.record("DeleteShader(%d)", s)
	delete(d.stages, s)
	delete(d.compiled, s)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.alloc()
	d.programs[id] = true
	d.attached[id] = make(map[uint32]bool)
	d.record("CreateProgram()=%d", id)
	return id
}

func (d *Driver) AttachShader(p, s uint32) {
	d.record("AttachShader(%d,%d)", p, s)
	d.attached[p][s] = true
}

func (d *Driver) DetachShader(p, s uint32) {
	d.record("DetachShader(%d,%d)", p, s)
	delete(d.attached[p], s)
}

func (d *Driver) LinkProgram(p uint32) {
	d.record("LinkProgram(%d)", p)
	d.linked[p] = d.LinkError == ""
}

func (d *Driver) ProgramLinked(p uint32) bool {
	return d.linked[p]
}

func (d *Driver) ProgramInfoLog(uint32) string {
	return d.LinkError
}

func (d *Driver) DeleteProgram(p uint32) {
	d.record("DeleteProgram(%d)", p)
	delete(d.programs, p)
	delete(d.linked, p)
	delete(d.attached, p)
	if d.current == p {
		d.current = 0
	}
}

func (d *Driver) UseProgram(p uint32) {
	d.record("UseProgram(%d)", p)
	d.current = p
}

// GetUniformLocation resolves names by their index in Uniforms.
func (d *Driver) GetUniformLocation(p uint32, name string) int32 {
	if !d.linked[p] {
		return -1
	}
	for i, u := range d.Uniforms {
		if u == name {
			return int32(i)
		}
	}
	return -1
}

func (d *Driver) Uniform1i(loc, v int32) { d.values[loc] = v }
func (d *Driver) Uniform1f(loc int32, v float32) { d.values[loc] = v }
func (d *Driver) Uniform3f(loc int32, v [3]float32) { d.values[loc] = v }
func (d *Driver) Uniform4f(loc int32, v [4]float32) { d.values[loc] = v }
func (d *Driver) UniformMatrix3(loc int32, m [9]float32) { d.values[loc] = m }
func (d *Driver) UniformMatrix4(loc int32, m [16]float32) { d.values[loc] = m }

// Current returns the program bound by the last UseProgram call.
func (d *Driver) Current() uint32 {
	return d.current
}

// Value returns the last value uploaded to the named uniform.
func (d *Driver) Value(name string) (any, bool) {
	for i, u := range d.Uniforms {
		if u == name {
			v, ok := d.values[int32(i)]
			return v, ok
		}
	}
	return nil, false
}

// LiveShaders returns the handles of shaders that were created and not deleted.
func (d *Driver) LiveShaders() []uint32 {
	return sortedKeys(d.stages)
}

// LivePrograms returns the handles of programs that were created and not deleted.
func (d *Driver) LivePrograms() []uint32 {
	return sortedKeys(d.programs)
}

// Attached returns the shaders still attached to a program.
func (d *Driver) Attached(p uint32) []uint32 {
	return sortedKeys(d.attached[p])
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
