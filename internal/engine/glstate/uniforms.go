package glstate

import (
	"fmt"

	"github.com/Faultbox/glstate/internal/engine/lighting"
	"github.com/Faultbox/glstate/pkg/math"
)

// Uniform names declared by the scene shaders.
const (
	uModelView    = "modelViewMatrix"
	uProjection   = "projectionMatrix"
	uNormalMatrix = "normalMatrix"
	uContainsText = "containsText"
	uUseColorTex  = "useColorTex"
	uFontTex      = "fontTex"
	uColorTex     = "colorTex"
	uNumLights    = "numLights"
	uAmbient      = "g_ambient"
)

// setters skip uniforms the driver reports as inactive (-1).

func (s *State) set1i(name string, v int32) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.Uniform1i(loc, v)
	}
}

func (s *State) set1f(name string, v float32) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.Uniform1f(loc, v)
	}
}

func (s *State) set3f(name string, v [3]float32) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.Uniform3f(loc, v)
	}
}

func (s *State) set4f(name string, v [4]float32) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.Uniform4f(loc, v)
	}
}

func (s *State) setMat3(name string, m math.Mat3) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.UniformMatrix3(loc, m)
	}
}

func (s *State) setMat4(name string, m math.Mat4) {
	if s.program == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		s.driver.UniformMatrix4(loc, m)
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// SetTransforms uploads the model-view and projection matrices and the
// normal matrix derived from the model-view.
func (s *State) SetTransforms(modelView, projection math.Mat4) {
	s.setMat4(uModelView, modelView)
	s.setMat4(uProjection, projection)
	s.setMat3(uNormalMatrix, modelView.NormalMatrix())
}

// SetLights uploads the buffered point lights. Positions are in eye space.
func (s *State) SetLights(b *lighting.Buffer) {
	s.set1i(uNumLights, int32(b.Count()))
	for i, l := range b.Lights() {
		s.set3f(fmt.Sprintf("lights[%d].position", i), l.Position)
		s.set4f(fmt.Sprintf("lights[%d].diffuse", i), l.Diffuse)
		s.set4f(fmt.Sprintf("lights[%d].specular", i), l.Specular)
	}
}

// SetAmbient sets the global ambient light color.
func (s *State) SetAmbient(c [4]float32) {
	s.set4f(uAmbient, lighting.ClampColor(c))
}

// SetMaterial uploads the surface material.
func (s *State) SetMaterial(m lighting.Material) {
	m = m.Clamped()
	s.set4f("material.ambient", m.Ambient)
	s.set4f("material.diffuse", m.Diffuse)
	s.set4f("material.specular", m.Specular)
	s.set1f("material.shininess", m.Shininess)
}

// SetTextMode switches the fragment stage between glyph sampling and lit shading.
func (s *State) SetTextMode(containsText bool) {
	s.set1i(uContainsText, boolInt(containsText))
}

// SetColorTexture enables sampling the color texture instead of vertex colors.
func (s *State) SetColorTexture(enabled bool) {
	s.set1i(uUseColorTex, boolInt(enabled))
}

// BindSamplers assigns texture units to the font and color samplers.
func (s *State) BindSamplers(fontUnit, colorUnit int32) {
	s.set1i(uFontTex, fontUnit)
	s.set1i(uColorTex, colorUnit)
}
