// Package lighting provides the point light and material model used by the scene shader.
package lighting

// MaxPointLights is the size of the lights array declared by the fragment shader.
const MaxPointLights = 3

// PointLight represents a point light source in eye space.
type PointLight struct {
	Position [3]float32 `yaml:"position"`
	Diffuse  [4]float32 `yaml:"diffuse"`
	Specular [4]float32 `yaml:"specular"`
}

// Buffer holds lights for GPU upload.
type Buffer struct {
	lights []PointLight
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.lights = b.lights[:0]
}

// Add adds a point light to the buffer.
// Returns false if buffer is full.
func (b *Buffer) Add(light PointLight) bool {
	if len(b.lights) >= MaxPointLights {
		return false
	}
	b.lights = append(b.lights, clampLight(light))
	return true
}

// Set replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary and reports how many were dropped.
func (b *Buffer) Set(lights []PointLight) int {
	b.Clear()
	dropped := 0
	for _, l := range lights {
		if !b.Add(l) {
			dropped++
		}
	}
	return dropped
}

// Count returns the number of lights in the buffer.
func (b *Buffer) Count() int {
	return len(b.lights)
}

// Lights returns the buffered lights. The slice must not be modified.
func (b *Buffer) Lights() []PointLight {
	return b.lights
}

func clampLight(l PointLight) PointLight {
	l.Diffuse = ClampColor(l.Diffuse)
	l.Specular = ClampColor(l.Specular)
	return l
}

// ClampColor clamps every channel to the 0-1 range.
func ClampColor(c [4]float32) [4]float32 {
	for i := range c {
		if c[i] > 1.0 {
			c[i] = 1.0
		}
		if c[i] < 0.0 {
			c[i] = 0.0
		}
	}
	return c
}
