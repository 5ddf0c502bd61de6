package lighting

// Material describes how a surface responds to ambient, diffuse and specular light.
type Material struct {
	Ambient   [4]float32 `yaml:"ambient"`
	Diffuse   [4]float32 `yaml:"diffuse"`
	Specular  [4]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// DefaultMaterial returns the fixed-function GL default material.
func DefaultMaterial() Material {
	return Material{
		Ambient:   [4]float32{0.2, 0.2, 0.2, 1.0},
		Diffuse:   [4]float32{0.8, 0.8, 0.8, 1.0},
		Specular:  [4]float32{0.0, 0.0, 0.0, 1.0},
		Shininess: 0,
	}
}

// Clamped returns a copy with colors in 0-1 and shininess in 0-128.
func (m Material) Clamped() Material {
	m.Ambient = ClampColor(m.Ambient)
	m.Diffuse = ClampColor(m.Diffuse)
	m.Specular = ClampColor(m.Specular)
	if m.Shininess < 0 {
		m.Shininess = 0
	}
	if m.Shininess > 128 {
		m.Shininess = 128
	}
	return m
}
