package lighting

import "testing"

func TestBufferAdd(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.Add(PointLight{Position: [3]float32{float32(i), 0, 0}}) {
			t.Fatalf("Add %d should succeed", i)
		}
	}
	if b.Add(PointLight{}) {
		t.Error("Add should fail once the buffer is full")
	}
	if b.Count() != MaxPointLights {
		t.Errorf("expected %d lights, got %d", MaxPointLights, b.Count())
	}
}

func TestBufferSetTruncates(t *testing.T) {
	b := NewBuffer()
	lights := make([]PointLight, 5)

	if dropped := b.Set(lights); dropped != 2 {
		t.Errorf("expected 2 dropped lights, got %d", dropped)
	}
	if b.Count() != MaxPointLights {
		t.Errorf("expected %d lights, got %d", MaxPointLights, b.Count())
	}

	b.Set(nil)
	if b.Count() != 0 {
		t.Errorf("Set(nil) should empty the buffer, got %d", b.Count())
	}
}

func TestBufferClampsColors(t *testing.T) {
	b := NewBuffer()
	b.Add(PointLight{
		Diffuse:  [4]float32{2, -1, 0.5, 1},
		Specular: [4]float32{1.5, 1.5, 1.5, 1.5},
	})

	l := b.Lights()[0]
	if l.Diffuse != [4]float32{1, 0, 0.5, 1} {
		t.Errorf("diffuse not clamped: %v", l.Diffuse)
	}
	if l.Specular != [4]float32{1, 1, 1, 1} {
		t.Errorf("specular not clamped: %v", l.Specular)
	}
}

func TestMaterialClamped(t *testing.T) {
	tests := []struct {
		name      string
		shininess float32
		want      float32
	}{
		{"negative", -4, 0},
		{"in range", 32, 32},
		{"too shiny", 500, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			m.Shininess = tt.shininess
			if got := m.Clamped().Shininess; got != tt.want {
				t.Errorf("shininess %f clamped to %f, want %f", tt.shininess, got, tt.want)
			}
		})
	}
}
