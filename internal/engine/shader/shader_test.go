package shader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/glstate/internal/engine/gltest"
	"github.com/Faultbox/glstate/internal/engine/shader"
)

func TestCompileProgram(t *testing.T) {
	d := gltest.New()

	program, err := shader.CompileProgram(d, "vert", "frag")
	if err != nil {
		t.Fatalf("CompileProgram: %v", err)
	}
	if program != 3 {
		t.Errorf("expected program 3, got %d", program)
	}

	want := []string{
		"CreateShader(vertex)=1",
		"ShaderSource(1)",
		"CompileShader(1)",
		"CreateShader(fragment)=2",
		"ShaderSource(2)",
		"CompileShader(2)",
		"CreateProgram()=3",
		"AttachShader(3,1)",
		"AttachShader(3,2)",
		"LinkProgram(3)",
		"DetachShader(3,1)",
		"DetachShader(3,2)",
		"DeleteShader(2)",
		"DeleteShader(1)",
	}
	if diff := cmp.Diff(want, d.Calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}

	if live := d.LiveShaders(); len(live) != 0 {
		t.Errorf("shaders leaked: %v", live)
	}
	if diff := cmp.Diff([]uint32{3}, d.LivePrograms()); diff != "" {
		t.Errorf("live programs (-want +got):\n%s", diff)
	}
}

func TestCompileProgramFailures(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(d *gltest.Driver)
		wantErr    error
		wantLog    string
		lastCreate string
	}{
		{
			name: "vertex compile",
			setup: func(d *gltest.Driver) {
				d.CompileErrors[shader.Vertex] = "0:3(1): error: syntax error\n"
			},
			wantErr:    shader.ErrVertexCompile,
			wantLog:    "syntax error",
			lastCreate: "CreateShader(vertex)=1",
		},
		{
			name: "fragment compile",
			setup: func(d *gltest.Driver) {
				d.CompileErrors[shader.Fragment] = "undeclared identifier"
			},
			wantErr:    shader.ErrFragmentCompile,
			wantLog:    "undeclared identifier",
			lastCreate: "CreateShader(fragment)=2",
		},
		{
			name: "link",
			setup: func(d *gltest.Driver) {
				d.LinkError = "varying fColor not written"
			},
			wantErr:    shader.ErrLink,
			wantLog:    "varying fColor",
			lastCreate: "CreateProgram()=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gltest.New()
			tt.setup(d)

			program, err := shader.CompileProgram(d, "vert", "frag")
			if program != 0 {
				t.Errorf("expected program 0 on failure, got %d", program)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantLog) {
				t.Errorf("error %q should carry the driver log %q", err, tt.wantLog)
			}

			if live := d.LiveShaders(); len(live) != 0 {
				t.Errorf("shaders leaked: %v", live)
			}
			if live := d.LivePrograms(); len(live) != 0 {
				t.Errorf("programs leaked: %v", live)
			}

			var creates []string
			for _, c := range d.Calls {
				if strings.HasPrefix(c, "Create") {
					creates = append(creates, c)
				}
			}
			if got := creates[len(creates)-1]; got != tt.lastCreate {
				t.Errorf("expected last object created to be %s, got %s", tt.lastCreate, got)
			}
		})
	}
}

func TestLinkFailureDetachesBeforeDelete(t *testing.T) {
	d := gltest.New()
	d.LinkError = "boom"

	if _, err := shader.CompileProgram(d, "vert", "frag"); err == nil {
		t.Fatal("expected link error")
	}

	detach, del := -1, -1
	for i, c := range d.Calls {
		switch c {
		case "DetachShader(3,2)":
			detach = i
		case "DeleteProgram(3)":
			del = i
		}
	}
	if detach < 0 || del < 0 || detach > del {
		t.Errorf("shaders must be detached from program 3 before it is deleted: %v", d.Calls)
	}
}

func TestEmptyInfoLog(t *testing.T) {
	d := gltest.New()
	d.CompileErrors[shader.Vertex] = "\x00"

	_, err := shader.CompileProgram(d, "vert", "frag")
	if err != shader.ErrVertexCompile {
		t.Errorf("expected bare ErrVertexCompile for empty log, got %v", err)
	}
}

func TestUniformLocation(t *testing.T) {
	d := gltest.New()
	d.Uniforms = []string{"modelViewMatrix", "projectionMatrix"}

	program, err := shader.CompileProgram(d, "vert", "frag")
	if err != nil {
		t.Fatalf("CompileProgram: %v", err)
	}

	if loc := shader.UniformLocation(d, program, "projectionMatrix"); loc != 1 {
		t.Errorf("expected location 1, got %d", loc)
	}
	if loc := shader.UniformLocation(d, program, "missing"); loc != -1 {
		t.Errorf("expected -1 for missing uniform, got %d", loc)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustUniformLocation should panic for a missing uniform")
		}
	}()
	shader.MustUniformLocation(d, program, "missing")
}

func TestStageString(t *testing.T) {
	if shader.Vertex.String() != "vertex" || shader.Fragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", shader.Vertex, shader.Fragment)
	}
	if got := shader.Stage(7).String(); got != "stage(7)" {
		t.Errorf("unexpected unknown stage name %q", got)
	}
}
