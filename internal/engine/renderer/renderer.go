// Package renderer draws the viewer scene with the active glstate program.
package renderer

import (
	stdmath "math"

	"github.com/go-gl/gl/v2.1/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glstate/internal/engine/glstate"
	"github.com/Faultbox/glstate/internal/engine/lighting"
	"github.com/Faultbox/glstate/internal/logger"
	"github.com/Faultbox/glstate/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	Ambient    [4]float32
	Lights     []lighting.PointLight
	Material   lighting.Material
}

// Renderer owns the per-frame GL state around the scene program.
type Renderer struct {
	config     Config
	state      *glstate.State
	lights     *lighting.Buffer
	projection math.Mat4
	view       math.Mat4
}

// New creates a new renderer bound to a compiled State.
// IMPORTANT: Must be called AFTER the program is compiled!
func New(cfg Config, state *glstate.State) *Renderer {
	r := &Renderer{
		config: cfg,
		state:  state,
		lights: lighting.NewBuffer(),
		view:   math.LookAt(math.Vec3{X: 0, Y: 0.8, Z: 3}, math.Vec3{}, math.Vec3{Y: 1}),
	}

	if dropped := r.lights.Set(cfg.Lights); dropped > 0 {
		logger.Warn("ignoring lights beyond shader limit",
			zap.Int("dropped", dropped),
			zap.Int("max", lighting.MaxPointLights),
		)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	r.Resize(cfg.Width, cfg.Height)
	r.uploadLighting()
	return r
}

// uploadLighting sends lights, ambient and material. Light positions are
// given in world space and moved to eye space here.
func (r *Renderer) uploadLighting() {
	eye := lighting.NewBuffer()
	for _, l := range r.lights.Lights() {
		l.Position = r.view.TransformPoint(l.Position)
		eye.Add(l)
	}
	r.state.SetLights(eye)
	r.state.SetAmbient(r.config.Ambient)
	r.state.SetMaterial(r.config.Material)
	r.state.SetTextMode(false)
	r.state.SetColorTexture(false)
	r.state.BindSamplers(0, 1)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = math.Perspective(stdmath.Pi/4, float32(width)/float32(height), 0.1, 100)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// DrawQuad draws a unit quad rotated by angle around Y, tilted toward the camera.
func (r *Renderer) DrawQuad(angle float32) {
	if r.state.Program() == 0 {
		return
	}
	model := math.RotateY(angle).Mul(math.RotateX(-0.3))
	r.state.SetTransforms(r.view.Mul(model), r.projection)

	// Fixed-function attributes feed gl_Vertex, gl_Normal, gl_Color and gl_MultiTexCoord0.
	gl.Begin(gl.QUADS)
	gl.Normal3f(0, 0, 1)
	gl.Color4f(0.9, 0.3, 0.2, 1)
	gl.MultiTexCoord2f(gl.TEXTURE0, 0, 0)
	gl.Vertex3f(-0.5, -0.5, 0)
	gl.Color4f(0.2, 0.9, 0.3, 1)
	gl.MultiTexCoord2f(gl.TEXTURE0, 1, 0)
	gl.Vertex3f(0.5, -0.5, 0)
	gl.Color4f(0.2, 0.3, 0.9, 1)
	gl.MultiTexCoord2f(gl.TEXTURE0, 1, 1)
	gl.Vertex3f(0.5, 0.5, 0)
	gl.Color4f(0.9, 0.9, 0.2, 1)
	gl.MultiTexCoord2f(gl.TEXTURE0, 0, 1)
	gl.Vertex3f(-0.5, 0.5, 0)
	gl.End()
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
