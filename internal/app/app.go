// Package app implements the viewer main loop.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glstate/internal/config"
	"github.com/Faultbox/glstate/internal/engine/debug"
	"github.com/Faultbox/glstate/internal/engine/gldriver"
	"github.com/Faultbox/glstate/internal/engine/glstate"
	"github.com/Faultbox/glstate/internal/engine/input"
	"github.com/Faultbox/glstate/internal/engine/renderer"
	"github.com/Faultbox/glstate/internal/engine/window"
	"github.com/Faultbox/glstate/internal/logger"
)

// ErrShaders is returned by New when the scene program cannot be built.
// The details have already been logged by glstate.
var ErrShaders = errors.New("scene shaders unavailable")

// App is the viewer instance.
type App struct {
	config      *config.Config
	running     bool
	window      *window.Window
	state       *glstate.State
	renderer    *renderer.Renderer
	input       *input.Input
	screenshots *debug.ScreenshotCapture
}

// New opens the window, loads GL and activates the scene program.
func New(cfg *config.Config) (*App, error) {
	a := &App{config: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Hidden:     cfg.Window.Hidden,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL entry points can only be loaded once a context is current.
	driver, err := gldriver.Init()
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.state = glstate.New(driver)
	if !a.state.CompileShaders() {
		a.window.Close()
		return nil, ErrShaders
	}

	width, height := a.window.GetDrawableSize()
	a.renderer = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Scene.ClearColor,
		Ambient:    cfg.Scene.Ambient,
		Lights:     cfg.Scene.Lights,
		Material:   cfg.Scene.Material,
	}, a.state)

	a.input = input.New()
	a.screenshots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "glview")

	logger.Info("viewer initialized", zap.Uint32("program", a.state.Program()))
	return a, nil
}

// Run starts the main loop and returns when the window is closed or ESC is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	var angle float32

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				// Event sizes are in window units; the viewport needs pixels.
				a.renderer.Resize(a.window.GetDrawableSize())
			}
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
		}

		angle += a.config.Scene.SpinSpeed * float32(dt)

		a.renderer.Begin()
		a.renderer.DrawQuad(angle)
		a.renderer.End()

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// screenshot reads the back buffer before it is swapped.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL objects and the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.state != nil {
		a.state.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
