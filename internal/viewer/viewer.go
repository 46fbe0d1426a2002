// Package viewer implements the interactive model viewing loop.
package viewer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"

	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/debug"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/input"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/model"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/renderer"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/scene"
	"github.com/LumineWollah/Projet-OpenGL-2025/internal/engine/window"
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	ModelPath   string
	TexturePath string
	Triangulate bool
	SpinSpeed   float64
}

// Viewer is the main viewer instance.
type Viewer struct {
	config      Config
	running     bool
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	mesh        *model.Mesh
	scene       *scene.Scene
	screenshots *debug.ScreenshotCapture

	angle            float32
	spinning         bool
	captureRequested bool
}

// New creates a new viewer instance and loads the model onto the GPU.
func New(cfg Config) (*Viewer, error) {
	slog.Info("initializing viewer",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"model", cfg.ModelPath,
	)

	v := &Viewer{
		config:   cfg,
		running:  false,
		spinning: true,
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	drawableW, drawableH := v.window.GetDrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  drawableW,
		Height: drawableH,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Load the model on the CPU, then hand it to the GPU scene
	mesh, err := model.LoadOBJ(cfg.ModelPath, cfg.Triangulate)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	slog.Info("model loaded",
		"path", cfg.ModelPath,
		"vertices", len(mesh.Vertices),
		"triangles", len(mesh.Indices)/3,
	)

	v.scene, err = scene.New(mesh, cfg.TexturePath)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	// The mesh backs the GPU buffers until Close releases both together
	v.mesh = mesh

	v.input = input.New()
	v.screenshots = debug.NewScreenshotCapture("screenshots", "viewer")

	slog.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the main viewer loop.
func (v *Viewer) Run() error {
	v.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for v.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			// Quit event received
			v.running = false
			break
		}

		// Handle events
		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				drawableW, drawableH := v.window.GetDrawableSize()
				v.renderer.Resize(drawableW, drawableH)
			case input.EventKeyDown:
				switch event.Key {
				case 41: // SDL_SCANCODE_ESCAPE
					v.running = false
				case 44: // SDL_SCANCODE_SPACE
					v.spinning = !v.spinning
				case 21: // SDL_SCANCODE_R
					v.angle = 0
				case 69: // SDL_SCANCODE_F12
					v.captureRequested = true
				}
			}
		}

		// 2. Advance the turntable
		if v.spinning {
			v.angle = math32.Mod(v.angle+float32(v.config.SpinSpeed*dt), 2*math32.Pi)
		}

		// 3. Render
		v.renderer.Begin()
		v.scene.Render(v.renderer.Aspect(), v.angle)
		v.renderer.End()

		// Capture before the swap so the finished frame is still in the back buffer
		if v.captureRequested {
			v.captureRequested = false
			drawableW, drawableH := v.window.GetDrawableSize()
			if path, err := v.screenshots.Capture(drawableW, drawableH); err != nil {
				slog.Warn("screenshot failed", "error", err)
			} else {
				slog.Info("screenshot saved", "path", path)
			}
		}

		// 4. Present (swap buffers)
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.mesh != nil {
		v.mesh.Release()
		v.mesh = nil
	}
	if v.window != nil {
		v.window.Close()
	}
}
