package engine

import (
	"fmt"
	"runtime"

	"Fletch3D/internal/logger"
	"Fletch3D/internal/renderer"
	"Fletch3D/internal/renderer/opengl"
	"Fletch3D/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Gopher owns the window and drives one scene: each frame it ticks the
// clock, advances and draws the scene, then swaps and polls input.
type Gopher struct {
	Width  int32
	Height int32
	Title  string
	VSync  bool
	Light  *renderer.Light
	Camera *renderer.Camera
	Scene  *scene.Scene
	Clock  scene.Clock

	window      *glfw.Window
	rend        *opengl.Renderer
	keyHandlers map[glfw.Key]func()
	onReady     func(rend *opengl.Renderer) error
	frames      uint64
}

func NewGopher(width, height int32, title string, s *scene.Scene) *Gopher {
	return &Gopher{
		Width:       width,
		Height:      height,
		Title:       title,
		VSync:       true,
		Light:       renderer.CreateLight(),
		Camera:      renderer.NewDefaultCamera(width, height),
		Scene:       s,
		keyHandlers: make(map[glfw.Key]func()),
	}
}

// OnReady runs once the GL context and renderer exist, before the first
// frame. Meshes must be uploaded from here.
func (gopher *Gopher) OnReady(fn func(rend *opengl.Renderer) error) {
	gopher.onReady = fn
}

// OnKey binds fn to a key press. Escape always closes the window.
func (gopher *Gopher) OnKey(key glfw.Key, fn func()) {
	gopher.keyHandlers[key] = fn
}

func (gopher *Gopher) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (gopher *Gopher) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

// Render opens the window at (x, y) and blocks until it is closed
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	gopher.window = window
	defer window.Destroy()

	window.MakeContextCurrent()
	if gopher.VSync {
		glfw.SwapInterval(1)
	}
	window.SetPos(x, y)
	window.SetKeyCallback(gopher.keyCallback)

	gopher.rend = opengl.NewRenderer()
	if err := gopher.rend.Init(gopher.Width, gopher.Height); err != nil {
		return err
	}
	defer gopher.rend.Cleanup()

	if gopher.onReady != nil {
		if err := gopher.onReady(gopher.rend); err != nil {
			return err
		}
	}
	if gopher.Clock == nil {
		gopher.Clock = NewGLFWClock()
	}

	logger.Log.Info("Window open",
		zap.Int32("width", gopher.Width), zap.Int32("height", gopher.Height), zap.String("title", gopher.Title))
	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastWidth, lastHeight := gopher.Width, gopher.Height

	for !gopher.window.ShouldClose() {
		width, height := gopher.window.GetFramebufferSize()
		if int32(width) != lastWidth || int32(height) != lastHeight {
			lastWidth, lastHeight = int32(width), int32(height)
			gopher.rend.UpdateViewport(lastWidth, lastHeight)
			if lastHeight > 0 {
				gopher.Camera.SetAspectRatio(float32(lastWidth) / float32(lastHeight))
			}
		}

		now, dt := gopher.Clock.Tick()
		ctx := renderer.NewContext(gopher.Camera, gopher.Light, now)

		gopher.rend.BeginFrame()
		gopher.Scene.Frame(ctx, now, dt)

		gopher.window.SwapBuffers()
		gopher.frames++
		glfw.PollEvents()
	}
	logger.Log.Info("Window closed", zap.Uint64("frames", gopher.frames))
}

func (gopher *Gopher) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	if fn, ok := gopher.keyHandlers[key]; ok {
		fn()
	}
}

// Frames is the number of frames presented so far
func (gopher *Gopher) Frames() uint64 {
	return gopher.frames
}
