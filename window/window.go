package window

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"glbviewer/config"
	"glbviewer/interaction"
)

// Init starts glfw and sets the context hints. Call Terminate when done.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
}

func Terminate() {
	glfw.Terminate()
}

type Window struct {
	win *glfw.Window
}

// Open creates the window, makes its context current, loads the GL entry
// points and routes input to h.
func Open(cfg config.WindowConfig, h interaction.Handler) (*Window, error) {
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err = gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("load gl: %w", err)
	}
	w := &Window{win: win}
	w.registerEvent(h)
	return w, nil
}

func (w *Window) registerEvent(h interaction.Handler) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnResize(width, height)
	})
	w.win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		h.OnButton(buttonOf(button), actionOf(action), x, y)
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.OnMove(x, y)
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.OnScroll(xoff, yoff)
	})
}

// Run renders a frame, presents it and polls input until the window is
// asked to close. Input handled by a poll is seen by the next frame.
func (w *Window) Run(frame func()) {
	for !w.win.ShouldClose() {
		frame()
		w.win.SwapBuffers()
		glfw.PollEvents()
	}
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

func buttonOf(b glfw.MouseButton) interaction.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return interaction.ButtonLeft
	case glfw.MouseButtonRight:
		return interaction.ButtonRight
	case glfw.MouseButtonMiddle:
		return interaction.ButtonMiddle
	}
	return interaction.ButtonOther
}

func actionOf(a glfw.Action) interaction.Action {
	switch a {
	case glfw.Press:
		return interaction.Press
	case glfw.Repeat:
		return interaction.Repeat
	}
	return interaction.Release
}
