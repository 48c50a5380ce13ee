package interaction

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Handler receives window events. The window layer translates toolkit
// callbacks into these calls.
type Handler interface {
	OnResize(width, height int)
	OnButton(button MouseButton, action Action, x, y float64)
	OnMove(x, y float64)
	OnScroll(xoff, yoff float64)
}

var _ Handler = (*Controller)(nil)

// Controller routes input to a State. Only the left button orbits.
type Controller struct {
	state       *State
	sensitivity float32
	viewport    func(width, height int)

	fbWidth, fbHeight int
}

// NewController binds input to state. viewport, if set, is invoked on every
// framebuffer resize.
func NewController(state *State, sensitivity float32, viewport func(width, height int)) *Controller {
	return &Controller{state: state, sensitivity: sensitivity, viewport: viewport}
}

func (c *Controller) State() *State { return c.state }

func (c *Controller) OnResize(width, height int) {
	c.fbWidth, c.fbHeight = width, height
	if c.viewport != nil {
		c.viewport(width, height)
	}
}

func (c *Controller) OnButton(button MouseButton, action Action, x, y float64) {
	if button != ButtonLeft {
		return
	}
	switch action {
	case Press:
		c.state.Press(float32(x), float32(y))
	case Release:
		c.state.Release()
	}
}

func (c *Controller) OnMove(x, y float64) {
	c.state.Move(float32(x), float32(y), c.sensitivity)
}

func (c *Controller) OnScroll(_, yoff float64) {
	c.state.Scroll(float32(yoff))
}

// FramebufferSize is the last size seen by OnResize, zero before the first.
func (c *Controller) FramebufferSize() (width, height int) {
	return c.fbWidth, c.fbHeight
}
