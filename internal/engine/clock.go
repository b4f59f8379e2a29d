package engine

import "github.com/go-gl/glfw/v3.3/glfw"

// GLFWClock reports simulated time using glfw's timer.
// A frame that took longer than MaxDelta is reported as MaxDelta so a
// stalled window does not fling arrows through the target. Time advances
// by the reported delta only, so it always equals the sum of all deltas.
type GLFWClock struct {
	MaxDelta float32

	now     func() float64
	last    float64
	elapsed float64
	started bool
}

func NewGLFWClock() *GLFWClock {
	return &GLFWClock{MaxDelta: 0.1, now: glfw.GetTime}
}

func (c *GLFWClock) Tick() (float32, float32) {
	now := c.now()
	if !c.started {
		c.last, c.started = now, true
	}

	dt := now - c.last
	if dt < 0 {
		dt = 0
	}
	if c.MaxDelta > 0 && dt > float64(c.MaxDelta) {
		dt = float64(c.MaxDelta)
	}
	if now > c.last {
		c.last = now
	}
	c.elapsed += dt
	return float32(c.elapsed), float32(dt)
}
