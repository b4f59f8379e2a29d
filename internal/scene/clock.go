package scene

// Clock supplies one (time, deltaTime) pair per frame. Time never decreases
// and deltaTime is never negative.
type Clock interface {
	Tick() (time, deltaTime float32)
}

// StepClock advances by a fixed step on every tick
type StepClock struct {
	Step float32
	time float32
}

func NewStepClock(step float32) *StepClock {
	if step < 0 {
		step = 0
	}
	return &StepClock{Step: step}
}

func (c *StepClock) Tick() (float32, float32) {
	c.time += c.Step
	return c.time, c.Step
}

func (c *StepClock) Now() float32 {
	return c.time
}
