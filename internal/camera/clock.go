package camera

// DefaultStep is the angle added on every update tick, in radians.
const DefaultStep = 0.005

// Clock is the scene's animation angle. It only moves forward; the angle is fed to
// trigonometric functions so it never needs to wrap.
type Clock struct {
	angle float32
	step  float32
}

// NewClock returns a clock at angle 0 advancing by step per tick.
func NewClock(step float32) *Clock {
	return &Clock{step: step}
}

// Advance moves the clock forward by one step.
func (c *Clock) Advance() {
	c.angle += c.step
}

// Angle returns the current angle.
func (c *Clock) Angle() float32 {
	return c.angle
}

// Step returns the per-tick increment.
func (c *Clock) Step() float32 {
	return c.step
}
