// Package sheet drives the vertical drag that morphs the week strip into the
// month grid.
package sheet

import (
	"log"
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	minThreshold     = 1.0
	defaultFrameRate = 60

	springFrequency = 10.0
	springDamping   = 1.0

	restEpsilon = 0.01
)

// Mode is the discrete side of the sheet.
type Mode int

const (
	Collapsed Mode = iota
	Expanded
)

func (m Mode) String() string {
	if m == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Options configure a Controller.
type Options struct {
	Threshold float64
	FrameRate int
	Start     Mode
	// OnModeChange fires once per threshold crossing.
	OnModeChange func(Mode)
}

// Controller owns the drag value d in [0, T]. d = 0 shows the week strip and
// d = T the full month grid.
type Controller struct {
	threshold float64
	value     float64
	velocity  float64
	target    float64
	dragging  bool
	animating bool
	mode      Mode
	spring    harmonica.Spring
	onChange  func(Mode)
}

func New(opts Options) *Controller {
	fps := opts.FrameRate
	if fps <= 0 {
		fps = defaultFrameRate
	}
	c := &Controller{
		threshold: math.Max(opts.Threshold, minThreshold),
		spring:    harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		onChange:  opts.OnModeChange,
	}
	if opts.Start == Expanded {
		c.value = c.threshold
		c.target = c.threshold
		c.mode = Expanded
	}
	return c
}

func (c *Controller) Value() float64     { return c.value }
func (c *Controller) Threshold() float64 { return c.threshold }
func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Dragging() bool     { return c.dragging }
func (c *Controller) Animating() bool    { return c.animating }

// BeginDrag stops any snap animation and hands d to the pointer.
func (c *Controller) BeginDrag() {
	c.dragging = true
	c.animating = false
	c.velocity = 0
}

func (c *Controller) DragBy(delta float64) {
	if !c.dragging {
		c.BeginDrag()
	}
	c.setValue(c.value + delta)
}

// EndDrag releases the sheet. It springs open when at least half way there
// and closed otherwise.
func (c *Controller) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.value >= c.threshold/2 {
		c.animateTo(c.threshold)
	} else {
		c.animateTo(0)
	}
}

// SnapTo animates to the resting value of m.
func (c *Controller) SnapTo(m Mode) {
	c.dragging = false
	if m == Expanded {
		c.animateTo(c.threshold)
		return
	}
	c.animateTo(0)
}

// Toggle animates to the opposite end from the current target.
func (c *Controller) Toggle() {
	if c.target >= c.threshold {
		c.SnapTo(Collapsed)
		return
	}
	c.SnapTo(Expanded)
}

// Advance steps the snap animation by one frame and reports whether it is
// still running.
func (c *Controller) Advance() bool {
	if !c.animating {
		return false
	}
	next, vel := c.spring.Update(c.value, c.velocity, c.target)
	c.velocity = vel
	if math.Abs(next-c.target) < restEpsilon && math.Abs(vel) < restEpsilon {
		next = c.target
		c.velocity = 0
		c.animating = false
	}
	c.setValue(next)
	return c.animating
}

func (c *Controller) animateTo(v float64) {
	c.target = v
	if c.value == v {
		c.animating = false
		return
	}
	c.animating = true
}

// setValue clamps v into [0, T] and fires OnModeChange when the expanded
// predicate flips.
func (c *Controller) setValue(v float64) {
	c.value = clamp(v, 0, c.threshold)
	mode := Collapsed
	if c.value >= c.threshold {
		mode = Expanded
	}
	if mode == c.mode {
		return
	}
	c.mode = mode
	log.Printf("sheet: %s at d=%.2f", mode, c.value)
	if c.onChange != nil {
		c.onChange(mode)
	}
}
