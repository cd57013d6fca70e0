package pager

import (
	"log"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/five82/sheetcal/internal/period"
)

const (
	defaultDwell     = 120 * time.Millisecond
	defaultFrameRate = 60

	springFrequency = 12.0
	springDamping   = 1.0

	restEpsilon = 0.005
)

// Origin tells a settle handler who moved the pager.
type Origin int

const (
	OriginUser Origin = iota
	OriginProgrammatic
)

func (o Origin) String() string {
	if o == OriginProgrammatic {
		return "programmatic"
	}
	return "user"
}

// Settle describes a page the pager came to rest on.
type Settle struct {
	Index    int
	Snapshot period.Snapshot
	Origin   Origin
	Reason   Reason
	// Clamped is set when the landed index fell outside the window and the
	// center page was substituted.
	Clamped bool
}

// Options configure a Pager.
type Options struct {
	Name      string
	Dwell     time.Duration
	FrameRate int
	// OnSettle runs synchronously from Advance. The guard is still held
	// while it runs and is released afterwards.
	OnSettle func(Settle)
	// OnRecenter runs after a silent rebind changed the visible page.
	OnRecenter func(period.Snapshot)
}

// Pager animates a horizontal strip of period pages. Offsets are measured in
// pages: 1.5 means halfway between the second and third page.
type Pager struct {
	name       string
	window     period.Window
	pending    *period.Window
	guard      Guard
	spring     harmonica.Spring
	dwell      time.Duration
	onSettle   func(Settle)
	onRecenter func(period.Snapshot)

	offset   float64
	velocity float64
	target   int
	moving   bool
	dragging bool
	armed    bool

	dominant      int
	dominantSince time.Time
}

// New creates a pager showing the center page of w.
func New(w period.Window, opts Options) *Pager {
	dwell := opts.Dwell
	if dwell <= 0 {
		dwell = defaultDwell
	}
	fps := opts.FrameRate
	if fps <= 0 {
		fps = defaultFrameRate
	}
	p := &Pager{
		name:       opts.Name,
		window:     w,
		guard:      Guard{name: opts.Name},
		spring:     harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		dwell:      dwell,
		onSettle:   opts.OnSettle,
		onRecenter: opts.OnRecenter,
	}
	p.place(w.Center())
	return p
}

func (p *Pager) Window() period.Window { return p.window }
func (p *Pager) Guard() *Guard         { return &p.guard }
func (p *Pager) Offset() float64       { return p.offset }
func (p *Pager) Dragging() bool        { return p.dragging }

// Index is the dominant page, the one covering most of the viewport.
func (p *Pager) Index() int {
	return p.window.ClampIndex(int(math.Round(p.offset)))
}

// Visible returns the snapshot of the dominant page.
func (p *Pager) Visible() period.Snapshot {
	return p.window.At(p.Index())
}

// Busy reports whether the pager still needs frames: it is animating, being
// dragged, owes a settle or holds a deferred rebind.
func (p *Pager) Busy() bool {
	return p.moving || p.dragging || p.armed || p.pending != nil
}

// JumpTo moves to index. Jumping to the page the pager is already resting on
// does nothing. A silent jump lands immediately and never settles; an
// animated jump holds the guard until it lands and is refused while any
// other scroll is in flight. It reports whether a jump was issued.
func (p *Pager) JumpTo(index int, animated bool, reason Reason) bool {
	index = p.window.ClampIndex(index)
	if p.atRest() && p.Index() == index {
		return false
	}
	if !animated {
		p.guard.Run(index, reason, func(*Token) {
			p.place(index)
		})
		return true
	}
	if _, ok := p.guard.BeginProgrammatic(index, reason); !ok {
		return false
	}
	log.Printf("pager %s: jump to %d (%s)", p.name, index, reason)
	p.target = index
	p.moving = true
	p.armed = true
	return true
}

// Drag moves the strip by delta pages under the user's finger. The first
// drag cancels any programmatic scroll in flight.
func (p *Pager) Drag(delta float64) {
	p.guard.BeginUser()
	p.dragging = true
	p.moving = false
	p.armed = false
	p.velocity = 0
	p.offset = clampFloat(p.offset+delta, 0, float64(p.window.Len()-1))
}

// Release ends a drag and lets the strip spring to the nearest page.
func (p *Pager) Release() {
	if !p.dragging {
		return
	}
	p.dragging = false
	p.target = p.Index()
	p.moving = true
	p.armed = true
}

// Swipe is a complete user gesture of one page in direction dir (-1 or 1).
func (p *Pager) Swipe(dir int) bool {
	base := p.Index()
	if p.moving {
		base = p.target
	}
	next := p.window.ClampIndex(base + dir)
	if next == base {
		return false
	}
	p.guard.BeginUser()
	p.dragging = false
	p.target = next
	p.moving = true
	p.armed = true
	return true
}

// Bind re-centers the pager on w without animation. While a scroll is in
// flight the rebind is held back and applied right after that scroll
// settles. It reports whether the rebind was applied now.
func (p *Pager) Bind(w period.Window) bool {
	if p.guard.Phase() != Idle || p.dragging {
		p.pending = &w
		return false
	}
	p.pending = nil
	p.rebind(w)
	return true
}

// Reset abandons whatever is in flight, including a parked window, and
// shows the center of w immediately.
func (p *Pager) Reset(w period.Window) {
	p.pending = nil
	p.guard.Run(w.Center(), ReasonRecenter, func(*Token) {
		p.rebind(w)
	})
}

// Advance steps the animation to now and fires a settle once the dominant
// page has been at rest for the dwell time.
func (p *Pager) Advance(now time.Time) {
	if p.moving {
		p.offset, p.velocity = p.spring.Update(p.offset, p.velocity, float64(p.target))
		if math.Abs(p.offset-float64(p.target)) < restEpsilon && math.Abs(p.velocity) < restEpsilon {
			p.offset = float64(p.target)
			p.velocity = 0
			p.moving = false
		}
	}

	dom := int(math.Round(p.offset))
	if dom != p.dominant || p.dominantSince.IsZero() {
		p.dominant = dom
		p.dominantSince = now
	}

	if p.armed && !p.moving && !p.dragging && now.Sub(p.dominantSince) >= p.dwell {
		p.armed = false
		p.fireSettle(dom)
		return
	}

	if p.pending != nil && p.guard.Phase() == Idle && !p.dragging {
		w := *p.pending
		p.pending = nil
		p.rebind(w)
	}
}

// settleIndex maps a raw landed index into the window. Anything out of range
// is replaced by the center.
func (p *Pager) settleIndex(raw int) (int, bool) {
	if raw < 0 || raw >= p.window.Len() {
		return p.window.Center(), true
	}
	return raw, false
}

func (p *Pager) fireSettle(raw int) {
	idx, clamped := p.settleIndex(raw)
	if clamped {
		log.Printf("pager %s: settle index %d outside window, using center", p.name, raw)
		p.place(idx)
	}

	ev := Settle{
		Index:    idx,
		Snapshot: p.window.At(idx),
		Origin:   OriginUser,
		Clamped:  clamped,
	}
	tok := p.guard.Token()
	if p.guard.IsProgrammaticScroll() && tok != nil {
		ev.Origin = OriginProgrammatic
		ev.Reason = tok.Reason
	}
	log.Printf("pager %s: settle %s on %s", p.name, ev.Origin, ev.Snapshot.ID)

	defer p.finishSettle(tok)
	if p.onSettle != nil {
		p.onSettle(ev)
	}
}

func (p *Pager) finishSettle(tok *Token) {
	if tok != nil {
		p.guard.Release(tok)
	}
	p.guard.EndUser()
	if p.pending != nil {
		w := *p.pending
		p.pending = nil
		p.rebind(w)
	}
}

func (p *Pager) rebind(w period.Window) {
	before := p.Visible().ID
	p.window = w
	if p.Index() != w.Center() || !p.atRest() {
		p.place(w.Center())
	}
	if after := p.Visible(); after.ID != before {
		log.Printf("pager %s: recentered on %s", p.name, after.ID)
		if p.onRecenter != nil {
			p.onRecenter(after)
		}
	}
}

func (p *Pager) place(index int) {
	p.offset = float64(index)
	p.velocity = 0
	p.target = index
	p.moving = false
	p.dragging = false
	p.armed = false
	p.dominant = index
}

func (p *Pager) atRest() bool {
	return !p.moving && !p.dragging && p.offset == float64(p.target)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
