package pager

import (
	"log"
	"sync"
)

// Phase is the scroll state of one pager.
type Phase int

const (
	Idle Phase = iota
	ProgrammaticScrollInFlight
	UserScrollInFlight
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ProgrammaticScrollInFlight:
		return "programmatic"
	case UserScrollInFlight:
		return "user"
	default:
		return "unknown"
	}
}

// Reason records why a programmatic scroll was started.
type Reason int

const (
	ReasonState Reason = iota
	ReasonDayTap
	ReasonRecenter
)

func (r Reason) String() string {
	switch r {
	case ReasonDayTap:
		return "day-tap"
	case ReasonRecenter:
		return "recenter"
	default:
		return "state"
	}
}

// Token represents one programmatic scroll. It is released exactly once,
// either when the scroll lands or when it is cancelled.
type Token struct {
	Target int
	Reason Reason

	done      chan struct{}
	once      sync.Once
	cancelled bool
}

// Done is closed when the token is released. Waiters treat a cancelled
// scroll the same as a completed one.
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// Cancelled reports whether the scroll was interrupted before landing.
func (t *Token) Cancelled() bool {
	return t.cancelled
}

func (t *Token) release(cancelled bool) {
	t.once.Do(func() {
		t.cancelled = cancelled
		close(t.done)
	})
}

// Guard serializes programmatic and user scrolling on one pager. All phase
// changes go through transition. A Guard is used from a single goroutine.
type Guard struct {
	name  string
	phase Phase
	token *Token
}

func (g *Guard) Phase() Phase { return g.phase }

// IsProgrammaticScroll reports whether a programmatic scroll is in flight.
func (g *Guard) IsProgrammaticScroll() bool {
	return g.phase == ProgrammaticScrollInFlight
}

// DayTapInFlight reports whether the in-flight scroll was caused by a day tap.
func (g *Guard) DayTapInFlight() bool {
	return g.token != nil && g.token.Reason == ReasonDayTap
}

// Token returns the in-flight programmatic token, if any.
func (g *Guard) Token() *Token { return g.token }

// BeginProgrammatic acquires the guard for a programmatic scroll. It fails
// when any scroll is already in flight.
func (g *Guard) BeginProgrammatic(target int, reason Reason) (*Token, bool) {
	if g.phase != Idle {
		return nil, false
	}
	tok := &Token{Target: target, Reason: reason, done: make(chan struct{})}
	g.token = tok
	g.transition(ProgrammaticScrollInFlight)
	return tok, true
}

// BeginUser marks a user gesture. An in-flight programmatic scroll is
// cancelled and its token released immediately.
func (g *Guard) BeginUser() {
	if g.phase == UserScrollInFlight {
		return
	}
	g.dropToken(true)
	g.transition(UserScrollInFlight)
}

// Release completes the in-flight programmatic scroll if tok is current.
func (g *Guard) Release(tok *Token) {
	if tok == nil || tok != g.token {
		return
	}
	g.dropToken(false)
	g.transition(Idle)
}

// Cancel aborts whatever is in flight and returns to idle.
func (g *Guard) Cancel() {
	g.dropToken(true)
	g.transition(Idle)
}

// EndUser returns to idle after a user gesture has settled.
func (g *Guard) EndUser() {
	if g.phase == UserScrollInFlight {
		g.transition(Idle)
	}
}

// Run holds the guard while fn performs a synchronous programmatic scroll.
// Anything already in flight is cancelled first. The guard is released when
// fn returns, including when fn panics.
func (g *Guard) Run(target int, reason Reason, fn func(*Token)) {
	g.Cancel()
	tok, _ := g.BeginProgrammatic(target, reason)
	defer g.Release(tok)
	fn(tok)
}

func (g *Guard) dropToken(cancelled bool) {
	if g.token == nil {
		return
	}
	g.token.release(cancelled)
	g.token = nil
}

func (g *Guard) transition(to Phase) {
	if g.phase == to {
		return
	}
	log.Printf("pager %s: %s -> %s", g.name, g.phase, to)
	g.phase = to
}
