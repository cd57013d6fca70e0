// Package pager implements a horizontally paged strip of period pages and
// the guard that keeps programmatic and user scrolling from fighting.
//
// # Phases
//
// Each Pager owns one Guard with three phases:
//
//	Idle ──JumpTo(animated)──→ ProgrammaticScrollInFlight ──settle──→ Idle
//	  │                                   │
//	  │                              Drag/Swipe (token cancelled)
//	  │                                   ↓
//	  └────────Drag/Swipe─────────→ UserScrollInFlight ──settle──→ Idle
//
// Programmatic scrolls carry a Token that is released exactly once, when the
// scroll lands or when a user gesture interrupts it. Token.Done is closed in
// both cases.
//
// # Settling
//
// Advance is called once per frame. A settle fires when the dominant page
// has stayed at rest for the dwell time. OnSettle runs while the guard is
// still held, so a state write made from the handler can be recognised by
// the handler's own subscribers. The guard is released in a deferred call
// after the handler returns.
//
// # Rebinding
//
// Bind swaps the window and silently jumps to its center. While any scroll
// is in flight the new window is parked and applied as soon as the scroll
// settles, so an animation is never cut short by a re-center.
package pager
