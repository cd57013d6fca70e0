// Package state owns the selected date shared by every calendar view.
//
// # Overview
//
// The month pager, the week pager and the sheet all present the same logical
// selection. Calendar is the one place that selection lives. Views read it,
// write it through a handful of methods and learn about changes through two
// notification channels.
//
// # Core Types
//
// Calendar:
//   - Holds the current, previous, displayed-month and today dates
//   - Uses sync.RWMutex so frame code can read from other goroutines
//   - Single writer (the UI loop), many readers
//
// Snapshot:
//   - Copy of all four dates at a point in time
//   - Returned by value
//
// # Channels
//
// Two independent subscriber lists exist:
//
//	SelectDate(d)     → previous = current, current = d → generic subscribers
//	DaySelectDate(d)  → current = d                     → day-tap subscribers
//	SelectPreviousDate(d)     → previous = d            → nobody
//	SetDayOfDisplayedMonth(d) → displayed month = d     → nobody
//
// Pagers listen on the generic channel to follow selections made elsewhere
// and on the day-tap channel to page toward a tapped day. Both Subscribe
// calls return an unsubscribe func; calling it more than once is harmless.
//
// # Dispatch
//
// Callbacks run synchronously on the writing goroutine, after the lock has
// been released, so a callback may read the calendar freely. A callback that
// writes does not recurse:
//
//	SelectDate(A)
//	  → notify subscriber 1 → SelectDate(B)   (queued)
//	  → notify subscriber 2                    (still sees A)
//	→ apply B → notify subscribers 1 and 2
//
// Queued writes are applied in FIFO order once the outer dispatch finishes.
//
// # Today
//
// Today() is always midnight of the clock's current day. The app calls
// RefreshToday at local midnight; tests pass a fixed clock through WithClock.
package state
