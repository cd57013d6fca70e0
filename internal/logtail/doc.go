// Package logtail reads the tail of sheetcal's trace log.
//
// # Overview
//
// The UI owns the terminal, so the standard logger is pointed at a trace
// file (see app.Run). Pagers, carousels and the sheet log guard transitions,
// settles and threshold crossings there. The trace overlay in the UI shows
// the most recent lines through this package.
//
// # Reading
//
// Read keeps the last maxLines lines in a ring buffer while scanning the
// file once, so memory stays O(maxLines) however large the log has grown:
//
//  1. Allocate ring buffer of size maxLines
//  2. For each line: store at idx, advance idx modulo maxLines
//  3. Fewer lines than maxLines: return the filled prefix
//  4. Otherwise: return the buffer starting at idx (the oldest line)
//
// A missing file returns nil, nil. Other errors are wrapped.
//
// # Parsing
//
// Lines have the shape the standard logger produces with the "sheetcal"
// prefix:
//
//	sheetcal 2026/10/17 09:14:03 pager month: idle -> programmatic
//	└prefix┘ └────timestamp────┘ └component┘ └──────message─────┘
//
// Parse never fails; lines in another shape keep their text in Message.
package logtail
