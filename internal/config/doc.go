// Package config loads sheetcal's TOML configuration.
//
// # Overview
//
// The configuration tunes the calendar views: which weekday starts a week,
// how many pages each pager keeps mounted, how long a page must rest before
// it counts as settled, and the terminal geometry the sheet morph uses.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sheetcal/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but a value is missing or out of range, use its default
//
// # Keys
//
//	week_start      = "sunday"   # full or three-letter weekday name
//	window_radius   = 1          # pages on each side of the center, 1..3
//	settle_dwell_ms = 120        # rest time before a page counts as settled
//	cell_height     = 1          # terminal rows per week row, 1..3
//	crossfade_band  = 1          # rows of drag over which the views crossfade
//	header_height   = 0          # added to the morph anchor
//	top_inset       = 0          # added to the morph anchor
//	frame_rate      = 60         # animation frames per second
//	trace_log       = "~/.local/state/sheetcal/trace.log"
//
// An empty trace_log disables trace logging. Paths starting with ~ are
// expanded against the user's home directory.
//
// # Errors
//
// A missing file is not an error. A file that exists but cannot be read or
// parsed is, and the error is wrapped with "open config", "read config" or
// "parse config".
package config
