package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// PageSizes are the row counts the page size key cycles through.
var PageSizes = []int{10, 25, 50}

// Timing constants.
const (
	// NoticeTimeout is how long a notice stays in the status line.
	NoticeTimeout = 5 * time.Second
)

// chromeLines is the number of lines outside the grid body: header, command
// bar, column titles, rule, totals and status line.
const chromeLines = 6
