// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/sukinote/internal/ui"

// NarrowThreshold is the terminal width below which the detail pane is
// stacked under the note list instead of beside it.
const NarrowThreshold = 60

// minPane is the smallest bordered pane that still shows one row.
const minPane = ui.BorderHeight + 1

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// PaneArea is the height left for the list and detail panes below row top,
// keeping the status line.
func PaneArea(windowHeight, top int) int {
	return max(minPane, windowHeight-top-ui.StatusHeight)
}

// Stacked reports whether the detail pane goes under the list: the terminal
// is narrow and the pane area fits two panes.
func Stacked(windowWidth, area int) bool {
	return IsNarrowMode(windowWidth) && area >= 2*minPane
}

// ListWidth is the list pane's outer width.
func ListWidth(windowWidth int, stacked bool) int {
	if stacked {
		return windowWidth
	}
	return min(windowWidth, max(ui.MinListWidth, windowWidth/ui.ListWidthDivisor))
}

// DetailWidth is the detail pane's outer width; 0 hides it.
func DetailWidth(windowWidth int, stacked bool) int {
	if stacked {
		return windowWidth
	}
	return max(0, windowWidth-ListWidth(windowWidth, false))
}

// ListHeight is the list pane's outer height: two thirds of the area when
// stacked, all of it otherwise.
func ListHeight(area int, stacked bool) int {
	if !stacked {
		return area
	}
	return max(minPane, min(area-minPane, area*2/3))
}

// DetailHeight is the detail pane's outer height.
func DetailHeight(area int, stacked bool) int {
	if !stacked {
		return area
	}
	return area - ListHeight(area, stacked)
}
