package dialview

import (
	"github.com/llehouerou/sukinote/internal/config"
	"github.com/llehouerou/sukinote/internal/dial"
)

// Terminal physics. Offsets are in cells, which are far coarser than the
// points the engine defaults assume.
const (
	dragThreshold    = 1
	minFlingVelocity = 20
	deceleration     = 300
)

// TerminalConfig converts dial settings (already defaulted by
// config.GetDialConfig) into an engine configuration in cell units.
func TerminalConfig(c config.DialConfig, initialIndex int) dial.Config {
	cfg := dial.DefaultConfig()
	cfg.ItemSize = dial.Size{Width: float64(c.ItemWidth), Height: float64(c.ItemHeight)}
	cfg.Spacing = float64(c.SpacingCells())
	cfg.InitialIndex = initialIndex

	cfg.SnapDuration = c.SnapDuration()
	cfg.HighlightDuration = c.HighlightDuration()
	cfg.WidthDuration = c.WidthDuration()
	cfg.SettleDelay = c.SettleDelay()
	cfg.CollapseDelay = c.CollapseDelay()

	cfg.CompactEnabled = c.CompactEnabled()
	cfg.InitialCompact = true
	cfg.CompactWidth = float64(c.CompactWidth)
	cfg.HapticsEnabled = c.HapticsEnabled()

	cfg.DragThreshold = dragThreshold
	cfg.MinFlingVelocity = minFlingVelocity
	cfg.Deceleration = deceleration
	return cfg
}
