package tui

// UI Layout Constants
const (
	// Modal Dimensions
	ModalWidthMargin  = 6 // m.width - 6
	ModalHeightMargin = 3 // m.height - 3

	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Main layout rows outside the result region:
	// title + tab bar + blank + status bar + region border
	MainChromeLines = 6

	// Modal Content Calculations
	ModalOverheadLines = 6 // Title (2) + padding (2) + border (2)
	ModalFooterLines   = 2 // Footer + blank line

	// Split View Ratios
	SplitViewEqual = 0.5

	// Split Pane Layout
	SplitPaneBorderWidth = 3 // Border width between split panes

	// Call log rows shown in the stats modal
	RecentCallsLimit = 20

	// Footer messages longer than this are truncated
	StatusMaxWidth = 100
)
