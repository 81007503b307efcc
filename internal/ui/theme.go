package ui

import "image/color"

// Dark theme colors. Media stays the brightest thing on screen.
var (
	ColorBackground    = color.RGBA{R: 0x0C, G: 0x0C, B: 0x10, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF2, G: 0xA0, B: 0x3D, A: 0xFF} // amber
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xF2, G: 0xA0, B: 0x3D, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorArrowBg       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	StripPadding = 24

	ThumbGap      = 8
	ThumbFocusPad = 3
	ThumbArrowW   = 28

	ArrowSize   = 48
	ArrowMargin = 16

	FontSizeTitle   = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	// ScrollAnimSpeed is the share of the remaining distance covered per frame.
	ScrollAnimSpeed = 0.18

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)
