package game

import "image/color"

// Colors of the 2D overlay and the background behind the 3D view.
var (
	backgroundColor = color.RGBA{0x4d, 0x4d, 0x4d, 0xff}
	playerColor     = color.RGBA{0xff, 0xff, 0x00, 0xff}
	rayColor        = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

const (
	tileBorder   = 1 // Gap between drawn map tiles
	playerSize   = 8 // Side of the player marker
	headingScale = 4 // Heading line length in multiples of Delta
	rayWidth     = 1
	markerLine   = 3
)
