package core

// Color is a foreground color for a screen cell. The shell maps each value
// to a terminal color.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeCap
	ColorBody
	ColorDead
	ColorGround
	ColorText
	ColorMuted
)
