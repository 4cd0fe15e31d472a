package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWater         // good drops
	ColorMud           // bad drops
	ColorScore
	ColorScorePulse
	ColorWarning
	ColorStreak
	ColorToast
	ColorFloatUp
	ColorFloatDown
	ColorFrame
	ColorDim
	ColorConfettiYellow
	ColorConfettiBlue
	ColorConfettiGreen
	ColorConfettiPink
)

// ConfettiColors is the palette used for celebration particles.
var ConfettiColors = []Color{
	ColorConfettiYellow,
	ColorConfettiBlue,
	ColorConfettiGreen,
	ColorConfettiPink,
}
