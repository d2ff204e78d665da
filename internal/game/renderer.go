package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ProgressRenderer consumes the normalized phase progress once per frame and
// draws the fill. Nothing else crosses this boundary.
type ProgressRenderer interface {
	Draw(screen *ebiten.Image, progress float64)
}

// Shared two-color scheme: the fill rises from the bottom as progress grows.
var (
	baseColor = color.RGBA{R: 24, G: 28, B: 38, A: 255}
	fillColor = color.RGBA{R: 64, G: 160, B: 180, A: 255}
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
