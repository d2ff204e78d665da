package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BarRenderer is the geometric backend: the whole screen is painted in the
// fill color and an overlay covering (1 - progress) of the height hides it
// from the top down.
type BarRenderer struct{}

func NewBarRenderer() *BarRenderer { return &BarRenderer{} }

func (r *BarRenderer) Draw(screen *ebiten.Image, progress float64) {
	progress = clamp01(progress)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fillColor, false)

	overlayHeight := (1 - progress) * float64(h)
	if overlayHeight > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(overlayHeight), baseColor, false)
	}
}
