package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bigmistqke/in-out/internal/config"
)

// button is a rectangular click target. Plain buttons fire once when the
// press is released over them; repeat buttons fire on press and then again
// at a fixed interval while held, matching press-and-hold duration stepping.
type button struct {
	x, y, w, h int
	label      string
	repeat     bool

	hovered  bool
	pressed  bool
	lastFire time.Time
}

func newButton(x, y, w, h int, label string) *button {
	return &button{x: x, y: y, w: w, h: h, label: label}
}

func newRepeatButton(x, y, w, h int, label string) *button {
	b := newButton(x, y, w, h, label)
	b.repeat = true
	return b
}

// update processes one frame of mouse state and reports whether the button
// fired this frame.
func (b *button) update(now time.Time) bool {
	mouseX, mouseY := ebiten.CursorPosition()
	b.hovered = mouseX >= b.x && mouseX <= b.x+b.w &&
		mouseY >= b.y && mouseY <= b.y+b.h

	fired := false
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
		if b.repeat {
			b.lastFire = now
			fired = true
		}
	}
	if b.repeat && b.pressed && b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if now.Sub(b.lastFire) >= config.RepeatInterval {
			b.lastFire = now
			fired = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if !b.repeat && b.pressed && b.hovered {
			fired = true
		}
		b.pressed = false
	}
	return fired
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 8 // approximate character width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
