package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// wipeShaderSrc compares the scalar progress uniform against the vertical UV
// per pixel, producing the same two-color fill as the bar backend.
const wipeShaderSrc = `//kage:unit pixels

package main

var Progress float
var ScreenSize vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := dstPos.y / ScreenSize.y
	if uv > 1.0-Progress {
		return vec4(0.25, 0.63, 0.71, 1.0)
	}
	return vec4(0.09, 0.11, 0.15, 1.0)
}
`

// ShaderRenderer is the shader-quad backend. Construction compiles the wipe
// shader; a compile failure is fatal to the session since there is no
// fallback path.
type ShaderRenderer struct {
	shader *ebiten.Shader
}

func NewShaderRenderer() (*ShaderRenderer, error) {
	shader, err := ebiten.NewShader([]byte(wipeShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile wipe shader: %w", err)
	}
	return &ShaderRenderer{shader: shader}, nil
}

func (r *ShaderRenderer) Draw(screen *ebiten.Image, progress float64) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Progress":   float32(clamp01(progress)),
		"ScreenSize": []float32{float32(w), float32(h)},
	}
	screen.DrawRectShader(w, h, r.shader, op)
}
