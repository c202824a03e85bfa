package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cornerSegments 描边圆角时每个角使用的线段数
const cornerSegments = 6

// clampRadius 圆角半径不超过短边的一半
func clampRadius(w, h, r float32) float32 {
	if r < 0 {
		return 0
	}
	if limit := min(w, h) / 2; r > limit {
		return limit
	}
	return r
}

// DrawRoundedRect 填充圆角矩形
// 由两个矩形和四个角圆拼成
func DrawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(w, h, r)
	if r == 0 {
		vector.DrawFilledRect(dst, x, y, w, h, clr, true)
		return
	}

	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, r, h-2*r, clr, true)
	vector.DrawFilledRect(dst, x+w-r, y+r, r, h-2*r, clr, true)

	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}

// StrokeRoundedRect 描边圆角矩形
func StrokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, strokeWidth float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(w, h, r)
	if r == 0 {
		vector.StrokeRect(dst, x, y, w, h, strokeWidth, clr, true)
		return
	}

	vector.StrokeLine(dst, x+r, y, x+w-r, y, strokeWidth, clr, true)
	vector.StrokeLine(dst, x+r, y+h, x+w-r, y+h, strokeWidth, clr, true)
	vector.StrokeLine(dst, x, y+r, x, y+h-r, strokeWidth, clr, true)
	vector.StrokeLine(dst, x+w, y+r, x+w, y+h-r, strokeWidth, clr, true)

	corners := [4]struct {
		cx, cy float32
		start  float64
	}{
		{x + r, y + r, math.Pi},
		{x + w - r, y + r, 1.5 * math.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math.Pi},
	}
	for _, c := range corners {
		strokeArc(dst, c.cx, c.cy, r, c.start, strokeWidth, clr)
	}
}

// strokeArc 用线段画四分之一圆弧
func strokeArc(dst *ebiten.Image, cx, cy, r float32, start float64, strokeWidth float32, clr color.Color) {
	step := (math.Pi / 2) / cornerSegments
	px := cx + r*float32(math.Cos(start))
	py := cy + r*float32(math.Sin(start))
	for i := 1; i <= cornerSegments; i++ {
		a := start + step*float64(i)
		nx := cx + r*float32(math.Cos(a))
		ny := cy + r*float32(math.Sin(a))
		vector.StrokeLine(dst, px, py, nx, ny, strokeWidth, clr, true)
		px, py = nx, ny
	}
}

// ScaleAlpha 返回按比例缩放透明度后的颜色（预乘 alpha）
func ScaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
