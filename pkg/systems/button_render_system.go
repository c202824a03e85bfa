package systems

import (
	"image/color"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染圆角背景，颜色随状态变化
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	utils.DrawRoundedRect(screen,
		float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height),
		float32(button.CornerRadius), buttonFillColor(button))

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// buttonFillColor 根据状态返回背景色
func buttonFillColor(button *components.ButtonComponent) color.RGBA {
	switch button.State {
	case components.UIDisabled:
		return button.DisabledColor
	case components.UIHovered:
		return shadeColor(button.FillColor, 1.12)
	case components.UIClicked:
		return shadeColor(button.FillColor, 0.85)
	default:
		return button.FillColor
	}
}

// shadeColor 按系数调整 RGB 亮度，alpha 不变
func shadeColor(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > float64(c.A) {
			f = float64(c.A)
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	// 按下时文字下沉 1 像素
	if button.State == components.UIClicked {
		centerY++
	}

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 120})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	textColor := button.TextColor
	if !button.Enabled {
		textColor = utils.ScaleAlpha(textColor, 0.6)
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, button.Text, button.Font, op)
}
