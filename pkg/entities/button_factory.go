package entities

import (
	"image/color"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/game"
)

// 底部按钮配色
var (
	bottomButtonFill     = color.RGBA{R: 112, G: 72, B: 196, A: 255}
	bottomButtonDisabled = color.RGBA{R: 70, G: 58, B: 100, A: 255}
	bottomButtonText     = color.RGBA{R: 250, G: 244, B: 255, A: 255}
)

// NewBottomButton 创建底部操作按钮实体（圆角矢量按钮）
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（加载字体），为 nil 时按钮没有文字字体
//   - viewportWidth, viewportHeight: 逻辑屏幕尺寸，用于计算按钮矩形
//   - label: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//   - 错误信息（字体加载失败）
func NewBottomButton(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	viewportWidth, viewportHeight float64,
	label string,
	onClick func(),
) (ecs.EntityID, error) {
	button := &components.ButtonComponent{
		Text:          label,
		TextColor:     bottomButtonText,
		FillColor:     bottomButtonFill,
		DisabledColor: bottomButtonDisabled,
		CornerRadius:  config.BottomButtonCornerRadius,
		State:         components.UINormal,
		Enabled:       true,
		OnClick:       onClick,
	}

	if rm != nil {
		font, err := rm.LoadFont(game.FontBold, config.BottomButtonFontSize)
		if err != nil {
			return 0, err
		}
		button.Font = font
	}

	entity := em.CreateEntity()
	pos := &components.PositionComponent{}
	ecs.AddComponent(em, entity, pos)
	ecs.AddComponent(em, entity, button)

	LayoutBottomButton(em, entity, viewportWidth, viewportHeight)
	return entity, nil
}

// LayoutBottomButton 按视口尺寸重新放置底部按钮
func LayoutBottomButton(em *ecs.EntityManager, entity ecs.EntityID, viewportWidth, viewportHeight float64) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](em, entity)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, entity)
	if !ok {
		return
	}

	x, y, w, h := config.CalculateBottomButtonRect(viewportWidth, viewportHeight)
	pos.X, pos.Y = x, y
	button.Width, button.Height = w, h
}
