package systems

import (
	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调，播放按钮音效）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	sounds        SoundPlayer
}

// NewButtonSystem 创建按钮交互系统
// sounds 可为 nil
func NewButtonSystem(em *ecs.EntityManager, sounds SoundPlayer) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		sounds:        sounds,
	}
}

// Update 读取本帧指针输入并更新按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	pressed, x, y := utils.GetPointerState()
	released, rx, ry := utils.IsPointerJustReleased()
	if released {
		x, y = rx, ry
	}
	s.Apply(float64(x), float64(y), pressed, released)
}

// Apply 用给定的指针状态更新所有按钮
//
// 参数：
//   - x, y: 指针位置
//   - pressed: 指针是否按下
//   - released: 本帧是否刚释放
//
// 返回：
//   - bool: 是否有按钮被点击
func (s *ButtonSystem) Apply(x, y float64, pressed, released bool) bool {
	clicked := false
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isPointInButton(x, y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case released:
			// 释放瞬间触发回调
			button.State = components.UIHovered
			if s.sounds != nil {
				s.sounds.PlaySound(config.SoundButtonID)
			}
			if button.OnClick != nil {
				button.OnClick()
			}
			clicked = true
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}

	return clicked
}

// Contains 检查点是否落在任一按钮上（包括禁用按钮）
// 场景用它避免按钮区域的点击被当作卡带输入
func (s *ButtonSystem) Contains(x, y float64) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if s.isPointInButton(x, y, pos.X, pos.Y, button.Width, button.Height) {
			return true
		}
	}
	return false
}

// isPointInButton 检测点是否在按钮范围内
func (s *ButtonSystem) isPointInButton(px, py, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return px >= buttonX &&
		px <= buttonX+buttonWidth &&
		py >= buttonY &&
		py <= buttonY+buttonHeight
}
