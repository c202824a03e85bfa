package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 按钮用圆角矩形矢量绘制，不依赖图片资源。
// 位置由同一实体上的 PositionComponent 提供。
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA
	// FillColor 背景颜色
	FillColor color.RGBA
	// DisabledColor 禁用时的背景颜色
	DisabledColor color.RGBA

	Width        float64
	Height       float64
	CornerRadius float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
