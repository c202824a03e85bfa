package config

// UI 布局相关的常量配置
// 包括底部操作按钮的尺寸和文案

const (
	// BottomButtonHeight 底部按钮高度
	BottomButtonHeight = 48.0

	// BottomButtonMaxWidth 底部按钮最大宽度
	BottomButtonMaxWidth = 944.0

	// BottomButtonMarginX 底部按钮左右留白
	BottomButtonMarginX = 24.0

	// BottomButtonMarginBottom 底部按钮距离屏幕底部的距离
	BottomButtonMarginBottom = 16.0

	// BottomButtonFontSize 底部按钮字号
	BottomButtonFontSize = 16.0

	// BottomButtonCornerRadius 底部按钮圆角半径
	BottomButtonCornerRadius = 16.0
)

// 按钮文案
const (
	// SpinButtonText 开始转动按钮文案
	SpinButtonText = "Choose a prediction"

	// SpinningButtonText 转动中的按钮文案（按钮禁用）
	SpinningButtonText = "Spinning..."

	// ResetButtonText 重新选择按钮文案
	ResetButtonText = "Choose again"
)

// 页面文案
const (
	// HeaderTitleText 标题
	HeaderTitleText = "LIFT THE VEIL OF 2026"

	// HeaderSubtitleText 副标题
	HeaderSubtitleText = "Press \"Choose a prediction\" and the roulette picks a card. Then tap the chosen card to open its message."

	// AdviceHeadingText 预言面板中"建议"小标题
	AdviceHeadingText = "ADVICE"
)

// CalculateBottomButtonRect 计算底部按钮的位置和尺寸
//
// 参数：
//   - viewportWidth, viewportHeight: 逻辑屏幕尺寸
//
// 返回：
//   - x, y, width, height: 按钮矩形
func CalculateBottomButtonRect(viewportWidth, viewportHeight float64) (x, y, width, height float64) {
	width = viewportWidth - BottomButtonMarginX*2
	if width > BottomButtonMaxWidth {
		width = BottomButtonMaxWidth
	}
	if width < 0 {
		width = 0
	}
	x = (viewportWidth - width) / 2
	y = viewportHeight - BottomButtonMarginBottom - BottomButtonHeight
	return x, y, width, BottomButtonHeight
}

// 右上角提示
const (
	// HintFontSize 提示文字字号
	HintFontSize = 12.0

	// HintMarginTop 提示文字距离顶部的距离
	HintMarginTop = 14.0

	SoundOnText      = "Sound on"
	SoundOffText     = "Sound off"
	SoundKeyHintText = "  (M)"

	// DebugLineOffset 调试信息距离底部的像素
	DebugLineOffset = 92
)
