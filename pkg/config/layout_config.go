package config

import "math"

// 布局配置常量
// 本文件定义了卡带（横向滚动条）和页面元素的布局参数。
// 所有坐标都是逻辑屏幕坐标，逻辑屏幕尺寸跟随窗口尺寸变化（见 app.Layout）。

// 窗口默认尺寸
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1024

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 768

	// MinViewportWidth 逻辑屏幕最小宽度，窗口更小时按此宽度缩放
	MinViewportWidth = 360

	// MinViewportHeight 逻辑屏幕最小高度
	MinViewportHeight = 560
)

// Card Strip Configuration (卡带配置)
const (
	// CardAspectRatio 卡牌宽高比（宽 / 高 = 9:14）
	CardAspectRatio = 9.0 / 14.0

	// CardHeightRatio 卡牌高度占视口高度的比例
	CardHeightRatio = 0.58

	// CardMinHeight 卡牌最小高度（像素）
	CardMinHeight = 260.0

	// CardMaxHeight 卡牌最大高度（像素）
	CardMaxHeight = 520.0

	// CardMaxWidth 卡牌最大宽度（像素）
	CardMaxWidth = 390.0

	// CardGap 相邻卡牌之间的间距（像素）
	CardGap = 16.0

	// StripPaddingX 卡带左右内边距（宽屏）
	StripPaddingX = 40.0

	// StripPaddingXCompact 卡带左右内边距（窄屏）
	StripPaddingXCompact = 28.0

	// CompactBreakpoint 窄屏断点，小于该宽度时使用紧凑布局
	CompactBreakpoint = 768.0

	// StripTopY 卡带顶部 Y 坐标（卡牌在其下方垂直居中于剩余空间）
	StripTopY = 132.0

	// ActiveCardLift 激活卡牌翻到正面时上浮的距离（像素）
	ActiveCardLift = 8.0

	// ActiveCardBackLift 激活卡牌背面朝上时的上浮距离
	ActiveCardBackLift = 2.0

	// ActiveCardFaceScale 激活卡牌翻到正面时的缩放
	ActiveCardFaceScale = 1.015

	// InactiveCardScale 非激活卡牌的缩放
	InactiveCardScale = 0.97

	// InactiveCardAlpha 非激活卡牌的透明度
	InactiveCardAlpha = 0.82

	// CardCornerInset 卡面内框距离边缘的距离
	CardCornerInset = 16.0
)

// Header Configuration (标题区域)
const (
	// HeaderTitleY 标题 Y 坐标
	HeaderTitleY = 44.0

	// HeaderSubtitleY 副标题 Y 坐标
	HeaderSubtitleY = 84.0

	// HeaderTitleFontSize 标题字号
	HeaderTitleFontSize = 26.0

	// HeaderSubtitleFontSize 副标题字号
	HeaderSubtitleFontSize = 14.0
)

// CardMetrics 一次布局计算得到的卡牌尺寸
type CardMetrics struct {
	Width    float64 // 卡牌宽度
	Height   float64 // 卡牌高度
	Gap      float64 // 卡牌间距
	PaddingX float64 // 卡带左右内边距
	TopY     float64 // 卡牌顶部 Y 坐标
}

// CalculateCardMetrics 根据视口尺寸计算卡牌尺寸
//
// 高度是尺寸的来源，宽度由宽高比推导，再受最大宽度约束。
//
// 参数：
//   - viewportWidth, viewportHeight: 逻辑屏幕尺寸
//
// 返回：
//   - CardMetrics: 卡牌尺寸
func CalculateCardMetrics(viewportWidth, viewportHeight float64) CardMetrics {
	height := math.Max(CardMinHeight, math.Min(CardMaxHeight, viewportHeight*CardHeightRatio))
	width := height * CardAspectRatio
	if width > CardMaxWidth {
		width = CardMaxWidth
		height = width / CardAspectRatio
	}

	padding := StripPaddingX
	if viewportWidth < CompactBreakpoint {
		padding = StripPaddingXCompact
	}

	// 卡牌在标题与底部按钮之间的区域内垂直居中
	available := viewportHeight - StripTopY - (BottomButtonHeight + BottomButtonMarginBottom*2)
	topY := StripTopY + math.Max(0, (available-height)/2)

	return CardMetrics{
		Width:    width,
		Height:   height,
		Gap:      CardGap,
		PaddingX: padding,
		TopY:     topY,
	}
}

// Card Text Configuration (卡面文字，按卡牌宽度缩放)
const (
	CardTitleFontRatio   = 0.075
	CardYearFontRatio    = 0.062
	CardBodyFontRatio    = 0.047
	CardHeadingFontRatio = 0.038
	CardAdviceFontRatio  = 0.045

	// CardMinFontSize 卡面文字最小字号
	CardMinFontSize = 10.0
)

// CardFontSizes 卡面各部分文字的字号
type CardFontSizes struct {
	Title   float64
	Year    float64
	Body    float64
	Heading float64
	Advice  float64
}

// CalculateCardFontSizes 根据卡牌宽度计算卡面字号
// 字号取整，避免窗口缩放时产生大量只差零点几的字体缓存
func CalculateCardFontSizes(cardWidth float64) CardFontSizes {
	size := func(ratio float64) float64 {
		return math.Max(CardMinFontSize, math.Round(cardWidth*ratio))
	}
	return CardFontSizes{
		Title:   size(CardTitleFontRatio),
		Year:    size(CardYearFontRatio),
		Body:    size(CardBodyFontRatio),
		Heading: size(CardHeadingFontRatio),
		Advice:  size(CardAdviceFontRatio),
	}
}
