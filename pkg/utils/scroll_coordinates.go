package utils

import (
	"math"

	"github.com/decker502/tarot/pkg/config"
)

// guardEpsilon 安全区边界的容差（像素），避免浮点误差导致重复平移
const guardEpsilon = 1e-6

// ScrollGeometry 卡带的测量几何信息
//
// 布局变化（如窗口缩放）后必须重新测量，否则位置到索引的换算会悄悄漂移。
type ScrollGeometry struct {
	Stride     float64 // 相邻两个条目起点之间的距离（卡宽 + 间距）
	BaseCenter float64 // 滚动偏移为 0 时，条目 0 中心的 X 坐标
	ItemWidth  float64 // 单个条目宽度
	PaddingX   float64 // 卡带左右内边距
}

// Valid 几何信息是否可用于换算
func (g ScrollGeometry) Valid() bool {
	return g.Stride > 0 && !math.IsNaN(g.Stride) && !math.IsInf(g.Stride, 0) &&
		!math.IsNaN(g.BaseCenter) && !math.IsInf(g.BaseCenter, 0)
}

// MeasureGeometry 根据卡牌尺寸生成几何快照
func MeasureGeometry(metrics config.CardMetrics) ScrollGeometry {
	if metrics.Width <= 0 {
		return ScrollGeometry{}
	}
	return ScrollGeometry{
		Stride:     metrics.Width + metrics.Gap,
		BaseCenter: metrics.PaddingX + metrics.Width/2,
		ItemWidth:  metrics.Width,
		PaddingX:   metrics.PaddingX,
	}
}

// PositionToAbsoluteIndex 将物理滚动偏移换算为视口中心处的绝对索引
//
// 公式：round((scroll + viewportWidth/2 - baseCenter) / stride)，结果限制在 [0, tapeLen-1]。
// 几何信息不可用或卡带为空时返回 fallback（上一次的有效索引）。
func PositionToAbsoluteIndex(scroll, viewportWidth float64, geom ScrollGeometry, tapeLen, fallback int) int {
	if !geom.Valid() || tapeLen <= 0 {
		return fallback
	}

	raw := math.Round((scroll + viewportWidth/2 - geom.BaseCenter) / geom.Stride)
	if math.IsNaN(raw) {
		return fallback
	}

	idx := int(raw)
	if idx < 0 {
		idx = 0
	}
	if idx > tapeLen-1 {
		idx = tapeLen - 1
	}
	return idx
}

// AbsoluteIndexToScrollOffset 计算使条目 absIndex 居中于视口的滚动偏移
func AbsoluteIndexToScrollOffset(absIndex int, viewportWidth float64, geom ScrollGeometry) float64 {
	return IndexPositionToScrollOffset(float64(absIndex), viewportWidth, geom)
}

// IndexPositionToScrollOffset 与 AbsoluteIndexToScrollOffset 相同，但位置可以是小数
// 转动动画用它在两个条目之间插值
func IndexPositionToScrollOffset(position, viewportWidth float64, geom ScrollGeometry) float64 {
	return geom.BaseCenter + position*geom.Stride - viewportWidth/2
}

// ScrollOffsetToIndexPosition 返回视口中心处的小数索引位置（不取整、不限制范围）
func ScrollOffsetToIndexPosition(scroll, viewportWidth float64, geom ScrollGeometry) float64 {
	if !geom.Valid() {
		return 0
	}
	return (scroll + viewportWidth/2 - geom.BaseCenter) / geom.Stride
}

// ItemScreenX 条目左边缘在屏幕上的 X 坐标
func ItemScreenX(absIndex int, scroll float64, geom ScrollGeometry) float64 {
	return geom.PaddingX + float64(absIndex)*geom.Stride - scroll
}

// VisibleIndexRange 返回与视口相交的条目索引范围 [first, last]
// 没有可见条目时 first > last
func VisibleIndexRange(scroll, viewportWidth float64, geom ScrollGeometry, tapeLen int) (first, last int) {
	if !geom.Valid() || tapeLen <= 0 {
		return 0, -1
	}

	first = int(math.Floor((scroll-geom.PaddingX-geom.ItemWidth)/geom.Stride)) + 1
	last = int(math.Floor((scroll + viewportWidth - geom.PaddingX) / geom.Stride))
	if first < 0 {
		first = 0
	}
	if last > tapeLen-1 {
		last = tapeLen - 1
	}
	return first, last
}

// MaxScrollOffset 卡带可滚动的最大偏移
// 内容宽度 = 两侧内边距 + tapeLen 个条目 - 最后一个间距
func MaxScrollOffset(geom ScrollGeometry, tapeLen int, viewportWidth float64) float64 {
	if !geom.Valid() || tapeLen <= 0 {
		return 0
	}
	gap := geom.Stride - geom.ItemWidth
	content := geom.PaddingX*2 + float64(tapeLen)*geom.Stride - gap
	return math.Max(0, content-viewportWidth)
}

// ClampScrollOffset 将滚动偏移限制在 [0, MaxScrollOffset]
func ClampScrollOffset(scroll float64, geom ScrollGeometry, tapeLen int, viewportWidth float64) float64 {
	maxOffset := MaxScrollOffset(geom, tapeLen, viewportWidth)
	if scroll < 0 {
		return 0
	}
	if scroll > maxOffset {
		return maxOffset
	}
	return scroll
}

// RecenterScroll 无限滚动的重新居中保护
//
// 安全区为 [leftGuardLoops, loops-rightGuardMargin] 个整轮宽度。偏移落在安全区外时，
// 按 floor(loops/2) 个整轮为单位平移回安全区，画面上看到的卡牌和相对位置都不变。
// 安全区内调用是无操作，因此重复调用结果相同。
//
// 参数：
//   - scroll: 当前物理滚动偏移
//   - geom: 几何信息
//   - cardCount: 逻辑卡牌数 N
//   - loops: 卡带循环次数 L
//
// 返回：
//   - float64: 平移后的偏移
//   - int: 平移的整轮数（正数表示向后移动），调用方应将绝对索引加上 loopShift*N
func RecenterScroll(scroll float64, geom ScrollGeometry, cardCount, loops int) (float64, int) {
	if !geom.Valid() || cardCount <= 0 || loops <= 0 {
		return scroll, 0
	}

	loopWidth := geom.Stride * float64(cardCount)
	leftGuard := float64(config.CarouselLeftGuardLoops) * loopWidth
	rightGuard := float64(loops-config.CarouselRightGuardMargin) * loopWidth
	shiftLoops := loops / 2
	shiftWidth := float64(shiftLoops) * loopWidth

	// 安全区比一次平移还窄时无法保证平移后落在区内
	if shiftLoops <= 0 || rightGuard-leftGuard < shiftWidth {
		return scroll, 0
	}

	switch {
	case scroll < leftGuard-guardEpsilon:
		k := int(math.Ceil((leftGuard - scroll) / shiftWidth))
		return scroll + float64(k)*shiftWidth, k * shiftLoops
	case scroll > rightGuard+guardEpsilon:
		k := int(math.Ceil((scroll - rightGuard) / shiftWidth))
		return scroll - float64(k)*shiftWidth, -k * shiftLoops
	}
	return scroll, 0
}
