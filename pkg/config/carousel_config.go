package config

// 轮盘卡带配置常量
// 时间单位均为秒，距离单位为"圈"（一圈 = 整副牌的宽度）

const (
	// CarouselLoops 卡带中整副牌重复的圈数
	// 圈数越多，边缘跳转越少；必须足够覆盖一次完整转动加上安全区
	CarouselLoops = 20

	// CarouselStartLoopOffset 初始位置相对中间圈向左的偏移圈数
	// 初始停在 Loops/2 - 4 圈，给右侧长距离转动留出空间
	CarouselStartLoopOffset = 4

	// CarouselLeftGuardLoops 左侧安全区宽度（圈）
	CarouselLeftGuardLoops = 2

	// CarouselRightGuardMargin 右侧安全区距离卡带末尾的圈数
	// 右侧边界 = (Loops - RightGuardMargin) 圈
	CarouselRightGuardMargin = 3
)

// 转动动画配置
const (
	// SpinDuration 一次转动的总时长（秒）
	SpinDuration = 4.0

	// SpinMinLoops 一次转动最少经过的整圈数
	SpinMinLoops = 6

	// SpinMaxLoops 一次转动最多经过的整圈数（包含）
	SpinMaxLoops = 7

	// SpinAccelFraction 加速阶段占总时长的比例，其余时间减速
	SpinAccelFraction = 0.2
)

// 手动滑动配置
const (
	// ManualScrollSettleDelay 最后一次用户滚动后，判定"滑动结束"的延迟（秒）
	// 滑动结束时才会清除已选中的卡牌
	ManualScrollSettleDelay = 0.12

	// PointerReleaseGrace 指针抬起后仍视为用户操作的宽限时间（秒）
	// 让惯性滑动也算作用户滑动
	PointerReleaseGrace = 0.24

	// ScrollFriction 惯性滑动速度每秒衰减系数
	ScrollFriction = 6.0

	// ScrollMinVelocity 惯性速度低于该值（像素/秒）时停止
	ScrollMinVelocity = 12.0

	// WheelScrollStep 鼠标滚轮每格滚动的像素
	WheelScrollStep = 60.0

	// SnapDuration 滑动停止后吸附到最近卡牌的动画时长（秒）
	SnapDuration = 0.25
)

// 卡牌表现配置
const (
	// CardFlipDuration 卡牌翻转动画时长（秒）
	CardFlipDuration = 0.55

	// CardPulsePeriod 可点击卡牌呼吸动画周期（秒）
	CardPulsePeriod = 1.8

	// CardPulseAmplitude 呼吸动画缩放幅度
	CardPulseAmplitude = 0.012

	// ActiveEmphasisSpeed 激活态缩放/上浮的过渡速度（每秒）
	ActiveEmphasisSpeed = 10.0
)
