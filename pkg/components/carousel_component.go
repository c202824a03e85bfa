package components

import (
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/utils"
)

// CarouselPhase 轮盘选择流程的阶段
type CarouselPhase int

const (
	// PhaseIdle 空闲：没有选中卡牌，所有卡牌显示背面
	PhaseIdle CarouselPhase = iota
	// PhaseSpinning 转动中：忽略用户滚动
	PhaseSpinning
	// PhaseSelected 已选中：落点卡牌显示正面，且是唯一可点击的卡牌
	PhaseSelected
	// PhasePrediction 预言：落点卡牌显示预言文本
	PhasePrediction
)

// String 返回阶段名称（用于日志）
func (p CarouselPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSelected:
		return "selected"
	case PhasePrediction:
		return "prediction"
	}
	return "unknown"
}

// CardFace 卡牌显示的面
type CardFace int

const (
	// CardFaceBack 背面
	CardFaceBack CardFace = iota
	// CardFaceFront 正面（图片）
	CardFaceFront
	// CardFacePrediction 预言文本
	CardFacePrediction
)

// String 返回卡面名称
func (f CardFace) String() string {
	switch f {
	case CardFaceBack:
		return "back"
	case CardFaceFront:
		return "front"
	case CardFacePrediction:
		return "prediction"
	}
	return "unknown"
}

// NoSelection 表示没有选中的卡牌
const NoSelection = -1

// CarouselTapeEntry 卡带条目
type CarouselTapeEntry = utils.TapeEntry[config.CardConfig]

// CarouselComponent 轮盘状态组件
//
// 场景中只有一个轮盘实体。所有滚动、选择和转动状态都在这里，
// 由 CarouselSystem 读写，渲染系统只读。
type CarouselComponent struct {
	// ===== 卡牌数据 =====
	Cards     []config.CardConfig
	Tape      []CarouselTapeEntry
	Loops     int
	BackImage string

	// ===== 布局 =====
	ViewportWidth  float64
	ViewportHeight float64
	Metrics        config.CardMetrics
	Geometry       utils.ScrollGeometry

	// ScrollOffset 物理滚动偏移（像素），对应浏览器中的 scrollLeft
	ScrollOffset float64

	// ===== 选择状态 =====
	Phase            CarouselPhase
	ActiveBaseIndex  int
	ActiveAbsIndex   int
	SelectedAbsIndex int // 仅在 PhaseSelected / PhasePrediction 时不为 NoSelection

	// LastCenteredAbs 最后一次成功换算出的居中索引，几何信息缺失时作为回退值
	LastCenteredAbs int

	// ===== 用户交互 =====
	PointerHeld bool
	// InteractionGrace 指针释放后仍算作用户滚动的剩余时间（秒）
	InteractionGrace float64
	// SettleTimer 最后一次滚动后的防抖计时（秒），到 0 时检查是否清除选择
	SettleTimer   float64
	SettlePending bool
	// Velocity 惯性滚动速度（像素/秒）
	Velocity float64

	// Snap 滚动停止后吸附到最近卡牌的动画，nil 表示没有
	Snap *SnapAnimation

	// Spin 当前转动任务，nil 表示没有
	Spin *SpinTask
}

// SnapAnimation 吸附动画
type SnapAnimation struct {
	From     float64
	To       float64
	Elapsed  float64
	Duration float64
}
