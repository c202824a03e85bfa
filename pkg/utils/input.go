// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时使用保存的最后触摸位置
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// WheelDelta 返回本帧滚轮的水平滚动量（像素）
// 纵向滚轮也映射到水平方向，向下滚动等于向右
func WheelDelta(step float64) float64 {
	dx, dy := ebiten.Wheel()
	delta := -dx
	if dy != 0 {
		delta = -dy
	}
	return delta * step
}

// IsActivateKeyJustPressed 是否刚按下确认键（Enter 或空格）
func IsActivateKeyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// ============================================================================
// 拖拽状态管理器 - 用于卡带的滑动交互
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回拖拽状态名称（用于日志）
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "none"
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	}
	return "unknown"
}

// DragInfo 拖拽信息
type DragInfo struct {
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置
	CurrentX, CurrentY int
	// PrevX 上一帧的 X 坐标，用于计算每帧位移
	PrevX int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入
	IsTouchInput bool
}

// PointerSample 一帧的指针采样
// 由 ReadPointerSample 从 ebiten 读取，测试中可以直接构造
type PointerSample struct {
	JustPressed  bool
	Pressed      bool
	X, Y         int
	TouchID      ebiten.TouchID
	IsTouchInput bool
}

// ReadPointerSample 读取本帧的指针输入，触摸优先
func ReadPointerSample(tracked ebiten.TouchID) PointerSample {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = x, y
		return PointerSample{JustPressed: true, Pressed: true, X: x, Y: y, TouchID: ids[0], IsTouchInput: true}
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		if tracked < 0 || id == tracked {
			x, y := ebiten.TouchPosition(id)
			return PointerSample{Pressed: true, X: x, Y: y, TouchID: id, IsTouchInput: true}
		}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
		TouchID:     -1,
	}
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	return &DragManager{info: DragInfo{State: DragStateNone, TouchID: -1}}
}

// Update 用 ebiten 当前输入更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Apply(ReadPointerSample(dm.info.TouchID))
}

// Apply 用一帧指针采样推进拖拽状态
func (dm *DragManager) Apply(sample PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if sample.JustPressed {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       sample.X,
				StartY:       sample.Y,
				CurrentX:     sample.X,
				CurrentY:     sample.Y,
				PrevX:        sample.X,
				TouchID:      sample.TouchID,
				IsTouchInput: sample.IsTouchInput,
			}
		}

	case DragStateStarted, DragStateDragging:
		// 触摸和鼠标分别跟踪，另一种输入不影响当前拖拽
		if !sample.Pressed || sample.IsTouchInput != dm.info.IsTouchInput {
			dm.info.State = DragStateEnded
			dm.info.PrevX = dm.info.CurrentX
			return
		}
		dm.info.State = DragStateDragging
		dm.info.PrevX = dm.info.CurrentX
		dm.info.CurrentX, dm.info.CurrentY = sample.X, sample.Y

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
		dm.Apply(sample)
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// FrameDeltaX 本帧指针的水平位移
func (dm *DragManager) FrameDeltaX() int {
	if dm.info.State != DragStateDragging {
		return 0
	}
	return dm.info.CurrentX - dm.info.PrevX
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
