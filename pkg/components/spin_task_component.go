package components

// SpinTask 一次转动的动画任务
//
// 位置以卡带索引为单位记录（可以是小数），每帧再换算成滚动偏移，
// 所以转动中窗口尺寸变化不会让落点偏移。
// 任务一旦取消就不会再推进，新的转动会创建新的任务。
type SpinTask struct {
	// ID 任务序号，用于日志
	ID int

	// StartPosition 起始位置（居中卡牌的绝对索引）
	// 重新居中保护平移卡带时同步平移
	StartPosition float64

	StartBaseIndex  int
	TargetBaseIndex int
	Loops           int
	TotalSteps      int

	Elapsed  float64
	Duration float64

	// LastAbsIndex 上一帧发布的绝对索引，-1 表示还没有发布
	LastAbsIndex int

	cancelled bool
}

// Cancel 取消任务
func (t *SpinTask) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled 任务是否已取消
func (t *SpinTask) Cancelled() bool {
	return t == nil || t.cancelled
}

// Progress 返回线性时间进度 [0, 1]
func (t *SpinTask) Progress() float64 {
	if t == nil || t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
