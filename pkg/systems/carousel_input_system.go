package systems

import (
	"math"

	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragThreshold 指针移动超过该距离（像素）才算拖动，否则视为点击
const dragThreshold = 6

// CarouselInputSystem 轮盘输入系统
// 把鼠标、触摸、滚轮和键盘输入转换成 CarouselSystem 的操作
//
// 输入映射：
//   - 在卡带上按下并拖动：用户滚动；释放速度用于惯性
//   - 在卡带上按下并原地释放：点击卡牌
//   - 滚轮：用户滚动
//   - 左右方向键：移动一张卡牌
//   - Enter / 空格：点击选中的卡牌
type CarouselInputSystem struct {
	carousel *CarouselSystem
	drag     *utils.DragManager

	// 是否已经超过拖动阈值
	dragging bool
	// 按下时是否在卡带区域内
	pressedOnStrip bool
	// 平滑后的拖动速度（像素/秒，滚动方向）
	velocity float64
}

// NewCarouselInputSystem 创建轮盘输入系统
func NewCarouselInputSystem(carousel *CarouselSystem) *CarouselInputSystem {
	return &CarouselInputSystem{
		carousel: carousel,
		drag:     utils.NewDragManager(),
	}
}

// Update 读取本帧输入
func (s *CarouselInputSystem) Update(deltaTime float64) {
	utils.UpdateLastTouchPosition()
	s.drag.Update()
	s.handlePointer(deltaTime)

	if delta := utils.WheelDelta(config.WheelScrollStep); delta != 0 {
		s.carousel.HandleUserScroll(delta, true)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.carousel.StepBy(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.carousel.StepBy(-1)
	}
	if utils.IsActivateKeyJustPressed() {
		s.carousel.ClickSelected()
	}
}

// handlePointer 处理拖动状态机的当前帧
func (s *CarouselInputSystem) handlePointer(deltaTime float64) {
	info := s.drag.GetInfo()

	switch {
	case s.drag.JustStarted():
		s.pressedOnStrip = s.carousel.StripContains(float64(info.StartX), float64(info.StartY))
		s.dragging = false
		s.velocity = 0
		if s.pressedOnStrip {
			s.carousel.PointerDown()
		}

	case s.drag.IsDragging():
		if !s.pressedOnStrip {
			return
		}
		if !s.dragging {
			dx, dy := s.drag.GetDragDistance()
			if math.Hypot(float64(dx), float64(dy)) < dragThreshold {
				return
			}
			s.dragging = true
			// 越过阈值前积累的位移一次补上
			s.carousel.HandleUserScroll(-float64(dx-s.drag.FrameDeltaX()), false)
		}

		delta := -float64(s.drag.FrameDeltaX())
		s.carousel.HandleUserScroll(delta, false)
		if deltaTime > 0 {
			s.velocity = s.velocity*0.6 + (delta/deltaTime)*0.4
		}

	case s.drag.JustEnded():
		if !s.pressedOnStrip {
			return
		}
		s.pressedOnStrip = false

		if s.dragging {
			s.dragging = false
			s.carousel.PointerUp(s.velocity)
			return
		}

		s.carousel.PointerUp(0)
		if abs, ok := s.carousel.HitTest(float64(info.CurrentX), float64(info.CurrentY)); ok {
			s.carousel.ClickCard(abs)
		}
	}
}
