package systems

import (
	"math"
	"testing"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/utils"
)

// feedPointer 把一帧鼠标采样送进输入系统（不读取 ebiten 输入）
func feedPointer(s *CarouselInputSystem, sample utils.PointerSample) {
	sample.TouchID = -1
	s.drag.Apply(sample)
	s.handlePointer(testDeltaTime)
}

// activeCardCenter 返回当前活动卡牌的屏幕中心
func activeCardCenter(t *testing.T, c *components.CarouselComponent) (int, int) {
	t.Helper()
	left := utils.ItemScreenX(c.ActiveAbsIndex, c.ScrollOffset, c.Geometry)
	x := left + c.Geometry.ItemWidth/2
	y := c.Metrics.TopY + c.Metrics.Height/2
	return int(math.Round(x)), int(math.Round(y))
}

func TestCarouselInputTapSelectedCard(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{values: []int{3, 0}}, nil)
	input := NewCarouselInputSystem(sys)

	sys.StartSpin()
	runUntilSettled(t, sys)
	c := carouselComponent(t, em, sys)
	x, y := activeCardCenter(t, c)

	feedPointer(input, utils.PointerSample{JustPressed: true, Pressed: true, X: x, Y: y})
	feedPointer(input, utils.PointerSample{Pressed: true, X: x + 2, Y: y})
	feedPointer(input, utils.PointerSample{X: x + 2, Y: y})

	if sys.GetPhase() != components.PhasePrediction {
		t.Errorf("phase after tap = %s, want prediction", sys.GetPhase())
	}
}

func TestCarouselInputDragScrolls(t *testing.T) {
	em, sys := newTestCarousel(t, 5, nil, nil)
	input := NewCarouselInputSystem(sys)
	c := carouselComponent(t, em, sys)
	x, y := activeCardCenter(t, c)
	before := c.ScrollOffset

	feedPointer(input, utils.PointerSample{JustPressed: true, Pressed: true, X: x, Y: y})
	if !sys.IsUserInteracting() {
		t.Error("press on the strip should count as user interaction")
	}

	// 第一帧越过拖动阈值，第二帧继续向左拖
	feedPointer(input, utils.PointerSample{Pressed: true, X: x - 10, Y: y})
	feedPointer(input, utils.PointerSample{Pressed: true, X: x - 40, Y: y})

	if got := c.ScrollOffset - before; math.Abs(got-40) > 1e-9 {
		t.Errorf("scroll moved by %.2f, want 40", got)
	}

	feedPointer(input, utils.PointerSample{X: x - 40, Y: y})
	if c.PointerHeld {
		t.Error("pointer should be released")
	}
	if !sys.IsUserInteracting() {
		t.Error("release grace should still count as user interaction")
	}
	if sys.GetPhase() != components.PhaseIdle {
		t.Errorf("phase = %s, want idle", sys.GetPhase())
	}
}

func TestCarouselInputIgnoresPressOutsideStrip(t *testing.T) {
	em, sys := newTestCarousel(t, 5, nil, nil)
	input := NewCarouselInputSystem(sys)
	c := carouselComponent(t, em, sys)
	before := c.ScrollOffset

	feedPointer(input, utils.PointerSample{JustPressed: true, Pressed: true, X: 200, Y: 2})
	feedPointer(input, utils.PointerSample{Pressed: true, X: 100, Y: 2})
	feedPointer(input, utils.PointerSample{X: 100, Y: 2})

	if c.ScrollOffset != before {
		t.Errorf("scroll changed from %.2f to %.2f", before, c.ScrollOffset)
	}
	if c.PointerHeld {
		t.Error("press outside the strip should not hold the pointer")
	}
}

func TestCarouselInputDragIgnoredWhileSpinning(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{values: []int{2, 1}}, nil)
	input := NewCarouselInputSystem(sys)
	c := carouselComponent(t, em, sys)

	sys.StartSpin()
	sys.Update(testDeltaTime)
	x, y := activeCardCenter(t, c)
	before := c.ScrollOffset

	feedPointer(input, utils.PointerSample{JustPressed: true, Pressed: true, X: x, Y: y})
	feedPointer(input, utils.PointerSample{Pressed: true, X: x - 80, Y: y})
	feedPointer(input, utils.PointerSample{X: x - 80, Y: y})

	if c.ScrollOffset != before {
		t.Errorf("drag moved the tape during a spin: %.2f -> %.2f", before, c.ScrollOffset)
	}
	if sys.GetPhase() != components.PhaseSpinning {
		t.Errorf("phase = %s, want spinning", sys.GetPhase())
	}
}

// TestCarouselInputHoldThroughLandingThenDrag 转动中按下、按住到落点后再拖动，仍清除选择
func TestCarouselInputHoldThroughLandingThenDrag(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{values: []int{3, 0}}, nil)
	input := NewCarouselInputSystem(sys)
	c := carouselComponent(t, em, sys)

	sys.StartSpin()
	sys.Update(testDeltaTime)
	x, y := activeCardCenter(t, c)

	feedPointer(input, utils.PointerSample{JustPressed: true, Pressed: true, X: x, Y: y})
	for i := 0; i < 600 && sys.GetPhase() == components.PhaseSpinning; i++ {
		feedPointer(input, utils.PointerSample{Pressed: true, X: x, Y: y})
		sys.Update(testDeltaTime)
	}
	if sys.GetPhase() != components.PhaseSelected {
		t.Fatalf("phase after landing = %s, want selected", sys.GetPhase())
	}
	selected := sys.GetSelectedAbsIndex()

	for i := 1; i <= 30; i++ {
		feedPointer(input, utils.PointerSample{Pressed: true, X: x - 25*i, Y: y})
		sys.Update(testDeltaTime)
	}
	if sys.GetActiveAbsIndex() == selected {
		t.Fatal("drag should move the tape away from the landed card")
	}

	feedPointer(input, utils.PointerSample{X: x - 750, Y: y})
	for i := 0; i < 120; i++ {
		sys.Update(testDeltaTime)
	}

	if sys.GetPhase() != components.PhaseIdle {
		t.Errorf("phase = %s, want idle", sys.GetPhase())
	}
	if sys.GetSelectedAbsIndex() != components.NoSelection {
		t.Errorf("selected = %d, want none", sys.GetSelectedAbsIndex())
	}
}
