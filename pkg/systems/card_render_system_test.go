package systems

import (
	"math"
	"testing"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
)

func TestFlipScaleX(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"开始", 0, 1},
		{"四分之一", 0.25, math.Cos(math.Pi / 4)},
		{"一半时压缩为0", 0.5, 0},
		{"结束", 1, 1},
		{"超出范围", 1.5, 1},
		{"负数", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlipScaleX(tt.progress); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FlipScaleX(%v) = %v, want %v", tt.progress, got, tt.want)
			}
		})
	}
}

func TestPulseScale(t *testing.T) {
	if got := PulseScale(0); math.Abs(got) > 1e-9 {
		t.Errorf("PulseScale(0) = %v, want 0", got)
	}
	if got := PulseScale(config.CardPulsePeriod / 2); math.Abs(got-config.CardPulseAmplitude) > 1e-9 {
		t.Errorf("PulseScale(half period) = %v, want %v", got, config.CardPulseAmplitude)
	}
	if got := PulseScale(config.CardPulsePeriod); math.Abs(got) > 1e-9 {
		t.Errorf("PulseScale(period) = %v, want 0", got)
	}
}

func TestCardRenderInactiveVisual(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{}, nil)
	render := NewCardRenderSystem(em, sys, nil, CardFonts{})
	render.Update(testDeltaTime)

	v := render.VisualFor(sys.GetActiveAbsIndex() + 1)
	if v.Active {
		t.Error("neighbour card should not be active")
	}
	if v.Scale != config.InactiveCardScale || v.Alpha != config.InactiveCardAlpha {
		t.Errorf("inactive visual = %+v", v)
	}
	if v.Face != components.CardFaceBack {
		t.Errorf("inactive face = %s, want back", v.Face)
	}
}

func TestCardRenderFlipAfterSpin(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{values: []int{3, 0}}, nil)
	render := NewCardRenderSystem(em, sys, nil, CardFonts{})

	// 空闲时激活卡牌背面朝上，上浮逐渐到 ActiveCardBackLift
	for i := 0; i < 60; i++ {
		render.Update(testDeltaTime)
	}
	v := render.VisualFor(sys.GetActiveAbsIndex())
	if !v.Active || v.Face != components.CardFaceBack {
		t.Fatalf("idle active visual = %+v", v)
	}
	if math.Abs(v.Lift-config.ActiveCardBackLift) > 0.01 || v.Scale != 1 {
		t.Errorf("idle active lift/scale = %v/%v", v.Lift, v.Scale)
	}

	if !sys.StartSpin() {
		t.Fatal("StartSpin failed")
	}
	for sys.GetPhase() == components.PhaseSpinning {
		sys.Update(testDeltaTime)
		render.Update(testDeltaTime)
	}

	anim := render.animation()
	if anim.AbsIndex != sys.GetSelectedAbsIndex() {
		t.Fatalf("animation tracks abs %d, selected %d", anim.AbsIndex, sys.GetSelectedAbsIndex())
	}

	// 下一帧开始翻面：先压缩，仍然显示背面
	render.Update(testDeltaTime)
	if anim.TargetFace != components.CardFaceFront {
		t.Fatalf("target face = %s, want front", anim.TargetFace)
	}
	if anim.ShownFace != components.CardFaceBack || anim.FlipProgress >= 0.5 {
		t.Errorf("flip should start on the back face, got %s at %.2f", anim.ShownFace, anim.FlipProgress)
	}

	// 翻面完成后显示正面，并开始呼吸动画
	for i := 0; i < int(config.CardFlipDuration/testDeltaTime)+2; i++ {
		render.Update(testDeltaTime)
	}
	if anim.ShownFace != components.CardFaceFront || anim.FlipProgress != 1 {
		t.Errorf("after flip: face %s, progress %.2f", anim.ShownFace, anim.FlipProgress)
	}
	if anim.PulseTime <= 0 {
		t.Error("clickable card should pulse")
	}

	v = render.VisualFor(sys.GetSelectedAbsIndex())
	if v.Face != components.CardFaceFront || v.FlipX != 1 {
		t.Errorf("front visual = %+v", v)
	}
	if v.Scale <= 1 || v.Lift <= config.ActiveCardBackLift {
		t.Errorf("face-up active card should be emphasized, got scale %v lift %v", v.Scale, v.Lift)
	}

	// 打开预言：不再可点击，呼吸停止，翻到预言面
	if !sys.ClickSelected() {
		t.Fatal("ClickSelected failed")
	}
	render.Update(testDeltaTime)
	if anim.TargetFace != components.CardFacePrediction {
		t.Errorf("target face = %s, want prediction", anim.TargetFace)
	}
	if anim.PulseTime != 0 {
		t.Error("pulse should stop once the prediction is open")
	}
}

func TestCardRenderActiveChangeResets(t *testing.T) {
	em, sys := newTestCarousel(t, 5, &sequenceRNG{}, nil)
	render := NewCardRenderSystem(em, sys, nil, CardFonts{})

	for i := 0; i < 30; i++ {
		render.Update(testDeltaTime)
	}
	anim := render.animation()
	before := anim.AbsIndex

	if !sys.StepBy(1) {
		t.Fatal("StepBy failed")
	}
	// 推进到吸附结束
	for i := 0; i < 60; i++ {
		sys.Update(testDeltaTime)
	}
	render.Update(testDeltaTime)

	if anim.AbsIndex == before {
		t.Fatal("animation should follow the new active card")
	}
	if anim.Emphasis >= 0.5 {
		t.Errorf("emphasis should restart for the new active card, got %v", anim.Emphasis)
	}
	if anim.FlipProgress != 1 {
		t.Errorf("no flip expected when moving between backs, progress %v", anim.FlipProgress)
	}
}

func TestPlaceholderColorStable(t *testing.T) {
	a := placeholderColor("sun")
	b := placeholderColor("sun")
	c := placeholderColor("moon")
	if a != b {
		t.Error("placeholder color must be stable for the same id")
	}
	if a == c {
		t.Log("different ids produced the same color (hash collision)")
	}
	if a.A != 255 {
		t.Errorf("placeholder must be opaque, alpha %d", a.A)
	}
}
