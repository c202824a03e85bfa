package systems

import (
	"testing"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
)

// newTestButton 在 (100, 200) 处创建 200x50 的按钮
func newTestButton(em *ecs.EntityManager, onClick func()) (ecs.EntityID, *components.ButtonComponent) {
	entity := em.CreateEntity()
	button := &components.ButtonComponent{
		Text:    "test",
		Width:   200,
		Height:  50,
		Enabled: true,
		OnClick: onClick,
	}
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 100, Y: 200})
	ecs.AddComponent(em, entity, button)
	return entity, button
}

func TestButtonSystemStates(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		pressed  bool
		enabled  bool
		expected components.UIState
	}{
		{"外部为正常", 10, 10, false, true, components.UINormal},
		{"悬停", 150, 220, false, true, components.UIHovered},
		{"按下", 150, 220, true, true, components.UIClicked},
		{"禁用", 150, 220, true, false, components.UIDisabled},
		{"边界上算悬停", 300, 250, false, true, components.UIHovered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			_, button := newTestButton(em, nil)
			button.Enabled = tt.enabled

			sys := NewButtonSystem(em, nil)
			if sys.Apply(tt.x, tt.y, tt.pressed, false) {
				t.Error("no click expected without release")
			}
			if button.State != tt.expected {
				t.Errorf("state = %v, want %v", button.State, tt.expected)
			}
		})
	}
}

func TestButtonSystemClick(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	_, button := newTestButton(em, func() { clicks++ })
	sounds := &recordingSounds{}
	sys := NewButtonSystem(em, sounds)

	sys.Apply(150, 220, true, false)
	if !sys.Apply(150, 220, false, true) {
		t.Fatal("release inside the button should click")
	}
	if clicks != 1 {
		t.Errorf("OnClick called %d times, want 1", clicks)
	}
	if sounds.count(config.SoundButtonID) != 1 {
		t.Errorf("button sound played %d times, want 1", sounds.count(config.SoundButtonID))
	}
	if button.State != components.UIHovered {
		t.Errorf("state after click = %v, want hovered", button.State)
	}

	// 在外部释放不触发
	if sys.Apply(10, 10, false, true) {
		t.Error("release outside should not click")
	}
	if clicks != 1 {
		t.Errorf("OnClick called %d times after outside release", clicks)
	}
}

func TestButtonSystemDisabledIgnoresClick(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	_, button := newTestButton(em, func() { clicks++ })
	button.Enabled = false
	sounds := &recordingSounds{}
	sys := NewButtonSystem(em, sounds)

	if sys.Apply(150, 220, false, true) {
		t.Error("disabled button should not click")
	}
	if clicks != 0 || len(sounds.played) != 0 {
		t.Errorf("disabled button reacted: clicks %d, sounds %v", clicks, sounds.played)
	}
}

func TestButtonSystemContains(t *testing.T) {
	em := ecs.NewEntityManager()
	_, button := newTestButton(em, nil)
	button.Enabled = false
	sys := NewButtonSystem(em, nil)

	if !sys.Contains(150, 220) {
		t.Error("point inside a disabled button should still be contained")
	}
	if sys.Contains(50, 220) {
		t.Error("point left of the button should not be contained")
	}
}

func TestButtonFillColor(t *testing.T) {
	button := &components.ButtonComponent{}
	button.FillColor.R, button.FillColor.G, button.FillColor.B, button.FillColor.A = 100, 100, 100, 255
	button.DisabledColor.A = 255

	button.State = components.UIHovered
	if c := buttonFillColor(button); c.R <= 100 {
		t.Errorf("hovered color should be brighter, got %v", c)
	}
	button.State = components.UIClicked
	if c := buttonFillColor(button); c.R >= 100 {
		t.Errorf("clicked color should be darker, got %v", c)
	}
	button.State = components.UIDisabled
	if c := buttonFillColor(button); c != button.DisabledColor {
		t.Errorf("disabled color = %v, want %v", c, button.DisabledColor)
	}

	// 提亮不超过 alpha
	bright := shadeColor(button.FillColor, 10)
	if bright.R != 255 {
		t.Errorf("shadeColor should clamp to alpha, got %v", bright)
	}
}
