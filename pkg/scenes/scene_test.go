package scenes

import (
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

const testDeltaTime = 1.0 / 60.0

// TestMain 把 gdata 存储指向临时目录，避免测试写入用户目录
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tarot-scenes-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", dir)
	os.Setenv("XDG_DATA_HOME", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fixedRNG 按顺序返回预设值（对 n 取模）
type fixedRNG struct {
	values []int
	next   int
}

func (r *fixedRNG) Intn(n int) int {
	if n <= 0 || len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

// stubScene 记录被调用次数的空场景
type stubScene struct {
	updates int
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}

func testDeck(n int) *config.DeckConfig {
	deck := &config.DeckConfig{ID: "test", BackImage: config.DefaultBackImage}
	for i := 0; i < n; i++ {
		deck.Cards = append(deck.Cards, config.CardConfig{
			ID:         fmt.Sprintf("card%d", i),
			Title:      fmt.Sprintf("Card %d", i),
			Prediction: "2026\n\nBody.\n\nAdvice.",
		})
	}
	return deck
}

func TestBootReady(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    float64
		fontsReady bool
		want       bool
	}{
		{"刚启动", 0, false, false},
		{"字体就绪但时间不够", config.BootMinDelay - 0.1, true, false},
		{"时间够但字体未就绪", config.BootMinDelay + 5, false, false},
		{"两者都满足", config.BootMinDelay, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BootReady(tt.elapsed, tt.fontsReady); got != tt.want {
				t.Errorf("BootReady(%v, %v) = %v, want %v", tt.elapsed, tt.fontsReady, got, tt.want)
			}
		})
	}
}

func TestLoadingSceneSwitchesAfterGate(t *testing.T) {
	sm := game.NewSceneManager()
	next := &stubScene{}
	sm.SetSceneFactory(func(name string) game.Scene {
		if name == SceneTarot {
			return next
		}
		return nil
	})

	loading := NewLoadingScene(nil, sm)
	sm.SwitchTo(loading)

	// 最短显示时间之前不切换
	for i := 0; i < int((config.BootMinDelay-0.1)/testDeltaTime); i++ {
		sm.Update(testDeltaTime)
	}
	if loading.IsFading() {
		t.Fatal("fade should not start before the minimum delay")
	}
	if sm.GetCurrentScene() != loading {
		t.Fatal("switched too early")
	}

	// 门打开后淡出，再切换
	for i := 0; i < int((0.2+config.BootFadeDuration)/testDeltaTime)+5; i++ {
		if sm.GetCurrentScene() != loading {
			break
		}
		sm.Update(testDeltaTime)
	}
	if sm.GetCurrentScene() != next {
		t.Fatalf("current scene = %v, want tarot stub", sm.GetCurrentScene())
	}
}

func TestLoadingSceneOrbPulse(t *testing.T) {
	loading := NewLoadingScene(nil, game.NewSceneManager())
	lo, hi := config.LoadingOrbRadius*2, 0.0
	for i := 0; i < int(config.LoadingOrbPulsePeriod/testDeltaTime); i++ {
		loading.elapsedTime += testDeltaTime
		r := loading.OrbRadius()
		lo = math.Min(lo, r)
		hi = math.Max(hi, r)
	}
	if hi <= config.LoadingOrbRadius || lo >= config.LoadingOrbRadius {
		t.Errorf("orb should pulse around its radius, got [%.2f, %.2f]", lo, hi)
	}
}

func TestBottomButtonState(t *testing.T) {
	tests := []struct {
		name        string
		phase       components.CarouselPhase
		cards       int
		wantText    string
		wantEnabled bool
	}{
		{"空闲", components.PhaseIdle, 5, config.SpinButtonText, true},
		{"空牌组", components.PhaseIdle, 0, config.SpinButtonText, false},
		{"转动中", components.PhaseSpinning, 5, config.SpinningButtonText, false},
		{"已选中", components.PhaseSelected, 5, config.ResetButtonText, true},
		{"预言", components.PhasePrediction, 5, config.ResetButtonText, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enabled := bottomButtonState(tt.phase, tt.cards)
			if text != tt.wantText || enabled != tt.wantEnabled {
				t.Errorf("bottomButtonState = (%q, %v), want (%q, %v)", text, enabled, tt.wantText, tt.wantEnabled)
			}
		})
	}
}
