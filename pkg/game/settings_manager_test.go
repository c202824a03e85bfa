package game

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/decker502/tarot/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata manager
func newTestGdataManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("tarot_test_%s_%d", name, time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != config.DefaultSoundVolume {
		t.Errorf("SoundVolume: got %v, want %v", settings.SoundVolume, config.DefaultSoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	sm.SetSoundVolume(0.3)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().SoundVolume != config.DefaultSoundVolume {
		t.Errorf("After Load() in degraded mode, SoundVolume: got %v, want default", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsLoadSave 测试设置持久化往返
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := newTestGdataManager(t, "load_save")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 损坏的数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := newTestGdataManager(t, "corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("Expected error for corrupted settings")
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("corrupted settings should fall back to defaults")
	}
}

// TestToggleSound 切换音效并持久化
func TestToggleSound(t *testing.T) {
	gdataManager := newTestGdataManager(t, "toggle")

	sm := NewSettingsManager(gdataManager)
	if sm.ToggleSound() {
		t.Error("first ToggleSound should disable sound")
	}

	reloaded := NewSettingsManager(gdataManager)
	if reloaded.GetSettings().SoundEnabled {
		t.Error("toggled setting was not persisted")
	}

	if !sm.ToggleSound() {
		t.Error("second ToggleSound should enable sound")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
		{-100, 0.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}
