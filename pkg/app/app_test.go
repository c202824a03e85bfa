package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/embedded"
	"github.com/decker502/tarot/pkg/game"
	"github.com/decker502/tarot/pkg/scenes"
	"github.com/decker502/tarot/pkg/utils"
)

const testDeckYAML = `
id: test
cards:
  - id: sun
    title: The Sun
    prediction: |
      2026

      Warm days ahead.

      Say yes more often.
  - id: moon
    title: The Moon
    prediction: Quiet year.
`

// TestMain 把 gdata 存储指向临时目录
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tarot-app-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", dir)
	os.Setenv("XDG_DATA_HOME", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestLogicalSize(t *testing.T) {
	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"默认窗口", config.GameWindowWidth, config.GameWindowHeight, config.GameWindowWidth, config.GameWindowHeight},
		{"小窗口使用最小视口", 200, 300, config.MinViewportWidth, config.MinViewportHeight},
		{"宽屏", 1920, 1080, 1920, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := LogicalSize(tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("LogicalSize(%d, %d) = (%d, %d), want (%d, %d)", tt.outW, tt.outH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadDeckFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(testDeckYAML), 0644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("LoadDeck failed: %v", err)
	}
	if len(deck.Cards) != 2 || deck.Cards[0].ID != "sun" {
		t.Errorf("unexpected deck: %+v", deck)
	}

	if _, err := LoadDeck(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing deck file should fail")
	}
}

func TestLoadDeckEmbedded(t *testing.T) {
	fsys := fstest.MapFS{
		DefaultDeckPath: &fstest.MapFile{Data: []byte(testDeckYAML)},
	}
	embedded.Init(fsys, fsys)
	defer embedded.Init(nil, nil)

	deck, err := LoadDeck("")
	if err != nil {
		t.Fatalf("LoadDeck failed: %v", err)
	}
	if deck.ID != "test" || len(deck.Cards) != 2 {
		t.Errorf("unexpected deck: %+v", deck)
	}
}

func TestSceneFactory(t *testing.T) {
	sm := game.NewSceneManager()
	deck, err := config.ParseCardDeck([]byte(testDeckYAML), "test")
	if err != nil {
		t.Fatal(err)
	}
	factory := NewSceneFactory(nil, sm, deck, utils.NewRandomSource(1))

	if _, ok := factory(scenes.SceneLoading).(*scenes.LoadingScene); !ok {
		t.Error("loading scene not created")
	}
	tarot, ok := factory(scenes.SceneTarot).(*scenes.TarotScene)
	if !ok {
		t.Fatal("tarot scene not created")
	}
	defer tarot.Dispose()
	if tarot.Carousel().CardCount() != 2 {
		t.Errorf("tarot scene card count = %d, want 2", tarot.Carousel().CardCount())
	}
	if factory("unknown") != nil {
		t.Error("unknown scene name should return nil")
	}
}
