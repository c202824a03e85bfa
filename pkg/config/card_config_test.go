package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDeckYAML = `
id: year2026
backImage: IMAGE_CARD_COVER
cards:
  - id: sun
    title: The Sun
    image: assets/images/cards/sun.png
    prediction: |
      2026

      A bright year.

      Trust the light.
  - id: moon
    title: "  The Moon  "
    image: assets/images/cards/moon.png
    prediction: "2026\n\nQuiet nights."
`

// TestParseCardDeck 测试正常解析牌组
func TestParseCardDeck(t *testing.T) {
	deck, err := ParseCardDeck([]byte(testDeckYAML), "test")
	if err != nil {
		t.Fatalf("ParseCardDeck() error: %v", err)
	}

	if deck.ID != "year2026" {
		t.Errorf("ID = %q, want year2026", deck.ID)
	}
	if len(deck.Cards) != 2 {
		t.Fatalf("len(Cards) = %d, want 2", len(deck.Cards))
	}

	// 顺序保持与文件一致
	if deck.Cards[0].ID != "sun" || deck.Cards[1].ID != "moon" {
		t.Errorf("card order = [%s %s], want [sun moon]", deck.Cards[0].ID, deck.Cards[1].ID)
	}

	// 标题首尾空白被去除
	if deck.Cards[1].Title != "The Moon" {
		t.Errorf("Title = %q, want %q", deck.Cards[1].Title, "The Moon")
	}

	// 段落结构保留，末尾换行被去除
	if !strings.Contains(deck.Cards[0].Prediction, "\n\n") {
		t.Errorf("Prediction lost paragraph breaks: %q", deck.Cards[0].Prediction)
	}
	if strings.HasSuffix(deck.Cards[0].Prediction, "\n") {
		t.Errorf("Prediction should be trimmed: %q", deck.Cards[0].Prediction)
	}
}

// TestParseCardDeckDefaults 测试默认值
func TestParseCardDeckDefaults(t *testing.T) {
	deck, err := ParseCardDeck([]byte("id: minimal\ncards: []\n"), "test")
	if err != nil {
		t.Fatalf("ParseCardDeck() error: %v", err)
	}

	if deck.Name != "minimal" {
		t.Errorf("Name = %q, want minimal", deck.Name)
	}
	if deck.BackImage != DefaultBackImage {
		t.Errorf("BackImage = %q, want %q", deck.BackImage, DefaultBackImage)
	}
	if len(deck.Cards) != 0 {
		t.Errorf("empty deck should stay empty, got %d cards", len(deck.Cards))
	}
}

// TestParseCardDeckValidation 测试非法配置
func TestParseCardDeckValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "缺少牌组ID",
			yaml:    "cards: []",
			wantErr: "deck ID is required",
		},
		{
			name:    "缺少卡牌ID",
			yaml:    "id: d\ncards:\n  - title: A\n    prediction: p",
			wantErr: "id is required",
		},
		{
			name:    "卡牌ID重复",
			yaml:    "id: d\ncards:\n  - {id: a, title: A, prediction: p}\n  - {id: a, title: B, prediction: q}",
			wantErr: "duplicate id",
		},
		{
			name:    "缺少标题",
			yaml:    "id: d\ncards:\n  - {id: a, prediction: p}",
			wantErr: "title is required",
		},
		{
			name:    "缺少预言",
			yaml:    "id: d\ncards:\n  - {id: a, title: A}",
			wantErr: "prediction is required",
		},
		{
			name:    "YAML 语法错误",
			yaml:    "id: [unclosed",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCardDeck([]byte(tt.yaml), "test")
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoadCardDeck 测试从文件加载
func TestLoadCardDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.yaml")
	if err := os.WriteFile(path, []byte(testDeckYAML), 0644); err != nil {
		t.Fatalf("write temp deck: %v", err)
	}

	deck, err := LoadCardDeck(path)
	if err != nil {
		t.Fatalf("LoadCardDeck() error: %v", err)
	}
	if len(deck.Cards) != 2 {
		t.Errorf("len(Cards) = %d, want 2", len(deck.Cards))
	}

	if _, err := LoadCardDeck(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
