package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := loadTestFace(t, 16)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{
			name:      "短文本不换行",
			input:     "The Sun",
			maxWidth:  1000,
			expectMin: 1,
		},
		{
			name:      "长文本自动换行",
			input:     "A year of steady light. What you planted in quiet seasons finally breaks the surface.",
			maxWidth:  200,
			expectMin: 3,
		},
		{
			name:      "保留原有换行",
			input:     "first\nsecond",
			maxWidth:  1000,
			expectMin: 2,
		},
		{
			name:      "空文本",
			input:     "",
			maxWidth:  100,
			expectMin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)

			if len(lines) < tt.expectMin {
				t.Errorf("期望至少 %d 行，实际得到 %d 行: %q", tt.expectMin, len(lines), lines)
			}

			for i, line := range lines {
				if w := measureTextWidth(line, font); w > tt.maxWidth {
					t.Errorf("第 %d 行 %q 宽度 %.1f 超过 %.1f", i+1, line, w, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 测试按单词断行
func TestWrapTextKeepsWords(t *testing.T) {
	font := loadTestFace(t, 16)
	input := "steady light finally breaks the surface"

	lines := WrapText(input, font, 120)
	if strings.Join(lines, " ") != input {
		t.Errorf("按单词换行后拼接应等于原文, got %q", lines)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Errorf("行首尾不应有空格: %q", line)
		}
	}
}

// TestWrapTextLongWord 测试超宽单词强制断行
func TestWrapTextLongWord(t *testing.T) {
	font := loadTestFace(t, 16)
	word := strings.Repeat("m", 40)

	lines := WrapText(word, font, 80)
	if len(lines) < 2 {
		t.Fatalf("超宽单词应被拆开, got %q", lines)
	}
	if strings.Join(lines, "") != word {
		t.Errorf("拆分后拼接应等于原单词, got %q", lines)
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		font     *text.GoTextFace
		maxWidth float64
		wantLen  int
	}{
		{
			name:     "nil font",
			input:    "test",
			font:     nil,
			maxWidth: 100,
			wantLen:  1, // 返回原文本
		},
		{
			name:     "zero maxWidth",
			input:    "test",
			font:     &text.GoTextFace{Size: 22},
			maxWidth: 0,
			wantLen:  1,
		},
		{
			name:     "negative maxWidth",
			input:    "test",
			font:     &text.GoTextFace{Size: 22},
			maxWidth: -100,
			wantLen:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.font, tt.maxWidth)
			if len(lines) != tt.wantLen {
				t.Errorf("期望 %d 行，实际得到 %d 行", tt.wantLen, len(lines))
			}
		})
	}
}
