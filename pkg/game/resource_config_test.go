package game

import (
	"strings"
	"testing"
)

func TestParseResourceConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "有效配置",
			yaml: `
version: "1.0"
base_path: assets
groups:
  cards:
    images:
      - id: IMAGE_CARD_COVER
        path: images/cover
  sounds:
    sounds:
      - id: SOUND_TICK
        path: sounds/tick
`,
		},
		{
			name: "重复ID",
			yaml: `
groups:
  a:
    images:
      - id: IMAGE_X
        path: x
  b:
    sounds:
      - id: IMAGE_X
        path: y
`,
			wantErr: "duplicate resource id",
		},
		{
			name: "缺少路径",
			yaml: `
groups:
  a:
    images:
      - id: IMAGE_X
`,
			wantErr: "has no path",
		},
		{
			name: "缺少ID",
			yaml: `
groups:
  a:
    sounds:
      - path: sounds/tick
`,
			wantErr: "resource id is required",
		},
		{
			name:    "YAML语法错误",
			yaml:    "groups: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseResourceConfig([]byte(tt.yaml), "test.yaml")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.BasePath != "assets" {
				t.Errorf("BasePath = %q, want assets", cfg.BasePath)
			}
			if len(cfg.Groups) != 2 {
				t.Errorf("len(Groups) = %d, want 2", len(cfg.Groups))
			}
		})
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, ext string
		want           string
	}{
		{"assets", "images/cover", ".png", "assets/images/cover.png"},
		{"assets", "images/cover.png", ".png", "assets/images/cover.png"},
		{"assets", "/sounds/tick", ".wav", "assets/sounds/tick.wav"},
		{"", "sounds/tick.wav", ".wav", "sounds/tick.wav"},
	}

	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel, tt.ext); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
