package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	cards:
//	  images:
//	    - id: IMAGE_CARD_COVER
//	      path: images/cover
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// ImageResource represents a single image resource definition.
// Path is relative to base_path; ".png" is appended when the extension is missing.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource represents a single sound effect definition.
// Path is relative to base_path; ".wav" is appended when the extension is missing.
//
// Example:
//   - id: SOUND_TICK
//     path: sounds/tick
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ParseResourceConfig 解析资源配置 YAML 并检查资源ID唯一性
//
// 参数：
//   - data: YAML 内容
//   - source: 来源描述，仅用于错误信息
func ParseResourceConfig(data []byte, source string) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config %s: %w", source, err)
	}

	seen := make(map[string]string)
	for groupName, group := range cfg.Groups {
		for _, img := range group.Images {
			if err := checkResourceEntry(seen, groupName, img.ID, img.Path); err != nil {
				return nil, fmt.Errorf("invalid resource config %s: %w", source, err)
			}
		}
		for _, snd := range group.Sounds {
			if err := checkResourceEntry(seen, groupName, snd.ID, snd.Path); err != nil {
				return nil, fmt.Errorf("invalid resource config %s: %w", source, err)
			}
		}
	}

	return &cfg, nil
}

func checkResourceEntry(seen map[string]string, group, id, relPath string) error {
	if id == "" {
		return fmt.Errorf("group %s: resource id is required", group)
	}
	if relPath == "" {
		return fmt.Errorf("group %s: resource %s has no path", group, id)
	}
	if prev, dup := seen[id]; dup {
		return fmt.Errorf("duplicate resource id %s (groups %s and %s)", id, prev, group)
	}
	seen[id] = group
	return nil
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path and
// appends defaultExt when the relative path has no extension.
//
// Example:
//
//	buildFullPath("assets", "sounds/tick", ".wav") -> "assets/sounds/tick.wav"
func buildFullPath(basePath, relativePath, defaultExt string) string {
	full := path.Join(basePath, relativePath)
	if path.Ext(full) == "" {
		full += defaultExt
	}
	return full
}
