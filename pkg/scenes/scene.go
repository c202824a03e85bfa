package scenes

import (
	"github.com/decker502/tarot/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay in this package.
type Scene = game.Scene

// 场景名称（SceneManager.SwitchToNamed 使用）
const (
	SceneLoading = "loading"
	SceneTarot   = "tarot"
)
