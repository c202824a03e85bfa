package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the app (loading screen, tarot table).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是可选接口，场景需要感知视口尺寸时实现
//
// SceneManager 在切换场景时以及视口尺寸变化时调用 Resize
type Resizable interface {
	Resize(width, height int)
}

// Disposable 是可选接口，场景被切换掉时调用 Dispose 释放运行中的任务
type Disposable interface {
	Dispose()
}
