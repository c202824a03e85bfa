// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/embedded"
	"github.com/decker502/tarot/pkg/game"
	"github.com/decker502/tarot/pkg/scenes"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 资源文件位置
const (
	// ResourceConfigPath 资源配置文件
	ResourceConfigPath = "assets/config/resources.yaml"

	// DefaultDeckPath 内置牌组
	DefaultDeckPath = "data/cards.yaml"
)

// preloadSounds 启动时预加载的音效
var preloadSounds = []string{
	config.SoundTickID,
	config.SoundFlipID,
	config.SoundRevealID,
	config.SoundButtonID,
}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示每次运行结果不同
	Seed uint64
	// SkipLoadingScene 跳过启动画面，直接进入轮盘
	SkipLoadingScene bool
	// DeckPath 从文件系统加载牌组（为空则使用内置牌组）
	DeckPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载资源配置
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 加载牌组
	deck, err := LoadDeck(cfg.DeckPath)
	if err != nil {
		return nil, fmt.Errorf("牌组加载失败: %w", err)
	}
	log.Printf("[App] Deck %q: %d cards", deck.ID, len(deck.Cards))

	// 初始化 AudioManager 并设置到 GameState
	gameState := game.GetGameState()
	audioManager := game.NewAudioManager(resourceManager, gameState.GetSettingsManager())
	gameState.SetAudioManager(audioManager)
	loaded := audioManager.PreloadSounds(preloadSounds)
	log.Printf("[App] AudioManager initialized, %d/%d sounds preloaded", loaded, len(preloadSounds))

	// 恢复全屏设置
	settingsManager := gameState.GetSettingsManager()
	if settingsManager.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器
	rng := utils.NewRandomSource(cfg.Seed)
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(NewSceneFactory(resourceManager, sceneManager, deck, rng))

	// 根据配置决定启动场景
	startScene := scenes.SceneLoading
	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled, going straight to the carousel")
		if err := resourceManager.PrepareFonts(); err != nil {
			return nil, fmt.Errorf("字体加载失败: %w", err)
		}
		startScene = scenes.SceneTarot
	}
	if !sceneManager.SwitchToNamed(startScene) {
		return nil, fmt.Errorf("无法创建场景: %s", startScene)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// NewSceneFactory 返回按名称创建场景的工厂函数
func NewSceneFactory(rm *game.ResourceManager, sm *game.SceneManager, deck *config.DeckConfig, rng utils.RandomSource) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case scenes.SceneLoading:
			return scenes.NewLoadingScene(rm, sm)
		case scenes.SceneTarot:
			return scenes.NewTarotScene(rm, sm, deck, rng)
		}
		return nil
	}
}

// LoadDeck 加载牌组
// path 为空时读取内置的 data/cards.yaml，否则从文件系统读取
func LoadDeck(path string) (*config.DeckConfig, error) {
	if path != "" {
		log.Printf("[App] Loading deck from file: %s", path)
		return config.LoadCardDeck(path)
	}

	data, err := embedded.ReadFile(DefaultDeckPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded deck: %w", err)
	}
	return config.ParseCardDeck(data, DefaultDeckPath)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	if a.settingsManager != nil {
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Failed to save fullscreen setting: %v", err)
		}
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑屏幕跟随窗口尺寸，卡带按视口重新测量；
// 窗口小于最小视口时保持最小视口，由 Ebitengine 缩放。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := LogicalSize(outsideWidth, outsideHeight)
	a.sceneManager.Resize(w, h)
	return w, h
}

// LogicalSize 计算窗口尺寸对应的逻辑屏幕尺寸
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, config.MinViewportWidth), max(outsideHeight, config.MinViewportHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 应用退出时释放当前场景
func (a *App) Close() {
	a.sceneManager.Dispose()
}
