package game

import (
	"log"

	"github.com/decker502/tarot/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "tarot_roulette"

// GameState 存储跨场景共享的全局状态
// 这是一个单例，持有存储、设置和音频管理器
type GameState struct {
	gdataManager    *gdata.Manager   // 可为 nil（受限环境下降级为内存设置）
	settingsManager *SettingsManager // 全局设置
	audioManager    *AudioManager    // 由 app 在音频上下文创建后注入
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 首次调用时打开 gdata 存储并加载设置
func GetGameState() *GameState {
	if globalGameState == nil {
		// Android 上 gdata 不会创建存储目录
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[GameState] Warning: %v", err)
		}
		if dir := utils.GetStoragePath(); dir != "" {
			log.Printf("[GameState] Storage path: %s", dir)
		}
		manager, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[GameState] Warning: gdata unavailable, settings will not persist: %v", err)
			manager = nil
		}
		globalGameState = &GameState{
			gdataManager:    manager,
			settingsManager: NewSettingsManager(manager),
		}
	}
	return globalGameState
}

// resetGlobalGameState 丢弃单例（测试使用）
func resetGlobalGameState() {
	globalGameState = nil
}

// GetGdataManager 返回 gdata 存储管理器，可能为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 注入音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未注入时为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
