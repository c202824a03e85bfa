package game

import (
	"log"

	"github.com/decker502/tarot/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效播放（滴答、翻牌、预言提示音、按钮）
//   - 从 SettingsManager 读取开关和音量
//   - 按资源ID播放，无需关心路径
//
// 加载失败的音效只记录一次警告，之后静默跳过
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	failed          map[string]bool          // 加载失败的资源ID
	volumeScale     map[string]float64       // 资源ID -> 相对音量
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
		volumeScale: map[string]float64{
			config.SoundTickID: config.TickSoundVolumeScale,
		},
	}
}

// PlaySound 播放音效（单次）
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_TICK"）
//
// 返回：
//   - bool: 是否成功播放；音效关闭或资源不可用时返回 false
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volumeFor(soundID))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SoundEnabled 返回音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// SetSoundVolume 设置音效音量（不持久化）
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return config.DefaultSoundVolume
}

// volumeFor 返回某个音效的实际播放音量
func (am *AudioManager) volumeFor(soundID string) float64 {
	volume := am.GetSoundVolume()
	if scale, ok := am.volumeScale[soundID]; ok {
		volume *= scale
	}
	return volume
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.failed[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		am.failed[soundID] = true
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
//
// 返回：
//   - int: 成功加载的数量
func (am *AudioManager) PreloadSounds(soundIDs []string) int {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
	return loaded
}
