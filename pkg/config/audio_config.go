package config

// 音效资源ID（在 assets/config/resources.yaml 中定义）
const (
	// SoundTickID 转动中每经过一张卡牌播放
	SoundTickID = "SOUND_TICK"

	// SoundFlipID 落定后卡牌翻到正面时播放
	SoundFlipID = "SOUND_FLIP"

	// SoundRevealID 打开预言时播放
	SoundRevealID = "SOUND_CHIME"

	// SoundButtonID 按钮点击
	SoundButtonID = "SOUND_BUTTONCLICK"
)

// 音量默认值
const (
	// DefaultSoundVolume 默认音效音量
	DefaultSoundVolume = 0.7

	// TickSoundVolumeScale 转动滴答声相对音效音量的比例
	TickSoundVolumeScale = 0.45
)
