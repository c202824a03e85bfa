package config

// Loading Scene 配置常量

const (
	// BootMinDelay 启动画面最短显示时间（秒）
	BootMinDelay float64 = 4.0

	// BootFadeDuration 启动画面淡出 / 主界面淡入时长（秒）
	BootFadeDuration float64 = 0.6

	// LoadingOrbRadius 水晶球半径
	LoadingOrbRadius float64 = 44

	// LoadingOrbPulsePeriod 水晶球脉动周期（秒）
	LoadingOrbPulsePeriod float64 = 2.4

	// LoadingTextFontSize 加载文字字体大小
	LoadingTextFontSize float64 = 24

	// LoadingTextOffsetY 加载文字相对屏幕中心的 Y 偏移
	LoadingTextOffsetY float64 = 80

	// LoadingText 加载文字
	LoadingText = "reading your fate"
)
