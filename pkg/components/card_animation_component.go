package components

// CardAnimationComponent 卡牌视觉动画状态
//
// 同一时刻只有激活卡牌会翻面，所以只记录一组翻面状态。
type CardAnimationComponent struct {
	// AbsIndex 翻面状态对应的卡带索引
	AbsIndex int

	// ShownFace 当前画面上的卡面（翻到一半时切换）
	ShownFace CardFace
	// TargetFace 目标卡面
	TargetFace CardFace
	// FlipProgress 翻面进度 [0, 1]，1 表示静止
	FlipProgress float64

	// Emphasis 激活卡牌的强调程度 [0, 1]，用于平滑缩放和上浮
	Emphasis float64

	// PulseTime 可点击卡牌的呼吸动画时间（秒）
	PulseTime float64
}
