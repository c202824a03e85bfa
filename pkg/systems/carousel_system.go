package systems

import (
	"log"
	"math"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/utils"
)

// SoundPlayer 音效播放接口
// game.AudioManager 实现了该接口；测试中可以传 nil
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// phaseTransitions 允许的阶段转换
// 卡牌集合变化时的重置不经过这里
var phaseTransitions = map[components.CarouselPhase][]components.CarouselPhase{
	components.PhaseIdle:       {components.PhaseSpinning},
	components.PhaseSpinning:   {components.PhaseSelected},
	components.PhaseSelected:   {components.PhasePrediction, components.PhaseIdle},
	components.PhasePrediction: {components.PhaseIdle},
}

// CarouselSystem 轮盘系统
//
// 职责：
//   - 维护卡带、滚动偏移和几何信息
//   - 用户滑动、惯性和吸附
//   - 无限滚动的重新居中保护
//   - 转动动画任务（可取消）
//   - 选择阶段状态机 idle → spinning → selected → prediction
//
// 所有状态保存在轮盘实体的 CarouselComponent 上，系统本身只持有依赖。
// 输入由 CarouselInputSystem 转换成这里的方法调用，方便在测试中直接驱动。
type CarouselSystem struct {
	entityManager *ecs.EntityManager
	rng           utils.RandomSource
	sounds        SoundPlayer

	// carouselEntity 轮盘实体ID
	carouselEntity ecs.EntityID

	nextSpinID int
}

// NewCarouselSystem 创建轮盘系统并初始化轮盘实体
//
// 参数：
//   - em: 实体管理器
//   - deck: 牌组配置（卡牌可以为空）
//   - rng: 随机数来源，nil 时使用全局随机源
//   - sounds: 音效播放器，可为 nil
//
// 返回：
//   - *CarouselSystem: 轮盘系统实例
func NewCarouselSystem(em *ecs.EntityManager, deck *config.DeckConfig, rng utils.RandomSource, sounds SoundPlayer) *CarouselSystem {
	if rng == nil {
		rng = utils.NewRandomSource(0)
	}

	system := &CarouselSystem{
		entityManager: em,
		rng:           rng,
		sounds:        sounds,
	}

	system.carouselEntity = em.CreateEntity()
	ecs.AddComponent(em, system.carouselEntity, &components.CarouselComponent{
		Loops:            config.CarouselLoops,
		BackImage:        config.DefaultBackImage,
		SelectedAbsIndex: components.NoSelection,
	})
	ecs.AddComponent(em, system.carouselEntity, &components.CardAnimationComponent{
		AbsIndex:     components.NoSelection,
		FlipProgress: 1,
	})

	if deck != nil {
		system.SetDeck(deck)
	}

	return system
}

// GetCarouselEntity 获取轮盘实体ID
func (s *CarouselSystem) GetCarouselEntity() ecs.EntityID {
	return s.carouselEntity
}

func (s *CarouselSystem) carousel() *components.CarouselComponent {
	c, _ := ecs.GetComponent[*components.CarouselComponent](s.entityManager, s.carouselEntity)
	return c
}

// SetDeck 替换卡牌集合，重新生成卡带并回到初始位置
func (s *CarouselSystem) SetDeck(deck *config.DeckConfig) {
	c := s.carousel()
	if c == nil {
		return
	}

	c.Cards = deck.Cards
	if deck.BackImage != "" {
		c.BackImage = deck.BackImage
	}
	c.Tape = utils.BuildTape(c.Cards, c.Loops)

	log.Printf("[CarouselSystem] Deck %q loaded: %d cards, tape length %d", deck.ID, len(c.Cards), len(c.Tape))
	s.ResetToStart()
}

// ResetToStart 回到初始状态：停在中间偏左的一圈的第一张卡牌，阶段为 idle
func (s *CarouselSystem) ResetToStart() {
	c := s.carousel()
	if c == nil {
		return
	}

	s.cancelSpin(c, "reset")

	n := len(c.Cards)
	startAbs := 0
	if n > 0 {
		startAbs = (c.Loops/2 - config.CarouselStartLoopOffset) * n
	}

	c.Phase = components.PhaseIdle
	c.SelectedAbsIndex = components.NoSelection
	c.ActiveBaseIndex = 0
	c.ActiveAbsIndex = startAbs
	c.LastCenteredAbs = startAbs
	c.Velocity = 0
	c.Snap = nil
	c.SettlePending = false
	c.PointerHeld = false
	c.InteractionGrace = 0

	if c.Geometry.Valid() && n > 0 {
		c.ScrollOffset = utils.AbsoluteIndexToScrollOffset(startAbs, c.ViewportWidth, c.Geometry)
	}
}

// Remeasure 根据视口尺寸重新计算卡牌尺寸和几何信息
//
// 在场景进入时和每次视口尺寸变化时调用。视口中心处的卡牌保持居中。
//
// 返回：
//   - utils.ScrollGeometry: 新的几何快照
func (s *CarouselSystem) Remeasure(viewportWidth, viewportHeight float64) utils.ScrollGeometry {
	c := s.carousel()
	if c == nil {
		return utils.ScrollGeometry{}
	}

	metrics := config.CalculateCardMetrics(viewportWidth, viewportHeight)
	geom := utils.MeasureGeometry(metrics)
	if geom == c.Geometry && viewportWidth == c.ViewportWidth && viewportHeight == c.ViewportHeight {
		return geom
	}

	hadGeometry := c.Geometry.Valid()
	position := float64(c.ActiveAbsIndex)
	if hadGeometry {
		position = utils.ScrollOffsetToIndexPosition(c.ScrollOffset, c.ViewportWidth, c.Geometry)
	}

	c.Metrics = metrics
	c.Geometry = geom
	c.ViewportWidth = viewportWidth
	c.ViewportHeight = viewportHeight

	if geom.Valid() && len(c.Tape) > 0 {
		c.ScrollOffset = utils.IndexPositionToScrollOffset(position, viewportWidth, geom)
		if c.Snap != nil {
			c.Snap = nil
			s.beginSnap(c)
		}
	}

	log.Printf("[CarouselSystem] Remeasured: viewport %.0fx%.0f, card %.1fx%.1f, stride %.1f, baseCenter %.1f",
		viewportWidth, viewportHeight, metrics.Width, metrics.Height, geom.Stride, geom.BaseCenter)

	return geom
}

// ===== 查询 =====

// GetPhase 获取当前阶段
func (s *CarouselSystem) GetPhase() components.CarouselPhase {
	if c := s.carousel(); c != nil {
		return c.Phase
	}
	return components.PhaseIdle
}

// GetActiveAbsIndex 获取视口中心卡牌的绝对索引
func (s *CarouselSystem) GetActiveAbsIndex() int {
	if c := s.carousel(); c != nil {
		return c.ActiveAbsIndex
	}
	return 0
}

// GetActiveBaseIndex 获取视口中心卡牌的逻辑索引
func (s *CarouselSystem) GetActiveBaseIndex() int {
	if c := s.carousel(); c != nil {
		return c.ActiveBaseIndex
	}
	return 0
}

// GetSelectedAbsIndex 获取选中卡牌的绝对索引，未选中时返回 components.NoSelection
func (s *CarouselSystem) GetSelectedAbsIndex() int {
	if c := s.carousel(); c != nil {
		return c.SelectedAbsIndex
	}
	return components.NoSelection
}

// GetScrollOffset 获取物理滚动偏移
func (s *CarouselSystem) GetScrollOffset() float64 {
	if c := s.carousel(); c != nil {
		return c.ScrollOffset
	}
	return 0
}

// GetGeometry 获取当前几何快照
func (s *CarouselSystem) GetGeometry() utils.ScrollGeometry {
	if c := s.carousel(); c != nil {
		return c.Geometry
	}
	return utils.ScrollGeometry{}
}

// CardCount 逻辑卡牌数
func (s *CarouselSystem) CardCount() int {
	if c := s.carousel(); c != nil {
		return len(c.Cards)
	}
	return 0
}

// IsSpinning 是否正在转动
func (s *CarouselSystem) IsSpinning() bool {
	return s.GetPhase() == components.PhaseSpinning
}

// IsUserInteracting 用户是否正在操作（按住指针，或刚释放仍在宽限期内）
func (s *CarouselSystem) IsUserInteracting() bool {
	c := s.carousel()
	return c != nil && (c.PointerHeld || c.InteractionGrace > 0)
}

// FaceFor 返回卡带条目应显示的卡面
func (s *CarouselSystem) FaceFor(absIndex int) components.CardFace {
	c := s.carousel()
	if c == nil || absIndex != c.SelectedAbsIndex {
		return components.CardFaceBack
	}
	switch c.Phase {
	case components.PhaseSelected:
		return components.CardFaceFront
	case components.PhasePrediction:
		return components.CardFacePrediction
	}
	return components.CardFaceBack
}

// IsClickable 条目当前是否可点击（只有 selected 阶段的选中卡牌）
func (s *CarouselSystem) IsClickable(absIndex int) bool {
	c := s.carousel()
	return c != nil && c.Phase == components.PhaseSelected && absIndex == c.SelectedAbsIndex
}

// ===== 操作 =====

// StartSpin 开始转动
//
// 只在 idle 阶段有效。卡牌为空或几何信息缺失时拒绝转动，阶段保持 idle。
//
// 返回：
//   - bool: 是否开始了转动
func (s *CarouselSystem) StartSpin() bool {
	c := s.carousel()
	if c == nil {
		return false
	}

	n := len(c.Cards)
	if n == 0 {
		log.Printf("[CarouselSystem] Spin declined: empty deck")
		return false
	}
	if c.Phase != components.PhaseIdle {
		log.Printf("[CarouselSystem] Spin declined: phase is %s", c.Phase)
		return false
	}

	// 先停掉旧任务，再修改共享的动画状态
	s.cancelSpin(c, "new spin")

	if !c.Geometry.Valid() {
		log.Printf("[CarouselSystem] Spin declined: layout not measured")
		return false
	}

	c.Velocity = 0
	c.Snap = nil
	c.SettlePending = false
	c.SelectedAbsIndex = components.NoSelection
	s.setPhase(c, components.PhaseSpinning, "spin")

	// 回到中间一圈的同一张卡牌，保证右侧有足够的空间
	s.recenterToMiddle(c)

	startAbs := s.computeCenteredAbs(c)
	startBase := utils.BaseIndexOf(startAbs, n)
	targetBase := s.rng.Intn(n)
	loops := config.SpinMinLoops + s.rng.Intn(config.SpinMaxLoops-config.SpinMinLoops+1)
	steps := loops*n + (targetBase-startBase+n)%n

	s.nextSpinID++
	c.Spin = &components.SpinTask{
		ID:              s.nextSpinID,
		StartPosition:   utils.ScrollOffsetToIndexPosition(c.ScrollOffset, c.ViewportWidth, c.Geometry),
		StartBaseIndex:  startBase,
		TargetBaseIndex: targetBase,
		Loops:           loops,
		TotalSteps:      steps,
		Duration:        config.SpinDuration,
		LastAbsIndex:    startAbs,
	}

	log.Printf("[CarouselSystem] Spin #%d started: base %d -> %d, %d loops, %d steps",
		c.Spin.ID, startBase, targetBase, loops, steps)
	return true
}

// ClickCard 点击卡带条目
// 只有 selected 阶段的选中卡牌响应点击，进入 prediction 阶段
func (s *CarouselSystem) ClickCard(absIndex int) bool {
	c := s.carousel()
	if c == nil || !s.IsClickable(absIndex) {
		return false
	}

	s.setPhase(c, components.PhasePrediction, "card clicked")
	s.playSound(config.SoundRevealID)
	return true
}

// ClickSelected 点击当前选中的卡牌（键盘 Enter / 空格）
func (s *CarouselSystem) ClickSelected() bool {
	return s.ClickCard(s.GetSelectedAbsIndex())
}

// Reset 清除选择回到 idle（"重新选择"按钮）
func (s *CarouselSystem) Reset() bool {
	c := s.carousel()
	if c == nil {
		return false
	}
	return s.clearSelection(c, "reset")
}

// Teardown 场景退出时调用，停止转动任务
func (s *CarouselSystem) Teardown() {
	if c := s.carousel(); c != nil {
		s.cancelSpin(c, "teardown")
	}
}

// PointerDown 用户在卡带上按下指针
// 转动中也记录按住状态，按住跨过落点后的拖动仍算用户滚动；
// 转动中的滚动写入由 HandleUserScroll 丢弃
func (s *CarouselSystem) PointerDown() {
	c := s.carousel()
	if c == nil {
		return
	}
	c.PointerHeld = true
	if c.Phase == components.PhaseSpinning {
		return
	}
	c.Velocity = 0
	c.Snap = nil
}

// PointerUp 用户释放指针
//
// 参数：
//   - releaseVelocity: 释放时的滚动速度（像素/秒），用于惯性滑动
func (s *CarouselSystem) PointerUp(releaseVelocity float64) {
	c := s.carousel()
	if c == nil || !c.PointerHeld {
		return
	}
	c.PointerHeld = false
	c.InteractionGrace = config.PointerReleaseGrace

	if c.Phase == components.PhaseSpinning {
		return
	}
	if math.Abs(releaseVelocity) > config.ScrollMinVelocity {
		c.Velocity = releaseVelocity
	}
}

// HandleUserScroll 用户滚动卡带（拖动或滚轮）
//
// 转动中忽略。滚轮没有按下/抬起，调用方通过 fromWheel 标记，
// 滚轮滚动同样开启宽限期，算作用户滚动。
//
// 返回：
//   - bool: 滚动是否被接受
func (s *CarouselSystem) HandleUserScroll(delta float64, fromWheel bool) bool {
	c := s.carousel()
	if c == nil || c.Phase == components.PhaseSpinning {
		return false
	}
	if len(c.Tape) == 0 || !c.Geometry.Valid() {
		return false
	}

	if fromWheel {
		c.InteractionGrace = config.PointerReleaseGrace
		c.Velocity = 0
	}
	c.Snap = nil
	c.ScrollOffset = utils.ClampScrollOffset(c.ScrollOffset+delta, c.Geometry, len(c.Tape), c.ViewportWidth)
	s.onScrolled(c)
	return true
}

// StepBy 用键盘把卡带移动 steps 张卡牌
// 键盘移动属于用户滚动，立即清除选择；移动本身用吸附动画完成
func (s *CarouselSystem) StepBy(steps int) bool {
	c := s.carousel()
	if c == nil || c.Phase == components.PhaseSpinning || len(c.Tape) == 0 || !c.Geometry.Valid() {
		return false
	}

	target := c.ActiveAbsIndex + steps
	if steps == 0 || target < 0 || target > len(c.Tape)-1 {
		return false
	}
	s.clearSelection(c, "keyboard scroll")
	c.Velocity = 0
	s.snapTo(c, target)
	return true
}

// HitTest 返回屏幕坐标处的卡带条目
// 只检测卡牌本身的矩形，间距和卡带上下的空白不算
func (s *CarouselSystem) HitTest(x, y float64) (int, bool) {
	c := s.carousel()
	if c == nil || len(c.Tape) == 0 || !c.Geometry.Valid() {
		return 0, false
	}
	if y < c.Metrics.TopY || y > c.Metrics.TopY+c.Metrics.Height {
		return 0, false
	}

	first, last := utils.VisibleIndexRange(c.ScrollOffset, c.ViewportWidth, c.Geometry, len(c.Tape))
	for abs := first; abs <= last; abs++ {
		left := utils.ItemScreenX(abs, c.ScrollOffset, c.Geometry)
		if x >= left && x <= left+c.Geometry.ItemWidth {
			return abs, true
		}
	}
	return 0, false
}

// StripContains 屏幕坐标是否在卡带区域内（含卡牌上下的留白）
func (s *CarouselSystem) StripContains(x, y float64) bool {
	c := s.carousel()
	if c == nil {
		return false
	}
	top := c.Metrics.TopY - config.ActiveCardLift*2
	bottom := c.Metrics.TopY + c.Metrics.Height + config.ActiveCardLift*2
	return x >= 0 && x <= c.ViewportWidth && y >= top && y <= bottom
}

// Update 推进一帧
func (s *CarouselSystem) Update(deltaTime float64) {
	c := s.carousel()
	if c == nil {
		return
	}

	if c.InteractionGrace > 0 {
		c.InteractionGrace = math.Max(0, c.InteractionGrace-deltaTime)
	}

	if c.Spin != nil {
		s.tickSpin(c, deltaTime)
		return
	}

	s.updateInertia(c, deltaTime)
	s.updateSnap(c, deltaTime)
	s.updateSettle(c, deltaTime)
}

// ===== 内部逻辑 =====

// setPhase 切换阶段，只允许 phaseTransitions 中列出的转换
func (s *CarouselSystem) setPhase(c *components.CarouselComponent, to components.CarouselPhase, reason string) bool {
	for _, allowed := range phaseTransitions[c.Phase] {
		if allowed == to {
			log.Printf("[CarouselSystem] Phase %s -> %s (%s)", c.Phase, to, reason)
			c.Phase = to
			return true
		}
	}
	log.Printf("[CarouselSystem] Ignored phase change %s -> %s (%s)", c.Phase, to, reason)
	return false
}

// clearSelection 清除选择回到 idle，只在 selected / prediction 阶段有效
func (s *CarouselSystem) clearSelection(c *components.CarouselComponent, reason string) bool {
	if c.Phase != components.PhaseSelected && c.Phase != components.PhasePrediction {
		return false
	}
	c.SelectedAbsIndex = components.NoSelection
	return s.setPhase(c, components.PhaseIdle, reason)
}

// cancelSpin 取消当前转动任务
func (s *CarouselSystem) cancelSpin(c *components.CarouselComponent, reason string) {
	if c.Spin == nil {
		return
	}
	c.Spin.Cancel()
	log.Printf("[CarouselSystem] Spin #%d cancelled (%s)", c.Spin.ID, reason)
	c.Spin = nil
}

// computeCenteredAbs 计算视口中心的绝对索引，并记录为最后一次有效值
func (s *CarouselSystem) computeCenteredAbs(c *components.CarouselComponent) int {
	abs := utils.PositionToAbsoluteIndex(c.ScrollOffset, c.ViewportWidth, c.Geometry, len(c.Tape), c.LastCenteredAbs)
	c.LastCenteredAbs = abs
	return abs
}

func (s *CarouselSystem) setActive(c *components.CarouselComponent, abs int) {
	c.ActiveAbsIndex = abs
	c.ActiveBaseIndex = utils.BaseIndexOf(abs, len(c.Cards))
}

// applyGuard 运行重新居中保护，并把所有以绝对索引记录的状态一起平移
//
// 返回：
//   - int: 平移的整轮数
func (s *CarouselSystem) applyGuard(c *components.CarouselComponent) int {
	n := len(c.Cards)
	scroll, loopShift := utils.RecenterScroll(c.ScrollOffset, c.Geometry, n, c.Loops)
	if loopShift == 0 {
		return 0
	}

	delta := scroll - c.ScrollOffset
	indexShift := loopShift * n

	c.ScrollOffset = scroll
	c.LastCenteredAbs += indexShift
	c.ActiveAbsIndex += indexShift
	if c.SelectedAbsIndex != components.NoSelection {
		c.SelectedAbsIndex += indexShift
	}
	if c.Snap != nil {
		c.Snap.From += delta
		c.Snap.To += delta
	}
	if c.Spin != nil {
		c.Spin.StartPosition += float64(indexShift)
		c.Spin.LastAbsIndex += indexShift
	}
	if anim, ok := ecs.GetComponent[*components.CardAnimationComponent](s.entityManager, s.carouselEntity); ok && anim.AbsIndex >= 0 {
		anim.AbsIndex += indexShift
	}

	log.Printf("[CarouselSystem] Recentered by %d loops", loopShift)
	return loopShift
}

// recenterToMiddle 跳到中间一圈的同一张卡牌（无动画）
func (s *CarouselSystem) recenterToMiddle(c *components.CarouselComponent) {
	n := len(c.Cards)
	if n == 0 || !c.Geometry.Valid() {
		return
	}

	base := utils.BaseIndexOf(s.computeCenteredAbs(c), n)
	target := (c.Loops/2)*n + base

	c.ScrollOffset = utils.AbsoluteIndexToScrollOffset(target, c.ViewportWidth, c.Geometry)
	c.LastCenteredAbs = target
	s.setActive(c, target)
}

// onScrolled 非转动时滚动偏移变化后调用
// 运行保护、更新激活卡牌，并重新开始防抖计时
func (s *CarouselSystem) onScrolled(c *components.CarouselComponent) {
	s.applyGuard(c)
	s.setActive(c, s.computeCenteredAbs(c))
	c.SettlePending = true
	c.SettleTimer = config.ManualScrollSettleDelay
}

func (s *CarouselSystem) tickSpin(c *components.CarouselComponent, deltaTime float64) {
	task := c.Spin
	if task.Cancelled() {
		c.Spin = nil
		return
	}

	task.Elapsed += deltaTime
	t := task.Progress()
	eased := utils.EaseRoulette(t, config.SpinAccelFraction)

	position := task.StartPosition + float64(task.TotalSteps)*eased
	c.ScrollOffset = utils.IndexPositionToScrollOffset(position, c.ViewportWidth, c.Geometry)

	// 保护可能平移卡带，StartPosition 会同步平移
	s.applyGuard(c)

	abs := s.computeCenteredAbs(c)
	if abs != task.LastAbsIndex {
		task.LastAbsIndex = abs
		s.setActive(c, abs)
		s.playSound(config.SoundTickID)
	}

	if t < 1 {
		return
	}

	s.finishSpin(c)
}

// finishSpin 转动结束：吸附到落点卡牌的精确居中位置并选中
func (s *CarouselSystem) finishSpin(c *components.CarouselComponent) {
	task := c.Spin
	c.Spin = nil

	final := s.computeCenteredAbs(c)
	c.ScrollOffset = utils.AbsoluteIndexToScrollOffset(final, c.ViewportWidth, c.Geometry)
	s.setActive(c, final)
	c.SelectedAbsIndex = final
	s.setPhase(c, components.PhaseSelected, "spin finished")

	log.Printf("[CarouselSystem] Spin #%d landed on abs %d (base %d, %s)",
		task.ID, final, c.ActiveBaseIndex, c.Cards[c.ActiveBaseIndex].ID)
	s.playSound(config.SoundFlipID)
}

func (s *CarouselSystem) updateInertia(c *components.CarouselComponent, deltaTime float64) {
	if c.PointerHeld || c.Velocity == 0 {
		return
	}

	before := c.ScrollOffset
	c.ScrollOffset = utils.ClampScrollOffset(c.ScrollOffset+c.Velocity*deltaTime, c.Geometry, len(c.Tape), c.ViewportWidth)
	c.Velocity *= math.Exp(-config.ScrollFriction * deltaTime)

	if c.ScrollOffset != before {
		s.onScrolled(c)
	} else {
		c.Velocity = 0
	}

	if math.Abs(c.Velocity) <= config.ScrollMinVelocity {
		c.Velocity = 0
		s.beginSnap(c)
	}
}

func (s *CarouselSystem) updateSnap(c *components.CarouselComponent, deltaTime float64) {
	snap := c.Snap
	if snap == nil {
		return
	}

	snap.Elapsed += deltaTime
	p := 1.0
	if snap.Duration > 0 {
		p = utils.Clamp01(snap.Elapsed / snap.Duration)
	}
	c.ScrollOffset = utils.Lerp(snap.From, snap.To, utils.EaseOutCubic(p))
	if p >= 1 {
		c.ScrollOffset = snap.To
		c.Snap = nil
	}
	s.onScrolled(c)
}

// updateSettle 滚动停止 ManualScrollSettleDelay 后：
// 如果是用户滚动则清除选择，然后吸附到最近的卡牌
func (s *CarouselSystem) updateSettle(c *components.CarouselComponent, deltaTime float64) {
	if !c.SettlePending {
		return
	}
	c.SettleTimer -= deltaTime
	if c.SettleTimer > 0 {
		return
	}
	c.SettlePending = false

	if s.IsUserInteracting() && c.Phase != components.PhaseSpinning {
		s.clearSelection(c, "manual scroll")
	}

	if !c.PointerHeld && c.Velocity == 0 && c.Snap == nil {
		s.beginSnap(c)
	}
}

// beginSnap 开始吸附到视口中心最近的卡牌
func (s *CarouselSystem) beginSnap(c *components.CarouselComponent) {
	if len(c.Tape) == 0 || !c.Geometry.Valid() {
		return
	}
	s.snapTo(c, s.computeCenteredAbs(c))
}

func (s *CarouselSystem) snapTo(c *components.CarouselComponent, abs int) {
	target := utils.ClampScrollOffset(
		utils.AbsoluteIndexToScrollOffset(abs, c.ViewportWidth, c.Geometry),
		c.Geometry, len(c.Tape), c.ViewportWidth)

	if math.Abs(target-c.ScrollOffset) < 0.5 {
		c.ScrollOffset = target
		c.Snap = nil
		return
	}

	c.Snap = &components.SnapAnimation{
		From:     c.ScrollOffset,
		To:       target,
		Duration: config.SnapDuration,
	}
}

func (s *CarouselSystem) playSound(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}
