package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/entities"
	"github.com/decker502/tarot/pkg/game"
	"github.com/decker502/tarot/pkg/systems"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 页面配色
var (
	tarotBackground    = color.RGBA{R: 14, G: 9, B: 30, A: 255}
	tarotTitleColor    = color.RGBA{R: 236, G: 214, B: 160, A: 255}
	tarotSubtitleColor = color.RGBA{R: 196, G: 186, B: 222, A: 255}
	tarotHintColor     = color.RGBA{R: 150, G: 140, B: 180, A: 255}
)

// subtitleMaxWidth 副标题最大行宽
const subtitleMaxWidth = 720.0

// TarotScene 塔罗轮盘主场景
//
// 组合轮盘、输入、卡牌渲染和底部按钮几个系统：
//   - 底部按钮：idle 时开始转动，selected/prediction 时重新选择
//   - M 键切换音效（持久化到设置）
//   - F3 显示调试信息
type TarotScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.SettingsManager

	entityManager       *ecs.EntityManager
	carouselSystem      *systems.CarouselSystem
	carouselInputSystem *systems.CarouselInputSystem
	cardRenderSystem    *systems.CardRenderSystem
	buttonSystem        *systems.ButtonSystem
	buttonRenderSystem  *systems.ButtonRenderSystem
	bottomButton        ecs.EntityID

	titleFont    *text.GoTextFace
	subtitleFont *text.GoTextFace
	hintFont     *text.GoTextFace

	cardFontSizes config.CardFontSizes

	width, height float64
	elapsedTime   float64 // 场景进入后的时间，用于淡入
	showDebug     bool
	disposed      bool
}

// NewTarotScene 创建塔罗轮盘场景
//
// 参数：
//   - rm: 资源管理器，可为 nil（没有文字，卡面全部程序化绘制）
//   - sm: 场景管理器
//   - deck: 牌组（卡牌可以为空）
//   - rng: 随机数来源，nil 时使用全局随机源
//
// 返回：
//   - *TarotScene: 场景实例
func NewTarotScene(rm *game.ResourceManager, sm *game.SceneManager, deck *config.DeckConfig, rng utils.RandomSource) *TarotScene {
	gameState := game.GetGameState()

	// 音频管理器未注入时保持接口为 nil
	var sounds systems.SoundPlayer
	if am := gameState.GetAudioManager(); am != nil {
		sounds = am
	}
	var images systems.ImageSource
	if rm != nil {
		images = rm
	}

	em := ecs.NewEntityManager()
	carouselSystem := systems.NewCarouselSystem(em, deck, rng, sounds)

	scene := &TarotScene{
		resourceManager:     rm,
		sceneManager:        sm,
		settings:            gameState.GetSettingsManager(),
		entityManager:       em,
		carouselSystem:      carouselSystem,
		carouselInputSystem: systems.NewCarouselInputSystem(carouselSystem),
		cardRenderSystem:    systems.NewCardRenderSystem(em, carouselSystem, images, systems.CardFonts{}),
		buttonSystem:        systems.NewButtonSystem(em, sounds),
		buttonRenderSystem:  systems.NewButtonRenderSystem(em),
		width:               config.GameWindowWidth,
		height:              config.GameWindowHeight,
	}

	scene.loadFonts()

	button, err := entities.NewBottomButton(em, rm, scene.width, scene.height, config.SpinButtonText, scene.onBottomButton)
	if err != nil {
		log.Printf("[TarotScene] Failed to create bottom button with font: %v", err)
		button, _ = entities.NewBottomButton(em, nil, scene.width, scene.height, config.SpinButtonText, scene.onBottomButton)
	}
	scene.bottomButton = button

	scene.layout()
	scene.syncBottomButton()
	return scene
}

// loadFonts 加载标题区域字体
func (s *TarotScene) loadFonts() {
	if s.resourceManager == nil {
		return
	}

	var err error
	if s.titleFont, err = s.resourceManager.LoadFont(game.FontBold, config.HeaderTitleFontSize); err != nil {
		log.Printf("[TarotScene] Failed to load title font: %v", err)
	}
	if s.subtitleFont, err = s.resourceManager.LoadFont(game.FontRegular, config.HeaderSubtitleFontSize); err != nil {
		log.Printf("[TarotScene] Failed to load subtitle font: %v", err)
	}
	if s.hintFont, err = s.resourceManager.LoadFont(game.FontRegular, config.HintFontSize); err != nil {
		log.Printf("[TarotScene] Failed to load hint font: %v", err)
	}
}

// Resize 实现 game.Resizable：视口变化时重新测量卡带并摆放按钮
func (s *TarotScene) Resize(width, height int) {
	if float64(width) == s.width && float64(height) == s.height {
		return
	}
	s.width, s.height = float64(width), float64(height)
	s.layout()
}

// layout 按当前视口尺寸布局
func (s *TarotScene) layout() {
	s.carouselSystem.Remeasure(s.width, s.height)
	entities.LayoutBottomButton(s.entityManager, s.bottomButton, s.width, s.height)
	s.updateCardFonts()
}

// updateCardFonts 卡牌尺寸变化导致字号变化时重新加载卡面字体
func (s *TarotScene) updateCardFonts() {
	if s.resourceManager == nil {
		return
	}

	metrics := config.CalculateCardMetrics(s.width, s.height)
	sizes := config.CalculateCardFontSizes(metrics.Width)
	if sizes == s.cardFontSizes {
		return
	}
	s.cardFontSizes = sizes

	load := func(style game.FontStyle, size float64) *text.GoTextFace {
		face, err := s.resourceManager.LoadFont(style, size)
		if err != nil {
			log.Printf("[TarotScene] Failed to load card font %s %.0f: %v", style, size, err)
			return nil
		}
		return face
	}

	s.cardRenderSystem.SetFonts(systems.CardFonts{
		Title:   load(game.FontBold, sizes.Title),
		Year:    load(game.FontBold, sizes.Year),
		Body:    load(game.FontRegular, sizes.Body),
		Heading: load(game.FontBold, sizes.Heading),
		Advice:  load(game.FontItalic, sizes.Advice),
	})
}

// Dispose 实现 game.Disposable：停止转动任务并释放卡面缓存
func (s *TarotScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.carouselSystem.Teardown()
	s.cardRenderSystem.InvalidateFaces()
	log.Printf("[TarotScene] Disposed")
}

// Carousel 返回轮盘系统
func (s *TarotScene) Carousel() *systems.CarouselSystem {
	return s.carouselSystem
}

// BottomButton 返回底部按钮组件
func (s *TarotScene) BottomButton() *components.ButtonComponent {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.bottomButton)
	return button
}

// Update 更新场景
func (s *TarotScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	s.handleKeys()

	s.buttonSystem.Update(deltaTime)
	s.carouselInputSystem.Update(deltaTime)
	s.step(deltaTime)
	s.updateCursor()
}

// step 推进轮盘和动画，并同步底部按钮
// 与输入无关，测试直接调用
func (s *TarotScene) step(deltaTime float64) {
	s.carouselSystem.Update(deltaTime)
	s.cardRenderSystem.Update(deltaTime)
	s.syncBottomButton()
}

// handleKeys 处理场景级快捷键
func (s *TarotScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}
}

// ToggleSound 切换音效开关
//
// 返回：
//   - bool: 切换后音效是否开启
func (s *TarotScene) ToggleSound() bool {
	if s.settings == nil {
		return true
	}
	enabled := s.settings.ToggleSound()
	log.Printf("[TarotScene] Sound enabled: %v", enabled)
	return enabled
}

// onBottomButton 底部按钮点击：按阶段开始转动或重新选择
func (s *TarotScene) onBottomButton() {
	switch s.carouselSystem.GetPhase() {
	case components.PhaseIdle:
		if !s.carouselSystem.StartSpin() {
			log.Printf("[TarotScene] Spin declined")
		}
	case components.PhaseSelected, components.PhasePrediction:
		s.carouselSystem.Reset()
	}
}

// bottomButtonState 返回底部按钮在某阶段的文案和是否可用
func bottomButtonState(phase components.CarouselPhase, cardCount int) (string, bool) {
	switch phase {
	case components.PhaseSpinning:
		return config.SpinningButtonText, false
	case components.PhaseSelected, components.PhasePrediction:
		return config.ResetButtonText, true
	default:
		return config.SpinButtonText, cardCount > 0
	}
}

// syncBottomButton 让按钮文案和可用状态跟随阶段
func (s *TarotScene) syncBottomButton() {
	button := s.BottomButton()
	if button == nil {
		return
	}
	button.Text, button.Enabled = bottomButtonState(s.carouselSystem.GetPhase(), s.carouselSystem.CardCount())
}

// updateCursor 悬停在可点击目标上时显示手型光标
func (s *TarotScene) updateCursor() {
	if utils.IsMobile() {
		return
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	pointer := false
	if button := s.BottomButton(); button != nil && button.Enabled && s.buttonSystem.Contains(fx, fy) {
		pointer = true
	} else if abs, ok := s.carouselSystem.HitTest(fx, fy); ok && s.carouselSystem.IsClickable(abs) {
		pointer = true
	}

	if pointer {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// fadeAlpha 返回淡入遮罩的透明度（1 = 完全遮住）
func (s *TarotScene) fadeAlpha() float64 {
	return 1 - utils.Clamp01(s.elapsedTime/config.BootFadeDuration)
}

// Draw 绘制场景
func (s *TarotScene) Draw(screen *ebiten.Image) {
	screen.Fill(tarotBackground)

	s.drawHeader(screen)
	s.cardRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.drawSoundHint(screen)

	if a := s.fadeAlpha(); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), utils.ScaleAlpha(tarotBackground, a), false)
	}

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// drawHeader 绘制标题和副标题
func (s *TarotScene) drawHeader(screen *ebiten.Image) {
	centerX := s.width / 2

	if s.titleFont != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, config.HeaderTitleY)
		op.ColorScale.ScaleWithColor(tarotTitleColor)
		text.Draw(screen, config.HeaderTitleText, s.titleFont, op)
	}

	if s.subtitleFont != nil {
		maxWidth := math.Min(subtitleMaxWidth, s.width-2*config.StripPaddingXCompact)
		lineHeight := config.HeaderSubtitleFontSize * 1.4
		for i, line := range utils.WrapText(config.HeaderSubtitleText, s.subtitleFont, maxWidth) {
			op := &text.DrawOptions{}
			op.LayoutOptions.PrimaryAlign = text.AlignCenter
			op.LayoutOptions.SecondaryAlign = text.AlignCenter
			op.GeoM.Translate(centerX, config.HeaderSubtitleY+float64(i)*lineHeight)
			op.ColorScale.ScaleWithColor(tarotSubtitleColor)
			text.Draw(screen, line, s.subtitleFont, op)
		}
	}
}

// drawSoundHint 右上角显示音效状态
func (s *TarotScene) drawSoundHint(screen *ebiten.Image) {
	if s.hintFont == nil || s.settings == nil {
		return
	}

	label := config.SoundOnText
	if !s.settings.GetSettings().SoundEnabled {
		label = config.SoundOffText
	}
	if !utils.IsMobile() {
		label += config.SoundKeyHintText
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(s.width-config.StripPaddingXCompact, config.HintMarginTop)
	op.ColorScale.ScaleWithColor(tarotHintColor)
	text.Draw(screen, label, s.hintFont, op)
}

// drawDebug 绘制调试信息
func (s *TarotScene) drawDebug(screen *ebiten.Image) {
	c := s.carouselSystem
	msg := fmt.Sprintf("FPS %.0f  phase %s  active %d (base %d)  selected %d  scroll %.1f",
		ebiten.ActualFPS(), c.GetPhase(), c.GetActiveAbsIndex(), c.GetActiveBaseIndex(),
		c.GetSelectedAbsIndex(), c.GetScrollOffset())
	ebitenutil.DebugPrintAt(screen, msg, 8, int(s.height)-config.DebugLineOffset)
}
