package systems

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSource 按资源ID或路径加载图片
// game.ResourceManager 实现了该接口
type ImageSource interface {
	LoadImageRef(ref string) (*ebiten.Image, error)
}

// CardFonts 卡面使用的字体，任一字段为 nil 时跳过对应文字
type CardFonts struct {
	Title   *text.GoTextFace // 正面标题
	Year    *text.GoTextFace // 预言第一行
	Body    *text.GoTextFace // 预言正文
	Heading *text.GoTextFace // "ADVICE" 小标题
	Advice  *text.GoTextFace // 建议正文
}

// CardVisual 单张卡牌本帧的绘制参数
type CardVisual struct {
	Face   components.CardFace
	Scale  float64 // 整体缩放
	FlipX  float64 // 翻面时的水平压缩 [0, 1]
	Lift   float64 // 向上偏移（像素）
	Alpha  float64
	Active bool
}

// 卡面配色
var (
	cardBackFill     = color.RGBA{R: 38, G: 22, B: 74, A: 255}
	cardBackAccent   = color.RGBA{R: 214, G: 180, B: 102, A: 255}
	cardBorder       = color.RGBA{R: 232, G: 206, B: 140, A: 255}
	cardPanelFill    = color.RGBA{R: 24, G: 16, B: 44, A: 255}
	cardTitleBand    = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	cardTextColor    = color.RGBA{R: 246, G: 238, B: 255, A: 255}
	cardAccentText   = color.RGBA{R: 230, G: 196, B: 120, A: 255}
	cardMutedText    = color.RGBA{R: 206, G: 196, B: 228, A: 255}
	cardShadowColor  = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	cardCornerRadius = float32(14)
)

// faceKey 卡面缓存键
type faceKey struct {
	cardID string
	face   components.CardFace
}

// CardRenderSystem 卡牌渲染系统
//
// 职责：
//   - 推进激活卡牌的翻面、强调和呼吸动画（CardAnimationComponent）
//   - 绘制可见范围内的卡牌：卡背、正面图片、预言面板
//
// 卡面先画到离屏图像并缓存，卡牌尺寸变化时整体失效。
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	carousel      *CarouselSystem
	images        ImageSource
	fonts         CardFonts

	faces      map[faceKey]*ebiten.Image
	faceWidth  int
	faceHeight int
}

// NewCardRenderSystem 创建卡牌渲染系统
//
// 参数：
//   - em: 实体管理器
//   - carousel: 轮盘系统（提供阶段、激活索引和几何信息）
//   - images: 图片来源，可为 nil（全部使用程序化卡面）
//   - fonts: 卡面字体
func NewCardRenderSystem(em *ecs.EntityManager, carousel *CarouselSystem, images ImageSource, fonts CardFonts) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		carousel:      carousel,
		images:        images,
		fonts:         fonts,
		faces:         make(map[faceKey]*ebiten.Image),
	}
}

func (s *CardRenderSystem) animation() *components.CardAnimationComponent {
	anim, _ := ecs.GetComponent[*components.CardAnimationComponent](s.entityManager, s.carousel.GetCarouselEntity())
	return anim
}

// Update 推进卡牌动画
func (s *CardRenderSystem) Update(deltaTime float64) {
	anim := s.animation()
	if anim == nil {
		return
	}

	active := s.carousel.GetActiveAbsIndex()
	target := s.carousel.FaceFor(active)

	// 激活卡牌变了：新卡牌从背面开始，强调从 0 开始
	if anim.AbsIndex != active {
		anim.AbsIndex = active
		anim.ShownFace = components.CardFaceBack
		anim.TargetFace = components.CardFaceBack
		anim.FlipProgress = 1
		anim.Emphasis = 0
		anim.PulseTime = 0
	}

	if target != anim.TargetFace {
		anim.TargetFace = target
		anim.FlipProgress = 0
	}

	if anim.FlipProgress < 1 {
		anim.FlipProgress = math.Min(1, anim.FlipProgress+deltaTime/config.CardFlipDuration)
		if anim.FlipProgress >= 0.5 {
			anim.ShownFace = anim.TargetFace
		}
	}

	anim.Emphasis += (1 - anim.Emphasis) * math.Min(1, config.ActiveEmphasisSpeed*deltaTime)

	if s.carousel.IsClickable(active) {
		anim.PulseTime += deltaTime
	} else {
		anim.PulseTime = 0
	}
}

// FlipScaleX 翻面进度对应的水平压缩比例
// 0 和 1 时为 1，进度一半时压缩为 0（此时切换卡面）
func FlipScaleX(progress float64) float64 {
	return math.Abs(math.Cos(utils.Clamp01(progress) * math.Pi))
}

// PulseScale 呼吸动画的额外缩放
func PulseScale(t float64) float64 {
	phase := 2 * math.Pi * t / config.CardPulsePeriod
	return config.CardPulseAmplitude * (0.5 - 0.5*math.Cos(phase))
}

// VisualFor 计算卡带上 absIndex 处卡牌的绘制参数
func (s *CardRenderSystem) VisualFor(absIndex int) CardVisual {
	if absIndex != s.carousel.GetActiveAbsIndex() {
		return CardVisual{
			Face:  s.carousel.FaceFor(absIndex),
			Scale: config.InactiveCardScale,
			FlipX: 1,
			Alpha: config.InactiveCardAlpha,
		}
	}

	v := CardVisual{Face: s.carousel.FaceFor(absIndex), Scale: 1, FlipX: 1, Alpha: 1, Active: true}
	anim := s.animation()
	if anim == nil || anim.AbsIndex != absIndex {
		return v
	}

	v.Face = anim.ShownFace
	v.FlipX = FlipScaleX(anim.FlipProgress)
	if v.Face == components.CardFaceBack {
		v.Lift = config.ActiveCardBackLift * anim.Emphasis
	} else {
		v.Scale = utils.Lerp(1, config.ActiveCardFaceScale, anim.Emphasis)
		v.Lift = config.ActiveCardLift * anim.Emphasis
	}
	if s.carousel.IsClickable(absIndex) {
		v.Scale += PulseScale(anim.PulseTime)
	}
	return v
}

// Draw 绘制可见卡牌，激活卡牌最后绘制以盖住相邻卡牌
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	c := s.carousel.carousel()
	if c == nil || len(c.Tape) == 0 || !c.Geometry.Valid() {
		return
	}

	s.syncFaceSize(c.Metrics)
	if s.faceWidth <= 0 || s.faceHeight <= 0 {
		return
	}

	first, last := utils.VisibleIndexRange(c.ScrollOffset, c.ViewportWidth, c.Geometry, len(c.Tape))
	active := -1
	for abs := first; abs <= last; abs++ {
		if abs == c.ActiveAbsIndex {
			active = abs
			continue
		}
		s.drawCard(screen, c, abs)
	}
	if active >= 0 {
		s.drawCard(screen, c, active)
	}
}

// syncFaceSize 卡牌尺寸变化时丢弃缓存的卡面
func (s *CardRenderSystem) syncFaceSize(metrics config.CardMetrics) {
	w := int(math.Round(metrics.Width))
	h := int(math.Round(metrics.Height))
	if w == s.faceWidth && h == s.faceHeight {
		return
	}
	s.InvalidateFaces()
	s.faceWidth, s.faceHeight = w, h
}

// SetFonts 替换卡面字体并丢弃已渲染的卡面
func (s *CardRenderSystem) SetFonts(fonts CardFonts) {
	s.fonts = fonts
	s.InvalidateFaces()
}

// InvalidateFaces 释放所有缓存的卡面（牌组或尺寸变化时调用）
func (s *CardRenderSystem) InvalidateFaces() {
	for key, img := range s.faces {
		img.Deallocate()
		delete(s.faces, key)
	}
}

func (s *CardRenderSystem) drawCard(screen *ebiten.Image, c *components.CarouselComponent, abs int) {
	entry := c.Tape[abs]
	v := s.VisualFor(abs)

	faceImg := s.faceImage(entry.Card, c.BackImage, v.Face)
	if faceImg == nil {
		return
	}

	w := float64(s.faceWidth)
	h := float64(s.faceHeight)
	centerX := utils.ItemScreenX(abs, c.ScrollOffset, c.Geometry) + c.Geometry.ItemWidth/2
	centerY := c.Metrics.TopY + c.Metrics.Height/2 - v.Lift

	if v.Active {
		sw := float32(w * v.Scale * v.FlipX)
		sh := float32(h * v.Scale)
		utils.DrawRoundedRect(screen, float32(centerX)-sw/2+3, float32(centerY)-sh/2+6, sw, sh, cardCornerRadius, cardShadowColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(v.Scale*v.FlipX, v.Scale)
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleAlpha(float32(v.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(faceImg, op)
}

// faceImage 返回缓存的卡面，没有时渲染一张
func (s *CardRenderSystem) faceImage(card config.CardConfig, backRef string, face components.CardFace) *ebiten.Image {
	key := faceKey{cardID: card.ID, face: face}
	if face == components.CardFaceBack {
		key.cardID = ""
	}
	if img, ok := s.faces[key]; ok {
		return img
	}

	img := ebiten.NewImage(s.faceWidth, s.faceHeight)
	switch face {
	case components.CardFaceFront:
		s.renderFront(img, card)
	case components.CardFacePrediction:
		s.renderPrediction(img, card)
	default:
		s.renderBack(img, backRef)
	}
	s.faces[key] = img
	return img
}

func (s *CardRenderSystem) loadImage(ref string) *ebiten.Image {
	if s.images == nil || ref == "" {
		return nil
	}
	img, err := s.images.LoadImageRef(ref)
	if err != nil {
		return nil
	}
	return img
}

// drawCover 把图片按 cover 方式铺满矩形（居中裁剪）
func drawCover(dst, src *ebiten.Image, x, y, w, h float64) {
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	if sw == 0 || sh == 0 {
		return
	}
	scale := math.Max(w/sw, h/sh)
	cropW := w / scale
	cropH := h / scale
	x0 := int((sw - cropW) / 2)
	y0 := int((sh - cropH) / 2)
	sub := src.SubImage(image.Rect(x0, y0, x0+int(math.Ceil(cropW)), y0+int(math.Ceil(cropH)))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}

func (s *CardRenderSystem) drawFrame(dst *ebiten.Image, fill color.RGBA) {
	w := float32(s.faceWidth)
	h := float32(s.faceHeight)
	utils.DrawRoundedRect(dst, 0, 0, w, h, cardCornerRadius, fill)
}

func (s *CardRenderSystem) drawBorder(dst *ebiten.Image) {
	w := float32(s.faceWidth)
	h := float32(s.faceHeight)
	utils.StrokeRoundedRect(dst, 1, 1, w-2, h-2, cardCornerRadius, 2, cardBorder)
}

// renderBack 卡背：图片，或程序化的星月图案
func (s *CardRenderSystem) renderBack(dst *ebiten.Image, backRef string) {
	s.drawFrame(dst, cardBackFill)
	w := float64(s.faceWidth)
	h := float64(s.faceHeight)
	inset := config.CardCornerInset / 2

	if img := s.loadImage(backRef); img != nil {
		drawCover(dst, img, inset, inset, w-2*inset, h-2*inset)
		s.drawBorder(dst)
		return
	}

	in := float32(config.CardCornerInset)
	utils.StrokeRoundedRect(dst, in, in, float32(w)-2*in, float32(h)-2*in, cardCornerRadius/2, 1.5, cardBackAccent)

	cx, cy := float32(w/2), float32(h/2)
	r := float32(math.Min(w, h) * 0.18)
	vector.StrokeCircle(dst, cx, cy, r, 2, cardBackAccent, true)
	vector.DrawFilledCircle(dst, cx, cy, r*0.55, cardBackAccent, true)
	vector.DrawFilledCircle(dst, cx+r*0.22, cy-r*0.12, r*0.5, cardBackFill, true)

	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		sx := cx + float32(math.Cos(a))*r*1.6
		sy := cy + float32(math.Sin(a))*r*1.6
		vector.DrawFilledCircle(dst, sx, sy, 2.5, cardBackAccent, true)
	}
	s.drawBorder(dst)
}

// renderFront 正面：卡牌图片和底部标题
func (s *CardRenderSystem) renderFront(dst *ebiten.Image, card config.CardConfig) {
	w := float64(s.faceWidth)
	h := float64(s.faceHeight)

	if img := s.loadImage(card.Image); img != nil {
		s.drawFrame(dst, cardPanelFill)
		drawCover(dst, img, 0, 0, w, h)
	} else {
		s.drawFrame(dst, placeholderColor(card.ID))
		cx, cy := float32(w/2), float32(h*0.42)
		r := float32(math.Min(w, h) * 0.22)
		vector.StrokeCircle(dst, cx, cy, r, 3, cardBorder, true)
		vector.StrokeLine(dst, cx, cy-r*1.3, cx, cy+r*1.3, 2, cardBorder, true)
		vector.StrokeLine(dst, cx-r*1.3, cy, cx+r*1.3, cy, 2, cardBorder, true)
	}

	if s.fonts.Title != nil && card.Title != "" {
		bandH := s.fonts.Title.Size * 2.2
		vector.DrawFilledRect(dst, 0, float32(h-bandH), float32(w), float32(bandH), cardTitleBand, true)

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(w/2, h-bandH/2)
		op.ColorScale.ScaleWithColor(cardTextColor)
		text.Draw(dst, card.Title, s.fonts.Title, op)
	}
	s.drawBorder(dst)
}

// renderPrediction 预言面板：年份、正文、建议
func (s *CardRenderSystem) renderPrediction(dst *ebiten.Image, card config.CardConfig) {
	s.drawFrame(dst, cardPanelFill)
	w := float64(s.faceWidth)
	h := float64(s.faceHeight)
	pad := config.CardCornerInset + 6
	maxWidth := w - 2*pad
	bottom := h - pad

	p := utils.ParsePrediction(card.Prediction)
	y := pad

	if p.Year != "" {
		y = s.drawParagraph(dst, p.Year, s.fonts.Year, cardAccentText, pad, y, maxWidth, bottom)
		y += 6
		if y < bottom {
			vector.StrokeLine(dst, float32(pad), float32(y), float32(w-pad), float32(y), 1, cardBackAccent, true)
		}
		y += 10
	}

	if p.Main != "" {
		y = s.drawParagraph(dst, p.Main, s.fonts.Body, cardTextColor, pad, y, maxWidth, bottom)
	}

	if p.HasAdvice {
		y += 12
		y = s.drawParagraph(dst, config.AdviceHeadingText, s.fonts.Heading, cardAccentText, pad, y, maxWidth, bottom)
		y += 4
		s.drawParagraph(dst, p.Advice, s.fonts.Advice, cardMutedText, pad, y, maxWidth, bottom)
	}

	s.drawBorder(dst)
}

// drawParagraph 换行绘制一段文字，超出 bottom 的行不再绘制
//
// 返回：
//   - float64: 下一段的起始 Y
func (s *CardRenderSystem) drawParagraph(dst *ebiten.Image, content string, face *text.GoTextFace, clr color.RGBA, x, y, maxWidth, bottom float64) float64 {
	if face == nil || content == "" {
		return y
	}

	lineHeight := face.Size * 1.35
	for _, line := range utils.WrapText(content, face, maxWidth) {
		if y+lineHeight > bottom {
			break
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, line, face, op)
		y += lineHeight
	}
	return y
}

// placeholderColor 缺少图片时按卡牌ID生成稳定的底色
func placeholderColor(id string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(60 + sum%80),
		G: uint8(30 + (sum>>8)%60),
		B: uint8(100 + (sum>>16)%100),
		A: 255,
	}
}
