package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/game"
	"github.com/decker502/tarot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Loading screen colors.
var (
	loadingBackground = color.RGBA{R: 14, G: 9, B: 30, A: 255}
	loadingOrbCore    = color.RGBA{R: 186, G: 150, B: 255, A: 255}
	loadingOrbGlow    = color.RGBA{R: 120, G: 82, B: 214, A: 255}
	loadingTextColor  = color.RGBA{R: 226, G: 212, B: 250, A: 255}
)

// BootReady reports whether the boot gate may open.
// Both the minimum display time and font readiness are required.
func BootReady(elapsed float64, fontsReady bool) bool {
	return fontsReady && elapsed >= config.BootMinDelay
}

// LoadingScene represents the boot screen shown when the app starts.
// It shows a pulsing orb while fonts are prepared, then fades out
// and switches to the tarot scene.
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	elapsedTime float64 // Elapsed time since scene start
	fontsReady  bool    // Whether PrepareFonts has finished (or failed)
	fading      bool    // Whether the fade-out has started
	fadeTime    float64 // Elapsed fade-out time
	switched    bool    // Whether the next scene has been requested

	textFontFace *text.GoTextFace // Font for the loading message

	width, height float64 // Current logical screen size
}

// NewLoadingScene creates a new loading scene.
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager) *LoadingScene {
	return &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
	}
}

// Resize implements game.Resizable.
func (s *LoadingScene) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

// Update updates the loading scene logic.
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	// Fonts are parsed after the first frame so the orb is visible right away.
	if !s.fontsReady && s.elapsedTime > deltaTime {
		s.prepareFonts()
	}

	if !s.fading && BootReady(s.elapsedTime, s.fontsReady) {
		s.fading = true
		log.Printf("[LoadingScene] Boot gate open after %.2fs", s.elapsedTime)
	}

	if s.fading {
		s.fadeTime += deltaTime
		if s.fadeTime >= config.BootFadeDuration && !s.switched {
			s.switched = true
			s.sceneManager.SwitchToNamed(SceneTarot)
		}
	}
}

// prepareFonts parses the bundled fonts.
// A failure is logged and treated as ready so the app never hangs on boot.
func (s *LoadingScene) prepareFonts() {
	s.fontsReady = true
	if s.resourceManager == nil {
		return
	}

	if err := s.resourceManager.PrepareFonts(); err != nil {
		log.Printf("[LoadingScene] Failed to prepare fonts: %v", err)
		return
	}

	face, err := s.resourceManager.LoadFont(game.FontItalic, config.LoadingTextFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load text font: %v", err)
		return
	}
	s.textFontFace = face
}

// IsFading reports whether the fade-out has started.
func (s *LoadingScene) IsFading() bool {
	return s.fading
}

// OrbRadius returns the orb radius at the current time.
func (s *LoadingScene) OrbRadius() float64 {
	phase := 2 * math.Pi * s.elapsedTime / config.LoadingOrbPulsePeriod
	return config.LoadingOrbRadius * (1 + 0.08*math.Sin(phase))
}

// visibility returns 1 while the screen is shown and falls to 0 during the fade-out.
func (s *LoadingScene) visibility() float64 {
	if !s.fading {
		return 1
	}
	return 1 - utils.Clamp01(s.fadeTime/config.BootFadeDuration)
}

// Draw renders the loading scene to the screen.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(loadingBackground)

	alpha := s.visibility()
	cx := float32(s.width / 2)
	cy := float32(s.height / 2)
	radius := float32(s.OrbRadius())

	// Glow rings from the outside in
	for i := 3; i >= 1; i-- {
		ring := radius * (1 + 0.35*float32(i))
		vector.DrawFilledCircle(screen, cx, cy, ring, utils.ScaleAlpha(loadingOrbGlow, alpha*0.12*float64(4-i)), true)
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, utils.ScaleAlpha(loadingOrbCore, alpha), true)
	vector.StrokeCircle(screen, cx, cy, radius+4, 1.5, utils.ScaleAlpha(loadingTextColor, alpha*0.6), true)

	s.drawText(screen, alpha)
}

// drawText draws the loading message below the orb.
func (s *LoadingScene) drawText(screen *ebiten.Image, alpha float64) {
	if s.textFontFace == nil {
		return
	}

	// Gentle breathing in sync with the orb
	breath := 0.75 + 0.25*math.Sin(2*math.Pi*s.elapsedTime/config.LoadingOrbPulsePeriod)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(s.width/2, s.height/2+config.LoadingTextOffsetY)
	op.ColorScale.ScaleWithColor(utils.ScaleAlpha(loadingTextColor, alpha*breath))
	text.Draw(screen, config.LoadingText, s.textFontFace, op)
}
