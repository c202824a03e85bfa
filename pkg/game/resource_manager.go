package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for image.Decode
	"log"
	"os"
	"path"
	"strings"

	"github.com/decker502/tarot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects one of the bundled Go font families.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
)

func (s FontStyle) String() string {
	switch s {
	case FontRegular:
		return "regular"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// fontData maps each style to its TTF bytes.
var fontData = map[FontStyle][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
}

// ResourceManager manages loading and caching of game resources:
// images (PNG), sound effects (WAV) and font faces.
//
// Files are read from the embedded filesystem once embedded.Init has been
// called, and from the working directory otherwise (tests, -deck overrides).
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	audioCache    map[string]*audio.Player
	audioContext  *audio.Context
	fontSources   map[FontStyle]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace

	// Resource configuration loaded from YAML
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path

	// Image refs that already failed, so the warning is only logged once
	missingImages map[string]bool
}

// NewResourceManager creates and returns a new ResourceManager instance.
// The audioContext may be nil, in which case sound effects cannot be loaded.
//
// Example:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontSources:   make(map[FontStyle]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		missingImages: make(map[string]bool),
	}
}

// readResource reads a file from the embedded filesystem when available,
// falling back to the OS filesystem.
func readResource(filePath string) ([]byte, error) {
	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(filePath)
		if err == nil {
			return data, nil
		}
		if _, statErr := os.Stat(filePath); statErr != nil {
			return nil, err
		}
	}
	return os.ReadFile(filePath)
}

// LoadImage loads a PNG image from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/cover.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(filePath string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[filePath]; exists {
		return cachedImage, nil
	}

	data, err := readResource(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", filePath, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[filePath] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// It returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetImage(filePath string) *ebiten.Image {
	return rm.imageCache[filePath]
}

// LoadImageRef loads an image given either a resource ID (e.g. "IMAGE_CARD_COVER")
// or a plain file path (e.g. "assets/images/cards/sun.png").
//
// Card data refers to images both ways, so the ID lookup is tried first.
// A failure is logged once per ref; callers draw a procedural fallback.
func (rm *ResourceManager) LoadImageRef(ref string) (*ebiten.Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty image reference")
	}

	filePath := ref
	if mapped, ok := rm.resourceMap[ref]; ok {
		filePath = mapped
	}

	img, err := rm.LoadImage(filePath)
	if err != nil {
		if !rm.missingImages[ref] {
			rm.missingImages[ref] = true
			log.Printf("[ResourceManager] Warning: image %s unavailable, using placeholder: %v", ref, err)
		}
		return nil, err
	}
	return img, nil
}

// LoadSoundEffect loads a WAV sound effect and caches its player.
// The player does not loop, which suits one-shot effects such as ticks and chimes.
//
// Parameters:
//   - path: The file path to the sound effect (e.g., "assets/sounds/tick.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if there is no audio context, or the file cannot be read or decoded.
func (rm *ResourceManager) LoadSoundEffect(filePath string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[filePath]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound effect %s", filePath)
	}

	if ext := strings.ToLower(path.Ext(filePath)); ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav)", ext)
	}

	data, err := readResource(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", filePath, err)
	}

	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", filePath, err)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", filePath, err)
	}

	rm.audioCache[filePath] = player
	return player, nil
}

// LoadSoundByID loads a sound effect using its resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	return rm.LoadSoundEffect(filePath)
}

// GetAudioPlayer retrieves a previously loaded sound player, by path or resource ID.
// It returns nil if the sound has not been loaded yet.
func (rm *ResourceManager) GetAudioPlayer(ref string) *audio.Player {
	if filePath, ok := rm.resourceMap[ref]; ok {
		ref = filePath
	}
	return rm.audioCache[ref]
}

// LoadFont creates a text face of the given size for one of the bundled Go fonts.
// The parsed font source is shared between sizes, and faces are cached by style and size.
//
// Example:
//
//	face, err := rm.LoadFont(FontBold, 28)
func (rm *ResourceManager) LoadFont(style FontStyle, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", style, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.fontSource(style)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont retrieves a previously created font face, or nil.
func (rm *ResourceManager) GetFont(style FontStyle, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", style, size)]
}

// FontsReady reports whether every bundled font source has been parsed.
// The loading scene waits on this before revealing the carousel.
func (rm *ResourceManager) FontsReady() bool {
	return len(rm.fontSources) == len(fontData)
}

// PrepareFonts parses all bundled font sources.
func (rm *ResourceManager) PrepareFonts() error {
	for style := range fontData {
		if _, err := rm.fontSource(style); err != nil {
			return err
		}
	}
	return nil
}

func (rm *ResourceManager) fontSource(style FontStyle) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSources[style]; ok {
		return source, nil
	}
	ttf, ok := fontData[style]
	if !ok {
		return nil, fmt.Errorf("unknown font style: %s", style)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", style, err)
	}
	rm.fontSources[style] = source
	return source, nil
}

// LoadResourceConfig loads the YAML resource configuration file and builds
// the ID -> path mapping used by LoadImageByID and LoadSoundByID.
//
// Example:
//
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data, configPath)
	if err != nil {
		return err
	}

	rm.config = cfg
	rm.buildResourceMap()
	log.Printf("[ResourceManager] Loaded resource config %s: %d groups, %d resources",
		configPath, len(cfg.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_CARD_COVER -> assets/images/cover.png
//	SOUND_TICK       -> assets/sounds/tick.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path, ".png")
		}
		for _, sound := range group.Sounds {
			rm.resourceMap[sound.ID] = buildFullPath(rm.config.BasePath, sound.Path, ".wav")
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	filePath, ok := rm.resourceMap[resourceID]
	return filePath, ok
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads all images and sounds in a named group.
//
// Sounds are skipped without error when there is no audio context,
// so a headless run can still load the image groups.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	if rm.audioContext == nil {
		return nil
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}
	return nil
}
