package main

import (
	"flag"
	"log"

	"github.com/decker502/tarot/pkg/app"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	seed        = flag.Uint64("seed", 0, "随机种子（0 表示每次不同）")
	skipLoading = flag.Bool("skip-loading", false, "跳过启动画面")
	deckPath    = flag.String("deck", "", "从文件加载牌组（默认使用内置牌组）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		Seed:             *seed,
		SkipLoadingScene: *skipLoading,
		DeckPath:         *deckPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowSizeLimits(config.MinViewportWidth, config.MinViewportHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tarot Roulette 2026")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
