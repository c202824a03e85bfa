// verify_spin 无窗口运行轮盘转动，统计落点分布和转动步数
//
// 用法：
//
//	go run ./cmd/verify_spin -spins 500 -seed 42
//	go run ./cmd/verify_spin -deck data/cards.yaml -width 400 -height 700
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/decker502/tarot/pkg/components"
	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/ecs"
	"github.com/decker502/tarot/pkg/systems"
	"github.com/decker502/tarot/pkg/utils"
)

var (
	spins    = flag.Int("spins", 200, "转动次数")
	cards    = flag.Int("cards", 8, "未指定牌组时生成的卡牌数量")
	deckPath = flag.String("deck", "", "牌组文件（可选）")
	seed     = flag.Uint64("seed", 1, "随机种子")
	width    = flag.Float64("width", config.GameWindowWidth, "视口宽度")
	height   = flag.Float64("height", config.GameWindowHeight, "视口高度")
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
)

const deltaTime = 1.0 / 60.0

// tickCounter 统计滴答音效次数（每经过一张卡牌一次）
type tickCounter struct {
	ticks int
}

func (c *tickCounter) PlaySound(soundID string) bool {
	if soundID == config.SoundTickID {
		c.ticks++
	}
	return true
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	deck, err := loadDeck()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	n := len(deck.Cards)
	if n == 0 {
		fmt.Println("牌组为空，转动会被拒绝")
		return
	}

	counter := &tickCounter{}
	em := ecs.NewEntityManager()
	carousel := systems.NewCarouselSystem(em, deck, utils.NewRandomSource(*seed), counter)
	carousel.Remeasure(*width, *height)

	landed := make(map[int]int, n)
	minTicks, maxTicks := -1, 0
	failures := 0

	for i := 0; i < *spins; i++ {
		counter.ticks = 0
		if !carousel.StartSpin() {
			failures++
			continue
		}

		frames := 0
		for carousel.IsSpinning() && frames < 60*60 {
			carousel.Update(deltaTime)
			frames++
		}
		if carousel.GetPhase() != components.PhaseSelected {
			failures++
			carousel.Reset()
			continue
		}

		base := utils.BaseIndexOf(carousel.GetSelectedAbsIndex(), n)
		landed[base]++
		if minTicks < 0 || counter.ticks < minTicks {
			minTicks = counter.ticks
		}
		maxTicks = max(maxTicks, counter.ticks)

		carousel.Reset()
	}

	fmt.Printf("=== Spin distribution (%d cards, %d spins, seed %d) ===\n", n, *spins, *seed)
	keys := make([]int, 0, len(landed))
	for k := range landed {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	expected := float64(*spins-failures) / float64(n)
	for _, k := range keys {
		fmt.Printf("  %2d %-20s %4d  (%.2fx expected)\n", k, deck.Cards[k].Title, landed[k], float64(landed[k])/expected)
	}
	// 每帧最多发布一次索引，高速段会跳过卡牌，所以滴答数可能小于实际步数
	fmt.Printf("ticks per spin: min %d, max %d (spin covers %d..%d cards)\n",
		minTicks, maxTicks, config.SpinMinLoops*n, (config.SpinMaxLoops+1)*n-1)
	if failures > 0 {
		fmt.Printf("FAILED spins: %d\n", failures)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func loadDeck() (*config.DeckConfig, error) {
	if *deckPath != "" {
		return config.LoadCardDeck(*deckPath)
	}
	deck := &config.DeckConfig{ID: "generated", BackImage: config.DefaultBackImage}
	for i := 0; i < *cards; i++ {
		deck.Cards = append(deck.Cards, config.CardConfig{
			ID:         fmt.Sprintf("card%d", i),
			Title:      fmt.Sprintf("Card %d", i),
			Prediction: "2026",
		})
	}
	return deck, nil
}
