// validate_cards 检查牌组配置
//
// 用法（项目根目录）：
//
//	go run ./tools
//	go run ./tools data/cards.yaml
package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/decker502/tarot/pkg/config"
	"github.com/decker502/tarot/pkg/game"
	"github.com/decker502/tarot/pkg/utils"
)

const resourceConfigPath = "assets/config/resources.yaml"

func main() {
	deckPath := "data/cards.yaml"
	if len(os.Args) > 1 {
		deckPath = os.Args[1]
	}

	deck, err := config.LoadCardDeck(deckPath)
	if err != nil {
		fmt.Printf("❌ 牌组加载失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 牌组 %q 格式正确，共 %d 张卡牌\n", deck.ID, len(deck.Cards))

	ids, err := loadResourceIDs()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	problems := 0
	if !imageExists(ids, deck.BackImage) {
		fmt.Printf("❌ 卡背图片不存在: %s\n", deck.BackImage)
		problems++
	}

	for i, card := range deck.Cards {
		if card.Image == "" {
			fmt.Printf("⚠️  第 %d 张卡牌 %s 没有图片，将使用程序化卡面\n", i+1, card.ID)
		} else if !imageExists(ids, card.Image) {
			fmt.Printf("❌ 第 %d 张卡牌 %s 的图片不存在: %s\n", i+1, card.ID, card.Image)
			problems++
		}

		p := utils.ParsePrediction(card.Prediction)
		if len(p.Body) == 0 {
			fmt.Printf("⚠️  第 %d 张卡牌 %s 的预言只有一段（只显示年份行）\n", i+1, card.ID)
		} else if !p.HasAdvice {
			fmt.Printf("⚠️  第 %d 张卡牌 %s 没有建议段落\n", i+1, card.ID)
		}
	}

	if problems > 0 {
		fmt.Printf("❌ 发现 %d 个问题\n", problems)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有卡牌图片都能找到\n")
}

// loadResourceIDs 读取资源配置，返回图片ID到文件路径的映射
func loadResourceIDs() (map[string]string, error) {
	data, err := os.ReadFile(resourceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取资源配置失败: %w", err)
	}
	cfg, err := game.ParseResourceConfig(data, resourceConfigPath)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]string)
	for _, group := range cfg.Groups {
		for _, img := range group.Images {
			p := path.Join(cfg.BasePath, img.Path)
			if path.Ext(p) == "" {
				p += ".png"
			}
			ids[img.ID] = p
		}
	}
	return ids, nil
}

// imageExists 图片引用可以是资源ID，也可以是文件路径
func imageExists(ids map[string]string, ref string) bool {
	if p, ok := ids[ref]; ok {
		ref = p
	} else if strings.HasPrefix(ref, "IMAGE_") {
		return false
	}
	_, err := os.Stat(ref)
	return err == nil
}
