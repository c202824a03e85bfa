package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBackImage 卡背图片的默认资源ID
const DefaultBackImage = "IMAGE_CARD_COVER"

// DeckConfig 牌组配置数据结构
// 定义了牌组的基本信息和卡牌列表，卡牌顺序即卡带中的顺序
type DeckConfig struct {
	ID        string       `yaml:"id"`        // 牌组ID，如 "year2026"
	Name      string       `yaml:"name"`      // 牌组名称（可选，默认等于 ID）
	BackImage string       `yaml:"backImage"` // 卡背图片资源ID或路径（可选）
	Cards     []CardConfig `yaml:"cards"`     // 卡牌列表
}

// CardConfig 单张卡牌配置
// 加载后不再修改
type CardConfig struct {
	ID         string `yaml:"id"`         // 卡牌ID（牌组内唯一）
	Title      string `yaml:"title"`      // 卡牌标题
	Image      string `yaml:"image"`      // 正面图片路径，如 "assets/images/cards/sun.png"
	Prediction string `yaml:"prediction"` // 预言文本，段落之间用空行分隔
}

// LoadCardDeck 从YAML文件加载牌组配置
// 参数：
//
//	filepath - 牌组配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*DeckConfig - 解析后的牌组配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadCardDeck(filepath string) (*DeckConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read card deck file %s: %w", filepath, err)
	}
	return ParseCardDeck(data, filepath)
}

// ParseCardDeck 解析内存中的牌组 YAML 数据
// source 仅用于错误信息（如嵌入资源路径）
func ParseCardDeck(data []byte, source string) (*DeckConfig, error) {
	var deck DeckConfig
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse card deck YAML from %s: %w", source, err)
	}

	applyDeckDefaults(&deck)

	if err := validateDeckConfig(&deck); err != nil {
		return nil, fmt.Errorf("invalid card deck in %s: %w", source, err)
	}

	return &deck, nil
}

// applyDeckDefaults 为 DeckConfig 中缺失的可选字段设置默认值
func applyDeckDefaults(deck *DeckConfig) {
	if deck.Name == "" {
		deck.Name = deck.ID
	}

	if deck.BackImage == "" {
		deck.BackImage = DefaultBackImage
	}

	// 去掉 YAML 块标量带来的首尾空白，段落结构保持不变
	for i := range deck.Cards {
		deck.Cards[i].ID = strings.TrimSpace(deck.Cards[i].ID)
		deck.Cards[i].Title = strings.TrimSpace(deck.Cards[i].Title)
		deck.Cards[i].Prediction = strings.TrimSpace(deck.Cards[i].Prediction)
	}
}

// validateDeckConfig 验证牌组配置的完整性和合法性
//
// 空牌组是合法的：卡带为空，转动按钮不会启动转动
func validateDeckConfig(deck *DeckConfig) error {
	if deck.ID == "" {
		return fmt.Errorf("deck ID is required")
	}

	seen := make(map[string]int, len(deck.Cards))
	for i, card := range deck.Cards {
		if card.ID == "" {
			return fmt.Errorf("card %d: id is required", i)
		}
		if prev, dup := seen[card.ID]; dup {
			return fmt.Errorf("card %d: duplicate id %q (first used by card %d)", i, card.ID, prev)
		}
		seen[card.ID] = i

		if card.Title == "" {
			return fmt.Errorf("card %d (%s): title is required", i, card.ID)
		}
		if card.Prediction == "" {
			return fmt.Errorf("card %d (%s): prediction is required", i, card.ID)
		}
	}

	return nil
}
