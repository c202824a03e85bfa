package utils

import (
	"regexp"
	"strings"
)

var paragraphSeparator = regexp.MustCompile(`\n\s*\n`)

// Prediction 解析后的预言文本
type Prediction struct {
	Year      string   // 第一段，通常是年份标签
	Body      []string // 除第一段外的所有非空段落
	Main      string   // 正文（有建议时不含最后一段）
	Advice    string   // 建议（最后一段）
	HasAdvice bool     // 正文段落数 >= 2 时最后一段作为建议
}

// ParsePrediction 按空行拆分预言文本
//
// 只有一段时 Year 就是整段文本，Main 为空；格式不规范的文本不会报错。
// 拆分前不裁剪整段文本，开头的空行会得到空的 Year。
func ParsePrediction(raw string) Prediction {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	parts := paragraphSeparator.Split(normalized, -1)

	var p Prediction
	if len(parts) == 0 {
		return p
	}

	p.Year = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			p.Body = append(p.Body, trimmed)
		}
	}

	p.HasAdvice = len(p.Body) >= 2
	if p.HasAdvice {
		p.Advice = p.Body[len(p.Body)-1]
		p.Main = strings.Join(p.Body[:len(p.Body)-1], "\n\n")
	} else {
		p.Main = strings.Join(p.Body, "\n\n")
	}
	return p
}
