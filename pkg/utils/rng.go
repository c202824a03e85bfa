package utils

import "math/rand/v2"

// RandomSource 随机数来源
// 转动目标和圈数都从这里取，测试中可以替换为固定序列
type RandomSource interface {
	// Intn 返回 [0, n) 内的非负随机整数
	Intn(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// NewRandomSource 创建随机数来源
// seed 为 0 时使用全局随机源，否则使用固定种子（可复现的转动结果）
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return globalSource{}
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
