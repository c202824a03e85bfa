package utils

// TapeEntry 卡带中的一个条目
//
// 卡带由 N 张逻辑卡牌重复 L 次组成，用来模拟无限滚动。
// 条目在卡牌集合或循环次数变化时重新生成。
type TapeEntry[T any] struct {
	AbsoluteIndex int // 在整条卡带中的位置，loop*N + i
	BaseIndex     int // 对应的逻辑卡牌索引，AbsoluteIndex mod N
	Card          T   // 卡牌数据引用
}

// BuildTape 将 N 张卡牌展开成 loops 次重复的卡带
//
// 每一轮内部保持卡牌原有顺序。纯函数，不修改输入。
//
// 参数：
//   - cards: 逻辑卡牌列表
//   - loops: 重复次数
//
// 返回：
//   - []TapeEntry[T]: 长度为 len(cards)*loops 的卡带；卡牌为空或 loops<=0 时返回 nil
func BuildTape[T any](cards []T, loops int) []TapeEntry[T] {
	n := len(cards)
	if n == 0 || loops <= 0 {
		return nil
	}

	tape := make([]TapeEntry[T], 0, n*loops)
	for loop := 0; loop < loops; loop++ {
		for i, card := range cards {
			tape = append(tape, TapeEntry[T]{
				AbsoluteIndex: loop*n + i,
				BaseIndex:     i,
				Card:          card,
			})
		}
	}
	return tape
}

// BaseIndexOf 将绝对索引映射为逻辑卡牌索引（结果总在 [0, n) 内）
// n <= 0 时返回 0
func BaseIndexOf(absIndex, n int) int {
	if n <= 0 {
		return 0
	}
	return ((absIndex % n) + n) % n
}
