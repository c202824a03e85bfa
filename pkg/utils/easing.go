package utils

import "math"

// Easing Functions (缓动函数)
//
// 转动、吸附、翻牌和淡入动画共用的速度曲线。
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseRoulette 轮盘缓动
// 特点：前 accel 比例的时间用三次方缓入加速，其余时间用三次方缓出减速，模拟轮盘先快后慢地停下
// 公式：
//
//	t <= a: f(t) = a * easeInCubic(t/a)
//	t > a:  f(t) = a + (1-a) * easeOutCubic((t-a)/(1-a))
//
// t 超出 [0, 1] 时先截断；accel 不在 (0, 1) 内时退化为 EaseOutCubic
func EaseRoulette(t, accel float64) float64 {
	t = Clamp01(t)
	if accel <= 0 || accel >= 1 {
		return EaseOutCubic(t)
	}
	if t <= accel {
		return accel * EaseInCubic(t/accel)
	}
	return accel + (1-accel)*EaseOutCubic((t-accel)/(1-accel))
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
