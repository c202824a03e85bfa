package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - 0.5^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutCubic 测试缓入缓出的对称性
func TestEaseInOutCubic(t *testing.T) {
	if v := EaseInOutCubic(0.5); math.Abs(v-0.5) > 0.001 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", v)
	}
	for p := 0.05; p < 0.5; p += 0.05 {
		a := EaseInOutCubic(p)
		b := 1 - EaseInOutCubic(1-p)
		if math.Abs(a-b) > 0.0001 {
			t.Errorf("EaseInOutCubic 不对称: f(%v)=%v, 1-f(1-%v)=%v", p, a, p, b)
		}
	}
}

// TestEaseRoulette 测试轮盘缓动曲线
func TestEaseRoulette(t *testing.T) {
	const accel = 0.2

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"加速段结束", accel, accel},
		{"加速段中点", 0.1, accel * 0.125},       // 0.2 * 0.5^3
		{"减速段中点", 0.6, accel + 0.8*0.875}, // (0.6-0.2)/0.8 = 0.5
		{"小于0截断", -0.5, 0.0},
		{"大于1截断", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseRoulette(tt.input, accel)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("EaseRoulette(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("单调递增", func(t *testing.T) {
		prev := 0.0
		for i := 1; i <= 200; i++ {
			v := EaseRoulette(float64(i)/200, accel)
			if v < prev-1e-12 {
				t.Fatalf("EaseRoulette 在 t=%v 处下降: %v < %v", float64(i)/200, v, prev)
			}
			prev = v
		}
	})

	t.Run("先快后慢", func(t *testing.T) {
		// 加速段结束时速度最大，末尾速度趋近于 0
		const h = 0.001
		peak := (EaseRoulette(accel+h, accel) - EaseRoulette(accel, accel)) / h
		tail := (EaseRoulette(1, accel) - EaseRoulette(1-h, accel)) / h
		if tail >= peak {
			t.Errorf("末尾速度 %v 应小于峰值速度 %v", tail, peak)
		}
		if tail > 0.01 {
			t.Errorf("末尾速度 %v 应接近 0", tail)
		}
	})

	t.Run("非法加速比例退化为缓出", func(t *testing.T) {
		if EaseRoulette(0.5, 0) != EaseOutCubic(0.5) {
			t.Error("accel=0 应等同于 EaseOutCubic")
		}
	})
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 100, 200, 0, 100},
		{"终点", 100, 200, 1, 200},
		{"中点", 100, 200, 0.5, 150},
		{"反向", 1.0, 0.97, 0.5, 0.985},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}
