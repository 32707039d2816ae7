package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在端点处必须精确返回 0 和 1
func TestEasingEndpoints(t *testing.T) {
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		fn       EasingFunc
		input    float64
		expected float64
	}{
		{"线性中点", EaseLinear, 0.5, 0.5},
		{"三次缓出中点", EaseOutCubic, 0.5, 0.875}, // 1 - 0.5^3
		{"三次缓入中点", EaseInCubic, 0.5, 0.125},
		{"二次缓出中点", EaseOutQuad, 0.5, 0.75},
		{"二次缓入缓出中点", EaseInOutQuad, 0.5, 0.5},
		{"二次缓入缓出四分之一", EaseInOutQuad, 0.25, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEasingByName(t *testing.T) {
	if got := EasingByName("easeOut")(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("easeOut(0.5) = %v, 期望 0.75", got)
	}
	// 未知名称回退为线性
	if got := EasingByName("bogus")(0.3); got != 0.3 {
		t.Errorf("unknown easing should be linear, got %v", got)
	}
	if got := EasingByName("")(0.7); got != 0.7 {
		t.Errorf("empty easing should be linear, got %v", got)
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, 期望 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, 期望 1", got)
	}
}
