package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制补间动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutQuad 二次方缓入缓出（横幅淡入淡出使用）
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// easings 缓动函数名称表，供配置和组件按名称引用
var easings = map[string]EasingFunc{
	"linear":    EaseLinear,
	"easeOut":   EaseOutQuad,
	"easeIn":    EaseInCubic,
	"easeInOut": EaseInOutQuad,
	"cubicOut":  EaseOutCubic,
}

// EasingByName 按名称查找缓动函数，未知名称（包括空字符串）返回线性缓动
func EasingByName(name string) EasingFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return EaseLinear
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
