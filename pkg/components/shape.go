package components

import "image/color"

// ShapeKind 图元类型
type ShapeKind int

const (
	// ShapeRect 矩形，尺寸为 Width × Height
	ShapeRect ShapeKind = iota
	// ShapeCircle 圆形，半径为 Radius
	ShapeCircle
)

// ShapeComponent 由 RenderSystem 绘制的基础图元
// 以实体位置为中心绘制，Alpha 与 Scale 可被 TweenComponent 驱动
type ShapeComponent struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Radius float64
	Color  color.RGBA

	// Alpha 不透明度（0.0 - 1.0），与 Color.A 相乘
	Alpha float64

	// Scale 绘制缩放（1.0 = 原始大小）
	Scale float64

	// Depth 绘制层级，数值大的后绘制（位于上层）
	Depth int
}
