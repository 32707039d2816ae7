package components

import "image/color"

// TextComponent 屏幕文字
type TextComponent struct {
	Text  string
	Size  float64
	Color color.RGBA
	Alpha float64

	// Centered 为 true 时以实体位置为中心绘制，否则实体位置为左上角
	Centered bool

	// Depth 绘制层级
	Depth int
}
