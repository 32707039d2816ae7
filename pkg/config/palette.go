package config

import "image/color"

// 调色板
// 目标的颜色档位与生命值一一对应，不做插值

var (
	// BackgroundColor 背景色
	BackgroundColor = color.RGBA{R: 0x1d, G: 0x1f, B: 0x2b, A: 0xff}

	// GroundColor 地面颜色（0x334455，透明度 0.8）
	GroundColor = color.RGBA{R: 0x33, G: 0x44, B: 0x55, A: 0xcc}

	// TextColor 界面文字颜色
	TextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// BannerColor 过关横幅颜色
	BannerColor = color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}

	// PlayerColors 玩家颜色，按玩家编号（1、2）索引，下标 0 不使用
	PlayerColors = [3]color.RGBA{
		{},
		{R: 0x00, G: 0xff, B: 0x99, A: 0xff},
		{R: 0x66, G: 0xaa, B: 0xff, A: 0xff},
	}

	// ProjectileColor 子弹颜色
	ProjectileColor = color.RGBA{R: 0xff, G: 0xff, B: 0xaa, A: 0xff}

	// MuzzleFlashColor 枪口火光颜色
	MuzzleFlashColor = color.RGBA{R: 0xff, G: 0xee, B: 0x88, A: 0xff}

	// HitSparkColor 命中火花颜色
	HitSparkColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// DestroyBurstColor 目标摧毁爆裂颜色
	DestroyBurstColor = color.RGBA{R: 0xff, G: 0x88, B: 0x33, A: 0xff}
)

// targetTierColors 目标颜色档位，按剩余生命值索引
var targetTierColors = map[int]color.RGBA{
	3: {R: 0xff, G: 0x55, B: 0x55, A: 0xff}, // Healthy
	2: {R: 0xff, G: 0xaa, B: 0x33, A: 0xff}, // Damaged
	1: {R: 0xff, G: 0xee, B: 0x44, A: 0xff}, // Critical
}

// TargetTierColor 返回指定生命值对应的目标颜色
// 生命值高于 3 使用满血颜色，0 及以下没有颜色（目标已被摧毁）
func TargetTierColor(hp int) (color.RGBA, bool) {
	if hp > 3 {
		hp = 3
	}
	c, ok := targetTierColors[hp]
	return c, ok
}
