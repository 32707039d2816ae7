package config

// 布局配置常量
// 本文件定义了关卡场景中的尺寸与边界参数
// 所有坐标使用世界坐标系（左上角为原点，Y 轴向下），实体位置取其中心点

// Screen Configuration (屏幕配置)
const (
	// GameWindowWidth 是游戏逻辑屏幕宽度
	GameWindowWidth = 960

	// GameWindowHeight 是游戏逻辑屏幕高度
	GameWindowHeight = 540

	// GameWidth 是关卡世界宽度（与逻辑屏幕一致，关卡不滚动）
	GameWidth = float64(GameWindowWidth)

	// GameHeight 是关卡世界高度
	GameHeight = float64(GameWindowHeight)

	// WindowTitle 窗口标题
	WindowTitle = "ContraLike"

	// TitleText 左上角标题文字
	TitleText = "ContraLike - Arcade Physics"
)

// Ground Configuration (地面配置)
const (
	// GroundHeight 是地面矩形高度
	GroundHeight = 40.0

	// GroundCenterY 是地面中心Y坐标（距底部 20 像素）
	GroundCenterY = GameHeight - GroundHeight/2

	// GroundTopY 是地面上表面Y坐标，站立在地面上的实体底边与此对齐
	GroundTopY = GroundCenterY - GroundHeight/2
)

// Physics Configuration (物理配置)
const (
	// DefaultGravity 是默认重力加速度（像素/秒²）
	DefaultGravity = 900.0

	// OffscreenMargin 是子弹越界清理的外扩边距（像素）
	// 子弹位置超出 [-20, GameWidth+20] × [-20, GameHeight+20] 时被销毁
	OffscreenMargin = 20.0
)

// HUD Configuration (界面文字配置)
const (
	// TitleX, TitleY 标题文字左上角位置
	TitleX = 20.0
	TitleY = 20.0

	// CounterX, CounterY 目标计数文字左上角位置
	CounterX = 20.0
	CounterY = 48.0

	// HUDFontSize 界面文字字号
	HUDFontSize = 18.0

	// BannerFontSize 过关横幅字号
	BannerFontSize = 56.0
)

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 判断点是否位于矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Expand 返回四边各外扩 margin 后的矩形
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// WorldBounds 返回关卡世界边界
func WorldBounds() Rect {
	return Rect{X: 0, Y: 0, Width: GameWidth, Height: GameHeight}
}
