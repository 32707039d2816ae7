package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于刚体阻挡和子弹与目标的重叠检测，碰撞盒默认以实体位置为中心
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量（像素），正值向下偏移
}

// Bounds 返回以 (x, y) 为实体位置时碰撞盒的左、上、右、下边界
func (c *CollisionComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
