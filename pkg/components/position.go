package components

// PositionComponent 存储实体在世界坐标系中的中心点位置
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 存储实体的线速度（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}
