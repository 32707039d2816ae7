package components

// BodyComponent 街机物理刚体
//
// 动态刚体由 PhysicsSystem 积分重力与速度；静态刚体（地面）不移动，只参与阻挡。
// 刚体尺寸取自同一实体的 CollisionComponent。
type BodyComponent struct {
	// Static 静态刚体：不受重力、不积分速度
	Static bool

	// AllowGravity 是否受重力影响（子弹为 false）
	AllowGravity bool

	// CollideWorld 是否与世界边界和静态刚体发生碰撞
	// 子弹为 false：不会被地面或墙壁挡住，只由越界清理或命中移除
	CollideWorld bool

	// BlockedDown 本帧底部是否被阻挡（站在地面上或触及世界底边）
	// 由 PhysicsSystem 每帧重新计算
	BlockedDown bool
}
