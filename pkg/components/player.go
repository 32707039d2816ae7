package components

// PlayerComponent 玩家控制的角色
type PlayerComponent struct {
	// Index 玩家编号（1 或 2），决定读取哪一组按键映射
	Index int

	// Speed 水平移动速度（像素/秒）
	Speed float64

	// JumpVelocity 起跳时直接赋值的竖直速度（负值向上）
	JumpVelocity float64

	// Facing 朝向：+1 向右，-1 向左
	// 水平输入为 0 时保持不变，子弹始终沿最后一次朝向发射
	Facing float64

	// OnGround 本帧是否着地，由刚体的 BlockedDown 推导
	OnGround bool

	// FireCooldown 开火冷却（毫秒）
	FireCooldown float64

	// LastFireAt 上次开火的时间戳（毫秒，会话时钟）
	// 初始为负无穷，保证第一发不受冷却限制
	LastFireAt float64

	// MuzzleOffset 子弹生成点沿朝向的偏移（像素）
	MuzzleOffset float64

	// BulletSpeed 子弹速度（像素/秒）
	BulletSpeed float64
}
