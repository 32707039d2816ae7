package components

// ProjectileComponent 子弹标记
// 子弹只能命中一次：命中即销毁
type ProjectileComponent struct {
	// Owner 发射者的玩家编号
	Owner int
}
