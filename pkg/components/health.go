package components

// HealthComponent 存储实体的生命值信息
// 用于可被子弹击中的目标
type HealthComponent struct {
	CurrentHealth int // 当前生命值，只会减少，最低为 0
	MaxHealth     int // 最大生命值
}
