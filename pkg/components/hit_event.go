package components

import "github.com/decker502/contralike/pkg/ecs"

// HitEvent 子弹与目标的一次重叠
// 由 PhysicsSystem 每帧按碰撞对去重后产生，DamageSystem 在同一帧内同步消费
type HitEvent struct {
	Projectile ecs.EntityID
	Target     ecs.EntityID
}
