package entities

import (
	"fmt"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

// NewProjectile 创建子弹实体
// 子弹以恒定速度沿 direction 水平飞行，不受重力、不与地面和世界边界碰撞，
// 只会因越界清理或命中目标而被移除
//
// 参数:
//   - em: 实体管理器
//   - owner: 发射者玩家编号
//   - x, y: 生成点世界坐标
//   - direction: 飞行方向，+1 向右，-1 向左
//   - speed: 飞行速度（像素/秒）
//   - cfg: 子弹尺寸配置
//
// 返回:
//   - ecs.EntityID: 子弹实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewProjectile(em *ecs.EntityManager, owner int, x, y, direction, speed float64, cfg config.ProjectileConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if direction == 0 {
		return 0, fmt.Errorf("projectile direction cannot be zero")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VX: direction * speed,
		VY: 0,
	})
	ecs.AddComponent(em, entityID, &components.BodyComponent{
		AllowGravity: false,
		CollideWorld: false,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{Owner: owner})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Kind:   components.ShapeRect,
		Width:  cfg.Width,
		Height: cfg.Height,
		Color:  config.ProjectileColor,
		Alpha:  1,
		Scale:  1,
		Depth:  DepthProjectile,
	})

	return entityID, nil
}
