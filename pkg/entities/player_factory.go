package entities

import (
	"fmt"
	"math"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家是受重力影响的动态刚体，与地面和世界边界碰撞，整个会话期间不会被销毁
//
// 参数:
//   - em: 实体管理器
//   - index: 玩家编号（1 或 2）
//   - x, y: 出生点世界坐标
//   - cfg: 玩家参数
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, index int, x, y float64, cfg config.PlayerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if index < 1 || index >= len(config.PlayerColors) {
		return 0, fmt.Errorf("invalid player index %d", index)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Radius * 2,
		Height: cfg.Radius * 2,
	})
	ecs.AddComponent(em, entityID, &components.BodyComponent{
		AllowGravity: true,
		CollideWorld: true,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Index:        index,
		Speed:        cfg.Speed,
		JumpVelocity: cfg.JumpVelocity,
		Facing:       1,
		FireCooldown: cfg.FireCooldownMs,
		LastFireAt:   math.Inf(-1),
		MuzzleOffset: cfg.MuzzleOffset,
		BulletSpeed:  cfg.BulletSpeed,
	})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Radius: cfg.Radius,
		Color:  config.PlayerColors[index],
		Alpha:  1,
		Scale:  1,
		Depth:  DepthPlayer,
	})

	return entityID, nil
}
