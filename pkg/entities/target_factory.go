package entities

import (
	"fmt"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

// NewTarget 创建可被摧毁的静态目标
// 目标没有刚体（不受重力），只拥有碰撞盒用于子弹重叠检测
func NewTarget(em *ecs.EntityManager, x, y float64, cfg config.TargetConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Health <= 0 {
		return 0, fmt.Errorf("target health must be positive, got %d", cfg.Health)
	}

	tierColor, _ := config.TargetTierColor(cfg.Health)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: cfg.Health,
		MaxHealth:     cfg.Health,
	})
	ecs.AddComponent(em, entityID, &components.TargetComponent{
		State: components.TargetStateFor(cfg.Health),
	})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Kind:   components.ShapeRect,
		Width:  cfg.Width,
		Height: cfg.Height,
		Color:  tierColor,
		Alpha:  1,
		Scale:  1,
		Depth:  DepthTarget,
	})

	return entityID, nil
}

// NewGround 创建地面静态刚体
// 地面横跨整个关卡宽度，中心位于距底部 20 像素处
func NewGround(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: config.GameWidth / 2,
		Y: config.GroundCenterY,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.GameWidth,
		Height: config.GroundHeight,
	})
	ecs.AddComponent(em, entityID, &components.BodyComponent{Static: true})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Kind:   components.ShapeRect,
		Width:  config.GameWidth,
		Height: config.GroundHeight,
		Color:  config.GroundColor,
		Alpha:  1,
		Scale:  1,
		Depth:  DepthGround,
	})

	return entityID, nil
}
