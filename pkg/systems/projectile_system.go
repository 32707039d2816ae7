package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/entities"
)

// ErrProjectileCap 同时存活的子弹数量已达上限
var ErrProjectileCap = errors.New("projectile cap reached")

// ProjectileSystem 子弹管理
// 负责子弹的生成、越界清理和存活计数
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	config        config.ProjectileConfig
}

// NewProjectileSystem 创建子弹管理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 子弹配置（尺寸、存活上限）
func NewProjectileSystem(em *ecs.EntityManager, cfg config.ProjectileConfig) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Spawn 在 (x, y) 生成一颗沿 direction 飞行的子弹
//
// 存活子弹数达到 MaxLive 时返回 ErrProjectileCap，不创建实体。
func (s *ProjectileSystem) Spawn(owner int, x, y, direction, speed float64) (ecs.EntityID, error) {
	if s.config.MaxLive > 0 && s.LiveCount() >= s.config.MaxLive {
		return 0, ErrProjectileCap
	}

	id, err := entities.NewProjectile(s.entityManager, owner, x, y, direction, speed, s.config)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn projectile: %w", err)
	}
	return id, nil
}

// SweepOffscreen 销毁所有位于 bounds 四边外扩 OffscreenMargin 之外的子弹
// 返回本次销毁的数量
func (s *ProjectileSystem) SweepOffscreen(bounds config.Rect) int {
	playfield := bounds.Expand(config.OffscreenMargin)

	removed := 0
	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if !playfield.Contains(pos.X, pos.Y) {
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}

	if removed > 0 {
		log.Printf("[ProjectileSystem] Swept %d offscreen projectile(s)", removed)
	}
	return removed
}

// LiveCount 返回当前存活（未被标记删除）的子弹数量
func (s *ProjectileSystem) LiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager))
}
