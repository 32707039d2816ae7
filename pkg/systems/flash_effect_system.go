package systems

import (
	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/ecs"
)

// FlashEffectSystem 受击闪白系统
// 闪烁强度随时间线性衰减，结束后移除组件
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪烁效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, id := range ids {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		if !ok || !flash.IsActive {
			continue
		}

		flash.Elapsed += dt
		if flash.Duration <= 0 || flash.Elapsed >= flash.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
			continue
		}

		flash.Intensity = 1 - flash.Elapsed/flash.Duration
	}
}
