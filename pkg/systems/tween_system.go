package systems

import (
	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/utils"
)

// TweenSystem 推进属性补间动画
// 把当前透明度和缩放写回实体的 ShapeComponent / TextComponent
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间动画系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{
		entityManager: em,
	}
}

// Update 推进所有补间动画
// 参数 dt 为秒
func (s *TweenSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager)

	for _, id := range ids {
		tween, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		if tween.Done {
			continue
		}

		tween.Elapsed += dt
		cycle := tween.CycleDuration()

		// 一帧可能跨过多轮
		for !tween.Done && tween.Elapsed >= cycle {
			tween.Iteration++
			if cycle <= 0 || tween.Iteration > tween.Repeat {
				tween.Done = true
				tween.Elapsed = cycle
				break
			}
			tween.Elapsed -= cycle
		}

		s.apply(id, tween)

		if tween.Done && tween.DestroyOnComplete {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// apply 根据当前进度计算属性值并写回
func (s *TweenSystem) apply(id ecs.EntityID, tween *components.TweenComponent) {
	t := utils.EasingByName(tween.Easing)(tweenProgress(tween))
	alpha := utils.Lerp(tween.AlphaFrom, tween.AlphaTo, t)
	scale := utils.Lerp(tween.ScaleFrom, tween.ScaleTo, t)

	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
		shape.Alpha = alpha
		shape.Scale = scale
	}
	if text, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		text.Alpha = alpha
	}
}

// tweenProgress 返回当前轮内的归一化进度（0 = 起始值，1 = 终值）
//
//	[0, Duration)                 正向
//	[Duration, Duration+Hold)     停留在终值
//	[Duration+Hold, cycle]        Yoyo 时反向，否则保持终值
func tweenProgress(tween *components.TweenComponent) float64 {
	if tween.Duration <= 0 {
		if tween.Yoyo && tween.Done {
			return 0
		}
		return 1
	}

	e := tween.Elapsed
	switch {
	case e < tween.Duration:
		return utils.Clamp01(e / tween.Duration)
	case e < tween.Duration+tween.Hold || !tween.Yoyo:
		return 1
	default:
		return utils.Clamp01(1 - (e-tween.Duration-tween.Hold)/tween.Duration)
	}
}
