package systems

import (
	"log"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/entities"
	"github.com/decker502/contralike/pkg/game"
)

// DamageSystem 目标受损状态机
//
// 同步消费本帧的命中事件。生命值的唯一修改者。
// 状态转移：Healthy(3) → Damaged(2) → Critical(1) → Destroyed(0)
type DamageSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	effects       config.EffectsConfig

	// counterEntity 界面计数文字实体，0 表示没有
	counterEntity ecs.EntityID
}

// NewDamageSystem 创建受损系统
func NewDamageSystem(em *ecs.EntityManager, gs *game.GameState, effects config.EffectsConfig) *DamageSystem {
	return &DamageSystem{
		entityManager: em,
		gameState:     gs,
		effects:       effects,
	}
}

// SetCounterEntity 设置每次命中后需要刷新的计数文字实体
func (s *DamageSystem) SetCounterEntity(id ecs.EntityID) {
	s.counterEntity = id
}

// Update 处理本帧全部命中事件
func (s *DamageSystem) Update() {
	for _, event := range s.gameState.DrainHitEvents() {
		s.ApplyHit(event)
	}
}

// ApplyHit 处理一次命中
//
// 子弹或目标任一方已失效（被销毁或已标记删除）时为空操作，
// 因此对已摧毁目标的重复回调不会重复扣血或重复计数。
// 返回 true 表示本次命中被实际处理。
func (s *DamageSystem) ApplyHit(event components.HitEvent) bool {
	em := s.entityManager
	if !em.IsAlive(event.Projectile) || !em.IsAlive(event.Target) {
		return false
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, event.Target)
	if !ok {
		return false
	}
	target, ok := ecs.GetComponent[*components.TargetComponent](em, event.Target)
	if !ok {
		return false
	}
	targetPos, ok := ecs.GetComponent[*components.PositionComponent](em, event.Target)
	if !ok {
		return false
	}

	hitX, hitY := targetPos.X, targetPos.Y
	if projectilePos, ok := ecs.GetComponent[*components.PositionComponent](em, event.Projectile); ok {
		hitX, hitY = projectilePos.X, projectilePos.Y
	}

	// 子弹只能命中一次
	em.DestroyEntity(event.Projectile)

	health.CurrentHealth--
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}
	target.State = components.TargetStateFor(health.CurrentHealth)

	if tierColor, ok := config.TargetTierColor(health.CurrentHealth); ok {
		if shape, ok := ecs.GetComponent[*components.ShapeComponent](em, event.Target); ok {
			shape.Color = tierColor
		}
	}

	s.playHitFeedback(event.Target, hitX, hitY)

	cleared := false
	if target.State == components.TargetDestroyed {
		em.DestroyEntity(event.Target)
		cleared = s.gameState.RecordTargetDestroyed()

		if _, err := entities.NewDestroyBurst(em, targetPos.X, targetPos.Y, s.effects.DestroyBurstMs); err != nil {
			log.Printf("[DamageSystem] Warning: failed to create destroy burst: %v", err)
		}
		playSound(s.gameState, game.SoundDestroy)
		log.Printf("[DamageSystem] Target %d destroyed (%s)", event.Target, s.gameState.CounterText())
	}

	if s.counterEntity != 0 {
		entities.SetText(em, s.counterEntity, s.gameState.CounterText())
	}

	if cleared {
		s.onStageClear()
	}
	return true
}

// playHitFeedback 每次命中都会触发的反馈：受击闪白、镜头震动、命中火花、命中音效
func (s *DamageSystem) playHitFeedback(targetID ecs.EntityID, hitX, hitY float64) {
	em := s.entityManager

	// 重复命中时重新开始闪烁
	ecs.AddComponent(em, targetID, &components.FlashEffectComponent{
		Duration:  s.effects.HitFlashMs / 1000,
		Intensity: 1,
		IsActive:  true,
	})

	if _, err := entities.NewCameraShake(em, s.effects.ShakeDurationMs, s.effects.ShakeMagnitude); err != nil {
		log.Printf("[DamageSystem] Warning: failed to create camera shake: %v", err)
	}
	if _, err := entities.NewHitSpark(em, hitX, hitY, s.effects.HitSparkMs); err != nil {
		log.Printf("[DamageSystem] Warning: failed to create hit spark: %v", err)
	}
	playSound(s.gameState, game.SoundHit)
}

// onStageClear 过关表现，每个关卡只触发一次
func (s *DamageSystem) onStageClear() {
	if _, err := entities.NewStageClearBanner(s.entityManager, s.effects.Banner); err != nil {
		log.Printf("[DamageSystem] Warning: failed to create stage clear banner: %v", err)
	}
	playSound(s.gameState, game.SoundStageClear)
	log.Printf("[DamageSystem] Stage clear! %s", s.gameState.CounterText())
}
