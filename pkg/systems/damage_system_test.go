package systems

import (
	"testing"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/entities"
)

// setupTargets 按默认布局创建目标并设置目标总数
func setupTargets(t *testing.T, w *testWorld) []ecs.EntityID {
	t.Helper()
	ids := make([]ecs.EntityID, 0, len(w.cfg.Targets.Positions))
	for _, p := range w.cfg.Targets.Positions {
		ids = append(ids, spawnTarget(t, w, p.X, p.Y, w.cfg.Targets))
	}
	w.gs.SetTotalTargets(len(ids))
	return ids
}

// shootAt 在目标位置生成一颗子弹并返回命中事件
func shootAt(t *testing.T, w *testWorld, targetID ecs.EntityID) components.HitEvent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, targetID)
	if !ok {
		t.Fatalf("target %d has no position", targetID)
	}
	projectileID, err := w.projectiles.Spawn(1, pos.X, pos.Y, 1, 600)
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	return components.HitEvent{Projectile: projectileID, Target: targetID}
}

// countBanners 统计存活的过关横幅
func countBanners(em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith2[*components.TextComponent, *components.TweenComponent](em) {
		text, _ := ecs.GetComponent[*components.TextComponent](em, id)
		if text.Text == "STAGE CLEAR" {
			n++
		}
	}
	return n
}

// TestRoundRobinStageClear 三个目标轮流各中三枪，全部摧毁并恰好触发一次过关
func TestRoundRobinStageClear(t *testing.T) {
	w := newTestWorld(t, nil)
	targets := setupTargets(t, w)

	counterID, err := entities.NewHUDText(w.em, config.CounterX, config.CounterY, w.gs.CounterText())
	if err != nil {
		t.Fatalf("NewHUDText() error = %v", err)
	}
	w.damage.SetCounterEntity(counterID)

	lastHP := map[ecs.EntityID]int{}
	for _, id := range targets {
		lastHP[id] = 3
	}

	bannersCreated := 0
	for hit := 0; hit < 9; hit++ {
		targetID := targets[hit%len(targets)]
		w.gs.PushHitEvent(shootAt(t, w, targetID))

		before := countBanners(w.em)
		w.damage.Update()
		bannersCreated += countBanners(w.em) - before

		if d, total := w.gs.DestroyedTargets, w.gs.TotalTargets; d < 0 || d > total {
			t.Fatalf("Hit %d: destroyed count %d out of range [0, %d]", hit, d, total)
		}

		// 生命值单调不增且不低于 0
		if health, ok := ecs.GetComponent[*components.HealthComponent](w.em, targetID); ok {
			if health.CurrentHealth > lastHP[targetID] || health.CurrentHealth < 0 {
				t.Fatalf("Hit %d: hp went from %d to %d", hit, lastHP[targetID], health.CurrentHealth)
			}
			lastHP[targetID] = health.CurrentHealth
		}

		w.em.RemoveMarkedEntities()
	}

	if w.gs.DestroyedTargets != 3 {
		t.Errorf("Expected 3 destroyed targets, got %d", w.gs.DestroyedTargets)
	}
	if !w.gs.StageCleared {
		t.Error("Stage should be cleared")
	}
	for _, id := range targets {
		if w.em.IsAlive(id) {
			t.Errorf("Target %d should be destroyed", id)
		}
		if lastHP[id] != 0 {
			t.Errorf("Target %d should end with hp 0, got %d", id, lastHP[id])
		}
	}
	if bannersCreated != 1 {
		t.Errorf("Expected stage clear banner exactly once, got %d", bannersCreated)
	}

	counter, _ := ecs.GetComponent[*components.TextComponent](w.em, counterID)
	if counter.Text != "Targets: 3/3" {
		t.Errorf("Expected counter 'Targets: 3/3', got %q", counter.Text)
	}
}

// TestTargetStateTransitions 每次命中生命值减一，状态与颜色档位随之变化
func TestTargetStateTransitions(t *testing.T) {
	w := newTestWorld(t, nil)
	targets := setupTargets(t, w)
	targetID := targets[0]

	steps := []struct {
		wantHP    int
		wantState components.TargetState
	}{
		{2, components.TargetDamaged},
		{1, components.TargetCritical},
		{0, components.TargetDestroyed},
	}

	target, _ := ecs.GetComponent[*components.TargetComponent](w.em, targetID)
	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, targetID)
	shape, _ := ecs.GetComponent[*components.ShapeComponent](w.em, targetID)

	for i, step := range steps {
		if !w.damage.ApplyHit(shootAt(t, w, targetID)) {
			t.Fatalf("Hit %d should be applied", i)
		}
		if health.CurrentHealth != step.wantHP {
			t.Errorf("Hit %d: expected hp %d, got %d", i, step.wantHP, health.CurrentHealth)
		}
		if target.State != step.wantState {
			t.Errorf("Hit %d: expected state %s, got %s", i, step.wantState, target.State)
		}
		if want, ok := config.TargetTierColor(step.wantHP); ok && shape.Color != want {
			t.Errorf("Hit %d: expected tier color %v, got %v", i, want, shape.Color)
		}
	}

	if w.em.IsAlive(targetID) {
		t.Error("Target should be marked destroyed")
	}
	if w.gs.DestroyedTargets != 1 {
		t.Errorf("Expected 1 destroyed target, got %d", w.gs.DestroyedTargets)
	}
}

// TestDoubleHitSameFrame 同一帧两颗子弹命中同一目标，生命值恰好减 2
func TestDoubleHitSameFrame(t *testing.T) {
	w := newTestWorld(t, nil)
	targetID := setupTargets(t, w)[0]

	w.gs.PushHitEvent(shootAt(t, w, targetID))
	w.gs.PushHitEvent(shootAt(t, w, targetID))
	w.damage.Update()

	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, targetID)
	if health.CurrentHealth != 1 {
		t.Errorf("Expected hp 1 after double hit, got %d", health.CurrentHealth)
	}
	if w.projectiles.LiveCount() != 0 {
		t.Errorf("Both projectiles should be consumed, %d left", w.projectiles.LiveCount())
	}
}

// TestDoubleHitFromPhysics 物理检测产生的同帧双命中同样只各扣一次
func TestDoubleHitFromPhysics(t *testing.T) {
	w := newTestWorld(t, nil)
	targetID := setupTargets(t, w)[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, targetID)

	w.projectiles.Spawn(1, pos.X, pos.Y-10, 1, 600)
	w.projectiles.Spawn(2, pos.X, pos.Y+10, -1, 600)

	w.physics.Update(0)
	w.damage.Update()

	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, targetID)
	if health.CurrentHealth != 1 {
		t.Errorf("Expected hp 1, got %d", health.CurrentHealth)
	}
}

// TestHitOnDestroyedTargetIsNoop 对已摧毁目标的命中回调不会重复计数
func TestHitOnDestroyedTargetIsNoop(t *testing.T) {
	w := newTestWorld(t, nil)
	cfg := w.cfg.Targets
	cfg.Health = 1
	targetID := spawnTarget(t, w, 500, 300, cfg)
	w.gs.SetTotalTargets(2)

	if !w.damage.ApplyHit(shootAt(t, w, targetID)) {
		t.Fatal("First hit should be applied")
	}

	// 同一帧内的迟到事件：目标已标记删除
	late := components.HitEvent{Target: targetID}
	late.Projectile, _ = w.projectiles.Spawn(1, 500, 300, 1, 600)
	if w.damage.ApplyHit(late) {
		t.Error("Hit against pending-destroy target should be a no-op")
	}
	if !w.em.IsAlive(late.Projectile) {
		t.Error("Projectile of an ignored hit should survive")
	}

	// 帧末清理之后再次回调
	w.em.RemoveMarkedEntities()
	if w.damage.ApplyHit(late) {
		t.Error("Hit against removed target should be a no-op")
	}

	if w.gs.DestroyedTargets != 1 {
		t.Errorf("Expected destroyed count 1, got %d", w.gs.DestroyedTargets)
	}
}

// TestProjectileHitsOnlyOnce 一颗子弹同时与两个目标重叠，只有第一个事件生效
func TestProjectileHitsOnlyOnce(t *testing.T) {
	w := newTestWorld(t, nil)
	targetA := spawnTarget(t, w, 500, 300, w.cfg.Targets)
	targetB := spawnTarget(t, w, 530, 300, w.cfg.Targets)
	w.gs.SetTotalTargets(2)

	projectileID, _ := w.projectiles.Spawn(1, 515, 300, 1, 600)
	w.physics.Update(0)
	if n := w.gs.PendingHitEvents(); n != 2 {
		t.Fatalf("Expected 2 overlap events, got %d", n)
	}
	w.damage.Update()

	hpA, _ := ecs.GetComponent[*components.HealthComponent](w.em, targetA)
	hpB, _ := ecs.GetComponent[*components.HealthComponent](w.em, targetB)
	if hpA.CurrentHealth+hpB.CurrentHealth != 5 {
		t.Errorf("Expected exactly one damage point in total, got hp %d and %d", hpA.CurrentHealth, hpB.CurrentHealth)
	}
	if w.em.IsAlive(projectileID) {
		t.Error("Projectile should be destroyed")
	}
}

// TestHitFeedback 每次命中都会产生闪白、震动、火花
func TestHitFeedback(t *testing.T) {
	w := newTestWorld(t, nil)
	targetID := setupTargets(t, w)[0]

	w.damage.ApplyHit(shootAt(t, w, targetID))

	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](w.em, targetID)
	if !ok || !flash.IsActive || flash.Intensity != 1 {
		t.Errorf("Target should start flashing, got %+v", flash)
	}
	if flash != nil && flash.Duration != 0.08 {
		t.Errorf("Expected flash duration 0.08s, got %v", flash.Duration)
	}

	shakes := ecs.GetEntitiesWith1[*components.CameraShakeComponent](w.em)
	if len(shakes) != 1 {
		t.Errorf("Expected 1 camera shake, got %d", len(shakes))
	}

	sparks := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TweenComponent](w.em) {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](w.em, id)
		if shape.Color == config.HitSparkColor {
			sparks++
		}
	}
	if sparks != 1 {
		t.Errorf("Expected 1 hit spark, got %d", sparks)
	}

	if w.gs.StageCleared || w.gs.DestroyedTargets != 0 {
		t.Error("Non-lethal hit should not change stage progress")
	}
}
