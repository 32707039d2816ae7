package entities

import (
	"math"
	"testing"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultStageConfig().Player

	id, err := NewPlayer(em, 1, 100, 490, cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("Player should have PlayerComponent")
	}
	if player.Facing != 1 {
		t.Errorf("Initial facing should be +1, got %.0f", player.Facing)
	}
	if !math.IsInf(player.LastFireAt, -1) {
		t.Errorf("LastFireAt should start at -Inf so the first shot is never gated, got %v", player.LastFireAt)
	}
	if player.FireCooldown != 200 {
		t.Errorf("Expected cooldown 200, got %.1f", player.FireCooldown)
	}

	body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	if !ok || !body.AllowGravity || !body.CollideWorld {
		t.Errorf("Player body should use gravity and world collision, got %+v", body)
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Width != 24 || col.Height != 24 {
		t.Errorf("Expected 24x24 collision box, got %+v", col)
	}
}

func TestNewPlayerInvalidIndex(t *testing.T) {
	cfg := config.DefaultStageConfig().Player
	for _, index := range []int{0, 3, -1} {
		if _, err := NewPlayer(ecs.NewEntityManager(), index, 0, 0, cfg); err == nil {
			t.Errorf("Expected error for player index %d", index)
		}
	}
}

func TestNewTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultStageConfig().Targets

	id, err := NewTarget(em, 560, 470, cfg)
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.CurrentHealth != 3 || health.MaxHealth != 3 {
		t.Errorf("Expected 3/3 health, got %+v", health)
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](em, id)
	if !ok || target.State != components.TargetHealthy {
		t.Errorf("New target should be Healthy, got %+v", target)
	}

	shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
	want, _ := config.TargetTierColor(3)
	if shape == nil || shape.Color != want {
		t.Error("New target should use the full-health tier color")
	}

	if ecs.HasComponent[*components.BodyComponent](em, id) {
		t.Error("Targets should not have a physics body")
	}

	cfg.Health = 0
	if _, err := NewTarget(em, 0, 0, cfg); err == nil {
		t.Error("Expected error for zero health")
	}
}

func TestNewGround(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewGround(em)
	if err != nil {
		t.Fatalf("NewGround() error = %v", err)
	}

	body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	if !ok || !body.Static {
		t.Error("Ground should be a static body")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != config.GameHeight-20 {
		t.Errorf("Ground center should be 20px above the bottom, got %.1f", pos.Y)
	}
}

func TestFadingEffects(t *testing.T) {
	tests := []struct {
		name   string
		create func(em *ecs.EntityManager) (ecs.EntityID, error)
		wantMs float64
	}{
		{"枪口火光", func(em *ecs.EntityManager) (ecs.EntityID, error) { return NewMuzzleFlash(em, 10, 20, 80) }, 80},
		{"命中火花", func(em *ecs.EntityManager) (ecs.EntityID, error) { return NewHitSpark(em, 10, 20, 120) }, 120},
		{"摧毁爆裂", func(em *ecs.EntityManager) (ecs.EntityID, error) { return NewDestroyBurst(em, 10, 20, 250) }, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := tt.create(em)
			if err != nil {
				t.Fatalf("create error = %v", err)
			}

			tween, ok := ecs.GetComponent[*components.TweenComponent](em, id)
			if !ok {
				t.Fatal("Effect should have TweenComponent")
			}
			if !tween.DestroyOnComplete {
				t.Error("Effect should self-destroy")
			}
			if math.Abs(tween.TotalDuration()-tt.wantMs/1000) > 1e-9 {
				t.Errorf("Expected duration %.3fs, got %.3fs", tt.wantMs/1000, tween.TotalDuration())
			}
			if tween.AlphaTo != 0 {
				t.Error("Effect should fade out")
			}
			if !ecs.HasComponent[*components.ShapeComponent](em, id) {
				t.Error("Effect should have ShapeComponent")
			}
		})
	}

	if _, err := NewHitSpark(ecs.NewEntityManager(), 0, 0, 0); err == nil {
		t.Error("Expected error for zero duration")
	}
}

func TestNewCameraShake(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewCameraShake(em, 100, 4)
	if err != nil {
		t.Fatalf("NewCameraShake() error = %v", err)
	}

	shake, ok := ecs.GetComponent[*components.CameraShakeComponent](em, id)
	if !ok || shake.Magnitude != 4 {
		t.Errorf("Expected magnitude 4, got %+v", shake)
	}
	life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || life.MaxLifetime != 0.1 {
		t.Errorf("Expected lifetime 0.1s, got %+v", life)
	}
}

func TestNewStageClearBanner(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.BannerConfig{Text: "STAGE CLEAR", FadeMs: 300, HoldMs: 600, Repeat: 1}

	id, err := NewStageClearBanner(em, cfg)
	if err != nil {
		t.Fatalf("NewStageClearBanner() error = %v", err)
	}

	text, ok := ecs.GetComponent[*components.TextComponent](em, id)
	if !ok || text.Text != "STAGE CLEAR" || !text.Centered {
		t.Errorf("Unexpected banner text: %+v", text)
	}
	if text.Alpha != 0 {
		t.Error("Banner should start invisible and fade in")
	}

	tween, _ := ecs.GetComponent[*components.TweenComponent](em, id)
	// 两轮 ×（淡入 0.3 + 停留 0.6 + 淡出 0.3）
	if math.Abs(tween.TotalDuration()-2.4) > 1e-9 {
		t.Errorf("Expected total 2.4s, got %.3f", tween.TotalDuration())
	}
	if !tween.Yoyo || tween.Repeat != 1 || !tween.DestroyOnComplete {
		t.Errorf("Unexpected banner tween: %+v", tween)
	}
}

func TestHUDText(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewHUDText(em, 20, 48, "Targets: 0/3")
	if err != nil {
		t.Fatalf("NewHUDText() error = %v", err)
	}

	if !SetText(em, id, "Targets: 1/3") {
		t.Fatal("SetText should succeed")
	}
	text, _ := ecs.GetComponent[*components.TextComponent](em, id)
	if text.Text != "Targets: 1/3" {
		t.Errorf("Expected updated text, got %q", text.Text)
	}

	if SetText(em, ecs.EntityID(999), "x") {
		t.Error("SetText should fail for missing entity")
	}
}
