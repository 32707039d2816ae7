package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultStageConfigIsValid(t *testing.T) {
	cfg := DefaultStageConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 默认手感参数
	if cfg.Player.Speed != 220 {
		t.Errorf("Expected speed 220, got %.1f", cfg.Player.Speed)
	}
	if cfg.Player.JumpVelocity != -380 {
		t.Errorf("Expected jumpVelocity -380, got %.1f", cfg.Player.JumpVelocity)
	}
	if cfg.Player.FireCooldownMs != 200 {
		t.Errorf("Expected fireCooldownMs 200, got %.1f", cfg.Player.FireCooldownMs)
	}
	if cfg.Targets.Health != 3 {
		t.Errorf("Expected target health 3, got %d", cfg.Targets.Health)
	}
}

func TestParseStageConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
player:
  speed: 300
targets:
  positions:
    - {x: 100, y: 200}
controls:
  player1:
    fire: [K, Enter]
`)

	cfg, err := ParseStageConfig(data)
	if err != nil {
		t.Fatalf("ParseStageConfig() error = %v", err)
	}

	if cfg.Player.Speed != 300 {
		t.Errorf("Expected overridden speed 300, got %.1f", cfg.Player.Speed)
	}
	// 未出现的字段保留默认值
	if cfg.Player.JumpVelocity != -380 {
		t.Errorf("Expected default jumpVelocity -380, got %.1f", cfg.Player.JumpVelocity)
	}
	// 列表整体替换
	if len(cfg.Targets.Positions) != 1 || cfg.Targets.Positions[0].X != 100 {
		t.Errorf("Expected single target at x=100, got %+v", cfg.Targets.Positions)
	}

	keys, err := ParseKeys(cfg.Controls.Player1.Fire)
	if err != nil {
		t.Fatalf("ParseKeys() error = %v", err)
	}
	if len(keys) != 2 || keys[0] != ebiten.KeyK || keys[1] != ebiten.KeyEnter {
		t.Errorf("Expected [K Enter], got %v", keys)
	}
}

func TestStageConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StageConfig)
		wantErr string
	}{
		{
			name:    "速度为零",
			mutate:  func(c *StageConfig) { c.Player.Speed = 0 },
			wantErr: "speed",
		},
		{
			name:    "起跳速度向下",
			mutate:  func(c *StageConfig) { c.Player.JumpVelocity = 10 },
			wantErr: "jumpVelocity",
		},
		{
			name:    "冷却为零",
			mutate:  func(c *StageConfig) { c.Player.FireCooldownMs = 0 },
			wantErr: "fireCooldownMs",
		},
		{
			name:    "没有出生点",
			mutate:  func(c *StageConfig) { c.Player.Spawns = nil },
			wantErr: "spawn",
		},
		{
			name:    "没有目标",
			mutate:  func(c *StageConfig) { c.Targets.Positions = nil },
			wantErr: "target position",
		},
		{
			name:    "目标生命值为零",
			mutate:  func(c *StageConfig) { c.Targets.Health = 0 },
			wantErr: "target health",
		},
		{
			name:    "子弹上限为负",
			mutate:  func(c *StageConfig) { c.Projectiles.MaxLive = -1 },
			wantErr: "maxLive",
		},
		{
			name:    "音量越界",
			mutate:  func(c *StageConfig) { c.Audio.Volume = 1.5 },
			wantErr: "volume",
		},
		{
			name:    "未知按键名",
			mutate:  func(c *StageConfig) { c.Controls.Player2.Fire = []string{"NoSuchKey"} },
			wantErr: "controls.player2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStageConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Expected validation error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadStageConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 1200\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadStageConfig(path)
	if err != nil {
		t.Fatalf("LoadStageConfig() error = %v", err)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("Expected gravity 1200, got %.1f", cfg.Physics.Gravity)
	}

	if _, err := LoadStageConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map]"), 0o644); err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}
	if _, err := LoadStageConfig(bad); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}

func TestTargetTierColor(t *testing.T) {
	c3, ok3 := TargetTierColor(3)
	c2, ok2 := TargetTierColor(2)
	c1, ok1 := TargetTierColor(1)
	if !ok3 || !ok2 || !ok1 {
		t.Fatal("Expected colors for hp 1..3")
	}
	if c3 == c2 || c2 == c1 || c1 == c3 {
		t.Error("Each health tier should have a distinct color")
	}
	if _, ok := TargetTierColor(0); ok {
		t.Error("Destroyed targets should have no tier color")
	}
	if c, _ := TargetTierColor(5); c != c3 {
		t.Error("Health above 3 should use the full-health color")
	}
}

func TestRectExpandContains(t *testing.T) {
	bounds := WorldBounds().Expand(OffscreenMargin)

	tests := []struct {
		x, y float64
		want bool
	}{
		{-20, -20, true},
		{GameWidth + 20, GameHeight + 20, true},
		{-20.5, 100, false},
		{100, GameHeight + 21, false},
		{GameWidth / 2, GameHeight / 2, true},
	}
	for _, tt := range tests {
		if got := bounds.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%.1f, %.1f) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestShippedStageConfig 内置 data/stage.yaml 必须可解析，且与默认配置一致
func TestShippedStageConfig(t *testing.T) {
	cfg, err := LoadStageConfig(filepath.Join("..", "..", "data", "stage.yaml"))
	if err != nil {
		t.Fatalf("LoadStageConfig() error = %v", err)
	}

	def := DefaultStageConfig()
	if len(cfg.Targets.Positions) != len(def.Targets.Positions) {
		t.Fatalf("Expected %d targets, got %d", len(def.Targets.Positions), len(cfg.Targets.Positions))
	}
	for i, p := range cfg.Targets.Positions {
		if p != def.Targets.Positions[i] {
			t.Errorf("target %d: got %+v, want %+v", i, p, def.Targets.Positions[i])
		}
	}
	for i, p := range cfg.Player.Spawns {
		if p != def.Player.Spawns[i] {
			t.Errorf("spawn %d: got %+v, want %+v", i, p, def.Player.Spawns[i])
		}
	}
	if cfg.Projectiles.MaxLive != def.Projectiles.MaxLive {
		t.Errorf("MaxLive = %d, want %d", cfg.Projectiles.MaxLive, def.Projectiles.MaxLive)
	}
	if cfg.Effects.Banner != def.Effects.Banner {
		t.Errorf("Banner = %+v, want %+v", cfg.Effects.Banner, def.Effects.Banner)
	}
}
