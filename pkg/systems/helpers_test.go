package systems

import (
	"testing"

	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/game"
	"github.com/decker502/contralike/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeySource 测试用按键源，map 中为 true 的键视为按下
type fakeKeySource map[ebiten.Key]bool

func (f fakeKeySource) IsKeyPressed(key ebiten.Key) bool {
	return f[key]
}

// press 把按键状态替换为仅按下 keys
func (f fakeKeySource) press(keys ...ebiten.Key) {
	for k := range f {
		delete(f, k)
	}
	for _, k := range keys {
		f[k] = true
	}
}

// testWorld 测试用的最小关卡：实体管理器、会话状态和玩法系统
type testWorld struct {
	em          *ecs.EntityManager
	gs          *game.GameState
	cfg         *config.StageConfig
	keys        fakeKeySource
	projectiles *ProjectileSystem
	control     *PlayerControlSystem
	physics     *PhysicsSystem
	damage      *DamageSystem
}

// newTestWorld 使用默认配置创建测试关卡，cfg 为 nil 时使用 DefaultStageConfig
func newTestWorld(t *testing.T, cfg *config.StageConfig) *testWorld {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultStageConfig()
	}

	keys := fakeKeySource{}
	input, err := utils.NewInputManagerFromConfig(keys, cfg.Controls)
	if err != nil {
		t.Fatalf("NewInputManagerFromConfig() error = %v", err)
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	projectiles := NewProjectileSystem(em, cfg.Projectiles)

	return &testWorld{
		em:          em,
		gs:          gs,
		cfg:         cfg,
		keys:        keys,
		projectiles: projectiles,
		control:     NewPlayerControlSystem(em, gs, input, projectiles, cfg.Effects),
		physics:     NewPhysicsSystem(em, gs, cfg.Physics.Gravity, config.WorldBounds()),
		damage:      NewDamageSystem(em, gs, cfg.Effects),
	}
}
