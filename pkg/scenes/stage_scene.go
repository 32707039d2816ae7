package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/entities"
	"github.com/decker502/contralike/pkg/game"
	"github.com/decker502/contralike/pkg/systems"
	"github.com/decker502/contralike/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// StageOptions 关卡场景的创建参数
type StageOptions struct {
	// Config 关卡配置，nil 时使用 DefaultStageConfig
	Config *config.StageConfig

	// Players 玩家数量（1 或 2）
	Players int

	// KeySource 按键状态来源，nil 时读取 ebiten 键盘
	KeySource utils.KeySource

	// AudioManager 音频管理器，nil 时静音
	AudioManager *game.AudioManager

	// ShakeSeed 镜头震动随机种子
	ShakeSeed uint64
}

// StageScene 关卡场景，每帧驱动完整的玩法更新
//
// 每个场景实例持有独立的实体管理器和会话状态。
type StageScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.StageConfig

	// 系统
	playerControlSystem *systems.PlayerControlSystem
	projectileSystem    *systems.ProjectileSystem
	physicsSystem       *systems.PhysicsSystem
	damageSystem        *systems.DamageSystem
	tweenSystem         *systems.TweenSystem
	flashEffectSystem   *systems.FlashEffectSystem
	lifetimeSystem      *systems.LifetimeSystem
	cameraSystem        *systems.CameraSystem
	renderSystem        *systems.RenderSystem

	players       []ecs.EntityID
	targets       []ecs.EntityID
	counterEntity ecs.EntityID
}

// NewStageScene 创建关卡场景：地面、标题、计数文字、玩家和目标
func NewStageScene(opts StageOptions) (*StageScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultStageConfig()
	}
	if opts.Players < 1 || opts.Players > 2 {
		return nil, fmt.Errorf("players must be 1 or 2, got %d", opts.Players)
	}
	if opts.Players > len(cfg.Player.Spawns) {
		return nil, fmt.Errorf("%d players requested but only %d spawn point(s) configured", opts.Players, len(cfg.Player.Spawns))
	}

	input, err := utils.NewInputManagerFromConfig(opts.KeySource, cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("failed to create input manager: %w", err)
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	gs.SetAudioManager(opts.AudioManager)

	projectiles := systems.NewProjectileSystem(em, cfg.Projectiles)

	s := &StageScene{
		entityManager:       em,
		gameState:           gs,
		config:              cfg,
		projectileSystem:    projectiles,
		playerControlSystem: systems.NewPlayerControlSystem(em, gs, input, projectiles, cfg.Effects),
		physicsSystem:       systems.NewPhysicsSystem(em, gs, cfg.Physics.Gravity, config.WorldBounds()),
		damageSystem:        systems.NewDamageSystem(em, gs, cfg.Effects),
		tweenSystem:         systems.NewTweenSystem(em),
		flashEffectSystem:   systems.NewFlashEffectSystem(em),
		lifetimeSystem:      systems.NewLifetimeSystem(em),
		cameraSystem:        systems.NewCameraSystem(em, gs, opts.ShakeSeed),
		renderSystem:        systems.NewRenderSystem(em, gs),
	}

	if err := s.spawnWorld(opts.Players); err != nil {
		return nil, err
	}

	log.Printf("[StageScene] Stage ready: %d player(s), %d target(s)", len(s.players), len(s.targets))
	return s, nil
}

// spawnWorld 创建关卡中的全部初始实体
func (s *StageScene) spawnWorld(players int) error {
	em := s.entityManager

	if _, err := entities.NewGround(em); err != nil {
		return fmt.Errorf("failed to create ground: %w", err)
	}

	for i := 0; i < players; i++ {
		spawn := s.config.Player.Spawns[i]
		id, err := entities.NewPlayer(em, i+1, spawn.X, spawn.Y, s.config.Player)
		if err != nil {
			return fmt.Errorf("failed to create player %d: %w", i+1, err)
		}
		s.players = append(s.players, id)
	}

	for _, p := range s.config.Targets.Positions {
		id, err := entities.NewTarget(em, p.X, p.Y, s.config.Targets)
		if err != nil {
			return fmt.Errorf("failed to create target at (%.0f, %.0f): %w", p.X, p.Y, err)
		}
		s.targets = append(s.targets, id)
	}
	s.gameState.SetTotalTargets(len(s.targets))

	if _, err := entities.NewHUDText(em, config.TitleX, config.TitleY, config.TitleText); err != nil {
		return fmt.Errorf("failed to create title: %w", err)
	}
	counter, err := entities.NewHUDText(em, config.CounterX, config.CounterY, s.gameState.CounterText())
	if err != nil {
		return fmt.Errorf("failed to create counter: %w", err)
	}
	s.counterEntity = counter
	s.damageSystem.SetCounterEntity(counter)

	return nil
}

// Update 推进一帧
//
// 顺序固定：
//  1. 采样会话时钟
//  2. 玩家控制（移动、跳跃、开火）
//  3. 越界子弹清理
//  4. 物理积分与重叠检测
//  5. 命中处理
//  6. 反馈效果
//  7. 清理本帧销毁的实体
//  8. 推进会话时钟
func (s *StageScene) Update(deltaTime float64) {
	now := s.gameState.Now

	s.playerControlSystem.Update(now)
	s.projectileSystem.SweepOffscreen(config.WorldBounds())
	s.physicsSystem.Update(deltaTime)
	s.damageSystem.Update()

	s.tweenSystem.Update(deltaTime)
	s.flashEffectSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
	s.gameState.Advance(deltaTime)
}

// Draw 绘制背景和全部实体
func (s *StageScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderSystem.Draw(screen)
}

// GameState 返回本关卡的会话状态
func (s *StageScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回本关卡的实体管理器
func (s *StageScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Players 返回玩家实体ID，按玩家编号排列
func (s *StageScene) Players() []ecs.EntityID {
	return s.players
}

// Targets 返回关卡开始时创建的目标实体ID
func (s *StageScene) Targets() []ecs.EntityID {
	return s.targets
}

// CounterEntity 返回计数文字实体ID
func (s *StageScene) CounterEntity() ecs.EntityID {
	return s.counterEntity
}

// LiveProjectiles 返回当前存活的子弹数量
func (s *StageScene) LiveProjectiles() int {
	return s.projectileSystem.LiveCount()
}
