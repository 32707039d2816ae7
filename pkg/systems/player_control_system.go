package systems

import (
	"errors"
	"log"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/entities"
	"github.com/decker502/contralike/pkg/game"
	"github.com/decker502/contralike/pkg/utils"
)

// PlayerControlSystem 玩家控制系统
//
// 每帧为每名玩家依次处理：着地判定、水平移动与朝向、跳跃、开火。
// 输入每帧重新读取，不做缓冲，也不做按下沿检测。
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         *utils.InputManager
	projectiles   *ProjectileSystem
	effects       config.EffectsConfig
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 会话状态（用于播放音效）
//   - input: 输入管理器
//   - projectiles: 子弹管理系统，开火时委托其生成子弹
//   - effects: 反馈效果配置（枪口火光时长）
func NewPlayerControlSystem(em *ecs.EntityManager, gs *game.GameState, input *utils.InputManager, projectiles *ProjectileSystem, effects config.EffectsConfig) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		projectiles:   projectiles,
		effects:       effects,
	}
}

// Update 处理所有玩家本帧的输入
// 参数 now 为会话时钟（毫秒），开火冷却与之比较
func (s *PlayerControlSystem) Update(now float64) {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.VelocityComponent, *components.BodyComponent](s.entityManager)

	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)

		index := utils.PlayerIndex(player.Index)

		// 1. 着地状态取自上一次物理步的底部阻挡
		player.OnGround = body.BlockedDown

		// 2. 水平移动，朝向只在有输入时更新
		axis := s.input.AxisX(index)
		vel.VX = float64(axis) * player.Speed
		if axis != 0 {
			player.Facing = float64(axis)
		}

		// 3. 跳跃：直接赋值竖直速度，只在着地时生效
		if player.OnGround && s.input.IsJumpDown(index) {
			vel.VY = player.JumpVelocity
		}

		// 4. 开火：按住即连发，间隔不小于冷却时间
		if s.input.IsFireDown(index) && now-player.LastFireAt >= player.FireCooldown {
			s.fire(id, player, now)
		}
	}
}

// fire 从玩家枪口发射一颗子弹
// 达到子弹上限时放弃本次开火，且不消耗冷却
func (s *PlayerControlSystem) fire(id ecs.EntityID, player *components.PlayerComponent, now float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	muzzleX := pos.X + player.MuzzleOffset*player.Facing
	muzzleY := pos.Y

	if _, err := s.projectiles.Spawn(player.Index, muzzleX, muzzleY, player.Facing, player.BulletSpeed); err != nil {
		if !errors.Is(err, ErrProjectileCap) {
			log.Printf("[PlayerControlSystem] Player %d failed to fire: %v", player.Index, err)
		}
		return
	}
	player.LastFireAt = now

	if _, err := entities.NewMuzzleFlash(s.entityManager, muzzleX, muzzleY, s.effects.MuzzleFlashMs); err != nil {
		log.Printf("[PlayerControlSystem] Warning: failed to create muzzle flash: %v", err)
	}
	playSound(s.gameState, game.SoundShoot)
}

// playSound 通过会话的音频管理器播放音效，未配置音频时静默跳过
func playSound(gs *game.GameState, soundID string) {
	if gs == nil {
		return
	}
	if am := gs.GetAudioManager(); am != nil {
		am.PlaySound(soundID)
	}
}
