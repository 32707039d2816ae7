package systems

import (
	"math/rand/v2"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/game"
)

// CameraSystem 计算镜头震动偏移
//
// 所有存活的震动中取幅度最大者，幅度随剩余时间线性衰减，
// 结果写入 GameState.ShakeOffsetX/Y，由 RenderSystem 应用到世界图元。
// 没有震动时偏移归零。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand
}

// NewCameraSystem 创建镜头系统
// seed 决定震动抖动序列，相同种子产生相同偏移
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState, seed uint64) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Update 更新镜头偏移
func (cs *CameraSystem) Update(dt float64) {
	magnitude := cs.CurrentMagnitude()
	if magnitude <= 0 {
		cs.gameState.ShakeOffsetX = 0
		cs.gameState.ShakeOffsetY = 0
		return
	}

	cs.gameState.ShakeOffsetX = (cs.rng.Float64()*2 - 1) * magnitude
	cs.gameState.ShakeOffsetY = (cs.rng.Float64()*2 - 1) * magnitude
}

// CurrentMagnitude 返回当前生效的震动幅度（像素）
func (cs *CameraSystem) CurrentMagnitude() float64 {
	ids := ecs.GetEntitiesWith2[*components.CameraShakeComponent, *components.LifetimeComponent](cs.entityManager)

	strongest := 0.0
	for _, id := range ids {
		shake, _ := ecs.GetComponent[*components.CameraShakeComponent](cs.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](cs.entityManager, id)
		if lifetime.MaxLifetime <= 0 {
			continue
		}

		remaining := 1 - lifetime.CurrentLifetime/lifetime.MaxLifetime
		if remaining <= 0 {
			continue
		}
		if m := shake.Magnitude * remaining; m > strongest {
			strongest = m
		}
	}
	return strongest
}
