package systems

import (
	"math"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/game"
)

// PhysicsSystem 街机物理
//
// 每帧完成三件事：
//   - 动态刚体积分重力和速度
//   - 开启碰撞的刚体与静态刚体（地面）及世界边界做阻挡，并更新 BlockedDown
//   - 检测子弹与目标的重叠，每个碰撞对每帧产生一个命中事件
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	gravity       float64
	bounds        config.Rect
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 会话状态，命中事件写入其事件队列
//   - gravity: 重力加速度（像素/秒²）
//   - bounds: 世界边界
func NewPhysicsSystem(em *ecs.EntityManager, gs *game.GameState, gravity float64, bounds config.Rect) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		gameState:     gs,
		gravity:       gravity,
		bounds:        bounds,
	}
}

// Update 推进一个物理步
// 参数 deltaTime 为秒
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.integrate(deltaTime)
	ps.detectHits()
}

// integrate 积分所有动态刚体并处理阻挡
func (ps *PhysicsSystem) integrate(deltaTime float64) {
	bodies := ecs.GetEntitiesWith3[*components.BodyComponent, *components.PositionComponent, *components.VelocityComponent](ps.entityManager)
	statics := ps.staticBodies()

	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.BodyComponent](ps.entityManager, id)
		if body.Static {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id)

		if body.AllowGravity {
			vel.VY += ps.gravity * deltaTime
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		body.BlockedDown = false
		if !body.CollideWorld {
			continue
		}

		col, ok := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		for _, staticID := range statics {
			ps.resolveStatic(body, pos, vel, col, staticID)
		}
		ps.resolveWorldBounds(body, pos, vel, col)
	}
}

// staticBodies 返回所有带碰撞盒的静态刚体
func (ps *PhysicsSystem) staticBodies() []ecs.EntityID {
	candidates := ecs.GetEntitiesWith3[*components.BodyComponent, *components.PositionComponent, *components.CollisionComponent](ps.entityManager)
	statics := make([]ecs.EntityID, 0, len(candidates))
	for _, id := range candidates {
		body, _ := ecs.GetComponent[*components.BodyComponent](ps.entityManager, id)
		if body.Static {
			statics = append(statics, id)
		}
	}
	return statics
}

// resolveStatic 沿穿透较浅的轴把动态刚体推出静态刚体
func (ps *PhysicsSystem) resolveStatic(body *components.BodyComponent, pos *components.PositionComponent,
	vel *components.VelocityComponent, col *components.CollisionComponent, staticID ecs.EntityID) {

	staticPos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, staticID)
	if !ok {
		return
	}
	staticCol, ok := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, staticID)
	if !ok {
		return
	}

	left, top, right, bottom := col.Bounds(pos.X, pos.Y)
	sLeft, sTop, sRight, sBottom := staticCol.Bounds(staticPos.X, staticPos.Y)

	overlapX := math.Min(right, sRight) - math.Max(left, sLeft)
	overlapY := math.Min(bottom, sBottom) - math.Max(top, sTop)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	if overlapY <= overlapX {
		if (top+bottom)/2 < (sTop+sBottom)/2 {
			// 落在静态刚体上方
			pos.Y -= overlapY
			if vel.VY > 0 {
				vel.VY = 0
			}
			body.BlockedDown = true
		} else {
			pos.Y += overlapY
			if vel.VY < 0 {
				vel.VY = 0
			}
		}
		return
	}

	if (left+right)/2 < (sLeft+sRight)/2 {
		pos.X -= overlapX
	} else {
		pos.X += overlapX
	}
	vel.VX = 0
}

// resolveWorldBounds 把刚体限制在世界边界内，触及底边同样视为着地
func (ps *PhysicsSystem) resolveWorldBounds(body *components.BodyComponent, pos *components.PositionComponent,
	vel *components.VelocityComponent, col *components.CollisionComponent) {

	left, top, right, bottom := col.Bounds(pos.X, pos.Y)

	if left < ps.bounds.X {
		pos.X += ps.bounds.X - left
		vel.VX = 0
	} else if maxX := ps.bounds.X + ps.bounds.Width; right > maxX {
		pos.X -= right - maxX
		vel.VX = 0
	}

	if top < ps.bounds.Y {
		pos.Y += ps.bounds.Y - top
		if vel.VY < 0 {
			vel.VY = 0
		}
	} else if maxY := ps.bounds.Y + ps.bounds.Height; bottom >= maxY {
		pos.Y -= bottom - maxY
		if vel.VY > 0 {
			vel.VY = 0
		}
		body.BlockedDown = true
	}
}

// detectHits 检测子弹与目标的重叠，生成命中事件
// 嵌套遍历中每个（子弹，目标）对最多出现一次，事件天然按对去重
func (ps *PhysicsSystem) detectHits() {
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](ps.entityManager)
	if len(projectiles) == 0 {
		return
	}
	targets := ecs.GetEntitiesWith3[*components.TargetComponent, *components.PositionComponent, *components.CollisionComponent](ps.entityManager)

	for _, projectileID := range projectiles {
		projectilePos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, projectileID)
		projectileCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, projectileID)

		for _, targetID := range targets {
			targetPos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, targetID)
			targetCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, targetID)

			if checkAABBCollision(projectilePos, projectileCol, targetPos, targetCol) {
				ps.gameState.PushHitEvent(components.HitEvent{
					Projectile: projectileID,
					Target:     targetID,
				})
			}
		}
	}
}

// checkAABBCollision 检查两个实体的AABB（轴对齐边界框）是否重叠，边界相接也算重叠
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// 任一轴上没有重叠即没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}
