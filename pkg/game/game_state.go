package game

import (
	"fmt"
	"log"

	"github.com/decker502/contralike/pkg/components"
)

// GameState 存储单个关卡会话的全部可变状态
//
// 每个会话（每次进入关卡、每个测试）持有自己的实例，互不影响。
// 只在单线程的帧更新中访问，不需要加锁。
type GameState struct {
	// Now 会话时钟（毫秒），每帧开始时推进一次
	// 开火冷却等所有计时比较都使用这一时钟
	Now float64

	// TotalTargets 关卡目标总数，生成目标时设置一次
	TotalTargets int

	// DestroyedTargets 已摧毁目标数，每摧毁一个目标恰好加 1
	// 始终满足 0 ≤ DestroyedTargets ≤ TotalTargets
	DestroyedTargets int

	// StageCleared 过关条件是否已经触发过
	StageCleared bool

	// ShakeOffsetX, ShakeOffsetY 本帧镜头震动偏移（像素），由 CameraSystem 计算
	ShakeOffsetX float64
	ShakeOffsetY float64

	// hitEvents 本帧待处理的命中事件
	hitEvents []components.HitEvent

	audioManager *AudioManager
}

// NewGameState 创建新的会话状态
func NewGameState() *GameState {
	return &GameState{
		hitEvents: make([]components.HitEvent, 0, 8),
	}
}

// Advance 推进会话时钟
// 参数 deltaTime 为秒，返回推进后的时间戳（毫秒）
func (gs *GameState) Advance(deltaTime float64) float64 {
	if deltaTime > 0 {
		gs.Now += deltaTime * 1000
	}
	return gs.Now
}

// SetTotalTargets 设置关卡目标总数并重置进度
func (gs *GameState) SetTotalTargets(n int) {
	if n < 0 {
		n = 0
	}
	gs.TotalTargets = n
	gs.DestroyedTargets = 0
	gs.StageCleared = false
}

// RecordTargetDestroyed 记录一个目标被摧毁
//
// 返回 true 表示本次摧毁首次满足过关条件（DestroyedTargets == TotalTargets > 0），
// 调用方据此触发一次性的过关表现；之后的调用永远返回 false。
func (gs *GameState) RecordTargetDestroyed() bool {
	if gs.DestroyedTargets >= gs.TotalTargets {
		log.Printf("[GameState] Warning: destroyed count already at total (%d/%d), ignoring", gs.DestroyedTargets, gs.TotalTargets)
		return false
	}
	gs.DestroyedTargets++

	if !gs.StageCleared && gs.TotalTargets > 0 && gs.DestroyedTargets == gs.TotalTargets {
		gs.StageCleared = true
		return true
	}
	return false
}

// CounterText 返回界面计数文字
func (gs *GameState) CounterText() string {
	return fmt.Sprintf("Targets: %d/%d", gs.DestroyedTargets, gs.TotalTargets)
}

// PushHitEvent 加入一个命中事件
func (gs *GameState) PushHitEvent(e components.HitEvent) {
	gs.hitEvents = append(gs.hitEvents, e)
}

// DrainHitEvents 取出本帧全部命中事件并清空队列
func (gs *GameState) DrainHitEvents() []components.HitEvent {
	if len(gs.hitEvents) == 0 {
		return nil
	}
	events := make([]components.HitEvent, len(gs.hitEvents))
	copy(events, gs.hitEvents)
	gs.hitEvents = gs.hitEvents[:0]
	return events
}

// PendingHitEvents 返回尚未处理的命中事件数量
func (gs *GameState) PendingHitEvents() int {
	return len(gs.hitEvents)
}

// SetAudioManager 设置音频管理器（可为 nil，表示静音）
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未设置时返回 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
