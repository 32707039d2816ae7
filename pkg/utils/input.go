// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/decker502/contralike/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerIndex 逻辑玩家编号
type PlayerIndex int

const (
	// Player1 玩家一
	Player1 PlayerIndex = 1
	// Player2 玩家二
	Player2 PlayerIndex = 2
)

// KeySource 按键状态来源
// 默认实现读取 ebiten 键盘状态，测试中可注入假实现
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeySource 从 ebiten 读取实时键盘状态
type EbitenKeySource struct{}

// IsKeyPressed 返回按键当前是否按下
func (EbitenKeySource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyBindings 单个玩家的按键映射，每个动作可绑定多个按键，任意一个按下即视为按下
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Jump  []ebiten.Key
	Fire  []ebiten.Key
}

// NewKeyBindings 将配置中的按键名转换为按键映射
func NewKeyBindings(cfg config.BindingConfig) (KeyBindings, error) {
	var b KeyBindings
	groups := []struct {
		name  string
		names []string
		dst   *[]ebiten.Key
	}{
		{"left", cfg.Left, &b.Left},
		{"right", cfg.Right, &b.Right},
		{"up", cfg.Up, &b.Up},
		{"down", cfg.Down, &b.Down},
		{"jump", cfg.Jump, &b.Jump},
		{"fire", cfg.Fire, &b.Fire},
	}
	for _, g := range groups {
		keys, err := config.ParseKeys(g.names)
		if err != nil {
			return KeyBindings{}, fmt.Errorf("%s: %w", g.name, err)
		}
		*g.dst = keys
	}
	return b, nil
}

// InputManager 将键盘状态映射为两名玩家的移动、跳跃和开火意图
//
// 每次查询都直接读取当前按键状态：不缓冲、不做边沿检测。
// 两名玩家的映射互不共享按键状态；未知玩家编号或未绑定的动作视为"未按下"。
type InputManager struct {
	source   KeySource
	bindings map[PlayerIndex]KeyBindings
}

// NewInputManager 创建输入管理器
// source 为 nil 时使用 EbitenKeySource
func NewInputManager(source KeySource, p1, p2 KeyBindings) *InputManager {
	if source == nil {
		source = EbitenKeySource{}
	}
	return &InputManager{
		source: source,
		bindings: map[PlayerIndex]KeyBindings{
			Player1: p1,
			Player2: p2,
		},
	}
}

// NewInputManagerFromConfig 根据关卡配置中的按键映射创建输入管理器
func NewInputManagerFromConfig(source KeySource, controls config.ControlsConfig) (*InputManager, error) {
	p1, err := NewKeyBindings(controls.Player1)
	if err != nil {
		return nil, fmt.Errorf("player1 bindings: %w", err)
	}
	p2, err := NewKeyBindings(controls.Player2)
	if err != nil {
		return nil, fmt.Errorf("player2 bindings: %w", err)
	}
	return NewInputManager(source, p1, p2), nil
}

// AxisX 返回水平输入：-1 向左，1 向右，0 无输入
// 左右同时按下互相抵消为 0
func (im *InputManager) AxisX(player PlayerIndex) int {
	k, ok := im.bindings[player]
	if !ok {
		return 0
	}
	x := 0
	if im.anyPressed(k.Left) {
		x--
	}
	if im.anyPressed(k.Right) {
		x++
	}
	return x
}

// IsJumpDown 返回跳跃键是否按下
// 跳跃键或上方向键任一按下都算跳跃
func (im *InputManager) IsJumpDown(player PlayerIndex) bool {
	k, ok := im.bindings[player]
	if !ok {
		return false
	}
	return im.anyPressed(k.Jump) || im.anyPressed(k.Up)
}

// IsFireDown 返回开火键是否按下
func (im *InputManager) IsFireDown(player PlayerIndex) bool {
	k, ok := im.bindings[player]
	if !ok {
		return false
	}
	return im.anyPressed(k.Fire)
}

func (im *InputManager) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if im.source.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
