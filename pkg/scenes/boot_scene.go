package scenes

import (
	"log"

	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// BootScene 启动场景
// 第一次更新时切换到关卡场景
type BootScene struct {
	sceneManager *game.SceneManager
	started      bool
}

// NewBootScene 创建启动场景
func NewBootScene(sm *game.SceneManager) *BootScene {
	return &BootScene{sceneManager: sm}
}

// Update 切换到关卡场景，只执行一次
func (s *BootScene) Update(deltaTime float64) {
	if s.started {
		return
	}
	s.started = true

	if !s.sceneManager.Start(SceneStage) {
		log.Printf("[BootScene] 错误: 无法进入关卡场景")
	}
}

// Draw 只填充背景色
func (s *BootScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
}
