package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按场景键创建场景，避免 game 包与 scenes 包循环依赖
type SceneFactory func(key string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentKey   string
	factories    map[string]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Register and Start to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册场景键对应的工厂函数
func (sm *SceneManager) Register(key string, factory SceneFactory) {
	sm.factories[key] = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// Start 通过工厂创建并切换到指定场景
// 返回是否切换成功
func (sm *SceneManager) Start(key string) bool {
	log.Printf("[SceneManager] 启动场景: %s", key)

	factory, ok := sm.factories[key]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", key)
		return false
	}

	newScene := factory(key)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", key)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentKey = key
	return true
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentKey 返回通过 Start 启动的当前场景键
func (sm *SceneManager) CurrentKey() string {
	return sm.currentKey
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
