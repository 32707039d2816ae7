// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/embedded"
	"github.com/decker502/contralike/pkg/game"
	"github.com/decker502/contralike/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 内置关卡配置路径
const DefaultConfigPath = "data/stage.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Players 玩家数量（1 或 2）
	Players int
	// ConfigPath 外部关卡配置文件路径，为空则使用内置配置
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	stageConfig, err := loadStageConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}

	if cfg.Players < 1 || cfg.Players > 2 {
		return nil, fmt.Errorf("玩家数量必须为 1 或 2，当前为 %d", cfg.Players)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, stageConfig.Audio)
	audioManager.PreloadSounds(game.AllSounds)
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(scenes.SceneBoot, func(string) game.Scene {
		return scenes.NewBootScene(sceneManager)
	})
	sceneManager.Register(scenes.SceneStage, func(string) game.Scene {
		stage, err := scenes.NewStageScene(scenes.StageOptions{
			Config:       stageConfig,
			Players:      cfg.Players,
			AudioManager: audioManager,
		})
		if err != nil {
			log.Printf("[App] 关卡场景创建失败: %v", err)
			return nil
		}
		return stage
	})

	log.Printf("[App] Starting stage with %d player(s)", cfg.Players)
	if !sceneManager.Start(scenes.SceneBoot) {
		return nil, fmt.Errorf("无法启动场景: %s", scenes.SceneBoot)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// loadStageConfig 优先读取外部配置文件，否则使用内置配置
func loadStageConfig(path string) (*config.StageConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载关卡配置: %s", path)
		return config.LoadStageConfig(path)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载内置关卡配置: %s", DefaultConfigPath)
	return config.ParseStageConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 固定步长，逻辑时钟与渲染帧率无关
	deltaTime := 1.0 / float64(ebiten.DefaultTPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
