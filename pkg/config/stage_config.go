package config

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// StageConfig 关卡配置
//
// 描述单个关卡的全部可调参数：玩家手感、子弹、目标布局、反馈效果、按键映射和音效。
// 未在 YAML 中出现的字段保留 DefaultStageConfig 中的默认值。
//
// 配置文件位置: data/stage.yaml
type StageConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Targets     TargetConfig     `yaml:"targets"`
	Effects     EffectsConfig    `yaml:"effects"`
	Controls    ControlsConfig   `yaml:"controls"`
	Audio       AudioConfig      `yaml:"audio"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	// Speed 水平移动速度（像素/秒）
	Speed float64 `yaml:"speed"`

	// JumpVelocity 起跳瞬间赋予的竖直速度（负值向上）
	JumpVelocity float64 `yaml:"jumpVelocity"`

	// BulletSpeed 子弹水平速度（像素/秒）
	BulletSpeed float64 `yaml:"bulletSpeed"`

	// FireCooldownMs 两次开火的最小间隔（毫秒）
	FireCooldownMs float64 `yaml:"fireCooldownMs"`

	// MuzzleOffset 子弹生成点沿朝向相对玩家中心的偏移（像素）
	MuzzleOffset float64 `yaml:"muzzleOffset"`

	// Radius 玩家圆形半径（碰撞盒为 2R×2R）
	Radius float64 `yaml:"radius"`

	// Spawns 玩家出生点，按玩家编号顺序排列
	Spawns []Point `yaml:"spawns"`
}

// PhysicsConfig 物理参数
type PhysicsConfig struct {
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`
}

// ProjectileConfig 子弹参数
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// MaxLive 同时存活子弹上限，0 表示不限制
	MaxLive int `yaml:"maxLive"`
}

// TargetConfig 目标布局
type TargetConfig struct {
	// Health 每个目标的初始生命值
	Health int     `yaml:"health"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Positions 目标中心点坐标
	Positions []Point `yaml:"positions"`
}

// EffectsConfig 反馈效果参数（时长单位均为毫秒）
type EffectsConfig struct {
	MuzzleFlashMs  float64 `yaml:"muzzleFlashMs"`
	HitSparkMs     float64 `yaml:"hitSparkMs"`
	DestroyBurstMs float64 `yaml:"destroyBurstMs"`
	HitFlashMs     float64 `yaml:"hitFlashMs"`

	ShakeDurationMs float64 `yaml:"shakeDurationMs"`

	// ShakeMagnitude 镜头震动幅度（像素）
	ShakeMagnitude float64 `yaml:"shakeMagnitude"`

	Banner BannerConfig `yaml:"banner"`
}

// BannerConfig 过关横幅动画：淡入、停留、淡出，整体重复 Repeat 次
type BannerConfig struct {
	Text   string  `yaml:"text"`
	FadeMs float64 `yaml:"fadeMs"`
	HoldMs float64 `yaml:"holdMs"`
	Repeat int     `yaml:"repeat"`
}

// ControlsConfig 两名玩家的按键映射
type ControlsConfig struct {
	Player1 BindingConfig `yaml:"player1"`
	Player2 BindingConfig `yaml:"player2"`
}

// BindingConfig 按键映射，值为 ebiten 按键名（如 "A", "Space", "ArrowLeft", "Numpad0"）
type BindingConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Jump  []string `yaml:"jump"`
	Fire  []string `yaml:"fire"`
}

// AudioConfig 音效参数
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Point 二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultStageConfig 返回内置默认关卡配置
func DefaultStageConfig() *StageConfig {
	return &StageConfig{
		Player: PlayerConfig{
			Speed:          220,
			JumpVelocity:   -380,
			BulletSpeed:    600,
			FireCooldownMs: 200,
			MuzzleOffset:   18,
			Radius:         12,
			Spawns: []Point{
				{X: 100, Y: GameHeight - 50},
				{X: 160, Y: GameHeight - 50},
			},
		},
		Physics: PhysicsConfig{
			Gravity: DefaultGravity,
		},
		Projectiles: ProjectileConfig{
			Width:   10,
			Height:  4,
			MaxLive: 64,
		},
		Targets: TargetConfig{
			Health: 3,
			Width:  40,
			Height: 60,
			Positions: []Point{
				{X: 560, Y: GroundTopY - 30},
				{X: 720, Y: GroundTopY - 120},
				{X: 860, Y: GroundTopY - 30},
			},
		},
		Effects: EffectsConfig{
			MuzzleFlashMs:   80,
			HitSparkMs:      120,
			DestroyBurstMs:  250,
			HitFlashMs:      80,
			ShakeDurationMs: 100,
			ShakeMagnitude:  4,
			Banner: BannerConfig{
				Text:   "STAGE CLEAR",
				FadeMs: 300,
				HoldMs: 600,
				Repeat: 1,
			},
		},
		Controls: ControlsConfig{
			Player1: BindingConfig{
				Left:  []string{"A"},
				Right: []string{"D"},
				Up:    []string{"W"},
				Down:  []string{"S"},
				Jump:  []string{"Space"},
				Fire:  []string{"J"},
			},
			Player2: BindingConfig{
				Left:  []string{"ArrowLeft"},
				Right: []string{"ArrowRight"},
				Up:    []string{"ArrowUp"},
				Down:  []string{"ArrowDown"},
				Jump:  []string{"ArrowUp"},
				Fire:  []string{"Numpad0"},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// LoadStageConfig 加载关卡配置
//
// 从指定路径读取 YAML 格式的关卡配置文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/stage.yaml"）
//
// 返回:
//   - *StageConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadStageConfig(path string) (*StageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage config: %w", err)
	}
	return ParseStageConfig(data)
}

// ParseStageConfig 解析 YAML 数据为关卡配置
// 以默认配置为底，YAML 中给出的字段覆盖默认值（列表整体替换）
func ParseStageConfig(data []byte) (*StageConfig, error) {
	cfg := DefaultStageConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *StageConfig) Validate() error {
	p := c.Player
	if p.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %.1f", p.Speed)
	}
	if p.JumpVelocity >= 0 {
		return fmt.Errorf("player jumpVelocity must be negative (upward), got %.1f", p.JumpVelocity)
	}
	if p.BulletSpeed <= 0 {
		return fmt.Errorf("player bulletSpeed must be positive, got %.1f", p.BulletSpeed)
	}
	if p.FireCooldownMs <= 0 {
		return fmt.Errorf("player fireCooldownMs must be positive, got %.1f", p.FireCooldownMs)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("player radius must be positive, got %.1f", p.Radius)
	}
	if len(p.Spawns) == 0 {
		return fmt.Errorf("at least one player spawn is required")
	}

	if c.Physics.Gravity < 0 {
		return fmt.Errorf("gravity cannot be negative, got %.1f", c.Physics.Gravity)
	}

	if c.Projectiles.Width <= 0 || c.Projectiles.Height <= 0 {
		return fmt.Errorf("projectile size must be positive, got %.1fx%.1f", c.Projectiles.Width, c.Projectiles.Height)
	}
	if c.Projectiles.MaxLive < 0 {
		return fmt.Errorf("projectile maxLive cannot be negative, got %d", c.Projectiles.MaxLive)
	}

	t := c.Targets
	if t.Health <= 0 {
		return fmt.Errorf("target health must be positive, got %d", t.Health)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("target size must be positive, got %.1fx%.1f", t.Width, t.Height)
	}
	if len(t.Positions) == 0 {
		return fmt.Errorf("at least one target position is required")
	}

	if c.Effects.Banner.Repeat < 0 {
		return fmt.Errorf("banner repeat cannot be negative, got %d", c.Effects.Banner.Repeat)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0, 1], got %.2f", c.Audio.Volume)
	}

	for name, binding := range map[string]BindingConfig{
		"player1": c.Controls.Player1,
		"player2": c.Controls.Player2,
	} {
		if err := binding.validate(); err != nil {
			return fmt.Errorf("controls.%s: %w", name, err)
		}
	}

	return nil
}

// validate 检查所有按键名是否可被 ebiten 识别
func (b BindingConfig) validate() error {
	groups := [][]string{b.Left, b.Right, b.Up, b.Down, b.Jump, b.Fire}
	for _, names := range groups {
		if _, err := ParseKeys(names); err != nil {
			return err
		}
	}
	return nil
}

// ParseKeys 将按键名列表转换为 ebiten.Key 列表
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
