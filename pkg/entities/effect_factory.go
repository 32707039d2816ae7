package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

// 绘制层级
const (
	DepthGround     = 0
	DepthTarget     = 1
	DepthPlayer     = 2
	DepthProjectile = 3
	DepthEffect     = 4
	DepthHUD        = 10
	DepthBanner     = 20
)

// 反馈效果都是"发射后不管"的：创建一个带补间动画的可视实体，动画结束后自行销毁。
// 它们不读取也不修改任何玩法状态。

// newFadingCircle 创建一个淡出并放大的圆形效果
func newFadingCircle(em *ecs.EntityManager, x, y, radius float64, c color.RGBA, scaleTo, durationMs float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if durationMs <= 0 {
		return 0, fmt.Errorf("effect duration must be positive, got %.1f", durationMs)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Radius: radius,
		Color:  c,
		Alpha:  1,
		Scale:  1,
		Depth:  DepthEffect,
	})
	ecs.AddComponent(em, entityID, &components.TweenComponent{
		AlphaFrom:         1,
		AlphaTo:           0,
		ScaleFrom:         1,
		ScaleTo:           scaleTo,
		Duration:          durationMs / 1000,
		Easing:            "easeOut",
		DestroyOnComplete: true,
	})

	return entityID, nil
}

// NewMuzzleFlash 在枪口位置创建火光
func NewMuzzleFlash(em *ecs.EntityManager, x, y, durationMs float64) (ecs.EntityID, error) {
	return newFadingCircle(em, x, y, 6, config.MuzzleFlashColor, 1.8, durationMs)
}

// NewHitSpark 在命中位置创建火花
func NewHitSpark(em *ecs.EntityManager, x, y, durationMs float64) (ecs.EntityID, error) {
	return newFadingCircle(em, x, y, 5, config.HitSparkColor, 2.5, durationMs)
}

// NewDestroyBurst 在目标最后位置创建摧毁爆裂效果
func NewDestroyBurst(em *ecs.EntityManager, x, y, durationMs float64) (ecs.EntityID, error) {
	return newFadingCircle(em, x, y, 24, config.DestroyBurstColor, 2.2, durationMs)
}

// NewCameraShake 创建一次镜头震动
// 震动实体由 LifetimeSystem 在持续时间结束后销毁
//
// 参数:
//   - durationMs: 震动持续时间（毫秒）
//   - magnitude: 最大偏移幅度（像素）
func NewCameraShake(em *ecs.EntityManager, durationMs, magnitude float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if durationMs <= 0 {
		return 0, fmt.Errorf("shake duration must be positive, got %.1f", durationMs)
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.CameraShakeComponent{Magnitude: magnitude})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: durationMs / 1000})

	return entityID, nil
}

// NewStageClearBanner 创建过关横幅
// 横幅居中显示：淡入、停留、淡出为一轮，额外重复 cfg.Repeat 轮后自行销毁
func NewStageClearBanner(em *ecs.EntityManager, cfg config.BannerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.FadeMs <= 0 {
		return 0, fmt.Errorf("banner fade duration must be positive, got %.1f", cfg.FadeMs)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: config.GameWidth / 2,
		Y: config.GameHeight / 2,
	})
	ecs.AddComponent(em, entityID, &components.TextComponent{
		Text:     cfg.Text,
		Size:     config.BannerFontSize,
		Color:    config.BannerColor,
		Alpha:    0,
		Centered: true,
		Depth:    DepthBanner,
	})
	ecs.AddComponent(em, entityID, &components.TweenComponent{
		AlphaFrom:         0,
		AlphaTo:           1,
		ScaleFrom:         1,
		ScaleTo:           1,
		Duration:          cfg.FadeMs / 1000,
		Hold:              cfg.HoldMs / 1000,
		Yoyo:              true,
		Repeat:            cfg.Repeat,
		Easing:            "easeInOut",
		DestroyOnComplete: true,
	})

	return entityID, nil
}
