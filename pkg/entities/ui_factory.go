package entities

import (
	"fmt"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/ecs"
)

// NewHUDText 创建左上角对齐的界面文字
func NewHUDText(em *ecs.EntityManager, x, y float64, text string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.TextComponent{
		Text:  text,
		Size:  config.HUDFontSize,
		Color: config.TextColor,
		Alpha: 1,
		Depth: DepthHUD,
	})
	return entityID, nil
}

// SetText 更新文字实体的内容，实体不存在或没有文字组件时返回 false
func SetText(em *ecs.EntityManager, entityID ecs.EntityID, text string) bool {
	textComp, ok := ecs.GetComponent[*components.TextComponent](em, entityID)
	if !ok {
		return false
	}
	textComp.Text = text
	return true
}
