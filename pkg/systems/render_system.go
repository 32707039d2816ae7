package systems

import (
	"bytes"
	"image/color"
	"log"
	"sort"

	"github.com/decker502/contralike/pkg/components"
	"github.com/decker502/contralike/pkg/ecs"
	"github.com/decker502/contralike/pkg/game"
	"github.com/decker502/contralike/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// RenderSystem 绘制关卡中的所有可见实体
//
// 渲染顺序：
//   - 世界图元（ShapeComponent）按 Depth 从低到高绘制，叠加镜头震动偏移
//   - 文字（TextComponent）在图元之后绘制，不受震动影响
//
// 目标受击闪白时，图元颜色按 FlashEffectComponent.Intensity 向白色混合。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace // 字号 -> 字体
}

// NewRenderSystem 创建渲染系统
// 字体加载失败时退回 ebitenutil 调试文字
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[RenderSystem] Warning: failed to load font, falling back to debug text: %v", err)
	}

	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		fontSource:    source,
		faces:         make(map[float64]*text.GoTextFace),
	}
}

// Draw 绘制所有图元与文字
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	var offsetX, offsetY float64
	if s.gameState != nil {
		offsetX, offsetY = s.gameState.ShakeOffsetX, s.gameState.ShakeOffsetY
	}

	for _, id := range s.shapesByDepth() {
		s.drawShape(screen, id, offsetX, offsetY)
	}
	for _, id := range s.textsByDepth() {
		s.drawText(screen, id)
	}
}

// shapesByDepth 返回按绘制顺序排列的图元实体
func (s *RenderSystem) shapesByDepth() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ShapeComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, ids[i])
		b, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, ids[j])
		return a.Depth < b.Depth
	})
	return ids
}

// textsByDepth 返回按绘制顺序排列的文字实体
func (s *RenderSystem) textsByDepth() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.TextComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, ids[i])
		b, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, ids[j])
		return a.Depth < b.Depth
	})
	return ids
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, id ecs.EntityID, offsetX, offsetY float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)

	flash := 0.0
	if f, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok && f.IsActive {
		flash = f.Intensity
	}

	clr := shapeColor(shape.Color, shape.Alpha, flash)
	if clr.A == 0 {
		return
	}

	x := pos.X + offsetX
	y := pos.Y + offsetY
	switch shape.Kind {
	case components.ShapeCircle:
		r := shape.Radius * shape.Scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)
	default:
		w := shape.Width * shape.Scale
		h := shape.Height * shape.Scale
		vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), clr, true)
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
	if txt.Alpha <= 0 || txt.Text == "" {
		return
	}

	face := s.face(txt.Size)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, txt.Text, int(pos.X), int(pos.Y))
		return
	}

	x, y := pos.X, pos.Y
	if txt.Centered {
		w, h := text.Measure(txt.Text, face, 0)
		x -= w / 2
		y -= h / 2

		// 居中的大字加一圈黑色描边
		strokeOffsets := []struct{ dx, dy float64 }{
			{-2, -2}, {0, -2}, {2, -2},
			{-2, 0}, {2, 0},
			{-2, 2}, {0, 2}, {2, 2},
		}
		for _, o := range strokeOffsets {
			op := &text.DrawOptions{}
			op.GeoM.Translate(x+o.dx, y+o.dy)
			op.ColorScale.ScaleWithColor(color.Black)
			op.ColorScale.ScaleAlpha(float32(txt.Alpha))
			text.Draw(screen, txt.Text, face, op)
		}
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(txt.Color)
	op.ColorScale.ScaleAlpha(float32(txt.Alpha))
	text.Draw(screen, txt.Text, face, op)
}

// face 返回指定字号的字体，按字号缓存
func (s *RenderSystem) face(size float64) *text.GoTextFace {
	if s.fontSource == nil {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	s.faces[size] = f
	return f
}

// shapeColor 计算图元最终颜色
// base 视为非预乘颜色；flash 为闪白强度，alpha 与 base.A 相乘
func shapeColor(base color.RGBA, alpha, flash float64) color.NRGBA {
	flash = utils.Clamp01(flash)
	mix := func(c uint8) uint8 {
		return uint8(utils.Lerp(float64(c), 255, flash) + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R),
		G: mix(base.G),
		B: mix(base.B),
		A: uint8(float64(base.A)*utils.Clamp01(alpha) + 0.5),
	}
}
