package systems

import (
	"github.com/decker502/thermodial/pkg/components"
	"github.com/decker502/thermodial/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DialRenderSystem 温度旋钮渲染系统
//
// 绘制顺序：圆环 -> 圆球 -> 居中文字。
// 圆球直接画在当前位置，不做插值。
type DialRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewDialRenderSystem 创建旋钮渲染系统
func NewDialRenderSystem(em *ecs.EntityManager) *DialRenderSystem {
	return &DialRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有旋钮
func (s *DialRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith4[
		*components.DialComponent,
		*components.PositionComponent,
		*components.RingComponent,
		*components.BallIndicatorComponent,
	](s.entityManager)

	for _, id := range entities {
		s.DrawDial(screen, id)
	}
}

// DrawDial 渲染单个旋钮
func (s *DialRenderSystem) DrawDial(screen *ebiten.Image, id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	if ring, ok := ecs.GetComponent[*components.RingComponent](s.entityManager, id); ok && ring.Radius > 0 {
		vector.StrokeCircle(
			screen,
			float32(pos.X+ring.Center.X),
			float32(pos.Y+ring.Center.Y),
			float32(ring.Radius),
			float32(ring.StrokeWidth),
			ring.StrokeColor,
			true,
		)
	}

	if ball, ok := ecs.GetComponent[*components.BallIndicatorComponent](s.entityManager, id); ok && ball.Diameter > 0 {
		vector.FillCircle(
			screen,
			float32(pos.X+ball.Position.X),
			float32(pos.Y+ball.Position.Y),
			float32(ball.Diameter/2),
			ball.FillColor,
			true,
		)
	}

	label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
	if !ok || label.Font == nil || label.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X+pos.Width/2, pos.Y+pos.Height/2)
	op.ColorScale.ScaleWithColor(label.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, label.Text, label.Font, op)
}
