package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/decker502/thermodial/pkg/components"
	"github.com/decker502/thermodial/pkg/ecs"
	"github.com/decker502/thermodial/pkg/utils"
)

var (
	// ErrNotDial 实体缺少旋钮所需的组件
	ErrNotDial = errors.New("entity is not a dial")
	// ErrNotDragging 非拖拽状态下收到移动事件
	ErrNotDragging = errors.New("dial is not being dragged")
)

// DialPointerInput 旋钮系统的指针输入接口
// 用于依赖注入，测试时可 mock
type DialPointerInput interface {
	Poll() utils.PointerState
}

// ValueChangedFunc 拖拽中角度变化时的观察者
type ValueChangedFunc func(id ecs.EntityID, angle, value int)

// DialSystem 温度旋钮交互系统
//
// 职责：
//   - 命中测试圆球，决定是否开始拖拽
//   - 拖拽中把指针位置换算成角度，更新显示值和圆球位置
//   - 通知观察者数值变化
//   - 外框变化时重新计算圆环几何
//
// 所有方法必须在 ebiten 的 Update 协程中调用，系统内部没有加锁。
type DialSystem struct {
	entityManager *ecs.EntityManager
	input         DialPointerInput

	// activeEntity 正在拖拽的旋钮，0 表示没有
	activeEntity ecs.EntityID
	lastX, lastY int
	// touchDrag 当前拖拽是否由触摸发起
	touchDrag bool

	observers []ValueChangedFunc
}

// NewDialSystem 创建旋钮系统，使用 ebiten 鼠标/触摸输入
func NewDialSystem(em *ecs.EntityManager) *DialSystem {
	return NewDialSystemWithInput(em, utils.NewPointerTracker())
}

// NewDialSystemWithInput 创建带自定义指针输入的旋钮系统（用于测试）
func NewDialSystemWithInput(em *ecs.EntityManager, input DialPointerInput) *DialSystem {
	return &DialSystem{
		entityManager: em,
		input:         input,
	}
}

// OnValueChanged 注册数值变化观察者
func (s *DialSystem) OnValueChanged(fn ValueChangedFunc) {
	s.observers = append(s.observers, fn)
}

// ActiveEntity 返回正在拖拽的旋钮实体，没有时返回 0
func (s *DialSystem) ActiveEntity() ecs.EntityID {
	return s.activeEntity
}

// Update 每帧读取指针状态并驱动按下/移动/抬起
func (s *DialSystem) Update(deltaTime float64) {
	ptr := s.input.Poll()

	if s.activeEntity != 0 {
		id := s.activeEntity
		if !ptr.Pressed {
			s.activeEntity = 0
			logger.Sugar.Debugf("[DialSystem] %s released entity %d", pointerSource(s.touchDrag), id)
			s.PointerUp(id)
			return
		}
		// 指针未移动时不产生移动事件
		if ptr.X == s.lastX && ptr.Y == s.lastY {
			return
		}
		s.lastX, s.lastY = ptr.X, ptr.Y
		if err := s.PointerMove(id, s.toLocal(id, ptr)); err != nil {
			logger.Sugar.Debugf("[DialSystem] move ignored for entity %d: %v", id, err)
		}
		return
	}

	if !ptr.JustPressed {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.DialComponent, *components.PositionComponent](s.entityManager) {
		if s.PointerDown(id, s.toLocal(id, ptr)) {
			s.activeEntity = id
			s.lastX, s.lastY = ptr.X, ptr.Y
			s.touchDrag = ptr.IsTouch
			logger.Sugar.Debugf("[DialSystem] %s grabbed entity %d at (%d, %d)", pointerSource(ptr.IsTouch), id, ptr.X, ptr.Y)
			return
		}
	}
}

// pointerSource 返回日志中使用的指针来源名称
func pointerSource(isTouch bool) string {
	if isTouch {
		return "touch"
	}
	return "mouse"
}

// toLocal 把屏幕坐标转换为旋钮局部坐标
func (s *DialSystem) toLocal(id ecs.EntityID, ptr utils.PointerState) utils.Point {
	p := utils.Point{X: float64(ptr.X), Y: float64(ptr.Y)}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		p.X -= pos.X
		p.Y -= pos.Y
	}
	return p
}

// PointerDown 处理指针按下
//
// 点落在圆球外接矩形内（含边界）时进入拖拽状态并返回 true，
// 否则保持空闲并返回 false。
func (s *DialSystem) PointerDown(id ecs.EntityID, p utils.Point) bool {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return false
	}
	ball, ok := ecs.GetComponent[*components.BallIndicatorComponent](s.entityManager, id)
	if !ok {
		return false
	}

	if !ball.Frame().Contains(p) {
		logger.Sugar.Debugf("[DialSystem] pointer down at (%.0f, %.0f) missed ball of entity %d", p.X, p.Y, id)
		return false
	}

	dial.State = components.DialDragging
	logger.Sugar.Debugf("[DialSystem] entity %d start dragging at angle %d", id, dial.Angle)
	return true
}

// PointerMove 处理拖拽中的指针移动
//
// 计算指针相对圆心的角度（向下取整）写入 Angle，更新圆球位置并通知观察者。
// 指针与圆心重合时返回 ErrInvalidGeometry，Angle 保持不变。
func (s *DialSystem) PointerMove(id ecs.EntityID, p utils.Point) error {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return ErrNotDial
	}
	if dial.State != components.DialDragging {
		return ErrNotDragging
	}
	ring, ok := ecs.GetComponent[*components.RingComponent](s.entityManager, id)
	if !ok {
		return ErrNotDial
	}

	deg, err := utils.AngleFromNorth(ring.Center, p)
	if err != nil {
		return fmt.Errorf("entity %d: %w", id, err)
	}

	value, err := s.SetAngle(id, int(math.Floor(deg)))
	if err != nil {
		return err
	}

	if dial.OnValueChange != nil {
		dial.OnValueChange(dial.Angle, value)
	}
	for _, fn := range s.observers {
		fn(id, dial.Angle, value)
	}
	return nil
}

// PointerUp 结束拖拽并重新布局
func (s *DialSystem) PointerUp(id ecs.EntityID) {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return
	}
	dial.State = components.DialIdle
	if s.activeEntity == id {
		s.activeEntity = 0
	}
	logger.Sugar.Debugf("[DialSystem] entity %d released at angle %d (%s)", id, dial.Angle, utils.FormatDisplayValue(dial.DisplayValue))
	s.Layout(id)
}

// SetAngle 设置角度并同步派生状态
//
// 角度先规范到 [0, 360)，随后重新计算显示值、文字和圆球位置。
// 不触发数值变化通知。
//
// 返回：
//   - int: 新的显示值
//   - error: 实体不是旋钮时返回 ErrNotDial
func (s *DialSystem) SetAngle(id ecs.EntityID, angle int) (int, error) {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return 0, ErrNotDial
	}

	dial.Angle = utils.NormalizeAngle(angle)
	dial.DisplayValue = utils.DisplayValue(dial.Angle, dial.Maximum)

	if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok {
		label.Text = utils.FormatDisplayValue(dial.DisplayValue)
	}
	s.placeBall(id, dial)

	return dial.DisplayValue, nil
}

// SetBounds 更新旋钮外框并重新布局
func (s *DialSystem) SetBounds(id ecs.EntityID, x, y, width, height float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	changed := pos.Width != width || pos.Height != height
	pos.X, pos.Y = x, y
	pos.Width, pos.Height = width, height
	if changed {
		logger.Sugar.Debugf("[DialSystem] entity %d bounds changed to %.0fx%.0f", id, width, height)
	}
	s.Layout(id)
}

// Layout 根据当前外框重新计算圆环，并由存储的角度重新推导圆球位置
func (s *DialSystem) Layout(id ecs.EntityID) {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	if ring, ok := ecs.GetComponent[*components.RingComponent](s.entityManager, id); ok {
		ring.Center = utils.Point{X: pos.Width / 2, Y: pos.Height / 2}
		ring.Radius = utils.RingRadius(pos.Height, dial.RingWidth)
		ring.StrokeWidth = dial.RingWidth
	}

	if ball, ok := ecs.GetComponent[*components.BallIndicatorComponent](s.entityManager, id); ok {
		ball.Diameter = dial.RingWidth
	}
	s.placeBall(id, dial)

	if !dial.LaidOut {
		dial.LaidOut = true
		logger.Sugar.Infof("[DialSystem] entity %d first layout: angle=%d value=%d", id, dial.Angle, dial.DisplayValue)
	}
}

// State 返回旋钮的拖拽状态
func (s *DialSystem) State(id ecs.EntityID) components.DialState {
	dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, id)
	if !ok {
		return components.DialIdle
	}
	return dial.State
}

// placeBall 由角度和圆环几何计算圆球位置
func (s *DialSystem) placeBall(id ecs.EntityID, dial *components.DialComponent) {
	ring, ok := ecs.GetComponent[*components.RingComponent](s.entityManager, id)
	if !ok {
		return
	}
	ball, ok := ecs.GetComponent[*components.BallIndicatorComponent](s.entityManager, id)
	if !ok {
		return
	}
	ball.Position = utils.BallPositionForAngle(dial.Angle, ring.Radius, ring.Center)
}
