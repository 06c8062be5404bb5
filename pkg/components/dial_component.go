package components

import (
	"image/color"

	"github.com/decker502/thermodial/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DialState 拖拽跟踪状态
type DialState int

const (
	// DialIdle 没有进行中的拖拽
	DialIdle DialState = iota
	// DialDragging 按下命中圆球后，直到指针抬起
	DialDragging
)

// String 返回状态名称（用于日志）
func (s DialState) String() string {
	switch s {
	case DialIdle:
		return "idle"
	case DialDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DialComponent 温度旋钮的状态
//
// Angle 是唯一的数据来源，DisplayValue 和圆球位置都由它派生。
// 只能通过 DialSystem.SetAngle 修改 Angle，以保持派生值同步。
type DialComponent struct {
	// Angle 当前角度 [0, 360)
	Angle int
	// Maximum 显示值上限（默认 30）
	Maximum int
	// DisplayValue 由 Angle 派生的显示值
	DisplayValue int

	// RingWidth 圆环宽度，同时也是圆球直径
	RingWidth float64

	// State 拖拽状态
	State DialState
	// LaidOut 是否已完成首次布局
	LaidOut bool

	// OnValueChange 拖拽中角度更新后的回调
	OnValueChange func(angle, value int)
}

// RingComponent 圆环轨道（只描边，不填充）
type RingComponent struct {
	// Center 圆心（控件局部坐标）
	Center utils.Point
	// Radius 半径，尺寸不足时为 0
	Radius float64
	// StrokeWidth 描边宽度
	StrokeWidth float64
	// StrokeColor 描边颜色
	StrokeColor color.RGBA
}

// BallIndicatorComponent 可拖拽的圆球
//
// Animated 为 false 时位置变化立即生效，不做过渡。
// 圆球始终以 Animated=false 创建。
type BallIndicatorComponent struct {
	// Position 圆球中心（控件局部坐标）
	Position utils.Point
	// Diameter 直径
	Diameter float64
	// FillColor 填充颜色
	FillColor color.RGBA
	// Animated 是否对属性变化做隐式动画
	Animated bool
}

// Frame 返回圆球的外接矩形（控件局部坐标），用于命中测试
func (b *BallIndicatorComponent) Frame() utils.Rect {
	return utils.RectAround(b.Position, b.Diameter)
}

// LabelComponent 居中显示的温度文字
type LabelComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.RGBA
}
