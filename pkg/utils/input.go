package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧指针（触摸或鼠标左键）的状态
type PointerState struct {
	// Pressed 指针是否处于按下状态
	Pressed bool
	// JustPressed 本帧刚刚按下
	JustPressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// PointerTracker 统一跟踪鼠标和触摸输入
//
// 触摸优先：一旦某个触摸开始，只跟踪该触摸ID直到其释放。
// 触摸释放后 ebiten 不再提供其位置，因此保存最后一次位置。
type PointerTracker struct {
	touchID    ebiten.TouchID
	tracking   bool
	lastX      int
	lastY      int
	touchIDBuf []ebiten.TouchID
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Poll 读取本帧指针状态，每帧调用一次
func (pt *PointerTracker) Poll() PointerState {
	// 已在跟踪的触摸
	if pt.tracking {
		pt.touchIDBuf = ebiten.AppendTouchIDs(pt.touchIDBuf[:0])
		for _, id := range pt.touchIDBuf {
			if id == pt.touchID {
				pt.lastX, pt.lastY = ebiten.TouchPosition(id)
				return PointerState{Pressed: true, X: pt.lastX, Y: pt.lastY, IsTouch: true}
			}
		}
		// 触摸已释放
		pt.tracking = false
		pt.touchID = -1
		return PointerState{X: pt.lastX, Y: pt.lastY, IsTouch: true}
	}

	// 新的触摸
	pt.touchIDBuf = inpututil.AppendJustPressedTouchIDs(pt.touchIDBuf[:0])
	if len(pt.touchIDBuf) > 0 {
		pt.touchID = pt.touchIDBuf[0]
		pt.tracking = true
		pt.lastX, pt.lastY = ebiten.TouchPosition(pt.touchID)
		return PointerState{Pressed: true, JustPressed: true, X: pt.lastX, Y: pt.lastY, IsTouch: true}
	}

	// 鼠标
	x, y := ebiten.CursorPosition()
	pt.lastX, pt.lastY = x, y
	return PointerState{
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}
