package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application with its own update and
// rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后在逻辑屏幕尺寸变化时收到通知
type Resizable interface {
	// Resize 在布局尺寸变化时调用（窗口缩放、旋转屏幕）
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 应用窗口关闭
//   - 移动端进入后台前
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}

// Closable 是一个可选接口，场景被切换掉或应用退出时释放自己创建的实体
type Closable interface {
	// Close 释放场景资源，重复调用应是安全的
	Close()
}
