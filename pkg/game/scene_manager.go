package game

import (
	"github.com/decker502/thermodial/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only the active scene receives Update, Draw and Resize calls.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene. The previous scene is closed if it
// implements Closable, and the new scene immediately receives the last known
// layout size if it implements Resizable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if c, ok := sm.currentScene.(Closable); ok && sm.currentScene != scene {
		c.Close()
	}
	sm.currentScene = scene
	logger.Sugar.Debugf("[SceneManager] switched scene to %T", scene)
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize forwards a layout size change to the active scene.
// Repeated calls with an unchanged size are ignored.
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// SaveOnExit 让当前场景保存状态（如果它实现了 Saveable）
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Close 关闭当前场景（如果它实现了 Closable），之后不再有活动场景
func (sm *SceneManager) Close() {
	if c, ok := sm.currentScene.(Closable); ok {
		c.Close()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
