// Package scenes 包含应用的各个场景
package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/decker502/thermodial/pkg/components"
	"github.com/decker502/thermodial/pkg/config"
	"github.com/decker502/thermodial/pkg/ecs"
	"github.com/decker502/thermodial/pkg/entities"
	"github.com/decker502/thermodial/pkg/game"
	"github.com/decker502/thermodial/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ThermostatScene 温度旋钮场景
//
// 旋钮外框是窗口中居中的正方形，边长为较短边减去两倍 Padding。
// 每次布局尺寸变化都会触发旋钮重新布局。
type ThermostatScene struct {
	entityManager *ecs.EntityManager
	dialSystem    *systems.DialSystem
	renderSystem  *systems.DialRenderSystem
	settings      *game.SettingsManager

	dialEntity ecs.EntityID
	dialConfig config.DialConfig
	background color.RGBA
}

// NewThermostatScene 创建温度旋钮场景
//
// 参数：
//   - cfg: 应用配置
//   - rm: 资源管理器（加载文字字体）
//   - settings: 设置管理器，用于恢复和保存角度，可为 nil
//   - dialSystem: 旋钮交互系统，为 nil 时使用 ebiten 指针输入创建
//   - em: 实体管理器，需与 dialSystem 使用同一个；为 nil 时新建
func NewThermostatScene(
	cfg *config.Config,
	rm *game.ResourceManager,
	settings *game.SettingsManager,
	em *ecs.EntityManager,
	dialSystem *systems.DialSystem,
) (*ThermostatScene, error) {
	if em == nil {
		em = ecs.NewEntityManager()
	}
	if dialSystem == nil {
		dialSystem = systems.NewDialSystem(em)
	}

	font, err := rm.LoadFont(cfg.Dial.LabelFontPath, cfg.Dial.LabelFontSize)
	if err != nil {
		return nil, err
	}

	s := &ThermostatScene{
		entityManager: em,
		dialSystem:    dialSystem,
		renderSystem:  systems.NewDialRenderSystem(em),
		settings:      settings,
		dialConfig:    cfg.Dial,
		background: color.RGBA{
			R: cfg.Window.BackgroundColor[0],
			G: cfg.Window.BackgroundColor[1],
			B: cfg.Window.BackgroundColor[2],
			A: cfg.Window.BackgroundColor[3],
		},
	}

	s.dialEntity = entities.NewThermostatDial(em, cfg.Dial, font, nil)

	if settings != nil {
		if angle, ok := settings.LastAngle(); ok {
			value, err := dialSystem.SetAngle(s.dialEntity, angle)
			if err == nil {
				logger.Log.Info("[ThermostatScene] restored dial angle",
					zap.Int("angle", angle), zap.Int("value", value))
			}
		}
	}

	dialSystem.OnValueChanged(s.onValueChanged)
	s.Resize(cfg.Window.Width, cfg.Window.Height)

	return s, nil
}

// DialEntity 返回旋钮实体ID
func (s *ThermostatScene) DialEntity() ecs.EntityID {
	return s.dialEntity
}

// onValueChanged 拖拽中数值变化
func (s *ThermostatScene) onValueChanged(id ecs.EntityID, angle, value int) {
	logger.Log.Debug("[ThermostatScene] value changed",
		zap.Uint64("entity", uint64(id)), zap.Int("angle", angle), zap.Int("value", value))
	if s.settings != nil {
		s.settings.SetLastAngle(angle)
	}
}

// Resize 按新的布局尺寸重新计算旋钮外框
func (s *ThermostatScene) Resize(width, height int) {
	x, y, size := s.dialFrame(width, height)
	s.dialSystem.SetBounds(s.dialEntity, x, y, size, size)
}

// dialFrame 计算旋钮在窗口中的外框
func (s *ThermostatScene) dialFrame(width, height int) (x, y, size float64) {
	w, h := float64(width), float64(height)
	size = math.Max(math.Min(w, h)-2*s.dialConfig.Padding, 0)
	return (w - size) / 2, (h - size) / 2, size
}

// Update 更新场景
func (s *ThermostatScene) Update(deltaTime float64) {
	wasDragging := s.dialSystem.State(s.dialEntity) == components.DialDragging
	s.dialSystem.Update(deltaTime)

	// 拖拽结束时保存角度
	if wasDragging && s.dialSystem.State(s.dialEntity) == components.DialIdle {
		s.SaveOnExit()
	}
}

// Close 销毁旋钮实体
//
// 正在拖拽时先结束拖拽。重复调用无效果。
func (s *ThermostatScene) Close() {
	if !s.entityManager.Exists(s.dialEntity) {
		return
	}
	if s.dialSystem.ActiveEntity() == s.dialEntity {
		s.dialSystem.PointerUp(s.dialEntity)
	}
	s.entityManager.DestroyEntity(s.dialEntity)
	s.entityManager.RemoveMarkedEntities()
	logger.Log.Debug("[ThermostatScene] closed", zap.Uint64("entity", uint64(s.dialEntity)))
}

// Draw 绘制场景
func (s *ThermostatScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
}

// SaveOnExit 保存当前角度
func (s *ThermostatScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if dial, ok := ecs.GetComponent[*components.DialComponent](s.entityManager, s.dialEntity); ok {
		s.settings.SetLastAngle(dial.Angle)
	}
	if err := s.settings.Save(); err != nil {
		logger.Log.Warn("[ThermostatScene] failed to save settings", zap.Error(err))
		return false
	}
	return true
}
