// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，供桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/decker502/thermodial/pkg/config"
	"github.com/decker502/thermodial/pkg/game"
	"github.com/decker502/thermodial/pkg/scenes"
	"github.com/decker502/thermodial/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// AppName gdata 存储使用的应用名
const AppName = "thermodial"

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.Config
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
}

// NewApp 创建并初始化应用
//
// 参数：
//   - cfg: 应用配置
//   - store: gdata 存储，可为 nil（不持久化设置）
func NewApp(cfg *config.Config, store *gdata.Manager) (*App, error) {
	settings := game.NewSettingsManager(store)
	resourceManager := game.NewResourceManager()

	scene, err := scenes.NewThermostatScene(cfg, resourceManager, settings, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create thermostat scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	logger.Log.Info("[App] initialized",
		zap.Int("maximum", cfg.Dial.Maximum),
		zap.Float64("ringWidth", cfg.Dial.RingWidth),
		zap.Bool("mobile", utils.IsMobile()),
		zap.Bool("persistent", store != nil))

	return &App{
		cfg:          cfg,
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// OpenStore 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以选择降级为不持久化
func OpenStore() (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, err
	}
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		logger.Log.Debug("[App] settings storage", zap.String("path", path))
	}
	return store, nil
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Update 更新应用逻辑，每个 tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		logger.Log.Info("[App] toggled fullscreen", zap.Bool("fullscreen", fullscreen))
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑尺寸跟随窗口（或移动端视图）尺寸，每次变化都会让旋钮重新布局。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown 退出前保存场景状态并关闭场景
func (a *App) Shutdown() {
	if !a.sceneManager.SaveOnExit() {
		logger.Log.Warn("[App] scene state was not saved")
	}
	a.sceneManager.Close()
}
