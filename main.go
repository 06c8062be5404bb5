package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/decker502/thermodial/pkg/app"
	"github.com/decker502/thermodial/pkg/config"
	"github.com/decker502/thermodial/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "thermodial.yaml", "配置文件路径（不存在时使用默认配置）")
	verbose    = flag.Bool("verbose", false, "输出调试日志")
	logLevel   = flag.String("log-level", "", "日志级别 debug|info|warn|error（覆盖配置文件）")
	logFile    = flag.String("log-file", "", "日志文件路径（覆盖配置文件）")
	noSave     = flag.Bool("no-save", false, "不读取也不保存设置")
	mobileMode = flag.Bool("mobile", false, "按移动端方式运行（等同于设置 "+utils.MobileEmulateEnv+"=1）")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *logFile != "" {
		cfg.Logging.LogFile = *logFile
	}
	if *mobileMode {
		if err := utils.EnableMobileEmulation(); err != nil {
			fmt.Fprintf(os.Stderr, "Mobile mode error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	var a *app.App
	var err error

	if *noSave {
		a, err = app.NewApp(cfg, nil)
	} else {
		store, openErr := app.OpenStore()
		if openErr != nil {
			logger.Log.Warn("settings storage unavailable, running without persistence", zap.Error(openErr))
		}
		a, err = app.NewApp(cfg, store)
	}
	if err != nil {
		logger.Log.Error("failed to create app", zap.Error(err))
		return 1
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(a.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		logger.Log.Error("game loop error", zap.Error(err))
		a.Shutdown()
		return 1
	}

	a.Shutdown()
	logger.Log.Info("closed normally")
	return 0
}
