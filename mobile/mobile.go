//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.thermodial -o build/android/thermodial.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Thermodial.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/decker502/thermodial/pkg/app"
	"github.com/decker502/thermodial/pkg/config"
)

func init() {
	cfg := config.Default()

	// 移动端没有日志文件，只输出到控制台（logcat）
	if err := logger.Init(cfg.Logging.Level, ""); err != nil {
		log.Printf("logger init failed: %v", err)
	}

	store, err := app.OpenStore()
	if err != nil {
		logger.Log.Warn("[mobile] settings storage unavailable", zap.Error(err))
	}

	dialApp, err := app.NewApp(cfg, store)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	mobile.SetGame(dialApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
