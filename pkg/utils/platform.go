//go:build !mobile

package utils

import (
	"fmt"
	"os"
)

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端方式运行（用于本地调试）
const MobileEmulateEnv = "THERMODIAL_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时默认返回 false
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

// EnableMobileEmulation 让当前进程按移动端方式运行
func EnableMobileEmulation() error {
	if err := os.Setenv(MobileEmulateEnv, "1"); err != nil {
		return fmt.Errorf("failed to set %s: %w", MobileEmulateEnv, err)
	}
	return nil
}
