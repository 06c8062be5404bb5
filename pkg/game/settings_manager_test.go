package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时目录中创建 gdata 管理器
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.LastAngle != nil {
		t.Errorf("LastAngle: got %v, want nil", *settings.LastAngle)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if _, ok := sm.LastAngle(); ok {
		t.Error("LastAngle should be unset in degraded mode")
	}

	sm.SetLastAngle(90)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if angle, ok := sm.LastAngle(); !ok || angle != 90 {
		t.Errorf("in-memory LastAngle: got %d %v, want 90 true", angle, ok)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 往返
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := createTestGdataManager(t, "test_dial_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetLastAngle(123)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)

	angle, ok := sm2.LastAngle()
	if !ok || angle != 123 {
		t.Errorf("Loaded LastAngle: got %d %v, want 123 true", angle, ok)
	}
	if !sm2.GetSettings().Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试损坏的设置数据回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := createTestGdataManager(t, "test_dial_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("lastAngle: [unterminated")); err != nil {
		t.Fatalf("failed to seed corrupted data: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if _, ok := sm.LastAngle(); ok {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}
