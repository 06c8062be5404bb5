package scenes

import (
	"testing"

	"github.com/decker502/thermodial/pkg/components"
	"github.com/decker502/thermodial/pkg/config"
	"github.com/decker502/thermodial/pkg/ecs"
	"github.com/decker502/thermodial/pkg/game"
	"github.com/decker502/thermodial/pkg/systems"
	"github.com/decker502/thermodial/pkg/utils"
)

// scriptedInput 按帧返回预设的指针状态
type scriptedInput struct {
	frames []utils.PointerState
	index  int
}

func (s *scriptedInput) Poll() utils.PointerState {
	if s.index >= len(s.frames) {
		return utils.PointerState{}
	}
	st := s.frames[s.index]
	s.index++
	return st
}

func newTestScene(t *testing.T, settings *game.SettingsManager, input systems.DialPointerInput) *ThermostatScene {
	t.Helper()
	cfg := config.Default()
	em := ecs.NewEntityManager()
	scene, err := NewThermostatScene(cfg, game.NewResourceManager(), settings, em, systems.NewDialSystemWithInput(em, input))
	if err != nil {
		t.Fatalf("NewThermostatScene: %v", err)
	}
	return scene
}

func TestThermostatScene_DialFrame(t *testing.T) {
	scene := newTestScene(t, nil, &scriptedInput{})

	tests := []struct {
		name          string
		width, height int
		x, y, size    float64
	}{
		{"正方形窗口", 480, 480, 20, 20, 440},
		{"横屏", 800, 600, 120, 20, 560},
		{"窗口过小", 30, 30, 15, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, size := scene.dialFrame(tt.width, tt.height)
			if x != tt.x || y != tt.y || size != tt.size {
				t.Errorf("dialFrame(%d, %d) = (%v, %v, %v), want (%v, %v, %v)",
					tt.width, tt.height, x, y, size, tt.x, tt.y, tt.size)
			}
		})
	}
}

func TestThermostatScene_InitialLayout(t *testing.T) {
	scene := newTestScene(t, nil, &scriptedInput{})

	pos, ok := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.DialEntity())
	if !ok {
		t.Fatal("PositionComponent missing")
	}
	if pos.X != 20 || pos.Y != 20 || pos.Width != 440 || pos.Height != 440 {
		t.Errorf("dial bounds: got %+v", pos)
	}

	label, _ := ecs.GetComponent[*components.LabelComponent](scene.entityManager, scene.DialEntity())
	if label.Text != "0º" || label.Font == nil {
		t.Errorf("label: got %q font=%v", label.Text, label.Font)
	}
}

func TestThermostatScene_RestoresAngle(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	settings.SetLastAngle(0)

	scene := newTestScene(t, settings, &scriptedInput{})

	dial, _ := ecs.GetComponent[*components.DialComponent](scene.entityManager, scene.DialEntity())
	if dial.Angle != 0 || dial.DisplayValue != 7 {
		t.Errorf("restored dial: angle=%d value=%d, want 0 7", dial.Angle, dial.DisplayValue)
	}
}

func TestThermostatScene_DragUpdatesSettings(t *testing.T) {
	settings := game.NewSettingsManager(nil)

	// 480x480 窗口，外框 (20, 20, 440)；圆心屏幕坐标 (240, 240)，半径 200
	// 圆球初始位于 (240, 40)
	input := &scriptedInput{frames: []utils.PointerState{
		{Pressed: true, JustPressed: true, X: 240, Y: 40},
		{Pressed: true, X: 440, Y: 240},
		{Pressed: false, X: 440, Y: 240},
	}}
	scene := newTestScene(t, settings, input)

	for range input.frames {
		scene.Update(1.0 / 60)
	}

	angle, ok := settings.LastAngle()
	if !ok || angle != 0 {
		t.Errorf("saved angle: got %d %v, want 0 true", angle, ok)
	}

	ball, _ := ecs.GetComponent[*components.BallIndicatorComponent](scene.entityManager, scene.DialEntity())
	if ball.Position != (utils.Point{X: 420, Y: 220}) {
		t.Errorf("ball position: got %+v, want (420, 220)", ball.Position)
	}
}

func TestThermostatScene_CloseReleasesDial(t *testing.T) {
	// 圆球初始位于屏幕 (240, 40)
	input := &scriptedInput{frames: []utils.PointerState{
		{Pressed: true, JustPressed: true, X: 240, Y: 40},
	}}
	scene := newTestScene(t, nil, input)
	scene.Update(1.0 / 60)
	if scene.dialSystem.ActiveEntity() != scene.DialEntity() {
		t.Fatal("drag should be active before Close")
	}

	scene.Close()

	if scene.entityManager.Exists(scene.DialEntity()) {
		t.Error("dial entity should be destroyed")
	}
	if scene.dialSystem.ActiveEntity() != 0 {
		t.Error("active drag should be released")
	}
	if got := ecs.GetEntitiesWith2[*components.DialComponent, *components.PositionComponent](scene.entityManager); len(got) != 0 {
		t.Errorf("no dial should remain, got %v", got)
	}

	// 重复关闭和关闭后的更新都是安全的
	scene.Close()
	scene.Update(1.0 / 60)
}
