package utils

import (
	"errors"
	"math"
	"testing"
)

// angularDistance 返回两个角度之间的最小差值（考虑 0/360 回绕）
func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    int
		expected int
	}{
		{"零", 0, 0},
		{"范围内", 123, 123},
		{"恰好360", 360, 0},
		{"大于360", 725, 5},
		{"负数", -90, 270},
		{"负数多圈", -721, 359},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAngle(tt.angle); got != tt.expected {
				t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestDisplayValue_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		angle    int
		expected int
		label    string
	}{
		{"圆环顶部为零", 270, 0, "0º"},
		{"角度零", 0, 7, "7º"},
		{"最大值前一度", 269, 29, "29º"},
		{"圆环底部", 90, 15, "15º"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayValue(tt.angle, 30)
			if got != tt.expected {
				t.Errorf("DisplayValue(%d, 30) = %d, want %d", tt.angle, got, tt.expected)
			}
			if text := FormatDisplayValue(got); text != tt.label {
				t.Errorf("FormatDisplayValue(%d) = %q, want %q", got, text, tt.label)
			}
		})
	}
}

func TestDisplayValue_FormulaAndMonotonic(t *testing.T) {
	const maximum = 30

	for angle := 0; angle < 360; angle++ {
		rotated := ((angle-270)%360 + 360) % 360
		want := int(math.Floor(float64(rotated) / 360 * maximum))
		if got := DisplayValue(angle, maximum); got != want {
			t.Fatalf("DisplayValue(%d) = %d, want %d", angle, got, want)
		}
	}

	// 从 270 开始绕一圈，显示值单调不减
	prev := -1
	for step := 0; step < 360; step++ {
		angle := (270 + step) % 360
		v := DisplayValue(angle, maximum)
		if v < prev {
			t.Fatalf("DisplayValue not monotonic at angle %d: %d < %d", angle, v, prev)
		}
		if v < 0 || v >= maximum {
			t.Fatalf("DisplayValue(%d) = %d out of [0, %d)", angle, v, maximum)
		}
		prev = v
	}
}

func TestAngleFromNorth(t *testing.T) {
	center := Point{X: 100, Y: 100}

	tests := []struct {
		name     string
		point    Point
		expected float64
	}{
		{"右侧", Point{X: 150, Y: 100}, 0},
		{"下方", Point{X: 100, Y: 150}, 90},
		{"左侧", Point{X: 50, Y: 100}, 180},
		{"上方", Point{X: 100, Y: 50}, 270},
		{"右下对角", Point{X: 150, Y: 150}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleFromNorth(center, tt.point)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AngleFromNorth() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAngleFromNorth_Center(t *testing.T) {
	center := Point{X: 10, Y: 10}
	if _, err := AngleFromNorth(center, center); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestAngleFromNorth_RangeAndContinuity(t *testing.T) {
	center := Point{X: 0, Y: 0}

	// 在圆周上密集采样，结果始终在 [0, 360)
	var prev float64
	for i := 0; i <= 3600; i++ {
		rad := DegreesToRadians(float64(i) / 10)
		p := Point{X: 50 * math.Cos(rad), Y: 50 * math.Sin(rad)}
		got, err := AngleFromNorth(center, p)
		if err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("AngleFromNorth out of range at step %d: %v", i, got)
		}
		if i > 0 && angularDistance(got, prev) > 0.1+1e-9 {
			t.Fatalf("discontinuity at step %d: %v -> %v", i, prev, got)
		}
		prev = got
	}

	// 跨越 0/360 分界线
	above, _ := AngleFromNorth(center, Point{X: 100, Y: -1e-9})
	below, _ := AngleFromNorth(center, Point{X: 100, Y: 1e-9})
	if angularDistance(above, below) > 1e-6 {
		t.Errorf("branch cut gap too large: %v vs %v", above, below)
	}
}

func TestPointFromAngle(t *testing.T) {
	center := Point{X: 200, Y: 200}
	radius := 180.0

	tests := []struct {
		name     string
		angle    int
		expected Point
	}{
		{"零度在右侧", 0, Point{X: 380, Y: 200}},
		{"90度取反后在上方", 90, Point{X: 200, Y: 20}},
		{"180度在左侧", 180, Point{X: 20, Y: 200}},
		{"270度取反后在下方", 270, Point{X: 200, Y: 380}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointFromAngle(tt.angle, radius, center)
			if got != tt.expected {
				t.Errorf("PointFromAngle(%d) = %+v, want %+v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestBallPositionRoundTrip(t *testing.T) {
	center := Point{X: 200, Y: 200}
	radius := 180.0

	for a := 0; a < 360; a++ {
		p := BallPositionForAngle(a, radius, center)
		got, err := AngleFromNorth(center, p)
		if err != nil {
			t.Fatalf("angle %d: unexpected error: %v", a, err)
		}
		// 坐标取整带来的误差小于 1 度
		if d := angularDistance(got, float64(a)); d > 1 {
			t.Errorf("round trip for %d gave %v (diff %v)", a, got, d)
		}
	}
}

func TestBallPositionForAngle_TopOfRing(t *testing.T) {
	center := Point{X: 200, Y: 200}
	p := BallPositionForAngle(270, 180, center)
	if p.X != 200 || p.Y != 20 {
		t.Errorf("angle 270 should place the ball at the top, got %+v", p)
	}
}

func TestRectContains_InclusiveEdges(t *testing.T) {
	r := Rect{X: 180, Y: 0, Width: 40, Height: 40}

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"左上角", Point{X: 180, Y: 0}, true},
		{"右下角", Point{X: 220, Y: 40}, true},
		{"内部", Point{X: 200, Y: 20}, true},
		{"左边界外一像素", Point{X: 179, Y: 20}, false},
		{"右边界外一像素", Point{X: 221, Y: 20}, false},
		{"上边界外一像素", Point{X: 200, Y: -1}, false},
		{"下边界外一像素", Point{X: 200, Y: 41}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%+v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRingRadius(t *testing.T) {
	tests := []struct {
		name      string
		height    float64
		ringWidth float64
		expected  float64
	}{
		{"常规尺寸", 400, 40, 180},
		{"零尺寸", 0, 40, 0},
		{"高度小于环宽", 20, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RingRadius(tt.height, tt.ringWidth); got != tt.expected {
				t.Errorf("RingRadius(%v, %v) = %v, want %v", tt.height, tt.ringWidth, got, tt.expected)
			}
		})
	}
}
