// Package utils 提供控件通用的几何与输入工具函数
package utils

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry 指针与圆心重合时无法计算角度
var ErrInvalidGeometry = errors.New("invalid geometry: point coincides with ring center")

// DisplayZeroOffset 显示值零点相对角度零点的旋转量（度）
// 角度 270（圆环顶部）对应显示值 0
const DisplayZeroOffset = 270

// Point 控件局部坐标系中的点（y 轴向下）
type Point struct {
	X, Y float64
}

// Sub 返回 p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect 轴对齐矩形，X/Y 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 判断点是否在矩形内（边界包含在内）
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X &&
		p.X <= r.X+r.Width &&
		p.Y >= r.Y &&
		p.Y <= r.Y+r.Height
}

// RectAround 返回以 center 为中心、边长为 size 的正方形
func RectAround(center Point, size float64) Rect {
	return Rect{
		X:      center.X - size/2,
		Y:      center.Y - size/2,
		Width:  size,
		Height: size,
	}
}

// DegreesToRadians 角度转弧度
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadiansToDegrees 弧度转角度
func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeAngle 将整数角度规范到 [0, 360)
func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// AngleFromNorth 计算从 center 指向 point 的角度，结果在 [0, 360)
//
// 直接在 y 轴向下的屏幕坐标系中使用 atan2，不翻转 y。
// 屏幕上顺时针旋转时角度增大，圆环顶部为 270。
//
// 返回：
//   - float64: 角度（度）
//   - error: point 与 center 重合时返回 ErrInvalidGeometry
func AngleFromNorth(center, point Point) (float64, error) {
	v := point.Sub(center)
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return 0, ErrInvalidGeometry
	}
	v.X /= mag
	v.Y /= mag

	deg := RadiansToDegrees(math.Atan2(v.Y, v.X))
	if deg < 0 {
		deg += 360
	}
	// -0 或极小负数加 360 后可能四舍五入为 360
	if deg >= 360 {
		deg -= 360
	}
	return deg, nil
}

// PointFromAngle 根据角度、半径和圆心计算圆上的点
//
// 角度在换算前取反：x = round(r·cos(−a°)) + cx，y = round(r·sin(−a°)) + cy
func PointFromAngle(angle int, radius float64, center Point) Point {
	rad := DegreesToRadians(float64(-angle))
	return Point{
		X: math.Round(radius*math.Cos(rad)) + center.X,
		Y: math.Round(radius*math.Sin(rad)) + center.Y,
	}
}

// BallPositionForAngle 返回存储角度 angle 对应的圆球中心
// 先反转为 360 − angle，再交给 PointFromAngle（其中再次取反）
func BallPositionForAngle(angle int, radius float64, center Point) Point {
	return PointFromAngle(NormalizeAngle(360-angle), radius, center)
}

// RingRadius 根据控件高度和环宽计算圆环半径
// 高度不足时返回 0（圆环退化为一个点）
func RingRadius(height, ringWidth float64) float64 {
	r := height/2 - ringWidth/2
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// DisplayValue 根据角度计算显示值
//
// DisplayValue = floor(((angle − 270 + 360) mod 360) / 360 × maximum)
func DisplayValue(angle, maximum int) int {
	rotated := NormalizeAngle(NormalizeAngle(angle) - DisplayZeroOffset)
	return int(math.Floor(float64(rotated) / 360 * float64(maximum)))
}

// FormatDisplayValue 格式化显示值，如 "12º"
func FormatDisplayValue(value int) string {
	return fmt.Sprintf("%dº", value)
}
