package components

// PositionComponent 控件在屏幕上的外框（左上角 + 尺寸）
// 指针坐标先减去 X/Y 转换为控件局部坐标
type PositionComponent struct {
	X, Y          float64
	Width, Height float64
}
