package config

// 温度旋钮的默认外观与取值参数

const (
	// DefaultRingWidth 圆环宽度，同时也是圆球直径
	DefaultRingWidth = 40.0

	// DefaultMaximum 显示值上限
	DefaultMaximum = 30

	// DefaultInitialAngle 初始角度，270 为圆环顶部（显示 0º）
	DefaultInitialAngle = 270

	// DefaultLabelFontSize 温度文字字号（粗体）
	DefaultLabelFontSize = 40.0
)

var (
	// DefaultRingColor 圆环描边颜色 rgb(112, 25, 18)
	DefaultRingColor = [4]uint8{112, 25, 18, 255}

	// DefaultBallColor 圆球填充颜色
	DefaultBallColor = [4]uint8{0, 0, 0, 255}

	// DefaultLabelColor 文字颜色
	DefaultLabelColor = [4]uint8{0, 0, 0, 255}

	// DefaultBackgroundColor 窗口背景色
	DefaultBackgroundColor = [4]uint8{255, 255, 255, 255}
)

// DialConfig 旋钮配置
type DialConfig struct {
	RingWidth     float64 `yaml:"ringWidth"`
	Maximum       int     `yaml:"maximum"`
	InitialAngle  *int    `yaml:"initialAngle,omitempty"`
	LabelFontSize float64 `yaml:"labelFontSize"`
	// LabelFontPath 文字字体文件，为空时使用内置 Go Bold
	LabelFontPath string   `yaml:"labelFontPath"`
	RingColor     [4]uint8 `yaml:"ringColor"`
	BallColor     [4]uint8 `yaml:"ballColor"`
	LabelColor    [4]uint8 `yaml:"labelColor"`
	// Padding 旋钮外框与窗口边缘的距离
	Padding float64 `yaml:"padding"`
}

// StartAngle 返回初始角度（未配置时为 DefaultInitialAngle）
func (c DialConfig) StartAngle() int {
	if c.InitialAngle == nil {
		return DefaultInitialAngle
	}
	return *c.InitialAngle
}
