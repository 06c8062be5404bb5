package entities

import (
	"image/color"

	"github.com/decker502/thermodial/pkg/components"
	"github.com/decker502/thermodial/pkg/config"
	"github.com/decker502/thermodial/pkg/ecs"
	"github.com/decker502/thermodial/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewThermostatDial 创建温度旋钮实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 旋钮配置（环宽、上限、颜色、初始角度）
//   - font: 温度文字字体，可为 nil（不绘制文字）
//   - onValueChange: 拖拽中数值变化回调，可为 nil
//
// 返回：
//   - 旋钮实体ID
//
// 实体创建后外框尺寸为 0，需要调用 DialSystem.SetBounds 完成首次布局。
func NewThermostatDial(
	em *ecs.EntityManager,
	cfg config.DialConfig,
	font *text.GoTextFace,
	onValueChange func(angle, value int),
) ecs.EntityID {
	entity := em.CreateEntity()

	angle := utils.NormalizeAngle(cfg.StartAngle())
	value := utils.DisplayValue(angle, cfg.Maximum)

	ecs.AddComponent(em, entity, &components.PositionComponent{})

	ecs.AddComponent(em, entity, &components.DialComponent{
		Angle:         angle,
		Maximum:       cfg.Maximum,
		DisplayValue:  value,
		RingWidth:     cfg.RingWidth,
		State:         components.DialIdle,
		OnValueChange: onValueChange,
	})

	ecs.AddComponent(em, entity, &components.RingComponent{
		StrokeWidth: cfg.RingWidth,
		StrokeColor: rgba(cfg.RingColor),
	})

	// 圆球位置由拖拽直接驱动，不做隐式动画
	ecs.AddComponent(em, entity, &components.BallIndicatorComponent{
		Diameter:  cfg.RingWidth,
		FillColor: rgba(cfg.BallColor),
		Animated:  false,
	})

	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:  utils.FormatDisplayValue(value),
		Font:  font,
		Color: rgba(cfg.LabelColor),
	})

	return entity
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
