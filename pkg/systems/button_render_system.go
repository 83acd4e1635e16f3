package systems

import (
	"image/color"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToggleStateReader 读取聚合开关状态（由 toggle.Controller 实现）
type ToggleStateReader interface {
	IsParked(archetype types.Archetype, kind types.ComponentKind) bool
}

// ButtonRenderSystem 按钮网格渲染系统
// 负责渲染所有开关按钮和网格的行列标题
//
// 按钮颜色只由聚合开关状态决定：
//   - 停放 → "开" 颜色（绿色）
//   - 激活 → 普通颜色，悬停或按下时变亮
//   - 不适用 → 禁用颜色
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	state         ToggleStateReader
	colors        config.ColorsConfig
}

// NewButtonRenderSystem 创建按钮网格渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, state ToggleStateReader, colors config.ColorsConfig) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		state:         state,
		colors:        colors,
	}
}

// Draw 渲染所有按钮和标签
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	buttons := ecs.GetEntitiesWith1[*components.ToggleButtonComponent](s.entityManager)
	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		vector.DrawFilledRect(screen,
			float32(btn.X), float32(btn.Y), float32(btn.Width), float32(btn.Height),
			s.CellColor(btn), false)
		ebitenutil.DebugPrintAt(screen, s.cellText(btn), int(btn.X)+6, int(btn.Y+btn.Height/2)-8)
	}

	labels := ecs.GetEntitiesWith1[*components.LabelComponent](s.entityManager)
	for _, id := range labels {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		ebitenutil.DebugPrintAt(screen, label.Text, int(label.X), int(label.Y))
	}
}

// CellColor 计算按钮的填充颜色
func (s *ButtonRenderSystem) CellColor(btn *components.ToggleButtonComponent) color.RGBA {
	if !btn.Applicable {
		return s.colors.ButtonDisabled.RGBA()
	}
	highlight := btn.Hovered || btn.State == components.ButtonPressed
	if s.state.IsParked(btn.Archetype, btn.Kind) {
		if highlight {
			return brighten(s.colors.ButtonOn, 0.1)
		}
		return s.colors.ButtonOn.RGBA()
	}
	if highlight {
		return s.colors.ButtonHovered.RGBA()
	}
	return s.colors.ButtonNormal.RGBA()
}

// cellText 按钮上显示的状态文字
func (s *ButtonRenderSystem) cellText(btn *components.ToggleButtonComponent) string {
	if !btn.Applicable {
		return "-"
	}
	if s.state.IsParked(btn.Archetype, btn.Kind) {
		return "parked"
	}
	return "active"
}

// brighten 把每个分量增加 delta（上限 1.0）
func brighten(c config.RGB, delta float64) color.RGBA {
	return config.RGB{c[0] + delta, c[1] + delta, c[2] + delta}.RGBA()
}
