package entities

import (
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
)

// ButtonCellRect 计算 (类别, 组件种类) 按钮的屏幕矩形
// 列为类别，行为组件种类，顺序与 types.AllArchetypes / types.AllComponentKinds 一致
func ButtonCellRect(grid config.GridConfig, archetype types.Archetype, kind types.ComponentKind) (x, y, w, h float64) {
	col := float64(int(archetype) - 1)
	row := float64(int(kind) - 1)
	x = grid.OriginX + grid.LabelWidth + col*(grid.CellWidth+grid.Gap)
	y = grid.OriginY + grid.HeaderHeight + row*(grid.CellHeight+grid.Gap)
	return x, y, grid.CellWidth, grid.CellHeight
}

// NewToggleButtonGrid 创建开关按钮网格
//
// 参数：
//   - em: 实体管理器
//   - matrix: 适用性矩阵（决定创建哪些按钮）
//   - grid: 网格布局
//
// 每个适用的 (类别, 组件种类) 创建一个按钮；grid.ShowInapplicable 为 true 时
// 不适用的组合也会创建按钮（Applicable=false），用于显示完整网格。
// 同时为每列、每行创建文字标签。
//
// 返回：
//   - 按钮实体ID列表（按列优先顺序）
func NewToggleButtonGrid(em *ecs.EntityManager, matrix *toggle.Matrix, grid config.GridConfig) []ecs.EntityID {
	buttons := make([]ecs.EntityID, 0, len(types.AllArchetypes)*len(types.AllComponentKinds))

	for _, archetype := range types.AllArchetypes {
		x, _, _, _ := ButtonCellRect(grid, archetype, types.KindSprite)
		newLabel(em, archetype.String(), x, grid.OriginY)

		for _, kind := range types.AllComponentKinds {
			applicable := matrix.Permits(archetype, kind)
			if !applicable && !grid.ShowInapplicable {
				continue
			}

			bx, by, bw, bh := ButtonCellRect(grid, archetype, kind)
			entity := em.CreateEntity()
			ecs.AddComponent(em, entity, &components.ToggleButtonComponent{
				Archetype:  archetype,
				Kind:       kind,
				Applicable: applicable,
				X:          bx,
				Y:          by,
				Width:      bw,
				Height:     bh,
				State:      components.ButtonIdle,
			})
			buttons = append(buttons, entity)
		}
	}

	for _, kind := range types.AllComponentKinds {
		_, y, _, h := ButtonCellRect(grid, types.ArchetypeBall, kind)
		// 行标题垂直居中（调试字体高度约 16 像素）
		newLabel(em, kind.String(), grid.OriginX, y+h/2-8)
	}

	return buttons
}

// newLabel 创建文字标签实体
func newLabel(em *ecs.EntityManager, text string, x, y float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.LabelComponent{Text: text, X: x, Y: y})
	return entity
}
