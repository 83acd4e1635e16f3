package components

import "github.com/decker502/breakout/pkg/types"

// ArchetypeComponent 记录实体的类别
// 生成时写入，之后不再修改；不参与开关
type ArchetypeComponent struct {
	Archetype types.Archetype
}
