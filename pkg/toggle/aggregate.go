package toggle

import "github.com/decker502/breakout/pkg/types"

const (
	kindSlots = int(types.KindDestructable) + 1
)

// Preset 是聚合开关表的快照：每个类别下处于停放状态的组件种类
type Preset map[types.Archetype][]types.ComponentKind

// AggregateTable 聚合开关表
// 每个 (类别, 组件种类) 一个布尔值：true 表示该类别的这种组件处于停放状态。
// 它决定按钮颜色，也决定新生成实体采用的状态。
type AggregateTable struct {
	parked [archetypeSlots][kindSlots]bool
}

// NewAggregateTable 创建全部处于激活状态的聚合开关表
func NewAggregateTable() *AggregateTable {
	return &AggregateTable{}
}

// IsParked 返回 (类别, 组件种类) 当前是否处于停放状态
func (t *AggregateTable) IsParked(archetype types.Archetype, kind types.ComponentKind) bool {
	if !archetype.Valid() || !kind.Valid() {
		return false
	}
	return t.parked[archetype][kind]
}

// flip 翻转并返回新值，调用者负责校验参数
func (t *AggregateTable) flip(archetype types.Archetype, kind types.ComponentKind) bool {
	t.parked[archetype][kind] = !t.parked[archetype][kind]
	return t.parked[archetype][kind]
}

// Snapshot 返回当前所有停放的 (类别, 组件种类)
func (t *AggregateTable) Snapshot() Preset {
	preset := make(Preset)
	for _, archetype := range types.AllArchetypes {
		for _, kind := range types.AllComponentKinds {
			if t.parked[archetype][kind] {
				preset[archetype] = append(preset[archetype], kind)
			}
		}
	}
	return preset
}

// Contains 判断快照中 (类别, 组件种类) 是否处于停放状态
func (p Preset) Contains(archetype types.Archetype, kind types.ComponentKind) bool {
	for _, k := range p[archetype] {
		if k == kind {
			return true
		}
	}
	return false
}
