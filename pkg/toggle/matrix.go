package toggle

import (
	"fmt"

	"github.com/decker502/breakout/pkg/types"
)

const (
	archetypeSlots = int(types.ArchetypeScore) + 1
)

// Matrix 适用性矩阵：每个类别允许携带哪些组件种类
//
// 启动时构建一次，之后只读，以指针形式传给各个组件。
// 每个类别用一个位掩码表示，Permits 为常数时间查表。
type Matrix struct {
	permitted [archetypeSlots]uint16
}

// DefaultMatrix 返回默认的适用性矩阵
//
//	              Ball  Paddle  Wall  Brick  Score
//	Sprite         Y      Y      Y     Y      Y
//	Transform      Y      Y      Y     Y      Y
//	Collider       Y      Y      Y     Y      N
//	Velocity       Y      N      N     N      N
//	Controllable   N      Y      N     N      N
//	Destructor     Y      N      N     N      N
//	Destructable   N      N      N     Y      N
func DefaultMatrix() *Matrix {
	m, _ := NewMatrix(DefaultTable())
	return m
}

// DefaultTable 返回默认矩阵的表格形式（可用作配置覆盖的基础）
func DefaultTable() map[types.Archetype][]types.ComponentKind {
	return map[types.Archetype][]types.ComponentKind{
		types.ArchetypeBall: {
			types.KindSprite, types.KindTransform, types.KindCollider,
			types.KindVelocity, types.KindDestructor,
		},
		types.ArchetypePaddle: {
			types.KindSprite, types.KindTransform, types.KindCollider,
			types.KindControllable,
		},
		types.ArchetypeWall: {
			types.KindSprite, types.KindTransform, types.KindCollider,
		},
		types.ArchetypeBrick: {
			types.KindSprite, types.KindTransform, types.KindCollider,
			types.KindDestructable,
		},
		types.ArchetypeScore: {
			types.KindSprite, types.KindTransform,
		},
	}
}

// NewMatrix 根据表格构建适用性矩阵
// 表格中未出现的类别不允许任何组件种类
func NewMatrix(table map[types.Archetype][]types.ComponentKind) (*Matrix, error) {
	m := &Matrix{}
	for archetype, kinds := range table {
		if !archetype.Valid() {
			return nil, fmt.Errorf("invalid archetype %d in applicability table", archetype)
		}
		for _, kind := range kinds {
			if !kind.Valid() {
				return nil, fmt.Errorf("invalid component kind %d for %s", kind, archetype)
			}
			m.permitted[archetype] |= kindBit(kind)
		}
	}
	return m, nil
}

// Permits 判断类别是否允许携带该组件种类
func (m *Matrix) Permits(archetype types.Archetype, kind types.ComponentKind) bool {
	if !archetype.Valid() || !kind.Valid() {
		return false
	}
	return m.permitted[archetype]&kindBit(kind) != 0
}

// KindsOf 按规范顺序返回类别允许的组件种类
func (m *Matrix) KindsOf(archetype types.Archetype) []types.ComponentKind {
	kinds := make([]types.ComponentKind, 0, len(types.AllComponentKinds))
	for _, kind := range types.AllComponentKinds {
		if m.Permits(archetype, kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// CellCount 返回矩阵中允许的 (类别, 组件种类) 组合数量（即按钮数量）
func (m *Matrix) CellCount() int {
	count := 0
	for _, archetype := range types.AllArchetypes {
		count += len(m.KindsOf(archetype))
	}
	return count
}

func kindBit(kind types.ComponentKind) uint16 {
	return 1 << uint(kind)
}
