// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Archetype 定义实体的类别（生成时确定，之后不可变）
type Archetype int

const (
	// ArchetypeUnknown 未知类别
	ArchetypeUnknown Archetype = iota
	// ArchetypeBall 球
	ArchetypeBall
	// ArchetypePaddle 挡板
	ArchetypePaddle
	// ArchetypeWall 墙
	ArchetypeWall
	// ArchetypeBrick 砖块
	ArchetypeBrick
	// ArchetypeScore 计分板
	ArchetypeScore
)

// AllArchetypes 按按钮网格的列顺序列出所有有效类别
var AllArchetypes = []Archetype{
	ArchetypeBall,
	ArchetypePaddle,
	ArchetypeWall,
	ArchetypeBrick,
	ArchetypeScore,
}

// String 返回类别的字符串表示
func (a Archetype) String() string {
	switch a {
	case ArchetypeBall:
		return "Ball"
	case ArchetypePaddle:
		return "Paddle"
	case ArchetypeWall:
		return "Wall"
	case ArchetypeBrick:
		return "Brick"
	case ArchetypeScore:
		return "Score"
	default:
		return "Unknown"
	}
}

// Valid 判断是否为有效类别
func (a Archetype) Valid() bool {
	return a >= ArchetypeBall && a <= ArchetypeScore
}

// ParseArchetype 将名称解析为类别（用于 YAML 配置和存档）
func ParseArchetype(name string) (Archetype, error) {
	for _, a := range AllArchetypes {
		if a.String() == name {
			return a, nil
		}
	}
	return ArchetypeUnknown, fmt.Errorf("unknown archetype %q", name)
}
