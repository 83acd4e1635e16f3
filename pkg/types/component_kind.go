package types

import "fmt"

// ComponentKind 定义可被开关的组件种类
type ComponentKind int

const (
	// KindUnknown 未知组件种类
	KindUnknown ComponentKind = iota
	// KindSprite 外观（纯色矩形）
	KindSprite
	// KindTransform 位置与尺寸
	KindTransform
	// KindCollider 碰撞体
	KindCollider
	// KindVelocity 速度
	KindVelocity
	// KindControllable 键盘可控
	KindControllable
	// KindDestructor 可摧毁其他实体
	KindDestructor
	// KindDestructable 可被摧毁
	KindDestructable
)

// AllComponentKinds 按按钮网格的行顺序列出所有有效组件种类
var AllComponentKinds = []ComponentKind{
	KindSprite,
	KindTransform,
	KindCollider,
	KindVelocity,
	KindControllable,
	KindDestructor,
	KindDestructable,
}

// String 返回组件种类的字符串表示
func (k ComponentKind) String() string {
	switch k {
	case KindSprite:
		return "Sprite"
	case KindTransform:
		return "Transform"
	case KindCollider:
		return "Collider"
	case KindVelocity:
		return "Velocity"
	case KindControllable:
		return "Controllable"
	case KindDestructor:
		return "Destructor"
	case KindDestructable:
		return "Destructable"
	default:
		return "Unknown"
	}
}

// Valid 判断是否为有效组件种类
func (k ComponentKind) Valid() bool {
	return k >= KindSprite && k <= KindDestructable
}

// ParseComponentKind 将名称解析为组件种类
func ParseComponentKind(name string) (ComponentKind, error) {
	for _, k := range AllComponentKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown component kind %q", name)
}
