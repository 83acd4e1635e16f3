package components

import "github.com/decker502/breakout/pkg/types"

// ButtonState 定义开关按钮的交互状态
type ButtonState int

const (
	// ButtonIdle 空闲
	ButtonIdle ButtonState = iota
	// ButtonPressed 指针在按钮内按下，尚未释放
	ButtonPressed
)

// ToggleButtonComponent 开关按钮组件（ECS 架构）
// 每个按钮绑定唯一的 (类别, 组件种类) 组合
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 按钮颜色完全由聚合开关状态决定，Hovered 只影响外观
//   - 交互是边沿触发的：按下→在按钮内释放才算一次点击
type ToggleButtonComponent struct {
	// Archetype, Kind 按钮控制的组合
	Archetype types.Archetype
	Kind      types.ComponentKind

	// Applicable 组合是否在适用性矩阵中
	// 不适用的按钮只在完整网格模式下创建，点击不会改变任何状态
	Applicable bool

	// X, Y 按钮左上角的屏幕坐标
	X, Y float64
	// Width, Height 按钮尺寸（像素）
	Width, Height float64

	// State 当前交互状态
	State ButtonState
	// Hovered 指针是否悬停在按钮上（仅用于外观）
	Hovered bool
}
