package components

// VelocityComponent 实体的速度（像素/秒，Y 轴向上为正）
// MovementSystem 每个 tick 用它积分 TransformComponent
type VelocityComponent struct {
	VX, VY float64
}
