package components

// DestructorComponent 标记实体可以摧毁带 DestructableComponent 的实体（如球）
type DestructorComponent struct {
	Damage int
}

// DestructableComponent 标记实体可以被摧毁（如砖块）
type DestructableComponent struct {
	Health int
	Points int // 被摧毁时的得分
}
