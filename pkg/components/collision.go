package components

// ColliderComponent 定义实体的碰撞检测边界框
// 碰撞响应不在原型范围内，组件只承载数据以便被开关
type ColliderComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体中心的X偏移量（像素）
	OffsetY float64 // 碰撞盒相对于实体中心的Y偏移量（像素）
}
