package components

// TransformComponent 存储实体在竞技场中的位置和尺寸
//
// 坐标系：原点在竞技场中心，X 轴向右、Y 轴向上（与屏幕坐标相反），
// 渲染时由 RenderSystem 转换为屏幕坐标。X/Y 是实体中心点。
type TransformComponent struct {
	X, Y float64
	// Z 绘制层级，数值大的后绘制（球在最上层）
	Z float64
	// Width, Height 实体尺寸（像素）
	Width, Height float64
}
