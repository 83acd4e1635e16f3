package components

// LabelComponent 屏幕空间的文字标签（如按钮网格的行列标题）
type LabelComponent struct {
	Text string
	X, Y float64 // 文字左上角的屏幕坐标
}
