package components

// ScoreComponent 计分板显示的文字
// 只有计分板同时带有 Sprite 和 Transform 时才会被绘制
type ScoreComponent struct {
	Label string
	Value int
}
