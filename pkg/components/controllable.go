package components

// ControllableComponent 标记实体可以被键盘左右方向键控制
type ControllableComponent struct {
	Speed   float64 // 移动速度（像素/秒）
	Padding float64 // 与墙之间保留的最小间距（像素）
}
