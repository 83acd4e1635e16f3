package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 由 SceneManager 驱动的场景
type Scene interface {
	// Update 推进一个固定 tick，deltaTime 为 tick 长度（秒）
	Update(deltaTime float64)
	// Draw 绘制到逻辑屏幕
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景被替换（F5 重新生成）或程序退出前保存状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，调用方只记录日志
	SaveOnExit() bool
}
