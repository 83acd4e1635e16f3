// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供竞技场坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **竞技场坐标**：原点在竞技场中心，X 轴向右、Y 轴向上（TransformComponent 使用）
//   - **屏幕坐标**：原点在窗口左上角，Y 轴向下（Ebiten 默认行为）
//   - **实体锚点**：TransformComponent.X/Y 是实体的中心点
//
// # 核心转换公式
//
//	screenX = originX + arenaX
//	screenY = originY - arenaY
//
// 其中 originX/originY 是竞技场中心在屏幕上的位置（来自 ArenaConfig）。
package utils

// ArenaToScreen 竞技场坐标 → 屏幕坐标
func ArenaToScreen(arenaX, arenaY, originX, originY float64) (screenX, screenY float64) {
	return originX + arenaX, originY - arenaY
}

// ScreenToArena 屏幕坐标 → 竞技场坐标
func ScreenToArena(screenX, screenY, originX, originY float64) (arenaX, arenaY float64) {
	return screenX - originX, originY - screenY
}

// RectTopLeft 计算中心锚点矩形在屏幕上的左上角
// 参数是竞技场坐标下的中心点和尺寸
func RectTopLeft(centerX, centerY, width, height, originX, originY float64) (x, y float64) {
	sx, sy := ArenaToScreen(centerX, centerY, originX, originY)
	return sx - width/2, sy - height/2
}
