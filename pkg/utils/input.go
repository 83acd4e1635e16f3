// Package utils 提供通用工具函数
package utils

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerTracker 统一鼠标左键和触摸输入
//
// 只跟踪第一个按下的触点；其他手指在它抬起之前被忽略。
// 触点抬起的那一帧 ebiten 已经取不到它的位置，因此记录最后一次看到的位置。
type PointerTracker struct {
	touchID      ebiten.TouchID
	touching     bool
	lastX, lastY int
}

// Position 返回当前指针位置（跟踪中的触点优先，否则为鼠标位置）
func (p *PointerTracker) Position() (int, int) {
	if p.touching {
		return p.lastX, p.lastY
	}
	return ebiten.CursorPosition()
}

// JustPressed 本帧是否按下指针，返回按下位置
func (p *PointerTracker) JustPressed() (bool, int, int) {
	if !p.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			p.touchID = ids[0]
			p.touching = true
			p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
			return true, p.lastX, p.lastY
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// JustReleased 本帧是否释放指针，返回释放位置
func (p *PointerTracker) JustReleased() (bool, int, int) {
	if p.touching && slices.Contains(inpututil.AppendJustReleasedTouchIDs(nil), p.touchID) {
		p.touching = false
		return true, p.lastX, p.lastY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// Track 记录跟踪中触点的当前位置
// 每帧读取完按下/释放事件之后调用
func (p *PointerTracker) Track() {
	if p.touching {
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
	}
}

// PointInRect 判断点是否在矩形内（左上角 + 尺寸，含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
