package systems

import (
	"github.com/decker502/breakout/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerDown 指针按下（鼠标左键或触摸开始）
	PointerDown PointerEventType = iota
	// PointerUp 指针释放
	PointerUp
)

// PointerEvent 一帧内发生的指针事件（屏幕坐标）
type PointerEvent struct {
	Type PointerEventType
	X, Y int
}

// InputSource 每帧的输入快照
// 系统只通过这个接口读取输入，测试时可以用脚本化的实现替换
type InputSource interface {
	// PointerEvents 返回本帧发生的按下/释放事件（按发生顺序）
	PointerEvents() []PointerEvent
	// Cursor 返回当前指针位置（用于悬停）
	Cursor() (x, y int)
	// KeyJustPressed 按键是否在本帧按下
	KeyJustPressed(key ebiten.Key) bool
	// KeyPressed 按键是否处于按下状态
	KeyPressed(key ebiten.Key) bool
}

// EbitenInput 基于 ebiten 的输入源（鼠标 + 触摸）
type EbitenInput struct {
	pointer utils.PointerTracker
	events  []PointerEvent
}

// NewEbitenInput 创建 ebiten 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// PointerEvents 返回本帧的指针事件
// 同一帧内既按下又释放时，按下事件在前
func (in *EbitenInput) PointerEvents() []PointerEvent {
	in.events = in.events[:0]
	if pressed, x, y := in.pointer.JustPressed(); pressed {
		in.events = append(in.events, PointerEvent{Type: PointerDown, X: x, Y: y})
	}
	if released, x, y := in.pointer.JustReleased(); released {
		in.events = append(in.events, PointerEvent{Type: PointerUp, X: x, Y: y})
	}
	in.pointer.Track()
	return in.events
}

// Cursor 返回当前指针位置
func (in *EbitenInput) Cursor() (int, int) {
	return in.pointer.Position()
}

// KeyJustPressed 按键是否在本帧按下
func (in *EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// KeyPressed 按键是否处于按下状态
func (in *EbitenInput) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}
