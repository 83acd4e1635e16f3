package components

import "image/color"

// SpriteComponent 存储实体的视觉表现
// 原型阶段所有实体都绘制为纯色矩形，尺寸取自 TransformComponent
type SpriteComponent struct {
	Color color.RGBA
}
