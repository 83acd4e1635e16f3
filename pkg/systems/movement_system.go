package systems

import (
	"math"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
)

// MovementSystem 用速度积分位置
//
// 只处理同时带有 VelocityComponent 和 TransformComponent 的实体：
// 停放 Velocity 的球会停在原地，恢复后按原速度继续移动。
// 碰撞响应不在原型范围内，离开竞技场的实体从对侧重新进入。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	arena         config.ArenaBounds
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, arena config.ArenaBounds) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		arena:         arena,
	}
}

// Update 按 deltaTime 推进所有运动实体
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.VelocityComponent, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		tr.X = wrap(tr.X+vel.VX*deltaTime, s.arena.LeftWall, s.arena.RightWall)
		tr.Y = wrap(tr.Y+vel.VY*deltaTime, s.arena.BottomWall, s.arena.TopWall)
	}
}

// wrap 把越过 [lo, hi] 的坐标折回对侧
// 非有限值放回区间中点
func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 || (v >= lo && v <= hi) {
		return v
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo + span/2
	}
	r := math.Mod(v-lo, span)
	if r < 0 {
		r += span
	}
	return lo + r
}
