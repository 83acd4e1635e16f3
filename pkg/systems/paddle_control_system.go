package systems

import (
	"math"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// PaddleControlSystem 用左右方向键移动可控实体
//
// 只处理同时带有 ControllableComponent 和 TransformComponent 的实体，
// 停放 Controllable 后挡板不再响应键盘。
// 移动范围被限制在两面墙之间，并与墙保留 Padding 的间距。
type PaddleControlSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	arena         config.ArenaBounds
}

// NewPaddleControlSystem 创建挡板控制系统
func NewPaddleControlSystem(em *ecs.EntityManager, input InputSource, arena config.ArenaBounds) *PaddleControlSystem {
	return &PaddleControlSystem{
		entityManager: em,
		input:         input,
		arena:         arena,
	}
}

// Update 读取方向键并移动可控实体
func (s *PaddleControlSystem) Update(deltaTime float64) {
	direction := 0.0
	if s.input.KeyPressed(ebiten.KeyArrowLeft) {
		direction -= 1
	}
	if s.input.KeyPressed(ebiten.KeyArrowRight) {
		direction += 1
	}
	if direction == 0 {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.ControllableComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		ctrl, _ := ecs.GetComponent[*components.ControllableComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		left, right := s.arena.PaddleRange(tr.Width, ctrl.Padding)
		x := tr.X + direction*ctrl.Speed*deltaTime
		tr.X = math.Max(left, math.Min(right, x))
	}
}
