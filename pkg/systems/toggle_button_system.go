package systems

import (
	"errors"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"github.com/decker502/breakout/pkg/utils"
	"go.uber.org/zap"
)

// Toggler 接收开关请求（由 toggle.Controller 实现）
type Toggler interface {
	Toggle(archetype types.Archetype, kind types.ComponentKind) error
}

// ToggleButtonSystem 开关按钮交互系统
//
// 每个按钮是一个边沿触发的状态机：
//
//	Idle --(在按钮内按下)--> Pressed --(在按钮内释放)--> 触发一次 Toggle --> Idle
//	                          Pressed --(在按钮外释放)--> Idle（取消）
//
// 按住不放不会重复触发；悬停只影响外观。
type ToggleButtonSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	toggler       Toggler
	logger        *zap.Logger
}

// NewToggleButtonSystem 创建开关按钮交互系统
func NewToggleButtonSystem(em *ecs.EntityManager, input InputSource, toggler Toggler, logger *zap.Logger) *ToggleButtonSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToggleButtonSystem{
		entityManager: em,
		input:         input,
		toggler:       toggler,
		logger:        logger.Named("buttons"),
	}
}

// Update 处理本帧的指针事件
func (s *ToggleButtonSystem) Update(deltaTime float64) {
	buttons := ecs.GetEntitiesWith1[*components.ToggleButtonComponent](s.entityManager)
	if len(buttons) == 0 {
		return
	}

	cx, cy := s.input.Cursor()
	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		btn.Hovered = contains(btn, cx, cy)
	}

	for _, ev := range s.input.PointerEvents() {
		switch ev.Type {
		case PointerDown:
			s.handleDown(buttons, ev.X, ev.Y)
		case PointerUp:
			s.handleUp(buttons, ev.X, ev.Y)
		}
	}
}

// handleDown 按下：指针下的按钮进入 Pressed
func (s *ToggleButtonSystem) handleDown(buttons []ecs.EntityID, x, y int) {
	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		if contains(btn, x, y) {
			btn.State = components.ButtonPressed
		} else {
			btn.State = components.ButtonIdle
		}
	}
}

// handleUp 释放：Pressed 的按钮若仍在指针下则触发一次开关，然后全部回到 Idle
func (s *ToggleButtonSystem) handleUp(buttons []ecs.EntityID, x, y int) {
	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		if btn.State != components.ButtonPressed {
			continue
		}
		btn.State = components.ButtonIdle
		if !contains(btn, x, y) {
			s.logger.Debug("点击已取消",
				zap.Stringer("archetype", btn.Archetype),
				zap.Stringer("kind", btn.Kind))
			continue
		}
		s.activate(btn)
	}
}

// activate 把点击转发给开关控制器
func (s *ToggleButtonSystem) activate(btn *components.ToggleButtonComponent) {
	err := s.toggler.Toggle(btn.Archetype, btn.Kind)
	switch {
	case err == nil:
	case errors.Is(err, toggle.ErrInvalidToggle):
		s.logger.Debug("不适用的组合", zap.Error(err))
	default:
		s.logger.Warn("开关未完全生效", zap.Error(err))
	}
}

func contains(btn *components.ToggleButtonComponent, x, y int) bool {
	return utils.PointInRect(float64(x), float64(y), btn.X, btn.Y, btn.Width, btn.Height)
}
