package entities

import (
	"fmt"
	"reflect"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
)

// kindTypes 组件种类到 ECS 组件类型的映射
// 组件一律以指针形式存放，摘除和挂回时保持同一个指针
var kindTypes = map[types.ComponentKind]reflect.Type{
	types.KindSprite:       reflect.TypeOf(&components.SpriteComponent{}),
	types.KindTransform:    reflect.TypeOf(&components.TransformComponent{}),
	types.KindCollider:     reflect.TypeOf(&components.ColliderComponent{}),
	types.KindVelocity:     reflect.TypeOf(&components.VelocityComponent{}),
	types.KindControllable: reflect.TypeOf(&components.ControllableComponent{}),
	types.KindDestructor:   reflect.TypeOf(&components.DestructorComponent{}),
	types.KindDestructable: reflect.TypeOf(&components.DestructableComponent{}),
}

// ComponentTypeOf 返回组件种类对应的 ECS 组件类型
func ComponentTypeOf(kind types.ComponentKind) (reflect.Type, bool) {
	t, ok := kindTypes[kind]
	return t, ok
}

// KindOf 根据组件数据反查组件种类
func KindOf(component any) (types.ComponentKind, bool) {
	t := reflect.TypeOf(component)
	for kind, kt := range kindTypes {
		if kt == t {
			return kind, true
		}
	}
	return types.KindUnknown, false
}

// NewZeroComponent 创建某种组件的零值实例
func NewZeroComponent(kind types.ComponentKind) (any, bool) {
	t, ok := kindTypes[kind]
	if !ok {
		return nil, false
	}
	return reflect.New(t.Elem()).Interface(), true
}

// ComponentHost 把开关引擎的组件挂载原语桥接到 EntityManager
type ComponentHost struct {
	em *ecs.EntityManager
}

var _ toggle.ComponentHost = (*ComponentHost)(nil)

// NewComponentHost 创建组件宿主
func NewComponentHost(em *ecs.EntityManager) *ComponentHost {
	return &ComponentHost{em: em}
}

// Exists 实体是否仍然存在
func (h *ComponentHost) Exists(entity ecs.EntityID) bool {
	return h.em.EntityExists(entity)
}

// Attach 把组件数据原样挂回实体
// 数据类型必须与组件种类一致
func (h *ComponentHost) Attach(entity ecs.EntityID, kind types.ComponentKind, payload any) error {
	t, ok := kindTypes[kind]
	if !ok {
		return fmt.Errorf("attach: unsupported component kind %s", kind)
	}
	if reflect.TypeOf(payload) != t {
		return fmt.Errorf("attach %s to entity %d: payload type %T, want %s", kind, entity, payload, t)
	}
	if !h.em.EntityExists(entity) {
		return fmt.Errorf("attach %s: %w: entity %d", kind, toggle.ErrUnknownEntity, entity)
	}
	h.em.AddComponent(entity, payload)
	return nil
}

// Detach 从实体摘除组件并返回数据
func (h *ComponentHost) Detach(entity ecs.EntityID, kind types.ComponentKind) (any, error) {
	t, ok := kindTypes[kind]
	if !ok {
		return nil, fmt.Errorf("detach: unsupported component kind %s", kind)
	}
	payload, found := h.em.TakeComponent(entity, t)
	if !found {
		return nil, fmt.Errorf("detach from entity %d: %w: %s", entity, toggle.ErrComponentMissing, kind)
	}
	return payload, nil
}

// Peek 读取实体上挂载的组件数据
func (h *ComponentHost) Peek(entity ecs.EntityID, kind types.ComponentKind) (any, bool) {
	t, ok := kindTypes[kind]
	if !ok {
		return nil, false
	}
	return h.em.GetComponent(entity, t)
}
