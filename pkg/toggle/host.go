package toggle

import (
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

// ComponentHost 宿主引擎提供的组件挂载原语
// 开关引擎只通过这个接口摘除和挂回组件，不依赖具体的组件类型。
type ComponentHost interface {
	// Exists 实体是否仍然存在
	Exists(entity ecs.EntityID) bool
	// Attach 把组件数据挂回实体
	Attach(entity ecs.EntityID, kind types.ComponentKind, payload any) error
	// Detach 从实体摘除组件并返回其数据，组件不存在时返回 ErrComponentMissing
	Detach(entity ecs.EntityID, kind types.ComponentKind) (any, error)
	// Peek 读取实体上挂载的组件数据
	Peek(entity ecs.EntityID, kind types.ComponentKind) (any, bool)
}
