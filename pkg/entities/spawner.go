package entities

import (
	"fmt"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"go.uber.org/zap"
)

// Spawner 生成带类别的实体并注册到开关索引
//
// 生成的实体会带上类别允许的全部组件：工厂未提供的种类用零值补齐，
// 这样之后任意开关都有数据可以停放和恢复。
type Spawner struct {
	em     *ecs.EntityManager
	matrix *toggle.Matrix
	index  *toggle.Index
	logger *zap.Logger
}

// NewSpawner 创建实体生成器
func NewSpawner(em *ecs.EntityManager, matrix *toggle.Matrix, index *toggle.Index, logger *zap.Logger) *Spawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Spawner{
		em:     em,
		matrix: matrix,
		index:  index,
		logger: logger.Named("spawner"),
	}
}

// EntityManager 返回生成器使用的实体管理器
func (s *Spawner) EntityManager() *ecs.EntityManager {
	return s.em
}

// Spawn 创建实体、挂载组件并注册到索引
//
// 参数：
//   - archetype: 实体类别
//   - comps: 组件（指针），类别不允许的组件种类会被丢弃
//
// 注册失败时实体会被标记删除并返回错误。
func (s *Spawner) Spawn(archetype types.Archetype, comps ...any) (ecs.EntityID, error) {
	if !archetype.Valid() {
		return 0, fmt.Errorf("spawn: invalid archetype %d", archetype)
	}

	id := s.em.CreateEntity()
	s.em.AddComponent(id, &components.ArchetypeComponent{Archetype: archetype})

	for _, comp := range comps {
		kind, ok := KindOf(comp)
		if ok && !s.matrix.Permits(archetype, kind) {
			s.logger.Debug("丢弃类别不允许的组件",
				zap.Stringer("archetype", archetype),
				zap.Stringer("kind", kind))
			continue
		}
		s.em.AddComponent(id, comp)
	}

	// 补齐缺失的组件种类
	for _, kind := range s.matrix.KindsOf(archetype) {
		t, _ := ComponentTypeOf(kind)
		if s.em.HasComponent(id, t) {
			continue
		}
		zero, _ := NewZeroComponent(kind)
		s.em.AddComponent(id, zero)
	}

	if err := s.index.Register(id, archetype); err != nil {
		s.em.DestroyEntity(id)
		return 0, fmt.Errorf("spawn %s: %w", archetype, err)
	}
	return id, nil
}
