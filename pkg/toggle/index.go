package toggle

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
	"go.uber.org/zap"
)

// Status 组件在实体上的开关状态
type Status int

const (
	// StatusActive 组件挂载在实体上并参与系统运算
	StatusActive Status = iota
	// StatusParked 组件已摘除，数据保存在保险库中
	StatusParked
)

// String 返回状态的字符串表示
func (s Status) String() string {
	if s == StatusParked {
		return "Parked"
	}
	return "Active"
}

// ToggleState 某个 (实体, 组件种类) 的状态
// Active 时 Payload 是实体上挂载的组件，Parked 时是保险库中保存的数据
type ToggleState struct {
	Status  Status
	Payload any
}

// entry 是索引中单个实体的记录
type entry struct {
	archetype types.Archetype
	states    map[types.ComponentKind]Status
}

// Index 实体索引
// 按类别分组跟踪所有存活实体，并记录每个实体每种组件的开关状态
type Index struct {
	matrix    *Matrix
	vault     *Vault
	host      ComponentHost
	aggregate *AggregateTable
	logger    *zap.Logger

	entries     map[ecs.EntityID]*entry
	byArchetype map[types.Archetype][]ecs.EntityID
}

// NewIndex 创建实体索引
//
// 参数：
//   - matrix: 适用性矩阵
//   - vault: 组件保险库（Unregister 时清理）
//   - host: 宿主引擎组件原语
//   - aggregate: 聚合开关表（Register 时读取）
//   - logger: 日志，可为 nil
func NewIndex(matrix *Matrix, vault *Vault, host ComponentHost, aggregate *AggregateTable, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{
		matrix:      matrix,
		vault:       vault,
		host:        host,
		aggregate:   aggregate,
		logger:      logger.Named("index"),
		entries:     make(map[ecs.EntityID]*entry),
		byArchetype: make(map[types.Archetype][]ecs.EntityID),
	}
}

// Register 开始跟踪实体
//
// 为类别允许的每种组件初始化状态，默认采用聚合开关表当前的状态：
// 若该组件种类已处于停放状态，则立即从实体上摘除并存入保险库。
// 任何一步失败都会回滚本次已停放的组件，实体保持未注册。
func (idx *Index) Register(entity ecs.EntityID, archetype types.Archetype) error {
	if _, exists := idx.entries[entity]; exists {
		return fmt.Errorf("%w: entity %d", ErrAlreadyRegistered, entity)
	}
	if !idx.host.Exists(entity) {
		return fmt.Errorf("%w: entity %d", ErrUnknownEntity, entity)
	}
	if !archetype.Valid() {
		return fmt.Errorf("register entity %d: invalid archetype %d", entity, archetype)
	}

	e := &entry{
		archetype: archetype,
		states:    make(map[types.ComponentKind]Status),
	}

	for _, kind := range idx.matrix.KindsOf(archetype) {
		if _, ok := idx.host.Peek(entity, kind); !ok {
			idx.rollbackRegister(entity, e)
			return fmt.Errorf("register entity %d (%s): %w: %s", entity, archetype, ErrComponentMissing, kind)
		}

		if !idx.aggregate.IsParked(archetype, kind) {
			e.states[kind] = StatusActive
			continue
		}

		payload, err := idx.host.Detach(entity, kind)
		if err != nil {
			idx.rollbackRegister(entity, e)
			return fmt.Errorf("register entity %d (%s): %w", entity, archetype, err)
		}
		if err := idx.vault.Park(entity, kind, payload); err != nil {
			_ = idx.host.Attach(entity, kind, payload)
			idx.rollbackRegister(entity, e)
			return fmt.Errorf("register entity %d (%s): %w", entity, archetype, err)
		}
		e.states[kind] = StatusParked
	}

	idx.entries[entity] = e
	// 实体ID单调递增，追加即保持升序
	ids := idx.byArchetype[archetype]
	if n := len(ids); n > 0 && ids[n-1] > entity {
		pos, _ := slices.BinarySearch(ids, entity)
		idx.byArchetype[archetype] = slices.Insert(ids, pos, entity)
	} else {
		idx.byArchetype[archetype] = append(ids, entity)
	}

	idx.logger.Debug("实体已注册",
		zap.Uint64("entity", uint64(entity)),
		zap.Stringer("archetype", archetype),
		zap.Int("parked", idx.vault.CountFor(entity)))
	return nil
}

// rollbackRegister 把注册过程中已停放的组件挂回实体
func (idx *Index) rollbackRegister(entity ecs.EntityID, e *entry) {
	for kind, status := range e.states {
		if status != StatusParked {
			continue
		}
		payload, err := idx.vault.Restore(entity, kind)
		if err != nil {
			continue
		}
		_ = idx.host.Attach(entity, kind, payload)
	}
}

// Unregister 停止跟踪实体并清理它在保险库中的全部条目
// 未跟踪的实体直接忽略
func (idx *Index) Unregister(entity ecs.EntityID) {
	e, exists := idx.entries[entity]
	if !exists {
		idx.vault.Purge(entity)
		return
	}
	delete(idx.entries, entity)

	ids := idx.byArchetype[e.archetype]
	if pos, found := slices.BinarySearch(ids, entity); found {
		idx.byArchetype[e.archetype] = slices.Delete(ids, pos, pos+1)
	}

	purged := idx.vault.CountFor(entity)
	idx.vault.Purge(entity)

	idx.logger.Debug("实体已注销",
		zap.Uint64("entity", uint64(entity)),
		zap.Stringer("archetype", e.archetype),
		zap.Int("purged", purged))
}

// EntitiesOf 返回某个类别的全部实体（按ID升序）
//
// 序列是惰性的、可重复迭代的；每次迭代开始时对成员取快照，
// 因此迭代过程中注销实体是安全的（已注销的实体可能仍会被产出一次，调用者需检查）。
func (idx *Index) EntitiesOf(archetype types.Archetype) iter.Seq[ecs.EntityID] {
	return func(yield func(ecs.EntityID) bool) {
		for _, id := range slices.Clone(idx.byArchetype[archetype]) {
			if !yield(id) {
				return
			}
		}
	}
}

// StateOf 返回 (实体, 组件种类) 的当前状态
func (idx *Index) StateOf(entity ecs.EntityID, kind types.ComponentKind) (ToggleState, error) {
	e, exists := idx.entries[entity]
	if !exists {
		return ToggleState{}, fmt.Errorf("%w: entity %d", ErrUnknownEntity, entity)
	}
	if !idx.host.Exists(entity) {
		// 宿主已销毁但尚未注销：清理过期条目
		idx.Unregister(entity)
		return ToggleState{}, fmt.Errorf("%w: entity %d no longer exists", ErrUnknownEntity, entity)
	}
	status, applicable := e.states[kind]
	if !applicable {
		return ToggleState{}, fmt.Errorf("%w: entity %d (%s) kind %s", ErrNotApplicable, entity, e.archetype, kind)
	}

	if status == StatusParked {
		payload, _ := idx.vault.Peek(entity, kind)
		return ToggleState{Status: StatusParked, Payload: payload}, nil
	}
	payload, _ := idx.host.Peek(entity, kind)
	return ToggleState{Status: StatusActive, Payload: payload}, nil
}

// ArchetypeOf 返回实体的类别
func (idx *Index) ArchetypeOf(entity ecs.EntityID) (types.Archetype, bool) {
	e, exists := idx.entries[entity]
	if !exists {
		return types.ArchetypeUnknown, false
	}
	return e.archetype, true
}

// Tracks 判断实体是否被跟踪
func (idx *Index) Tracks(entity ecs.EntityID) bool {
	_, exists := idx.entries[entity]
	return exists
}

// Count 返回某个类别的实体数量
func (idx *Index) Count(archetype types.Archetype) int {
	return len(idx.byArchetype[archetype])
}

// Len 返回被跟踪的实体总数
func (idx *Index) Len() int {
	return len(idx.entries)
}

// drive 把单个实体的某种组件推进到目标状态
// 失败时该实体状态保持不变
func (idx *Index) drive(entity ecs.EntityID, kind types.ComponentKind, parked bool) error {
	e, exists := idx.entries[entity]
	if !exists {
		return nil
	}
	if !idx.host.Exists(entity) {
		// 实体已被宿主销毁但尚未注销：清理过期条目
		idx.logger.Debug("清理过期实体", zap.Uint64("entity", uint64(entity)))
		idx.Unregister(entity)
		return nil
	}

	status, applicable := e.states[kind]
	if !applicable {
		return fmt.Errorf("%w: entity %d (%s) kind %s", ErrNotApplicable, entity, e.archetype, kind)
	}

	switch {
	case parked && status == StatusActive:
		payload, err := idx.host.Detach(entity, kind)
		if err != nil {
			return fmt.Errorf("park %s on entity %d: %w", kind, entity, err)
		}
		if err := idx.vault.Park(entity, kind, payload); err != nil {
			if attachErr := idx.host.Attach(entity, kind, payload); attachErr != nil {
				err = errors.Join(err, attachErr)
			}
			return fmt.Errorf("park %s on entity %d: %w", kind, entity, err)
		}
		e.states[kind] = StatusParked

	case !parked && status == StatusParked:
		payload, err := idx.vault.Restore(entity, kind)
		if err != nil {
			return fmt.Errorf("restore %s on entity %d: %w", kind, entity, err)
		}
		if err := idx.host.Attach(entity, kind, payload); err != nil {
			if parkErr := idx.vault.Park(entity, kind, payload); parkErr != nil {
				err = errors.Join(err, parkErr)
			}
			return fmt.Errorf("restore %s on entity %d: %w", kind, entity, err)
		}
		e.states[kind] = StatusActive
	}
	return nil
}
