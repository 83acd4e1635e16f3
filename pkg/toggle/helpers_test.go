package toggle

import (
	"fmt"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

// testVelocity 测试用的速度数据
type testVelocity struct {
	X, Y float64
}

// fakeHost 是基于 map 的宿主引擎替身
type fakeHost struct {
	nextID     ecs.EntityID
	components map[ecs.EntityID]map[types.ComponentKind]any
	failAttach bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		nextID:     1,
		components: make(map[ecs.EntityID]map[types.ComponentKind]any),
	}
}

// spawn 创建带有指定组件的实体
func (h *fakeHost) spawn(payloads map[types.ComponentKind]any) ecs.EntityID {
	id := h.nextID
	h.nextID++
	h.components[id] = make(map[types.ComponentKind]any)
	for kind, payload := range payloads {
		h.components[id][kind] = payload
	}
	return id
}

func (h *fakeHost) despawn(id ecs.EntityID) {
	delete(h.components, id)
}

func (h *fakeHost) Exists(entity ecs.EntityID) bool {
	_, ok := h.components[entity]
	return ok
}

func (h *fakeHost) Attach(entity ecs.EntityID, kind types.ComponentKind, payload any) error {
	if h.failAttach {
		return fmt.Errorf("attach refused")
	}
	comps, ok := h.components[entity]
	if !ok {
		return fmt.Errorf("%w: entity %d", ErrUnknownEntity, entity)
	}
	comps[kind] = payload
	return nil
}

func (h *fakeHost) Detach(entity ecs.EntityID, kind types.ComponentKind) (any, error) {
	payload, ok := h.components[entity][kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComponentMissing, kind)
	}
	delete(h.components[entity], kind)
	return payload, nil
}

func (h *fakeHost) Peek(entity ecs.EntityID, kind types.ComponentKind) (any, bool) {
	payload, ok := h.components[entity][kind]
	return payload, ok
}

// testBoard 组装一套完整的开关引擎
type testBoard struct {
	host       *fakeHost
	matrix     *Matrix
	vault      *Vault
	aggregate  *AggregateTable
	index      *Index
	controller *Controller
}

func newTestBoard() *testBoard {
	b := &testBoard{
		host:      newFakeHost(),
		matrix:    DefaultMatrix(),
		vault:     NewVault(),
		aggregate: NewAggregateTable(),
	}
	b.index = NewIndex(b.matrix, b.vault, b.host, b.aggregate, nil)
	b.controller = NewController(b.matrix, b.index, b.aggregate, nil)
	return b
}

// spawnArchetype 生成一个带有类别全部允许组件的实体并注册
func (b *testBoard) spawnArchetype(archetype types.Archetype) ecs.EntityID {
	payloads := make(map[types.ComponentKind]any)
	for _, kind := range b.matrix.KindsOf(archetype) {
		payloads[kind] = fmt.Sprintf("%s-payload", kind)
	}
	if archetype == types.ArchetypeBall {
		payloads[types.KindVelocity] = &testVelocity{X: 0.5 * 400, Y: -0.5 * 400}
	}
	id := b.host.spawn(payloads)
	if err := b.index.Register(id, archetype); err != nil {
		panic(err)
	}
	return id
}

// snapshotStates 记录某个类别全部实体的 (状态, 数据)
func (b *testBoard) snapshotStates(archetype types.Archetype) map[ecs.EntityID]map[types.ComponentKind]ToggleState {
	result := make(map[ecs.EntityID]map[types.ComponentKind]ToggleState)
	for id := range b.index.EntitiesOf(archetype) {
		result[id] = make(map[types.ComponentKind]ToggleState)
		for _, kind := range b.matrix.KindsOf(archetype) {
			state, err := b.index.StateOf(id, kind)
			if err != nil {
				panic(err)
			}
			result[id][kind] = state
		}
	}
	return result
}
