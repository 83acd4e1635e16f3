package toggle

import (
	"errors"
	"testing"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

// TestToggleInvalidLeavesStateUnchanged 不适用的组合不改变任何状态
func TestToggleInvalidLeavesStateUnchanged(t *testing.T) {
	b := newTestBoard()
	for _, a := range types.AllArchetypes {
		b.spawnArchetype(a)
	}

	for _, archetype := range types.AllArchetypes {
		for _, kind := range types.AllComponentKinds {
			if b.matrix.Permits(archetype, kind) {
				continue
			}
			before := b.snapshotStates(archetype)
			vaultBefore := b.vault.Len()

			err := b.controller.Toggle(archetype, kind)
			if !errors.Is(err, ErrInvalidToggle) {
				t.Errorf("Toggle(%s, %s): expected ErrInvalidToggle, got %v", archetype, kind, err)
			}
			if b.controller.IsParked(archetype, kind) {
				t.Errorf("Toggle(%s, %s) changed the aggregate", archetype, kind)
			}
			if b.vault.Len() != vaultBefore {
				t.Errorf("Toggle(%s, %s) changed the vault", archetype, kind)
			}
			assertSameStates(t, before, b.snapshotStates(archetype))
		}
	}
}

// TestToggleBallVelocity 停放再恢复球的速度，数据完全不变
func TestToggleBallVelocity(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	original, _ := b.host.Peek(ball, types.KindVelocity)

	if err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !b.controller.IsParked(types.ArchetypeBall, types.KindVelocity) {
		t.Error("Aggregate should be Parked after first toggle")
	}
	if _, live := b.host.Peek(ball, types.KindVelocity); live {
		t.Error("Velocity should be detached from the ball")
	}
	if b.vault.CountFor(ball) != 1 {
		t.Errorf("Vault CountFor(ball) = %d, want 1", b.vault.CountFor(ball))
	}

	if err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	restored, live := b.host.Peek(ball, types.KindVelocity)
	if !live {
		t.Fatal("Velocity should be reattached")
	}
	vel := restored.(*testVelocity)
	if restored != original || vel.X != 0.5*400 || vel.Y != -0.5*400 {
		t.Errorf("Restored velocity = %+v, want (200, -200)", vel)
	}
}

// TestTogglePairIsIdentity 连续两次开关恢复所有状态和保险库内容
func TestTogglePairIsIdentity(t *testing.T) {
	b := newTestBoard()
	for _, a := range types.AllArchetypes {
		b.spawnArchetype(a)
		b.spawnArchetype(a)
	}
	// 先停放一个组合，让起点不是全激活
	_ = b.controller.Toggle(types.ArchetypeBrick, types.KindSprite)

	for _, archetype := range types.AllArchetypes {
		for _, kind := range b.matrix.KindsOf(archetype) {
			before := b.snapshotStates(archetype)
			vaultBefore := b.vault.Len()
			parkedBefore := b.controller.IsParked(archetype, kind)

			if err := b.controller.Toggle(archetype, kind); err != nil {
				t.Fatalf("Toggle(%s, %s) error: %v", archetype, kind, err)
			}
			if err := b.controller.Toggle(archetype, kind); err != nil {
				t.Fatalf("Toggle(%s, %s) error: %v", archetype, kind, err)
			}

			assertSameStates(t, before, b.snapshotStates(archetype))
			if b.vault.Len() != vaultBefore {
				t.Errorf("%s/%s: vault Len() = %d, want %d", archetype, kind, b.vault.Len(), vaultBefore)
			}
			if b.controller.IsParked(archetype, kind) != parkedBefore {
				t.Errorf("%s/%s: aggregate changed", archetype, kind)
			}
		}
	}
}

// TestDespawnWithParkedComponentsDoesNotLeak 销毁带停放组件的实体后保险库中没有残留
func TestDespawnWithParkedComponentsDoesNotLeak(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)

	b.host.despawn(ball)
	b.index.Unregister(ball)

	if n := b.vault.CountFor(ball); n != 0 {
		t.Errorf("Vault CountFor(ball) = %d after despawn, want 0", n)
	}
}

// TestToggleSkipsStaleEntity 宿主已销毁但尚未注销的实体被当作空操作并清理
func TestToggleSkipsStaleEntity(t *testing.T) {
	b := newTestBoard()
	stale := b.spawnArchetype(types.ArchetypeBall)
	live := b.spawnArchetype(types.ArchetypeBall)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)

	b.host.despawn(stale)

	if err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if b.index.Tracks(stale) {
		t.Error("Stale entity should be purged from the index")
	}
	if b.vault.CountFor(stale) != 0 {
		t.Error("Stale entity should be purged from the vault")
	}
	if state, _ := b.index.StateOf(live, types.KindVelocity); state.Status != StatusActive {
		t.Errorf("Live ball status = %s, want Active", state.Status)
	}
}

// TestStateOfStaleEntity 查询宿主已销毁的实体返回 ErrUnknownEntity 并清理条目
func TestStateOfStaleEntity(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)

	b.host.despawn(ball)

	state, err := b.index.StateOf(ball, types.KindVelocity)
	if !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("StateOf(stale) = %v, %v, want ErrUnknownEntity", state, err)
	}
	if b.index.Tracks(ball) {
		t.Error("Stale entity should be purged from the index")
	}
	if b.vault.CountFor(ball) != 0 {
		t.Error("Stale entity should be purged from the vault")
	}
	if b.index.Count(types.ArchetypeBall) != 0 {
		t.Errorf("Ball count = %d, want 0", b.index.Count(types.ArchetypeBall))
	}
}

// TestToggleVaultConflictAbortsSingleStep 保险库冲突只中止当前实体
func TestToggleVaultConflictAbortsSingleStep(t *testing.T) {
	b := newTestBoard()
	first := b.spawnArchetype(types.ArchetypeBall)
	broken := b.spawnArchetype(types.ArchetypeBall)
	last := b.spawnArchetype(types.ArchetypeBall)

	// 人为制造不一致：保险库已有 broken 的 Velocity
	stray := &testVelocity{X: 1}
	if err := b.vault.Park(broken, types.KindVelocity, stray); err != nil {
		t.Fatalf("Park error: %v", err)
	}
	live, _ := b.host.Peek(broken, types.KindVelocity)

	err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)
	if !errors.Is(err, ErrAlreadyParked) {
		t.Fatalf("Expected ErrAlreadyParked, got %v", err)
	}

	// 出错的实体保持原状
	if got, ok := b.host.Peek(broken, types.KindVelocity); !ok || got != live {
		t.Error("Broken entity must keep its live Velocity")
	}
	if state, _ := b.index.StateOf(broken, types.KindVelocity); state.Status != StatusActive {
		t.Errorf("Broken entity status = %s, want Active", state.Status)
	}
	if got, _ := b.vault.Peek(broken, types.KindVelocity); got != stray {
		t.Error("Stray vault entry must not be overwritten")
	}

	// 前后的实体都已处理
	for _, id := range []ecs.EntityID{first, last} {
		if state, _ := b.index.StateOf(id, types.KindVelocity); state.Status != StatusParked {
			t.Errorf("Entity %d status = %s, want Parked", id, state.Status)
		}
	}
}

// TestToggleAttachFailureKeepsPayloadParked 挂回失败时数据留在保险库
func TestToggleAttachFailureKeepsPayloadParked(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)
	parked, _ := b.vault.Peek(ball, types.KindVelocity)

	b.host.failAttach = true
	if err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity); err == nil {
		t.Fatal("Expected error when host refuses attach")
	}

	state, _ := b.index.StateOf(ball, types.KindVelocity)
	if state.Status != StatusParked || state.Payload != parked {
		t.Errorf("Ball should stay Parked with original payload, got %s %v", state.Status, state.Payload)
	}
}

func TestApplyAndReset(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	paddle := b.spawnArchetype(types.ArchetypePaddle)

	var events []string
	b.controller.OnToggle(func(a types.Archetype, k types.ComponentKind, parked bool) {
		events = append(events, a.String()+"/"+k.String())
	})

	preset := Preset{
		types.ArchetypeBall:   {types.KindVelocity},
		types.ArchetypePaddle: {types.KindControllable},
		types.ArchetypeWall:   {types.KindVelocity}, // 不适用，忽略
	}
	if err := b.controller.Apply(preset); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 toggle events, got %v", events)
	}
	if state, _ := b.index.StateOf(ball, types.KindVelocity); state.Status != StatusParked {
		t.Error("Ball Velocity should be Parked after Apply")
	}
	if state, _ := b.index.StateOf(paddle, types.KindControllable); state.Status != StatusParked {
		t.Error("Paddle Controllable should be Parked after Apply")
	}

	snapshot := b.controller.Snapshot()
	if !snapshot.Contains(types.ArchetypeBall, types.KindVelocity) || len(snapshot) != 2 {
		t.Errorf("Snapshot() = %v", snapshot)
	}

	// 重复应用是空操作
	if err := b.controller.Apply(preset); err != nil || len(events) != 2 {
		t.Errorf("Re-applying preset should not toggle, events = %v", events)
	}

	if err := b.controller.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if len(b.controller.Snapshot()) != 0 || b.vault.Len() != 0 {
		t.Error("Reset should restore every parked component")
	}
}

func assertSameStates(t *testing.T, want, got map[ecs.EntityID]map[types.ComponentKind]ToggleState) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("entity count = %d, want %d", len(got), len(want))
	}
	for id, kinds := range want {
		for kind, state := range kinds {
			if got[id][kind] != state {
				t.Errorf("entity %d %s: state = %+v, want %+v", id, kind, got[id][kind], state)
			}
		}
	}
}
