package toggle

import (
	"errors"
	"testing"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

func TestRegisterDefaultsActive(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)

	for _, kind := range b.matrix.KindsOf(types.ArchetypeBall) {
		state, err := b.index.StateOf(ball, kind)
		if err != nil {
			t.Fatalf("StateOf(%s) error: %v", kind, err)
		}
		if state.Status != StatusActive {
			t.Errorf("%s: status = %s, want Active", kind, state.Status)
		}
		if state.Payload == nil {
			t.Errorf("%s: active payload should be the live component", kind)
		}
	}

	if b.vault.Len() != 0 {
		t.Errorf("Vault should be empty, Len() = %d", b.vault.Len())
	}
}

func TestRegisterAdoptsParkedRegime(t *testing.T) {
	b := newTestBoard()
	b.spawnArchetype(types.ArchetypeBall)

	if err := b.controller.Toggle(types.ArchetypeBall, types.KindVelocity); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	second := b.spawnArchetype(types.ArchetypeBall)

	state, err := b.index.StateOf(second, types.KindVelocity)
	if err != nil {
		t.Fatalf("StateOf error: %v", err)
	}
	if state.Status != StatusParked {
		t.Errorf("New ball Velocity status = %s, want Parked", state.Status)
	}
	if _, live := b.host.Peek(second, types.KindVelocity); live {
		t.Error("New ball must not carry a live Velocity component")
	}
	vel, ok := state.Payload.(*testVelocity)
	if !ok || vel.X != 200 || vel.Y != -200 {
		t.Errorf("Parked payload = %+v, want spawn velocity", state.Payload)
	}

	// 其他组件仍然激活
	if state, _ := b.index.StateOf(second, types.KindSprite); state.Status != StatusActive {
		t.Errorf("Sprite status = %s, want Active", state.Status)
	}
}

func TestRegisterErrors(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)

	if err := b.index.Register(ball, types.ArchetypeBall); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("Expected ErrAlreadyRegistered, got %v", err)
	}

	if err := b.index.Register(ecs.EntityID(999), types.ArchetypeBall); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Expected ErrUnknownEntity, got %v", err)
	}

	// 缺少 Collider 的墙无法注册
	wall := b.host.spawn(map[types.ComponentKind]any{
		types.KindSprite:    "sprite",
		types.KindTransform: "transform",
	})
	if err := b.index.Register(wall, types.ArchetypeWall); !errors.Is(err, ErrComponentMissing) {
		t.Errorf("Expected ErrComponentMissing, got %v", err)
	}
	if b.index.Tracks(wall) {
		t.Error("Failed registration must not track the entity")
	}
}

func TestRegisterRollbackOnMissingComponent(t *testing.T) {
	b := newTestBoard()
	b.spawnArchetype(types.ArchetypeBall)
	if err := b.controller.Toggle(types.ArchetypeBall, types.KindSprite); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	// Sprite 会先被停放，随后因缺少 Destructor 失败，Sprite 必须挂回
	ball := b.host.spawn(map[types.ComponentKind]any{
		types.KindSprite:    "sprite",
		types.KindTransform: "transform",
		types.KindCollider:  "collider",
		types.KindVelocity:  &testVelocity{},
	})
	vaultBefore := b.vault.Len()

	if err := b.index.Register(ball, types.ArchetypeBall); !errors.Is(err, ErrComponentMissing) {
		t.Fatalf("Expected ErrComponentMissing, got %v", err)
	}
	if _, ok := b.host.Peek(ball, types.KindSprite); !ok {
		t.Error("Sprite should be reattached after failed registration")
	}
	if b.vault.Len() != vaultBefore {
		t.Errorf("Vault Len() = %d, want %d", b.vault.Len(), vaultBefore)
	}
}

func TestUnregisterPurgesVault(t *testing.T) {
	b := newTestBoard()
	ball := b.spawnArchetype(types.ArchetypeBall)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindVelocity)
	_ = b.controller.Toggle(types.ArchetypeBall, types.KindSprite)

	if b.vault.CountFor(ball) != 2 {
		t.Fatalf("CountFor(ball) = %d, want 2", b.vault.CountFor(ball))
	}

	b.host.despawn(ball)
	b.index.Unregister(ball)

	if b.vault.CountFor(ball) != 0 {
		t.Errorf("CountFor(ball) = %d after unregister, want 0", b.vault.CountFor(ball))
	}
	if b.index.Count(types.ArchetypeBall) != 0 {
		t.Errorf("Count(Ball) = %d, want 0", b.index.Count(types.ArchetypeBall))
	}
	if _, err := b.index.StateOf(ball, types.KindVelocity); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Expected ErrUnknownEntity, got %v", err)
	}

	// 重复注销是空操作
	b.index.Unregister(ball)
}

func TestEntitiesOf(t *testing.T) {
	b := newTestBoard()
	w1 := b.spawnArchetype(types.ArchetypeWall)
	ball := b.spawnArchetype(types.ArchetypeBall)
	w2 := b.spawnArchetype(types.ArchetypeWall)

	seq := b.index.EntitiesOf(types.ArchetypeWall)

	// 可重复迭代
	for round := 0; round < 2; round++ {
		var got []ecs.EntityID
		for id := range seq {
			got = append(got, id)
		}
		if len(got) != 2 || got[0] != w1 || got[1] != w2 {
			t.Errorf("round %d: EntitiesOf(Wall) = %v, want [%d %d]", round, got, w1, w2)
		}
	}

	// 提前终止
	count := 0
	for range seq {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Early break yielded %d entities, want 1", count)
	}

	// 迭代中注销是安全的
	for id := range b.index.EntitiesOf(types.ArchetypeWall) {
		b.index.Unregister(id)
	}
	if b.index.Count(types.ArchetypeWall) != 0 {
		t.Errorf("Count(Wall) = %d, want 0", b.index.Count(types.ArchetypeWall))
	}
	if a, ok := b.index.ArchetypeOf(ball); !ok || a != types.ArchetypeBall {
		t.Errorf("ArchetypeOf(ball) = %v, %v", a, ok)
	}
}

func TestStateOfNotApplicable(t *testing.T) {
	b := newTestBoard()
	wall := b.spawnArchetype(types.ArchetypeWall)

	if _, err := b.index.StateOf(wall, types.KindVelocity); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Expected ErrNotApplicable, got %v", err)
	}
}
