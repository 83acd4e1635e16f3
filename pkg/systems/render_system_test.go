package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/types"
)

func TestRenderDrawOrder(t *testing.T) {
	w := newTestWorld()
	if err := entities.PopulateArena(w.spawner, w.cfg); err != nil {
		t.Fatalf("PopulateArena failed: %v", err)
	}
	system := NewRenderSystem(w.em, w.cfg)

	order := system.DrawOrder()
	if len(order) != w.index.Len() {
		t.Fatalf("draw list has %d entities, want %d", len(order), w.index.Len())
	}

	// 球最后绘制
	last := order[len(order)-1]
	if a, _ := w.index.ArchetypeOf(last); a != types.ArchetypeBall {
		t.Errorf("last drawn entity is %s, want Ball", a)
	}
}

func TestRenderSkipsParkedSprite(t *testing.T) {
	w := newTestWorld()
	if err := entities.PopulateArena(w.spawner, w.cfg); err != nil {
		t.Fatalf("PopulateArena failed: %v", err)
	}
	system := NewRenderSystem(w.em, w.cfg)
	before := len(system.DrawOrder())

	_ = w.controller.Toggle(types.ArchetypeBrick, types.KindSprite)
	after := len(system.DrawOrder())

	bricks := w.index.Count(types.ArchetypeBrick)
	if before-after != bricks {
		t.Errorf("parking Brick Sprite hid %d entities, want %d", before-after, bricks)
	}

	_ = w.controller.Toggle(types.ArchetypeBrick, types.KindSprite)
	if got := len(system.DrawOrder()); got != before {
		t.Errorf("restoring Brick Sprite: %d visible, want %d", got, before)
	}
}

// stubState 固定的聚合开关状态
type stubState map[[2]int]bool

func (s stubState) IsParked(a types.Archetype, k types.ComponentKind) bool {
	return s[[2]int{int(a), int(k)}]
}

func TestButtonCellColor(t *testing.T) {
	colors := newTestWorld().cfg.Colors
	state := stubState{{int(types.ArchetypeBall), int(types.KindVelocity)}: true}
	system := NewButtonRenderSystem(nil, state, colors)

	tests := []struct {
		name string
		btn  components.ToggleButtonComponent
		want [3]uint8
	}{
		{
			name: "active",
			btn:  components.ToggleButtonComponent{Archetype: types.ArchetypeBall, Kind: types.KindSprite, Applicable: true},
			want: rgb(colors.ButtonNormal.RGBA()),
		},
		{
			name: "active hovered",
			btn:  components.ToggleButtonComponent{Archetype: types.ArchetypeBall, Kind: types.KindSprite, Applicable: true, Hovered: true},
			want: rgb(colors.ButtonHovered.RGBA()),
		},
		{
			name: "parked",
			btn:  components.ToggleButtonComponent{Archetype: types.ArchetypeBall, Kind: types.KindVelocity, Applicable: true},
			want: rgb(colors.ButtonOn.RGBA()),
		},
		{
			name: "inapplicable",
			btn:  components.ToggleButtonComponent{Archetype: types.ArchetypeWall, Kind: types.KindVelocity},
			want: rgb(colors.ButtonDisabled.RGBA()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			btn := tt.btn
			if got := rgb(system.CellColor(&btn)); got != tt.want {
				t.Errorf("CellColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func rgb(c color.RGBA) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
