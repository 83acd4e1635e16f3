package systems

import (
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput 脚本化的输入源，每帧的输入由测试设置
type fakeInput struct {
	events   []PointerEvent
	cursorX  int
	cursorY  int
	justKeys map[ebiten.Key]bool
	heldKeys map[ebiten.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		justKeys: make(map[ebiten.Key]bool),
		heldKeys: make(map[ebiten.Key]bool),
	}
}

func (in *fakeInput) PointerEvents() []PointerEvent {
	events := in.events
	in.events = nil
	return events
}

func (in *fakeInput) Cursor() (int, int) { return in.cursorX, in.cursorY }

func (in *fakeInput) KeyJustPressed(key ebiten.Key) bool { return in.justKeys[key] }

func (in *fakeInput) KeyPressed(key ebiten.Key) bool { return in.heldKeys[key] }

// down 模拟在 (x, y) 按下
func (in *fakeInput) down(x, y int) {
	in.cursorX, in.cursorY = x, y
	in.events = append(in.events, PointerEvent{Type: PointerDown, X: x, Y: y})
}

// up 模拟在 (x, y) 释放
func (in *fakeInput) up(x, y int) {
	in.cursorX, in.cursorY = x, y
	in.events = append(in.events, PointerEvent{Type: PointerUp, X: x, Y: y})
}

// recordingToggler 记录收到的开关请求
type recordingToggler struct {
	calls [][2]int
	err   error
}

func (r *recordingToggler) Toggle(a types.Archetype, k types.ComponentKind) error {
	r.calls = append(r.calls, [2]int{int(a), int(k)})
	return r.err
}

// testWorld 组装开关引擎和实体生成器
type testWorld struct {
	em         *ecs.EntityManager
	cfg        *config.ArenaConfig
	matrix     *toggle.Matrix
	vault      *toggle.Vault
	index      *toggle.Index
	controller *toggle.Controller
	spawner    *entities.Spawner
}

func newTestWorld() *testWorld {
	w := &testWorld{
		em:     ecs.NewEntityManager(),
		cfg:    config.DefaultArenaConfig(),
		matrix: toggle.DefaultMatrix(),
		vault:  toggle.NewVault(),
	}
	aggregate := toggle.NewAggregateTable()
	w.index = toggle.NewIndex(w.matrix, w.vault, entities.NewComponentHost(w.em), aggregate, nil)
	w.controller = toggle.NewController(w.matrix, w.index, aggregate, nil)
	w.em.AddRemovalListener(w.index.Unregister)
	w.spawner = entities.NewSpawner(w.em, w.matrix, w.index, nil)
	return w
}

// cellCenter 返回按钮中心的屏幕坐标
func cellCenter(grid config.GridConfig, a types.Archetype, k types.ComponentKind) (int, int) {
	x, y, w, h := entities.ButtonCellRect(grid, a, k)
	return int(x + w/2), int(y + h/2)
}
