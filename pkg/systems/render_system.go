package systems

import (
	"fmt"
	"sort"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 竞技场实体渲染系统
//
// 只绘制同时带有 SpriteComponent 和 TransformComponent 的实体，
// 因此停放其中任意一个组件都会让实体从画面上消失。
// 实体按 Z 升序绘制，Z 相同时按 ID 升序。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	arena         config.ArenaBounds
	colors        config.ColorsConfig
	drawList      []drawItem // 复用，避免每帧分配
}

type drawItem struct {
	id        ecs.EntityID
	sprite    *components.SpriteComponent
	transform *components.TransformComponent
}

// NewRenderSystem 创建竞技场渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.ArenaConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		arena:         cfg.Arena,
		colors:        cfg.Colors,
	}
}

// Draw 清屏并绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.colors.Background.RGBA())

	for _, item := range s.collect() {
		tr := item.transform
		x, y := utils.RectTopLeft(tr.X, tr.Y, tr.Width, tr.Height, s.arena.OriginX, s.arena.OriginY)
		vector.DrawFilledRect(screen,
			float32(x), float32(y), float32(tr.Width), float32(tr.Height),
			item.sprite.Color, false)

		if score, ok := ecs.GetComponent[*components.ScoreComponent](s.entityManager, item.id); ok {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", score.Label, score.Value), int(x)+6, int(y)+4)
		}
	}
}

// DrawOrder 返回本帧会被绘制的实体（按绘制顺序）
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	items := s.collect()
	ids := make([]ecs.EntityID, len(items))
	for i, item := range items {
		ids[i] = item.id
	}
	return ids
}

// collect 收集可见实体并按 Z 排序
func (s *RenderSystem) collect() []drawItem {
	s.drawList = s.drawList[:0]
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		s.drawList = append(s.drawList, drawItem{id: id, sprite: sprite, transform: tr})
	}

	// GetEntitiesWith 已按 ID 升序返回，稳定排序保持同层级内的 ID 顺序
	sort.SliceStable(s.drawList, func(i, j int) bool {
		return s.drawList[i].transform.Z < s.drawList[j].transform.Z
	})
	return s.drawList
}
