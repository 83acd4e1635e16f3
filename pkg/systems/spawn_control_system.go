package systems

import (
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SpawnControlSystem 处理调试快捷键
//
//   - N: 在初始位置生成一个新球（新球采用当前的聚合开关状态）
//   - X: 移除最新生成的球（保险库中的条目随之清理）
//   - R: 把所有开关恢复为激活状态
type SpawnControlSystem struct {
	spawner    *entities.Spawner
	index      *toggle.Index
	controller *toggle.Controller
	input      InputSource
	cfg        *config.ArenaConfig
	logger     *zap.Logger
}

// NewSpawnControlSystem 创建快捷键系统
func NewSpawnControlSystem(
	spawner *entities.Spawner,
	index *toggle.Index,
	controller *toggle.Controller,
	input InputSource,
	cfg *config.ArenaConfig,
	logger *zap.Logger,
) *SpawnControlSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpawnControlSystem{
		spawner:    spawner,
		index:      index,
		controller: controller,
		input:      input,
		cfg:        cfg,
		logger:     logger.Named("spawn"),
	}
}

// Update 检查快捷键
func (s *SpawnControlSystem) Update(deltaTime float64) {
	if s.input.KeyJustPressed(ebiten.KeyN) {
		s.spawnBall()
	}
	if s.input.KeyJustPressed(ebiten.KeyX) {
		s.despawnNewestBall()
	}
	if s.input.KeyJustPressed(ebiten.KeyR) {
		if err := s.controller.Reset(); err != nil {
			s.logger.Warn("重置开关未完全生效", zap.Error(err))
		} else {
			s.logger.Info("所有开关已重置")
		}
	}
}

// spawnBall 生成新球，水平方向交替以免与已有的球重叠
func (s *SpawnControlSystem) spawnBall() {
	vx, vy := s.cfg.BallVelocity()
	if s.index.Count(types.ArchetypeBall)%2 == 1 {
		vx = -vx
	}
	id, err := entities.NewBall(s.spawner, s.cfg, s.cfg.Ball.StartX, s.cfg.Ball.StartY, vx, vy)
	if err != nil {
		s.logger.Error("生成球失败", zap.Error(err))
		return
	}
	s.logger.Info("生成球",
		zap.Uint64("entity", uint64(id)),
		zap.Int("balls", s.index.Count(types.ArchetypeBall)))
}

// despawnNewestBall 标记ID最大的球待删除
// 实体在本帧末尾 RemoveMarkedEntities 时真正移除并注销
func (s *SpawnControlSystem) despawnNewestBall() {
	var newest ecs.EntityID
	for id := range s.index.EntitiesOf(types.ArchetypeBall) {
		newest = id
	}
	if newest == 0 {
		return
	}
	s.spawner.EntityManager().DestroyEntity(newest)
	s.logger.Info("移除球", zap.Uint64("entity", uint64(newest)))
}
