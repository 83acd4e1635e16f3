package scenes

import (
	"fmt"

	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"github.com/decker502/breakout/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

const (
	// 快捷键提示相对于按钮网格左下角的偏移
	helpOffsetY = 32

	helpText = "Click a cell to park/restore a component\n" +
		"Arrows: move paddle\n" +
		"N: spawn ball   X: despawn ball\n" +
		"R: reset toggles   H: hide help\n" +
		"F5: respawn arena   F11: fullscreen\n" +
		"Esc: quit"

	// 移动端没有键盘，只提示触摸操作
	mobileHelpText = "Tap a cell to park/restore a component"
)

// ArenaSceneOptions 竞技场场景的依赖
type ArenaSceneOptions struct {
	// Config 竞技场配置（必填）
	Config *config.ArenaConfig
	// Input 输入源（必填）
	Input systems.InputSource
	// Presets 开关存档，可为 nil
	Presets *game.PresetManager
	// PersistToggles 为 true 时每次开关后保存聚合开关表
	PersistToggles bool
	// Settings 显示设置，可为 nil
	Settings *game.SettingsManager
	// Logger 日志，可为 nil
	Logger *zap.Logger
}

// ArenaScene 竞技场场景
//
// 持有实体管理器和整套开关引擎（矩阵、保险库、聚合开关表、索引、控制器），
// 每个 tick 按固定顺序运行系统：
//  1. ToggleButtonSystem（输入阶段，开关在这里生效）
//  2. SpawnControlSystem
//  3. PaddleControlSystem
//  4. MovementSystem
//  5. RemoveMarkedEntities（真正移除实体并注销索引）
type ArenaScene struct {
	cfg    *config.ArenaConfig
	input  systems.InputSource
	logger *zap.Logger

	entityManager *ecs.EntityManager
	matrix        *toggle.Matrix
	vault         *toggle.Vault
	index         *toggle.Index
	controller    *toggle.Controller
	spawner       *entities.Spawner

	buttonSystem   *systems.ToggleButtonSystem
	spawnSystem    *systems.SpawnControlSystem
	paddleSystem   *systems.PaddleControlSystem
	movementSystem *systems.MovementSystem
	renderSystem   *systems.RenderSystem
	buttonRender   *systems.ButtonRenderSystem

	presets        *game.PresetManager
	persistToggles bool
	settings       *game.SettingsManager
}

// NewArenaScene 创建竞技场场景并生成初始实体
func NewArenaScene(opts ArenaSceneOptions) (*ArenaScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("arena scene: config is required")
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("arena scene: input source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config

	matrix, err := buildMatrix(cfg)
	if err != nil {
		return nil, err
	}

	s := &ArenaScene{
		cfg:            cfg,
		input:          opts.Input,
		logger:         logger.Named("arena"),
		entityManager:  ecs.NewEntityManager(),
		matrix:         matrix,
		vault:          toggle.NewVault(),
		presets:        opts.Presets,
		persistToggles: opts.PersistToggles,
		settings:       opts.Settings,
	}

	aggregate := toggle.NewAggregateTable()
	host := entities.NewComponentHost(s.entityManager)
	s.index = toggle.NewIndex(matrix, s.vault, host, aggregate, logger)
	s.controller = toggle.NewController(matrix, s.index, aggregate, logger)
	s.entityManager.AddRemovalListener(s.index.Unregister)
	s.spawner = entities.NewSpawner(s.entityManager, matrix, s.index, logger)

	s.buttonSystem = systems.NewToggleButtonSystem(s.entityManager, s.input, s.controller, logger)
	s.spawnSystem = systems.NewSpawnControlSystem(s.spawner, s.index, s.controller, s.input, cfg, logger)
	s.paddleSystem = systems.NewPaddleControlSystem(s.entityManager, s.input, cfg.Arena)
	s.movementSystem = systems.NewMovementSystem(s.entityManager, cfg.Arena)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, cfg)
	s.buttonRender = systems.NewButtonRenderSystem(s.entityManager, s.controller, cfg.Colors)

	entities.NewToggleButtonGrid(s.entityManager, matrix, cfg.Grid)

	// 先恢复存档的开关状态，再生成实体：新实体直接采用停放状态
	s.restorePreset()

	if err := entities.PopulateArena(s.spawner, cfg); err != nil {
		return nil, fmt.Errorf("failed to populate arena: %w", err)
	}

	if s.presets != nil && s.persistToggles {
		s.controller.OnToggle(func(types.Archetype, types.ComponentKind, bool) {
			s.savePreset()
		})
	}

	s.logger.Info("竞技场已创建",
		zap.Int("entities", s.index.Len()),
		zap.Int("cells", matrix.CellCount()))
	return s, nil
}

// buildMatrix 使用配置中的适用性覆盖，未配置时使用默认矩阵
func buildMatrix(cfg *config.ArenaConfig) (*toggle.Matrix, error) {
	table, err := cfg.ApplicabilityTable()
	if err != nil {
		return nil, fmt.Errorf("invalid applicability table: %w", err)
	}
	if table == nil {
		return toggle.DefaultMatrix(), nil
	}
	return toggle.NewMatrix(table)
}

// restorePreset 把聚合开关表推进到存档状态
func (s *ArenaScene) restorePreset() {
	if s.presets == nil || !s.persistToggles {
		return
	}
	preset, err := s.presets.Load()
	if err != nil {
		s.logger.Warn("读取开关存档失败，使用默认状态", zap.Error(err))
		return
	}
	if err := s.controller.Apply(preset); err != nil {
		s.logger.Warn("开关存档未完全恢复", zap.Error(err))
	}
}

// savePreset 保存当前聚合开关表
func (s *ArenaScene) savePreset() bool {
	if err := s.presets.Save(s.controller.Snapshot()); err != nil {
		s.logger.Warn("保存开关存档失败", zap.Error(err))
		return false
	}
	return true
}

// Update 推进一个 tick
func (s *ArenaScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.paddleSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	if s.settings != nil && s.input.KeyJustPressed(ebiten.KeyH) {
		settings := s.settings.GetSettings()
		s.settings.SetShowHelp(!settings.ShowHelp)
		if err := s.settings.Save(); err != nil {
			s.logger.Warn("保存设置失败", zap.Error(err))
		}
	}
}

// Draw 绘制竞技场、按钮网格和快捷键提示
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.buttonRender.Draw(screen)

	if s.settings == nil || s.settings.GetSettings().ShowHelp {
		_, y, _, h := entities.ButtonCellRect(s.cfg.Grid, types.ArchetypeBall, types.KindDestructable)
		text := helpText
		if utils.IsMobile() {
			text = mobileHelpText
		}
		ebitenutil.DebugPrintAt(screen, text, int(s.cfg.Grid.OriginX), int(y+h)+helpOffsetY)
	}
}

// SaveOnExit 退出时保存聚合开关表
func (s *ArenaScene) SaveOnExit() bool {
	if s.presets == nil || !s.persistToggles {
		return true
	}
	return s.savePreset()
}

// Controller 返回开关控制器
func (s *ArenaScene) Controller() *toggle.Controller {
	return s.controller
}

// Index 返回实体索引
func (s *ArenaScene) Index() *toggle.Index {
	return s.index
}

// Vault 返回组件保险库
func (s *ArenaScene) Vault() *toggle.Vault {
	return s.vault
}

// EntityManager 返回实体管理器
func (s *ArenaScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
