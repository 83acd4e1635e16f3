package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory 场景工厂函数类型
// 用于重新创建场景（如重新生成竞技场），避免循环依赖
type SceneFactory func() (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重新创建场景
	logger       *zap.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Reload to set one.
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{
		logger: logger.Named("scenes"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 用工厂函数重新创建场景并切换过去
// 旧场景若实现了 Saveable，切换前先保存
// 创建失败时保留旧场景
func (sm *SceneManager) Reload() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	if saveable, ok := sm.currentScene.(Saveable); ok {
		saveable.SaveOnExit()
	}

	scene, err := sm.sceneFactory()
	if err != nil {
		sm.logger.Error("无法创建场景", zap.Error(err))
		return fmt.Errorf("failed to create scene: %w", err)
	}
	sm.SwitchTo(scene)
	sm.logger.Info("场景已重新加载")
	return nil
}

// SaveCurrent 在退出前保存当前场景（如果支持）
func (sm *SceneManager) SaveCurrent() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
