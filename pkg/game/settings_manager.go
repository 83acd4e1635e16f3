package game

import (
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// GameSettings 全局显示设置
type GameSettings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowHelp   bool `yaml:"showHelp"`   // 是否显示快捷键提示
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{ShowHelp: true}
}

// 存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 显示设置的加载与保存
// 修改只作用于内存，调用 Save 后才写入存储
type SettingsManager struct {
	store    yamlStore
	settings *GameSettings
	logger   *zap.Logger
}

// NewSettingsManager 创建设置管理器并立即加载
//
// gdataManager 为 nil 时进入降级模式，设置只保存在内存中。
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager, logger *zap.Logger) *SettingsManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SettingsManager{
		store:    yamlStore{manager: gdataManager, object: settingsObject, property: settingsProperty},
		settings: DefaultSettings(),
		logger:   logger.Named("settings"),
	}
	if err := sm.Load(); err != nil {
		sm.logger.Warn("加载设置失败，使用默认设置", zap.Error(err))
	}
	return sm
}

// Load 重新读取设置，没有存档时恢复默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	ok, err := sm.store.load(loaded)
	if err != nil {
		sm.settings = DefaultSettings()
		return err
	}
	sm.settings = loaded
	if ok {
		sm.logger.Debug("设置已加载")
	}
	return nil
}

// Save 写入当前设置
func (sm *SettingsManager) Save() error {
	if err := sm.store.save(sm.settings); err != nil {
		return err
	}
	sm.logger.Debug("设置已保存")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowHelp 设置是否显示快捷键提示
func (sm *SettingsManager) SetShowHelp(enabled bool) {
	sm.settings.ShowHelp = enabled
}
