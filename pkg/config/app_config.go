package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultAppConfigPath 默认应用配置路径（磁盘上不存在时读取嵌入的同名文件）
const DefaultAppConfigPath = "data/breakout.toml"

// AppConfig 应用配置（TOML）
type AppConfig struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Save    SaveConfig    `toml:"save"`
	Game    GameConfig    `toml:"game"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// SaveConfig 存档配置
type SaveConfig struct {
	AppName        string `toml:"app_name"`        // gdata 存储目录名
	PersistToggles bool   `toml:"persist_toggles"` // 是否在重启之间保留聚合开关表
}

// GameConfig 游戏数据配置
type GameConfig struct {
	ArenaConfig string `toml:"arena_config"`
}

// LoadAppConfig 加载应用配置
// 先填入默认值，再用文件内容覆盖；磁盘上不存在时读取嵌入的同名文件
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 TOML 格式的应用配置
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("window size invalid: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		cfg.Window.TPS = DefaultTPS
	}
	return cfg, nil
}

// DefaultAppConfig 返回默认应用配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Breakout - Component Toggle Board",
			TPS:    DefaultTPS,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Save: SaveConfig{
			AppName:        "breakout_toggle",
			PersistToggles: true,
		},
		Game: GameConfig{
			ArenaConfig: DefaultArenaConfigPath,
		},
	}
}
