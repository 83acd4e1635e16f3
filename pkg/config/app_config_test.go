package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestParseAppConfig 测试 TOML 解析与默认值
func TestParseAppConfig(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantErr     bool
		wantWidth   int
		wantTPS     int
		wantLevel   string
		wantPersist bool
	}{
		{
			name:        "空文件使用默认值",
			data:        "",
			wantWidth:   GameWindowWidth,
			wantTPS:     DefaultTPS,
			wantLevel:   "warn",
			wantPersist: true,
		},
		{
			name:        "部分覆盖",
			data:        "[window]\nwidth = 1280\n[logging]\nlevel = \"debug\"\n[save]\npersist_toggles = false\n",
			wantWidth:   1280,
			wantTPS:     DefaultTPS,
			wantLevel:   "debug",
			wantPersist: false,
		},
		{
			name:        "TPS 非正数时回退",
			data:        "[window]\ntps = 0\n",
			wantWidth:   GameWindowWidth,
			wantTPS:     DefaultTPS,
			wantLevel:   "warn",
			wantPersist: true,
		},
		{
			name:    "窗口尺寸非法",
			data:    "[window]\nheight = -1\n",
			wantErr: true,
		},
		{
			name:    "格式错误",
			data:    "[window\nwidth = 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAppConfig([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAppConfig() error = %v", err)
			}
			if cfg.Window.Width != tt.wantWidth {
				t.Errorf("Window.Width = %d, want %d", cfg.Window.Width, tt.wantWidth)
			}
			if cfg.Window.TPS != tt.wantTPS {
				t.Errorf("Window.TPS = %d, want %d", cfg.Window.TPS, tt.wantTPS)
			}
			if cfg.Logging.Level != tt.wantLevel {
				t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, tt.wantLevel)
			}
			if cfg.Save.PersistToggles != tt.wantPersist {
				t.Errorf("Save.PersistToggles = %v, want %v", cfg.Save.PersistToggles, tt.wantPersist)
			}
			if cfg.Game.ArenaConfig != DefaultArenaConfigPath {
				t.Errorf("Game.ArenaConfig = %q, want %q", cfg.Game.ArenaConfig, DefaultArenaConfigPath)
			}
		})
	}
}

// TestLoadAppConfigFile 读取仓库自带的配置文件
func TestLoadAppConfigFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join("..", "..", "data", "breakout.toml"))
	if err != nil {
		t.Fatalf("LoadAppConfig() error = %v", err)
	}
	if cfg.Save.AppName != "breakout_toggle" {
		t.Errorf("Save.AppName = %q, want breakout_toggle", cfg.Save.AppName)
	}
	if cfg.Window.Title == "" {
		t.Error("Window.Title should not be empty")
	}
}

// TestLoadArenaConfigFile 读取仓库自带的竞技场配置
func TestLoadArenaConfigFile(t *testing.T) {
	cfg, err := LoadArenaConfig(filepath.Join("..", "..", "data", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadArenaConfig() error = %v", err)
	}
	if !cfg.Grid.ShowInapplicable {
		t.Error("data/arena.yaml should show inapplicable cells")
	}
	table, err := cfg.ApplicabilityTable()
	if err != nil {
		t.Fatalf("ApplicabilityTable() error = %v", err)
	}
	if len(table) != 5 {
		t.Errorf("len(table) = %d, want 5", len(table))
	}
}

// TestLoadAppConfigMissing 文件不存在且未初始化嵌入资源时返回错误
func TestLoadAppConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := os.Stat(path); err == nil {
		t.Fatal("temp file should not exist")
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("Expected error for missing config file")
	}
}
