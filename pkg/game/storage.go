package game

import (
	"fmt"

	"github.com/decker502/breakout/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// OpenStorage 打开 gdata 跨平台存储
// 在 Android 上先确保存储目录存在
func OpenStorage(appName string, logger *zap.Logger) (*gdata.Manager, error) {
	dir, err := utils.PrepareStorageDir()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	if logger != nil && dir != "" {
		logger.Debug("存储已打开", zap.String("app", appName), zap.String("path", dir))
	}
	return manager, nil
}
