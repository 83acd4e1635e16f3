package scenes

import (
	"testing"

	"github.com/decker502/breakout/pkg/game"
	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	manager, err := game.OpenStorage("breakout_scene_test", nil)
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}
