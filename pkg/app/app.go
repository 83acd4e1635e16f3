// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/scenes"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 应用配置文件路径，为空时使用 config.DefaultAppConfigPath
	ConfigPath string
	// Verbose 强制 debug 日志级别
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.AppConfig
	logger       *zap.Logger
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	deltaTime    float64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(opts Config) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultAppConfigPath
	}
	appCfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		appCfg.Logging.Level = "debug"
	}

	logger, err := NewLogger(appCfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Info("应用配置已加载", zap.String("path", path))

	arenaCfg, err := config.LoadArenaConfig(appCfg.Game.ArenaConfig)
	if err != nil {
		return nil, err
	}

	// 存储不可用时降级为仅内存（设置和开关都不持久化）
	storage, err := game.OpenStorage(appCfg.Save.AppName, logger)
	if err != nil {
		logger.Warn("存储不可用，设置不会被保存", zap.Error(err))
		storage = nil
	}
	settings := game.NewSettingsManager(storage, logger)
	presets := game.NewPresetManager(storage, logger)

	input := systems.NewEbitenInput()
	sceneManager := game.NewSceneManager(logger)
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewArenaScene(scenes.ArenaSceneOptions{
			Config:         arenaCfg,
			Input:          input,
			Presets:        presets,
			PersistToggles: appCfg.Save.PersistToggles,
			Settings:       settings,
			Logger:         logger,
		})
	})
	if err := sceneManager.Reload(); err != nil {
		return nil, err
	}

	return &App{
		cfg:          appCfg,
		logger:       logger,
		sceneManager: sceneManager,
		settings:     settings,
		deltaTime:    1.0 / float64(appCfg.Window.TPS),
	}, nil
}

// ConfigureWindow 应用窗口配置（仅桌面端）
func (a *App) ConfigureWindow() {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.cfg.Window.TPS)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，deltaTime 固定为 1/TPS
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.logger.Info("退出")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F5 重新生成竞技场
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.sceneManager.Reload(); err != nil {
			a.logger.Error("重新生成竞技场失败", zap.Error(err))
		}
	}

	a.sceneManager.Update(a.deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("保存设置失败", zap.Error(err))
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Logger 返回应用日志
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Shutdown 保存当前场景并刷新日志
// 在 ebiten.RunGame 返回后调用；err 为 RunGame 的返回值
func (a *App) Shutdown(err error) error {
	if !a.sceneManager.SaveCurrent() {
		a.logger.Warn("退出时保存失败")
	}
	_ = a.logger.Sync()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
