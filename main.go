package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/breakout/pkg/app"
	"github.com/decker502/breakout/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

var (
	configPath  = flag.String("config", "", "应用配置文件路径（默认 data/breakout.toml）")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	profileMode = flag.String("profile", "", "性能分析模式: cpu 或 mem（输出到当前目录）")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run 返回后 defer 已全部执行，性能分析文件在退出前写完
func run() error {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	if stop := startProfile(*profileMode); stop != nil {
		defer stop()
	}

	gameApp, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		Verbose:    *verbose,
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	gameApp.ConfigureWindow()
	return gameApp.Shutdown(ebiten.RunGame(gameApp))
}

// startProfile 按模式启动性能分析，返回停止函数
func startProfile(mode string) func() {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		log.Printf("未知的性能分析模式 %q，忽略", mode)
		return nil
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	return p.Stop
}
