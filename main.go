package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志输出")
	configPath = flag.String("config", "", "玩法配置文件路径，为空则使用内置配置")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示每次启动随机发球")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	pongApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	// 设置窗口属性
	ebiten.SetWindowSize(pongApp.WindowSize())
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 启动游戏主循环
	// 窗口关闭前会反复调用 Update() 和 Draw()
	if err := ebiten.RunGame(pongApp); err != nil {
		fmt.Fprintf(os.Stderr, "Game exited with error: %v\n", err)
		os.Exit(1)
	}

	// 正常退出时保存显示偏好
	if err := pongApp.GetSettingsManager().Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save settings: %v\n", err)
	}
}
