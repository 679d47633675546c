// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// gdataAppName 是 gdata 存储使用的应用目录名
const gdataAppName = "pong"

// 嵌入的默认玩法配置路径
const defaultGameplayPath = "data/gameplay.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的玩法配置路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子，0 表示使用全局随机源
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	gameplay     config.Gameplay
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载玩法配置：命令行指定的文件优先，否则使用嵌入的默认配置
	gameplay, err := loadGameplay(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Gameplay config: arena %dx%d, ball radius %d",
		gameplay.ArenaWidth, gameplay.ArenaHeight, gameplay.BallRadius)

	// 随机源：指定种子时可复现
	var rng components.RandSource
	if cfg.Seed != 0 {
		rng = components.NewSeededRandSource(cfg.Seed)
		log.Printf("[App] Using seeded random source: %d", cfg.Seed)
	} else {
		rng = components.NewRandSource()
	}

	// 打开跨平台设置存储，失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}

	// 创建一局模拟
	session, err := game.NewSession(gameplay, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	// 创建场景管理器并切入游戏场景
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPlayScene(session, settings))

	// 应用保存的显示偏好
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		gameplay:     gameplay,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameplay 按优先级加载玩法配置
func loadGameplay(path string) (config.Gameplay, error) {
	if path != "" {
		gameplay, err := config.LoadGameplay(path)
		if err != nil {
			return config.Gameplay{}, fmt.Errorf("failed to load gameplay config %s: %w", path, err)
		}
		log.Printf("[App] Loaded gameplay config from %s", path)
		return gameplay, nil
	}

	data, err := embedded.ReadFile(defaultGameplayPath)
	if err != nil {
		return config.Gameplay{}, fmt.Errorf("failed to read embedded gameplay config: %w", err)
	}
	return config.ParseGameplay(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			log.Printf("[App] Delayed SetWindowSize after leaving fullscreen")
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，偏好立即保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换帧率显示，偏好立即保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.settings.SetShowFPS(!a.settings.GetSettings().ShowFPS)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏状态并持久化偏好
func (a *App) toggleFullscreen() {
	isFullscreen := ebiten.IsFullscreen()
	if isFullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(!isFullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸等于场地尺寸，Ebitengine 会自动处理窗口缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameplay.ArenaWidth, a.gameplay.ArenaHeight
}

// WindowSize 返回默认窗口尺寸（场地尺寸放大 WindowScale 倍）
func (a *App) WindowSize() (int, int) {
	return a.gameplay.ArenaWidth * config.WindowScale, a.gameplay.ArenaHeight * config.WindowScale
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
// 用于在游戏关闭时保存显示偏好
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
