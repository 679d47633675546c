package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/pong/pkg/config"
)

// withTempHome 将 HOME 指向临时目录，避免测试污染真实的用户设置
func withTempHome(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
}

// writeGameplayFile 在临时目录写入一个玩法配置文件
func writeGameplayFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gameplay.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestNewAppWithConfigPath 测试从磁盘配置文件创建应用
func TestNewAppWithConfigPath(t *testing.T) {
	withTempHome(t)

	path := writeGameplayFile(t, "arenaWidth: 640\narenaHeight: 480\n")

	pongApp, err := NewApp(Config{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	// Layout 返回场地逻辑尺寸，与外部窗口尺寸无关
	w, h := pongApp.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Layout(): got %dx%d, want 640x480", w, h)
	}

	// 窗口默认尺寸为场地尺寸放大 WindowScale 倍
	ww, wh := pongApp.WindowSize()
	if ww != 640*config.WindowScale || wh != 480*config.WindowScale {
		t.Errorf("WindowSize(): got %dx%d, want %dx%d",
			ww, wh, 640*config.WindowScale, 480*config.WindowScale)
	}
}

// TestNewAppInitializesScene 测试应用启动后已经切入游戏场景
func TestNewAppInitializesScene(t *testing.T) {
	withTempHome(t)

	path := writeGameplayFile(t, "arenaWidth: 400\narenaHeight: 300\n")

	pongApp, err := NewApp(Config{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	if pongApp.GetSceneManager() == nil {
		t.Fatal("GetSceneManager() returned nil")
	}

	if pongApp.GetSceneManager().GetCurrentScene() == nil {
		t.Error("Expected a current scene after NewApp(), got nil")
	}

	if pongApp.GetSettingsManager() == nil {
		t.Error("GetSettingsManager() returned nil")
	}
}

// TestNewAppMissingConfigFile 测试配置文件不存在时返回错误
func TestNewAppMissingConfigFile(t *testing.T) {
	withTempHome(t)

	_, err := NewApp(Config{ConfigPath: "/nonexistent/gameplay.yaml"})
	if err == nil {
		t.Fatal("Expected error for missing config file, got nil")
	}
}

// TestNewAppInvalidConfigValues 测试非法配置值被拒绝
func TestNewAppInvalidConfigValues(t *testing.T) {
	withTempHome(t)

	// 场地高度容不下球
	path := writeGameplayFile(t, "arenaHeight: 15\n")

	_, err := NewApp(Config{ConfigPath: path})
	if err == nil {
		t.Fatal("Expected error for invalid config values, got nil")
	}

	if !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got: %v", err)
	}
}

// TestNewAppWithoutEmbeddedConfig 测试嵌入资源未初始化且未指定配置文件时报错
func TestNewAppWithoutEmbeddedConfig(t *testing.T) {
	withTempHome(t)

	// 本测试包从不调用 embedded.Init()，回退路径必然失败
	_, err := NewApp(Config{})
	if err == nil {
		t.Fatal("Expected error when embedded data is unavailable, got nil")
	}
}

// TestNewAppVerboseFlag 测试详细日志标志的透传
func TestNewAppVerboseFlag(t *testing.T) {
	withTempHome(t)

	path := writeGameplayFile(t, "arenaWidth: 400\narenaHeight: 300\n")

	pongApp, err := NewApp(Config{ConfigPath: path, Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	if !pongApp.IsVerbose() {
		t.Error("IsVerbose(): got false, want true")
	}
}
