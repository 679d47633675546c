package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestIsDirectionKeyCrossedBindings 验证交叉键位布局
func TestIsDirectionKeyCrossedBindings(t *testing.T) {
	tests := []struct {
		key       ebiten.Key
		wantBound bool
		wantUp    bool
	}{
		{ebiten.KeyArrowUp, true, true},
		{ebiten.KeyArrowRight, true, true},
		{ebiten.KeyArrowDown, true, false},
		{ebiten.KeyArrowLeft, true, false},
		{ebiten.KeySpace, false, false},
		{ebiten.KeyW, false, false},
	}

	for _, tt := range tests {
		bound, up := IsDirectionKey(tt.key)
		if bound != tt.wantBound || up != tt.wantUp {
			t.Errorf("IsDirectionKey(%v): got (%v, %v), want (%v, %v)",
				tt.key, bound, up, tt.wantBound, tt.wantUp)
		}
	}
}

// TestKeyBindingsCoverBothDirections 验证每个方向都绑定了两个键
func TestKeyBindingsCoverBothDirections(t *testing.T) {
	if len(UpKeys()) != 2 {
		t.Errorf("Expected 2 up keys, got %d", len(UpKeys()))
	}
	if len(DownKeys()) != 2 {
		t.Errorf("Expected 2 down keys, got %d", len(DownKeys()))
	}

	// 同一个键不能同时绑定两个方向
	for _, uk := range UpKeys() {
		for _, dk := range DownKeys() {
			if uk == dk {
				t.Errorf("Key %v is bound to both directions", uk)
			}
		}
	}
}

// TestKeyStateHelpersWithNoInput 验证没有输入时三个状态查询都为假
//
// 测试进程里没有真实键盘事件，按下、刚按下、刚释放都不应成立。
func TestKeyStateHelpersWithNoInput(t *testing.T) {
	for _, keys := range [][]ebiten.Key{UpKeys(), DownKeys(), nil} {
		if AnyKeyPressed(keys) {
			t.Errorf("AnyKeyPressed(%v): got true, want false", keys)
		}
		if AnyKeyJustPressed(keys) {
			t.Errorf("AnyKeyJustPressed(%v): got true, want false", keys)
		}
		if AnyKeyJustReleased(keys) {
			t.Errorf("AnyKeyJustReleased(%v): got true, want false", keys)
		}
	}
}

// TestIsUpperHalf 验证触摸半区判定
func TestIsUpperHalf(t *testing.T) {
	tests := []struct {
		name         string
		screenY      float64
		screenHeight float64
		want         bool
	}{
		{"屏幕顶部", 0, 300, true},
		{"中线上方一像素", 149, 300, true},
		{"恰好中线算下半区", 150, 300, false},
		{"屏幕底部", 300, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUpperHalf(tt.screenY, tt.screenHeight)
			if got != tt.want {
				t.Errorf("IsUpperHalf(%v, %v): got %v, want %v",
					tt.screenY, tt.screenHeight, got, tt.want)
			}
		})
	}
}
