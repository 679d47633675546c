package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 方向键绑定
//
// 沿用原版的交叉布局：左和下都让球拍向下，右和上都让球拍向上。
// 每个方向绑定两个键，任何一个键的按下或释放都会改写该方向的按住状态，
// 即使同方向的另一个键仍被按住（原版行为，刻意保留）。
var (
	upKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowUp}
	downKeys = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown}
)

// UpKeys 返回绑定到向上方向的按键
func UpKeys() []ebiten.Key {
	return upKeys
}

// DownKeys 返回绑定到向下方向的按键
func DownKeys() []ebiten.Key {
	return downKeys
}

// IsDirectionKey 判断按键是否绑定了某个方向
// 返回：是否绑定、是否为向上方向
func IsDirectionKey(key ebiten.Key) (bound bool, up bool) {
	for _, k := range upKeys {
		if k == key {
			return true, true
		}
	}
	for _, k := range downKeys {
		if k == key {
			return true, false
		}
	}
	return false, false
}

// AnyKeyJustPressed 检查按键组中是否有键在本帧刚被按下
func AnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// AnyKeyJustReleased 检查按键组中是否有键在本帧刚被释放
func AnyKeyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// AnyKeyPressed 检查按键组中是否有键处于按住状态
func AnyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsUpperHalf 判断屏幕 Y 坐标是否落在上半区
//
// 通过竞技场坐标判断：转换后 Y 大于场地高度一半即为上半区。
// 恰好位于中线时算下半区。
func IsUpperHalf(screenY, screenHeight float64) bool {
	return ScreenToArena(0, screenY, screenHeight).Y > screenHeight/2
}

// TouchHeldDirections 解析当前活动触摸落在哪些半区
//
// 触摸屏幕上半区等同按住向上，下半区等同按住向下。
// 多点触摸时两个半区可以同时生效。
//
// 参数：
//   - screenHeight: 逻辑屏幕高度（与场地高度一致）
//
// 返回：
//   - up, down: 各半区是否有活动触摸
func TouchHeldDirections(screenHeight float64) (up, down bool) {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		_, y := ebiten.TouchPosition(id)
		if IsUpperHalf(float64(y), screenHeight) {
			up = true
		} else {
			down = true
		}
	}
	return up, down
}
