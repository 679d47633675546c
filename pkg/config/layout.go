package config

// 布局配置常量
// 本文件定义窗口与 HUD 元素的布局参数
// 竞技场尺寸来自 Gameplay 配置，这里只放与模拟无关的显示常量

const (
	// WindowScale 是窗口相对竞技场尺寸的放大倍数
	// 竞技场坐标 1:1 渲染时 400x300 偏小，默认放大一倍
	WindowScale = 2

	// WindowTitle 是桌面窗口标题
	WindowTitle = "Pong"

	// ScoreTextX / ScoreTextY 是得分文本的屏幕坐标（左上角起算）
	ScoreTextX = 10
	ScoreTextY = 8

	// FPSTextX / FPSTextY 是帧率文本的屏幕坐标
	// 位于得分文本下方一行，仅在设置开启时绘制
	FPSTextX = 10
	FPSTextY = 24
)
