// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具库，用于模拟坐标与屏幕坐标的互转。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **竞技场坐标**：模拟层使用，原点在左下角，Y 轴向上
//   - **屏幕坐标**：Ebiten 渲染使用，原点在左上角，Y 轴向下
//
// 两个坐标系只在 Y 轴方向相反，X 轴一致，窗口缩放由 Ebiten 的
// Layout 机制处理，这里不参与。
//
// # 核心转换公式
//
//	screenY = arenaHeight - arenaY
//	arenaY  = arenaHeight - screenY
//
// # 使用场景
//
// - **渲染**：使用 ArenaToScreen 把球心、拍心换算成绘制坐标
// - **触摸输入**：使用 ScreenToArena 把触点换算回竞技场坐标判断上下半区
package utils

import "github.com/decker502/pong/pkg/components"

// ArenaToScreen 将竞技场坐标转换为屏幕坐标
//
// 参数：
//   - p: 竞技场坐标点（原点左下、Y 向上）
//   - arenaHeight: 场地高度
//
// 返回：
//   - screenX, screenY: 屏幕坐标（原点左上、Y 向下）
func ArenaToScreen(p components.Point, arenaHeight float64) (screenX, screenY float64) {
	return p.X, arenaHeight - p.Y
}

// ScreenToArena 将屏幕坐标转换为竞技场坐标
//
// 参数：
//   - screenX, screenY: 屏幕坐标（原点左上、Y 向下）
//   - arenaHeight: 场地高度
//
// 返回：
//   - components.Point: 竞技场坐标点
func ScreenToArena(screenX, screenY, arenaHeight float64) components.Point {
	return components.Point{X: screenX, Y: arenaHeight - screenY}
}
