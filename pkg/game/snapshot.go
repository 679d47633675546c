package game

import "github.com/decker502/pong/pkg/components"

// Snapshot 是一帧结束后的只读渲染状态
//
// Update 每帧返回一份，渲染层据此绘制，不直接触碰模拟内部。
// 坐标仍是竞技场坐标（原点左下、Y 向上），屏幕换算由渲染层负责。
type Snapshot struct {
	Frame uint64 // 已完成的帧数

	BallCenter components.Point // 球心位置
	BallRadius float64          // 球半径

	PaddleCenter components.Point // 球拍中心位置
	PaddleWidth  float64          // 球拍宽度
	PaddleHeight float64          // 球拍高度

	Score int // 当前得分
}
