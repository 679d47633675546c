package components

// Point 表示竞技场坐标系中的一个位置
//
// 坐标系原点在左下角：x 向右增长，y 向上增长。
// 渲染层负责把竞技场坐标转换为屏幕坐标（见 pkg/utils/coordinates.go）。
type Point struct {
	X float64 // 水平坐标
	Y float64 // 垂直坐标（向上为正）
}

// Velocity 表示每帧位移量
//
// 单位是"竞技场坐标距离 / 一次更新调用"：仿真按帧步进，
// 不随真实流逝时间缩放。
type Velocity struct {
	Dx float64 // 每帧水平位移
	Dy float64 // 每帧垂直位移
}

// Add 返回按速度平移一帧后的新位置
func (p Point) Add(v Velocity) Point {
	return Point{X: p.X + v.Dx, Y: p.Y + v.Dy}
}
