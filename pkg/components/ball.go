package components

// Ball 弹球
//
// 持有球心位置与每帧速度。速度只在构造和 Restart 时重新随机化，
// 其余时刻只被 Advance 平移、被 Bounce* 取反；半径构造后不变。
// Advance 本身不判界，边界修正由上层的反弹/漏接检查完成。
type Ball struct {
	Center   Point    // 球心（竞技场坐标）
	Velocity Velocity // 每帧位移
	Radius   float64  // 半径，构造后固定

	// 重掷用的闭区间，构造时由半径、场高和步长算好
	yMin, yMax   int // 竖直落点区间 [radius, arenaHeight-radius]
	dxMin, dxMax int // 水平速度区间 [moveUnit, 2*moveUnit]，恒为正
	dyMin, dyMax int // 竖直速度区间 [moveUnit-2, moveUnit-1]
	rng          RandSource
}

// NewBall 在左边缘生成一个向右运动的球
//
// 球心 x = radius，整球恰好贴在场内；y 在 [radius, arenaHeight-radius]
// 内随机。dx 恒为正（开局总是朝球拍运动）；dy 刻意取比 dx 小一档、
// 且不等于球拍步长的区间，避免球的竖直运动与球拍移动完全同步。
func NewBall(radius, arenaHeight, moveUnit int, rng RandSource) *Ball {
	b := &Ball{
		Radius: float64(radius),
		yMin:   radius,
		yMax:   arenaHeight - radius,
		dxMin:  moveUnit,
		dxMax:  2 * moveUnit,
		dyMin:  moveUnit - 2,
		dyMax:  moveUnit - 1,
		rng:    rng,
	}
	b.Center.X = float64(radius)
	b.roll()
	return b
}

// roll 重掷竖直落点和两个速度分量
func (b *Ball) roll() {
	b.Center.Y = float64(IntBetween(b.rng, b.yMin, b.yMax))
	b.Velocity.Dx = float64(IntBetween(b.rng, b.dxMin, b.dxMax))
	b.Velocity.Dy = float64(IntBetween(b.rng, b.dyMin, b.dyMax))
}

// Advance 按当前速度推进一帧，不做任何判界
func (b *Ball) Advance() {
	b.Center = b.Center.Add(b.Velocity)
}

// BounceHorizontal 水平反弹：取反 dx
func (b *Ball) BounceHorizontal() {
	b.Velocity.Dx = -b.Velocity.Dx
}

// BounceVertical 竖直反弹：取反 dy
func (b *Ball) BounceVertical() {
	b.Velocity.Dy = -b.Velocity.Dy
}

// Restart 漏接后把球送回左边缘并重掷速度
//
// 注意 x 归零（贴着左边缘），与构造时的 x = radius 不同：
// 重入点比开局更靠外一点，原版就是这样。
func (b *Ball) Restart() {
	b.Center.X = 0
	b.roll()
}
