package components

// Paddle 球拍
//
// x 固定在右边缘附近（arenaWidth - width），只有 y 随输入移动。
// 每次移动独立判界：y 尚未越过阈值才走一步（先判界、后步进），
// 因此静止点可能比阈值高出不足一步的余量。
type Paddle struct {
	Center Point   // 拍心（竞技场坐标）
	Width  float64 // 拍宽，构造后固定
	Height float64 // 拍高，构造后固定

	yMin, yMax float64 // 判界阈值：半拍高 与 场高减半拍高
	moveUnit   float64 // 每次移动的步长
}

// NewPaddle 在右边缘生成一个居中的球拍
func NewPaddle(width, height, arenaWidth, arenaHeight, moveUnit int) *Paddle {
	p := &Paddle{
		Width:    float64(width),
		Height:   float64(height),
		yMin:     float64(height) / 2,
		yMax:     float64(arenaHeight) - float64(height)/2,
		moveUnit: float64(moveUnit),
	}
	p.Center = Point{
		X: float64(arenaWidth - width),
		Y: float64(arenaHeight) / 2,
	}
	return p
}

// MoveUp 向上移动一步
//
// y 低于上阈值才步进，否则空操作；到达静止点后重复调用不再移动。
func (p *Paddle) MoveUp() {
	if p.Center.Y < p.yMax {
		p.Center.Y += p.moveUnit
	}
}

// MoveDown 向下移动一步（与 MoveUp 对称）
func (p *Paddle) MoveDown() {
	if p.Center.Y > p.yMin {
		p.Center.Y -= p.moveUnit
	}
}
