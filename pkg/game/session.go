package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
)

// Direction 是玩家可以按住的逻辑方向
//
// 输入层负责把按键或触摸映射到方向，模拟层只认方向。
type Direction int

const (
	// DirectionDown 向下（Y 减小）
	DirectionDown Direction = iota
	// DirectionUp 向上（Y 增大）
	DirectionUp
)

// String 返回方向的可读名称，用于日志
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// InputState 是当前帧生效的按住状态
//
// 两个方向相互独立，可以同时为 true，此时球拍先尝试向下再尝试向上，
// 两次移动各自受边界钳制。
type InputState struct {
	HoldingUp   bool // 正在按住向上
	HoldingDown bool // 正在按住向下
}

// Session 表示一局进行中的模拟
//
// 持有球、球拍、计分器和输入状态，按固定顺序推进每一帧。
// 没有暂停和结束状态：漏接后重新发球，一局无限进行。
// 这是一个普通实例，由调用方构造并持有，不提供全局单例。
type Session struct {
	cfg config.Gameplay

	ball   *components.Ball
	paddle *components.Paddle
	score  *ScoreTracker
	input  InputState

	frame uint64 // 已完成的帧数
}

// NewSession 创建一局新的模拟
//
// 参数:
//   - cfg: 玩法配置，构造前执行校验
//   - rng: 随机源，决定发球落点与初速；传 nil 使用全局随机源
//
// 返回:
//   - *Session: 就绪的模拟实例，球已在左缘待发
//   - error: 配置非法时返回包装了 config.ErrInvalidConfiguration 的错误
func NewSession(cfg config.Gameplay, rng components.RandSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if rng == nil {
		rng = components.NewRandSource()
	}

	return &Session{
		cfg:    cfg,
		ball:   components.NewBall(cfg.BallRadius, cfg.ArenaHeight, cfg.MoveUnit, rng),
		paddle: components.NewPaddle(cfg.PaddleWidth, cfg.PaddleHeight, cfg.ArenaWidth, cfg.ArenaHeight, cfg.MoveUnit),
		score:  NewScoreTracker(cfg.HitReward, cfg.MissPenalty),
	}, nil
}

// SetInput 更新一个方向的按住状态
//
// 状态保持到下一次调用为止，同一方向重复设置以最后一次为准。
// 必须与 Update 在同一 goroutine 调用。
func (s *Session) SetInput(dir Direction, pressed bool) {
	switch dir {
	case DirectionUp:
		s.input.HoldingUp = pressed
	case DirectionDown:
		s.input.HoldingDown = pressed
	}
}

// Update 推进一帧并返回帧末快照
//
// 每帧固定五步，顺序不可调换：
//  1. 球按速度位移
//  2. 按住的方向移动球拍
//  3. 漏接判定（球心越过右缘：扣分并重新发球）
//  4. 击中判定（球拍拦下正在右行的球：反弹并加分）
//  5. 墙壁反弹（左、下、上三面，带方向门）
//
// 球出界或穿拍都在本帧内被纠正，调用方看到的快照已经是处理后的状态。
func (s *Session) Update() Snapshot {
	s.ball.Advance()
	s.applyInput()
	s.checkMiss()
	s.checkHit()
	s.checkWalls()

	s.frame++
	return s.Snapshot()
}

// applyInput 把按住的方向转为球拍移动
//
// 先处理向下再处理向上，两个方向都按住时两步各自执行、各自钳制。
func (s *Session) applyInput() {
	if s.input.HoldingDown {
		s.paddle.MoveDown()
	}
	if s.input.HoldingUp {
		s.paddle.MoveUp()
	}
}

// checkMiss 漏接判定
//
// 球心 X 严格大于场地宽度才算出界，恰好压在右缘不算。
// 出界后扣分并调用 Restart 重新发球，本帧后续步骤继续执行。
func (s *Session) checkMiss() {
	if s.ball.Center.X > float64(s.cfg.ArenaWidth) {
		s.score.Miss()
		s.ball.Restart()
		log.Printf("[Session] Miss: ball escaped past right edge, score %d", s.score.Value())
	}
}

// checkHit 击中判定
//
// 球心进入球拍按球半径外扩后的矩形（两轴都取严格小于），
// 且球正在向右运动时，水平反弹并加分。
// 方向门挡住刚反弹还没离开重叠区的球，避免一次接触加两次分。
func (s *Session) checkHit() {
	closeX := math.Abs(s.ball.Center.X-s.paddle.Center.X) < s.paddle.Width/2+s.ball.Radius
	closeY := math.Abs(s.ball.Center.Y-s.paddle.Center.Y) < s.paddle.Height/2+s.ball.Radius

	if closeX && closeY && s.ball.Velocity.Dx > 0 {
		s.ball.BounceHorizontal()
		s.score.Hit()
		log.Printf("[Session] Hit: paddle deflected ball at y=%.0f, score %d", s.ball.Center.Y, s.score.Value())
	}
}

// checkWalls 墙壁反弹
//
// 三面墙独立判定：左缘反转水平速度，上下缘反转垂直速度。
// 每个判定都带方向门：只有正在朝墙运动的球才反弹，
// 已经弹开但尚未离开墙区的球不会被再次反转。
// 右缘没有墙，由漏接判定处理。
func (s *Session) checkWalls() {
	if s.ball.Center.X < s.ball.Radius && s.ball.Velocity.Dx < 0 {
		s.ball.BounceHorizontal()
	}
	if s.ball.Center.Y < s.ball.Radius && s.ball.Velocity.Dy < 0 {
		s.ball.BounceVertical()
	}
	if s.ball.Center.Y > float64(s.cfg.ArenaHeight)-s.ball.Radius && s.ball.Velocity.Dy > 0 {
		s.ball.BounceVertical()
	}
}

// Snapshot 返回当前状态的只读快照
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:        s.frame,
		BallCenter:   s.ball.Center,
		BallRadius:   s.ball.Radius,
		PaddleCenter: s.paddle.Center,
		PaddleWidth:  s.paddle.Width,
		PaddleHeight: s.paddle.Height,
		Score:        s.score.Value(),
	}
}

// Score 返回当前得分
func (s *Session) Score() int {
	return s.score.Value()
}

// Ball 返回球实例，测试与校验工具使用
func (s *Session) Ball() *components.Ball {
	return s.ball
}

// Paddle 返回球拍实例，测试与校验工具使用
func (s *Session) Paddle() *components.Paddle {
	return s.paddle
}

// Input 返回当前输入状态
func (s *Session) Input() InputState {
	return s.input
}

// Config 返回本局使用的玩法配置
func (s *Session) Config() config.Gameplay {
	return s.cfg
}
