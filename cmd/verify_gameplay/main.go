// verify_gameplay 是无头模式的玩法验证工具
//
// 它以固定种子快进模拟若干帧，用自动跟球的挡板驱动输入，
// 并在每帧之后检查核心不变量：
//   - 球的横坐标始终落在场地内（漏球当帧即重新发球）
//   - 球的纵坐标只允许越界一个步长（反弹在越界后的下一帧生效）
//   - 计分只能按 +hitReward / -missPenalty 跳变
//
// 用法：
//
//	go run ./cmd/verify_gameplay -frames 3600 -seed 1 -verbose
//	go run ./cmd/verify_gameplay -autopilot=false
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
)

var (
	frames     = flag.Int("frames", 3600, "模拟帧数")
	seed       = flag.Int64("seed", 1, "随机种子，固定种子保证结果可复现")
	autopilot  = flag.Bool("autopilot", true, "自动跟球（关闭后挡板静止，用于验证漏球路径）")
	verbose    = flag.Bool("verbose", false, "显示每次得分事件")
	configPath = flag.String("config", "", "玩法配置文件路径，为空则使用默认配置")
)

// verifier 跟踪模拟过程中的统计量和违规
type verifier struct {
	cfg        config.Gameplay
	session    *game.Session
	hits       int
	misses     int
	violations int
	prevScore  int
}

func main() {
	flag.Parse()

	// 非详细模式下静音模拟层的逐事件日志，只保留汇总输出
	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load gameplay config: %v\n", err)
		os.Exit(1)
	}

	session, err := game.NewSession(cfg, components.NewSeededRandSource(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("==========================================================")
	fmt.Println("玩法不变量验证工具")
	fmt.Println("==========================================================")
	fmt.Printf("场地: %dx%d  球半径: %d  挡板: %dx%d  步长: %d\n",
		cfg.ArenaWidth, cfg.ArenaHeight, cfg.BallRadius,
		cfg.PaddleWidth, cfg.PaddleHeight, cfg.MoveUnit)
	fmt.Printf("帧数: %d  种子: %d  自动跟球: %v\n", *frames, *seed, *autopilot)
	fmt.Println()

	v := &verifier{cfg: cfg, session: session}
	for i := 0; i < *frames; i++ {
		if *autopilot {
			v.steer()
		}
		snap := session.Update()
		v.check(snap)
	}

	fmt.Println()
	fmt.Println("==========================================================")
	fmt.Printf("结果: 帧数=%d 接球=%d 漏球=%d 最终得分=%d\n",
		*frames, v.hits, v.misses, v.session.Score())
	if v.violations > 0 {
		fmt.Printf("发现 %d 处不变量违规\n", v.violations)
		os.Exit(1)
	}
	fmt.Println("所有不变量均满足")
}

// loadConfig 加载玩法配置，未指定文件时使用内置默认值
func loadConfig(path string) (config.Gameplay, error) {
	if path == "" {
		return config.DefaultGameplay(), nil
	}
	return config.LoadGameplay(path)
}

// steer 让挡板朝球的纵坐标移动
// 一次只按住一个方向，与真实键盘输入的形态一致
func (v *verifier) steer() {
	ballY := v.session.Ball().Center.Y
	paddleY := v.session.Paddle().Center.Y

	v.session.SetInput(game.DirectionUp, ballY > paddleY)
	v.session.SetInput(game.DirectionDown, ballY < paddleY)
}

// check 校验一帧结束后的不变量
func (v *verifier) check(snap game.Snapshot) {
	ball := v.session.Ball()

	// 横坐标必须在场地内：漏球在同一帧内触发重新发球
	if snap.BallCenter.X < 0 || snap.BallCenter.X > float64(v.cfg.ArenaWidth) {
		v.fail(snap, "ball x out of arena: %.2f", snap.BallCenter.X)
	}

	// 纵坐标最多越界一个当前步长：反弹只翻转方向，不回退位置
	slack := math.Abs(ball.Velocity.Dy)
	yMin := snap.BallRadius - slack
	yMax := float64(v.cfg.ArenaHeight) - snap.BallRadius + slack
	if snap.BallCenter.Y < yMin || snap.BallCenter.Y > yMax {
		v.fail(snap, "ball y out of band [%.2f, %.2f]: %.2f", yMin, yMax, snap.BallCenter.Y)
	}

	// 挡板中心必须停在场地内
	paddle := v.session.Paddle()
	if paddle.Center.Y < 0 || paddle.Center.Y > float64(v.cfg.ArenaHeight) {
		v.fail(snap, "paddle y out of arena: %.2f", paddle.Center.Y)
	}

	// 计分只能按固定值跳变
	delta := snap.Score - v.prevScore
	switch delta {
	case 0:
		// 无事件
	case v.cfg.HitReward:
		v.hits++
		if ball.Velocity.Dx >= 0 {
			v.fail(snap, "hit scored but ball still moving right (dx=%.2f)", ball.Velocity.Dx)
		}
		if *verbose {
			log.Printf("[Verify] frame %d: hit, score %d", snap.Frame, snap.Score)
		}
	case -v.cfg.MissPenalty:
		v.misses++
		if snap.BallCenter.X != 0 {
			v.fail(snap, "miss scored but ball not restarted (x=%.2f)", snap.BallCenter.X)
		}
		if *verbose {
			log.Printf("[Verify] frame %d: miss, score %d", snap.Frame, snap.Score)
		}
	default:
		v.fail(snap, "unexpected score delta %d", delta)
	}
	v.prevScore = snap.Score
}

// fail 记录一处违规
func (v *verifier) fail(snap game.Snapshot, format string, args ...interface{}) {
	v.violations++
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("VIOLATION frame %d: %s (ball %.1f,%.1f score %d)\n",
		snap.Frame, msg, snap.BallCenter.X, snap.BallCenter.Y, snap.Score)
}
