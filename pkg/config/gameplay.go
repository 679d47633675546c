package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration 表示玩法配置不满足最小几何约束
//
// 典型情形：场地比球的直径还小、球拍放不进场地、步长为零。
// 这类配置会产生越界的随机落点，必须在构造一局之前拒绝。
// 调用方用 errors.Is 判断。
var ErrInvalidConfiguration = errors.New("invalid gameplay configuration")

// Gameplay 玩法配置
//
// 所有数值都以竞技场坐标为单位。默认值复刻原版常量：
// 场地 400×300、球半径 10、球拍 10×50、步长 4、击中 +1、漏接 -5。
//
// 配置文件位置: data/gameplay.yaml
type Gameplay struct {
	// ArenaWidth / ArenaHeight 场地尺寸
	ArenaWidth  int `yaml:"arenaWidth"`
	ArenaHeight int `yaml:"arenaHeight"`

	// BallRadius 球半径（一局之内固定）
	BallRadius int `yaml:"ballRadius"`

	// PaddleWidth / PaddleHeight 球拍尺寸
	PaddleWidth  int `yaml:"paddleWidth"`
	PaddleHeight int `yaml:"paddleHeight"`

	// MoveUnit 每帧步长：球拍单步距离，也是球速随机区间的基准
	MoveUnit int `yaml:"moveUnit"`

	// HitReward 击中加分
	HitReward int `yaml:"hitReward"`

	// MissPenalty 漏接扣分（幅度通常大于 HitReward）
	MissPenalty int `yaml:"missPenalty"`
}

// DefaultGameplay 返回原版常量组成的默认配置
func DefaultGameplay() Gameplay {
	return Gameplay{
		ArenaWidth:   400,
		ArenaHeight:  300,
		BallRadius:   10,
		PaddleWidth:  10,
		PaddleHeight: 50,
		MoveUnit:     4,
		HitReward:    1,
		MissPenalty:  5,
	}
}

// LoadGameplay 从磁盘加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - Gameplay: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameplay(path string) (Gameplay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Gameplay{}, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplay(data)
}

// ParseGameplay 解析 YAML 字节并校验
//
// 未出现的字段回落到 DefaultGameplay 的值，解析成功后执行 Validate。
func ParseGameplay(data []byte) (Gameplay, error) {
	cfg := DefaultGameplay()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Gameplay{}, fmt.Errorf("failed to parse gameplay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Gameplay{}, err
	}
	return cfg, nil
}

// Validate 校验配置有效性
//
// 规则：
//   - 尺寸、半径与步长必须为正
//   - 场地两个方向都不小于球直径的两倍，保证随机落点区间非空
//   - 球拍必须完整放得进场地
//   - 奖惩分值不允许为负
//
// 返回:
//   - error: 违反任一规则时返回包装了 ErrInvalidConfiguration 的错误
func (c Gameplay) Validate() error {
	if c.ArenaWidth < 1 || c.ArenaHeight < 1 {
		return fmt.Errorf("%w: arena %dx%d must be positive",
			ErrInvalidConfiguration, c.ArenaWidth, c.ArenaHeight)
	}
	if c.BallRadius < 1 {
		return fmt.Errorf("%w: ball radius %d must be positive",
			ErrInvalidConfiguration, c.BallRadius)
	}
	if c.PaddleWidth < 1 || c.PaddleHeight < 1 {
		return fmt.Errorf("%w: paddle %dx%d must be positive",
			ErrInvalidConfiguration, c.PaddleWidth, c.PaddleHeight)
	}
	if c.MoveUnit < 1 {
		return fmt.Errorf("%w: move unit %d must be positive",
			ErrInvalidConfiguration, c.MoveUnit)
	}
	if c.ArenaWidth < 2*c.BallRadius || c.ArenaHeight < 2*c.BallRadius {
		return fmt.Errorf("%w: arena %dx%d smaller than twice the ball radius %d",
			ErrInvalidConfiguration, c.ArenaWidth, c.ArenaHeight, c.BallRadius)
	}
	if c.PaddleHeight > c.ArenaHeight {
		return fmt.Errorf("%w: paddle height %d exceeds arena height %d",
			ErrInvalidConfiguration, c.PaddleHeight, c.ArenaHeight)
	}
	if c.PaddleWidth >= c.ArenaWidth {
		return fmt.Errorf("%w: paddle width %d does not fit arena width %d",
			ErrInvalidConfiguration, c.PaddleWidth, c.ArenaWidth)
	}
	if c.HitReward < 0 || c.MissPenalty < 0 {
		return fmt.Errorf("%w: score deltas hit=%d miss=%d must not be negative",
			ErrInvalidConfiguration, c.HitReward, c.MissPenalty)
	}
	return nil
}
