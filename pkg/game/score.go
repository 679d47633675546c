package game

// ScoreTracker 记录一局的得分
//
// 得分只通过 Hit / Miss 两个事件变化：击中加 hitReward，
// 漏接减 missPenalty。允许为负，没有上下限。
type ScoreTracker struct {
	value       int // 当前得分
	hitReward   int // 击中加分
	missPenalty int // 漏接扣分
}

// NewScoreTracker 创建一个从 0 开始计分的追踪器
func NewScoreTracker(hitReward, missPenalty int) *ScoreTracker {
	return &ScoreTracker{
		hitReward:   hitReward,
		missPenalty: missPenalty,
	}
}

// Hit 记录一次击中
func (s *ScoreTracker) Hit() {
	s.value += s.hitReward
}

// Miss 记录一次漏接
func (s *ScoreTracker) Miss() {
	s.value -= s.missPenalty
}

// Value 返回当前得分
func (s *ScoreTracker) Value() int {
	return s.value
}
