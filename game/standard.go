package game

import "math"

// StandardRules favours the defender: at equal troop counts the defense
// multiplier range sits above the attack one.
type StandardRules struct {
	AttackMin, AttackMax   float64
	DefenseMin, DefenseMax float64
	AttackerLossRate       float64
	DefenderLossRate       float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AttackMin:        0.8,
		AttackMax:        1.2,
		DefenseMin:       1.0,
		DefenseMax:       1.5,
		AttackerLossRate: 0.7,
		DefenderLossRate: 0.3,
	}
}

func (sr *StandardRules) AttackRange() (float64, float64) {
	return sr.AttackMin, sr.AttackMax
}

func (sr *StandardRules) DefenseRange() (float64, float64) {
	return sr.DefenseMin, sr.DefenseMax
}

func (sr *StandardRules) AttackerLosses(n int) int {
	return max(1, int(math.Floor(float64(n)*sr.AttackerLossRate)))
}

func (sr *StandardRules) DefenderLosses(n int) int {
	return int(math.Floor(float64(n) * sr.DefenderLossRate))
}
