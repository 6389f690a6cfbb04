package game

// Rules decides the numbers behind an attack.
type Rules interface {
	// AttackRange bounds the multiplier applied to the attacking troops
	AttackRange() (lo, hi float64)
	// DefenseRange bounds the multiplier applied to the defending troops
	DefenseRange() (lo, hi float64)
	// AttackerLosses is the number of troops an attacker loses after a failed attack with n troops
	AttackerLosses(n int) int
	// DefenderLosses is the number of troops a defender holding n troops loses after repelling an attack
	DefenderLosses(n int) int
}
