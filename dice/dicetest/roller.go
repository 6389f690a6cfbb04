package dicetest

import "conquest/dice"

// Roller is a fake dice.Roller that replays queued results.
type Roller struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// FloatResults is a queue of results to return from Float64
	FloatResults []float64
	floatIndex   int
}

var _ dice.Roller = (*Roller)(nil)

func NewRoller() *Roller {
	return &Roller{}
}

// Intn returns the next queued result clamped to [0, n), or 0 if none remaining
func (r *Roller) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if n <= 0 || result < 0 {
		return 0
	}
	if result >= n {
		return n - 1
	}
	return result
}

// Float64 returns the next queued result, or 0 if none remaining
func (r *Roller) Float64() float64 {
	if r.floatIndex >= len(r.FloatResults) {
		return 0
	}
	result := r.FloatResults[r.floatIndex]
	r.floatIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *Roller) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueFloat adds values to the Float64 result queue
func (r *Roller) QueueFloat(values ...float64) {
	r.FloatResults = append(r.FloatResults, values...)
}

// Reset clears all queued results
func (r *Roller) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.FloatResults = nil
	r.floatIndex = 0
}
