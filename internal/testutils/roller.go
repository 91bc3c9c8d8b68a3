package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that replays a fixed sequence of results.
// Each result is clamped to [1, size]; the sequence wraps when exhausted.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	next   int
	calls  int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller returns a roller replaying values. With no values every roll is 1.
func NewScriptedRoller(values ...int) *ScriptedRoller {
	if len(values) == 0 {
		values = []int{1}
	}
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.values[r.next%len(r.values)]
	r.next++
	r.calls++
	if v > size {
		v = size
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// RollN returns count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Calls returns how many dice were rolled
func (r *ScriptedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
