package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/arthur-debert/keyremap/pkg/keys"
)

// Step is one entry in a Recorder's log.
type Step struct {
	// Sleep is non-zero for a settle wait; Key and Press are unset then.
	Sleep time.Duration
	Key   keys.Key
	Press bool
}

func (s Step) String() string {
	if s.Sleep > 0 {
		return "sleep " + s.Sleep.String()
	}
	if s.Press {
		return "press " + s.Key.String()
	}
	return "release " + s.Key.String()
}

// Recorder is an Injector that records injections and sleeps in order. Pass
// its Sleep method to WithSleep to capture the settle delay in the same log.
// FailOn makes injections of the listed keys fail.
type Recorder struct {
	mu     sync.Mutex
	steps  []Step
	FailOn map[keys.Key]bool
}

// InjectKey implements Injector.
func (r *Recorder) InjectKey(k keys.Key, press bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Key: k, Press: press})
	if r.FailOn[k] {
		return fmt.Errorf("inject %s refused", k)
	}
	return nil
}

// Sleep records d instead of waiting.
func (r *Recorder) Sleep(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Sleep: d})
}

// Steps returns a copy of the log.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Step(nil), r.steps...)
}

// Lines renders the log one step per string.
func (r *Recorder) Lines() []string {
	steps := r.Steps()
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.String()
	}
	return out
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
}
