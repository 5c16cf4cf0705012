// pkg/synth/synth_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Recorder, Mock Injector
// PURPOSE: Test injection ordering, settle delay and failure isolation

package synth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInjector is a mock implementation of synth.Injector for testing
type MockInjector struct {
	mock.Mock
}

func (m *MockInjector) InjectKey(k keys.Key, press bool) error {
	args := m.Called(k, press)
	return args.Error(0)
}

func TestFireSingle(t *testing.T) {
	rec := &synth.Recorder{}
	s := synth.New(rec, synth.WithSleep(rec.Sleep))

	r := s.FireSingle(keys.KeyB, true)
	assert.Equal(t, synth.Report{Attempted: 1}, r)
	assert.True(t, r.OK())

	s.FireSingle(keys.KeyB, false)
	assert.Equal(t, []string{"press KeyB", "release KeyB"}, rec.Lines())
}

func TestFireCombinationOrder(t *testing.T) {
	rec := &synth.Recorder{}
	s := synth.New(rec, synth.WithSleep(rec.Sleep))

	r := s.FireCombination([]keys.Key{keys.KeyControlLeft, keys.KeyShiftLeft, keys.KeyT})

	assert.Equal(t, synth.Report{Attempted: 6}, r)
	assert.Equal(t, []string{
		"press ControlLeft",
		"press ShiftLeft",
		"press KeyT",
		"sleep 20ms",
		"release KeyT",
		"release ShiftLeft",
		"release ControlLeft",
	}, rec.Lines())
}

func TestFireCombinationSingleKey(t *testing.T) {
	rec := &synth.Recorder{}
	s := synth.New(rec, synth.WithSleep(rec.Sleep))

	s.FireCombination([]keys.Key{keys.KeyA})
	assert.Equal(t, []string{"press KeyA", "sleep 20ms", "release KeyA"}, rec.Lines())
}

func TestFireCombinationEmpty(t *testing.T) {
	rec := &synth.Recorder{}
	s := synth.New(rec, synth.WithSleep(rec.Sleep))

	r := s.FireCombination(nil)
	assert.Equal(t, synth.Report{}, r)
	assert.Empty(t, rec.Steps())
}

func TestFireCombinationContinuesAfterFailure(t *testing.T) {
	rec := &synth.Recorder{FailOn: map[keys.Key]bool{keys.KeyShiftLeft: true}}
	s := synth.New(rec, synth.WithSleep(rec.Sleep))

	r := s.FireCombination([]keys.Key{keys.KeyControlLeft, keys.KeyShiftLeft, keys.KeyT})

	assert.Equal(t, 6, r.Attempted)
	assert.Equal(t, 2, r.Failed)
	assert.False(t, r.OK())
	assert.Len(t, rec.Steps(), 7)
}

func TestFireWithMockInjector(t *testing.T) {
	inj := new(MockInjector)
	inj.On("InjectKey", keys.KeyControlLeft, true).Return(nil).Once()
	inj.On("InjectKey", keys.KeyC, true).Return(errors.New("device gone")).Once()
	inj.On("InjectKey", keys.KeyC, false).Return(nil).Once()
	inj.On("InjectKey", keys.KeyControlLeft, false).Return(nil).Once()

	var slept []time.Duration
	s := synth.New(inj, synth.WithSleep(func(d time.Duration) { slept = append(slept, d) }))

	r := s.FireCombination([]keys.Key{keys.KeyControlLeft, keys.KeyC})

	assert.Equal(t, synth.Report{Attempted: 4, Failed: 1}, r)
	assert.Equal(t, []time.Duration{synth.SettleDelay}, slept)
	inj.AssertExpectations(t)
}

func TestSettleDelayOverride(t *testing.T) {
	rec := &synth.Recorder{}
	s := synth.New(rec, synth.WithSleep(rec.Sleep), synth.WithSettleDelay(5*time.Millisecond))

	s.FireCombination([]keys.Key{keys.KeyA, keys.KeyB})
	assert.Contains(t, rec.Lines(), "sleep 5ms")
}

func TestNilInjector(t *testing.T) {
	s := synth.New(nil, synth.WithSleep(func(time.Duration) {}))

	r := s.FireSingle(keys.KeyA, true)
	assert.Equal(t, synth.Report{Attempted: 1, Failed: 1}, r)
}

func TestInjectorFunc(t *testing.T) {
	var got []keys.Key
	inj := synth.InjectorFunc(func(k keys.Key, press bool) error {
		got = append(got, k)
		return nil
	})

	synth.New(inj).FireSingle(keys.KeyZ, false)
	assert.Equal(t, []keys.Key{keys.KeyZ}, got)
}
