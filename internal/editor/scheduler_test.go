package editor

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerDebounces(t *testing.T) {
	s := NewScheduler(30 * time.Millisecond)
	var fires int32

	for i := 0; i < 3; i++ {
		s.Schedule(func() { atomic.AddInt32(&fires, 1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fires))
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)
	var fires int32

	s.Schedule(func() { atomic.AddInt32(&fires, 1) })
	s.Cancel()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&fires))
}

func TestSchedulerReusableAfterCancel(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	var fires int32

	s.Schedule(func() { atomic.AddInt32(&fires, 1) })
	s.Cancel()
	s.Schedule(func() { atomic.AddInt32(&fires, 1) })
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fires))
}
