package parallax

import "time"

// Clock abstracts wall time so frame loops can be stepped in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameFunc runs once per display refresh with the time since the loop started.
type FrameFunc func(elapsed time.Duration)

type loopState int

const (
	loopIdle loopState = iota
	loopRunning
	loopCancelled
)

// Loop is a cancellable repeating frame task. The host calls Tick once per
// refresh; after Cancel no further frames run and the loop cannot restart.
type Loop struct {
	clock  Clock
	frame  FrameFunc
	start  time.Time
	state  loopState
	frames uint64
}

// NewLoop creates an idle loop. A nil clock uses the system clock.
func NewLoop(clock Clock, frame FrameFunc) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{clock: clock, frame: frame}
}

// Start schedules the first frame. It has no effect on a running or cancelled loop.
func (l *Loop) Start() {
	if l.state != loopIdle {
		return
	}
	l.start = l.clock.Now()
	l.state = loopRunning
}

// Tick runs one frame if the loop is running and reports whether it did.
func (l *Loop) Tick() bool {
	if l.state != loopRunning || l.frame == nil {
		return false
	}
	l.frames++
	l.frame(l.clock.Now().Sub(l.start))
	return true
}

// Cancel stops the loop. Safe to call more than once.
func (l *Loop) Cancel() {
	l.state = loopCancelled
}

// Running reports whether Tick will run frames.
func (l *Loop) Running() bool {
	return l.state == loopRunning
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
