package reset

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// ResetEvent is emitted once per local midnight crossing.
type ResetEvent struct {
	Date model.Day
}

// Engine fires a ResetEvent on its output channel each time the wall
// clock crosses midnight in the configured location. Events are
// delivered non-blocking; a slow consumer loses events rather than
// stalling the loop, and Dropped reports how many were lost.
type Engine struct {
	mu      sync.Mutex
	loc     *time.Location
	now     func() time.Time
	out     chan ResetEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

type EngineOption func(*Engine)

// WithLocation sets the time zone whose midnight triggers the reset.
func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) { e.loc = loc }
}

func WithNowFunc(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func NewEngine(bufferSize int, opts ...EngineOption) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	e := &Engine{
		loc:    time.Local,
		now:    time.Now,
		out:    make(chan ResetEvent, bufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) C() <-chan ResetEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		now := e.now().In(e.loc)
		next := nextMidnight(now)

		wait := next.Sub(now)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			ev := ResetEvent{Date: model.DayOf(e.now().In(e.loc))}
			select {
			case e.out <- ev:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

// nextMidnight returns the first instant of the day after now. DST
// transitions are handled by time.Date normalizing in the location.
func nextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
