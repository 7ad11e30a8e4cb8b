package textbind

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Ticker is something that wants a callback at the next scheduler tick.
// Tickers are deduplicated by identity, so the dynamic type must be
// comparable; use pointer receivers. Requests from other tickers are logged
// and dropped.
type Ticker interface {
	Tick() error
}

// Scheduler delivers one-shot tick callbacks. A ticker registers with
// RequestTick and is called once at the next Tick; it must request again to
// be called again. Tick is meant to run once per frame after all other
// updates (a "late update").
type Scheduler struct {
	pending []Ticker
	queued  map[Ticker]struct{}
	running []Ticker
	frame   uint64
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{queued: make(map[Ticker]struct{})}
}

// RequestTick schedules t for the next Tick. Repeated requests before that
// tick are collapsed into one callback. Requests made while a Tick is
// running are delivered by the following Tick.
func (s *Scheduler) RequestTick(t Ticker) {
	if t == nil {
		return
	}
	if !comparableTicker(t) {
		logger.Warn("ticker not comparable, request dropped", zap.String("type", fmt.Sprintf("%T", t)))
		return
	}
	if s.queued == nil {
		s.queued = make(map[Ticker]struct{})
	}
	if _, ok := s.queued[t]; ok {
		return
	}
	s.queued[t] = struct{}{}
	s.pending = append(s.pending, t)
}

// CancelTick removes a pending request for t. It reports whether t was
// pending.
func (s *Scheduler) CancelTick(t Ticker) bool {
	if !comparableTicker(t) {
		return false
	}
	if _, ok := s.queued[t]; !ok {
		return false
	}
	delete(s.queued, t)
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	return true
}

// Pending reports whether t is waiting for the next Tick.
func (s *Scheduler) Pending(t Ticker) bool {
	if !comparableTicker(t) {
		return false
	}
	_, ok := s.queued[t]
	return ok
}

// PendingCount returns how many tickers are waiting for the next Tick.
func (s *Scheduler) PendingCount() int {
	return len(s.pending)
}

// Frame returns the number of completed ticks.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Tick runs every ticker that was pending when the tick started, in request
// order. All of them run even if some fail; their errors are joined.
func (s *Scheduler) Tick() error {
	// Swap buffers so requests made by tickers land in the next frame.
	run := s.pending
	s.pending = s.running[:0]
	s.running = run
	clear(s.queued)

	var errs []error
	for i, t := range run {
		run[i] = nil
		if err := t.Tick(); err != nil {
			errs = append(errs, err)
		}
	}
	s.running = run[:0]
	s.frame++
	return errors.Join(errs...)
}

func comparableTicker(t Ticker) bool {
	return t == nil || reflect.TypeOf(t).Comparable()
}
