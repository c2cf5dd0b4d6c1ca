package engine

import (
	"sync"
	"time"
)

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so tests can drive the undo, celebration and mood timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SystemClock is the wall clock.
var SystemClock Clock = realClock{}

const (
	timerUndo        = "undo"
	timerCelebration = "celebration"
	timerMood        = "mood"

	UndoWindow        = 5 * time.Second
	CelebrationWindow = 2 * time.Second
	MoodRefresh       = 60 * time.Second
)

type timerEntry struct {
	t   Timer
	gen uint64
}

// timerSet keeps at most one pending timer per name. Scheduling a name stops
// the previous timer, and a callback that lost the race to Stop is dropped.
type timerSet struct {
	mu     sync.Mutex
	clock  Clock
	gen    uint64
	byName map[string]timerEntry
	closed bool
}

func newTimerSet(c Clock) *timerSet {
	return &timerSet{clock: c, byName: map[string]timerEntry{}}
}

func (s *timerSet) Schedule(name string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if prev, ok := s.byName[name]; ok {
		prev.t.Stop()
	}
	s.gen++
	gen := s.gen
	t := s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		cur, ok := s.byName[name]
		if s.closed || !ok || cur.gen != gen {
			s.mu.Unlock()
			return
		}
		delete(s.byName, name)
		s.mu.Unlock()
		fn()
	})
	s.byName[name] = timerEntry{t: t, gen: gen}
}

func (s *timerSet) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byName[name]; ok {
		prev.t.Stop()
		delete(s.byName, name)
	}
}

func (s *timerSet) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byName[name]
	return ok
}

func (s *timerSet) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, e := range s.byName {
		e.t.Stop()
		delete(s.byName, name)
	}
	s.closed = true
}
