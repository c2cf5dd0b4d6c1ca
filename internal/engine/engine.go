// Package engine owns the game state: tasks, points, stats, unlocks,
// achievements and friends. Every command method validates, applies the
// change to a copy, persists the touched keys in one storage write, and only
// then swaps the copy in and publishes an Event.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"petquest/internal/catalog"
	"petquest/internal/social"
	"petquest/internal/storage"
)

// Rand is the randomness the engine consumes: friend activity rolls and the
// user code. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.Intn(n) }

type Options struct {
	KV       storage.KV
	Clock    Clock
	Rand     Rand
	Logger   *slog.Logger
	Location *time.Location
}

type undoSnapshot struct {
	taskID          string
	previousStats   UserStats
	earned          int
	previousFriends []social.Friend
}

type Engine struct {
	mu  sync.Mutex
	kv  storage.KV
	rnd Rand
	log *slog.Logger
	loc *time.Location

	clock  Clock
	timers *timerSet
	events *bus

	st          *State
	undo        *undoSnapshot
	celebrating bool
	celebrateID uint64
	mood        Mood
}

// New loads state from opts.KV, writes back any defaulted keys, and starts the
// periodic mood refresh.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.KV == nil {
		return nil, errors.New("engine: KV is required")
	}
	e := &Engine{
		kv:    opts.KV,
		rnd:   opts.Rand,
		log:   opts.Logger,
		loc:   opts.Location,
		clock: opts.Clock,
	}
	if e.rnd == nil {
		e.rnd = globalRand{}
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.loc == nil {
		e.loc = time.Local
	}
	if e.clock == nil {
		e.clock = SystemClock
	}
	e.timers = newTimerSet(e.clock)
	e.events = newBus()

	res, err := loadState(ctx, e.kv, e.log)
	if err != nil {
		return nil, err
	}
	st := res.state
	if st.UserCode == "" {
		st.UserCode = NewUserCode(e.rnd)
	}
	if len(res.defaulted) > 0 {
		entries, err := encodeKeys(st, res.defaulted)
		if err != nil {
			return nil, err
		}
		if err := e.kv.SetMany(ctx, entries); err != nil {
			return nil, fmt.Errorf("write defaults: %w", err)
		}
		e.log.DebugContext(ctx, "wrote default state", "keys", res.defaulted)
	}
	e.st = st
	e.mood = ComputeMood(st.Tasks, e.clock.Now())
	e.scheduleMood()
	return e, nil
}

// Close stops all timers and closes subscriber channels. It does not close the KV.
func (e *Engine) Close() {
	e.timers.StopAll()
	e.events.closeAll()
}

// Subscribe returns a channel of events and a func to stop receiving them.
func (e *Engine) Subscribe(buffer int) (<-chan Event, func()) {
	return e.events.subscribe(buffer)
}

func (e *Engine) Now() time.Time { return e.clock.Now() }

func (e *Engine) Location() *time.Location { return e.loc }

// commit persists keys from next and swaps it in. Callers hold e.mu.
func (e *Engine) commit(ctx context.Context, next *State, keys ...string) error {
	entries, err := encodeKeys(next, keys)
	if err != nil {
		return err
	}
	if err := e.kv.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	e.st = next
	e.refreshMoodLocked()
	e.events.publish(Event{Kind: EventState, At: e.clock.Now()})
	return nil
}

func (e *Engine) refreshMoodLocked() {
	now := e.clock.Now()
	m := ComputeMood(e.st.Tasks, now)
	if m == e.mood {
		return
	}
	e.mood = m
	e.events.publish(Event{Kind: EventMood, At: now, Mood: m})
}

func (e *Engine) scheduleMood() {
	e.timers.Schedule(timerMood, MoodRefresh, func() {
		e.mu.Lock()
		e.refreshMoodLocked()
		e.mu.Unlock()
		e.scheduleMood()
	})
}

// State returns a detached copy of the whole game state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.st.clone()
}

func (e *Engine) Points() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Points
}

func (e *Engine) Tasks() []Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Task(nil), e.st.Tasks...)
}

func (e *Engine) Stats() UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Stats
}

func (e *Engine) Achievements() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Achievement(nil), e.st.Achievements...)
}

func (e *Engine) UserCode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.UserCode
}

// Mood is the mood computed at the last change or refresh tick.
func (e *Engine) Mood() Mood {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mood
}

// MoodAt recomputes the mood for now without touching the cached value.
func (e *Engine) MoodAt(now time.Time) Mood {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeMood(e.st.Tasks, now)
}

func (e *Engine) Celebrating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.celebrating
}

// Undoable reports whether the last completion can still be undone.
func (e *Engine) Undoable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.undo != nil
}

// ActivePet resolves the active pet id, falling back to the starter pet.
func (e *Engine) ActivePet() catalog.Pet {
	e.mu.Lock()
	defer e.mu.Unlock()
	if contains(e.st.Pets, e.st.ActivePetID) {
		if p, ok := catalog.LookupPet(e.st.ActivePetID); ok {
			return p
		}
	}
	return catalog.StarterPet()
}

// ActiveTheme resolves the active theme id, falling back to the default theme.
func (e *Engine) ActiveTheme() catalog.Theme {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := catalog.LookupTheme(e.st.ActiveThemeID); ok {
		return t
	}
	return catalog.DefaultTheme()
}

// ActiveAccessory returns the equipped accessory, if any resolves.
func (e *Engine) ActiveAccessory() (catalog.Accessory, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st.ActiveAccessoryID == "" {
		return catalog.Accessory{}, false
	}
	return catalog.LookupAccessory(e.st.ActiveAccessoryID)
}

const userCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UserCodeLength is the length of the share code.
const UserCodeLength = 6

// NewUserCode returns a fresh share code.
func NewUserCode(r Rand) string {
	b := make([]byte, UserCodeLength)
	for i := range b {
		b[i] = userCodeAlphabet[r.IntN(len(userCodeAlphabet))]
	}
	return string(b)
}
