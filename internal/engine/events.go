package engine

import (
	"sync"
	"time"
)

type EventKind string

const (
	EventState        EventKind = "state"
	EventCompleted    EventKind = "task_completed"
	EventUndone       EventKind = "task_uncompleted"
	EventUndoExpired  EventKind = "undo_expired"
	EventCelebration  EventKind = "celebration"
	EventMood         EventKind = "mood"
	EventAchievements EventKind = "achievements_unlocked"
	EventPetsGranted  EventKind = "pets_granted"
)

// Event is published after a change has been persisted.
type Event struct {
	Kind        EventKind `json:"kind"`
	At          time.Time `json:"at"`
	TaskID      string    `json:"taskId,omitempty"`
	Earned      int       `json:"earned,omitempty"`
	IDs         []string  `json:"ids,omitempty"`
	Mood        Mood      `json:"mood,omitempty"`
	Celebrating bool      `json:"celebrating,omitempty"`
}

// bus fans events out to subscribers. Slow subscribers miss events rather
// than block the engine.
type bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func newBus() *bus {
	return &bus{subs: map[int]chan Event{}}
}

func (b *bus) subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
			b.mu.Unlock()
		})
	}
}

func (b *bus) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *bus) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
