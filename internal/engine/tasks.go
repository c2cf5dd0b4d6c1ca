package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

// AddTask appends an open task. Past deadlines are allowed and make the task
// overdue immediately.
func (e *Engine) AddTask(ctx context.Context, title string, deadline time.Time, categoryID string) (Task, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return Task{}, err
	}
	task := Task{
		ID:         uuid.NewString(),
		Title:      t,
		Deadline:   deadline,
		CategoryID: strings.TrimSpace(categoryID),
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.st.clone()
	next.Tasks = append(next.Tasks, task)
	if err := e.commit(ctx, next, KeyTasks); err != nil {
		return Task{}, err
	}
	e.log.InfoContext(ctx, "task added", "task_id", task.ID, "deadline", deadline)
	return task, nil
}

// CompleteTask scores and completes a task. A missing or already completed
// task yields (nil, nil).
func (e *Engine) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.st.taskIndex(id)
	if idx < 0 || e.st.Tasks[idx].Completed {
		return nil, nil
	}

	now := e.clock.Now()
	task := e.st.Tasks[idx]
	earned := Score(task.Deadline, now)
	snap := &undoSnapshot{
		taskID:          id,
		previousStats:   e.st.Stats,
		earned:          earned,
		previousFriends: append(e.st.Friends[:0:0], e.st.Friends...),
	}

	next := e.st.clone()
	next.Points += earned
	next.Stats = applyCompletion(next.Stats, task.Deadline, now, earned, e.loc)

	completedAt, pts := now, earned
	task.Completed = true
	task.CompletedAt = &completedAt
	task.PointsEarned = &pts
	next.Tasks[idx] = task

	unlocked, pets := checkAchievements(next, now)
	e.simulateFriendActivity(next)

	if err := e.commit(ctx, next, KeyPoints, KeyStats, KeyTasks, KeyAchievements, KeyPets, KeyFriends); err != nil {
		return nil, err
	}

	e.undo = snap
	e.timers.Schedule(timerUndo, UndoWindow, func() { e.expireUndo(snap) })
	e.startCelebration(now)

	e.log.InfoContext(ctx, "task completed", "task_id", id, "earned", earned, "streak", next.Stats.CurrentStreak)
	e.events.publish(Event{Kind: EventCompleted, At: now, TaskID: id, Earned: earned})
	e.publishUnlocks(now, unlocked, pets)

	return &CompleteResult{
		TaskID:          id,
		Earned:          earned,
		Stats:           next.Stats,
		NewAchievements: unlocked,
		NewPets:         pets,
	}, nil
}

func (e *Engine) expireUndo(snap *undoSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.undo != snap {
		return
	}
	e.undo = nil
	e.events.publish(Event{Kind: EventUndoExpired, At: e.clock.Now(), TaskID: snap.taskID})
}

func (e *Engine) startCelebration(now time.Time) {
	e.celebrateID++
	id := e.celebrateID
	e.celebrating = true
	e.events.publish(Event{Kind: EventCelebration, At: now, Celebrating: true})
	e.timers.Schedule(timerCelebration, CelebrationWindow, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.celebrateID != id {
			return
		}
		e.celebrating = false
		e.events.publish(Event{Kind: EventCelebration, At: e.clock.Now()})
	})
}

// UndoCompleteTask reverts the most recent completion while the undo window
// is open. It reports false when there is nothing to undo. Achievements and
// pets granted by the completion are kept.
func (e *Engine) UndoCompleteTask(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.undo
	if snap == nil {
		return false, nil
	}

	next := e.st.clone()
	if idx := next.taskIndex(snap.taskID); idx >= 0 {
		t := next.Tasks[idx]
		t.Completed = false
		t.CompletedAt = nil
		t.PointsEarned = nil
		next.Tasks[idx] = t
	}
	next.Points -= snap.earned
	next.Stats = snap.previousStats
	next.Friends = append(snap.previousFriends[:0:0], snap.previousFriends...)

	if err := e.commit(ctx, next, KeyTasks, KeyPoints, KeyStats, KeyFriends); err != nil {
		return false, err
	}
	e.undo = nil
	e.timers.Cancel(timerUndo)

	e.log.InfoContext(ctx, "completion undone", "task_id", snap.taskID, "points", snap.earned)
	e.events.publish(Event{Kind: EventUndone, At: e.clock.Now(), TaskID: snap.taskID, Earned: snap.earned})
	return true, nil
}

// DeleteTask removes a task without touching points or stats. Unknown ids are ignored.
func (e *Engine) DeleteTask(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.st.taskIndex(id)
	if idx < 0 {
		return nil
	}
	next := e.st.clone()
	next.Tasks = append(next.Tasks[:idx], next.Tasks[idx+1:]...)
	if err := e.commit(ctx, next, KeyTasks); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}
