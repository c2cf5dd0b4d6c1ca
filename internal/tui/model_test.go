package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petquest/internal/coach"
	"petquest/internal/engine"
	"petquest/internal/storage"
)

func newTestModel(t *testing.T) boardModel {
	t.Helper()
	eng, err := engine.New(context.Background(), engine.Options{KV: storage.NewMemory(), Location: time.UTC})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	t.Cleanup(eng.Close)
	m := newBoardModel(context.Background(), eng, coach.NewFeed(coach.New(nil, nil, 0)))
	t.Cleanup(m.unsubscribe)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to the model and runs the returned command once, feeding
// its message back in.
func press(t *testing.T, m boardModel, msg tea.Msg) boardModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(boardModel)
	if cmd == nil {
		return m
	}
	if out := cmd(); out != nil {
		next, _ = m.Update(out)
		m = next.(boardModel)
	}
	return m
}

func TestBoardAddCompleteUndo(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("a"))
	if !m.adding {
		t.Fatalf("expected input mode")
	}
	m = press(t, m, runes("Read book @ 3h"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.adding {
		t.Fatalf("expected input mode to end")
	}
	if len(m.tasks) != 1 || m.tasks[0].Title != "Read book" {
		t.Fatalf("tasks = %+v, log %q", m.tasks, m.lastLog)
	}

	m = press(t, m, runes("c"))
	if m.points <= engine.StartingPoints {
		t.Fatalf("points = %d after completion", m.points)
	}
	if !m.undoable || !strings.Contains(m.lastLog, "undo") {
		t.Fatalf("expected undo offer, log %q", m.lastLog)
	}

	m = press(t, m, runes("c"))
	if m.lastLog != "Already done." {
		t.Fatalf("log = %q", m.lastLog)
	}

	m = press(t, m, runes("u"))
	if m.points != engine.StartingPoints || m.lastLog != "Undone." {
		t.Fatalf("after undo points=%d log=%q", m.points, m.lastLog)
	}

	m = press(t, m, runes("d"))
	if len(m.tasks) != 0 {
		t.Fatalf("expected task deleted, got %d", len(m.tasks))
	}
}

func TestBoardAddRejectsBadDeadline(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("a"))
	m = press(t, m, runes("x @ someday"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.lastLog, "Error:") {
		t.Fatalf("log = %q", m.lastLog)
	}
	if len(m.tasks) != 0 {
		t.Fatalf("unexpected task added")
	}
}

func TestBoardRowsOrderOpenFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := boardModel{tasks: []engine.Task{
		{ID: "done", Completed: true, Deadline: now},
		{ID: "late", Deadline: now.Add(5 * time.Hour)},
		{ID: "soon", Deadline: now.Add(time.Hour)},
	}}
	var ids []string
	for _, r := range m.rows() {
		ids = append(ids, r.ID)
	}
	if got := strings.Join(ids, ","); got != "soon,late,done" {
		t.Fatalf("rows = %s", got)
	}
}

func TestBoardViewShowsPet(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, m.pet.Name) {
		t.Fatalf("view missing pet name %q", m.pet.Name)
	}
	if !strings.Contains(view, coach.FallbackQuote) {
		t.Fatalf("view missing quote")
	}
}

func TestNextMilestone(t *testing.T) {
	cases := map[int]int{0: 5, 4: 5, 5: 10, 12: 15}
	for in, want := range cases {
		if got := nextMilestone(in); got != want {
			t.Fatalf("nextMilestone(%d) = %d, want %d", in, got, want)
		}
	}
}
