package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petquest/internal/catalog"
	"petquest/internal/coach"
	"petquest/internal/engine"
	"petquest/internal/ui"
)

const (
	tickInterval    = time.Second
	defaultDeadline = "tomorrow"
)

type boardModel struct {
	ctx  context.Context
	eng  *engine.Engine
	feed *coach.Feed

	events      <-chan engine.Event
	unsubscribe func()

	width  int
	height int
	now    time.Time

	tasks       []engine.Task
	points      int
	stats       engine.UserStats
	unlocked    int
	mood        engine.Mood
	celebrating bool
	undoable    bool
	pet         catalog.Pet
	quote       string

	selected int
	adding   bool
	input    string

	lastLog string
}

type (
	eventMsg  engine.Event
	tickMsg   time.Time
	quoteMsg  string
	resultMsg struct {
		log string
		err error
	}
)

func newBoardModel(ctx context.Context, eng *engine.Engine, feed *coach.Feed) boardModel {
	events, unsubscribe := eng.Subscribe(32)
	m := boardModel{
		ctx:         ctx,
		eng:         eng,
		feed:        feed,
		events:      events,
		unsubscribe: unsubscribe,
		quote:       feed.Latest(),
		lastLog:     "Loaded.",
	}
	m.refresh()
	return m
}

// refresh copies the engine snapshot into the model.
func (m *boardModel) refresh() {
	m.now = m.eng.Now()
	m.tasks = m.eng.Tasks()
	m.points = m.eng.Points()
	m.stats = m.eng.Stats()
	m.mood = m.eng.Mood()
	m.celebrating = m.eng.Celebrating()
	m.undoable = m.eng.Undoable()
	m.pet = m.eng.ActivePet()
	m.unlocked = 0
	for _, a := range m.eng.Achievements() {
		if a.Unlocked {
			m.unlocked++
		}
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.waitEvent(), tick(), m.quoteCmd())
}

func (m boardModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) quoteCmd() tea.Cmd {
	ch := m.feed.Request(m.ctx, coach.QuoteRequest{
		PetName:     m.pet.Name,
		UrgentCount: engine.UrgentCount(m.tasks, m.now),
		Happy:       m.mood == engine.MoodHappy,
	})
	return func() tea.Msg {
		q, ok := <-ch
		if !ok {
			return nil
		}
		return quoteMsg(q)
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.CompleteTask(m.ctx, id)
		if err != nil || res == nil {
			return resultMsg{log: "Nothing to complete.", err: err}
		}
		log := fmt.Sprintf("+%d points! Streak %d.", res.Earned, res.Stats.CurrentStreak)
		if len(res.NewAchievements) > 0 {
			log += " Unlocked: " + strings.Join(res.NewAchievements, ", ") + "."
		}
		if len(res.NewPets) > 0 {
			log += " New pet: " + strings.Join(res.NewPets, ", ") + "."
		}
		return resultMsg{log: log + " Press u to undo."}
	}
}

func (m boardModel) undoCmd() tea.Cmd {
	return func() tea.Msg {
		ok, err := m.eng.UndoCompleteTask(m.ctx)
		if err != nil {
			return resultMsg{err: err}
		}
		if !ok {
			return resultMsg{log: "Nothing to undo."}
		}
		return resultMsg{log: "Undone."}
	}
}

func (m boardModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.eng.DeleteTask(m.ctx, id); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{log: "Deleted."}
	}
}

// addCmd parses "title @ deadline"; the deadline defaults to tomorrow.
func (m boardModel) addCmd(input string) tea.Cmd {
	return func() tea.Msg {
		title, when, found := strings.Cut(input, "@")
		if !found {
			when = defaultDeadline
		}
		deadline, err := engine.ParseDeadline(when, m.eng.Now(), m.eng.Location())
		if err != nil {
			return resultMsg{err: err}
		}
		task, err := m.eng.AddTask(m.ctx, title, deadline, "")
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{log: "Added " + task.Title + "."}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case eventMsg:
		prevMood := m.mood
		m.refresh()
		cmds := []tea.Cmd{m.waitEvent()}
		if msg.Kind == engine.EventUndoExpired {
			m.lastLog = "Undo window closed."
		}
		if m.mood != prevMood {
			cmds = append(cmds, m.quoteCmd())
		}
		return m, tea.Batch(cmds...)
	case quoteMsg:
		m.quote = string(msg)
		return m, nil
	case resultMsg:
		if msg.err != nil {
			m.lastLog = "Error: " + msg.err.Error()
		} else {
			m.lastLog = msg.log
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input = ""
		m.lastLog = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		input := m.input
		m.adding = false
		m.input = ""
		return m, m.addCmd(input)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(rows)-1 {
			m.selected++
		}
	case "a":
		m.adding = true
		m.lastLog = "New task: title @ deadline (e.g. Read book @ 3h), enter to save, esc to cancel."
	case "c", " ":
		t, ok := m.selectedTask(rows)
		if !ok {
			return m, nil
		}
		if t.Completed {
			m.lastLog = "Already done."
			return m, nil
		}
		return m, m.completeCmd(t.ID)
	case "u":
		return m, m.undoCmd()
	case "d":
		if t, ok := m.selectedTask(rows); ok {
			return m, m.deleteCmd(t.ID)
		}
	case "r":
		m.lastLog = "Asking " + m.pet.Name + "..."
		return m, m.quoteCmd()
	}
	return m, nil
}

func (m boardModel) selectedTask(rows []engine.Task) (engine.Task, bool) {
	if m.selected < 0 || m.selected >= len(rows) {
		return engine.Task{}, false
	}
	return rows[m.selected], true
}

// rows orders open tasks by deadline ahead of completed ones.
func (m boardModel) rows() []engine.Task {
	rows := append([]engine.Task(nil), m.tasks...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Completed != rows[j].Completed {
			return !rows[i].Completed
		}
		return rows[i].Deadline.Before(rows[j].Deadline)
	})
	return rows
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		if maxLeft := m.width / 2; maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	n := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}
	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	return fmt.Sprintf("%s | %s | %s",
		ui.Heading(ui.IconPaw, "Petquest"),
		ui.Points(m.points),
		ui.LabelValue("Streak", fmt.Sprintf("%d %s", m.stats.CurrentStreak, ui.IconFire)),
	)
}

func (m boardModel) renderSidebar() string {
	lines := []string{
		ui.PetIcon(string(m.pet.Type)) + " " + m.pet.Name,
		ui.MoodFace(string(m.mood)) + " " + ui.MoodText(string(m.mood)),
	}
	if m.celebrating {
		lines = append(lines, ui.IconSparkle+" "+ui.BadgeCelebrate)
	}
	lines = append(lines, "", ui.IconSpeech+" "+m.quote, "")
	lines = append(lines, "Achievements "+progressBar(m.unlocked, nextMilestone(m.unlocked), 12))
	lines = append(lines, fmt.Sprintf("Done %d | Early %d", m.stats.TotalCompleted, m.stats.EarlyCompletions))
	lines = append(lines, "", "Keys",
		"- ↑/↓ or j/k: move",
		"- c/space: complete",
		"- u: undo",
		"- a: add  d: delete",
		"- r: new quote",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	out := []string{ui.H2.Render("Tasks")}
	rows := m.rows()
	if len(rows) == 0 {
		out = append(out, ui.Muted.Render("(no tasks, press a to add one)"))
	}
	for i, t := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		var line string
		if t.Completed {
			earned := 0
			if t.PointsEarned != nil {
				earned = *t.PointsEarned
			}
			line = fmt.Sprintf("%s %s +%d", ui.IconDone, ui.Done.Render(t.Title), earned)
		} else {
			line = fmt.Sprintf("[ ] %s  %s  %s", t.Title, ui.TimeLeft(t.Deadline, m.now), ui.Muted.Render(m.eng.CategoryName(t.CategoryID)))
		}
		out = append(out, cursor+line)
	}
	if m.adding {
		out = append(out, "", ui.IconPlus+" "+m.input+"_")
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	undo := ""
	if m.undoable {
		undo = "  " + ui.Warn.Render(ui.IconUndo+" undo available")
	}
	return "\n" + m.lastLog + undo
}

// nextMilestone is the unlocked-achievement count at which the next reward pet arrives.
func nextMilestone(unlocked int) int {
	for _, th := range catalog.MilestoneThresholds {
		if unlocked < th {
			return th
		}
	}
	return len(catalog.Achievements())
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = min(max(value, 0), total)
	filled := min(value*width/total, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]" + fmt.Sprintf(" %d/%d", value, total)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
