package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"petquest/internal/coach"
	"petquest/internal/engine"
)

// RunBoard runs the interactive board until the user quits or ctx ends.
func RunBoard(ctx context.Context, eng *engine.Engine, c *coach.Coach, out io.Writer) error {
	m := newBoardModel(ctx, eng, coach.NewFeed(c))
	defer m.unsubscribe()
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
