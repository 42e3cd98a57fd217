package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lockin/internal/engine"
)

// RunBoard opens the interactive dashboard. The board owns the background
// tick: every interval it settles day rollover and clean accrual before
// re-rendering.
func RunBoard(ctx context.Context, svc *engine.Service, interval time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, svc, interval)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
