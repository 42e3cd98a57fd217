package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	interval time.Duration

	width  int
	height int

	// Pending relapse confirmation, nil when no prompt is open.
	confirm *engine.RelapsePreview

	lastLog string
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service, interval time.Duration) boardModel {
	if interval <= 0 {
		interval = time.Minute
	}
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		interval: interval,
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		res := m.svc.Tick(m.ctx)
		switch {
		case res.DayRolled:
			m.lastLog = "New day started! Daily stats reset."
		case res.CleanDays > 0:
			m.lastLog = fmt.Sprintf("Clean streak: +%d points.", res.CleanBonus)
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m boardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		res, err := m.svc.ConfirmRelapse(m.ctx, m.confirm.Kind)
		if err != nil {
			m.lastLog = "Relapse log failed: " + err.Error()
		} else {
			m.lastLog = fmt.Sprintf("%s (%d points). Streak reset.", res.Description, res.Points)
		}
		m.confirm = nil
		return m, nil
	case "n", "N", "esc", "q":
		m.confirm = nil
		m.lastLog = "Cancelled."
		return m, nil
	}
	return m, nil
}

func (m boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		res := m.svc.Tick(m.ctx)
		if res.DayRolled || res.CleanDays > 0 {
			m.lastLog = "Refreshed; daily state settled."
		} else {
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		}
		return m, nil
	case "1":
		return m.logPrayer(engine.PrayerQadaa)
	case "2":
		return m.logPrayer(engine.PrayerOnTime)
	case "3":
		return m.logPrayer(engine.PrayerInMosque)
	case "g":
		return m.logDeed(engine.DeedGhusl)
	case "u":
		return m.logDeed(engine.DeedQuran)
	case "e":
		return m.logDeed(engine.DeedExercise)
	case "m":
		p := m.svc.PreviewRelapse(engine.RelapseMinor)
		m.confirm = &p
		return m, nil
	case "x":
		p := m.svc.PreviewRelapse(engine.RelapseMajor)
		m.confirm = &p
		return m, nil
	}
	return m, nil
}

func (m boardModel) logPrayer(kind engine.PrayerKind) (tea.Model, tea.Cmd) {
	res, err := m.svc.LogPrayer(m.ctx, kind)
	m.lastLog = actionLine(res, err)
	return m, nil
}

func (m boardModel) logDeed(deed engine.GoodDeed) (tea.Model, tea.Cmd) {
	res, err := m.svc.LogGoodDeed(m.ctx, deed)
	m.lastLog = actionLine(res, err)
	return m, nil
}

func actionLine(res *engine.ActionResult, err error) string {
	if err != nil {
		var gate engine.GateClosedError
		if errors.As(err, &gate) {
			return gate.Reason
		}
		return "Failed: " + err.Error()
	}
	return fmt.Sprintf("%s (+%d points)", res.Description, res.Points)
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
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
	led := m.svc.Ledger()
	rank, next := engine.ResolveRank(led.TotalPoints())
	pct := engine.RankProgress(led.TotalPoints())
	bar := ui.ProgressBar(pct, 30)

	nextLabel := "Max Rank"
	if next != nil {
		nextLabel = fmt.Sprintf("next %s at %d", next.Label, next.Min)
	}
	return fmt.Sprintf("Lock In | %s | %d points %s %d%% | %s", rank.Label, led.TotalPoints(), bar, pct, nextLabel)
}

func (m boardModel) renderSidebar() string {
	led := m.svc.Ledger()

	nextPrayer := "Complete!"
	if led.PrayersLoggedToday() < engine.MaxPrayersPerDay {
		nextPrayer = engine.PrayerNames[led.PrayersLoggedToday()]
	}

	lines := []string{"Today"}
	lines = append(lines, fmt.Sprintf("- points: %+d", led.TodayPoints()))
	lines = append(lines, fmt.Sprintf("- prayers: %d/5 (next: %s)", led.PrayersLoggedToday(), nextPrayer))
	lines = append(lines, fmt.Sprintf("- study: %gh", led.TodayStudyHours()))
	lines = append(lines, fmt.Sprintf("- clean days: %d", led.CleanDays()))
	lines = append(lines, "")
	lines = append(lines, "Totals")
	for _, c := range []engine.Category{engine.CategoryPrayer, engine.CategoryStudy, engine.CategoryGood, engine.CategoryRelapse, engine.CategoryClean} {
		lines = append(lines, fmt.Sprintf("- %s %s: %+d", ui.CategoryIcon(string(c)), c, led.CategoryTotal(c)))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- 1/2/3: prayer qadaa/on-time/mosque")
	lines = append(lines, "- g/u/e: ghusl/quran/exercise")
	lines = append(lines, "- m/x: relapse minor/major")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	led := m.svc.Ledger()
	history := led.History()

	out := []string{"Activity"}
	if len(history) == 0 {
		out = append(out, "(no activity recorded yet)")
		return strings.Join(out, "\n")
	}

	limit := 15
	if m.height > 0 && m.height-8 > 0 && m.height-8 < limit {
		limit = m.height - 8
	}
	for i, rec := range history {
		if i >= limit {
			break
		}
		cat := ""
		if rec.Category != nil {
			cat = *rec.Category
		}
		ts := time.UnixMilli(rec.Timestamp).Format("15:04")
		out = append(out, fmt.Sprintf("%s %s %s (%+d)", ts, ui.CategoryIcon(cat), rec.Description, rec.Points))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	if m.confirm != nil {
		return "\n" + ui.Warn.Render(m.confirm.Message+" (y/n)")
	}
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
