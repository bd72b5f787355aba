package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/progress"
)

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	streakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

const barWidth = 30

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	l, err := ctx.LoadLedger()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetStreak()
	if err != nil {
		return err
	}

	due := models.DueOn(tasks, today)
	doneToday := 0
	for _, t := range due {
		if l.IsComplete(today, t.ID) {
			doneToday++
		}
	}

	week := progress.WeekProgress(today, tasks, l)
	month := progress.MonthProgress(today, tasks, l)

	fmt.Println(streakStyle.Render(fmt.Sprintf("🔥 Streak: %d day(s)", state.Count)))
	if state.LastQualifyingDate != "" {
		fmt.Printf("   Last qualifying day: %s\n", state.LastQualifyingDate)
	}
	fmt.Println()
	fmt.Printf("Today  %d/%d due tasks complete\n", doneToday, len(due))
	fmt.Printf("Week   %s %5.1f%%\n", renderBar(week), week)
	fmt.Printf("Month  %s %5.1f%%\n", renderBar(month), month)

	return nil
}

func renderBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
