package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/models"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type MoodCmd struct {
	Checkin MoodCheckinCmd `cmd:"" help:"Submit today's mood check-in"`
	History MoodHistoryCmd `cmd:"" help:"Show your check-in history"`
	Stats   MoodStatsCmd   `cmd:"" help:"Show your mood summary"`
}

type MoodCheckinCmd struct {
	Level   int    `help:"Mood level 1-5 (prompted when omitted)"`
	Comment string `help:"Optional comment"`
}

func (m *MoodCheckinCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	level := m.Level
	if level == 0 {
		if !tui.IsInteractive() {
			return errors.New("mood level required, pass --level")
		}
		level, err = promptMoodLevel()
		if err != nil {
			return err
		}
	}
	if level < 1 || level > 5 {
		return fmt.Errorf("mood level must be between 1 and 5, got %d", level)
	}

	checkin, err := app.client.SubmitCheckin(ctx, level, m.Comment)
	if err != nil {
		return checkinError(err)
	}

	app.success(fmt.Sprintf("check-in recorded: %s (%d/5)", models.MoodLabels[checkin.MoodLevel], checkin.MoodLevel))
	return nil
}

// checkinError maps the backend's duplicate-day conflict to its own
// message; everything else renders like any other view failure.
func checkinError(err error) error {
	if api.IsStatus(err, http.StatusConflict) {
		return errors.New("check-in already done today")
	}
	return viewError("check-in failed", err)
}

func promptMoodLevel() (int, error) {
	options := make([]string, 0, 5)
	for level := 1; level <= 5; level++ {
		options = append(options, fmt.Sprintf("%d - %s", level, models.MoodLabels[level]))
	}

	selected, err := tui.PromptSelect("How are you feeling today?", options)
	if err != nil {
		return 0, err
	}

	value, _, _ := strings.Cut(selected, " ")
	return strconv.Atoi(value)
}

type MoodHistoryCmd struct {
	All bool `help:"Include entries older than the default window"`
}

func (m *MoodHistoryCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	list := app.client.ListCheckins
	if m.All {
		list = app.client.MyMoodHistory
	}
	checkins, err := list(ctx)
	if err != nil {
		return viewError("failed to load history", err)
	}

	if len(checkins) == 0 {
		fmt.Println(app.styles.Muted.Render("No check-ins yet."))
		return nil
	}

	fmt.Println(app.styles.Title.Render("Mood history"))
	for _, checkin := range checkins {
		line := fmt.Sprintf("%s  %d/5 %s",
			checkin.CreatedAt.Format("2006-01-02"),
			checkin.MoodLevel,
			models.MoodLabels[checkin.MoodLevel])
		if checkin.Comment != "" {
			line += app.styles.Muted.Render("  " + checkin.Comment)
		}
		fmt.Println(line)
	}
	return nil
}

type MoodStatsCmd struct{}

func (m *MoodStatsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	stats, err := app.client.MoodStats(ctx)
	if err != nil {
		return viewError("failed to load stats", err)
	}

	fmt.Println(app.styles.Title.Render("Mood summary"))
	fmt.Printf("%s %.1f/5 over %d check-ins\n",
		app.styles.Muted.Render("average:"), stats.Average, stats.Total)
	if stats.Streak > 0 {
		fmt.Printf("%s %d days\n", app.styles.Muted.Render("streak: "), stats.Streak)
	}
	return nil
}
