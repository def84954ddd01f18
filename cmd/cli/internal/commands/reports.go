package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/conectavoz/conectavoz/internal/models"
)

// ReportsCmd is the analytics dashboard view. Diretoria and admin only.
type ReportsCmd struct {
	Stats     ReportsStatsCmd     `cmd:"" help:"Show headline figures"`
	Dashboard ReportsDashboardCmd `cmd:"" help:"Show the full dashboard payload"`
	Mood      ReportsMoodCmd      `cmd:"" help:"Show the mood trend"`
	Voice     ReportsVoiceCmd     `cmd:"" help:"Show voice report aggregates"`
	Export    ReportsExportCmd    `cmd:"" help:"Download a report file"`
}

var analystRoles = []models.Role{models.RoleDiretoria, models.RoleAdmin}

type ReportsStatsCmd struct{}

func (r *ReportsStatsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, analystRoles...)
	if err != nil || !ok {
		return err
	}

	stats, err := app.client.DashboardStats(ctx)
	if err != nil {
		return viewError("failed to load stats", err)
	}

	fmt.Println(app.styles.Title.Render("ConectaVoz overview"))
	fmt.Printf("%s %d\n", app.styles.Muted.Render("users:        "), stats.TotalUsers)
	fmt.Printf("%s %d\n", app.styles.Muted.Render("check-ins:    "), stats.TotalCheckins)
	fmt.Printf("%s %.1f/5\n", app.styles.Muted.Render("average mood: "), stats.AverageMood)
	fmt.Printf("%s %d\n", app.styles.Muted.Render("open reports: "), stats.OpenReports)
	return nil
}

type ReportsDashboardCmd struct{}

func (r *ReportsDashboardCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, analystRoles...)
	if err != nil || !ok {
		return err
	}

	dashboard, err := app.client.Dashboard(ctx)
	if err != nil {
		return viewError("failed to load dashboard", err)
	}

	fmt.Println(app.styles.Title.Render("ConectaVoz dashboard"))
	keys := make([]string, 0, len(dashboard))
	for key := range dashboard {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s %v\n", app.styles.Muted.Render(fmt.Sprintf("%-20s", key)), dashboard[key])
	}
	return nil
}

type ReportsMoodCmd struct {
	Period string `help:"Analysis period" default:"30d"`
}

func (r *ReportsMoodCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, analystRoles...)
	if err != nil || !ok {
		return err
	}

	analytics, err := app.client.MoodAnalytics(ctx, r.Period)
	if err != nil {
		return viewError("failed to load mood analytics", err)
	}

	fmt.Println(app.styles.Title.Render("Mood trend · " + analytics.Period))
	for _, point := range analytics.Points {
		bar := renderBar(point.Average, 5)
		fmt.Printf("%s  %s %.1f (%d)\n", point.Date, bar, point.Average, point.Count)
	}
	return nil
}

// renderBar draws value out of max as a fixed-width bar.
func renderBar(value, max float64) string {
	const width = 20
	filled := int(value / max * width)
	if filled > width {
		filled = width
	}

	bar := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	return string(bar)
}

type ReportsVoiceCmd struct {
	Period string `help:"Analysis period" default:"30d"`
}

func (r *ReportsVoiceCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, analystRoles...)
	if err != nil || !ok {
		return err
	}

	analytics, err := app.client.VoiceAnalytics(ctx, r.Period)
	if err != nil {
		return viewError("failed to load voice analytics", err)
	}

	fmt.Println(app.styles.Title.Render("Voice reports · " + analytics.Period))

	fmt.Println(app.styles.Subtitle.Render("by category"))
	printCounts(analytics.ByCategory)
	fmt.Println(app.styles.Subtitle.Render("by status"))
	printCounts(analytics.ByStatus)
	return nil
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("  %-20s %d\n", key, counts[key])
	}
}

type ReportsExportCmd struct {
	Type   string `arg:"" help:"Report type (mood, voice, connectas)"`
	Format string `help:"File format" default:"csv" enum:"csv,xlsx"`
	Output string `help:"Output path (defaults to report_<type>.<format>)" type:"path"`
}

func (r *ReportsExportCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, analystRoles...)
	if err != nil || !ok {
		return err
	}

	data, err := app.client.ExportReport(ctx, r.Format, r.Type)
	if err != nil {
		return viewError("export failed", err)
	}

	output := r.Output
	if output == "" {
		output = fmt.Sprintf("report_%s.%s", r.Type, r.Format)
	}

	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	app.success(fmt.Sprintf("wrote %s (%d bytes)", output, len(data)))
	return nil
}
