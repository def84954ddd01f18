package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/models"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type VoiceCmd struct {
	List       VoiceListCmd       `cmd:"" help:"List your voice reports"`
	Submit     VoiceSubmitCmd     `cmd:"" help:"File a confidential report"`
	Categories VoiceCategoriesCmd `cmd:"" help:"List report categories"`
	Resolve    VoiceResolveCmd    `cmd:"" help:"Update a report's status"`
}

type VoiceListCmd struct{}

func (v *VoiceListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	reports, err := app.client.ListReports(ctx)
	if err != nil {
		return viewError("failed to load reports", err)
	}

	if len(reports) == 0 {
		fmt.Println(app.styles.Muted.Render("No reports."))
		return nil
	}

	for _, report := range reports {
		header := fmt.Sprintf("#%d %s", report.ID, report.Title)
		status := report.Status
		switch report.Status {
		case models.ReportResolved:
			status = app.styles.Success.Render(status)
		case models.ReportInReview:
			status = app.styles.Warning.Render(status)
		default:
			status = app.styles.Error.Render(status)
		}

		fmt.Println(app.styles.Subtitle.Render(header) + "  " + status)
		fmt.Println(app.styles.Muted.Render(fmt.Sprintf("  %s · %s",
			report.Category, report.CreatedAt.Format("2006-01-02"))))
	}
	return nil
}

type VoiceSubmitCmd struct {
	Title    string   `help:"Report title (prompted when omitted)"`
	Content  string   `help:"Report body (prompted when omitted)"`
	Category string   `help:"Category name (prompted when omitted)"`
	Attach   []string `help:"Attachment file paths" type:"existingfile"`
}

func (v *VoiceSubmitCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	sub := api.ReportSubmission{
		Title:       v.Title,
		Content:     v.Content,
		Category:    v.Category,
		Attachments: v.Attach,
	}

	if err := v.fillMissing(ctx, app, &sub); err != nil {
		return err
	}

	report, err := app.client.SubmitReport(ctx, sub)
	if err != nil {
		return viewError("failed to submit report", err)
	}

	app.success(fmt.Sprintf("report #%d filed, it will reach your Conecta privately", report.ID))
	if report.Protocol != "" {
		fmt.Println(app.styles.Muted.Render("protocol: " + report.Protocol))
	}
	return nil
}

func (v *VoiceSubmitCmd) fillMissing(ctx context.Context, app *app, sub *api.ReportSubmission) error {
	interactive := tui.IsInteractive()

	if sub.Title == "" {
		if !interactive {
			return errors.New("title required, pass --title")
		}
		title, err := tui.PromptString("Title", "", true)
		if err != nil {
			return err
		}
		sub.Title = title
	}

	if sub.Content == "" {
		if !interactive {
			return errors.New("content required, pass --content")
		}
		content, err := tui.PromptText("What happened?")
		if err != nil {
			return err
		}
		if content == "" {
			return errors.New("content required")
		}
		sub.Content = content
	}

	if sub.Category == "" {
		if !interactive {
			return errors.New("category required, pass --category")
		}
		categories, err := app.client.VoiceCategories(ctx)
		if err != nil {
			return viewError("failed to load categories", err)
		}
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}
		selected, err := tui.PromptSelect("Category", names)
		if err != nil {
			return err
		}
		sub.Category = selected
	}

	return nil
}

type VoiceCategoriesCmd struct{}

func (v *VoiceCategoriesCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	categories, err := app.client.VoiceCategories(ctx)
	if err != nil {
		return viewError("failed to load categories", err)
	}

	for _, category := range categories {
		line := app.styles.Subtitle.Render(category.Name)
		if category.Description != "" {
			line += "  " + app.styles.Muted.Render(category.Description)
		}
		fmt.Println(line)
	}
	return nil
}

type VoiceResolveCmd struct {
	ReportID int64  `arg:"" help:"Report ID"`
	Status   string `help:"New status" default:"resolved" enum:"open,in_review,resolved"`
}

func (v *VoiceResolveCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	report, err := app.client.UpdateReportStatus(ctx, v.ReportID, v.Status)
	if err != nil {
		return viewError("failed to update report", err)
	}

	app.success(fmt.Sprintf("report #%d is now %s", report.ID, report.Status))
	return nil
}
