package commands

import (
	"context"
	"errors"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type ProfileCmd struct {
	Update         ProfileUpdateCmd  `cmd:"" help:"Update your profile"`
	ChangePassword ChangePasswordCmd `cmd:"" name:"change-password" help:"Change your password"`
}

type ProfileUpdateCmd struct {
	Email      string `help:"New email address"`
	FirstName  string `help:"New first name"`
	LastName   string `help:"New last name"`
	Department string `help:"New department"`
	Team       string `help:"New team"`
}

func (p *ProfileUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	update := api.ProfileUpdate{
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Department: p.Department,
		Team:       p.Team,
	}
	if update == (api.ProfileUpdate{}) {
		return errors.New("nothing to update, pass at least one field flag")
	}

	user, err := app.client.UpdateProfile(ctx, update)
	if err != nil {
		return viewError("profile update failed", err)
	}

	// Replace the session's user record; auth status and token stay as
	// they are.
	app.session.UpdateUser(*user)

	app.success("profile updated")
	return nil
}

type ChangePasswordCmd struct {
	Current string `help:"Current password (prompted when omitted)"`
	New     string `help:"New password (prompted when omitted)"`
}

func (c *ChangePasswordCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	current, next := c.Current, c.New
	if current == "" {
		if !tui.IsInteractive() {
			return errors.New("current password required, pass --current")
		}
		if current, err = tui.PromptPassword("Current password"); err != nil {
			return err
		}
	}
	if next == "" {
		if !tui.IsInteractive() {
			return errors.New("new password required, pass --new")
		}
		if next, err = tui.PromptPassword("New password"); err != nil {
			return err
		}
	}

	if err := app.client.ChangePassword(ctx, current, next); err != nil {
		return viewError("password change failed", err)
	}

	app.success("password changed")
	return nil
}
