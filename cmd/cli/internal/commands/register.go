package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type RegisterCmd struct {
	Username   string `help:"Username"`
	Email      string `help:"Email address"`
	Password   string `help:"Password (prompted when omitted)" env:"CONECTAVOZ_PASSWORD"`
	FirstName  string `help:"First name"`
	LastName   string `help:"Last name"`
	Department string `help:"Department"`
	Team       string `help:"Team"`
}

func (r *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	data := api.RegisterData{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Department: r.Department,
		Team:       r.Team,
	}

	if err := r.fillMissing(&data); err != nil {
		return err
	}

	if err := app.session.Register(ctx, data); err != nil {
		return viewError("registration failed", err)
	}

	user := app.session.Snapshot().User
	app.success(fmt.Sprintf("welcome, %s. You are now logged in", user.FullName()))
	return nil
}

func (r *RegisterCmd) fillMissing(data *api.RegisterData) error {
	interactive := tui.IsInteractive()

	prompt := func(dst *string, title, placeholder string, required bool) error {
		if *dst != "" {
			return nil
		}
		if !interactive {
			if required {
				return fmt.Errorf("%s required in non-interactive mode", title)
			}
			return nil
		}
		value, err := tui.PromptString(title, placeholder, required)
		if err != nil {
			return err
		}
		*dst = value
		return nil
	}

	if err := prompt(&data.Username, "Username", "maria.silva", true); err != nil {
		return err
	}
	if err := prompt(&data.Email, "Email", "maria@empresa.com", true); err != nil {
		return err
	}
	if err := prompt(&data.FirstName, "First name", "", false); err != nil {
		return err
	}
	if err := prompt(&data.LastName, "Last name", "", false); err != nil {
		return err
	}
	if err := prompt(&data.Department, "Department", "", false); err != nil {
		return err
	}
	if err := prompt(&data.Team, "Team", "", false); err != nil {
		return err
	}

	if data.Password == "" {
		if !interactive {
			return errors.New("password required, pass --password or set CONECTAVOZ_PASSWORD")
		}
		password, err := tui.PromptPassword("Password")
		if err != nil {
			return err
		}
		data.Password = password
	}

	return nil
}
