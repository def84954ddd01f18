package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/session"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type LoginCmd struct {
	Username string `help:"Username" short:"u"`
	Password string `help:"Password (prompted when omitted)" env:"CONECTAVOZ_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	username, password := l.Username, l.Password
	if username == "" {
		if !tui.IsInteractive() {
			return errors.New("username required, pass --username")
		}
		if username, err = tui.PromptString("Username", "maria.silva", true); err != nil {
			return err
		}
	}
	if password == "" {
		if !tui.IsInteractive() {
			return errors.New("password required, pass --password or set CONECTAVOZ_PASSWORD")
		}
		if password, err = tui.PromptPassword("Password"); err != nil {
			return err
		}
	}

	err = app.session.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return err
		}
		return viewError("login failed", err)
	}

	user := app.session.Snapshot().User
	app.success(fmt.Sprintf("logged in as %s (%s)", user.FullName(), user.Role))
	return nil
}

type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	// Local logout always succeeds; the backend notification inside is
	// best-effort.
	app.session.Logout(ctx)

	app.success("logged out")
	return nil
}

type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	user := app.session.Snapshot().User

	fmt.Println(app.styles.Title.Render(user.FullName()))
	fmt.Printf("%s %s\n", app.styles.Muted.Render("username:"), user.Username)
	fmt.Printf("%s %s\n", app.styles.Muted.Render("email:   "), user.Email)
	fmt.Printf("%s %s\n", app.styles.Muted.Render("role:    "), string(user.Role))
	if user.Department != "" {
		fmt.Printf("%s %s\n", app.styles.Muted.Render("dept:    "), user.Department)
	}
	if user.Team != "" {
		fmt.Printf("%s %s\n", app.styles.Muted.Render("team:    "), user.Team)
	}
	if user.IsConnecta {
		fmt.Println(app.styles.Subtitle.Render("This account is a Conecta."))
	}
	return nil
}
