package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/conectavoz/conectavoz/cmd/cli/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Login    commands.LoginCmd    `cmd:"" help:"Log in to the platform"`
		Register commands.RegisterCmd `cmd:"" help:"Create an account"`
		Logout   commands.LogoutCmd   `cmd:"" help:"Log out"`
		Whoami   commands.WhoamiCmd   `cmd:"" help:"Show the logged-in user"`
		Profile  commands.ProfileCmd  `cmd:"" help:"Manage your profile"`
		Mood     commands.MoodCmd     `cmd:"" help:"Daily mood check-ins"`
		Mural    commands.MuralCmd    `cmd:"" help:"Team feed"`
		Conectas commands.ConectasCmd `cmd:"" help:"Mentor directory and connections"`
		Voice    commands.VoiceCmd    `cmd:"" help:"Confidential voice reports"`
		Admin    commands.AdminCmd    `cmd:"" help:"User administration"`
		Reports  commands.ReportsCmd  `cmd:"" help:"Analytics dashboards"`
		Monitor  commands.MonitorCmd  `cmd:"" help:"Backend connection status"`

		Server  string `help:"Backend base URL" env:"CONECTAVOZ_SERVER"`
		Config  string `help:"Path to config file" type:"path" env:"CONECTAVOZ_CONFIG"`
		Debug   bool   `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{
		Debug:   cli.Debug,
		Config:  cli.Config,
		Server:  cli.Server,
		Version: version,
	})
	cmd.FatalIfErrorf(err)
}
