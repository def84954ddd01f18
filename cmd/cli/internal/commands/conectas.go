package commands

import (
	"context"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/models"
)

type ConectasCmd struct {
	List        ConectasListCmd        `cmd:"" help:"List all Conectas"`
	Available   ConectasAvailableCmd   `cmd:"" help:"List Conectas accepting connections"`
	My          ConectasMyCmd          `cmd:"" help:"Show your assigned Conecta"`
	Choose      ConectasChooseCmd      `cmd:"" help:"Choose your Conecta"`
	Request     ConectasRequestCmd     `cmd:"" help:"Request a mentoring connection"`
	Connections ConectasConnectionsCmd `cmd:"" help:"List your connection requests"`
	Accept      ConectasAcceptCmd      `cmd:"" help:"Accept an incoming connection"`
	Reject      ConectasRejectCmd      `cmd:"" help:"Reject an incoming connection"`
}

func printConectas(app *app, conectas []models.User) {
	if len(conectas) == 0 {
		fmt.Println(app.styles.Muted.Render("No Conectas found."))
		return
	}

	for _, conecta := range conectas {
		line := fmt.Sprintf("#%d %s", conecta.ID, conecta.FullName())
		meta := ""
		if conecta.Department != "" {
			meta = conecta.Department
		}
		if conecta.Team != "" {
			if meta != "" {
				meta += " / "
			}
			meta += conecta.Team
		}
		fmt.Println(app.styles.Subtitle.Render(line) + "  " + app.styles.Muted.Render(meta))
	}
}

type ConectasListCmd struct{}

func (c *ConectasListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	conectas, err := app.client.ListConectas(ctx)
	if err != nil {
		return viewError("failed to load Conectas", err)
	}

	printConectas(app, conectas)
	return nil
}

type ConectasAvailableCmd struct{}

func (c *ConectasAvailableCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	conectas, err := app.client.AvailableConectas(ctx)
	if err != nil {
		return viewError("failed to load available Conectas", err)
	}

	printConectas(app, conectas)
	return nil
}

type ConectasMyCmd struct{}

func (c *ConectasMyCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	conecta, err := app.client.MyConecta(ctx)
	if err != nil {
		return viewError("failed to load your Conecta", err)
	}

	if conecta == nil {
		fmt.Println(app.styles.Muted.Render(`You have no Conecta yet. Pick one with "conectavoz conectas choose".`))
		return nil
	}

	fmt.Println(app.styles.Title.Render("Your Conecta"))
	printConectas(app, []models.User{*conecta})
	return nil
}

type ConectasChooseCmd struct {
	ConectaID int64 `arg:"" help:"Conecta user ID"`
}

func (c *ConectasChooseCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if err := app.client.ChooseConecta(ctx, c.ConectaID); err != nil {
		return viewError("failed to choose Conecta", err)
	}
	app.success(fmt.Sprintf("Conecta #%d is now your point of contact", c.ConectaID))
	return nil
}

type ConectasRequestCmd struct {
	ConectaID int64 `arg:"" help:"Conecta user ID"`
}

func (c *ConectasRequestCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	conn, err := app.client.RequestConnection(ctx, c.ConectaID)
	if err != nil {
		return viewError("failed to request connection", err)
	}
	app.success(fmt.Sprintf("connection request #%d sent (%s)", conn.ID, conn.Status))
	return nil
}

type ConectasConnectionsCmd struct{}

func (c *ConectasConnectionsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	connections, err := app.client.MyConnections(ctx)
	if err != nil {
		return viewError("failed to load connections", err)
	}

	if len(connections) == 0 {
		fmt.Println(app.styles.Muted.Render("No connection requests."))
		return nil
	}

	for _, conn := range connections {
		who := "unknown"
		if conn.Conecta != nil {
			who = conn.Conecta.FullName()
		}
		line := fmt.Sprintf("#%d %s", conn.ID, who)

		status := conn.Status
		switch conn.Status {
		case models.ConnectionAccepted:
			status = app.styles.Success.Render(status)
		case models.ConnectionRejected:
			status = app.styles.Error.Render(status)
		default:
			status = app.styles.Warning.Render(status)
		}
		fmt.Println(app.styles.Subtitle.Render(line) + "  " + status)
	}
	return nil
}

type ConectasAcceptCmd struct {
	ConnectionID int64 `arg:"" help:"Connection ID"`
}

func (c *ConectasAcceptCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if err := app.client.AcceptConnection(ctx, c.ConnectionID); err != nil {
		return viewError("failed to accept connection", err)
	}
	app.success(fmt.Sprintf("accepted connection #%d", c.ConnectionID))
	return nil
}

type ConectasRejectCmd struct {
	ConnectionID int64 `arg:"" help:"Connection ID"`
}

func (c *ConectasRejectCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if err := app.client.RejectConnection(ctx, c.ConnectionID); err != nil {
		return viewError("failed to reject connection", err)
	}
	app.success(fmt.Sprintf("rejected connection #%d", c.ConnectionID))
	return nil
}
