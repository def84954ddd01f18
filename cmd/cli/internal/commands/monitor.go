package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conectavoz/conectavoz/internal/tui"
)

// MonitorCmd shows backend reachability. It never touches session state;
// the view is purely informational and works logged out.
type MonitorCmd struct {
	Once  bool          `help:"Print one status line and exit"`
	Plain bool          `help:"Stream plain status lines instead of the live view"`
	Wait  time.Duration `help:"Wait up to this long for the backend to come up first" default:"0"`
}

func (m *MonitorCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if m.Wait > 0 {
		fmt.Println(app.styles.Muted.Render("waiting for backend..."))
		if err := app.checker.WaitReachable(ctx, m.Wait); err != nil {
			return fmt.Errorf("backend did not come up within %s", m.Wait)
		}
	}

	if m.Once {
		status := app.checker.Check(ctx)
		fmt.Println(tui.RenderStatus(app.styles, status))
		if !status.Reachable {
			return fmt.Errorf("backend unreachable")
		}
		return nil
	}

	if m.Plain {
		return m.stream(ctx, app)
	}

	return tui.RunMonitor(app.checker, app.cfg.ServerURL)
}

// stream prints one line per probe until interrupted. The polling
// goroutine and its ticker stop with the context.
func (m *MonitorCmd) stream(ctx context.Context, app *app) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	for status := range app.checker.Watch(ctx) {
		fmt.Printf("%s  %s\n",
			status.CheckedAt.Format("15:04:05"),
			tui.RenderStatus(app.styles, status))
	}

	return nil
}
