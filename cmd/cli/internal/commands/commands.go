package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/config"
	"github.com/conectavoz/conectavoz/internal/guard"
	"github.com/conectavoz/conectavoz/internal/health"
	"github.com/conectavoz/conectavoz/internal/logger"
	"github.com/conectavoz/conectavoz/internal/models"
	"github.com/conectavoz/conectavoz/internal/session"
	"github.com/conectavoz/conectavoz/internal/tui"
)

type Globals struct {
	Debug   bool
	Config  string
	Server  string
	Version string
}

// errNotLoggedIn is what every protected command reports when the guard
// redirects to login.
var errNotLoggedIn = errors.New(`not logged in, run "conectavoz login" first`)

// app wires the session store, backend client, and styles for one
// command invocation.
type app struct {
	cfg     config.Config
	client  *api.Client
	session *session.Store
	checker *health.Checker
	styles  tui.Styles
}

func newApp(globals *Globals) (*app, error) {
	log.Logger = logger.Setup(globals.Debug)

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}
	if globals.Server != "" {
		cfg.ServerURL = globals.Server
	}

	tokens, err := session.NewTokenStore("")
	if err != nil {
		return nil, err
	}

	cacheDir := ""
	if dir, err := config.DefaultDir(); err == nil {
		cacheDir = filepath.Join(dir, "cache")
	}

	// Logging sits outside the cache so hits are visible in debug output.
	httpClient := &http.Client{
		Timeout:   time.Duration(cfg.Timeout),
		Transport: logger.NewRequests(log.Logger, api.NewCachingTransport(cacheDir, nil)),
	}

	client := api.New(api.Config{
		BaseURL: cfg.ServerURL,
		Timeout: time.Duration(cfg.Timeout),
		Debug:   globals.Debug,
	}, tokens, api.WithHTTPClient(httpClient))

	return &app{
		cfg:     cfg,
		client:  client,
		session: session.NewStore(client, tokens),
		checker: health.NewChecker(client),
		styles:  tui.DefaultStyles(),
	}, nil
}

// gate resolves the session and applies the route guard before a
// protected view renders. The bool result is whether the view may
// render; an unauthorized-but-authenticated caller has already been
// shown the default landing instead.
func (a *app) gate(ctx context.Context, roles ...models.Role) (bool, error) {
	a.session.Initialize(ctx)

	snap := a.session.Snapshot()
	switch guard.Check(snap, roles...) {
	case guard.RedirectLogin:
		return false, errNotLoggedIn
	case guard.RedirectHome:
		a.renderHome(snap)
		return false, nil
	}

	return true, nil
}

// renderHome is the default authenticated landing view.
func (a *app) renderHome(snap session.Snapshot) {
	user := snap.User

	fmt.Println(a.styles.Title.Render("ConectaVoz"))
	fmt.Printf("%s %s\n",
		a.styles.Muted.Render("Signed in as"),
		a.styles.Subtitle.Render(fmt.Sprintf("%s (%s)", user.FullName(), user.Role)))
	fmt.Println()
	fmt.Println(a.styles.Muted.Render(`Try "conectavoz mood checkin", "conectavoz mural list" or "conectavoz conectas available".`))
}

// viewError renders a request failure the way a view would: the
// backend's detail verbatim when present, a generic message otherwise.
func viewError(action string, err error) error {
	return fmt.Errorf("%s: %s", action, api.Message(err))
}

func (a *app) success(msg string) {
	fmt.Println(a.styles.Success.Render("✓ " + msg))
}
