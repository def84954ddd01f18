package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/conectavoz/conectavoz/internal/api"
	"github.com/conectavoz/conectavoz/internal/models"
	"github.com/conectavoz/conectavoz/internal/tui"
)

// AdminCmd is the user administration view. Admin only; other roles are
// silently sent to the default landing by the guard.
type AdminCmd struct {
	Users AdminUsersCmd `cmd:"" help:"Manage user accounts"`
}

type AdminUsersCmd struct {
	List   AdminUsersListCmd   `cmd:"" help:"List all users"`
	Create AdminUsersCreateCmd `cmd:"" help:"Create a user"`
	Update AdminUsersUpdateCmd `cmd:"" help:"Update a user"`
	Delete AdminUsersDeleteCmd `cmd:"" help:"Delete a user"`
	Roles  AdminUsersRolesCmd  `cmd:"" help:"List assignable roles"`
	Bulk   AdminUsersBulkCmd   `cmd:"" help:"Apply one change to several users"`
}

type AdminUsersListCmd struct{}

func (c *AdminUsersListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	users, err := app.client.ListUsers(ctx)
	if err != nil {
		return viewError("failed to load users", err)
	}

	for _, user := range users {
		line := fmt.Sprintf("#%-4d %-20s %-25s %s", user.ID, user.Username, user.Email, user.Role)
		if user.IsConnecta {
			line += app.styles.Subtitle.Render("  conecta")
		}
		fmt.Println(line)
	}
	fmt.Println(app.styles.Muted.Render(fmt.Sprintf("%d users", len(users))))
	return nil
}

type AdminUsersCreateCmd struct {
	Username   string `help:"Username" required:""`
	Email      string `help:"Email address" required:""`
	Password   string `help:"Initial password (prompted when omitted)"`
	FirstName  string `help:"First name"`
	LastName   string `help:"Last name"`
	Role       string `help:"Role" default:"colaborador" enum:"colaborador,diretoria,admin"`
	Department string `help:"Department"`
	Team       string `help:"Team"`
}

func (c *AdminUsersCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	password := c.Password
	if password == "" {
		if !tui.IsInteractive() {
			return fmt.Errorf("password required, pass --password")
		}
		if password, err = tui.PromptPassword("Initial password"); err != nil {
			return err
		}
	}

	user, err := app.client.CreateUser(ctx, api.NewUser{
		Username:   c.Username,
		Email:      c.Email,
		Password:   password,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Role:       models.Role(c.Role),
		Department: c.Department,
		Team:       c.Team,
	})
	if err != nil {
		return viewError("failed to create user", err)
	}

	app.success(fmt.Sprintf("created user #%d %s (%s)", user.ID, user.Username, user.Role))
	return nil
}

type AdminUsersUpdateCmd struct {
	UserID     int64  `arg:"" help:"User ID"`
	Email      string `help:"New email address"`
	FirstName  string `help:"New first name"`
	LastName   string `help:"New last name"`
	Role       string `help:"New role" enum:",colaborador,diretoria,admin" default:""`
	Department string `help:"New department"`
	Team       string `help:"New team"`
}

func (c *AdminUsersUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	// The backend's update is replace-whole-record, so fetch the current
	// record and overlay the changed fields.
	users, err := app.client.ListUsers(ctx)
	if err != nil {
		return viewError("failed to load user", err)
	}
	var current *models.User
	for i := range users {
		if users[i].ID == c.UserID {
			current = &users[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no user with ID %d", c.UserID)
	}

	updated := *current
	if c.Email != "" {
		updated.Email = c.Email
	}
	if c.FirstName != "" {
		updated.FirstName = c.FirstName
	}
	if c.LastName != "" {
		updated.LastName = c.LastName
	}
	if c.Role != "" {
		updated.Role = models.Role(c.Role)
	}
	if c.Department != "" {
		updated.Department = c.Department
	}
	if c.Team != "" {
		updated.Team = c.Team
	}

	user, err := app.client.UpdateUser(ctx, c.UserID, updated)
	if err != nil {
		return viewError("failed to update user", err)
	}

	app.success(fmt.Sprintf("updated user #%d %s", user.ID, user.Username))
	return nil
}

type AdminUsersDeleteCmd struct {
	UserID int64 `arg:"" help:"User ID"`
	Yes    bool  `help:"Skip confirmation"`
}

func (c *AdminUsersDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	if !c.Yes && tui.IsInteractive() {
		confirmed, err := tui.PromptConfirm(fmt.Sprintf("Delete user #%d?", c.UserID), false)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := app.client.DeleteUser(ctx, c.UserID); err != nil {
		return viewError("failed to delete user", err)
	}

	app.success(fmt.Sprintf("deleted user #%d", c.UserID))
	return nil
}

type AdminUsersRolesCmd struct{}

func (c *AdminUsersRolesCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	roles, err := app.client.UserRoles(ctx)
	if err != nil {
		return viewError("failed to load roles", err)
	}

	fmt.Println(strings.Join(roles, "\n"))
	return nil
}

type AdminUsersBulkCmd struct {
	UserIDs    []int64 `arg:"" help:"User IDs"`
	Role       string  `help:"Role to assign" enum:",colaborador,diretoria,admin" default:""`
	Department string  `help:"Department to assign"`
	Team       string  `help:"Team to assign"`
}

func (c *AdminUsersBulkCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx, models.RoleAdmin)
	if err != nil || !ok {
		return err
	}

	update := map[string]any{}
	if c.Role != "" {
		update["role"] = c.Role
	}
	if c.Department != "" {
		update["department"] = c.Department
	}
	if c.Team != "" {
		update["team"] = c.Team
	}
	if len(update) == 0 {
		return fmt.Errorf("nothing to update, pass --role, --department or --team")
	}

	if err := app.client.BulkUpdateUsers(ctx, c.UserIDs, update); err != nil {
		return viewError("bulk update failed", err)
	}

	app.success(fmt.Sprintf("updated %d users", len(c.UserIDs)))
	return nil
}
