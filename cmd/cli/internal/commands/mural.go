package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/tui"
)

type MuralCmd struct {
	List    MuralListCmd    `cmd:"" help:"Show the team feed"`
	Post    MuralPostCmd    `cmd:"" help:"Publish a post"`
	Comment MuralCommentCmd `cmd:"" help:"Comment on a post"`
	Like    MuralLikeCmd    `cmd:"" help:"Like a post"`
	Unlike  MuralUnlikeCmd  `cmd:"" help:"Remove your like from a post"`
	Delete  MuralDeleteCmd  `cmd:"" help:"Delete one of your posts"`
}

type MuralListCmd struct {
	Comments bool `help:"Include comments under each post"`
}

func (m *MuralListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	posts, err := app.client.ListPosts(ctx)
	if err != nil {
		return viewError("failed to load the mural", err)
	}

	if len(posts) == 0 {
		fmt.Println(app.styles.Muted.Render("The mural is empty."))
		return nil
	}

	for _, post := range posts {
		header := fmt.Sprintf("#%d %s", post.ID, post.AuthorName())
		meta := fmt.Sprintf("%s · %d likes · %d comments",
			post.CreatedAt.Format("2006-01-02 15:04"), post.LikeCount, post.CommentCount)

		fmt.Println(app.styles.Subtitle.Render(header) + "  " + app.styles.Muted.Render(meta))
		fmt.Println(post.Content)

		if m.Comments && post.CommentCount > 0 {
			comments, err := app.client.ListComments(ctx, post.ID)
			if err != nil {
				fmt.Println(app.styles.Error.Render("  could not load comments"))
			}
			for _, comment := range comments {
				author := "anonymous"
				if comment.Author != nil {
					author = comment.Author.FullName()
				}
				fmt.Println(app.styles.Muted.Render(fmt.Sprintf("  ↳ %s: %s", author, comment.Content)))
			}
		}
		fmt.Println()
	}
	return nil
}

type MuralPostCmd struct {
	Content   string `arg:"" optional:"" help:"Post content (prompted when omitted)"`
	Anonymous bool   `help:"Post anonymously"`
}

func (m *MuralPostCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	content := m.Content
	if content == "" {
		if !tui.IsInteractive() {
			return errors.New("post content required")
		}
		if content, err = tui.PromptText("What do you want to share?"); err != nil {
			return err
		}
		if content == "" {
			return errors.New("post content required")
		}
	}

	post, err := app.client.CreatePost(ctx, content, m.Anonymous)
	if err != nil {
		return viewError("failed to publish", err)
	}

	app.success(fmt.Sprintf("published post #%d", post.ID))
	return nil
}

type MuralCommentCmd struct {
	PostID  int64  `arg:"" help:"Post ID"`
	Content string `arg:"" optional:"" help:"Comment text (prompted when omitted)"`
}

func (m *MuralCommentCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	content := m.Content
	if content == "" {
		if !tui.IsInteractive() {
			return errors.New("comment text required")
		}
		if content, err = tui.PromptText("Your comment"); err != nil {
			return err
		}
		if content == "" {
			return errors.New("comment text required")
		}
	}

	if _, err := app.client.AddComment(ctx, m.PostID, content); err != nil {
		return viewError("failed to comment", err)
	}

	app.success(fmt.Sprintf("commented on post #%d", m.PostID))
	return nil
}

type MuralLikeCmd struct {
	PostID int64 `arg:"" help:"Post ID"`
}

func (m *MuralLikeCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if err := app.client.LikePost(ctx, m.PostID); err != nil {
		return viewError("failed to like", err)
	}
	app.success(fmt.Sprintf("liked post #%d", m.PostID))
	return nil
}

type MuralUnlikeCmd struct {
	PostID int64 `arg:"" help:"Post ID"`
}

func (m *MuralUnlikeCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if err := app.client.UnlikePost(ctx, m.PostID); err != nil {
		return viewError("failed to unlike", err)
	}
	app.success(fmt.Sprintf("removed like from post #%d", m.PostID))
	return nil
}

type MuralDeleteCmd struct {
	PostID int64 `arg:"" help:"Post ID"`
}

func (m *MuralDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	ok, err := app.gate(ctx)
	if err != nil || !ok {
		return err
	}

	if tui.IsInteractive() {
		confirmed, err := tui.PromptConfirm(fmt.Sprintf("Delete post #%d?", m.PostID), false)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := app.client.DeletePost(ctx, m.PostID); err != nil {
		return viewError("failed to delete", err)
	}
	app.success(fmt.Sprintf("deleted post #%d", m.PostID))
	return nil
}
