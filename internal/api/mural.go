package api

import (
	"context"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/models"
)

// ListPosts returns the team feed, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]models.MuralPost, error) {
	var page Page[models.MuralPost]
	if err := c.get(ctx, "/mural/posts/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CreatePost publishes a new post, optionally anonymous.
func (c *Client) CreatePost(ctx context.Context, content string, anonymous bool) (*models.MuralPost, error) {
	body := map[string]any{
		"content":      content,
		"is_anonymous": anonymous,
	}
	var post models.MuralPost
	if err := c.post(ctx, "/mural/posts/", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes one of the caller's posts.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	return c.delete(ctx, fmt.Sprintf("/mural/posts/%d/", postID))
}

// LikePost marks a post as liked by the caller.
func (c *Client) LikePost(ctx context.Context, postID int64) error {
	return c.post(ctx, fmt.Sprintf("/mural/posts/%d/like/", postID), nil, nil)
}

// UnlikePost removes the caller's like.
func (c *Client) UnlikePost(ctx context.Context, postID int64) error {
	return c.delete(ctx, fmt.Sprintf("/mural/posts/%d/like/", postID))
}

// ListComments returns the comments under a post.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]models.MuralComment, error) {
	var page Page[models.MuralComment]
	if err := c.get(ctx, fmt.Sprintf("/mural/posts/%d/comments/", postID), &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// AddComment comments on a post.
func (c *Client) AddComment(ctx context.Context, postID int64, content string) (*models.MuralComment, error) {
	body := map[string]string{"content": content}
	var comment models.MuralComment
	if err := c.post(ctx, fmt.Sprintf("/mural/posts/%d/comments/", postID), body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
