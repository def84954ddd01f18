package models

import "time"

// MuralPost is a post on the internal team feed.
type MuralPost struct {
	ID           int64     `json:"id"`
	Author       *User     `json:"author,omitempty"`
	Content      string    `json:"content"`
	IsAnonymous  bool      `json:"is_anonymous"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	Liked        bool      `json:"liked"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthorName returns the post author's display name, honouring anonymity.
func (p *MuralPost) AuthorName() string {
	if p.IsAnonymous || p.Author == nil {
		return "anonymous"
	}
	return p.Author.FullName()
}

// MuralComment is a comment on a mural post.
type MuralComment struct {
	ID        int64     `json:"id"`
	Author    *User     `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
