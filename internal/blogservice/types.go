package blogservice

import (
	"database/sql"
	"time"

	"bloglist/internal/common"
	"bloglist/internal/userservice"
)

type Blog struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Author is a free-text byline, independent of the owning user.
	Author    string           `json:"author,omitempty"`
	URL       string           `json:"url"`
	Likes     int              `json:"likes"`
	User      userservice.User `json:"user"`
	UserID    int              `json:"user_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
