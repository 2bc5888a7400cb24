package userservice

import (
	"database/sql"
	"time"

	"bloglist/internal/common"
)

type UserService struct {
	m        *UserModel
	mb       common.MessageProducer
	secret   []byte
	tokenTTL time.Duration
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Name is an optional display name.
	Name     string   `json:"name,omitempty"`
	Password Password `json:"-"`
	// BlogIDs holds the ids of blogs created by this user, in creation
	// order. It only ever grows; deleting a blog does not remove its id.
	BlogIDs   []int64   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

var AnonymousUser = User{}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
