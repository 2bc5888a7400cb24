package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/common"
)

var ErrAuthenticationFailure = fmt.Errorf("invalid username or password")

// NewUserService wires the user model against the database and message
// broker. The token secret and ttl are passed in at startup rather than read
// from process-global state; a ttl of zero issues non-expiring tokens.
func NewUserService(db *sql.DB, mb common.MessageProducer, secret []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		m:        newUserModel(db),
		mb:       mb,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// CreateUser registers a new account with an empty blog list and publishes a
// user.created event.
func (s *UserService) CreateUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validatePassword(v, password)
	validateName(v, name)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Password: Password{Plain: password},
		BlogIDs:  []int64{},
	}

	if err := u.Password.set(u.Password.Plain); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	data, err := json.Marshal(struct {
		Username string
	}{
		Username: u.Username,
	})
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, data, common.UserCreatedKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser checks the submitted credentials and returns a signed bearer
// token embedding the user's id and username. Lookup and password failures
// both collapse to ErrAuthenticationFailure so callers cannot tell which
// credential was wrong.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (string, error) {
	v := common.NewValidator()
	v.Check(username != "", "username", "must be provided")
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return "", v.ValidationError()
	}

	user, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", ErrAuthenticationFailure
		default:
			return "", err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAuthenticationFailure
	}

	return signToken(s.secret, user.ID, user.Username, s.tokenTTL)
}

// AuthenticateToken verifies a bearer token and resolves it to the stored
// user. Any verification or lookup failure yields ErrInvalidToken.
func (s *UserService) AuthenticateToken(ctx context.Context, token string) (*User, error) {
	id, _, err := verifyToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	user, err := s.m.getByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrInvalidToken
		default:
			return nil, err
		}
	}

	return user, nil
}

// AppendBlogID records a newly created blog on its owner's blog list. The
// caller decides whether to await the result; blog creation fires this off
// without waiting.
func (s *UserService) AppendBlogID(ctx context.Context, userID, blogID int) error {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	validateInt(v, blogID, "blog_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.appendBlogID(ctx, userID, blogID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// GetUsers returns every account with its blog id list.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}
