package blogservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"bloglist/internal/common"
)

func setupTestService(t *testing.T) (*BlogService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	return NewBlogService(db, cache), db
}

func insertTestUser(t *testing.T, db *sql.DB, username string) int {
	hash, err := bcrypt.GenerateFromPassword([]byte("salainen"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	var id int
	err = db.QueryRow("INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id", username, hash).Scan(&id)
	assert.NoError(t, err)

	return id
}

func TestCreateBlog(t *testing.T) {
	s, db := setupTestService(t)

	userId := insertTestUser(t, db, "mluukkai")

	testCases := []struct {
		name      string
		req       CreateBlogRequest
		wantErr   error
		wantErrAs bool
	}{
		{
			name: "Valid Blog",
			req: CreateBlogRequest{
				Title:  "React patterns",
				Author: "Michael Chan",
				URL:    "https://reactpatterns.com/",
				Likes:  7,
				UserID: userId,
			},
		},
		{
			name: "Zero Likes Default",
			req: CreateBlogRequest{
				Title:  "Type wars",
				URL:    "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html",
				UserID: userId,
			},
		},
		{
			name: "Unknown User",
			req: CreateBlogRequest{
				Title:  "React patterns",
				URL:    "https://reactpatterns.com/",
				UserID: 99999,
			},
			wantErr: ErrUserForeignKey,
		},
		{
			name: "Short Title",
			req: CreateBlogRequest{
				Title:  "a",
				URL:    "https://reactpatterns.com/",
				UserID: userId,
			},
			wantErrAs: true,
		},
		{
			name: "Missing URL",
			req: CreateBlogRequest{
				Title:  "React patterns",
				UserID: userId,
			},
			wantErrAs: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			blog, err := s.CreateBlog(ctx, &tc.req)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantErrAs:
				var validationErr common.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			default:
				assert.NoError(t, err)
				assert.NotZero(t, blog.ID)
				assert.Equal(t, tc.req.Title, blog.Title)
				assert.Equal(t, tc.req.Likes, blog.Likes)
				assert.Equal(t, userId, blog.UserID)
				assert.NotZero(t, blog.CreatedAt)
			}
		})
	}
}

func TestGetBlogByID(t *testing.T) {
	s, db := setupTestService(t)

	userId := insertTestUser(t, db, "mluukkai")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  7,
		UserID: userId,
	})
	assert.NoError(t, err)

	blog, err := s.GetBlogByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, blog.ID)
	assert.Equal(t, "mluukkai", blog.User.Username)
	assert.Equal(t, userId, blog.User.ID)

	// Repeat lookups are served from the cache.
	again, err := s.GetBlogByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Same(t, blog, again)

	t.Run("Unknown Blog", func(t *testing.T) {
		_, err := s.GetBlogByID(ctx, 99999)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestGetBlogs(t *testing.T) {
	s, db := setupTestService(t)

	userId := insertTestUser(t, db, "mluukkai")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	blogs, err := s.GetBlogs(ctx)
	assert.NoError(t, err)
	assert.Empty(t, blogs)

	first, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "React patterns", URL: "https://reactpatterns.com/", UserID: userId})
	assert.NoError(t, err)

	second, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "Type wars", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", UserID: userId})
	assert.NoError(t, err)

	blogs, err = s.GetBlogs(ctx)
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)

	// Newest first.
	assert.Equal(t, second.ID, blogs[0].ID)
	assert.Equal(t, first.ID, blogs[1].ID)
	assert.Equal(t, "mluukkai", blogs[0].User.Username)
}

func TestUpdateBlogLikes(t *testing.T) {
	s, db := setupTestService(t)

	userId := insertTestUser(t, db, "mluukkai")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "React patterns", URL: "https://reactpatterns.com/", Likes: 7, UserID: userId})
	assert.NoError(t, err)

	blog, err := s.UpdateBlogLikes(ctx, created.ID, 42)
	assert.NoError(t, err)
	assert.Equal(t, 42, blog.Likes)

	// The stale cached record is dropped on update.
	got, err := s.GetBlogByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 42, got.Likes)

	t.Run("Unknown Blog", func(t *testing.T) {
		_, err := s.UpdateBlogLikes(ctx, 99999, 42)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("Negative Likes", func(t *testing.T) {
		var validationErr common.ValidationError
		_, err := s.UpdateBlogLikes(ctx, created.ID, -1)
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestDeleteBlog(t *testing.T) {
	s, db := setupTestService(t)

	ownerId := insertTestUser(t, db, "owner")
	otherId := insertTestUser(t, db, "other")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "React patterns", URL: "https://reactpatterns.com/", UserID: ownerId})
	assert.NoError(t, err)

	t.Run("Wrong User", func(t *testing.T) {
		err := s.DeleteBlog(ctx, created.ID, otherId)
		assert.ErrorIs(t, err, ErrRecordNotFound)

		var count int
		err = db.QueryRow("SELECT count(*) FROM blogs WHERE id = $1", created.ID).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Owner", func(t *testing.T) {
		err := s.DeleteBlog(ctx, created.ID, ownerId)
		assert.NoError(t, err)

		_, err = s.GetBlogByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestGetBlogsByIDs(t *testing.T) {
	s, db := setupTestService(t)

	userId := insertTestUser(t, db, "mluukkai")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "React patterns", URL: "https://reactpatterns.com/", UserID: userId})
	assert.NoError(t, err)

	second, err := s.CreateBlog(ctx, &CreateBlogRequest{Title: "Type wars", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", UserID: userId})
	assert.NoError(t, err)

	t.Run("Empty Input", func(t *testing.T) {
		blogs, err := s.GetBlogsByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, []Blog{}, blogs)
	})

	t.Run("Missing Ids Skipped", func(t *testing.T) {
		blogs, err := s.GetBlogsByIDs(ctx, []int64{int64(first.ID), int64(second.ID), 99999})
		assert.NoError(t, err)
		assert.Len(t, blogs, 2)
		assert.Equal(t, first.ID, blogs[0].ID)
		assert.Equal(t, second.ID, blogs[1].ID)
	})
}
