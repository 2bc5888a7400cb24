package blogservice

import (
	"context"
	"database/sql"

	"bloglist/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	UserID int    `json:"user_id"`
}

// CreateBlog persists a new blog owned by the given user and returns the
// stored record. The owner's blog list is not touched here; that
// bookkeeping belongs to the caller.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateURL(v, req.URL)
	validateLikes(v, req.Likes)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: req.UserID,
	}

	if err := s.m.insert(ctx, &blog); err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlogList())

	return &blog, nil
}

// GetBlogByID returns a blog with its owner embedded, serving repeat lookups
// from the cache.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		return cached.(*Blog), nil
	}

	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// GetBlogs returns every blog with its owner embedded, newest first.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlogList()); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogList(), blogs)

	return blogs, nil
}

// UpdateBlogLikes overwrites the like count of a blog. No ownership check is
// applied; anyone who can reach the endpoint can adjust likes.
func (s *BlogService) UpdateBlogLikes(ctx context.Context, id, likes int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateLikes(v, likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.updateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))
	s.c.Delete(common.CacheKeyBlogList())

	return blog, nil
}

// DeleteBlog removes a blog owned by the given user.
func (s *BlogService) DeleteBlog(ctx context.Context, blogId, userId int) error {
	v := common.NewValidator()
	validateInt(v, blogId, "id")
	validateInt(v, userId, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.deleteBlog(ctx, blogId, userId); err != nil {
		return err
	}

	s.c.Delete(common.CacheKeyBlog(blogId))
	s.c.Delete(common.CacheKeyBlogList())

	return nil
}

// GetBlogsByIDs resolves a list of blog ids, skipping ids with no record.
func (s *BlogService) GetBlogsByIDs(ctx context.Context, ids []int64) ([]Blog, error) {
	if len(ids) == 0 {
		return []Blog{}, nil
	}

	return s.m.getBlogsByIds(ctx, ids)
}
