package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixture mirrors a well-known list of blogs about software engineering.
var listWithManyBlogs = []Blog{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []Blog
		want  int
	}{
		{name: "Empty List", blogs: []Blog{}, want: 0},
		{name: "Nil List", blogs: nil, want: 0},
		{name: "Single Blog", blogs: listWithManyBlogs[2:3], want: 12},
		{name: "Many Blogs", blogs: listWithManyBlogs, want: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	tests := []struct {
		name  string
		blogs []Blog
		want  BlogSummary
	}{
		{
			name:  "Empty List",
			blogs: []Blog{},
			want:  BlogSummary{},
		},
		{
			name:  "Single Blog",
			blogs: listWithManyBlogs[:1],
			want:  BlogSummary{Title: "React patterns", Author: "Michael Chan", Likes: 7},
		},
		{
			name:  "Many Blogs",
			blogs: listWithManyBlogs,
			want:  BlogSummary{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
		},
		{
			name: "Tied Likes Keep First",
			blogs: []Blog{
				{Title: "first", Author: "a", Likes: 5},
				{Title: "second", Author: "b", Likes: 5},
			},
			want: BlogSummary{Title: "first", Author: "a", Likes: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FavoriteBlog(tt.blogs))
		})
	}
}

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name  string
		blogs []Blog
		want  AuthorBlogCount
	}{
		{
			name:  "Empty List",
			blogs: []Blog{},
			want:  AuthorBlogCount{},
		},
		{
			name:  "Single Blog",
			blogs: listWithManyBlogs[:1],
			want:  AuthorBlogCount{Author: "Michael Chan", Blogs: 1},
		},
		{
			name:  "Many Blogs",
			blogs: listWithManyBlogs,
			want:  AuthorBlogCount{Author: "Robert C. Martin", Blogs: 3},
		},
		{
			name: "Tied Counts Keep First",
			blogs: []Blog{
				{Author: "a"},
				{Author: "b"},
				{Author: "a"},
				{Author: "b"},
			},
			want: AuthorBlogCount{Author: "a", Blogs: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostBlogs(tt.blogs))
		})
	}
}

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []Blog
		want  AuthorLikeCount
	}{
		{
			name:  "Empty List",
			blogs: []Blog{},
			want:  AuthorLikeCount{},
		},
		{
			name:  "Single Blog",
			blogs: listWithManyBlogs[:1],
			want:  AuthorLikeCount{Author: "Michael Chan", Likes: 7},
		},
		{
			name:  "Many Blogs",
			blogs: listWithManyBlogs,
			want:  AuthorLikeCount{Author: "Edsger W. Dijkstra", Likes: 17},
		},
		{
			name: "Tied Totals Keep First",
			blogs: []Blog{
				{Author: "a", Likes: 5},
				{Author: "b", Likes: 10},
				{Author: "a", Likes: 5},
			},
			want: AuthorLikeCount{Author: "a", Likes: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostLikes(tt.blogs))
		})
	}
}
