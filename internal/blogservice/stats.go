package blogservice

// Pure aggregation helpers over an in-memory list of blogs. All of them are
// deterministic reductions; none touch the store.

type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikeCount struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes across all blogs. An empty list sums to zero.
func TotalLikes(blogs []Blog) int {
	var total int
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// FavoriteBlog returns the title, author, and likes of the most-liked blog.
// The running champion is only replaced when strictly exceeded, so the first
// blog encountered wins ties. Callers must pass a non-empty list; an empty
// one yields the zero value.
func FavoriteBlog(blogs []Blog) BlogSummary {
	if len(blogs) == 0 {
		return BlogSummary{}
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return BlogSummary{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the most blogs. Authors are grouped in
// first-encounter order and ties keep the earlier group. Callers must pass a
// non-empty list; an empty one yields the zero value.
func MostBlogs(blogs []Blog) AuthorBlogCount {
	if len(blogs) == 0 {
		return AuthorBlogCount{}
	}

	counts := make(map[string]int)
	var order []string
	for _, b := range blogs {
		if _, ok := counts[b.Author]; !ok {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := AuthorBlogCount{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = AuthorBlogCount{Author: author, Blogs: counts[author]}
		}
	}

	return top
}

// MostLikes returns the author with the largest like total, with the same
// ordering and tie rules as MostBlogs.
func MostLikes(blogs []Blog) AuthorLikeCount {
	if len(blogs) == 0 {
		return AuthorLikeCount{}
	}

	sums := make(map[string]int)
	var order []string
	for _, b := range blogs {
		if _, ok := sums[b.Author]; !ok {
			order = append(order, b.Author)
		}
		sums[b.Author] += b.Likes
	}

	top := AuthorLikeCount{Author: order[0], Likes: sums[order[0]]}
	for _, author := range order[1:] {
		if sums[author] > top.Likes {
			top = AuthorLikeCount{Author: author, Likes: sums[author]}
		}
	}

	return top
}
