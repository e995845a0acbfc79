package folio

import "slices"

// OrderByDateDescending returns a copy of posts sorted newest first. Posts
// with the same date keep their input order.
func OrderByDateDescending(posts []Post) []Post {
	out := slices.Clone(posts)
	slices.SortStableFunc(out, func(a, b Post) int {
		return b.Published.Compare(a.Published)
	})
	return out
}

// SplitHero returns the first post as the hero and the rest as the
// secondary list. The hero is nil when posts is empty.
func SplitHero[T any](posts []T) (*T, []T) {
	if len(posts) == 0 {
		return nil, nil
	}
	hero := posts[0]
	return &hero, posts[1:]
}

// Latest returns at most n posts from the front of posts.
func Latest[T any](posts []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return posts[:min(n, len(posts))]
}
