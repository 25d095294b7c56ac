package models

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	AuthorID  int64     `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
}

// PostWithAuthor is a Post joined with its author's username, used by the
// single-post view.
type PostWithAuthor struct {
	Post
	AuthorName string `db:"author_name"`
}
