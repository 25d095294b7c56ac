package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"simpleblog/internal/models"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int64) (*models.Post, error)
	GetWithAuthor(id int64) (*models.PostWithAuthor, error)
	ListByAuthor(authorID int64) ([]models.Post, error)
}

type postRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewPostRepository(db *sqlx.DB, log *logrus.Logger) PostRepository {
	return &postRepository{db: db, log: log}
}

func (r *postRepository) Create(post *models.Post) error {
	query := `INSERT INTO posts (title, body, author_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRowx(query, post.Title, post.Body, post.AuthorID).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		r.log.Errorf("Failed to insert post: %v", err)
		return err
	}
	return nil
}

func (r *postRepository) GetByID(id int64) (*models.Post, error) {
	var post models.Post
	query := `SELECT id, title, body, author_id, created_at FROM posts WHERE id = $1`
	if err := r.db.Get(&post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to get post %d: %v", id, err)
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetWithAuthor(id int64) (*models.PostWithAuthor, error) {
	var post models.PostWithAuthor
	query := `SELECT p.id, p.title, p.body, p.author_id, p.created_at, u.username AS author_name
	          FROM posts p
	          INNER JOIN users u ON p.author_id = u.id
	          WHERE p.id = $1`
	if err := r.db.Get(&post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to get post %d with author: %v", id, err)
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByAuthor(authorID int64) ([]models.Post, error) {
	posts := []models.Post{}
	query := `SELECT id, title, body, author_id, created_at FROM posts WHERE author_id = $1 ORDER BY created_at DESC`
	if err := r.db.Select(&posts, query, authorID); err != nil {
		r.log.Errorf("Failed to list posts for author %d: %v", authorID, err)
		return nil, err
	}
	return posts, nil
}
