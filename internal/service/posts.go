package service

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"simpleblog/internal/models"
	"simpleblog/internal/repository"
)

type PostService interface {
	Create(authorID int64, title, body string) (*models.Post, error)
	Get(id int64) (*models.Post, error)
	GetWithAuthor(id int64) (*models.PostWithAuthor, error)
	ListByAuthor(authorID int64) ([]models.Post, error)
}

type postService struct {
	posts  repository.PostRepository
	policy *bluemonday.Policy
	logger *zap.Logger
}

func NewPostService(posts repository.PostRepository, logger *zap.Logger) PostService {
	return &postService{
		posts:  posts,
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Create sanitizes title and body before validating them, so input that
// consists only of markup fails the non-empty check.
func (s *postService) Create(authorID int64, title, body string) (*models.Post, error) {
	title = strings.TrimSpace(s.policy.Sanitize(strings.TrimSpace(title)))
	body = strings.TrimSpace(s.policy.Sanitize(strings.TrimSpace(body)))

	var errs ValidationErrors
	if title == "" {
		errs = append(errs, "you must provide a title")
	}
	if body == "" {
		errs = append(errs, "you must provide a content")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	post := &models.Post{Title: title, Body: body, AuthorID: authorID}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post created", zap.Int64("post_id", post.ID), zap.Int64("author_id", authorID))
	return post, nil
}

func (s *postService) Get(id int64) (*models.Post, error) {
	return s.posts.GetByID(id)
}

func (s *postService) GetWithAuthor(id int64) (*models.PostWithAuthor, error) {
	return s.posts.GetWithAuthor(id)
}

func (s *postService) ListByAuthor(authorID int64) ([]models.Post, error) {
	return s.posts.ListByAuthor(authorID)
}
