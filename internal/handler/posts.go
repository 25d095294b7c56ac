package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"simpleblog/internal/middleware"
	"simpleblog/internal/repository"
	"simpleblog/internal/service"
)

type PostHandler interface {
	Home(c *gin.Context)
	ShowCreate(c *gin.Context)
	Create(c *gin.Context)
	Show(c *gin.Context)
	ShowEdit(c *gin.Context)
}

type postHandler struct {
	posts service.PostService
	log   *logrus.Logger
}

func NewPostHandler(posts service.PostService, log *logrus.Logger) PostHandler {
	return &postHandler{posts: posts, log: log}
}

// Home renders the dashboard with the viewer's posts when authenticated,
// and the public homepage with the registration form otherwise.
func (h *postHandler) Home(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.HTML(http.StatusOK, "homepage.html", gin.H{})
		return
	}

	posts, err := h.posts.ListByAuthor(claims.UserID)
	if err != nil {
		h.log.Errorf("Failed to list posts for user %d: %v", claims.UserID, err)
		posts = nil
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"User": claims, "Posts": posts})
}

func (h *postHandler) ShowCreate(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "create-post.html", gin.H{"User": claims})
}

func (h *postHandler) Create(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	post, err := h.posts.Create(claims.UserID, c.PostForm("title"), c.PostForm("body"))
	if err != nil {
		var verrs service.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusOK, "create-post.html", gin.H{"User": claims, "Errors": verrs})
			return
		}
		h.log.Errorf("Failed to create post for user %d: %v", claims.UserID, err)
		c.HTML(http.StatusInternalServerError, "create-post.html", gin.H{"User": claims, "Errors": []string{"something went wrong, please try again"}})
		return
	}

	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

func (h *postHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	post, err := h.posts.GetWithAuthor(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorf("Failed to load post %d: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	claims, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "single-post.html", gin.H{"User": claims, "Post": post})
}

// ShowEdit renders the edit form. A missing post and an ownership mismatch
// are two independent checks; both redirect home.
func (h *postHandler) ShowEdit(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorf("Failed to load post %d: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if post.AuthorID != claims.UserID {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "edit-post.html", gin.H{"User": claims, "Post": post})
}
