package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"simpleblog/internal/middleware"
	"simpleblog/internal/models"
	"simpleblog/internal/service"
	"simpleblog/internal/token"
)

type AuthHandler interface {
	ShowLogin(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Register(c *gin.Context)
}

type authHandler struct {
	auth  service.AuthService
	codec *token.Codec
	log   *logrus.Logger
}

func NewAuthHandler(auth service.AuthService, codec *token.Codec, log *logrus.Logger) AuthHandler {
	return &authHandler{auth: auth, codec: codec, log: log}
}

func (h *authHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *authHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.auth.Authenticate(username, password)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			c.HTML(http.StatusOK, "login.html", gin.H{"Errors": verrs})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.HTML(http.StatusOK, "login.html", gin.H{"Errors": []string{service.ErrInvalidCredentials.Error()}})
		default:
			h.log.Errorf("Failed to authenticate user: %v", err)
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Errors": []string{"something went wrong, please try again"}})
		}
		return
	}

	if !h.startSession(c, user) {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Errors": []string{"something went wrong, please try again"}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Register creates the account and immediately starts a session for it:
// registration and login are fused into one operation.
func (h *authHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.auth.Register(username, password)
	if err != nil {
		var verrs service.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusOK, "homepage.html", gin.H{"Errors": verrs})
			return
		}
		h.log.Errorf("Failed to register user: %v", err)
		c.HTML(http.StatusInternalServerError, "homepage.html", gin.H{"Errors": []string{"something went wrong, please try again"}})
		return
	}

	if !h.startSession(c, user) {
		c.HTML(http.StatusInternalServerError, "homepage.html", gin.H{"Errors": []string{"something went wrong, please try again"}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *authHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// startSession issues a session token and sets the cookie. Returns false
// after logging when issuance fails.
func (h *authHandler) startSession(c *gin.Context, user *models.User) bool {
	tok, err := h.codec.Issue(user.ID, user.Username)
	if err != nil {
		h.log.Errorf("Failed to issue session token for user %d: %v", user.ID, err)
		return false
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, tok, int(token.DefaultTTL/time.Second), "/", "", true, true)
	return true
}
