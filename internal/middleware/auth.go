package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"simpleblog/internal/models"
	"simpleblog/internal/token"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "simpleblog_session"

const identityKey = "identity"

// Identify resolves the session cookie into a per-request identity. It
// runs on every request and never aborts: requests without a cookie, or
// with a token that fails verification, continue as anonymous. The cookie
// itself is left untouched.
func Identify(codec *token.Codec, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil {
			if claims, ok := codec.Verify(cookie); ok {
				c.Set(identityKey, claims)
			} else {
				logger.Debug("Discarding invalid session token", zap.String("path", c.Request.URL.Path))
			}
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Identify, if any.
func CurrentUser(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok
}

// RequireUser guards identity-requiring routes. An anonymous request is
// redirected to the home page, not shown an error.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
