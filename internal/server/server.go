package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"simpleblog/internal/config"
	"simpleblog/internal/handler"
	"simpleblog/internal/middleware"
	"simpleblog/internal/repository"
	"simpleblog/internal/service"
	"simpleblog/internal/token"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// New builds the gin engine: templates, static files, the identity
// middleware chain and the route table.
func New(users repository.UserRepository, posts repository.PostRepository, codec *token.Codec, cfg *config.Config, logger *zap.Logger, log *logrus.Logger) *Server {
	router := gin.Default()
	router.LoadHTMLGlob(filepath.Join(cfg.Templates.Dir, "*.html"))
	router.Static("/static", cfg.Static.Dir)

	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Identify(codec, logger))

	authService := service.NewAuthService(users, logger)
	postService := service.NewPostService(posts, logger)
	authHandler := handler.NewAuthHandler(authService, codec, log)
	postHandler := handler.NewPostHandler(postService, log)

	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/", postHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.POST("/register", authHandler.Register)
	router.GET("/post/:id", postHandler.Show)

	authRequired := router.Group("/")
	authRequired.Use(middleware.RequireUser())
	{
		authRequired.GET("/createpost", postHandler.ShowCreate)
		authRequired.POST("/create-post", postHandler.Create)
		authRequired.GET("/edit-post/:id", postHandler.ShowEdit)
	}

	return &Server{router: router, logger: logger}
}

// ServeHTTP makes the server usable directly with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
