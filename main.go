package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"simpleblog/internal/config"
	"simpleblog/internal/repository"
	"simpleblog/internal/server"
	"simpleblog/internal/token"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// The process must not start serving without a signing secret.
	codec, err := token.New([]byte(cfg.JWTSecret), token.DefaultTTL)
	if err != nil {
		logger.Fatal("Signing secret is not configured, set JWT_SECRET", zap.Error(err))
	}

	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repository.MigrateDB(db, logger)

	log := logrus.New()
	users := repository.NewUserRepository(db, log)
	posts := repository.NewPostRepository(db, log)

	srv := server.New(users, posts, codec, cfg, logger, log)
	srv.Run(cfg.Server.Port)
}
