package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/comment-service/internal/config"
	"github.com/BloggingApp/comment-service/internal/handler"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/BloggingApp/comment-service/internal/repository/storage"
	"github.com/BloggingApp/comment-service/internal/server"
	"github.com/BloggingApp/comment-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := config.Load(""); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	storageConfig := config.Storage()
	store, err := storage.Open(ctx, storageConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to open %s store: %s", storageConfig.Driver, err.Error())
	}
	defer store.Close()
	logger.Sugar().Infof("Successfully opened %s store", storageConfig.Driver)

	rdb, err := redisrepo.Connect(ctx, config.Redis())
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Successfully connected to Redis")
	} else {
		logger.Warn("REDIS_ADDR is not set, caching is disabled")
	}

	repos := repository.New(store, rdb)
	services := service.New(logger, repos)
	handlers := handler.New(services, store)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
