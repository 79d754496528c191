package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "webblog/docs"
	"webblog/internal/app"
	"webblog/internal/config"
	"webblog/internal/logger"
)

// @title Webblog API
// @version 1.0
// @description Блог: статьи с тегами, комментарии, поиск.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("ошибка загрузки конфига: " + err.Error())
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Некорректная конфигурация", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Log.Warn("Конфигурация", zap.String("warning", w))
	}

	router, pool, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}
	defer pool.Close()

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", zap.Error(err))
	}
}
