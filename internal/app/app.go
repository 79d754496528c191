package app

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"webblog/internal/config"
	"webblog/internal/db"
	"webblog/internal/handlers"
	"webblog/internal/logger"
	"webblog/internal/repository"
	"webblog/internal/routes"
	"webblog/internal/services"
)

// InitApp поднимает пул БД, миграции и собирает роутер. Пул закрывает вызывающий.
func InitApp(cfg *config.Config) (*mux.Router, *pgxpool.Pool, error) {
	if cfg.AutoMigrate {
		if err := db.RunMigrations(cfg); err != nil {
			return nil, nil, err
		}
	} else {
		logger.Log.Info("Автомиграции отключены (DB_AUTOMIGRATE=false)")
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	return NewRouter(conn), conn, nil
}

// NewRouter собирает репозитории, сервисы и хендлеры поверх любого PgxIface.
func NewRouter(conn repository.PgxIface) *mux.Router {
	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)
	tagRepo := repository.NewTagRepo(conn)

	// Сервисы
	articleSvc := services.NewArticleService(articleRepo, commentRepo, tagRepo)
	commentSvc := services.NewCommentService(commentRepo)
	searchSvc := services.NewSearchService(articleRepo)
	tagSvc := services.NewTagService(tagRepo)

	// Хендлеры
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	searchH := handlers.NewSearchHandler(searchSvc)
	tagH := handlers.NewTagHandler(tagSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, articleH, commentH, searchH, tagH)
	return router
}
