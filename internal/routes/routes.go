package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"webblog/internal/handlers"
	"webblog/internal/middleware"
	"webblog/internal/utils/helpers"
)

func InitRoutes(
	router *mux.Router,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	searchH *handlers.SearchHandler,
	tagH *handlers.TagHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Статьи ---
	api.HandleFunc("/articles", articleH.List).Methods(http.MethodGet)
	api.HandleFunc("/articles", articleH.Create).Methods(http.MethodPost)
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.Get).Methods(http.MethodGet)
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.Update).Methods(http.MethodPut, http.MethodPatch, http.MethodPost)
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/articles/{id:[0-9]+}/edit", articleH.EditForm).Methods(http.MethodGet)
	api.HandleFunc("/articles/{id:[0-9]+}/delete", articleH.DeleteConfirm).Methods(http.MethodGet)

	// --- Комментарии ---
	api.HandleFunc("/articles/{id:[0-9]+}/comments", commentH.Create).Methods(http.MethodPost)

	// --- Поиск и теги ---
	api.HandleFunc("/search", searchH.Search).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/tags/{id:[0-9]+}", tagH.Get).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "Маршрут не найден")
	})
}
