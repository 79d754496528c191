package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"webblog/internal/forms"
	"webblog/internal/logger"
	"webblog/internal/pagination"
	"webblog/internal/repository"
	"webblog/internal/utils/helpers"
)

var errBadID = errors.New("invalid id")

// writeError переводит ошибку сервиса в HTTP-ответ. Неожиданные ошибки логируются как msg.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var ferrs forms.Errors
	switch {
	case errors.As(err, &ferrs):
		helpers.Invalid(w, "Ошибка валидации формы", ferrs)
	case errors.Is(err, repository.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Не найдено")
	case errors.Is(err, pagination.ErrEmptyPage), errors.Is(err, pagination.ErrPageNotAnInteger):
		helpers.Error(w, http.StatusNotFound, "Страница не найдена")
	default:
		logger.WithCtx(r.Context()).Error(msg, zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

// formValues: значения формы из запроса; при ошибке уже отвечает 400.
func formValues(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	v, err := forms.Values(r)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидное тело запроса", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидное тело запроса")
		return nil, false
	}
	return v, true
}
