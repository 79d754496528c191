package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"webblog/internal/forms"
	"webblog/internal/logger"
	"webblog/internal/services"
	"webblog/internal/utils/helpers"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List godoc
// @Summary      Список статей
// @Description  Новые сверху, по 5 на страницу (последняя страница забирает одну «висячую» статью).
// @Description  search ищет по заголовку, автору и точному имени тега; tag — ID тега. Оба фильтра объединяются через AND.
// @Tags         articles
// @Produce      json
// @Param        search  query  string  false  "Строка поиска (до 100 символов)"
// @Param        tag     query  int     false  "ID тега"
// @Param        page    query  string  false  "Номер страницы или last"
// @Success      200  {object}  helpers.Response{data=services.ArticleList}
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lq := services.ListQuery{
		Form: forms.BindSimpleSearch(q),
		Page: q.Get("page"),
	}
	if raw := q.Get("tag"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("Некорректный ID тега", zap.String("tag", raw))
			helpers.Error(w, http.StatusBadRequest, "Некорректный ID тега")
			return
		}
		lq.TagID = &id
	}

	res, err := h.svc.List(r.Context(), lq)
	if err != nil {
		writeError(w, r, err, "Ошибка получения списка статей")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Get godoc
// @Summary      Статья
// @Description  Статья с тегами и страницей комментариев (по 3, новые сверху). Некорректная страница заменяется ближайшей.
// @Tags         articles
// @Produce      json
// @Param        id    path   int     true   "ID статьи"
// @Param        page  query  string  false  "Страница комментариев"
// @Success      200  {object}  helpers.Response{data=services.ArticleDetail}
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	res, err := h.svc.Get(r.Context(), id, r.URL.Query().Get("page"))
	if err != nil {
		writeError(w, r, err, "Ошибка получения статьи")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Create godoc
// @Summary      Создать статью
// @Description  tags — строка через запятую; пустые и повторяющиеся имена отбрасываются.
// @Tags         articles
// @Accept       json,x-www-form-urlencoded,multipart/form-data
// @Produce      json
// @Param        input  body  forms.ArticleForm  true  "Данные статьи"
// @Success      201  {object}  helpers.Response{data=models.Article}
// @Failure      400  {object}  helpers.Response{errors=[]forms.FieldError}
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Create(r.Context(), forms.BindArticle(v))
	if err != nil {
		writeError(w, r, err, "Ошибка создания статьи")
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// EditForm godoc
// @Summary      Форма редактирования статьи
// @Description  Текущие значения полей; теги склеены через ", ".
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "ID статьи"
// @Success      200  {object}  helpers.Response{data=services.ArticleEdit}
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id}/edit [get]
func (h *ArticleHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	res, err := h.svc.EditForm(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Ошибка получения формы редактирования")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Update godoc
// @Summary      Обновить статью
// @Description  Набор тегов заменяется целиком.
// @Tags         articles
// @Accept       json,x-www-form-urlencoded,multipart/form-data
// @Produce      json
// @Param        id     path  int                true  "ID статьи"
// @Param        input  body  forms.ArticleForm  true  "Данные статьи"
// @Success      200  {object}  helpers.Response{data=models.Article}
// @Failure      400  {object}  helpers.Response{errors=[]forms.FieldError}
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Update(r.Context(), id, forms.BindArticle(v))
	if err != nil {
		writeError(w, r, err, "Ошибка обновления статьи")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// DeleteConfirm godoc
// @Summary      Подтверждение удаления
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "ID статьи"
// @Success      200  {object}  helpers.Response{data=models.Article}
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id}/delete [get]
func (h *ArticleHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Ошибка получения статьи")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Delete godoc
// @Summary      Удалить статью
// @Description  Комментарии удаляются вместе со статьёй.
// @Tags         articles
// @Param        id  path  int  true  "ID статьи"
// @Success      204
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "Ошибка удаления статьи")
		return
	}
	helpers.NoContent(w)
}
