package handlers

import (
	"net/http"

	"webblog/internal/forms"
	"webblog/internal/services"
	"webblog/internal/utils/helpers"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary      Комментарий к статье
// @Tags         comments
// @Accept       json,x-www-form-urlencoded,multipart/form-data
// @Produce      json
// @Param        id     path  int                true  "ID статьи"
// @Param        input  body  forms.CommentForm  true  "Комментарий"
// @Success      201  {object}  helpers.Response{data=models.Comment}
// @Failure      400  {object}  helpers.Response{errors=[]forms.FieldError}
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{id}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Create(r.Context(), id, forms.BindComment(v))
	if err != nil {
		writeError(w, r, err, "Ошибка добавления комментария")
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}
