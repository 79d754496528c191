package handlers

import (
	"net/http"

	"webblog/internal/services"
	"webblog/internal/utils/helpers"
)

type TagHandler struct {
	svc services.TagService
}

func NewTagHandler(svc services.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Get godoc
// @Summary      Тег по ID
// @Tags         tags
// @Produce      json
// @Param        id  path  int  true  "ID тега"
// @Success      200  {object}  helpers.Response{data=models.Tag}
// @Failure      404  {object}  helpers.Response
// @Router       /api/tags/{id} [get]
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "Тег не найден")
		return
	}

	t, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Ошибка получения тега")
		return
	}
	helpers.JSON(w, http.StatusOK, t)
}
