package handlers

import (
	"net/http"

	"webblog/internal/forms"
	"webblog/internal/services"
	"webblog/internal/utils/helpers"
)

type SearchHandler struct {
	svc services.SearchService
}

func NewSearchHandler(svc services.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary      Расширенный поиск
// @Description  GET без параметров возвращает начальную форму. Иначе ищет по тексту (заголовок, текст,
// @Description  точное имя тега, текст комментария) и/или автору (статьи, комментария). Без пагинации.
// @Tags         search
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        text             query  string  false  "Текст"
// @Param        in_title         query  bool    false  "Искать в заголовке"
// @Param        in_text          query  bool    false  "Искать в тексте"
// @Param        in_tags          query  bool    false  "Искать в тегах"
// @Param        in_comment_text  query  bool    false  "Искать в комментариях"
// @Param        author           query  string  false  "Автор"
// @Param        article_author   query  bool    false  "Автор статьи"
// @Param        comment_author   query  bool    false  "Автор комментария"
// @Success      200  {object}  helpers.Response{data=services.SearchResult}
// @Failure      400  {object}  helpers.Response{errors=[]forms.FieldError}
// @Router       /api/search [get]
// @Router       /api/search [post]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && len(r.URL.Query()) == 0 {
		helpers.JSON(w, http.StatusOK, h.svc.Initial())
		return
	}

	v, ok := formValues(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Search(r.Context(), forms.BindFullSearch(v))
	if err != nil {
		writeError(w, r, err, "Ошибка поиска статей")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}
