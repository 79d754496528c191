package helpers

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Errors interface{} `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Response{Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Response{Error: errMsg})
}

// Invalid: 400 со списком ошибок по полям.
func Invalid(w http.ResponseWriter, errMsg string, errs interface{}) {
	write(w, http.StatusBadRequest, Response{Error: errMsg, Errors: errs})
}

// NoContent: пустой ответ (например, после удаления).
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return
	}
}
