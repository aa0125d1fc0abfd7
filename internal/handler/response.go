package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// OKResponse подтверждение успешной операции без данных
type OKResponse struct {
	OK bool `json:"ok"`
}

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}
