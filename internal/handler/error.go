package handler

import (
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/aidar/issue-tracker/internal/domain"
)

// Сообщение для любых ошибок хранилища, причина наружу не отдается
const databaseErrorMessage = "Database error"

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// HandleError преобразует доменные ошибки в HTTP ответы.
// Все остальные ошибки считаются ошибками БД: логируются и отдаются как 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		RespondWithError(w, r, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		RespondWithError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		RespondWithError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound), errors.Is(err, domain.ErrIssueNotFound):
		RespondWithError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrOwnerMembership):
		RespondWithError(w, r, http.StatusConflict, err.Error())
	default:
		RespondWithDatabaseError(w, r, err)
	}
}

// RespondWithDatabaseError логирует причину и отвечает 500 без подробностей
func RespondWithDatabaseError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	RespondWithError(w, r, http.StatusInternalServerError, databaseErrorMessage)
}

// decodeError отвечает 400 на некорректное тело запроса
func decodeError(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
}
