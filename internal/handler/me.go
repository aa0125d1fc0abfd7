package handler

import (
	"net/http"

	"github.com/aidar/issue-tracker/internal/middleware"
)

// MeHandler обрабатывает эндпоинты текущей учетной записи
type MeHandler struct {
	userService    UserService
	accountService AccountService
}

// NewMeHandler создает новый MeHandler
func NewMeHandler(userService UserService, accountService AccountService) *MeHandler {
	return &MeHandler{
		userService:    userService,
		accountService: accountService,
	}
}

// Get обрабатывает GET /api/me
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete обрабатывает DELETE /api/me.
// Удаляет организации пользователя вместе с задачами, исключает его из
// остальных организаций и удаляет саму учетную запись.
func (h *MeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Любая ошибка каскада отдается клиенту как ошибка БД
	if err := h.accountService.DeleteAccount(r.Context(), userID); err != nil {
		RespondWithDatabaseError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}
