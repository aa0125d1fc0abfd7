package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/middleware"
)

// OrganizationHandler обрабатывает эндпоинты организаций
type OrganizationHandler struct {
	orgService OrganizationService
}

// NewOrganizationHandler создает новый OrganizationHandler
func NewOrganizationHandler(orgService OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// CreateOrganizationRequest представляет тело запроса на создание организации
type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

// OrganizationResponse представляет ответ с одной организацией
type OrganizationResponse struct {
	Organization *domain.Organization `json:"organization"`
}

// ListOrganizationsResponse представляет ответ со списком организаций
type ListOrganizationsResponse struct {
	Organizations []*domain.Organization `json:"organizations"`
}

// Create обрабатывает POST /api/orgs
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		decodeError(w, r)
		return
	}

	org, err := h.orgService.Create(r.Context(), middleware.GetUserIDFromContext(r.Context()), req.Name)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, OrganizationResponse{Organization: org})
}

// List обрабатывает GET /api/orgs
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgService.ListForUser(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListOrganizationsResponse{Organizations: orgs})
}

// Get обрабатывает GET /api/orgs/{orgID}
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgService.Get(r.Context(), middleware.GetUserIDFromContext(r.Context()), chi.URLParam(r, "orgID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, OrganizationResponse{Organization: org})
}

// AddMemberRequest представляет тело запроса на добавление участника
type AddMemberRequest struct {
	UserID string `json:"user_id"`
}

// AddMember обрабатывает POST /api/orgs/{orgID}/members
func (h *OrganizationHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		decodeError(w, r)
		return
	}

	if req.UserID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	org, err := h.orgService.AddMember(
		r.Context(),
		middleware.GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "orgID"),
		req.UserID,
	)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, OrganizationResponse{Organization: org})
}

// RemoveMember обрабатывает DELETE /api/orgs/{orgID}/members/{userID}
func (h *OrganizationHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgService.RemoveMember(
		r.Context(),
		middleware.GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "orgID"),
		chi.URLParam(r, "userID"),
	)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, OrganizationResponse{Organization: org})
}
