package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/middleware"
)

// IssueHandler обрабатывает эндпоинты задач
type IssueHandler struct {
	issueService IssueService
}

// NewIssueHandler создает новый IssueHandler
func NewIssueHandler(issueService IssueService) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
	}
}

// CreateIssueRequest представляет тело запроса на создание задачи
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// IssueResponse представляет ответ с одной задачей
type IssueResponse struct {
	Issue *domain.Issue `json:"issue"`
}

// ListIssuesResponse представляет ответ со списком задач
type ListIssuesResponse struct {
	Issues []*domain.Issue `json:"issues"`
}

// Create обрабатывает POST /api/orgs/{orgID}/issues
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		decodeError(w, r)
		return
	}

	issue, err := h.issueService.Create(
		r.Context(),
		middleware.GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "orgID"),
		req.Title,
		req.Description,
	)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, IssueResponse{Issue: issue})
}

// List обрабатывает GET /api/orgs/{orgID}/issues
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issueService.List(r.Context(), middleware.GetUserIDFromContext(r.Context()), chi.URLParam(r, "orgID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListIssuesResponse{Issues: issues})
}

// Close обрабатывает POST /api/orgs/{orgID}/issues/{issueID}/close (идемпотентная операция)
func (h *IssueHandler) Close(w http.ResponseWriter, r *http.Request) {
	issue, err := h.issueService.Close(
		r.Context(),
		middleware.GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "orgID"),
		chi.URLParam(r, "issueID"),
	)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, IssueResponse{Issue: issue})
}
