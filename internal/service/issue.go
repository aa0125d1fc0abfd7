package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/repository"
)

const maxIssueTitleLength = 200

// IssueService handles business logic for issues inside organizations
type IssueService struct {
	issueRepo  repository.IssueRepository
	orgService *OrganizationService
}

// NewIssueService creates a new IssueService
func NewIssueService(issueRepo repository.IssueRepository, orgService *OrganizationService) *IssueService {
	return &IssueService{
		issueRepo:  issueRepo,
		orgService: orgService,
	}
}

// Create opens a new issue in an organization visible to the caller
func (s *IssueService) Create(ctx context.Context, callerID, orgID, title, description string) (*domain.Issue, error) {
	title = strings.TrimSpace(title)

	var verr domain.ValidationError
	if title == "" {
		verr.Add("title", "is required")
	}
	if utf8.RuneCountInString(title) > maxIssueTitleLength {
		verr.Add("title", "is too long")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if _, err := s.orgService.Get(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	issue := &domain.Issue{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		AuthorID:       callerID,
		Title:          title,
		Description:    strings.TrimSpace(description),
		Status:         domain.IssueOpen,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	return issue, nil
}

// List returns all issues of an organization visible to the caller
func (s *IssueService) List(ctx context.Context, callerID, orgID string) ([]*domain.Issue, error) {
	if _, err := s.orgService.Get(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	return s.issueRepo.ListByOrganization(ctx, orgID)
}

// Close marks an issue as closed (idempotent operation)
func (s *IssueService) Close(ctx context.Context, callerID, orgID, issueID string) (*domain.Issue, error) {
	if _, err := s.orgService.Get(ctx, callerID, orgID); err != nil {
		return nil, err
	}

	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.OrganizationID != orgID {
		return nil, domain.ErrIssueNotFound
	}
	if issue.IsClosed() {
		return issue, nil
	}

	return s.issueRepo.Close(ctx, issueID)
}
