package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/repository"
)

// OrganizationService handles business logic for organizations and their members
type OrganizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
	}
}

// Create creates an organization owned by the caller, who also becomes its first member
func (s *OrganizationService) Create(ctx context.Context, ownerID, name string) (*domain.Organization, error) {
	name = strings.TrimSpace(name)

	var verr domain.ValidationError
	if name == "" {
		verr.Add("name", "is required")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	org := &domain.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		MemberIDs: []string{ownerID},
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// Get returns an organization visible to the caller.
// Organizations the caller neither owns nor belongs to are reported as not found.
func (s *OrganizationService) Get(ctx context.Context, callerID, orgID string) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if !org.CanView(callerID) {
		return nil, domain.ErrOrganizationNotFound
	}

	return org, nil
}

// ListForUser returns organizations the user owns or belongs to
func (s *OrganizationService) ListForUser(ctx context.Context, userID string) ([]*domain.Organization, error) {
	return s.orgRepo.ListForMember(ctx, userID)
}

// AddMember adds an existing user to the organization (owner only)
func (s *OrganizationService) AddMember(ctx context.Context, callerID, orgID, userID string) (*domain.Organization, error) {
	org, err := s.Get(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !org.IsOwner(callerID) {
		return nil, domain.ErrForbidden
	}
	if org.HasMember(userID) {
		return nil, domain.ErrAlreadyMember
	}

	// Make sure the target user exists before touching the member list
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.orgRepo.AddMember(ctx, orgID, userID); err != nil {
		return nil, err
	}

	return s.orgRepo.GetByID(ctx, orgID)
}

// RemoveMember removes a member from the organization (owner only, owner cannot be removed)
func (s *OrganizationService) RemoveMember(ctx context.Context, callerID, orgID, userID string) (*domain.Organization, error) {
	org, err := s.Get(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !org.IsOwner(callerID) {
		return nil, domain.ErrForbidden
	}
	if org.IsOwner(userID) {
		return nil, domain.ErrOwnerMembership
	}

	if err := s.orgRepo.RemoveMember(ctx, orgID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.orgRepo.GetByID(ctx, orgID)
}
