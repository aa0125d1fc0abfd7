package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/metrics"
	"github.com/aidar/issue-tracker/internal/repository"
)

// AccountService deletes a user's account together with everything that depends on it
type AccountService struct {
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
	issueRepo  repository.IssueRepository
	transactor repository.Transactor
	atomic     bool
	logger     *slog.Logger
}

// NewAccountService creates a new AccountService.
// When atomic is true the whole cascade runs inside one transaction.
func NewAccountService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	issueRepo repository.IssueRepository,
	transactor repository.Transactor,
	atomic bool,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		issueRepo:  issueRepo,
		transactor: transactor,
		atomic:     atomic,
		logger:     logger,
	}
}

// DeleteAccount removes the user and cascades the deletion:
//  1. every organization owned by the user is deleted together with its issues,
//     one organization at a time in the order the store yields them;
//  2. the user is pulled from the member list of every organization;
//  3. the user record is deleted.
//
// The first failure stops the cascade. Without the atomic option the steps
// that already succeeded stay applied.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	var deletedOrgs []*domain.Organization
	cascade := func(ctx context.Context) error {
		var err error
		deletedOrgs, err = s.cascade(ctx, userID)
		return err
	}

	var err error
	if s.atomic {
		err = s.transactor.WithinTx(ctx, cascade)
	} else {
		err = cascade(ctx)
	}

	// Rolled back organizations are not counted
	if err == nil || !s.atomic {
		for range deletedOrgs {
			metrics.RecordCascadedOrganization()
		}
	}

	if err != nil {
		metrics.RecordAccountDeletion(metrics.ResultFailed)
		return err
	}

	metrics.RecordAccountDeletion(metrics.ResultSuccess)
	s.logger.InfoContext(ctx, "Account deleted",
		"user_id", userID,
		"organizations_deleted", domain.OrganizationIDs(deletedOrgs),
	)
	return nil
}

// cascade runs the deletion steps and returns the organizations that were removed
func (s *AccountService) cascade(ctx context.Context, userID string) ([]*domain.Organization, error) {
	owned, err := s.orgRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned organizations: %w", err)
	}

	deleted := make([]*domain.Organization, 0, len(owned))
	for _, org := range owned {
		if err := s.issueRepo.DeleteByOrganization(ctx, org.ID); err != nil {
			return deleted, fmt.Errorf("delete issues of organization %s: %w", org.ID, err)
		}
		if err := s.orgRepo.Delete(ctx, org.ID); err != nil {
			return deleted, fmt.Errorf("delete organization %s: %w", org.ID, err)
		}
		deleted = append(deleted, org)
		s.logger.DebugContext(ctx, "Owned organization deleted", "user_id", userID, "organization_id", org.ID)
	}

	if err := s.orgRepo.PullMember(ctx, userID); err != nil {
		return deleted, fmt.Errorf("remove user from organization members: %w", err)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return deleted, fmt.Errorf("delete user: %w", err)
	}

	return deleted, nil
}
