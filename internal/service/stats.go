package service

import (
	"context"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/repository"
)

// IssueStats represents issue counters by status
type IssueStats struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// Stats represents combined statistics
type Stats struct {
	Users         int        `json:"users"`
	Organizations int        `json:"organizations"`
	Issues        IssueStats `json:"issues"`
}

// StatsService handles statistics queries
type StatsService struct {
	userRepo  repository.UserRepository
	orgRepo   repository.OrganizationRepository
	issueRepo repository.IssueRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	issueRepo repository.IssueRepository,
) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		issueRepo: issueRepo,
	}
}

// GetStats returns overall statistics
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	orgs, err := s.orgRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.issueRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Users:         users,
		Organizations: orgs,
		Issues: IssueStats{
			Open:   byStatus[domain.IssueOpen],
			Closed: byStatus[domain.IssueClosed],
		},
	}
	stats.Issues.Total = stats.Issues.Open + stats.Issues.Closed

	return stats, nil
}
