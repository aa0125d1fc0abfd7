package handler

import (
	"context"

	"github.com/aidar/issue-tracker/internal/domain"
	"github.com/aidar/issue-tracker/internal/service"
)

// Интерфейсы сервисов, которые нужны обработчикам

// AuthService регистрирует пользователей и выдает токены
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// UserService читает данные пользователей
type UserService interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

// AccountService удаляет учетную запись вместе с зависимыми данными
type AccountService interface {
	DeleteAccount(ctx context.Context, userID string) error
}

// OrganizationService управляет организациями и их участниками
type OrganizationService interface {
	Create(ctx context.Context, ownerID, name string) (*domain.Organization, error)
	Get(ctx context.Context, callerID, orgID string) (*domain.Organization, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Organization, error)
	AddMember(ctx context.Context, callerID, orgID, userID string) (*domain.Organization, error)
	RemoveMember(ctx context.Context, callerID, orgID, userID string) (*domain.Organization, error)
}

// IssueService управляет задачами организаций
type IssueService interface {
	Create(ctx context.Context, callerID, orgID, title, description string) (*domain.Issue, error)
	List(ctx context.Context, callerID, orgID string) ([]*domain.Issue, error)
	Close(ctx context.Context, callerID, orgID, issueID string) (*domain.Issue, error)
}

// StatsService считает общую статистику
type StatsService interface {
	GetStats(ctx context.Context) (*service.Stats, error)
}
