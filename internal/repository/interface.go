package repository

import (
	"context"

	"github.com/aidar/issue-tracker/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail получает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete удаляет пользователя по ID, отсутствие записи не считается ошибкой
	Delete(ctx context.Context, userID string) error

	// Count возвращает количество пользователей
	Count(ctx context.Context) (int, error)
}

// OrganizationRepository определяет методы для работы с данными организаций
type OrganizationRepository interface {
	// Create создает организацию вместе с начальным списком участников
	Create(ctx context.Context, org *domain.Organization) error

	// GetByID получает организацию со списком участников
	GetByID(ctx context.Context, orgID string) (*domain.Organization, error)

	// ListByOwner возвращает организации, принадлежащие пользователю, в порядке выдачи запроса
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Organization, error)

	// ListForMember возвращает организации, где пользователь владелец или участник
	ListForMember(ctx context.Context, userID string) ([]*domain.Organization, error)

	// Delete удаляет организацию по ID
	Delete(ctx context.Context, orgID string) error

	// AddMember добавляет пользователя в список участников организации
	AddMember(ctx context.Context, orgID, userID string) error

	// RemoveMember исключает пользователя из одной организации
	RemoveMember(ctx context.Context, orgID, userID string) error

	// PullMember исключает пользователя из списков участников всех организаций
	PullMember(ctx context.Context, userID string) error

	// Count возвращает количество организаций
	Count(ctx context.Context) (int, error)
}

// IssueRepository определяет методы для работы с данными задач
type IssueRepository interface {
	// Create создает новую задачу
	Create(ctx context.Context, issue *domain.Issue) error

	// GetByID получает задачу по ID
	GetByID(ctx context.Context, issueID string) (*domain.Issue, error)

	// ListByOrganization возвращает задачи организации, новые первыми
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Issue, error)

	// Close закрывает задачу (идемпотентная операция)
	Close(ctx context.Context, issueID string) (*domain.Issue, error)

	// DeleteByOrganization удаляет все задачи организации
	DeleteByOrganization(ctx context.Context, orgID string) error

	// CountByStatus возвращает количество задач в разрезе статусов
	CountByStatus(ctx context.Context) (map[domain.IssueStatus]int, error)
}

// Transactor выполняет функцию внутри одной транзакции.
// Репозитории, вызванные с переданным контекстом, работают в этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
