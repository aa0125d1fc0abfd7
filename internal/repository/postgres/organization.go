package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/issue-tracker/internal/domain"
)

// Выборка организации вместе с участниками одной строкой
const selectOrganizations = `
	SELECT o.id, o.name, o.owner_id, o.created_at,
	       COALESCE(array_agg(m.user_id ORDER BY m.added_at, m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
	FROM organizations o
	LEFT JOIN organization_members m ON m.organization_id = o.id
`

// OrganizationRepository реализует repository.OrganizationRepository для PostgreSQL
type OrganizationRepository struct {
	db *pgxpool.Pool
}

// NewOrganizationRepository создает новый экземпляр OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create создает организацию вместе с начальным списком участников
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	// Внутри внешней транзакции Begin создает savepoint
	tx, err := conn(ctx, r.db).Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	query := `
		INSERT INTO organizations (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := tx.QueryRow(ctx, query, org.ID, org.Name, org.OwnerID).Scan(&org.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return domain.ErrUserNotFound
		}
		return err
	}

	memberQuery := `
		INSERT INTO organization_members (organization_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, memberID := range org.MemberIDs {
		if _, err := tx.Exec(ctx, memberQuery, org.ID, memberID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID получает организацию со списком участников
func (r *OrganizationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	query := selectOrganizations + `
		WHERE o.id = $1
		GROUP BY o.id
	`

	org, err := scanOrganization(conn(ctx, r.db).QueryRow(ctx, query, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	return org, nil
}

// ListByOwner возвращает организации, принадлежащие пользователю
func (r *OrganizationRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Organization, error) {
	query := selectOrganizations + `
		WHERE o.owner_id = $1
		GROUP BY o.id
		ORDER BY o.created_at, o.id
	`

	return r.list(ctx, query, ownerID)
}

// ListForMember возвращает организации, где пользователь владелец или участник
func (r *OrganizationRepository) ListForMember(ctx context.Context, userID string) ([]*domain.Organization, error) {
	query := selectOrganizations + `
		WHERE o.owner_id = $1
		   OR EXISTS (SELECT 1 FROM organization_members mm WHERE mm.organization_id = o.id AND mm.user_id = $1)
		GROUP BY o.id
		ORDER BY o.created_at, o.id
	`

	return r.list(ctx, query, userID)
}

func (r *OrganizationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Organization, error) {
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []*domain.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var org domain.Organization
	if err := row.Scan(&org.ID, &org.Name, &org.OwnerID, &org.CreatedAt, &org.MemberIDs); err != nil {
		return nil, err
	}
	return &org, nil
}

// Delete удаляет организацию по ID, участники удаляются каскадно
func (r *OrganizationRepository) Delete(ctx context.Context, orgID string) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM organizations WHERE id = $1`, orgID)
	return err
}

// AddMember добавляет пользователя в список участников организации
func (r *OrganizationRepository) AddMember(ctx context.Context, orgID, userID string) error {
	query := `INSERT INTO organization_members (organization_id, user_id) VALUES ($1, $2)`

	_, err := conn(ctx, r.db).Exec(ctx, query, orgID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return domain.ErrAlreadyMember
			case "23503": // foreign_key_violation
				return domain.ErrNotFound
			}
		}
		return err
	}

	return nil
}

// RemoveMember исключает пользователя из одной организации
func (r *OrganizationRepository) RemoveMember(ctx context.Context, orgID, userID string) error {
	query := `DELETE FROM organization_members WHERE organization_id = $1 AND user_id = $2`

	result, err := conn(ctx, r.db).Exec(ctx, query, orgID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// PullMember исключает пользователя из списков участников всех организаций.
// Фильтр по организации не применяется, поиск идет по индексу user_id.
func (r *OrganizationRepository) PullMember(ctx context.Context, userID string) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM organization_members WHERE user_id = $1`, userID)
	return err
}

// Count возвращает количество организаций
func (r *OrganizationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count)
	return count, err
}
