package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/issue-tracker/internal/domain"
)

// IssueRepository реализует repository.IssueRepository для PostgreSQL
type IssueRepository struct {
	db *pgxpool.Pool
}

// NewIssueRepository создает новый экземпляр IssueRepository
func NewIssueRepository(db *pgxpool.Pool) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create создает новую задачу
func (r *IssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	query := `
		INSERT INTO issues (id, organization_id, author_id, title, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := conn(ctx, r.db).QueryRow(ctx, query,
		issue.ID, issue.OrganizationID, issue.AuthorID, issue.Title, issue.Description, issue.Status,
	).Scan(&issue.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return domain.ErrOrganizationNotFound
		}
		return err
	}

	return nil
}

// GetByID получает задачу по ID
func (r *IssueRepository) GetByID(ctx context.Context, issueID string) (*domain.Issue, error) {
	query := `
		SELECT id, organization_id, author_id, title, description, status, created_at, closed_at
		FROM issues
		WHERE id = $1
	`

	issue, err := scanIssue(conn(ctx, r.db).QueryRow(ctx, query, issueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, err
	}

	return issue, nil
}

// ListByOrganization возвращает задачи организации, новые первыми
func (r *IssueRepository) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Issue, error) {
	query := `
		SELECT id, organization_id, author_id, title, description, status, created_at, closed_at
		FROM issues
		WHERE organization_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Возвращаем пустой массив вместо nil если задач нет
	issues := []*domain.Issue{}
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

func scanIssue(row pgx.Row) (*domain.Issue, error) {
	var issue domain.Issue
	err := row.Scan(
		&issue.ID,
		&issue.OrganizationID,
		&issue.AuthorID,
		&issue.Title,
		&issue.Description,
		&issue.Status,
		&issue.CreatedAt,
		&issue.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// Close закрывает задачу (идемпотентная операция)
func (r *IssueRepository) Close(ctx context.Context, issueID string) (*domain.Issue, error) {
	query := `
		UPDATE issues
		SET status = $1, closed_at = COALESCE(closed_at, NOW())
		WHERE id = $2
		RETURNING id, organization_id, author_id, title, description, status, created_at, closed_at
	`

	issue, err := scanIssue(conn(ctx, r.db).QueryRow(ctx, query, domain.IssueClosed, issueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, err
	}

	return issue, nil
}

// DeleteByOrganization удаляет все задачи организации
func (r *IssueRepository) DeleteByOrganization(ctx context.Context, orgID string) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM issues WHERE organization_id = $1`, orgID)
	return err
}

// CountByStatus возвращает количество задач в разрезе статусов
func (r *IssueRepository) CountByStatus(ctx context.Context) (map[domain.IssueStatus]int, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT status, COUNT(*) FROM issues GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.IssueStatus]int{
		domain.IssueOpen:   0,
		domain.IssueClosed: 0,
	}
	for rows.Next() {
		var status domain.IssueStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
