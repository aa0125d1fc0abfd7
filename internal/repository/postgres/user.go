package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/issue-tracker/internal/domain"
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := conn(ctx, r.db).QueryRow(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrEmailTaken
		}
		return err
	}

	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanOne(conn(ctx, r.db).QueryRow(ctx, query, userID))
}

// GetByEmail получает пользователя по email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	return r.scanOne(conn(ctx, r.db).QueryRow(ctx, query, email))
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Delete удаляет пользователя по ID (повторное удаление ничего не делает)
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	_, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}

// Count возвращает количество пользователей
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
