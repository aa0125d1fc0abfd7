package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/aidar/issue-tracker/internal/service"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

// UserIDKey ключ контекста для ID пользователя
const UserIDKey ContextKey = "user_id"

// TokenValidator проверяет JWT токен и возвращает его claims
type TokenValidator interface {
	ValidateToken(token string) (*service.Claims, error)
}

// AuthMiddleware создает middleware для валидации JWT токенов.
// При любой ошибке отвечает 401 и не вызывает следующий обработчик.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, r)
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				unauthorized(w, r)
				return
			}

			// Валидируем токен
			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				unauthorized(w, r)
				return
			}

			// Добавляем ID пользователя в контекст
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]string{"error": "Unauthorized"})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserIDFromContext извлекает ID пользователя из контекста
func GetUserIDFromContext(ctx context.Context) string {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
