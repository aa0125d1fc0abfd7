package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Доменные ошибки
var (
	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrOrganizationNotFound возвращается когда организация не найдена или недоступна
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrIssueNotFound возвращается когда задача не найдена
	ErrIssueNotFound = errors.New("issue not found")

	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = errors.New("email already registered")

	// ErrAlreadyMember возвращается при повторном добавлении участника
	ErrAlreadyMember = errors.New("user is already a member")

	// ErrOwnerMembership возвращается при попытке исключить владельца из организации
	ErrOwnerMembership = errors.New("owner cannot be removed from organization")

	// ErrForbidden возвращается когда у пользователя нет прав на операцию
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError собирает все ошибки валидации входных данных
type ValidationError struct {
	errs *multierror.Error
}

// Add добавляет ошибку валидации для поля
func (v *ValidationError) Add(field, message string) {
	v.errs = multierror.Append(v.errs, fmt.Errorf("%s: %s", field, message))
}

// ErrOrNil возвращает nil если ошибок нет
func (v *ValidationError) ErrOrNil() error {
	if v.errs == nil || len(v.errs.Errors) == 0 {
		return nil
	}
	return v
}

// Error объединяет сообщения через "; "
func (v *ValidationError) Error() string {
	if v.errs == nil {
		return ""
	}
	msgs := make([]string, 0, len(v.errs.Errors))
	for _, err := range v.errs.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap позволяет errors.Is/As добраться до отдельных ошибок
func (v *ValidationError) Unwrap() []error {
	if v.errs == nil {
		return nil
	}
	return v.errs.Errors
}
