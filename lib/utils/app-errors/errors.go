package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError отсутствует обязательная сущность, отдается клиенту как 404
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%v не найден(а): %v", e.Entity, e.ID)
}

func NewNotFound(entity, id string) error {
	return errors.WithStack(NotFoundError{Entity: entity, ID: id})
}

// ForbiddenError операция не разрешена для указанного участника, отдается клиенту как 403
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(format string, args ...any) error {
	return errors.WithStack(ForbiddenError{Message: fmt.Sprintf(format, args...)})
}

// ValidationError некорректные входные данные, отдается клиенту как 400
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) error {
	return errors.WithStack(ValidationError{Message: fmt.Sprintf(format, args...)})
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
