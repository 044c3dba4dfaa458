package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation - код ошибки PostgreSQL при нарушении уникального индекса.
const uniqueViolation = "23505"

// isUniqueViolation сообщает, что запрос отклонен уникальным индексом constraint.
// Пустой constraint совпадает с любым индексом.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
