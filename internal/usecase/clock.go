package usecase

import (
	"time"

	"skill-swap-service/internal/domain"
)

// Clock возвращает текущее время. Подменяется в тестах.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}

// normalizePage проверяет skip/limit и подставляет limit по умолчанию.
func normalizePage(skip, limit, defaultLimit, maxLimit int) (int, error) {
	if skip < 0 || limit < 0 || limit > maxLimit {
		return 0, domain.ErrInvalidPagination
	}
	if limit == 0 {
		limit = defaultLimit
	}
	return limit, nil
}
