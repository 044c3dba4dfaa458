package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
)

const pendingSwapIndex = "swaps_pending_tuple_idx"

// SwapRepository реализует хранение обменов в PostgreSQL.
// Все изменения состояния выполняются под блокировкой строки.
type SwapRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewSwapRepository создает новый экземпляр SwapRepository.
func NewSwapRepository(db *sql.DB, queries *database.Queries) domain.SwapRepository {
	return &SwapRepository{
		db:      db,
		queries: queries,
	}
}

// Конвертируем NullTime <-> *time.Time
func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toDomainSwap(s database.Swap) *domain.Swap {
	return &domain.Swap{
		ID:                    s.SwapID,
		RequesterID:           s.RequesterID,
		RequestedUserID:       s.RequestedUserID,
		OfferedSkillID:        s.OfferedSkillID,
		RequestedSkillID:      s.RequestedSkillID,
		Status:                domain.SwapStatus(s.Status),
		Message:               s.Message,
		Location:              s.Location,
		ResponseDeadline:      s.ResponseDeadline,
		ProposedStartDate:     fromNullTime(s.ProposedStartDate),
		ActualStartDate:       fromNullTime(s.ActualStartDate),
		CompletionDate:        fromNullTime(s.CompletionDate),
		RespondedAt:           fromNullTime(s.RespondedAt),
		RequesterProgress:     int(s.RequesterProgress),
		RequestedUserProgress: int(s.RequestedUserProgress),
		CloseReason:           s.CloseReason,
		ClosedBy:              s.ClosedBy,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
		Version:               s.Version,
	}
}

// Create сохраняет новый обмен.
func (r *SwapRepository) Create(ctx context.Context, swap *domain.Swap) error {
	err := r.queries.CreateSwap(ctx, database.CreateSwapParams{
		SwapID:            swap.ID,
		RequesterID:       swap.RequesterID,
		RequestedUserID:   swap.RequestedUserID,
		OfferedSkillID:    swap.OfferedSkillID,
		RequestedSkillID:  swap.RequestedSkillID,
		Status:            string(swap.Status),
		Message:           swap.Message,
		Location:          swap.Location,
		ResponseDeadline:  swap.ResponseDeadline,
		ProposedStartDate: toNullTime(swap.ProposedStartDate),
		CreatedAt:         swap.CreatedAt,
		UpdatedAt:         swap.UpdatedAt,
	})
	if err != nil {
		if isUniqueViolation(err, pendingSwapIndex) {
			return domain.ErrDuplicatePendingSwap
		}
		return fmt.Errorf("failed to create swap: %w", err)
	}

	swap.Version = 1
	return nil
}

// GetByID возвращает обмен по ID.
func (r *SwapRepository) GetByID(ctx context.Context, swapID string) (*domain.Swap, error) {
	dbSwap, err := r.queries.GetSwapByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to get swap: %w", err)
	}

	return toDomainSwap(dbSwap), nil
}

// Mutate блокирует строку обмена, применяет fn и сохраняет результат, если fn сообщил об изменении.
// Изменение сохраняется даже тогда, когда fn вернул ошибку: так фиксируется отказ по истечении срока.
func (r *SwapRepository) Mutate(ctx context.Context, swapID string, fn domain.SwapMutator) (*domain.Swap, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Блокируем строку
	dbSwap, err := txQueries.GetSwapForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrSwapNotFound
			return nil, err
		}
		err = fmt.Errorf("failed to lock swap: %w", err)
		return nil, err
	}

	// 2. Применяем переход
	swap := toDomainSwap(dbSwap)
	changed, applyErr := fn(swap)
	if !changed {
		err = applyErr
		if err != nil {
			return nil, err
		}
		_ = tx.Rollback()
		return swap, nil
	}

	// 3. Сохраняем с проверкой версии
	updated, err := txQueries.UpdateSwap(ctx, database.UpdateSwapParams{
		SwapID:                swap.ID,
		Version:               swap.Version,
		Status:                string(swap.Status),
		Message:               swap.Message,
		Location:              swap.Location,
		ProposedStartDate:     toNullTime(swap.ProposedStartDate),
		ActualStartDate:       toNullTime(swap.ActualStartDate),
		CompletionDate:        toNullTime(swap.CompletionDate),
		RespondedAt:           toNullTime(swap.RespondedAt),
		RequesterProgress:     int32(swap.RequesterProgress),
		RequestedUserProgress: int32(swap.RequestedUserProgress),
		CloseReason:           swap.CloseReason,
		ClosedBy:              swap.ClosedBy,
		UpdatedAt:             swap.UpdatedAt,
	})
	if err != nil {
		err = fmt.Errorf("failed to update swap: %w", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toDomainSwap(updated), applyErr
}

// Delete удаляет обмен, если check разрешает это для заблокированной строки.
func (r *SwapRepository) Delete(ctx context.Context, swapID string, check func(swap *domain.Swap) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	dbSwap, err := txQueries.GetSwapForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrSwapNotFound
			return err
		}
		err = fmt.Errorf("failed to lock swap: %w", err)
		return err
	}

	if err = check(toDomainSwap(dbSwap)); err != nil {
		return err
	}

	if err = txQueries.DeleteSwap(ctx, swapID); err != nil {
		err = fmt.Errorf("failed to delete swap: %w", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List возвращает страницу обменов пользователя, новые первыми.
func (r *SwapRepository) List(ctx context.Context, filter domain.SwapFilter) ([]*domain.Swap, error) {
	dbSwaps, err := r.queries.ListUserSwaps(ctx, database.ListUserSwapsParams{
		UserID:    filter.UserID,
		Direction: filter.Direction,
		Status:    string(filter.Status),
		Limit:     int32(filter.Limit),
		Offset:    int32(filter.Skip),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}

	swaps := make([]*domain.Swap, 0, len(dbSwaps))
	for _, dbSwap := range dbSwaps {
		swaps = append(swaps, toDomainSwap(dbSwap))
	}

	return swaps, nil
}

// ExistsPending проверяет наличие ожидающего обмена с тем же набором сторон и навыков.
func (r *SwapRepository) ExistsPending(ctx context.Context, key domain.SwapKey) (bool, error) {
	count, err := r.queries.CountPendingSwaps(ctx, database.CountPendingSwapsParams{
		RequesterID:      key.RequesterID,
		RequestedUserID:  key.RequestedUserID,
		OfferedSkillID:   key.OfferedSkillID,
		RequestedSkillID: key.RequestedSkillID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check pending swap: %w", err)
	}
	return count > 0, nil
}
