package database

import (
	"context"
	"database/sql"
	"time"
)

const swapColumns = `swap_id, requester_id, requested_user_id, offered_skill_id, requested_skill_id, status,
    message, location, response_deadline, proposed_start_date, actual_start_date, completion_date,
    responded_at, requester_progress, requested_user_progress, close_reason, closed_by,
    created_at, updated_at, version`

func scanSwap(row interface{ Scan(...interface{}) error }) (Swap, error) {
	var i Swap
	err := row.Scan(
		&i.SwapID,
		&i.RequesterID,
		&i.RequestedUserID,
		&i.OfferedSkillID,
		&i.RequestedSkillID,
		&i.Status,
		&i.Message,
		&i.Location,
		&i.ResponseDeadline,
		&i.ProposedStartDate,
		&i.ActualStartDate,
		&i.CompletionDate,
		&i.RespondedAt,
		&i.RequesterProgress,
		&i.RequestedUserProgress,
		&i.CloseReason,
		&i.ClosedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Version,
	)
	return i, err
}

const createSwap = `-- name: CreateSwap :exec
INSERT INTO swaps (
    swap_id, requester_id, requested_user_id, offered_skill_id, requested_skill_id, status,
    message, location, response_deadline, proposed_start_date, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateSwapParams struct {
	SwapID            string
	RequesterID       string
	RequestedUserID   string
	OfferedSkillID    string
	RequestedSkillID  string
	Status            string
	Message           string
	Location          string
	ResponseDeadline  time.Time
	ProposedStartDate sql.NullTime
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (q *Queries) CreateSwap(ctx context.Context, arg CreateSwapParams) error {
	_, err := q.db.ExecContext(ctx, createSwap,
		arg.SwapID,
		arg.RequesterID,
		arg.RequestedUserID,
		arg.OfferedSkillID,
		arg.RequestedSkillID,
		arg.Status,
		arg.Message,
		arg.Location,
		arg.ResponseDeadline,
		arg.ProposedStartDate,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getSwapByID = `-- name: GetSwapByID :one
SELECT ` + swapColumns + `
FROM swaps
WHERE swap_id = $1
`

func (q *Queries) GetSwapByID(ctx context.Context, swapID string) (Swap, error) {
	return scanSwap(q.db.QueryRowContext(ctx, getSwapByID, swapID))
}

const getSwapForUpdate = `-- name: GetSwapForUpdate :one
SELECT ` + swapColumns + `
FROM swaps
WHERE swap_id = $1
FOR UPDATE
`

func (q *Queries) GetSwapForUpdate(ctx context.Context, swapID string) (Swap, error) {
	return scanSwap(q.db.QueryRowContext(ctx, getSwapForUpdate, swapID))
}

const updateSwap = `-- name: UpdateSwap :one
UPDATE swaps
SET status = $3,
    message = $4,
    location = $5,
    proposed_start_date = $6,
    actual_start_date = $7,
    completion_date = $8,
    responded_at = $9,
    requester_progress = $10,
    requested_user_progress = $11,
    close_reason = $12,
    closed_by = $13,
    updated_at = $14,
    version = version + 1
WHERE swap_id = $1 AND version = $2
RETURNING ` + swapColumns

type UpdateSwapParams struct {
	SwapID                string
	Version               int64
	Status                string
	Message               string
	Location              string
	ProposedStartDate     sql.NullTime
	ActualStartDate       sql.NullTime
	CompletionDate        sql.NullTime
	RespondedAt           sql.NullTime
	RequesterProgress     int32
	RequestedUserProgress int32
	CloseReason           string
	ClosedBy              string
	UpdatedAt             time.Time
}

func (q *Queries) UpdateSwap(ctx context.Context, arg UpdateSwapParams) (Swap, error) {
	row := q.db.QueryRowContext(ctx, updateSwap,
		arg.SwapID,
		arg.Version,
		arg.Status,
		arg.Message,
		arg.Location,
		arg.ProposedStartDate,
		arg.ActualStartDate,
		arg.CompletionDate,
		arg.RespondedAt,
		arg.RequesterProgress,
		arg.RequestedUserProgress,
		arg.CloseReason,
		arg.ClosedBy,
		arg.UpdatedAt,
	)
	return scanSwap(row)
}

const deleteSwap = `-- name: DeleteSwap :exec
DELETE FROM swaps
WHERE swap_id = $1
`

func (q *Queries) DeleteSwap(ctx context.Context, swapID string) error {
	_, err := q.db.ExecContext(ctx, deleteSwap, swapID)
	return err
}

const countPendingSwaps = `-- name: CountPendingSwaps :one
SELECT COUNT(*)
FROM swaps
WHERE requester_id = $1
  AND requested_user_id = $2
  AND offered_skill_id = $3
  AND requested_skill_id = $4
  AND status = 'PENDING'
`

type CountPendingSwapsParams struct {
	RequesterID      string
	RequestedUserID  string
	OfferedSkillID   string
	RequestedSkillID string
}

func (q *Queries) CountPendingSwaps(ctx context.Context, arg CountPendingSwapsParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPendingSwaps,
		arg.RequesterID,
		arg.RequestedUserID,
		arg.OfferedSkillID,
		arg.RequestedSkillID,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listUserSwaps = `-- name: ListUserSwaps :many
SELECT ` + swapColumns + `
FROM swaps
WHERE (($2::text = 'incoming' AND requested_user_id = $1)
    OR ($2::text = 'outgoing' AND requester_id = $1)
    OR ($2::text = 'all' AND (requester_id = $1 OR requested_user_id = $1)))
  AND ($3::text = '' OR status = $3::text)
ORDER BY created_at DESC, swap_id
LIMIT NULLIF($4::integer, 0) OFFSET $5
`

type ListUserSwapsParams struct {
	UserID    string
	Direction string
	Status    string
	Limit     int32
	Offset    int32
}

func (q *Queries) ListUserSwaps(ctx context.Context, arg ListUserSwapsParams) ([]Swap, error) {
	rows, err := q.db.QueryContext(ctx, listUserSwaps,
		arg.UserID,
		arg.Direction,
		arg.Status,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Swap
	for rows.Next() {
		i, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
