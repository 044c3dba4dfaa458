package database

import (
	"context"
	"database/sql"
	"time"
)

const feedbackColumns = `feedback_id, swap_id, giver_id, receiver_id, rating, comment, is_public, is_hidden,
    response, response_date, helpful_votes, not_helpful_votes, created_at, updated_at`

func scanFeedback(row interface{ Scan(...interface{}) error }) (Feedback, error) {
	var i Feedback
	err := row.Scan(
		&i.FeedbackID,
		&i.SwapID,
		&i.GiverID,
		&i.ReceiverID,
		&i.Rating,
		&i.Comment,
		&i.IsPublic,
		&i.IsHidden,
		&i.Response,
		&i.ResponseDate,
		&i.HelpfulVotes,
		&i.NotHelpfulVotes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createFeedback = `-- name: CreateFeedback :exec
INSERT INTO feedback (feedback_id, swap_id, giver_id, receiver_id, rating, comment, is_public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateFeedbackParams struct {
	FeedbackID string
	SwapID     sql.NullString
	GiverID    string
	ReceiverID string
	Rating     int32
	Comment    string
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) CreateFeedback(ctx context.Context, arg CreateFeedbackParams) error {
	_, err := q.db.ExecContext(ctx, createFeedback,
		arg.FeedbackID,
		arg.SwapID,
		arg.GiverID,
		arg.ReceiverID,
		arg.Rating,
		arg.Comment,
		arg.IsPublic,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getFeedbackByID = `-- name: GetFeedbackByID :one
SELECT ` + feedbackColumns + `
FROM feedback
WHERE feedback_id = $1
`

func (q *Queries) GetFeedbackByID(ctx context.Context, feedbackID string) (Feedback, error) {
	return scanFeedback(q.db.QueryRowContext(ctx, getFeedbackByID, feedbackID))
}

const getFeedbackForUpdate = `-- name: GetFeedbackForUpdate :one
SELECT ` + feedbackColumns + `
FROM feedback
WHERE feedback_id = $1
FOR UPDATE
`

func (q *Queries) GetFeedbackForUpdate(ctx context.Context, feedbackID string) (Feedback, error) {
	return scanFeedback(q.db.QueryRowContext(ctx, getFeedbackForUpdate, feedbackID))
}

const countSwapFeedbackByGiver = `-- name: CountSwapFeedbackByGiver :one
SELECT COUNT(*)
FROM feedback
WHERE swap_id = $1 AND giver_id = $2
`

type CountSwapFeedbackByGiverParams struct {
	SwapID  string
	GiverID string
}

func (q *Queries) CountSwapFeedbackByGiver(ctx context.Context, arg CountSwapFeedbackByGiverParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSwapFeedbackByGiver, arg.SwapID, arg.GiverID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateFeedback = `-- name: UpdateFeedback :execrows
UPDATE feedback
SET rating = $2,
    comment = $3,
    is_public = $4,
    is_hidden = $5,
    response = $6,
    response_date = $7,
    updated_at = $8
WHERE feedback_id = $1
`

type UpdateFeedbackParams struct {
	FeedbackID   string
	Rating       int32
	Comment      string
	IsPublic     bool
	IsHidden     bool
	Response     string
	ResponseDate sql.NullTime
	UpdatedAt    time.Time
}

func (q *Queries) UpdateFeedback(ctx context.Context, arg UpdateFeedbackParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateFeedback,
		arg.FeedbackID,
		arg.Rating,
		arg.Comment,
		arg.IsPublic,
		arg.IsHidden,
		arg.Response,
		arg.ResponseDate,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteFeedback = `-- name: DeleteFeedback :execrows
DELETE FROM feedback
WHERE feedback_id = $1
`

func (q *Queries) DeleteFeedback(ctx context.Context, feedbackID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteFeedback, feedbackID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const incrementFeedbackVotes = `-- name: IncrementFeedbackVotes :one
UPDATE feedback
SET helpful_votes = helpful_votes + CASE WHEN $2::boolean THEN 1 ELSE 0 END,
    not_helpful_votes = not_helpful_votes + CASE WHEN $2::boolean THEN 0 ELSE 1 END
WHERE feedback_id = $1
RETURNING ` + feedbackColumns

type IncrementFeedbackVotesParams struct {
	FeedbackID string
	Helpful    bool
}

func (q *Queries) IncrementFeedbackVotes(ctx context.Context, arg IncrementFeedbackVotesParams) (Feedback, error) {
	return scanFeedback(q.db.QueryRowContext(ctx, incrementFeedbackVotes, arg.FeedbackID, arg.Helpful))
}

const listReceivedFeedback = `-- name: ListReceivedFeedback :many
SELECT ` + feedbackColumns + `
FROM feedback
WHERE receiver_id = $1
  AND NOT is_hidden
  AND (is_public OR NOT $2::boolean)
ORDER BY created_at DESC, feedback_id
LIMIT NULLIF($3::integer, 0) OFFSET $4
`

type ListReceivedFeedbackParams struct {
	ReceiverID string
	PublicOnly bool
	Limit      int32
	Offset     int32
}

func (q *Queries) ListReceivedFeedback(ctx context.Context, arg ListReceivedFeedbackParams) ([]Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listReceivedFeedback,
		arg.ReceiverID,
		arg.PublicOnly,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Feedback
	for rows.Next() {
		i, err := scanFeedback(rows)
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

const listGivenFeedback = `-- name: ListGivenFeedback :many
SELECT ` + feedbackColumns + `
FROM feedback
WHERE giver_id = $1
ORDER BY created_at DESC, feedback_id
LIMIT NULLIF($2::integer, 0) OFFSET $3
`

type ListGivenFeedbackParams struct {
	GiverID string
	Limit   int32
	Offset  int32
}

func (q *Queries) ListGivenFeedback(ctx context.Context, arg ListGivenFeedbackParams) ([]Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listGivenFeedback, arg.GiverID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Feedback
	for rows.Next() {
		i, err := scanFeedback(rows)
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

const listVisibleRatings = `-- name: ListVisibleRatings :many
SELECT rating
FROM feedback
WHERE receiver_id = $1 AND NOT is_hidden
`

func (q *Queries) ListVisibleRatings(ctx context.Context, receiverID string) ([]int32, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleRatings, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int32
	for rows.Next() {
		var rating int32
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		items = append(items, rating)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
