package database

import (
	"context"
)

const getSwapStatusStats = `-- name: GetSwapStatusStats :many
SELECT status, COUNT(*) AS swap_count
FROM swaps
GROUP BY status
ORDER BY status
`

type GetSwapStatusStatsRow struct {
	Status    string
	SwapCount int64
}

func (q *Queries) GetSwapStatusStats(ctx context.Context) ([]GetSwapStatusStatsRow, error) {
	rows, err := q.db.QueryContext(ctx, getSwapStatusStats)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetSwapStatusStatsRow
	for rows.Next() {
		var i GetSwapStatusStatsRow
		if err := rows.Scan(&i.Status, &i.SwapCount); err != nil {
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

const getTopRatedUsers = `-- name: GetTopRatedUsers :many
SELECT user_id, username, average_rating, rating_count
FROM users
WHERE is_active AND NOT is_banned AND is_public AND rating_count > 0
ORDER BY average_rating DESC, rating_count DESC, user_id
LIMIT $1
`

type GetTopRatedUsersRow struct {
	UserID        string
	Username      string
	AverageRating float64
	RatingCount   int32
}

func (q *Queries) GetTopRatedUsers(ctx context.Context, limit int32) ([]GetTopRatedUsersRow, error) {
	rows, err := q.db.QueryContext(ctx, getTopRatedUsers, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetTopRatedUsersRow
	for rows.Next() {
		var i GetTopRatedUsersRow
		if err := rows.Scan(&i.UserID, &i.Username, &i.AverageRating, &i.RatingCount); err != nil {
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
