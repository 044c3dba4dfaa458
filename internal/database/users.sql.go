package database

import (
	"context"
)

const userColumns = `user_id, username, is_active, is_banned, is_public, average_rating, rating_count, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.UserID,
		&i.Username,
		&i.IsActive,
		&i.IsBanned,
		&i.IsPublic,
		&i.AverageRating,
		&i.RatingCount,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + `
FROM users
WHERE user_id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, userID string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, userID))
}

const getUserForUpdate = `-- name: GetUserForUpdate :one
SELECT ` + userColumns + `
FROM users
WHERE user_id = $1
FOR UPDATE
`

func (q *Queries) GetUserForUpdate(ctx context.Context, userID string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserForUpdate, userID))
}

const getUsersByIDs = `-- name: GetUsersByIDs :many
SELECT ` + userColumns + `
FROM users
WHERE user_id = ANY($1::text[])
ORDER BY user_id
`

func (q *Queries) GetUsersByIDs(ctx context.Context, userIds []string) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, getUsersByIDs, userIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
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

const upsertUser = `-- name: UpsertUser :one
INSERT INTO users (user_id, username, is_active, is_public)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET username = EXCLUDED.username,
    is_public = EXCLUDED.is_public
RETURNING ` + userColumns

type UpsertUserParams struct {
	UserID   string
	Username string
	IsActive bool
	IsPublic bool
}

func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, upsertUser,
		arg.UserID,
		arg.Username,
		arg.IsActive,
		arg.IsPublic,
	)
	return scanUser(row)
}

const updateUserActiveStatus = `-- name: UpdateUserActiveStatus :one
UPDATE users
SET is_active = $2
WHERE user_id = $1
RETURNING ` + userColumns

type UpdateUserActiveStatusParams struct {
	UserID   string
	IsActive bool
}

func (q *Queries) UpdateUserActiveStatus(ctx context.Context, arg UpdateUserActiveStatusParams) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, updateUserActiveStatus, arg.UserID, arg.IsActive))
}

const updateUserBannedStatus = `-- name: UpdateUserBannedStatus :one
UPDATE users
SET is_banned = $2
WHERE user_id = $1
RETURNING ` + userColumns

type UpdateUserBannedStatusParams struct {
	UserID   string
	IsBanned bool
}

func (q *Queries) UpdateUserBannedStatus(ctx context.Context, arg UpdateUserBannedStatusParams) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, updateUserBannedStatus, arg.UserID, arg.IsBanned))
}

const updateUserRating = `-- name: UpdateUserRating :one
UPDATE users
SET average_rating = $2,
    rating_count = $3
WHERE user_id = $1
RETURNING ` + userColumns

type UpdateUserRatingParams struct {
	UserID        string
	AverageRating float64
	RatingCount   int32
}

func (q *Queries) UpdateUserRating(ctx context.Context, arg UpdateUserRatingParams) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, updateUserRating, arg.UserID, arg.AverageRating, arg.RatingCount))
}

const listPublicUsers = `-- name: ListPublicUsers :many
SELECT ` + userColumns + `
FROM users u
WHERE u.is_public AND u.is_active AND NOT u.is_banned
  AND ($1::text = '' OR u.username ILIKE '%' || $1::text || '%')
  AND ($2::text = '' OR EXISTS (
        SELECT 1 FROM skill_offers o
        WHERE o.user_id = u.user_id AND o.is_approved AND o.skill_id = $2::text
      ) OR EXISTS (
        SELECT 1 FROM skill_requests r
        WHERE r.user_id = u.user_id AND r.is_active AND r.skill_id = $2::text
      ))
  AND ($3::text = '' OR EXISTS (
        SELECT 1 FROM skill_offers o JOIN skills s ON s.skill_id = o.skill_id
        WHERE o.user_id = u.user_id AND o.is_approved AND LOWER(s.category) = LOWER($3::text)
      ) OR EXISTS (
        SELECT 1 FROM skill_requests r JOIN skills s ON s.skill_id = r.skill_id
        WHERE r.user_id = u.user_id AND r.is_active AND LOWER(s.category) = LOWER($3::text)
      ))
ORDER BY u.average_rating DESC, u.user_id
LIMIT $4 OFFSET $5
`

type ListPublicUsersParams struct {
	Search   string
	SkillID  string
	Category string
	Limit    int32
	Offset   int32
}

func (q *Queries) ListPublicUsers(ctx context.Context, arg ListPublicUsersParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listPublicUsers,
		arg.Search,
		arg.SkillID,
		arg.Category,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
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
