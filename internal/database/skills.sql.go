package database

import (
	"context"
	"database/sql"
	"time"
)

const createSkill = `-- name: CreateSkill :exec
INSERT INTO skills (skill_id, name, category)
VALUES ($1, $2, $3)
`

type CreateSkillParams struct {
	SkillID  string
	Name     string
	Category string
}

func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) error {
	_, err := q.db.ExecContext(ctx, createSkill, arg.SkillID, arg.Name, arg.Category)
	return err
}

const getSkillByID = `-- name: GetSkillByID :one
SELECT skill_id, name, category
FROM skills
WHERE skill_id = $1
`

func (q *Queries) GetSkillByID(ctx context.Context, skillID string) (Skill, error) {
	row := q.db.QueryRowContext(ctx, getSkillByID, skillID)
	var i Skill
	err := row.Scan(&i.SkillID, &i.Name, &i.Category)
	return i, err
}

const countSkillsByName = `-- name: CountSkillsByName :one
SELECT COUNT(*)
FROM skills
WHERE LOWER(name) = LOWER($1)
`

func (q *Queries) CountSkillsByName(ctx context.Context, name string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSkillsByName, name)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const offerColumns = `offer_id, user_id, skill_id, proficiency_level, is_approved, can_teach_remotely, can_teach_in_person, created_at`

func scanSkillOffer(row interface{ Scan(...interface{}) error }) (SkillOffer, error) {
	var i SkillOffer
	err := row.Scan(
		&i.OfferID,
		&i.UserID,
		&i.SkillID,
		&i.ProficiencyLevel,
		&i.IsApproved,
		&i.CanTeachRemotely,
		&i.CanTeachInPerson,
		&i.CreatedAt,
	)
	return i, err
}

func collectSkillOffers(rows *sql.Rows, err error) ([]SkillOffer, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SkillOffer
	for rows.Next() {
		i, err := scanSkillOffer(rows)
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

const createSkillOffer = `-- name: CreateSkillOffer :exec
INSERT INTO skill_offers (offer_id, user_id, skill_id, proficiency_level, is_approved, can_teach_remotely, can_teach_in_person, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateSkillOfferParams struct {
	OfferID          string
	UserID           string
	SkillID          string
	ProficiencyLevel string
	IsApproved       bool
	CanTeachRemotely bool
	CanTeachInPerson bool
	CreatedAt        time.Time
}

func (q *Queries) CreateSkillOffer(ctx context.Context, arg CreateSkillOfferParams) error {
	_, err := q.db.ExecContext(ctx, createSkillOffer,
		arg.OfferID,
		arg.UserID,
		arg.SkillID,
		arg.ProficiencyLevel,
		arg.IsApproved,
		arg.CanTeachRemotely,
		arg.CanTeachInPerson,
		arg.CreatedAt,
	)
	return err
}

const getSkillOfferByID = `-- name: GetSkillOfferByID :one
SELECT ` + offerColumns + `
FROM skill_offers
WHERE offer_id = $1
`

func (q *Queries) GetSkillOfferByID(ctx context.Context, offerID string) (SkillOffer, error) {
	return scanSkillOffer(q.db.QueryRowContext(ctx, getSkillOfferByID, offerID))
}

const getUserSkillOffer = `-- name: GetUserSkillOffer :one
SELECT ` + offerColumns + `
FROM skill_offers
WHERE user_id = $1 AND skill_id = $2
`

type GetUserSkillOfferParams struct {
	UserID  string
	SkillID string
}

func (q *Queries) GetUserSkillOffer(ctx context.Context, arg GetUserSkillOfferParams) (SkillOffer, error) {
	return scanSkillOffer(q.db.QueryRowContext(ctx, getUserSkillOffer, arg.UserID, arg.SkillID))
}

const deleteSkillOffer = `-- name: DeleteSkillOffer :execrows
DELETE FROM skill_offers
WHERE offer_id = $1
`

func (q *Queries) DeleteSkillOffer(ctx context.Context, offerID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSkillOffer, offerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setSkillOfferApproved = `-- name: SetSkillOfferApproved :one
UPDATE skill_offers
SET is_approved = $2
WHERE offer_id = $1
RETURNING ` + offerColumns

type SetSkillOfferApprovedParams struct {
	OfferID    string
	IsApproved bool
}

func (q *Queries) SetSkillOfferApproved(ctx context.Context, arg SetSkillOfferApprovedParams) (SkillOffer, error) {
	return scanSkillOffer(q.db.QueryRowContext(ctx, setSkillOfferApproved, arg.OfferID, arg.IsApproved))
}

const listUserSkillOffers = `-- name: ListUserSkillOffers :many
SELECT ` + offerColumns + `
FROM skill_offers
WHERE user_id = $1
ORDER BY created_at, offer_id
`

func (q *Queries) ListUserSkillOffers(ctx context.Context, userID string) ([]SkillOffer, error) {
	return collectSkillOffers(q.db.QueryContext(ctx, listUserSkillOffers, userID))
}

const listApprovedOffersBySkills = `-- name: ListApprovedOffersBySkills :many
SELECT ` + offerColumns + `
FROM skill_offers
WHERE skill_id = ANY($1::text[])
  AND user_id <> $2
  AND is_approved
ORDER BY user_id, skill_id
`

type ListApprovedOffersBySkillsParams struct {
	SkillIds      []string
	ExcludeUserID string
}

func (q *Queries) ListApprovedOffersBySkills(ctx context.Context, arg ListApprovedOffersBySkillsParams) ([]SkillOffer, error) {
	return collectSkillOffers(q.db.QueryContext(ctx, listApprovedOffersBySkills, arg.SkillIds, arg.ExcludeUserID))
}

const requestColumns = `request_id, user_id, skill_id, desired_level, urgency, message, is_active, created_at`

func scanSkillRequest(row interface{ Scan(...interface{}) error }) (SkillRequest, error) {
	var i SkillRequest
	err := row.Scan(
		&i.RequestID,
		&i.UserID,
		&i.SkillID,
		&i.DesiredLevel,
		&i.Urgency,
		&i.Message,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

func collectSkillRequests(rows *sql.Rows, err error) ([]SkillRequest, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SkillRequest
	for rows.Next() {
		i, err := scanSkillRequest(rows)
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

const createSkillRequest = `-- name: CreateSkillRequest :exec
INSERT INTO skill_requests (request_id, user_id, skill_id, desired_level, urgency, message, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateSkillRequestParams struct {
	RequestID    string
	UserID       string
	SkillID      string
	DesiredLevel string
	Urgency      string
	Message      string
	IsActive     bool
	CreatedAt    time.Time
}

func (q *Queries) CreateSkillRequest(ctx context.Context, arg CreateSkillRequestParams) error {
	_, err := q.db.ExecContext(ctx, createSkillRequest,
		arg.RequestID,
		arg.UserID,
		arg.SkillID,
		arg.DesiredLevel,
		arg.Urgency,
		arg.Message,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}

const getSkillRequestByID = `-- name: GetSkillRequestByID :one
SELECT ` + requestColumns + `
FROM skill_requests
WHERE request_id = $1
`

func (q *Queries) GetSkillRequestByID(ctx context.Context, requestID string) (SkillRequest, error) {
	return scanSkillRequest(q.db.QueryRowContext(ctx, getSkillRequestByID, requestID))
}

const deactivateSkillRequest = `-- name: DeactivateSkillRequest :execrows
UPDATE skill_requests
SET is_active = FALSE
WHERE request_id = $1
`

func (q *Queries) DeactivateSkillRequest(ctx context.Context, requestID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deactivateSkillRequest, requestID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countActiveSkillRequests = `-- name: CountActiveSkillRequests :one
SELECT COUNT(*)
FROM skill_requests
WHERE user_id = $1 AND skill_id = $2 AND is_active
`

type CountActiveSkillRequestsParams struct {
	UserID  string
	SkillID string
}

func (q *Queries) CountActiveSkillRequests(ctx context.Context, arg CountActiveSkillRequestsParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActiveSkillRequests, arg.UserID, arg.SkillID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listUserSkillRequests = `-- name: ListUserSkillRequests :many
SELECT ` + requestColumns + `
FROM skill_requests
WHERE user_id = $1
  AND (is_active OR NOT $2::boolean)
ORDER BY created_at, request_id
`

type ListUserSkillRequestsParams struct {
	UserID     string
	ActiveOnly bool
}

func (q *Queries) ListUserSkillRequests(ctx context.Context, arg ListUserSkillRequestsParams) ([]SkillRequest, error) {
	return collectSkillRequests(q.db.QueryContext(ctx, listUserSkillRequests, arg.UserID, arg.ActiveOnly))
}

const listActiveRequestsBySkills = `-- name: ListActiveRequestsBySkills :many
SELECT ` + requestColumns + `
FROM skill_requests
WHERE skill_id = ANY($1::text[])
  AND user_id = ANY($2::text[])
  AND is_active
ORDER BY user_id, skill_id
`

type ListActiveRequestsBySkillsParams struct {
	SkillIds []string
	UserIds  []string
}

func (q *Queries) ListActiveRequestsBySkills(ctx context.Context, arg ListActiveRequestsBySkillsParams) ([]SkillRequest, error) {
	return collectSkillRequests(q.db.QueryContext(ctx, listActiveRequestsBySkills, arg.SkillIds, arg.UserIds))
}
