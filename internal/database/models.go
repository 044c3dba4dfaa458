package database

import (
	"database/sql"
	"time"
)

type User struct {
	UserID        string
	Username      string
	IsActive      bool
	IsBanned      bool
	IsPublic      bool
	AverageRating float64
	RatingCount   int32
	CreatedAt     time.Time
}

type Skill struct {
	SkillID  string
	Name     string
	Category string
}

type SkillOffer struct {
	OfferID          string
	UserID           string
	SkillID          string
	ProficiencyLevel string
	IsApproved       bool
	CanTeachRemotely bool
	CanTeachInPerson bool
	CreatedAt        time.Time
}

type SkillRequest struct {
	RequestID    string
	UserID       string
	SkillID      string
	DesiredLevel string
	Urgency      string
	Message      string
	IsActive     bool
	CreatedAt    time.Time
}

type Swap struct {
	SwapID                string
	RequesterID           string
	RequestedUserID       string
	OfferedSkillID        string
	RequestedSkillID      string
	Status                string
	Message               string
	Location              string
	ResponseDeadline      time.Time
	ProposedStartDate     sql.NullTime
	ActualStartDate       sql.NullTime
	CompletionDate        sql.NullTime
	RespondedAt           sql.NullTime
	RequesterProgress     int32
	RequestedUserProgress int32
	CloseReason           string
	ClosedBy              string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int64
}

type Feedback struct {
	FeedbackID      string
	SwapID          sql.NullString
	GiverID         string
	ReceiverID      string
	Rating          int32
	Comment         string
	IsPublic        bool
	IsHidden        bool
	Response        string
	ResponseDate    sql.NullTime
	HelpfulVotes    int32
	NotHelpfulVotes int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
