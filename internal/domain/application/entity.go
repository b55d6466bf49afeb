package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusReviewed    Status = "REVIEWED"
	StatusShortlisted Status = "SHORTLISTED"
	StatusRejected    Status = "REJECTED"
	StatusAccepted    Status = "ACCEPTED"
)

type Application struct {
	ID              uuid.UUID
	JobID           uuid.UUID
	UserID          uuid.UUID
	Status          Status
	MatchPercentage int
	AppliedAt       time.Time
}
