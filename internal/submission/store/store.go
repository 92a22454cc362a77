package store

import (
	"context"
	"time"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// EventStore persists the append-only submission event log. There is no
// update or delete: historical facts are immutable. Append stamps the event's
// ID and Created from the store's trusted clock; producers never supply them.
type EventStore interface {
	Append(ctx context.Context, ev models.Event) error
	ListBySubmission(ctx context.Context, submissionID id.SubmissionID) ([]models.Event, error)
	ListBySubmissionSince(ctx context.Context, submissionID id.SubmissionID, since time.Time) ([]models.Event, error)
}

// SubmissionStore persists the mutable submission aggregate headers.
type SubmissionStore interface {
	Create(ctx context.Context, sub *models.Submission) error
	FindByID(ctx context.Context, submissionID id.SubmissionID) (*models.Submission, error)
	FindByOrganisation(ctx context.Context, orgID id.OrganisationID) ([]*models.Submission, error)
	Update(ctx context.Context, sub *models.Submission) error
}

// Clock supplies append-time timestamps. Exactly one clock source stamps
// Created so "latest by Created" selection stays trustworthy even when
// independent producers append concurrently.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
