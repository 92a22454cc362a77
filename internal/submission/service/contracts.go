package service

import (
	"context"
	"time"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// Consumer-side contracts for the storage layer. Declared here so the service
// depends on behavior, not on a concrete store package.

// EventStore supplies and extends the append-only submission event log.
type EventStore interface {
	Append(ctx context.Context, ev models.Event) error
	ListBySubmission(ctx context.Context, submissionID id.SubmissionID) ([]models.Event, error)
}

// SubmissionStore persists submission aggregate headers.
type SubmissionStore interface {
	Create(ctx context.Context, sub *models.Submission) error
	FindByID(ctx context.Context, submissionID id.SubmissionID) (*models.Submission, error)
	FindByOrganisation(ctx context.Context, orgID id.OrganisationID) ([]*models.Submission, error)
	Update(ctx context.Context, sub *models.Submission) error
}

// Clock supplies the current time for late-fee evaluation and header stamps.
type Clock interface {
	Now() time.Time
}
