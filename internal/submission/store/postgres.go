package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// PostgresEventStore implements EventStore on PostgreSQL. Events live in the
// submission_events table as (envelope columns, JSONB payload); the table has
// no UPDATE or DELETE path.
type PostgresEventStore struct {
	db    *sql.DB
	clock Clock
}

// NewPostgresEventStore creates a PostgreSQL event store.
func NewPostgresEventStore(db *sql.DB, clock Clock) *PostgresEventStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PostgresEventStore{db: db, clock: clock}
}

// Append stamps and inserts one event.
func (s *PostgresEventStore) Append(ctx context.Context, ev models.Event) error {
	payload, err := models.EncodePayload(ev)
	if err != nil {
		return err
	}
	header := ev.Header()
	if header.SubmissionID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "event submission ID is required")
	}
	header.ID = id.NewEventID()
	header.Created = s.clock.Now()

	query := `
		INSERT INTO submission_events (id, submission_id, kind, created, payload)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(ctx, query,
		uuid.UUID(header.ID),
		uuid.UUID(header.SubmissionID),
		string(ev.Kind()),
		header.Created,
		payload,
	)
	if err != nil {
		return fmt.Errorf("insert submission event: %w", err)
	}
	return nil
}

// ListBySubmission returns all events for a submission.
func (s *PostgresEventStore) ListBySubmission(ctx context.Context, submissionID id.SubmissionID) ([]models.Event, error) {
	query := `
		SELECT id, kind, created, payload
		FROM submission_events
		WHERE submission_id = $1
		ORDER BY created, id
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(submissionID))
	if err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows, submissionID)
}

// ListBySubmissionSince returns events created at or after the given instant.
func (s *PostgresEventStore) ListBySubmissionSince(ctx context.Context, submissionID id.SubmissionID, since time.Time) ([]models.Event, error) {
	query := `
		SELECT id, kind, created, payload
		FROM submission_events
		WHERE submission_id = $1 AND created >= $2
		ORDER BY created, id
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(submissionID), since)
	if err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows, submissionID)
}

func scanEvents(rows *sql.Rows, submissionID id.SubmissionID) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var (
			eventID uuid.UUID
			kind    string
			created time.Time
			payload []byte
		)
		if err := rows.Scan(&eventID, &kind, &created, &payload); err != nil {
			return nil, fmt.Errorf("scan submission event: %w", err)
		}
		ev, err := models.DecodeEvent(models.EventKind(kind), id.EventID(eventID), submissionID, created, payload)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission events: %w", err)
	}
	return events, nil
}

// PostgresSubmissionStore implements SubmissionStore on PostgreSQL.
type PostgresSubmissionStore struct {
	db *sql.DB
}

// NewPostgresSubmissionStore creates a PostgreSQL submission store.
func NewPostgresSubmissionStore(db *sql.DB) *PostgresSubmissionStore {
	return &PostgresSubmissionStore{db: db}
}

// Create inserts a submission header.
func (s *PostgresSubmissionStore) Create(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO submissions (
			id, organisation_id, compliance_scheme_id, submission_type,
			submission_period, is_submitted, app_reference_number, is_resubmission, created
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(sub.ID),
		uuid.UUID(sub.OrganisationID),
		schemeIDValue(sub.ComplianceSchemeID),
		string(sub.SubmissionType),
		sub.SubmissionPeriod,
		sub.IsSubmitted,
		sub.AppReferenceNumber,
		sub.IsResubmission,
		sub.Created,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// FindByID retrieves one submission header.
func (s *PostgresSubmissionStore) FindByID(ctx context.Context, submissionID id.SubmissionID) (*models.Submission, error) {
	query := `
		SELECT id, organisation_id, compliance_scheme_id, submission_type,
		       submission_period, is_submitted, app_reference_number, is_resubmission, created
		FROM submissions
		WHERE id = $1
	`
	sub, err := scanSubmission(s.db.QueryRowContext(ctx, query, uuid.UUID(submissionID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "submission not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query submission: %w", err)
	}
	return sub, nil
}

// FindByOrganisation returns every submission header for an organisation.
func (s *PostgresSubmissionStore) FindByOrganisation(ctx context.Context, orgID id.OrganisationID) ([]*models.Submission, error) {
	query := `
		SELECT id, organisation_id, compliance_scheme_id, submission_type,
		       submission_period, is_submitted, app_reference_number, is_resubmission, created
		FROM submissions
		WHERE organisation_id = $1
		ORDER BY created
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(orgID))
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}

// Update rewrites the mutable header fields.
func (s *PostgresSubmissionStore) Update(ctx context.Context, sub *models.Submission) error {
	query := `
		UPDATE submissions
		SET is_submitted = $2, app_reference_number = $3, is_resubmission = $4
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(sub.ID),
		sub.IsSubmitted,
		sub.AppReferenceNumber,
		sub.IsResubmission,
	)
	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}
	if affected == 0 {
		return dErrors.New(dErrors.CodeNotFound, "submission not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var (
		sub      models.Submission
		subID    uuid.UUID
		orgID    uuid.UUID
		schemeID *uuid.UUID
		subType  string
	)
	err := row.Scan(&subID, &orgID, &schemeID, &subType,
		&sub.SubmissionPeriod, &sub.IsSubmitted, &sub.AppReferenceNumber, &sub.IsResubmission, &sub.Created)
	if err != nil {
		return nil, err
	}
	sub.ID = id.SubmissionID(subID)
	sub.OrganisationID = id.OrganisationID(orgID)
	sub.SubmissionType = models.SubmissionType(subType)
	if schemeID != nil {
		scheme := id.ComplianceSchemeID(*schemeID)
		sub.ComplianceSchemeID = &scheme
	}
	return &sub, nil
}

func schemeIDValue(schemeID *id.ComplianceSchemeID) any {
	if schemeID == nil {
		return nil
	}
	return uuid.UUID(*schemeID)
}
