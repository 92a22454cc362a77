package store

import (
	"context"
	"sync"
	"time"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// InMemoryEventStore keeps the event log in memory. Used in tests and the
// demo environment.
type InMemoryEventStore struct {
	mu     sync.RWMutex
	clock  Clock
	events map[string][]models.Event
}

// NewInMemoryEventStore creates an in-memory event store stamping Created
// from the given clock.
func NewInMemoryEventStore(clock Clock) *InMemoryEventStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &InMemoryEventStore{
		clock:  clock,
		events: make(map[string][]models.Event),
	}
}

// Append stamps the event header and adds it to the log. Events of a kind
// missing from the dispatch table are rejected outright.
func (s *InMemoryEventStore) Append(_ context.Context, ev models.Event) error {
	if !models.KnownKind(ev.Kind()) {
		return dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+string(ev.Kind()))
	}
	header := ev.Header()
	if header.SubmissionID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "event submission ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	header.ID = id.NewEventID()
	header.Created = s.clock.Now()
	key := header.SubmissionID.String()
	s.events[key] = append(s.events[key], ev)
	return nil
}

// ListBySubmission returns the events for a submission in insertion order.
// Callers impose their own ordering by Created.
func (s *InMemoryEventStore) ListBySubmission(_ context.Context, submissionID id.SubmissionID) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.events[submissionID.String()]
	out := make([]models.Event, len(stored))
	copy(out, stored)
	return out, nil
}

// ListBySubmissionSince returns the submission's events created at or after
// the given instant.
func (s *InMemoryEventStore) ListBySubmissionSince(_ context.Context, submissionID id.SubmissionID, since time.Time) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Event
	for _, ev := range s.events[submissionID.String()] {
		if !ev.Header().Created.Before(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// InMemorySubmissionStore keeps submission headers in memory.
type InMemorySubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]*models.Submission
}

// NewInMemorySubmissionStore creates an in-memory submission store.
func NewInMemorySubmissionStore() *InMemorySubmissionStore {
	return &InMemorySubmissionStore{submissions: make(map[string]*models.Submission)}
}

// Create stores a new submission header.
func (s *InMemorySubmissionStore) Create(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sub.ID.String()
	if _, exists := s.submissions[key]; exists {
		return dErrors.New(dErrors.CodeConflict, "submission already exists")
	}
	clone := *sub
	s.submissions[key] = &clone
	return nil
}

// FindByID retrieves a submission header by ID.
func (s *InMemorySubmissionStore) FindByID(_ context.Context, submissionID id.SubmissionID) (*models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.submissions[submissionID.String()]; ok {
		clone := *sub
		return &clone, nil
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "submission not found")
}

// FindByOrganisation returns every submission header for an organisation.
func (s *InMemorySubmissionStore) FindByOrganisation(_ context.Context, orgID id.OrganisationID) ([]*models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Submission
	for _, sub := range s.submissions {
		if sub.OrganisationID == orgID {
			clone := *sub
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Update replaces a stored submission header.
func (s *InMemorySubmissionStore) Update(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sub.ID.String()
	if _, exists := s.submissions[key]; !exists {
		return dErrors.New(dErrors.CodeNotFound, "submission not found")
	}
	clone := *sub
	s.submissions[key] = &clone
	return nil
}
