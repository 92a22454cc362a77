package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	submissionmetrics "consign/internal/submission/metrics"
	"consign/internal/submission/models"
	"consign/internal/submission/projection"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// Service orchestrates the submission lifecycle: it appends events to the
// log and projects current status from it. All derived state is recomputed
// on every read; nothing is cached.
type Service struct {
	submissions SubmissionStore
	events      EventStore
	clock       Clock
	logger      *slog.Logger
	metrics     *submissionmetrics.Metrics
	tracer      trace.Tracer
}

// New creates the submission service. Both stores are required.
func New(submissions SubmissionStore, events EventStore, opts ...Option) (*Service, error) {
	if submissions == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "submission store is required")
	}
	if events == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "event store is required")
	}

	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.clock == nil {
		cfg.clock = systemClock{}
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer("consign/submission")
	}

	return &Service{
		submissions: submissions,
		events:      events,
		clock:       cfg.clock,
		logger:      cfg.logger,
		metrics:     cfg.metrics,
		tracer:      cfg.tracer,
	}, nil
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ProjectRegistrationStatus recomputes the registration projection for one
// submission from its full event history.
func (s *Service) ProjectRegistrationStatus(ctx context.Context, submissionID id.SubmissionID) (*models.RegistrationStatus, error) {
	ctx, span := s.tracer.Start(ctx, "submission.ProjectRegistrationStatus",
		trace.WithAttributes(attribute.String("submission_id", submissionID.String())))
	defer span.End()
	start := time.Now()

	sub, timeline, err := s.load(ctx, submissionID, models.SubmissionTypeRegistration)
	if err != nil {
		return nil, err
	}

	status := projection.ProjectRegistration(sub, timeline)
	s.observeProjection("registration", start)
	return status, nil
}

// ProjectPomStatus recomputes the producer packaging-data projection for one
// submission.
func (s *Service) ProjectPomStatus(ctx context.Context, submissionID id.SubmissionID) (*models.PomStatus, error) {
	ctx, span := s.tracer.Start(ctx, "submission.ProjectPomStatus",
		trace.WithAttributes(attribute.String("submission_id", submissionID.String())))
	defer span.End()
	start := time.Now()

	sub, timeline, err := s.load(ctx, submissionID, models.SubmissionTypeProducer)
	if err != nil {
		return nil, err
	}

	status := projection.ProjectPom(sub, timeline)
	s.observeProjection("pom", start)
	return status, nil
}

// IsSubmittable runs the submit-time guard for a specific upload: the file's
// chain must be end-to-end valid before a Submitted event may be appended.
func (s *Service) IsSubmittable(ctx context.Context, submissionID id.SubmissionID, fileID id.FileID) (bool, error) {
	if fileID.IsNil() {
		return false, dErrors.New(dErrors.CodeInvalidInput, "file ID is required")
	}
	sub, timeline, err := s.load(ctx, submissionID, "")
	if err != nil {
		return false, err
	}
	return projection.IsFileSubmittable(sub, timeline, fileID), nil
}

// EvaluateLateFee reports whether a late fee applies against the deadline.
func (s *Service) EvaluateLateFee(ctx context.Context, submissionID id.SubmissionID, deadline time.Time) (*models.LateFeeResult, error) {
	sub, timeline, err := s.load(ctx, submissionID, "")
	if err != nil {
		return nil, err
	}
	result := projection.EvaluateLateFee(sub, timeline, deadline, s.clock.Now())
	return &result, nil
}

// ProjectOrganisationStatuses projects every submission of an organisation
// concurrently. Projections for different submissions share no state, so the
// fan-out is safe; the first failure cancels the rest.
func (s *Service) ProjectOrganisationStatuses(ctx context.Context, orgID id.OrganisationID) ([]*models.OrganisationSubmissionStatus, error) {
	if orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "organisation ID is required")
	}
	ctx, span := s.tracer.Start(ctx, "submission.ProjectOrganisationStatuses",
		trace.WithAttributes(attribute.String("organisation_id", orgID.String())))
	defer span.End()

	subs, err := s.submissions.FindByOrganisation(ctx, orgID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list organisation submissions")
	}

	results := make([]*models.OrganisationSubmissionStatus, len(subs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			events, err := s.events.ListBySubmission(gctx, sub.ID)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "list submission events")
			}
			timeline := projection.NewTimeline(events)

			row := &models.OrganisationSubmissionStatus{
				SubmissionID:     sub.ID,
				SubmissionType:   sub.SubmissionType,
				SubmissionPeriod: sub.SubmissionPeriod,
				IsSubmitted:      sub.IsSubmitted,
			}
			switch sub.SubmissionType {
			case models.SubmissionTypeRegistration:
				status := projection.ProjectRegistration(sub, timeline)
				row.Status = status.Status
				row.ValidationPass = status.ValidationPass
			case models.SubmissionTypeProducer:
				status := projection.ProjectPom(sub, timeline)
				row.Status = status.Status
				row.ValidationPass = status.ValidationPass
			}
			results[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SubmissionID.String() < results[j].SubmissionID.String()
	})
	return results, nil
}

// load fetches the submission header and materializes its timeline. When
// wantType is non-empty the submission must be of that type.
func (s *Service) load(ctx context.Context, submissionID id.SubmissionID, wantType models.SubmissionType) (*models.Submission, projection.Timeline, error) {
	if submissionID.IsNil() {
		return nil, projection.Timeline{}, dErrors.New(dErrors.CodeInvalidInput, "submission ID is required")
	}
	sub, err := s.submissions.FindByID(ctx, submissionID)
	if err != nil {
		return nil, projection.Timeline{}, dErrors.Wrap(err, dErrors.CodeNotFound, "submission not found")
	}
	if wantType != "" && sub.SubmissionType != wantType {
		return nil, projection.Timeline{}, dErrors.New(dErrors.CodeBadRequest, "projection does not match submission type")
	}
	events, err := s.events.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, projection.Timeline{}, dErrors.Wrap(err, dErrors.CodeInternal, "list submission events")
	}
	return sub, projection.NewTimeline(events), nil
}

func (s *Service) observeProjection(name string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveProjection(name, start)
	}
}
