package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"consign/internal/submission/models"
	"consign/internal/submission/projection"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// CreateSubmissionCommand carries the fields needed to open a submission.
type CreateSubmissionCommand struct {
	OrganisationID     id.OrganisationID
	ComplianceSchemeID *id.ComplianceSchemeID
	SubmissionType     models.SubmissionType
	SubmissionPeriod   string
}

// CreateSubmission opens a new submission header. Events attach to it later
// as external producers (scanner, validators, regulator) report facts.
func (s *Service) CreateSubmission(ctx context.Context, cmd *CreateSubmissionCommand) (*models.Submission, error) {
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "command is required")
	}
	sub, err := models.NewSubmission(id.NewSubmissionID(), cmd.OrganisationID, cmd.ComplianceSchemeID,
		cmd.SubmissionType, cmd.SubmissionPeriod, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create submission")
	}

	s.logger.InfoContext(ctx, "submission created",
		"submission_id", sub.ID,
		"organisation_id", sub.OrganisationID,
		"submission_type", sub.SubmissionType,
	)
	if s.metrics != nil {
		s.metrics.IncrementSubmissionsCreated()
	}
	return sub, nil
}

// AppendEvent validates and appends one event to a submission's log. The
// store stamps ID and Created; the caller-supplied envelope carries only the
// submission id. Events of an unrecognized kind are rejected, never dropped.
func (s *Service) AppendEvent(ctx context.Context, ev models.Event) error {
	if ev == nil {
		return dErrors.New(dErrors.CodeBadRequest, "event is required")
	}
	if !models.KnownKind(ev.Kind()) {
		return dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+string(ev.Kind()))
	}
	header := ev.Header()
	if header.SubmissionID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "event submission ID is required")
	}
	if _, err := s.submissions.FindByID(ctx, header.SubmissionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeNotFound, "submission not found")
	}

	if err := s.events.Append(ctx, ev); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "append event")
	}

	s.logger.InfoContext(ctx, "event appended",
		"submission_id", header.SubmissionID,
		"event_id", header.ID,
		"kind", ev.Kind(),
	)
	if s.metrics != nil {
		s.metrics.IncrementEventsAppended(string(ev.Kind()))
	}
	return nil
}

// SubmitSubmission finalizes the current upload cycle. The submit-time guard
// runs first: the file's validation chain must be complete, or the command is
// denied as a domain-level rejection. On success a Submitted event is
// appended and the aggregate header advances.
func (s *Service) SubmitSubmission(ctx context.Context, submissionID id.SubmissionID, fileID id.FileID, submittedBy id.UserID) (*models.Submission, error) {
	if fileID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "file ID is required")
	}
	if submittedBy.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "submitting user is required")
	}
	sub, timeline, err := s.load(ctx, submissionID, "")
	if err != nil {
		return nil, err
	}

	if !projection.IsFileSubmittable(sub, timeline, fileID) {
		if s.metrics != nil {
			s.metrics.IncrementGuardDenials()
		}
		s.logger.WarnContext(ctx, "submit denied, file chain not valid",
			"submission_id", submissionID,
			"file_id", fileID,
		)
		return nil, dErrors.New(dErrors.CodeFileNotReady, "file is not ready for submission")
	}

	submitted := &models.Submitted{
		FileID:      fileID,
		SubmittedBy: submittedBy,
	}
	submitted.SubmissionID = submissionID
	if err := s.events.Append(ctx, submitted); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "append submitted event")
	}
	if s.metrics != nil {
		s.metrics.IncrementEventsAppended(string(models.KindSubmitted))
	}

	sub.MarkSubmitted(newAppReference(sub))
	if err := s.submissions.Update(ctx, sub); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "update submission")
	}

	s.logger.InfoContext(ctx, "submission finalized",
		"submission_id", sub.ID,
		"file_id", fileID,
		"app_reference", sub.AppReferenceNumber,
		"resubmission", sub.IsResubmission,
	)
	return sub, nil
}

// newAppReference builds the application reference assigned at first submit.
func newAppReference(sub *models.Submission) string {
	period := strings.ToUpper(strings.ReplaceAll(sub.SubmissionPeriod, " ", ""))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("APP-%s-%s", period, suffix)
}
