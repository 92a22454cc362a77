package models

import (
	"strings"
	"time"

	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// SubmissionType distinguishes producer packaging data from registration data.
type SubmissionType string

const (
	SubmissionTypeProducer     SubmissionType = "producer"
	SubmissionTypeRegistration SubmissionType = "registration"
)

// Submission is the aggregate header for one compliance-data submission.
// It is persisted separately from the event log and mutated in place as the
// lifecycle advances; it is never deleted. Everything else about a submission
// is derived from its events.
type Submission struct {
	ID                 id.SubmissionID
	OrganisationID     id.OrganisationID
	ComplianceSchemeID *id.ComplianceSchemeID
	SubmissionType     SubmissionType
	SubmissionPeriod   string
	IsSubmitted        bool
	AppReferenceNumber string
	IsResubmission     bool
	Created            time.Time
}

// NewSubmission validates and constructs a submission header.
func NewSubmission(submissionID id.SubmissionID, orgID id.OrganisationID, schemeID *id.ComplianceSchemeID, subType SubmissionType, period string, created time.Time) (*Submission, error) {
	if submissionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "submission ID is required")
	}
	if orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "organisation ID is required")
	}
	if subType != SubmissionTypeProducer && subType != SubmissionTypeRegistration {
		return nil, dErrors.New(dErrors.CodeValidation, "submission type must be producer or registration")
	}
	period = strings.TrimSpace(period)
	if period == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "submission period is required")
	}
	return &Submission{
		ID:                 submissionID,
		OrganisationID:     orgID,
		ComplianceSchemeID: schemeID,
		SubmissionType:     subType,
		SubmissionPeriod:   period,
		Created:            created,
	}, nil
}

// IsComplianceScheme reports whether the submission is made on behalf of a
// compliance scheme rather than directly by a producer.
func (s *Submission) IsComplianceScheme() bool {
	return s.ComplianceSchemeID != nil && !s.ComplianceSchemeID.IsNil()
}

// MarkSubmitted flips the submitted flag and records the application
// reference assigned at first submit. Resubmissions keep the original
// reference and set IsResubmission.
func (s *Submission) MarkSubmitted(reference string) {
	if s.IsSubmitted {
		s.IsResubmission = true
	}
	s.IsSubmitted = true
	if s.AppReferenceNumber == "" {
		s.AppReferenceNumber = reference
	}
}
