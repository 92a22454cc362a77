package models

import (
	"time"

	id "consign/pkg/domain"
)

// ApplicationStatus is the externally visible lifecycle state of a
// submission, derived from the event log on every read.
type ApplicationStatus string

const (
	StatusNotStarted                      ApplicationStatus = "NotStarted"
	StatusFileUploaded                    ApplicationStatus = "FileUploaded"
	StatusSubmittedAndHasRecentFileUpload ApplicationStatus = "SubmittedAndHasRecentFileUpload"
	StatusSubmittedToRegulator            ApplicationStatus = "SubmittedToRegulator"
	StatusAcceptedByRegulator             ApplicationStatus = "AcceptedByRegulator"
	StatusApprovedByRegulator             ApplicationStatus = "ApprovedByRegulator"
	StatusRejectedByRegulator             ApplicationStatus = "RejectedByRegulator"
	StatusCancelledByRegulator            ApplicationStatus = "CancelledByRegulator"
	StatusQueriedByRegulator              ApplicationStatus = "QueriedByRegulator"
)

// FileOutcome is the verdict of one file-validation chain resolution.
type FileOutcome struct {
	FileID                id.FileID
	FileName              string
	BlobName              string
	UploadedBy            id.UserID
	UploadedAt            time.Time
	IsValid               bool
	ErrorCount            int
	WarningCount          int
	RequiresRowValidation bool
}

// RegistrationFileSet names the fully valid files from one upload cycle of a
// registration submission.
type RegistrationFileSet struct {
	CompanyDetailsFileID   id.FileID
	CompanyDetailsFileName string
	BrandsFileName         string
	PartnershipsFileName   string
	UploadedBy             id.UserID
	UploadedAt             time.Time
}

// SubmittedFiles names the files attached to the most recent Submitted event.
type SubmittedFiles struct {
	FileID      id.FileID
	FileName    string
	SubmittedBy id.UserID
	SubmittedAt time.Time
}

// FeePaymentFacts surfaces the latest fee payment recorded for a submission.
type FeePaymentFacts struct {
	PaymentMethod   string
	PaymentStatus   string
	ReferenceNumber string
	PaidAt          time.Time
}

// ApplicationFacts surfaces the first application lodgement with the regulator.
type ApplicationFacts struct {
	ApplicationReferenceNumber string
	SubmittedAt                time.Time
	SubmissionDate             time.Time
}

// RegistrationStatus is the projected current state of a registration
// submission. It is recomputed from the event log on every read.
type RegistrationStatus struct {
	SubmissionID     id.SubmissionID
	OrganisationID   id.OrganisationID
	SubmissionPeriod string
	IsSubmitted      bool
	IsResubmission   bool

	CompanyDetails *FileOutcome
	Brands         *FileOutcome
	Partnerships   *FileOutcome

	RequiresBrandsFile       bool
	RequiresPartnershipsFile bool

	ValidationPass bool
	HasWarnings    bool
	ErrorCount     int

	LastUploadedValidFiles *RegistrationFileSet
	LastSubmittedFiles     *SubmittedFiles

	Status                      ApplicationStatus
	RegulatorComments           string
	RegistrationReferenceNumber string
	ApplicationReferenceNumber  string

	FeePayment           *FeePaymentFacts
	ApplicationSubmitted *ApplicationFacts
}

// PomFile names a producer packaging-data file from one upload cycle.
type PomFile struct {
	FileID     id.FileID
	FileName   string
	UploadedBy id.UserID
	UploadedAt time.Time
}

// PomStatus is the projected current state of a producer packaging-data
// submission.
type PomStatus struct {
	SubmissionID     id.SubmissionID
	OrganisationID   id.OrganisationID
	SubmissionPeriod string
	IsSubmitted      bool

	Upload *FileOutcome

	ExpectedRowCount  int
	ValidatedRowCount int
	InvalidRowCount   int

	ValidationPass bool
	HasWarnings    bool

	LastUploadedValidFile *PomFile
	LastSubmittedFile     *SubmittedFiles

	Status            ApplicationStatus
	RegulatorComments string
}

// LateFeeResult reports whether a late fee applies to a submission, plus the
// secondary fact used for compliance-scheme audits.
type LateFeeResult struct {
	IsLateFeeApplicable      bool
	IsOriginalSubmissionLate bool
}

// OrganisationSubmissionStatus is one row of the organisation-wide status
// fan-out read model.
type OrganisationSubmissionStatus struct {
	SubmissionID     id.SubmissionID
	SubmissionType   SubmissionType
	SubmissionPeriod string
	Status           ApplicationStatus
	ValidationPass   bool
	IsSubmitted      bool
}
