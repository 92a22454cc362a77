package models

import (
	"time"

	id "consign/pkg/domain"
)

// EventKind discriminates the concrete event types in the submission log.
type EventKind string

const (
	KindAntivirusCheck         EventKind = "antivirus_check"
	KindAntivirusResult        EventKind = "antivirus_result"
	KindCheckSplitter          EventKind = "check_splitter"
	KindProducerValidation     EventKind = "producer_validation"
	KindRegistrationValidation EventKind = "registration_validation"
	KindBrandValidation        EventKind = "brand_validation"
	KindPartnerValidation      EventKind = "partner_validation"
	KindSubmitted              EventKind = "submitted"
	KindRegulatorDecision      EventKind = "regulator_decision"
	KindFeePayment             EventKind = "fee_payment"
	KindApplicationSubmitted   EventKind = "application_submitted"
)

// FileRole identifies which logical file an upload event belongs to.
type FileRole string

const (
	RoleCompanyDetails FileRole = "company_details"
	RoleBrands         FileRole = "brands"
	RolePartnerships   FileRole = "partnerships"
	RolePom            FileRole = "pom"
)

// ScanResult is the outcome reported by the antivirus scanner.
type ScanResult string

const (
	ScanSuccess ScanResult = "success"
	ScanFailed  ScanResult = "failed"
)

// Decision is a regulator verdict on a submitted application.
type Decision string

const (
	DecisionAccepted  Decision = "accepted"
	DecisionApproved  Decision = "approved"
	DecisionRejected  Decision = "rejected"
	DecisionCancelled Decision = "cancelled"
	DecisionQueried   Decision = "queried"
)

// Envelope carries the fields shared by every event in the log.
// ID and Created are assigned by the event store at append time; producers
// never supply them. The envelope fields are excluded from the JSON payload
// because the store persists them as their own columns.
type Envelope struct {
	ID           id.EventID      `json:"-"`
	SubmissionID id.SubmissionID `json:"-"`
	Created      time.Time       `json:"-"`
}

// Event is the interface satisfied by every concrete event type.
// Header returns a mutable reference so the store can stamp ID and Created
// on append; after that the event is treated as immutable.
type Event interface {
	Kind() EventKind
	Header() *Envelope
}

// AntivirusCheck records that a file was received and a scan was requested.
type AntivirusCheck struct {
	Envelope
	FileID            id.FileID             `json:"file_id"`
	FileName          string                `json:"file_name"`
	FileRole          FileRole              `json:"file_role"`
	UploadedBy        id.UserID             `json:"uploaded_by"`
	RegistrationSetID *id.RegistrationSetID `json:"registration_set_id,omitempty"`
	Errors            []string              `json:"errors,omitempty"`
}

func (e *AntivirusCheck) Kind() EventKind   { return KindAntivirusCheck }
func (e *AntivirusCheck) Header() *Envelope { return &e.Envelope }

// AntivirusResult records a completed scan. It links to its AntivirusCheck
// via FileID and establishes the stored artifact's BlobName.
type AntivirusResult struct {
	Envelope
	FileID                id.FileID  `json:"file_id"`
	ScanResult            ScanResult `json:"scan_result"`
	BlobName              string     `json:"blob_name"`
	RequiresRowValidation bool       `json:"requires_row_validation"`
	Errors                []string   `json:"errors,omitempty"`
}

func (e *AntivirusResult) Kind() EventKind   { return KindAntivirusResult }
func (e *AntivirusResult) Header() *Envelope { return &e.Envelope }

// CheckSplitter records that a producer (PoM) file was split into rows for
// validation. DataCount is the number of row-validation results expected.
type CheckSplitter struct {
	Envelope
	BlobName  string   `json:"blob_name"`
	DataCount int      `json:"data_count"`
	Errors    []string `json:"errors,omitempty"`
}

func (e *CheckSplitter) Kind() EventKind   { return KindCheckSplitter }
func (e *CheckSplitter) Header() *Envelope { return &e.Envelope }

// ProducerValidation records the outcome of validating one slice of producer
// rows belonging to a split file.
type ProducerValidation struct {
	Envelope
	BlobName     string `json:"blob_name"`
	IsValid      bool   `json:"is_valid"`
	ErrorCount   int    `json:"error_count"`
	WarningCount int    `json:"warning_count"`
}

func (e *ProducerValidation) Kind() EventKind   { return KindProducerValidation }
func (e *ProducerValidation) Header() *Envelope { return &e.Envelope }

// RegistrationValidation records the content check of a company-details file.
// It declares whether dependent brands/partnerships files are required for
// the submission to be complete.
type RegistrationValidation struct {
	Envelope
	BlobName                 string `json:"blob_name"`
	IsValid                  bool   `json:"is_valid"`
	ErrorCount               int    `json:"error_count"`
	WarningCount             int    `json:"warning_count"`
	RequiresBrandsFile       bool   `json:"requires_brands_file"`
	RequiresPartnershipsFile bool   `json:"requires_partnerships_file"`
	OrganisationMemberCount  int    `json:"organisation_member_count,omitempty"`
}

func (e *RegistrationValidation) Kind() EventKind   { return KindRegistrationValidation }
func (e *RegistrationValidation) Header() *Envelope { return &e.Envelope }

// BrandValidation records the content check of a brands file.
type BrandValidation struct {
	Envelope
	BlobName     string `json:"blob_name"`
	IsValid      bool   `json:"is_valid"`
	ErrorCount   int    `json:"error_count"`
	WarningCount int    `json:"warning_count"`
}

func (e *BrandValidation) Kind() EventKind   { return KindBrandValidation }
func (e *BrandValidation) Header() *Envelope { return &e.Envelope }

// PartnerValidation records the content check of a partnerships file.
type PartnerValidation struct {
	Envelope
	BlobName     string `json:"blob_name"`
	IsValid      bool   `json:"is_valid"`
	ErrorCount   int    `json:"error_count"`
	WarningCount int    `json:"warning_count"`
}

func (e *PartnerValidation) Kind() EventKind   { return KindPartnerValidation }
func (e *PartnerValidation) Header() *Envelope { return &e.Envelope }

// Submitted marks a submission cycle as finalized for a given file.
type Submitted struct {
	Envelope
	FileID      id.FileID `json:"file_id"`
	SubmittedBy id.UserID `json:"submitted_by"`
}

func (e *Submitted) Kind() EventKind   { return KindSubmitted }
func (e *Submitted) Header() *Envelope { return &e.Envelope }

// RegulatorDecision records the regulator's verdict on a submitted application.
type RegulatorDecision struct {
	Envelope
	Decision                    Decision   `json:"decision"`
	Comments                    string     `json:"comments,omitempty"`
	FileID                      *id.FileID `json:"file_id,omitempty"`
	RegistrationReferenceNumber string     `json:"registration_reference_number,omitempty"`
}

func (e *RegulatorDecision) Kind() EventKind   { return KindRegulatorDecision }
func (e *RegulatorDecision) Header() *Envelope { return &e.Envelope }

// FeePayment records a compliance fee payment against the submission.
type FeePayment struct {
	Envelope
	PaymentMethod   string `json:"payment_method"`
	PaymentStatus   string `json:"payment_status"`
	ReferenceNumber string `json:"reference_number"`
}

func (e *FeePayment) Kind() EventKind   { return KindFeePayment }
func (e *FeePayment) Header() *Envelope { return &e.Envelope }

// ApplicationSubmitted records that the application was lodged with the
// regulator, with the date the organisation actually submitted it.
type ApplicationSubmitted struct {
	Envelope
	ApplicationReferenceNumber string    `json:"application_reference_number"`
	Comments                   string    `json:"comments,omitempty"`
	SubmissionDate             time.Time `json:"submission_date"`
}

func (e *ApplicationSubmitted) Kind() EventKind   { return KindApplicationSubmitted }
func (e *ApplicationSubmitted) Header() *Envelope { return &e.Envelope }

// ContentValidation is implemented by the per-role content check events so
// the chain resolver can treat them uniformly (join on blob name, read the
// validity flag and error count).
type ContentValidation interface {
	Event
	ContentBlobName() string
	ContentIsValid() bool
	ContentErrorCount() int
	ContentWarningCount() int
}

func (e *RegistrationValidation) ContentBlobName() string  { return e.BlobName }
func (e *RegistrationValidation) ContentIsValid() bool     { return e.IsValid }
func (e *RegistrationValidation) ContentErrorCount() int   { return e.ErrorCount }
func (e *RegistrationValidation) ContentWarningCount() int { return e.WarningCount }

func (e *BrandValidation) ContentBlobName() string  { return e.BlobName }
func (e *BrandValidation) ContentIsValid() bool     { return e.IsValid }
func (e *BrandValidation) ContentErrorCount() int   { return e.ErrorCount }
func (e *BrandValidation) ContentWarningCount() int { return e.WarningCount }

func (e *PartnerValidation) ContentBlobName() string  { return e.BlobName }
func (e *PartnerValidation) ContentIsValid() bool     { return e.IsValid }
func (e *PartnerValidation) ContentErrorCount() int   { return e.ErrorCount }
func (e *PartnerValidation) ContentWarningCount() int { return e.WarningCount }

// ValidationKindForRole maps a file role to the event kind that carries its
// content-validation outcome.
func ValidationKindForRole(role FileRole) (EventKind, bool) {
	switch role {
	case RoleCompanyDetails:
		return KindRegistrationValidation, true
	case RoleBrands:
		return KindBrandValidation, true
	case RolePartnerships:
		return KindPartnerValidation, true
	default:
		return "", false
	}
}
