package handler

import (
	"strings"
	"time"

	"consign/internal/submission/models"
	"consign/internal/submission/service"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// HTTP request DTOs - contain JSON tags for API serialization.
// These are converted to service commands and events before processing.

type CreateSubmissionRequest struct {
	OrganisationID     string `json:"organisation_id"`
	ComplianceSchemeID string `json:"compliance_scheme_id,omitempty"`
	SubmissionType     string `json:"submission_type"`
	SubmissionPeriod   string `json:"submission_period"`
}

func (r *CreateSubmissionRequest) Normalize() {
	if r == nil {
		return
	}
	r.SubmissionType = strings.ToLower(strings.TrimSpace(r.SubmissionType))
	r.SubmissionPeriod = strings.TrimSpace(r.SubmissionPeriod)
}

func (r *CreateSubmissionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.OrganisationID == "" {
		return dErrors.New(dErrors.CodeValidation, "organisation_id is required")
	}
	switch models.SubmissionType(r.SubmissionType) {
	case models.SubmissionTypeProducer, models.SubmissionTypeRegistration:
	default:
		return dErrors.New(dErrors.CodeValidation, "submission_type must be producer or registration")
	}
	if r.SubmissionPeriod == "" {
		return dErrors.New(dErrors.CodeValidation, "submission_period is required")
	}
	return nil
}

// ToCommand converts the request to a service command.
func (r *CreateSubmissionRequest) ToCommand() (*service.CreateSubmissionCommand, error) {
	orgID, err := id.ParseOrganisationID(r.OrganisationID)
	if err != nil {
		return nil, err
	}
	cmd := &service.CreateSubmissionCommand{
		OrganisationID:   orgID,
		SubmissionType:   models.SubmissionType(r.SubmissionType),
		SubmissionPeriod: r.SubmissionPeriod,
	}
	if r.ComplianceSchemeID != "" {
		schemeID, err := id.ParseComplianceSchemeID(r.ComplianceSchemeID)
		if err != nil {
			return nil, err
		}
		cmd.ComplianceSchemeID = &schemeID
	}
	return cmd, nil
}

// AppendEventRequest is the generic event-append envelope. Kind selects the
// concrete event type; the remaining fields are read per kind.
type AppendEventRequest struct {
	Kind string `json:"kind"`

	// Upload / scan fields.
	FileID                string   `json:"file_id,omitempty"`
	FileName              string   `json:"file_name,omitempty"`
	FileRole              string   `json:"file_role,omitempty"`
	UploadedBy            string   `json:"uploaded_by,omitempty"`
	RegistrationSetID     string   `json:"registration_set_id,omitempty"`
	ScanResult            string   `json:"scan_result,omitempty"`
	BlobName              string   `json:"blob_name,omitempty"`
	RequiresRowValidation bool     `json:"requires_row_validation,omitempty"`
	Errors                []string `json:"errors,omitempty"`

	// Validation fields.
	IsValid                  bool `json:"is_valid,omitempty"`
	ErrorCount               int  `json:"error_count,omitempty"`
	WarningCount             int  `json:"warning_count,omitempty"`
	DataCount                int  `json:"data_count,omitempty"`
	RequiresBrandsFile       bool `json:"requires_brands_file,omitempty"`
	RequiresPartnershipsFile bool `json:"requires_partnerships_file,omitempty"`
	OrganisationMemberCount  int  `json:"organisation_member_count,omitempty"`

	// Regulator / payment fields.
	Decision                    string `json:"decision,omitempty"`
	Comments                    string `json:"comments,omitempty"`
	RegistrationReferenceNumber string `json:"registration_reference_number,omitempty"`
	PaymentMethod               string `json:"payment_method,omitempty"`
	PaymentStatus               string `json:"payment_status,omitempty"`
	ReferenceNumber             string `json:"reference_number,omitempty"`
	ApplicationReferenceNumber  string `json:"application_reference_number,omitempty"`
	SubmissionDate              string `json:"submission_date,omitempty"`
}

func (r *AppendEventRequest) Normalize() {
	if r == nil {
		return
	}
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.FileRole = strings.ToLower(strings.TrimSpace(r.FileRole))
	r.ScanResult = strings.ToLower(strings.TrimSpace(r.ScanResult))
	r.Decision = strings.ToLower(strings.TrimSpace(r.Decision))
}

func (r *AppendEventRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Kind == "" {
		return dErrors.New(dErrors.CodeValidation, "kind is required")
	}
	if !models.KnownKind(models.EventKind(r.Kind)) {
		return dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+r.Kind)
	}
	switch models.EventKind(r.Kind) {
	case models.KindAntivirusCheck:
		if r.FileID == "" || r.FileName == "" {
			return dErrors.New(dErrors.CodeValidation, "file_id and file_name are required")
		}
		switch models.FileRole(r.FileRole) {
		case models.RoleCompanyDetails, models.RoleBrands, models.RolePartnerships, models.RolePom:
		default:
			return dErrors.New(dErrors.CodeValidation, "invalid file_role")
		}
	case models.KindAntivirusResult:
		if r.FileID == "" {
			return dErrors.New(dErrors.CodeValidation, "file_id is required")
		}
		if r.ScanResult != string(models.ScanSuccess) && r.ScanResult != string(models.ScanFailed) {
			return dErrors.New(dErrors.CodeValidation, "scan_result must be success or failed")
		}
	case models.KindCheckSplitter, models.KindProducerValidation,
		models.KindRegistrationValidation, models.KindBrandValidation, models.KindPartnerValidation:
		if r.BlobName == "" {
			return dErrors.New(dErrors.CodeValidation, "blob_name is required")
		}
	case models.KindRegulatorDecision:
		switch models.Decision(r.Decision) {
		case models.DecisionAccepted, models.DecisionApproved, models.DecisionRejected,
			models.DecisionCancelled, models.DecisionQueried:
		default:
			return dErrors.New(dErrors.CodeValidation, "invalid decision")
		}
	case models.KindApplicationSubmitted:
		if r.SubmissionDate == "" {
			return dErrors.New(dErrors.CodeValidation, "submission_date is required")
		}
		if _, err := time.Parse(time.RFC3339, r.SubmissionDate); err != nil {
			return dErrors.New(dErrors.CodeValidation, "submission_date must be RFC3339")
		}
	case models.KindSubmitted:
		// Submitted events are appended through the submit endpoint so the
		// guard always runs; producers cannot bypass it here.
		return dErrors.New(dErrors.CodeValidation, "submitted events must go through the submit endpoint")
	}
	return nil
}

// ToEvent builds the concrete event for a submission.
func (r *AppendEventRequest) ToEvent(submissionID id.SubmissionID) (models.Event, error) {
	var ev models.Event
	switch models.EventKind(r.Kind) {
	case models.KindAntivirusCheck:
		fileID, err := id.ParseFileID(r.FileID)
		if err != nil {
			return nil, err
		}
		check := &models.AntivirusCheck{
			FileID:   fileID,
			FileName: r.FileName,
			FileRole: models.FileRole(r.FileRole),
			Errors:   r.Errors,
		}
		if r.UploadedBy != "" {
			userID, err := id.ParseUserID(r.UploadedBy)
			if err != nil {
				return nil, err
			}
			check.UploadedBy = userID
		}
		if r.RegistrationSetID != "" {
			setID, err := id.ParseRegistrationSetID(r.RegistrationSetID)
			if err != nil {
				return nil, err
			}
			check.RegistrationSetID = &setID
		}
		ev = check
	case models.KindAntivirusResult:
		fileID, err := id.ParseFileID(r.FileID)
		if err != nil {
			return nil, err
		}
		ev = &models.AntivirusResult{
			FileID:                fileID,
			ScanResult:            models.ScanResult(r.ScanResult),
			BlobName:              r.BlobName,
			RequiresRowValidation: r.RequiresRowValidation,
			Errors:                r.Errors,
		}
	case models.KindCheckSplitter:
		ev = &models.CheckSplitter{
			BlobName:  r.BlobName,
			DataCount: r.DataCount,
			Errors:    r.Errors,
		}
	case models.KindProducerValidation:
		ev = &models.ProducerValidation{
			BlobName:     r.BlobName,
			IsValid:      r.IsValid,
			ErrorCount:   r.ErrorCount,
			WarningCount: r.WarningCount,
		}
	case models.KindRegistrationValidation:
		ev = &models.RegistrationValidation{
			BlobName:                 r.BlobName,
			IsValid:                  r.IsValid,
			ErrorCount:               r.ErrorCount,
			WarningCount:             r.WarningCount,
			RequiresBrandsFile:       r.RequiresBrandsFile,
			RequiresPartnershipsFile: r.RequiresPartnershipsFile,
			OrganisationMemberCount:  r.OrganisationMemberCount,
		}
	case models.KindBrandValidation:
		ev = &models.BrandValidation{
			BlobName:     r.BlobName,
			IsValid:      r.IsValid,
			ErrorCount:   r.ErrorCount,
			WarningCount: r.WarningCount,
		}
	case models.KindPartnerValidation:
		ev = &models.PartnerValidation{
			BlobName:     r.BlobName,
			IsValid:      r.IsValid,
			ErrorCount:   r.ErrorCount,
			WarningCount: r.WarningCount,
		}
	case models.KindRegulatorDecision:
		decision := &models.RegulatorDecision{
			Decision:                    models.Decision(r.Decision),
			Comments:                    r.Comments,
			RegistrationReferenceNumber: r.RegistrationReferenceNumber,
		}
		if r.FileID != "" {
			fileID, err := id.ParseFileID(r.FileID)
			if err != nil {
				return nil, err
			}
			decision.FileID = &fileID
		}
		ev = decision
	case models.KindFeePayment:
		ev = &models.FeePayment{
			PaymentMethod:   r.PaymentMethod,
			PaymentStatus:   r.PaymentStatus,
			ReferenceNumber: r.ReferenceNumber,
		}
	case models.KindApplicationSubmitted:
		submissionDate, err := time.Parse(time.RFC3339, r.SubmissionDate)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "submission_date must be RFC3339")
		}
		ev = &models.ApplicationSubmitted{
			ApplicationReferenceNumber: r.ApplicationReferenceNumber,
			Comments:                   r.Comments,
			SubmissionDate:             submissionDate,
		}
	default:
		return nil, dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+r.Kind)
	}
	ev.Header().SubmissionID = submissionID
	return ev, nil
}

type SubmitRequest struct {
	FileID      string `json:"file_id"`
	SubmittedBy string `json:"submitted_by"`
}

func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.FileID == "" {
		return dErrors.New(dErrors.CodeValidation, "file_id is required")
	}
	if r.SubmittedBy == "" {
		return dErrors.New(dErrors.CodeValidation, "submitted_by is required")
	}
	return nil
}
