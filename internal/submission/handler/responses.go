package handler

import (
	"time"

	"consign/internal/submission/models"
)

// HTTP response DTOs - the wire shapes returned to API consumers.

type SubmissionResponse struct {
	SubmissionID       string `json:"submission_id"`
	OrganisationID     string `json:"organisation_id"`
	ComplianceSchemeID string `json:"compliance_scheme_id,omitempty"`
	SubmissionType     string `json:"submission_type"`
	SubmissionPeriod   string `json:"submission_period"`
	IsSubmitted        bool   `json:"is_submitted"`
	AppReferenceNumber string `json:"app_reference_number,omitempty"`
	IsResubmission     bool   `json:"is_resubmission"`
}

func toSubmissionResponse(sub *models.Submission) *SubmissionResponse {
	resp := &SubmissionResponse{
		SubmissionID:       sub.ID.String(),
		OrganisationID:     sub.OrganisationID.String(),
		SubmissionType:     string(sub.SubmissionType),
		SubmissionPeriod:   sub.SubmissionPeriod,
		IsSubmitted:        sub.IsSubmitted,
		AppReferenceNumber: sub.AppReferenceNumber,
		IsResubmission:     sub.IsResubmission,
	}
	if sub.ComplianceSchemeID != nil {
		resp.ComplianceSchemeID = sub.ComplianceSchemeID.String()
	}
	return resp
}

type FileOutcomeResponse struct {
	FileID     string    `json:"file_id"`
	FileName   string    `json:"file_name"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsValid    bool      `json:"is_valid"`
	ErrorCount int       `json:"error_count"`
}

func toFileOutcomeResponse(outcome *models.FileOutcome) *FileOutcomeResponse {
	if outcome == nil {
		return nil
	}
	resp := &FileOutcomeResponse{
		FileID:     outcome.FileID.String(),
		FileName:   outcome.FileName,
		UploadedAt: outcome.UploadedAt,
		IsValid:    outcome.IsValid,
		ErrorCount: outcome.ErrorCount,
	}
	if !outcome.UploadedBy.IsNil() {
		resp.UploadedBy = outcome.UploadedBy.String()
	}
	return resp
}

type RegistrationFileSetResponse struct {
	CompanyDetailsFileName string    `json:"company_details_file_name"`
	BrandsFileName         string    `json:"brands_file_name,omitempty"`
	PartnershipsFileName   string    `json:"partnerships_file_name,omitempty"`
	UploadedAt             time.Time `json:"uploaded_at"`
}

type SubmittedFilesResponse struct {
	FileID      string    `json:"file_id"`
	FileName    string    `json:"file_name,omitempty"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func toSubmittedFilesResponse(files *models.SubmittedFiles) *SubmittedFilesResponse {
	if files == nil {
		return nil
	}
	resp := &SubmittedFilesResponse{
		FileID:      files.FileID.String(),
		FileName:    files.FileName,
		SubmittedAt: files.SubmittedAt,
	}
	if !files.SubmittedBy.IsNil() {
		resp.SubmittedBy = files.SubmittedBy.String()
	}
	return resp
}

type RegistrationStatusResponse struct {
	SubmissionID     string `json:"submission_id"`
	SubmissionPeriod string `json:"submission_period"`
	IsSubmitted      bool   `json:"is_submitted"`
	IsResubmission   bool   `json:"is_resubmission"`

	CompanyDetails *FileOutcomeResponse `json:"company_details,omitempty"`
	Brands         *FileOutcomeResponse `json:"brands,omitempty"`
	Partnerships   *FileOutcomeResponse `json:"partnerships,omitempty"`

	RequiresBrandsFile       bool `json:"requires_brands_file"`
	RequiresPartnershipsFile bool `json:"requires_partnerships_file"`

	ValidationPass bool `json:"validation_pass"`
	HasWarnings    bool `json:"has_warnings"`
	ErrorCount     int  `json:"error_count"`

	LastUploadedValidFiles *RegistrationFileSetResponse `json:"last_uploaded_valid_files,omitempty"`
	LastSubmittedFiles     *SubmittedFilesResponse      `json:"last_submitted_files,omitempty"`

	Status                      string `json:"status"`
	RegulatorComments           string `json:"regulator_comments,omitempty"`
	RegistrationReferenceNumber string `json:"registration_reference_number,omitempty"`
	ApplicationReferenceNumber  string `json:"application_reference_number,omitempty"`
}

func toRegistrationStatusResponse(status *models.RegistrationStatus) *RegistrationStatusResponse {
	resp := &RegistrationStatusResponse{
		SubmissionID:                status.SubmissionID.String(),
		SubmissionPeriod:            status.SubmissionPeriod,
		IsSubmitted:                 status.IsSubmitted,
		IsResubmission:              status.IsResubmission,
		CompanyDetails:              toFileOutcomeResponse(status.CompanyDetails),
		Brands:                      toFileOutcomeResponse(status.Brands),
		Partnerships:                toFileOutcomeResponse(status.Partnerships),
		RequiresBrandsFile:          status.RequiresBrandsFile,
		RequiresPartnershipsFile:    status.RequiresPartnershipsFile,
		ValidationPass:              status.ValidationPass,
		HasWarnings:                 status.HasWarnings,
		ErrorCount:                  status.ErrorCount,
		LastSubmittedFiles:          toSubmittedFilesResponse(status.LastSubmittedFiles),
		Status:                      string(status.Status),
		RegulatorComments:           status.RegulatorComments,
		RegistrationReferenceNumber: status.RegistrationReferenceNumber,
		ApplicationReferenceNumber:  status.ApplicationReferenceNumber,
	}
	if files := status.LastUploadedValidFiles; files != nil {
		resp.LastUploadedValidFiles = &RegistrationFileSetResponse{
			CompanyDetailsFileName: files.CompanyDetailsFileName,
			BrandsFileName:         files.BrandsFileName,
			PartnershipsFileName:   files.PartnershipsFileName,
			UploadedAt:             files.UploadedAt,
		}
	}
	return resp
}

type PomStatusResponse struct {
	SubmissionID     string `json:"submission_id"`
	SubmissionPeriod string `json:"submission_period"`
	IsSubmitted      bool   `json:"is_submitted"`

	Upload *FileOutcomeResponse `json:"upload,omitempty"`

	ExpectedRowCount  int `json:"expected_row_count"`
	ValidatedRowCount int `json:"validated_row_count"`
	InvalidRowCount   int `json:"invalid_row_count"`

	ValidationPass bool `json:"validation_pass"`
	HasWarnings    bool `json:"has_warnings"`

	LastUploadedValidFileName string                  `json:"last_uploaded_valid_file_name,omitempty"`
	LastSubmittedFile         *SubmittedFilesResponse `json:"last_submitted_file,omitempty"`

	Status            string `json:"status"`
	RegulatorComments string `json:"regulator_comments,omitempty"`
}

func toPomStatusResponse(status *models.PomStatus) *PomStatusResponse {
	resp := &PomStatusResponse{
		SubmissionID:      status.SubmissionID.String(),
		SubmissionPeriod:  status.SubmissionPeriod,
		IsSubmitted:       status.IsSubmitted,
		Upload:            toFileOutcomeResponse(status.Upload),
		ExpectedRowCount:  status.ExpectedRowCount,
		ValidatedRowCount: status.ValidatedRowCount,
		InvalidRowCount:   status.InvalidRowCount,
		ValidationPass:    status.ValidationPass,
		HasWarnings:       status.HasWarnings,
		LastSubmittedFile: toSubmittedFilesResponse(status.LastSubmittedFile),
		Status:            string(status.Status),
		RegulatorComments: status.RegulatorComments,
	}
	if status.LastUploadedValidFile != nil {
		resp.LastUploadedValidFileName = status.LastUploadedValidFile.FileName
	}
	return resp
}

type SubmittableResponse struct {
	SubmissionID  string `json:"submission_id"`
	FileID        string `json:"file_id"`
	IsSubmittable bool   `json:"is_submittable"`
}

type LateFeeResponse struct {
	IsLateFeeApplicable      bool `json:"is_late_fee_applicable"`
	IsOriginalSubmissionLate bool `json:"is_original_submission_late"`
}

type OrganisationStatusResponse struct {
	SubmissionID     string `json:"submission_id"`
	SubmissionType   string `json:"submission_type"`
	SubmissionPeriod string `json:"submission_period"`
	Status           string `json:"status"`
	ValidationPass   bool   `json:"validation_pass"`
	IsSubmitted      bool   `json:"is_submitted"`
}

func toOrganisationStatusResponses(statuses []*models.OrganisationSubmissionStatus) []*OrganisationStatusResponse {
	out := make([]*OrganisationStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, &OrganisationStatusResponse{
			SubmissionID:     status.SubmissionID.String(),
			SubmissionType:   string(status.SubmissionType),
			SubmissionPeriod: status.SubmissionPeriod,
			Status:           string(status.Status),
			ValidationPass:   status.ValidationPass,
			IsSubmitted:      status.IsSubmitted,
		})
	}
	return out
}
