package projection

import (
	"time"

	"consign/internal/submission/models"
)

// ProjectRegistration derives the current state of a registration submission
// from its full event history.
func ProjectRegistration(sub *models.Submission, t Timeline) *models.RegistrationStatus {
	status := &models.RegistrationStatus{
		SubmissionID:               sub.ID,
		OrganisationID:             sub.OrganisationID,
		SubmissionPeriod:           sub.SubmissionPeriod,
		IsSubmitted:                sub.IsSubmitted,
		IsResubmission:             sub.IsResubmission,
		ApplicationReferenceNumber: sub.AppReferenceNumber,
	}

	latestCheck := t.LatestCheck(models.RoleCompanyDetails, nil)
	if latestCheck != nil {
		company := ResolveChainForCheck(t, latestCheck)
		status.CompanyDetails = &company

		if reg := registrationValidationFor(t, company); reg != nil {
			status.RequiresBrandsFile = reg.RequiresBrandsFile
			status.RequiresPartnershipsFile = reg.RequiresPartnershipsFile
		}

		setID := latestCheck.RegistrationSetID
		if status.RequiresBrandsFile {
			if brands, ok := ResolveFileChain(t, models.RoleBrands, setID); ok {
				status.Brands = &brands
			}
		}
		if status.RequiresPartnershipsFile {
			if partnerships, ok := ResolveFileChain(t, models.RolePartnerships, setID); ok {
				status.Partnerships = &partnerships
			}
		}
	}

	status.ValidationPass = registrationPass(status)
	status.ErrorCount = aggregateErrors(status)
	status.HasWarnings = aggregateWarnings(status) > 0

	status.LastUploadedValidFiles = lastUploadedValidFiles(t, latestCheck, status.ValidationPass)
	status.LastSubmittedFiles = lastSubmittedFiles(t, sub)

	var latestValidAt *time.Time
	if status.LastUploadedValidFiles != nil {
		at := status.LastUploadedValidFiles.UploadedAt
		latestValidAt = &at
	}
	var latestSubmittedAt *time.Time
	if submitted := t.LatestSubmitted(); submitted != nil {
		at := submitted.Created
		latestSubmittedAt = &at
	}

	decision := t.LatestDecision()
	derived := DeriveApplicationStatus(StatusInput{
		IsSubmitted:       sub.IsSubmitted,
		LatestValidFileAt: latestValidAt,
		LatestSubmittedAt: latestSubmittedAt,
		Decision:          decision,
	})
	status.Status = derived.Status

	if payment := t.LatestFeePayment(); payment != nil {
		status.FeePayment = &models.FeePaymentFacts{
			PaymentMethod:   payment.PaymentMethod,
			PaymentStatus:   payment.PaymentStatus,
			ReferenceNumber: payment.ReferenceNumber,
			PaidAt:          payment.Created,
		}
	}
	if app := t.FirstApplicationSubmitted(); app != nil {
		status.ApplicationSubmitted = &models.ApplicationFacts{
			ApplicationReferenceNumber: app.ApplicationReferenceNumber,
			SubmittedAt:                app.Created,
			SubmissionDate:             app.SubmissionDate,
		}
	}

	if decision != nil {
		if derived.DecisionStale {
			// A newer valid upload restarted the cycle; facts belonging to
			// the cycle the decision already resolved are cleared.
			if status.FeePayment != nil && status.FeePayment.PaidAt.Before(decision.Created) {
				status.FeePayment = nil
			}
			if status.ApplicationSubmitted != nil && status.ApplicationSubmitted.SubmittedAt.Before(decision.Created) {
				status.ApplicationSubmitted = nil
			}
		} else {
			status.RegulatorComments = decision.Comments
			status.RegistrationReferenceNumber = decision.RegistrationReferenceNumber
		}
	}

	return status
}

// registrationPass applies the completeness conjunction: the company file and
// every required dependent file must be end-to-end valid with zero errors.
func registrationPass(status *models.RegistrationStatus) bool {
	if status.CompanyDetails == nil || !status.CompanyDetails.IsValid {
		return false
	}
	if status.RequiresBrandsFile && (status.Brands == nil || !status.Brands.IsValid) {
		return false
	}
	if status.RequiresPartnershipsFile && (status.Partnerships == nil || !status.Partnerships.IsValid) {
		return false
	}
	return aggregateErrors(status) == 0
}

func aggregateErrors(status *models.RegistrationStatus) int {
	total := 0
	for _, outcome := range []*models.FileOutcome{status.CompanyDetails, status.Brands, status.Partnerships} {
		if outcome != nil {
			total += outcome.ErrorCount
		}
	}
	return total
}

func aggregateWarnings(status *models.RegistrationStatus) int {
	total := 0
	for _, outcome := range []*models.FileOutcome{status.CompanyDetails, status.Brands, status.Partnerships} {
		if outcome != nil {
			total += outcome.WarningCount
		}
	}
	return total
}

// lastUploadedValidFiles locates the most recent known-good upload cycle. If
// the latest attempt passed it is that cycle; otherwise older company-details
// checks are walked newest-first until one anchors a fully valid chain
// including its required dependents.
func lastUploadedValidFiles(t Timeline, latestCheck *models.AntivirusCheck, latestPass bool) *models.RegistrationFileSet {
	if latestCheck == nil {
		return nil
	}
	if latestPass {
		if set, ok := validFileSetForCheck(t, latestCheck); ok {
			return set
		}
	}
	checks := t.Checks(models.RoleCompanyDetails, nil)
	for i := len(checks) - 1; i >= 0; i-- {
		if checks[i].FileID == latestCheck.FileID {
			continue
		}
		if set, ok := validFileSetForCheck(t, checks[i]); ok {
			return set
		}
	}
	return nil
}

// validFileSetForCheck resolves the full chain anchored at one company-details
// upload, including the dependent files its validation declared required,
// scoped to that upload's registration set.
func validFileSetForCheck(t Timeline, check *models.AntivirusCheck) (*models.RegistrationFileSet, bool) {
	company := ResolveChainForCheck(t, check)
	if !company.IsValid {
		return nil, false
	}

	set := &models.RegistrationFileSet{
		CompanyDetailsFileID:   company.FileID,
		CompanyDetailsFileName: company.FileName,
		UploadedBy:             company.UploadedBy,
		UploadedAt:             company.UploadedAt,
	}

	reg := registrationValidationFor(t, company)
	if reg == nil {
		return set, true
	}
	if reg.RequiresBrandsFile {
		brands, ok := ResolveFileChain(t, models.RoleBrands, check.RegistrationSetID)
		if !ok || !brands.IsValid {
			return nil, false
		}
		set.BrandsFileName = brands.FileName
	}
	if reg.RequiresPartnershipsFile {
		partnerships, ok := ResolveFileChain(t, models.RolePartnerships, check.RegistrationSetID)
		if !ok || !partnerships.IsValid {
			return nil, false
		}
		set.PartnershipsFileName = partnerships.FileName
	}
	return set, true
}

// lastSubmittedFiles names the files attached to the most recent Submitted
// event. Populated only once the submission has been finalized.
func lastSubmittedFiles(t Timeline, sub *models.Submission) *models.SubmittedFiles {
	if !sub.IsSubmitted {
		return nil
	}
	submitted := t.LatestSubmitted()
	if submitted == nil {
		return nil
	}
	files := &models.SubmittedFiles{
		FileID:      submitted.FileID,
		SubmittedBy: submitted.SubmittedBy,
		SubmittedAt: submitted.Created,
	}
	if check := t.CheckForFile(submitted.FileID); check != nil {
		files.FileName = check.FileName
	}
	return files
}
