package projection

import (
	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// ResolveFileChain walks the Check -> Result -> ContentValidation chain for
// one file role and yields a single verdict for the latest upload attempt.
// The second return value is false when no upload for the role exists at all.
//
// Absence anywhere along the chain is not an error: a missing scan result or
// a pending content validation simply leaves IsValid false, because
// "processing not yet complete" is a normal transient state.
func ResolveFileChain(t Timeline, role models.FileRole, setID *id.RegistrationSetID) (models.FileOutcome, bool) {
	check := t.LatestCheck(role, setID)
	if check == nil {
		return models.FileOutcome{}, false
	}
	return ResolveChainForCheck(t, check), true
}

// ResolveChainForCheck resolves the chain anchored at a specific upload
// attempt. Used by the latest-attempt resolution, the known-good fallback
// walk, and the submit-time guard (which pins the chain to a file id).
func ResolveChainForCheck(t Timeline, check *models.AntivirusCheck) models.FileOutcome {
	outcome := models.FileOutcome{
		FileID:     check.FileID,
		FileName:   check.FileName,
		UploadedBy: check.UploadedBy,
		UploadedAt: check.Created,
	}
	if len(check.Errors) > 0 {
		outcome.ErrorCount = len(check.Errors)
		return outcome
	}

	result := t.LatestResultForFile(check.FileID)
	if result == nil || result.ScanResult != models.ScanSuccess {
		// Fail fast: a failed or missing scan makes the file invalid
		// regardless of any other evidence.
		if result != nil {
			outcome.BlobName = result.BlobName
			outcome.ErrorCount = len(result.Errors)
		}
		return outcome
	}

	outcome.BlobName = result.BlobName
	outcome.RequiresRowValidation = result.RequiresRowValidation
	outcome.ErrorCount = len(result.Errors)
	if outcome.ErrorCount > 0 {
		return outcome
	}

	if !result.RequiresRowValidation {
		outcome.IsValid = true
		return outcome
	}

	kind, ok := models.ValidationKindForRole(check.FileRole)
	if !ok {
		// Producer files run through the splitter pipeline instead of a
		// single content-validation event; the PoM projector owns that.
		return outcome
	}

	validation := t.LatestValidationForBlob(kind, result.BlobName)
	if validation == nil {
		return outcome
	}
	outcome.IsValid = validation.ContentIsValid()
	outcome.ErrorCount += validation.ContentErrorCount()
	outcome.WarningCount = validation.ContentWarningCount()
	return outcome
}

// registrationValidationFor returns the content-validation event backing a
// company-details outcome, needed to read the dependent-file requirement
// flags declared by the validator.
func registrationValidationFor(t Timeline, outcome models.FileOutcome) *models.RegistrationValidation {
	if outcome.BlobName == "" {
		return nil
	}
	validation := t.LatestValidationForBlob(models.KindRegistrationValidation, outcome.BlobName)
	if validation == nil {
		return nil
	}
	reg, ok := validation.(*models.RegistrationValidation)
	if !ok {
		return nil
	}
	return reg
}
