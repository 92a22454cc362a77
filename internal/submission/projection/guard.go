package projection

import (
	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// IsFileSubmittable is the precondition for appending a Submitted event: the
// chain anchored at the given upload must be end-to-end valid. It never
// mutates state; a false result is a normal negative, surfaced to callers as
// a domain-level rejection.
func IsFileSubmittable(sub *models.Submission, t Timeline, fileID id.FileID) bool {
	check := t.CheckForFile(fileID)
	if check == nil {
		return false
	}

	switch sub.SubmissionType {
	case models.SubmissionTypeRegistration:
		if check.FileRole != models.RoleCompanyDetails {
			return false
		}
		_, ok := validFileSetForCheck(t, check)
		return ok
	case models.SubmissionTypeProducer:
		if check.FileRole != models.RolePom {
			return false
		}
		return pomChainComplete(t, check)
	default:
		return false
	}
}

// pomChainComplete checks one producer upload's chain through the splitter
// pipeline: scan success, splitter present, full expected row set observed,
// no invalid rows.
func pomChainComplete(t Timeline, check *models.AntivirusCheck) bool {
	outcome := ResolveChainForCheck(t, check)
	if outcome.BlobName == "" || outcome.ErrorCount > 0 {
		return false
	}
	if outcome.IsValid && !outcome.RequiresRowValidation {
		return true
	}
	splitter := t.SplitterForBlob(outcome.BlobName)
	if splitter == nil || splitter.DataCount <= 0 || len(splitter.Errors) > 0 {
		return false
	}
	observed, invalid, _ := t.ProducerRowCounts(outcome.BlobName)
	return observed == splitter.DataCount && invalid == 0
}
