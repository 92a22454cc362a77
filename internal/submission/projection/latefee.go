package projection

import (
	"time"

	"consign/internal/submission/models"
)

// EvaluateLateFee decides whether a late fee applies against a compliance
// deadline.
//
// Compliance-scheme submissions that were already approved and then uploaded
// a newer valid file are judged against the timestamp of the new submission
// cycle. Everything else (first-time producer or scheme submissions, or no
// approval yet) is judged against the date the application was first lodged,
// or against "now" when nothing has been lodged at all.
func EvaluateLateFee(sub *models.Submission, t Timeline, deadline, now time.Time) models.LateFeeResult {
	var result models.LateFeeResult

	firstApp := t.FirstApplicationSubmitted()
	if firstApp != nil {
		result.IsOriginalSubmissionLate = firstApp.SubmissionDate.After(deadline)
	}

	if sub.IsComplianceScheme() {
		if approvedAt := t.LatestApprovalAt(); approvedAt != nil {
			if validAt := latestValidUploadAt(sub, t); validAt != nil && validAt.After(*approvedAt) {
				if submitted := t.LatestSubmitted(); submitted != nil {
					result.IsLateFeeApplicable = submitted.Created.After(deadline)
				} else {
					result.IsLateFeeApplicable = now.After(deadline)
				}
				return result
			}
		}
	}

	if firstApp != nil {
		result.IsLateFeeApplicable = firstApp.SubmissionDate.After(deadline)
	} else {
		result.IsLateFeeApplicable = now.After(deadline)
	}
	return result
}

// latestValidUploadAt returns the upload timestamp of the most recent
// known-good cycle for either submission type.
func latestValidUploadAt(sub *models.Submission, t Timeline) *time.Time {
	switch sub.SubmissionType {
	case models.SubmissionTypeRegistration:
		if files := ProjectRegistration(sub, t).LastUploadedValidFiles; files != nil {
			at := files.UploadedAt
			return &at
		}
	case models.SubmissionTypeProducer:
		if file := ProjectPom(sub, t).LastUploadedValidFile; file != nil {
			at := file.UploadedAt
			return &at
		}
	}
	return nil
}
