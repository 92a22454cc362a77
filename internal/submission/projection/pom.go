package projection

import (
	"time"

	"consign/internal/submission/models"
)

// ProjectPom derives the current state of a producer packaging-data
// submission. The producer pipeline differs from registration: after the
// scan, the file is split into rows and a CheckSplitter event declares how
// many row-validation results to expect. Validation passes only when every
// expected row has been seen and none are invalid.
func ProjectPom(sub *models.Submission, t Timeline) *models.PomStatus {
	status := &models.PomStatus{
		SubmissionID:     sub.ID,
		OrganisationID:   sub.OrganisationID,
		SubmissionPeriod: sub.SubmissionPeriod,
		IsSubmitted:      sub.IsSubmitted,
	}

	latestCheck := t.LatestCheck(models.RolePom, nil)
	if latestCheck != nil {
		upload := ResolveChainForCheck(t, latestCheck)
		status.Upload = &upload

		if upload.BlobName != "" && upload.ErrorCount == 0 {
			if splitter := t.SplitterForBlob(upload.BlobName); splitter != nil {
				observed, invalid, warnings := t.ProducerRowCounts(upload.BlobName)
				status.ExpectedRowCount = splitter.DataCount
				status.ValidatedRowCount = observed
				status.InvalidRowCount = invalid
				status.HasWarnings = warnings > 0
				status.ValidationPass = splitter.DataCount > 0 &&
					observed == splitter.DataCount &&
					invalid == 0 &&
					len(splitter.Errors) == 0
			} else if upload.IsValid && !upload.RequiresRowValidation {
				// No row-level validation requested; the scanned file stands alone.
				status.ValidationPass = true
			}
		}
	}

	status.LastUploadedValidFile = lastValidPomFile(t, latestCheck, status.ValidationPass)
	status.LastSubmittedFile = lastSubmittedFiles(t, sub)

	var latestValidAt *time.Time
	if status.LastUploadedValidFile != nil {
		at := status.LastUploadedValidFile.UploadedAt
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
	if decision != nil && !derived.DecisionStale {
		status.RegulatorComments = decision.Comments
	}

	return status
}

// lastValidPomFile finds the most recent known-good producer upload. When the
// latest attempt passed, that is the answer; otherwise earlier splitter
// events with a positive expected count are walked newest-first until one
// whose full row set validated cleanly is found.
func lastValidPomFile(t Timeline, latestCheck *models.AntivirusCheck, latestPass bool) *models.PomFile {
	if latestCheck == nil {
		return nil
	}
	if latestPass {
		return &models.PomFile{
			FileID:     latestCheck.FileID,
			FileName:   latestCheck.FileName,
			UploadedBy: latestCheck.UploadedBy,
			UploadedAt: latestCheck.Created,
		}
	}

	splitters := t.Splitters()
	for i := len(splitters) - 1; i >= 0; i-- {
		splitter := splitters[i]
		if splitter.DataCount <= 0 || len(splitter.Errors) > 0 {
			continue
		}
		result := t.ResultForBlob(splitter.BlobName)
		if result == nil || result.ScanResult != models.ScanSuccess {
			continue
		}
		check := t.CheckForFile(result.FileID)
		if check == nil || check.FileID == latestCheck.FileID {
			continue
		}
		observed, invalid, _ := t.ProducerRowCounts(splitter.BlobName)
		if observed != splitter.DataCount || invalid != 0 {
			continue
		}
		return &models.PomFile{
			FileID:     check.FileID,
			FileName:   check.FileName,
			UploadedBy: check.UploadedBy,
			UploadedAt: check.Created,
		}
	}
	return nil
}
