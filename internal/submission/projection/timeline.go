// Package projection derives the current status of a submission from its
// append-only event log. Every function here is a pure fold over an
// in-memory event slice: no storage access, no caching, no side effects.
package projection

import (
	"sort"
	"time"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// Timeline is an immutable, deterministically ordered view over one
// submission's events. Events are sorted ascending by Created; two events
// with an identical Created timestamp are ordered by event ID string, so the
// same event set always yields the same projection regardless of the order
// the store returned it in.
type Timeline struct {
	events []models.Event
}

// NewTimeline copies and orders the given events.
func NewTimeline(events []models.Event) Timeline {
	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		hi, hj := ordered[i].Header(), ordered[j].Header()
		if !hi.Created.Equal(hj.Created) {
			return hi.Created.Before(hj.Created)
		}
		return hi.ID.String() < hj.ID.String()
	})
	return Timeline{events: ordered}
}

// Events returns the ordered event slice. Callers must not mutate it.
func (t Timeline) Events() []models.Event {
	return t.events
}

// Checks returns the AntivirusCheck events for a file role, oldest first.
// When setID is non-nil only checks carrying the same registration set are
// returned; when nil, only checks without a set id match. The nil branch is
// the degraded legacy pairing kept for backward compatibility (it can pair a
// dependent file from an unrelated upload cycle).
func (t Timeline) Checks(role models.FileRole, setID *id.RegistrationSetID) []*models.AntivirusCheck {
	var checks []*models.AntivirusCheck
	for _, ev := range t.events {
		check, ok := ev.(*models.AntivirusCheck)
		if !ok || check.FileRole != role {
			continue
		}
		if setID != nil {
			if check.RegistrationSetID == nil || *check.RegistrationSetID != *setID {
				continue
			}
		} else if check.RegistrationSetID != nil && role != models.RoleCompanyDetails && role != models.RolePom {
			continue
		}
		checks = append(checks, check)
	}
	return checks
}

// LatestCheck returns the most recent AntivirusCheck for a role, or nil.
func (t Timeline) LatestCheck(role models.FileRole, setID *id.RegistrationSetID) *models.AntivirusCheck {
	checks := t.Checks(role, setID)
	if len(checks) == 0 {
		return nil
	}
	return checks[len(checks)-1]
}

// CheckForFile returns the AntivirusCheck carrying the given file id, or nil.
func (t Timeline) CheckForFile(fileID id.FileID) *models.AntivirusCheck {
	for _, ev := range t.events {
		if check, ok := ev.(*models.AntivirusCheck); ok && check.FileID == fileID {
			return check
		}
	}
	return nil
}

// LatestResultForFile returns the most recent AntivirusResult linked to the
// file, or nil when the scan has not completed yet.
func (t Timeline) LatestResultForFile(fileID id.FileID) *models.AntivirusResult {
	var latest *models.AntivirusResult
	for _, ev := range t.events {
		if result, ok := ev.(*models.AntivirusResult); ok && result.FileID == fileID {
			latest = result
		}
	}
	return latest
}

// ResultForBlob returns the most recent AntivirusResult that produced the
// given blob, or nil. Used to walk a splitter event back to its upload.
func (t Timeline) ResultForBlob(blobName string) *models.AntivirusResult {
	var latest *models.AntivirusResult
	for _, ev := range t.events {
		if result, ok := ev.(*models.AntivirusResult); ok && result.BlobName == blobName {
			latest = result
		}
	}
	return latest
}

// LatestValidationForBlob returns the most recent content-validation event of
// the given kind joined on blob name, or nil when validation is pending.
func (t Timeline) LatestValidationForBlob(kind models.EventKind, blobName string) models.ContentValidation {
	var latest models.ContentValidation
	for _, ev := range t.events {
		if ev.Kind() != kind {
			continue
		}
		validation, ok := ev.(models.ContentValidation)
		if !ok || validation.ContentBlobName() != blobName {
			continue
		}
		latest = validation
	}
	return latest
}

// SplitterForBlob returns the most recent CheckSplitter event for a blob.
func (t Timeline) SplitterForBlob(blobName string) *models.CheckSplitter {
	var latest *models.CheckSplitter
	for _, ev := range t.events {
		if splitter, ok := ev.(*models.CheckSplitter); ok && splitter.BlobName == blobName {
			latest = splitter
		}
	}
	return latest
}

// Splitters returns every CheckSplitter event, oldest first.
func (t Timeline) Splitters() []*models.CheckSplitter {
	var splitters []*models.CheckSplitter
	for _, ev := range t.events {
		if splitter, ok := ev.(*models.CheckSplitter); ok {
			splitters = append(splitters, splitter)
		}
	}
	return splitters
}

// ProducerRowCounts tallies the row-validation outcomes observed for a blob.
func (t Timeline) ProducerRowCounts(blobName string) (observed, invalid, warnings int) {
	for _, ev := range t.events {
		row, ok := ev.(*models.ProducerValidation)
		if !ok || row.BlobName != blobName {
			continue
		}
		observed++
		if !row.IsValid {
			invalid++
		}
		warnings += row.WarningCount
	}
	return observed, invalid, warnings
}

// LatestSubmitted returns the most recent Submitted event, or nil.
func (t Timeline) LatestSubmitted() *models.Submitted {
	var latest *models.Submitted
	for _, ev := range t.events {
		if submitted, ok := ev.(*models.Submitted); ok {
			latest = submitted
		}
	}
	return latest
}

// LatestDecision returns the most recent RegulatorDecision event, or nil.
func (t Timeline) LatestDecision() *models.RegulatorDecision {
	var latest *models.RegulatorDecision
	for _, ev := range t.events {
		if decision, ok := ev.(*models.RegulatorDecision); ok {
			latest = decision
		}
	}
	return latest
}

// HasDecision reports whether any decision with one of the given verdicts exists.
func (t Timeline) HasDecision(verdicts ...models.Decision) bool {
	for _, ev := range t.events {
		decision, ok := ev.(*models.RegulatorDecision)
		if !ok {
			continue
		}
		for _, verdict := range verdicts {
			if decision.Decision == verdict {
				return true
			}
		}
	}
	return false
}

// LatestApprovalAt returns the timestamp of the most recent accepting or
// approving decision, or nil when the regulator has not approved anything.
func (t Timeline) LatestApprovalAt() *time.Time {
	var latest *time.Time
	for _, ev := range t.events {
		decision, ok := ev.(*models.RegulatorDecision)
		if !ok {
			continue
		}
		if decision.Decision == models.DecisionAccepted || decision.Decision == models.DecisionApproved {
			at := decision.Created
			latest = &at
		}
	}
	return latest
}

// LatestFeePayment returns the most recent FeePayment event, or nil.
func (t Timeline) LatestFeePayment() *models.FeePayment {
	var latest *models.FeePayment
	for _, ev := range t.events {
		if payment, ok := ev.(*models.FeePayment); ok {
			latest = payment
		}
	}
	return latest
}

// FirstApplicationSubmitted returns the earliest ApplicationSubmitted event,
// or nil when the application has never been lodged.
func (t Timeline) FirstApplicationSubmitted() *models.ApplicationSubmitted {
	for _, ev := range t.events {
		if app, ok := ev.(*models.ApplicationSubmitted); ok {
			return app
		}
	}
	return nil
}
