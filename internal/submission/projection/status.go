package projection

import (
	"fmt"
	"time"

	"consign/internal/submission/models"
)

// StatusInput carries the derived facts the state machine needs. It is built
// by the projectors, never stored.
type StatusInput struct {
	IsSubmitted       bool
	LatestValidFileAt *time.Time
	LatestSubmittedAt *time.Time
	Decision          *models.RegulatorDecision
}

// StatusResult is the derived lifecycle state plus whether a regulator
// decision was present but superseded by a newer valid upload.
type StatusResult struct {
	Status        models.ApplicationStatus
	DecisionStale bool
}

// DeriveApplicationStatus computes the externally visible status enum.
//
// A regulator decision overrides the upload/submit states unless it predates
// the latest valid file: a new upload after a decision restarts the cycle, so
// the stale decision no longer describes the current file state.
func DeriveApplicationStatus(in StatusInput) StatusResult {
	base := models.StatusNotStarted
	if in.LatestValidFileAt != nil {
		base = models.StatusFileUploaded
	}
	if in.IsSubmitted && in.LatestSubmittedAt != nil {
		if in.LatestValidFileAt == nil || in.LatestSubmittedAt.After(*in.LatestValidFileAt) {
			base = models.StatusSubmittedToRegulator
		} else {
			base = models.StatusSubmittedAndHasRecentFileUpload
		}
	}

	if in.Decision == nil {
		return StatusResult{Status: base}
	}
	if in.LatestValidFileAt != nil && in.Decision.Created.Before(*in.LatestValidFileAt) {
		return StatusResult{Status: base, DecisionStale: true}
	}

	switch in.Decision.Decision {
	case models.DecisionAccepted:
		return StatusResult{Status: models.StatusAcceptedByRegulator}
	case models.DecisionApproved:
		return StatusResult{Status: models.StatusApprovedByRegulator}
	case models.DecisionRejected:
		return StatusResult{Status: models.StatusRejectedByRegulator}
	case models.DecisionCancelled:
		return StatusResult{Status: models.StatusCancelledByRegulator}
	case models.DecisionQueried:
		return StatusResult{Status: models.StatusQueriedByRegulator}
	default:
		// Decisions are validated at append time, so an unknown verdict here
		// is a genuine defect, not bad input.
		panic(fmt.Sprintf("unhandled regulator decision %q", in.Decision.Decision))
	}
}
