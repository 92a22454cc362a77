package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"consign/internal/submission/models"
)

func TestDeriveApplicationStatus(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	at := func(offset time.Duration) *time.Time {
		v := base.Add(offset)
		return &v
	}
	decisionAt := func(verdict models.Decision, offset time.Duration) *models.RegulatorDecision {
		d := &models.RegulatorDecision{Decision: verdict}
		d.Header().Created = base.Add(offset)
		return d
	}

	tests := []struct {
		name      string
		in        StatusInput
		want      models.ApplicationStatus
		wantStale bool
	}{
		{
			name: "nothing happened",
			in:   StatusInput{},
			want: models.StatusNotStarted,
		},
		{
			name: "valid file only",
			in:   StatusInput{LatestValidFileAt: at(0)},
			want: models.StatusFileUploaded,
		},
		{
			name: "submitted after upload",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
			},
			want: models.StatusSubmittedToRegulator,
		},
		{
			name: "submitted with no surviving valid file",
			in: StatusInput{
				IsSubmitted:       true,
				LatestSubmittedAt: at(time.Hour),
			},
			want: models.StatusSubmittedToRegulator,
		},
		{
			name: "new upload after submit",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(2 * time.Hour),
				LatestSubmittedAt: at(time.Hour),
			},
			want: models.StatusSubmittedAndHasRecentFileUpload,
		},
		{
			name: "accepted",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionAccepted, 2*time.Hour),
			},
			want: models.StatusAcceptedByRegulator,
		},
		{
			name: "approved",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionApproved, 2*time.Hour),
			},
			want: models.StatusApprovedByRegulator,
		},
		{
			name: "rejected",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionRejected, 2*time.Hour),
			},
			want: models.StatusRejectedByRegulator,
		},
		{
			name: "cancelled",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionCancelled, 2*time.Hour),
			},
			want: models.StatusCancelledByRegulator,
		},
		{
			name: "queried",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(0),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionQueried, 2*time.Hour),
			},
			want: models.StatusQueriedByRegulator,
		},
		{
			name: "decision without any valid file still applies",
			in: StatusInput{
				IsSubmitted:       true,
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionApproved, 2*time.Hour),
			},
			want: models.StatusApprovedByRegulator,
		},
		{
			name: "stale decision rolls back to upload state",
			in: StatusInput{
				IsSubmitted:       true,
				LatestValidFileAt: at(3 * time.Hour),
				LatestSubmittedAt: at(time.Hour),
				Decision:          decisionAt(models.DecisionApproved, 2*time.Hour),
			},
			want:      models.StatusSubmittedAndHasRecentFileUpload,
			wantStale: true,
		},
		{
			name: "stale decision before submit",
			in: StatusInput{
				LatestValidFileAt: at(3 * time.Hour),
				Decision:          decisionAt(models.DecisionRejected, 2*time.Hour),
			},
			want:      models.StatusFileUploaded,
			wantStale: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveApplicationStatus(tt.in)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.wantStale, got.DecisionStale)
		})
	}
}
