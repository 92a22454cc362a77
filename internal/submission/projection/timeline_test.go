package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

func TestTimelineOrdersByCreated(t *testing.T) {
	log := newEventLog()
	first := log.check(models.RoleCompanyDetails, "first.csv", nil)
	second := log.check(models.RoleCompanyDetails, "second.csv", nil)
	third := log.check(models.RoleCompanyDetails, "third.csv", nil)

	// Feed events in reverse of their Created order.
	reversed := []models.Event{third, second, first}
	timeline := NewTimeline(reversed)

	events := timeline.Events()
	require.Len(t, events, 3)
	assert.Equal(t, first.FileID, events[0].(*models.AntivirusCheck).FileID)
	assert.Equal(t, third.FileID, events[2].(*models.AntivirusCheck).FileID)
}

func TestTimelineTieBreakByEventID(t *testing.T) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	a := &models.AntivirusCheck{FileID: id.NewFileID(), FileName: "a.csv", FileRole: models.RoleCompanyDetails}
	b := &models.AntivirusCheck{FileID: id.NewFileID(), FileName: "b.csv", FileRole: models.RoleCompanyDetails}
	a.Header().ID = id.EventID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	b.Header().ID = id.EventID(uuid.MustParse("00000000-0000-0000-0000-000000000002"))
	a.Header().Created = created
	b.Header().Created = created

	// The larger event id wins the tie regardless of input order.
	for _, input := range [][]models.Event{{a, b}, {b, a}} {
		timeline := NewTimeline(input)
		latest := timeline.LatestCheck(models.RoleCompanyDetails, nil)
		require.NotNil(t, latest)
		assert.Equal(t, "b.csv", latest.FileName)
	}
}

func TestChecksScopedToRegistrationSet(t *testing.T) {
	log := newEventLog()
	setA := setIDRef()
	setB := setIDRef()
	inA := log.check(models.RoleBrands, "brands-a.csv", setA)
	log.check(models.RoleBrands, "brands-b.csv", setB)

	checks := log.timeline().Checks(models.RoleBrands, setA)
	require.Len(t, checks, 1)
	assert.Equal(t, inA.FileID, checks[0].FileID)
}

func TestChecksNilSetMatchesOnlyUnscopedDependents(t *testing.T) {
	log := newEventLog()
	legacy := log.check(models.RoleBrands, "legacy.csv", nil)
	log.check(models.RoleBrands, "scoped.csv", setIDRef())

	checks := log.timeline().Checks(models.RoleBrands, nil)
	require.Len(t, checks, 1)
	assert.Equal(t, legacy.FileID, checks[0].FileID)
}

func TestChecksNilSetUnrestrictedForCompanyDetails(t *testing.T) {
	log := newEventLog()
	log.check(models.RoleCompanyDetails, "unscoped.csv", nil)
	log.check(models.RoleCompanyDetails, "scoped.csv", setIDRef())

	checks := log.timeline().Checks(models.RoleCompanyDetails, nil)
	assert.Len(t, checks, 2)
}

func TestProducerRowCounts(t *testing.T) {
	log := newEventLog()
	log.rows("blob-1", 3, 1)
	log.add(&models.ProducerValidation{BlobName: "blob-1", IsValid: true, WarningCount: 2})
	log.rows("blob-other", 5, 0)

	observed, invalid, warnings := log.timeline().ProducerRowCounts("blob-1")
	assert.Equal(t, 5, observed)
	assert.Equal(t, 1, invalid)
	assert.Equal(t, 2, warnings)
}
