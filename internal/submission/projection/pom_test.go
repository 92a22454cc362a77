package projection

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"consign/internal/submission/models"
)

type PomSuite struct {
	suite.Suite
}

func TestPomSuite(t *testing.T) {
	suite.Run(t, new(PomSuite))
}

func (s *PomSuite) TestEmptyLog() {
	sub := producerSubmission()
	status := ProjectPom(sub, NewTimeline(nil))

	s.Nil(status.Upload)
	s.False(status.ValidationPass)
	s.Equal(models.StatusNotStarted, status.Status)
}

func (s *PomSuite) TestFullRowSetPasses() {
	sub := producerSubmission()
	log := newEventLog()
	log.validPomCycle("pom.csv", "blob-1", 3)

	status := ProjectPom(sub, log.timeline())

	s.Require().NotNil(status.Upload)
	s.Equal(3, status.ExpectedRowCount)
	s.Equal(3, status.ValidatedRowCount)
	s.Zero(status.InvalidRowCount)
	s.True(status.ValidationPass)
	s.Require().NotNil(status.LastUploadedValidFile)
	s.Equal("pom.csv", status.LastUploadedValidFile.FileName)
}

func (s *PomSuite) TestMissingRowsBlockPass() {
	sub := producerSubmission()
	log := newEventLog()
	check := log.check(models.RolePom, "pom.csv", nil)
	log.scanOK(check.FileID, "blob-1", true)
	log.splitter("blob-1", 5)
	log.rows("blob-1", 3, 0)

	status := ProjectPom(sub, log.timeline())

	s.Equal(5, status.ExpectedRowCount)
	s.Equal(3, status.ValidatedRowCount)
	s.False(status.ValidationPass, "an incomplete row set is still in flight, not valid")
}

func (s *PomSuite) TestInvalidRowBlocksPass() {
	sub := producerSubmission()
	log := newEventLog()
	check := log.check(models.RolePom, "pom.csv", nil)
	log.scanOK(check.FileID, "blob-1", true)
	log.splitter("blob-1", 4)
	log.rows("blob-1", 3, 1)

	status := ProjectPom(sub, log.timeline())

	s.Equal(4, status.ValidatedRowCount)
	s.Equal(1, status.InvalidRowCount)
	s.False(status.ValidationPass)
}

func (s *PomSuite) TestZeroExpectedRowsNeverPasses() {
	sub := producerSubmission()
	log := newEventLog()
	check := log.check(models.RolePom, "pom.csv", nil)
	log.scanOK(check.FileID, "blob-1", true)
	log.splitter("blob-1", 0)

	status := ProjectPom(sub, log.timeline())

	s.False(status.ValidationPass)
}

func (s *PomSuite) TestNoRowValidationRequested() {
	sub := producerSubmission()
	log := newEventLog()
	check := log.check(models.RolePom, "pom.csv", nil)
	log.scanOK(check.FileID, "blob-1", false)

	status := ProjectPom(sub, log.timeline())

	s.True(status.ValidationPass)
}

func (s *PomSuite) TestScanFailure() {
	sub := producerSubmission()
	log := newEventLog()
	check := log.check(models.RolePom, "pom.csv", nil)
	log.scanFailed(check.FileID, "virus found")

	status := ProjectPom(sub, log.timeline())

	s.Require().NotNil(status.Upload)
	s.False(status.ValidationPass)
	s.Nil(status.LastUploadedValidFile)
}

func (s *PomSuite) TestFallbackToEarlierCleanCycle() {
	sub := producerSubmission()
	log := newEventLog()

	log.validPomCycle("good-v1.csv", "blob-v1", 2)

	bad := log.check(models.RolePom, "bad-v2.csv", nil)
	log.scanOK(bad.FileID, "blob-v2", true)
	log.splitter("blob-v2", 3)
	log.rows("blob-v2", 2, 1)

	status := ProjectPom(sub, log.timeline())

	s.Require().NotNil(status.Upload)
	s.Equal("bad-v2.csv", status.Upload.FileName)
	s.False(status.ValidationPass)

	s.Require().NotNil(status.LastUploadedValidFile)
	s.Equal("good-v1.csv", status.LastUploadedValidFile.FileName)
	s.Equal(models.StatusFileUploaded, status.Status)
}

func (s *PomSuite) TestSubmitAndDecision() {
	sub := producerSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	check := log.validPomCycle("pom.csv", "blob-1", 2)
	log.submitted(check.FileID)
	log.decision(models.DecisionRejected, "totals do not reconcile")

	status := ProjectPom(sub, log.timeline())

	s.Equal(models.StatusRejectedByRegulator, status.Status)
	s.Equal("totals do not reconcile", status.RegulatorComments)
	s.Require().NotNil(status.LastSubmittedFile)
	s.Equal("pom.csv", status.LastSubmittedFile.FileName)
}

func (s *PomSuite) TestStaleDecisionDropsComments() {
	sub := producerSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	first := log.validPomCycle("v1.csv", "blob-v1", 2)
	log.submitted(first.FileID)
	log.decision(models.DecisionQueried, "please clarify row 7")
	log.validPomCycle("v2.csv", "blob-v2", 2)

	status := ProjectPom(sub, log.timeline())

	s.Equal(models.StatusSubmittedAndHasRecentFileUpload, status.Status)
	s.Empty(status.RegulatorComments)
}
