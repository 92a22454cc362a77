package projection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"consign/internal/submission/models"
)

type RegistrationSuite struct {
	suite.Suite
}

func TestRegistrationSuite(t *testing.T) {
	suite.Run(t, new(RegistrationSuite))
}

func (s *RegistrationSuite) TestEmptyLog() {
	sub := registrationSubmission()
	status := ProjectRegistration(sub, NewTimeline(nil))

	s.Equal(sub.ID, status.SubmissionID)
	s.Nil(status.CompanyDetails)
	s.False(status.ValidationPass)
	s.Equal(models.StatusNotStarted, status.Status)
}

func (s *RegistrationSuite) TestCompanyOnlyPass() {
	sub := registrationSubmission()
	log := newEventLog()
	log.validCompanyCycle("company.csv", "blob-1")

	status := ProjectRegistration(sub, log.timeline())

	s.Require().NotNil(status.CompanyDetails)
	s.True(status.CompanyDetails.IsValid)
	s.True(status.ValidationPass)
	s.Equal(models.StatusFileUploaded, status.Status)
	s.Require().NotNil(status.LastUploadedValidFiles)
	s.Equal("company.csv", status.LastUploadedValidFiles.CompanyDetailsFileName)
}

func (s *RegistrationSuite) TestRequiredBrandsFileMissing() {
	sub := registrationSubmission()
	log := newEventLog()
	check := log.check(models.RoleCompanyDetails, "company.csv", nil)
	log.scanOK(check.FileID, "blob-1", true)
	log.registrationValidation("blob-1", true, 0, true, false)

	status := ProjectRegistration(sub, log.timeline())

	s.True(status.RequiresBrandsFile)
	s.Nil(status.Brands)
	s.False(status.ValidationPass, "a required dependent that was never uploaded fails the conjunction")
	s.Nil(status.LastUploadedValidFiles)
}

func (s *RegistrationSuite) TestFullSetWithDependents() {
	sub := registrationSubmission()
	log := newEventLog()
	setID := setIDRef()

	company := log.check(models.RoleCompanyDetails, "company.csv", setID)
	log.scanOK(company.FileID, "blob-company", true)
	log.registrationValidation("blob-company", true, 0, true, true)

	brands := log.check(models.RoleBrands, "brands.csv", setID)
	log.scanOK(brands.FileID, "blob-brands", true)
	log.brandValidation("blob-brands", true, 0, 0)

	partnerships := log.check(models.RolePartnerships, "partners.csv", setID)
	log.scanOK(partnerships.FileID, "blob-partners", true)
	log.partnerValidation("blob-partners", true, 0, 2)

	status := ProjectRegistration(sub, log.timeline())

	s.True(status.ValidationPass)
	s.True(status.HasWarnings)
	s.Zero(status.ErrorCount)
	s.Require().NotNil(status.LastUploadedValidFiles)
	s.Equal("company.csv", status.LastUploadedValidFiles.CompanyDetailsFileName)
	s.Equal("brands.csv", status.LastUploadedValidFiles.BrandsFileName)
	s.Equal("partners.csv", status.LastUploadedValidFiles.PartnershipsFileName)
}

func (s *RegistrationSuite) TestDependentFromOtherSetNotPaired() {
	sub := registrationSubmission()
	log := newEventLog()
	setID := setIDRef()

	company := log.check(models.RoleCompanyDetails, "company.csv", setID)
	log.scanOK(company.FileID, "blob-company", true)
	log.registrationValidation("blob-company", true, 0, true, false)

	// Brands file from an unrelated upload cycle.
	stray := log.check(models.RoleBrands, "stray-brands.csv", setIDRef())
	log.scanOK(stray.FileID, "blob-stray", true)
	log.brandValidation("blob-stray", true, 0, 0)

	status := ProjectRegistration(sub, log.timeline())

	s.Nil(status.Brands)
	s.False(status.ValidationPass)
}

func (s *RegistrationSuite) TestLegacyPairingWithoutSetIDs() {
	sub := registrationSubmission()
	log := newEventLog()

	company := log.check(models.RoleCompanyDetails, "company.csv", nil)
	log.scanOK(company.FileID, "blob-company", true)
	log.registrationValidation("blob-company", true, 0, true, false)

	brands := log.check(models.RoleBrands, "brands.csv", nil)
	log.scanOK(brands.FileID, "blob-brands", true)
	log.brandValidation("blob-brands", true, 0, 0)

	status := ProjectRegistration(sub, log.timeline())

	s.Require().NotNil(status.Brands)
	s.True(status.ValidationPass)
}

func (s *RegistrationSuite) TestFallbackToEarlierValidCycle() {
	sub := registrationSubmission()
	log := newEventLog()

	log.validCompanyCycle("good-v1.csv", "blob-v1")

	bad := log.check(models.RoleCompanyDetails, "bad-v2.csv", nil)
	log.scanOK(bad.FileID, "blob-v2", true)
	log.registrationValidation("blob-v2", false, 7, false, false)

	status := ProjectRegistration(sub, log.timeline())

	s.Require().NotNil(status.CompanyDetails)
	s.Equal("bad-v2.csv", status.CompanyDetails.FileName)
	s.False(status.ValidationPass)
	s.Equal(7, status.ErrorCount)

	s.Require().NotNil(status.LastUploadedValidFiles, "the older known-good cycle survives a failed reupload")
	s.Equal("good-v1.csv", status.LastUploadedValidFiles.CompanyDetailsFileName)
	s.Equal(models.StatusFileUploaded, status.Status)
}

func (s *RegistrationSuite) TestSubmittedToRegulator() {
	sub := registrationSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	check := log.validCompanyCycle("company.csv", "blob-1")
	log.submitted(check.FileID)

	status := ProjectRegistration(sub, log.timeline())

	s.Equal(models.StatusSubmittedToRegulator, status.Status)
	s.Require().NotNil(status.LastSubmittedFiles)
	s.Equal(check.FileID, status.LastSubmittedFiles.FileID)
	s.Equal("company.csv", status.LastSubmittedFiles.FileName)
}

func (s *RegistrationSuite) TestNewUploadAfterSubmit() {
	sub := registrationSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	first := log.validCompanyCycle("v1.csv", "blob-v1")
	log.submitted(first.FileID)
	log.validCompanyCycle("v2.csv", "blob-v2")

	status := ProjectRegistration(sub, log.timeline())

	s.Equal(models.StatusSubmittedAndHasRecentFileUpload, status.Status)
}

func (s *RegistrationSuite) TestDecisionOverridesStatus() {
	sub := registrationSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	check := log.validCompanyCycle("company.csv", "blob-1")
	log.submitted(check.FileID)
	decision := log.decision(models.DecisionApproved, "looks complete")
	decision.RegistrationReferenceNumber = "REG-42"

	status := ProjectRegistration(sub, log.timeline())

	s.Equal(models.StatusApprovedByRegulator, status.Status)
	s.Equal("looks complete", status.RegulatorComments)
	s.Equal("REG-42", status.RegistrationReferenceNumber)
}

func (s *RegistrationSuite) TestStaleDecisionRollsBack() {
	sub := registrationSubmission()
	sub.IsSubmitted = true
	log := newEventLog()

	first := log.validCompanyCycle("v1.csv", "blob-v1")
	log.submitted(first.FileID)
	log.feePayment()
	log.applicationSubmitted("APP-1", log.now)
	log.decision(models.DecisionApproved, "approved v1")

	// A newer valid upload restarts the cycle.
	log.validCompanyCycle("v2.csv", "blob-v2")

	status := ProjectRegistration(sub, log.timeline())

	s.Equal(models.StatusSubmittedAndHasRecentFileUpload, status.Status,
		"a decision made before the latest valid upload no longer applies")
	s.Empty(status.RegulatorComments)
	s.Empty(status.RegistrationReferenceNumber)
	s.Nil(status.FeePayment, "payment from the resolved cycle is cleared")
	s.Nil(status.ApplicationSubmitted, "application facts from the resolved cycle are cleared")
}

func (s *RegistrationSuite) TestFeeAndApplicationFactsSurvivePostDecision() {
	sub := registrationSubmission()
	sub.IsSubmitted = true
	log := newEventLog()
	check := log.validCompanyCycle("company.csv", "blob-1")
	log.submitted(check.FileID)
	log.decision(models.DecisionAccepted, "")
	log.feePayment()
	log.applicationSubmitted("APP-1", log.now)

	status := ProjectRegistration(sub, log.timeline())

	s.Equal(models.StatusAcceptedByRegulator, status.Status)
	s.NotNil(status.FeePayment)
	s.NotNil(status.ApplicationSubmitted)
	s.Equal("APP-1", status.ApplicationSubmitted.ApplicationReferenceNumber)
}

func (s *RegistrationSuite) TestProjectionDeterministicUnderShuffle() {
	sub := registrationSubmission()
	log := newEventLog()
	setID := setIDRef()
	company := log.check(models.RoleCompanyDetails, "company.csv", setID)
	log.scanOK(company.FileID, "blob-company", true)
	log.registrationValidation("blob-company", true, 0, true, false)
	brands := log.check(models.RoleBrands, "brands.csv", setID)
	log.scanOK(brands.FileID, "blob-brands", true)
	log.brandValidation("blob-brands", true, 0, 0)

	want := ProjectRegistration(sub, log.timeline())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Event, len(log.events))
		copy(shuffled, log.events)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ProjectRegistration(sub, NewTimeline(shuffled))
		s.Equal(want, got, "projection must not depend on store return order")
	}
}
