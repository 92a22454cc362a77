package projection

import (
	"time"

	"github.com/google/uuid"

	"consign/internal/submission/models"
	id "consign/pkg/domain"
)

// eventLog builds ordered event fixtures. Each appended event gets a fresh
// event id and a timestamp one minute after the previous one, mirroring how
// the store stamps events at append time.
type eventLog struct {
	now    time.Time
	events []models.Event
}

func newEventLog() *eventLog {
	return &eventLog{now: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
}

func (l *eventLog) timeline() Timeline {
	return NewTimeline(l.events)
}

func (l *eventLog) add(ev models.Event) {
	h := ev.Header()
	h.ID = id.NewEventID()
	h.Created = l.now
	l.now = l.now.Add(time.Minute)
	l.events = append(l.events, ev)
}

func (l *eventLog) check(role models.FileRole, fileName string, setID *id.RegistrationSetID) *models.AntivirusCheck {
	ev := &models.AntivirusCheck{
		FileID:            id.NewFileID(),
		FileName:          fileName,
		FileRole:          role,
		UploadedBy:        id.UserID(uuid.New()),
		RegistrationSetID: setID,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) scanOK(fileID id.FileID, blobName string, requiresRowValidation bool) *models.AntivirusResult {
	ev := &models.AntivirusResult{
		FileID:                fileID,
		ScanResult:            models.ScanSuccess,
		BlobName:              blobName,
		RequiresRowValidation: requiresRowValidation,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) scanFailed(fileID id.FileID, errs ...string) *models.AntivirusResult {
	ev := &models.AntivirusResult{
		FileID:     fileID,
		ScanResult: models.ScanFailed,
		Errors:     errs,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) registrationValidation(blobName string, valid bool, errors int, brands, partnerships bool) *models.RegistrationValidation {
	ev := &models.RegistrationValidation{
		BlobName:                 blobName,
		IsValid:                  valid,
		ErrorCount:               errors,
		RequiresBrandsFile:       brands,
		RequiresPartnershipsFile: partnerships,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) brandValidation(blobName string, valid bool, errors, warnings int) *models.BrandValidation {
	ev := &models.BrandValidation{
		BlobName:     blobName,
		IsValid:      valid,
		ErrorCount:   errors,
		WarningCount: warnings,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) partnerValidation(blobName string, valid bool, errors, warnings int) *models.PartnerValidation {
	ev := &models.PartnerValidation{
		BlobName:     blobName,
		IsValid:      valid,
		ErrorCount:   errors,
		WarningCount: warnings,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) splitter(blobName string, dataCount int, errs ...string) *models.CheckSplitter {
	ev := &models.CheckSplitter{
		BlobName:  blobName,
		DataCount: dataCount,
		Errors:    errs,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) rows(blobName string, valid, invalid int) {
	for i := 0; i < valid; i++ {
		l.add(&models.ProducerValidation{BlobName: blobName, IsValid: true})
	}
	for i := 0; i < invalid; i++ {
		l.add(&models.ProducerValidation{BlobName: blobName, IsValid: false, ErrorCount: 1})
	}
}

func (l *eventLog) submitted(fileID id.FileID) *models.Submitted {
	ev := &models.Submitted{
		FileID:      fileID,
		SubmittedBy: id.UserID(uuid.New()),
	}
	l.add(ev)
	return ev
}

func (l *eventLog) decision(verdict models.Decision, comments string) *models.RegulatorDecision {
	ev := &models.RegulatorDecision{
		Decision: verdict,
		Comments: comments,
	}
	l.add(ev)
	return ev
}

func (l *eventLog) feePayment() *models.FeePayment {
	ev := &models.FeePayment{
		PaymentMethod:   "card",
		PaymentStatus:   "paid",
		ReferenceNumber: "PAY-001",
	}
	l.add(ev)
	return ev
}

func (l *eventLog) applicationSubmitted(reference string, submissionDate time.Time) *models.ApplicationSubmitted {
	ev := &models.ApplicationSubmitted{
		ApplicationReferenceNumber: reference,
		SubmissionDate:             submissionDate,
	}
	l.add(ev)
	return ev
}

// validCompanyCycle appends a fully valid company-details chain with no
// dependent files required and returns its check event.
func (l *eventLog) validCompanyCycle(fileName, blobName string) *models.AntivirusCheck {
	check := l.check(models.RoleCompanyDetails, fileName, nil)
	l.scanOK(check.FileID, blobName, true)
	l.registrationValidation(blobName, true, 0, false, false)
	return check
}

// validPomCycle appends a fully valid producer chain with rowCount clean rows
// and returns its check event.
func (l *eventLog) validPomCycle(fileName, blobName string, rowCount int) *models.AntivirusCheck {
	check := l.check(models.RolePom, fileName, nil)
	l.scanOK(check.FileID, blobName, true)
	l.splitter(blobName, rowCount)
	l.rows(blobName, rowCount, 0)
	return check
}

func registrationSubmission() *models.Submission {
	return &models.Submission{
		ID:               id.NewSubmissionID(),
		OrganisationID:   id.OrganisationID(uuid.New()),
		SubmissionType:   models.SubmissionTypeRegistration,
		SubmissionPeriod: "January to June 2026",
		Created:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func producerSubmission() *models.Submission {
	sub := registrationSubmission()
	sub.SubmissionType = models.SubmissionTypeProducer
	return sub
}

func complianceSchemeSubmission() *models.Submission {
	sub := registrationSubmission()
	schemeID := id.ComplianceSchemeID(uuid.New())
	sub.ComplianceSchemeID = &schemeID
	return sub
}

func setIDRef() *id.RegistrationSetID {
	setID := id.RegistrationSetID(uuid.New())
	return &setID
}
