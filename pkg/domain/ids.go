// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "consign/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a FileID where a SubmissionID is expected.
type (
	SubmissionID       uuid.UUID
	OrganisationID     uuid.UUID
	ComplianceSchemeID uuid.UUID
	FileID             uuid.UUID
	EventID            uuid.UUID
	RegistrationSetID  uuid.UUID
	UserID             uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseSubmissionID(s string) (SubmissionID, error) {
	id, err := parseUUID(s, "submission ID")
	return SubmissionID(id), err
}

func ParseOrganisationID(s string) (OrganisationID, error) {
	id, err := parseUUID(s, "organisation ID")
	return OrganisationID(id), err
}

func ParseComplianceSchemeID(s string) (ComplianceSchemeID, error) {
	id, err := parseUUID(s, "compliance scheme ID")
	return ComplianceSchemeID(id), err
}

func ParseFileID(s string) (FileID, error) {
	id, err := parseUUID(s, "file ID")
	return FileID(id), err
}

func ParseEventID(s string) (EventID, error) {
	id, err := parseUUID(s, "event ID")
	return EventID(id), err
}

func ParseRegistrationSetID(s string) (RegistrationSetID, error) {
	id, err := parseUUID(s, "registration set ID")
	return RegistrationSetID(id), err
}

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

// String methods - for logging and debugging.

func (id SubmissionID) String() string       { return uuid.UUID(id).String() }
func (id OrganisationID) String() string     { return uuid.UUID(id).String() }
func (id ComplianceSchemeID) String() string { return uuid.UUID(id).String() }
func (id FileID) String() string             { return uuid.UUID(id).String() }
func (id EventID) String() string            { return uuid.UUID(id).String() }
func (id RegistrationSetID) String() string  { return uuid.UUID(id).String() }
func (id UserID) String() string             { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id SubmissionID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id OrganisationID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ComplianceSchemeID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id FileID) IsNil() bool             { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool            { return uuid.UUID(id) == uuid.Nil }
func (id RegistrationSetID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool             { return uuid.UUID(id) == uuid.Nil }

// New functions - generate fresh identifiers at creation points.

func NewSubmissionID() SubmissionID { return SubmissionID(uuid.New()) }
func NewFileID() FileID             { return FileID(uuid.New()) }
func NewEventID() EventID           { return EventID(uuid.New()) }

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	return id, nil
}
