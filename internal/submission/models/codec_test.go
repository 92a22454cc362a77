package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

func TestEncodePayloadExcludesEnvelope(t *testing.T) {
	ev := &AntivirusCheck{
		FileID:   id.NewFileID(),
		FileName: "company.csv",
		FileRole: RoleCompanyDetails,
	}
	ev.Header().ID = id.NewEventID()
	ev.Header().SubmissionID = id.NewSubmissionID()
	ev.Header().Created = time.Now()

	payload, err := EncodePayload(ev)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), ev.Header().ID.String(),
		"envelope columns must not leak into the payload")
	assert.Contains(t, string(payload), "company.csv")
}

func TestDecodeEventRestoresEnvelope(t *testing.T) {
	original := &RegulatorDecision{
		Decision:                    DecisionApproved,
		Comments:                    "complete",
		RegistrationReferenceNumber: "REG-7",
	}
	payload, err := EncodePayload(original)
	require.NoError(t, err)

	eventID := id.NewEventID()
	subID := id.NewSubmissionID()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	decoded, err := DecodeEvent(KindRegulatorDecision, eventID, subID, created, payload)
	require.NoError(t, err)

	decision, ok := decoded.(*RegulatorDecision)
	require.True(t, ok)
	assert.Equal(t, DecisionApproved, decision.Decision)
	assert.Equal(t, "REG-7", decision.RegistrationReferenceNumber)
	assert.Equal(t, eventID, decision.Header().ID)
	assert.Equal(t, subID, decision.Header().SubmissionID)
	assert.Equal(t, created, decision.Header().Created)
}

func TestDecodeEventUnknownKind(t *testing.T) {
	_, err := DecodeEvent("mystery", id.NewEventID(), id.NewSubmissionID(), time.Now(), nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownEventKind))
}

type unregisteredEvent struct{ Envelope }

func (e *unregisteredEvent) Kind() EventKind   { return "unregistered" }
func (e *unregisteredEvent) Header() *Envelope { return &e.Envelope }

func TestEncodePayloadUnknownKind(t *testing.T) {
	_, err := EncodePayload(&unregisteredEvent{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownEventKind))
}

func TestEveryKindDispatches(t *testing.T) {
	kinds := []EventKind{
		KindAntivirusCheck, KindAntivirusResult, KindCheckSplitter,
		KindProducerValidation, KindRegistrationValidation, KindBrandValidation,
		KindPartnerValidation, KindSubmitted, KindRegulatorDecision,
		KindFeePayment, KindApplicationSubmitted,
	}
	for _, kind := range kinds {
		require.True(t, KnownKind(kind), "kind %q missing from the dispatch table", kind)
		ev, err := DecodeEvent(kind, id.NewEventID(), id.NewSubmissionID(), time.Now(), nil)
		require.NoError(t, err)
		assert.Equal(t, kind, ev.Kind())
	}
}
