package models

import (
	"encoding/json"
	"time"

	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
)

// eventFactories is the exhaustive kind-dispatch table. Every EventKind must
// appear here; an event whose kind is missing is a structural error and its
// append is rejected, never silently dropped.
var eventFactories = map[EventKind]func() Event{
	KindAntivirusCheck:         func() Event { return &AntivirusCheck{} },
	KindAntivirusResult:        func() Event { return &AntivirusResult{} },
	KindCheckSplitter:          func() Event { return &CheckSplitter{} },
	KindProducerValidation:     func() Event { return &ProducerValidation{} },
	KindRegistrationValidation: func() Event { return &RegistrationValidation{} },
	KindBrandValidation:        func() Event { return &BrandValidation{} },
	KindPartnerValidation:      func() Event { return &PartnerValidation{} },
	KindSubmitted:              func() Event { return &Submitted{} },
	KindRegulatorDecision:      func() Event { return &RegulatorDecision{} },
	KindFeePayment:             func() Event { return &FeePayment{} },
	KindApplicationSubmitted:   func() Event { return &ApplicationSubmitted{} },
}

// KnownKind reports whether the kind appears in the dispatch table.
func KnownKind(kind EventKind) bool {
	_, ok := eventFactories[kind]
	return ok
}

// EncodePayload serializes the kind-specific fields of an event. Envelope
// fields are excluded; the store persists them as columns.
func EncodePayload(ev Event) ([]byte, error) {
	if !KnownKind(ev.Kind()) {
		return nil, dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+string(ev.Kind()))
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode event payload")
	}
	return payload, nil
}

// DecodeEvent rebuilds a concrete event from its stored kind, envelope
// columns, and JSON payload.
func DecodeEvent(kind EventKind, eventID id.EventID, submissionID id.SubmissionID, created time.Time, payload []byte) (Event, error) {
	factory, ok := eventFactories[kind]
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnknownEventKind, "unknown event kind: "+string(kind))
	}
	ev := factory()
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, ev); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode event payload")
		}
	}
	header := ev.Header()
	header.ID = eventID
	header.SubmissionID = submissionID
	header.Created = created
	return ev, nil
}
