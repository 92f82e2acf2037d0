package response

import (
	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase"
)

// TransitionResponse wraps any committed status change. NotificationError is
// populated when the change persisted but the counterpart notification could
// not be enqueued; callers can retry delivery without repeating the
// transition.
type TransitionResponse struct {
	Kind              string `json:"kind"`
	RecordID          string `json:"record_id"`
	PreviousStatus    string `json:"previous_status"`
	Status            string `json:"status"`
	Record            any    `json:"record"`
	NotificationError string `json:"notification_error,omitempty"`
}

func FromTransition(res usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{
		Kind:           string(res.Record.RecordKind()),
		RecordID:       res.Record.RecordID(),
		PreviousStatus: string(res.From),
		Status:         string(res.To),
	}
	if res.NotificationErr != nil {
		out.NotificationError = res.NotificationErr.Error()
	}

	switch rec := res.Record.(type) {
	case entities.Project:
		out.Record = FromProject(rec)
	case entities.Budget:
		out.Record = FromBudget(rec)
	case entities.Appointment:
		out.Record = FromAppointment(rec)
	case entities.Invoice:
		out.Record = FromInvoice(rec)
	default:
		out.Record = rec
	}
	return out
}
