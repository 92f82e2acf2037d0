package request

import (
	"encoding/json"
	"strings"
)

// StatusPatchRequest is the shared payload for every PATCH .../{id}/status
// route. MPPayload is only honored by the invoice PAGO path and is forwarded
// raw to the payment gateway.
type StatusPatchRequest struct {
	Status    string          `json:"status" binding:"required"`
	Notes     string          `json:"notes"`
	MPPayload json.RawMessage `json:"mp_payload,omitempty"`
}

func (r StatusPatchRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
