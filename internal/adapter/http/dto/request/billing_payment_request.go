package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentBody = errors.New("request body is not valid json")
	ErrEmptyMPPayload     = errors.New("mp_payload cannot be empty")
)

// BillingPaymentCreateRequest is the wrapped form of the payment route body.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// The route also accepts the Mercado Pago payload unwrapped.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

// ParseMPPayload extracts the Mercado Pago payload from a request body. An
// empty body yields "{}".
func ParseMPPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
