package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a positive decimal")

// PayInvoiceRequest charges a ticket invoice.
//
// provider_payload is forwarded to the payment provider as-is (raw JSON) to
// support varying Mercado Pago schemas; mp_payload is accepted as an alias.
type PayInvoiceRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	ProviderPayload json.RawMessage  `json:"provider_payload"`
	MPPayload       json.RawMessage  `json:"mp_payload"`
}

func (r PayInvoiceRequest) ResolveAmount() (decimal.Decimal, error) {
	if r.Amount == nil || !r.Amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return *r.Amount, nil
}

func (r PayInvoiceRequest) ResolvePayload() json.RawMessage {
	for _, p := range []json.RawMessage{r.ProviderPayload, r.MPPayload} {
		if s := strings.TrimSpace(string(p)); s != "" && s != "null" {
			return p
		}
	}
	return json.RawMessage("{}")
}
