package tengepay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetPayments lists the payment attempts made against an order.
func (c *Client) GetPayments(ctx context.Context, orderID string, query *PaymentsQuery) ([]Payment, error) {
	path := fmt.Sprintf("/orders/%s/payments", orderID)
	respBody, err := c.call(ctx, http.MethodGet, path, nil, query.encode())
	if err != nil {
		return nil, err
	}
	var wires []paymentWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "payment", Err: err}
	}
	payments := make([]Payment, 0, len(wires))
	for _, w := range wires {
		payment, err := decodePayment(w)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}
