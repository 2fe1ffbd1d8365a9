package tengepay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetRefunds lists the refunds issued against an order.
func (c *Client) GetRefunds(ctx context.Context, orderID string) ([]Refund, error) {
	path := fmt.Sprintf("/orders/%s/refunds", orderID)
	respBody, err := c.call(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var wires []refundWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "refund", Err: err}
	}
	refunds := make([]Refund, 0, len(wires))
	for _, w := range wires {
		refund, err := decodeRefund(w)
		if err != nil {
			return nil, err
		}
		refunds = append(refunds, *refund)
	}
	return refunds, nil
}

// CreateRefund refunds part or all of a captured order, optionally split
// across accounts and carrying fiscal receipt positions.
func (c *Client) CreateRefund(ctx context.Context, orderID string, req CreateRefundRequest) (*Refund, error) {
	path := fmt.Sprintf("/orders/%s/refunds", orderID)
	respBody, err := c.call(ctx, http.MethodPost, path, encodeCreateRefundBody(req), nil)
	if err != nil {
		return nil, err
	}
	var w refundWire
	if err := json.Unmarshal(respBody, &w); err != nil {
		return nil, &DecodeError{Entity: "refund", Err: err}
	}
	return decodeRefund(w)
}
