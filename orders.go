package tengepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tengepay/tengepay-go/money"
)

var errNoClient = errors.New("order is not attached to a client")

// CreateOrderResult pairs the created order with its access token.
type CreateOrderResult struct {
	Order            *Order
	OrderAccessToken string
}

type createOrderWire struct {
	Order            orderWire `json:"order"`
	OrderAccessToken string    `json:"order_access_token"`
}

// CreateOrder registers a new purchase intent. The server assigns the
// order id and the checkout URL.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	respBody, err := c.call(ctx, http.MethodPost, "/orders", encodeCreateOrderBody(req), nil)
	if err != nil {
		return nil, err
	}
	var w createOrderWire
	if err := json.Unmarshal(respBody, &w); err != nil {
		return nil, &DecodeError{Entity: "order", Err: err}
	}
	order, err := decodeOrder(w.Order)
	if err != nil {
		return nil, err
	}
	order.client = c
	return &CreateOrderResult{
		Order:            order,
		OrderAccessToken: w.OrderAccessToken,
	}, nil
}

// GetOrders lists orders matching the query. A nil query uses the
// default pagination.
func (c *Client) GetOrders(ctx context.Context, query *OrdersQuery) ([]Order, error) {
	respBody, err := c.call(ctx, http.MethodGet, "/orders", nil, query.encode())
	if err != nil {
		return nil, err
	}
	return c.decodeOrderList(respBody)
}

// CaptureOrder captures a held amount on the order and returns the
// updated order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string, params CaptureParams) (*Order, error) {
	path := fmt.Sprintf("/orders/%s/capture", orderID)
	respBody, err := c.call(ctx, http.MethodPost, path, encodeCaptureBody(params), nil)
	if err != nil {
		return nil, err
	}
	return c.decodeOrderBody(respBody)
}

// CancelOrder releases a held order and returns the updated order.
func (c *Client) CancelOrder(ctx context.Context, orderID string, reason *string) (*Order, error) {
	path := fmt.Sprintf("/orders/%s/cancel", orderID)
	respBody, err := c.call(ctx, http.MethodPost, path, encodeCancelBody(reason), nil)
	if err != nil {
		return nil, err
	}
	return c.decodeOrderBody(respBody)
}

// UpdateOrder changes the order amount and returns the updated order.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, amount money.Money) (*Order, error) {
	path := fmt.Sprintf("/orders/%s", orderID)
	respBody, err := c.call(ctx, http.MethodPatch, path, encodeUpdateOrderBody(amount), nil)
	if err != nil {
		return nil, err
	}
	return c.decodeOrderBody(respBody)
}

// GetOrderEvents lists the lifecycle events recorded for an order.
func (c *Client) GetOrderEvents(ctx context.Context, orderID string) ([]Event, error) {
	path := fmt.Sprintf("/orders/%s/events", orderID)
	respBody, err := c.call(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var wires []eventWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "event", Err: err}
	}
	events := make([]Event, 0, len(wires))
	for _, w := range wires {
		event, err := decodeEvent(w)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

func (c *Client) decodeOrderBody(respBody []byte) (*Order, error) {
	var w orderWire
	if err := json.Unmarshal(respBody, &w); err != nil {
		return nil, &DecodeError{Entity: "order", Err: err}
	}
	order, err := decodeOrder(w)
	if err != nil {
		return nil, err
	}
	order.client = c
	return order, nil
}

func (c *Client) decodeOrderList(respBody []byte) ([]Order, error) {
	var wires []orderWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "order", Err: err}
	}
	orders := make([]Order, 0, len(wires))
	for _, w := range wires {
		order, err := decodeOrder(w)
		if err != nil {
			return nil, err
		}
		order.client = c
		orders = append(orders, *order)
	}
	return orders, nil
}

// Cancel releases the order through the owning client.
func (o *Order) Cancel(ctx context.Context, reason *string) (*Order, error) {
	if o.client == nil {
		return nil, errNoClient
	}
	return o.client.CancelOrder(ctx, o.ID, reason)
}

// Capture captures the given amount, defaulting to the full order
// amount. Capturing more than the order amount is rejected locally.
func (o *Order) Capture(ctx context.Context, amount *money.Money, reason *string) (*Order, error) {
	if o.client == nil {
		return nil, errNoClient
	}
	if amount == nil {
		amount = &o.Amount
	}
	if amount.Minors() > o.Amount.Minors() {
		return nil, fmt.Errorf("cannot capture more than %s", o.Amount)
	}
	return o.client.CaptureOrder(ctx, o.ID, CaptureParams{
		Amount: *amount,
		Reason: reason,
	})
}

// Update changes the order amount on the server and applies it locally
// only after the server confirms the change.
func (o *Order) Update(ctx context.Context, amount money.Money) error {
	if o.client == nil {
		return errNoClient
	}
	if _, err := o.client.UpdateOrder(ctx, o.ID, amount); err != nil {
		return err
	}
	o.Amount = amount
	return nil
}

// Events lists the lifecycle events of the order.
func (o *Order) Events(ctx context.Context) ([]Event, error) {
	if o.client == nil {
		return nil, errNoClient
	}
	return o.client.GetOrderEvents(ctx, o.ID)
}
