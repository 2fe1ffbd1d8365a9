package tengepay

import (
	"context"

	"github.com/tengepay/tengepay-go/money"
)

// Future holds the eventual result of an asynchronous operation. The
// operation runs on its own goroutine; Wait blocks only the caller that
// chooses to wait and honors cancellation of the wait itself.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Done is closed once the operation has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the operation completes or ctx is cancelled.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// The Async variants run the corresponding blocking operation on a
// goroutine. Encoding, decoding and error classification are shared with
// the blocking forms; only the suspension differs. The passed ctx bounds
// the request itself, while the ctx given to Wait bounds the wait.

func (c *Client) CreateOrderAsync(ctx context.Context, req CreateOrderRequest) *Future[*CreateOrderResult] {
	return newFuture(func() (*CreateOrderResult, error) {
		return c.CreateOrder(ctx, req)
	})
}

func (c *Client) GetOrdersAsync(ctx context.Context, query *OrdersQuery) *Future[[]Order] {
	return newFuture(func() ([]Order, error) {
		return c.GetOrders(ctx, query)
	})
}

func (c *Client) CaptureOrderAsync(ctx context.Context, orderID string, params CaptureParams) *Future[*Order] {
	return newFuture(func() (*Order, error) {
		return c.CaptureOrder(ctx, orderID, params)
	})
}

func (c *Client) CancelOrderAsync(ctx context.Context, orderID string, reason *string) *Future[*Order] {
	return newFuture(func() (*Order, error) {
		return c.CancelOrder(ctx, orderID, reason)
	})
}

func (c *Client) UpdateOrderAsync(ctx context.Context, orderID string, amount money.Money) *Future[*Order] {
	return newFuture(func() (*Order, error) {
		return c.UpdateOrder(ctx, orderID, amount)
	})
}

func (c *Client) GetOrderEventsAsync(ctx context.Context, orderID string) *Future[[]Event] {
	return newFuture(func() ([]Event, error) {
		return c.GetOrderEvents(ctx, orderID)
	})
}

func (c *Client) GetRefundsAsync(ctx context.Context, orderID string) *Future[[]Refund] {
	return newFuture(func() ([]Refund, error) {
		return c.GetRefunds(ctx, orderID)
	})
}

func (c *Client) CreateRefundAsync(ctx context.Context, orderID string, req CreateRefundRequest) *Future[*Refund] {
	return newFuture(func() (*Refund, error) {
		return c.CreateRefund(ctx, orderID, req)
	})
}

func (c *Client) GetPaymentsAsync(ctx context.Context, orderID string, query *PaymentsQuery) *Future[[]Payment] {
	return newFuture(func() ([]Payment, error) {
		return c.GetPayments(ctx, orderID, query)
	})
}

func (c *Client) GetCustomersAsync(ctx context.Context, query *CustomersQuery) *Future[[]Customer] {
	return newFuture(func() ([]Customer, error) {
		return c.GetCustomers(ctx, query)
	})
}

func (c *Client) GetAccountsAsync(ctx context.Context) *Future[[]Account] {
	return newFuture(func() ([]Account, error) {
		return c.GetAccounts(ctx)
	})
}
