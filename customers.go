package tengepay

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetCustomers lists customer profiles matching the query.
func (c *Client) GetCustomers(ctx context.Context, query *CustomersQuery) ([]Customer, error) {
	respBody, err := c.call(ctx, http.MethodGet, "/customers", nil, query.encode())
	if err != nil {
		return nil, err
	}
	var wires []customerWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "customer", Err: err}
	}
	customers := make([]Customer, 0, len(wires))
	for _, w := range wires {
		customer, err := decodeCustomer(w)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}
	return customers, nil
}

// GetAccounts lists the shop's payout accounts.
func (c *Client) GetAccounts(ctx context.Context) ([]Account, error) {
	respBody, err := c.call(ctx, http.MethodGet, "/accounts", nil, nil)
	if err != nil {
		return nil, err
	}
	var wires []accountWire
	if err := json.Unmarshal(respBody, &wires); err != nil {
		return nil, &DecodeError{Entity: "account", Err: err}
	}
	accounts := make([]Account, 0, len(wires))
	for _, w := range wires {
		account, err := decodeAccount(w)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}
