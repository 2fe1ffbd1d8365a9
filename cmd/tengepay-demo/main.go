// Command tengepay-demo creates an order against the staging API and
// lists recent orders. It reads TENGEPAY_API_KEY and friends from the
// environment or a .env file.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	tengepay "github.com/tengepay/tengepay-go"
	"github.com/tengepay/tengepay-go/money"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := tengepay.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := tengepay.New(*cfg)
	if err != nil {
		logger.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	externalID := uuid.NewString()
	description := "demo order"
	result, err := client.CreateOrder(ctx, tengepay.CreateOrderRequest{
		Amount:      money.MustFromMinor(150000, money.KZT),
		ExternalID:  &externalID,
		Description: &description,
	})
	if err != nil {
		logger.Error("failed to create order", "error", err)
		os.Exit(1)
	}
	logger.Info("order created",
		"order_id", result.Order.ID,
		"status", result.Order.Status,
		"amount", result.Order.Amount.String(),
		"checkout_url", result.Order.CheckoutURL,
	)

	orders, err := client.GetOrders(ctx, &tengepay.OrdersQuery{Limit: 5})
	if err != nil {
		logger.Error("failed to list orders", "error", err)
		os.Exit(1)
	}
	for _, order := range orders {
		logger.Info("order",
			"id", order.ID,
			"status", order.Status,
			"amount", order.Amount.String(),
		)
	}
}
