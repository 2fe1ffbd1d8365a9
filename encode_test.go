package tengepay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tengepay/tengepay-go/money"
)

func strPtr(s string) *string { return &s }

func TestEncodeCreateOrderBody(t *testing.T) {
	t.Run("unset optionals are omitted, not null", func(t *testing.T) {
		body := encodeCreateOrderBody(CreateOrderRequest{
			Amount: money.MustFromMinor(150000, money.KZT),
		})

		assert.Equal(t, map[string]any{
			"amount":         int64(150000),
			"capture_method": "AUTO",
		}, body)
	})

	t.Run("supplied optionals are encoded", func(t *testing.T) {
		attempts := 5
		dueDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		body := encodeCreateOrderBody(CreateOrderRequest{
			Amount:        money.MustFromMinor(9900, money.USD),
			CaptureMethod: CaptureManual,
			ExternalID:    strPtr("ext-1"),
			Description:   strPtr("subscription"),
			MCC:           strPtr("5734"),
			ExtraInfo:     map[string]any{"plan": "pro"},
			Attempts:      &attempts,
			DueDate:       &dueDate,
			CustomerID:    strPtr("cus_1"),
			BackURL:       strPtr("https://shop.example/back"),
		})

		assert.Equal(t, map[string]any{
			"amount":         int64(9900),
			"capture_method": "MANUAL",
			"external_id":    "ext-1",
			"description":    "subscription",
			"mcc":            "5734",
			"extra_info":     map[string]any{"plan": "pro"},
			"attempts":       5,
			"due_date":       "2024-03-01T12:00:00",
			"customer_id":    "cus_1",
			"back_url":       "https://shop.example/back",
		}, body)
	})
}

func TestEncodeCaptureAndCancelBodies(t *testing.T) {
	t.Run("capture without reason", func(t *testing.T) {
		body := encodeCaptureBody(CaptureParams{
			Amount: money.MustFromMinor(5000, money.KZT),
		})

		assert.Equal(t, map[string]any{"amount": int64(5000)}, body)
	})

	t.Run("capture with reason", func(t *testing.T) {
		body := encodeCaptureBody(CaptureParams{
			Amount: money.MustFromMinor(5000, money.KZT),
			Reason: strPtr("partial shipment"),
		})

		assert.Equal(t, map[string]any{
			"amount": int64(5000),
			"reason": "partial shipment",
		}, body)
	})

	t.Run("cancel without reason is an empty body", func(t *testing.T) {
		assert.Equal(t, map[string]any{}, encodeCancelBody(nil))
	})
}

func TestEncodeCreateRefundBody(t *testing.T) {
	t.Run("rules and positions are optional", func(t *testing.T) {
		body := encodeCreateRefundBody(CreateRefundRequest{
			Amount: money.MustFromMinor(10000, money.KZT),
		})

		assert.Equal(t, map[string]any{"amount": int64(10000)}, body)
	})

	t.Run("rules encode element-wise in minor units", func(t *testing.T) {
		body := encodeCreateRefundBody(CreateRefundRequest{
			Amount: money.MustFromMinor(10000, money.KZT),
			Reason: strPtr("customer request"),
			Rules: []RefundRule{
				{AccountID: "acc_1", Amount: money.MustFromMinor(7000, money.KZT)},
				{AccountID: "acc_2", Amount: money.MustFromMinor(3000, money.KZT)},
			},
		})

		require.Equal(t, "customer request", body["reason"])
		rules, ok := body["rules"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, rules, 2)
		assert.Equal(t, map[string]any{"account_id": "acc_1", "amount": int64(7000)}, rules[0])
		assert.Equal(t, map[string]any{"account_id": "acc_2", "amount": int64(3000)}, rules[1])
	})

	t.Run("positions always send tax defaults", func(t *testing.T) {
		body := encodeCreateRefundBody(CreateRefundRequest{
			Amount: money.MustFromMinor(2500, money.KZT),
			Positions: []CheckPosition{
				{
					Name:       "coffee",
					Amount:     money.MustFromMinor(2500, money.KZT),
					Count:      1,
					Section:    1,
					TaxPercent: 12,
				},
			},
		})

		positions, ok := body["positions"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, positions, 1)
		assert.Equal(t, map[string]any{
			"name":        "coffee",
			"amount":      int64(2500),
			"count":       1,
			"section":     1,
			"tax_percent": 12,
			"tax_type":    0,
			"tax_amount":  int64(0),
			"unit_code":   0,
		}, positions[0])
	})
}

func TestListQueryEncode(t *testing.T) {
	t.Run("page and limit default to 1 and 10", func(t *testing.T) {
		params := listQuery{}.encode()

		assert.Equal(t, "1", params.Get("page"))
		assert.Equal(t, "10", params.Get("limit"))
		assert.Len(t, params, 2)
	})

	t.Run("unset filters leave no keys behind", func(t *testing.T) {
		params := (&PaymentsQuery{Page: 2, Limit: 50}).encode()

		assert.Equal(t, "2", params.Get("page"))
		assert.Equal(t, "50", params.Get("limit"))
		assert.Len(t, params, 2)
	})

	t.Run("all filter dimensions encode", func(t *testing.T) {
		fromDt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		toDt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		dateCategory := DateMonthly
		paymentStatus := PaymentCaptured
		amountCategory := AmountRange
		minAmount := money.MustFromMinor(1000, money.KZT)
		maxAmount := money.MustFromMinor(100000, money.KZT)

		params := listQuery{
			page:           3,
			limit:          25,
			fromDt:         &fromDt,
			toDt:           &toDt,
			dateCategory:   &dateCategory,
			customerID:     strPtr("cus_1"),
			externalID:     strPtr("ext-1"),
			orderID:        strPtr("ord_1"),
			paymentID:      strPtr("pay_1"),
			panFirst6:      strPtr("440043"),
			panLast4:       strPtr("1234"),
			payerEmail:     strPtr("j@example.com"),
			payerPhone:     strPtr("+77001234567"),
			paymentStatus:  &paymentStatus,
			paymentSystem:  strPtr("VISA"),
			amountCategory: &amountCategory,
			minAmount:      &minAmount,
			maxAmount:      &maxAmount,
		}.encode()

		assert.Equal(t, "3", params.Get("page"))
		assert.Equal(t, "25", params.Get("limit"))
		assert.Equal(t, "2024-01-01T00:00:00", params.Get("from_dt"))
		assert.Equal(t, "2024-02-01T00:00:00", params.Get("to_dt"))
		assert.Equal(t, "MONTHLY", params.Get("date_category"))
		assert.Equal(t, "cus_1", params.Get("customer_id"))
		assert.Equal(t, "ext-1", params.Get("external_id"))
		assert.Equal(t, "ord_1", params.Get("order_id"))
		assert.Equal(t, "pay_1", params.Get("payment_id"))
		assert.Equal(t, "440043", params.Get("pan_first6"))
		assert.Equal(t, "1234", params.Get("pan_last4"))
		assert.Equal(t, "j@example.com", params.Get("payer_email"))
		assert.Equal(t, "+77001234567", params.Get("payer_phone"))
		assert.Equal(t, "CAPTURED", params.Get("payment_status"))
		assert.Equal(t, "VISA", params.Get("payment_system"))
		assert.Equal(t, "RANGE", params.Get("amount_category"))
		assert.Equal(t, "1000", params.Get("min_amount"))
		assert.Equal(t, "100000", params.Get("max_amount"))
		assert.False(t, params.Has("fixed_amount"))
		assert.False(t, params.Has("status"))
	})

	t.Run("nil query uses defaults", func(t *testing.T) {
		var query *OrdersQuery
		params := query.encode()

		assert.Equal(t, "1", params.Get("page"))
		assert.Equal(t, "10", params.Get("limit"))
	})

	t.Run("customer status filter encodes as status", func(t *testing.T) {
		status := CustomerReady
		params := (&CustomersQuery{Status: &status}).encode()

		assert.Equal(t, "READY", params.Get("status"))
	})
}
