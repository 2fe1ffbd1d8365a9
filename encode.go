package tengepay

import (
	"net/url"
	"strconv"
	"time"

	"github.com/tengepay/tengepay-go/money"
)

// Defaults applied to every list operation.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// Request bodies are built key by key: a key appears only when the
// argument was supplied, never as an explicit null.

// CreateOrderRequest holds the arguments of CreateOrder. Amount is
// required; CaptureMethod defaults to AUTO; every pointer field is
// omitted from the request body when nil.
type CreateOrderRequest struct {
	Amount        money.Money
	CaptureMethod CaptureMethod
	ExternalID    *string
	Description   *string
	MCC           *string
	ExtraInfo     map[string]any
	Attempts      *int
	DueDate       *time.Time
	CustomerID    *string
	CardID        *string
	BackURL       *string
	SuccessURL    *string
	FailureURL    *string
	Template      *string
}

// CaptureParams holds the arguments of CaptureOrder.
type CaptureParams struct {
	Amount money.Money
	Reason *string
}

// CreateRefundRequest holds the arguments of CreateRefund. Rules split
// the refund across accounts; Positions attach fiscal receipt items.
type CreateRefundRequest struct {
	Amount    money.Money
	Reason    *string
	Rules     []RefundRule
	Positions []CheckPosition
}

func encodeTimestamp(t time.Time) string {
	return t.Format(wireTimeLayout)
}

func putString(body map[string]any, key string, value *string) {
	if value != nil {
		body[key] = *value
	}
}

func encodeCreateOrderBody(req CreateOrderRequest) map[string]any {
	captureMethod := req.CaptureMethod
	if captureMethod == "" {
		captureMethod = CaptureAuto
	}
	body := map[string]any{
		"amount":         req.Amount.Minors(),
		"capture_method": string(captureMethod),
	}
	putString(body, "external_id", req.ExternalID)
	putString(body, "description", req.Description)
	putString(body, "mcc", req.MCC)
	if req.ExtraInfo != nil {
		body["extra_info"] = req.ExtraInfo
	}
	if req.Attempts != nil {
		body["attempts"] = *req.Attempts
	}
	if req.DueDate != nil {
		body["due_date"] = encodeTimestamp(*req.DueDate)
	}
	putString(body, "customer_id", req.CustomerID)
	putString(body, "card_id", req.CardID)
	putString(body, "back_url", req.BackURL)
	putString(body, "success_url", req.SuccessURL)
	putString(body, "failure_url", req.FailureURL)
	putString(body, "template", req.Template)
	return body
}

func encodeCaptureBody(params CaptureParams) map[string]any {
	body := map[string]any{
		"amount": params.Amount.Minors(),
	}
	putString(body, "reason", params.Reason)
	return body
}

func encodeCancelBody(reason *string) map[string]any {
	body := map[string]any{}
	putString(body, "reason", reason)
	return body
}

func encodeUpdateOrderBody(amount money.Money) map[string]any {
	return map[string]any{
		"amount": amount.Minors(),
	}
}

func encodeRefundRule(rule RefundRule) map[string]any {
	return map[string]any{
		"account_id": rule.AccountID,
		"amount":     rule.Amount.Minors(),
	}
}

// encodeCheckPosition sends every field. TaxType, TaxAmount and UnitCode
// have meaningful zero defaults, so an unset field and an explicit
// default are the same value on the wire.
func encodeCheckPosition(position CheckPosition) map[string]any {
	return map[string]any{
		"name":        position.Name,
		"amount":      position.Amount.Minors(),
		"count":       position.Count,
		"section":     position.Section,
		"tax_percent": position.TaxPercent,
		"tax_type":    int(position.TaxType),
		"tax_amount":  position.TaxAmount,
		"unit_code":   position.UnitCode,
	}
}

func encodeCreateRefundBody(req CreateRefundRequest) map[string]any {
	body := map[string]any{
		"amount": req.Amount.Minors(),
	}
	putString(body, "reason", req.Reason)
	if req.Rules != nil {
		rules := make([]map[string]any, 0, len(req.Rules))
		for _, rule := range req.Rules {
			rules = append(rules, encodeRefundRule(rule))
		}
		body["rules"] = rules
	}
	if req.Positions != nil {
		positions := make([]map[string]any, 0, len(req.Positions))
		for _, position := range req.Positions {
			positions = append(positions, encodeCheckPosition(position))
		}
		body["positions"] = positions
	}
	return body
}

// listQuery is the full set of pagination and filter dimensions the list
// endpoints understand. Each public query type maps onto the subset its
// endpoint supports; encoding applies the same omission rule as bodies.
type listQuery struct {
	page           int
	limit          int
	fromDt         *time.Time
	toDt           *time.Time
	dateCategory   *DateCategory
	customerID     *string
	externalID     *string
	status         *string
	orderID        *string
	paymentID      *string
	panFirst6      *string
	panLast4       *string
	payerEmail     *string
	payerPhone     *string
	paymentStatus  *PaymentStatus
	paymentSystem  *string
	amountCategory *AmountCategory
	fixedAmount    *money.Money
	minAmount      *money.Money
	maxAmount      *money.Money
}

func setString(params url.Values, key string, value *string) {
	if value != nil {
		params.Set(key, *value)
	}
}

func setMoney(params url.Values, key string, value *money.Money) {
	if value != nil {
		params.Set(key, strconv.FormatInt(value.Minors(), 10))
	}
}

func (q listQuery) encode() url.Values {
	page := q.page
	if page == 0 {
		page = defaultPage
	}
	limit := q.limit
	if limit == 0 {
		limit = defaultLimit
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if q.fromDt != nil {
		params.Set("from_dt", encodeTimestamp(*q.fromDt))
	}
	if q.toDt != nil {
		params.Set("to_dt", encodeTimestamp(*q.toDt))
	}
	if q.dateCategory != nil {
		params.Set("date_category", string(*q.dateCategory))
	}
	setString(params, "customer_id", q.customerID)
	setString(params, "external_id", q.externalID)
	setString(params, "status", q.status)
	setString(params, "order_id", q.orderID)
	setString(params, "payment_id", q.paymentID)
	setString(params, "pan_first6", q.panFirst6)
	setString(params, "pan_last4", q.panLast4)
	setString(params, "payer_email", q.payerEmail)
	setString(params, "payer_phone", q.payerPhone)
	if q.paymentStatus != nil {
		params.Set("payment_status", string(*q.paymentStatus))
	}
	setString(params, "payment_system", q.paymentSystem)
	if q.amountCategory != nil {
		params.Set("amount_category", string(*q.amountCategory))
	}
	setMoney(params, "fixed_amount", q.fixedAmount)
	setMoney(params, "min_amount", q.minAmount)
	setMoney(params, "max_amount", q.maxAmount)
	return params
}

// OrdersQuery filters GetOrders. Zero Page and Limit fall back to the
// server defaults of 1 and 10.
type OrdersQuery struct {
	Page         int
	Limit        int
	FromDt       *time.Time
	ToDt         *time.Time
	DateCategory *DateCategory
}

func (q *OrdersQuery) encode() url.Values {
	if q == nil {
		q = &OrdersQuery{}
	}
	return listQuery{
		page:         q.Page,
		limit:        q.Limit,
		fromDt:       q.FromDt,
		toDt:         q.ToDt,
		dateCategory: q.DateCategory,
	}.encode()
}

// PaymentsQuery filters GetPayments.
type PaymentsQuery struct {
	Page          int
	Limit         int
	FromDt        *time.Time
	ToDt          *time.Time
	DateCategory  *DateCategory
	ExternalID    *string
	PaymentID     *string
	PanFirst6     *string
	PanLast4      *string
	PayerEmail    *string
	PayerPhone    *string
	CustomerID    *string
	PaymentStatus *PaymentStatus
	PaymentSystem *string
}

func (q *PaymentsQuery) encode() url.Values {
	if q == nil {
		q = &PaymentsQuery{}
	}
	return listQuery{
		page:          q.Page,
		limit:         q.Limit,
		fromDt:        q.FromDt,
		toDt:          q.ToDt,
		dateCategory:  q.DateCategory,
		externalID:    q.ExternalID,
		paymentID:     q.PaymentID,
		panFirst6:     q.PanFirst6,
		panLast4:      q.PanLast4,
		payerEmail:    q.PayerEmail,
		payerPhone:    q.PayerPhone,
		customerID:    q.CustomerID,
		paymentStatus: q.PaymentStatus,
		paymentSystem: q.PaymentSystem,
	}.encode()
}

// CustomersQuery filters GetCustomers.
type CustomersQuery struct {
	Page         int
	Limit        int
	FromDt       *time.Time
	ToDt         *time.Time
	DateCategory *DateCategory
	CustomerID   *string
	ExternalID   *string
	Status       *CustomerStatus
}

func (q *CustomersQuery) encode() url.Values {
	if q == nil {
		q = &CustomersQuery{}
	}
	var status *string
	if q.Status != nil {
		s := string(*q.Status)
		status = &s
	}
	return listQuery{
		page:         q.Page,
		limit:        q.Limit,
		fromDt:       q.FromDt,
		toDt:         q.ToDt,
		dateCategory: q.DateCategory,
		customerID:   q.CustomerID,
		externalID:   q.ExternalID,
		status:       status,
	}.encode()
}
