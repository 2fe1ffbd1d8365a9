package tengepay

import (
	"errors"
	"time"

	"github.com/tengepay/tengepay-go/money"
)

var errMissingCurrency = errors.New("currency is required")

// wireTimeLayout is the timestamp format the server uses: fractional
// seconds, no timezone offset. Parsed values are naive local times.
const wireTimeLayout = "2006-01-02T15:04:05.999999"

func decodeTime(entity, field, value string) (time.Time, error) {
	t, err := time.Parse(wireTimeLayout, value)
	if err != nil {
		return time.Time{}, &DecodeError{Entity: entity, Field: field, Err: err}
	}
	return t, nil
}

func decodeOptionalTime(entity, field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := decodeTime(entity, field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Wire shapes. Pointer fields capture the absent-or-null rule: a key that
// is missing or explicitly null decodes to nil and stays empty on the
// entity; slices decode absent/null to nil and a present array, possibly
// empty, to a non-nil slice.

type payerWire struct {
	Type          string  `json:"type"`
	PanMasked     *string `json:"pan_masked"`
	ExpiryDate    *string `json:"expiry_date"`
	Holder        *string `json:"holder"`
	PaymentSystem *string `json:"payment_system"`
	Emitter       *string `json:"emitter"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	CustomerID    *string `json:"customer_id"`
	CardID        *string `json:"card_id"`
}

type errorModelWire struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type acquirerWire struct {
	Name      string  `json:"name"`
	Reference *string `json:"reference"`
}

type actionWire struct {
	URL string `json:"url"`
}

type paymentWire struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
	ApprovedAmount int64           `json:"approved_amount"`
	CapturedAmount int64           `json:"captured_amount"`
	RefundedAmount int64           `json:"refunded_amount"`
	ProcessingFee  float64         `json:"processing_fee"`
	Payer          *payerWire      `json:"payer"`
	Error          *errorModelWire `json:"error"`
	Acquirer       *acquirerWire   `json:"acquirer"`
	Action         *actionWire     `json:"action"`
}

type orderWire struct {
	ID            string         `json:"id"`
	ShopID        string         `json:"shop_id"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"created_at"`
	Amount        int64          `json:"amount"`
	Currency      *string        `json:"currency"`
	CaptureMethod string         `json:"capture_method"`
	ExternalID    *string        `json:"external_id"`
	Description   *string        `json:"description"`
	ExtraInfo     map[string]any `json:"extra_info"`
	MCC           *string        `json:"mcc"`
	Acquirer      *string        `json:"acquirer"`
	CustomerID    *string        `json:"customer_id"`
	CardID        *string        `json:"card_id"`
	Attempts      *int           `json:"attempts"`
	CheckoutURL   string         `json:"checkout_url"`
	Payments      []paymentWire  `json:"payments"`
}

type refundWire struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	OrderID   string          `json:"order_id"`
	Status    string          `json:"status"`
	CreatedAt *string         `json:"created_at"`
	Error     *errorModelWire `json:"error"`
	Acquirer  *acquirerWire   `json:"acquirer"`
}

type accountResourceWire struct {
	ID        string  `json:"id"`
	IBAN      *string `json:"iban"`
	IsDefault *bool   `json:"is_default"`
}

type accountWire struct {
	ID         string                `json:"id"`
	ShopID     string                `json:"shop_id"`
	CustomerID *string               `json:"customer_id"`
	Status     string                `json:"status"`
	Name       string                `json:"name"`
	Amount     int64                 `json:"amount"`
	Currency   *string               `json:"currency"`
	Resources  []accountResourceWire `json:"resources"`
	CreatedAt  string                `json:"created_at"`
	ExternalID *string               `json:"external_id"`
}

type customerWire struct {
	ID          string        `json:"id"`
	CreatedAt   string        `json:"created_at"`
	Status      string        `json:"status"`
	ExternalID  *string       `json:"external_id"`
	Email       *string       `json:"email"`
	Phone       *string       `json:"phone"`
	Accounts    []accountWire `json:"accounts"`
	CheckoutURL string        `json:"checkout_url"`
	AccessToken string        `json:"access_token"`
}

type eventWire struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"created_at"`
	OrderID   string  `json:"order_id"`
	PaymentID *string `json:"payment_id"`
	RefundID  *string `json:"refund_id"`
	MD        *string `json:"md"`
	PaReq     *string `json:"pa_req"`
	ACSURL    *string `json:"acs_url"`
	TermURL   *string `json:"term_url"`
	ActionURL *string `json:"action_url"`
	Code      string  `json:"code"`
	Message   string  `json:"message"`
}

func decodePayer(w payerWire) (*Payer, error) {
	payerType, err := parsePayerType(w.Type)
	if err != nil {
		return nil, &DecodeError{Entity: "payer", Field: "type", Err: err}
	}
	return &Payer{
		Type:          payerType,
		PanMasked:     w.PanMasked,
		ExpiryDate:    w.ExpiryDate,
		Holder:        w.Holder,
		PaymentSystem: w.PaymentSystem,
		Emitter:       w.Emitter,
		Email:         w.Email,
		Phone:         w.Phone,
		CustomerID:    w.CustomerID,
		CardID:        w.CardID,
	}, nil
}

func decodeErrorModel(w *errorModelWire) *ErrorModel {
	if w == nil {
		return nil
	}
	return &ErrorModel{Code: w.Code, Message: w.Message}
}

func decodeAcquirer(w *acquirerWire) *Acquirer {
	if w == nil {
		return nil
	}
	return &Acquirer{Name: w.Name, Reference: w.Reference}
}

func decodeAction(w *actionWire) *Action {
	if w == nil {
		return nil
	}
	return &Action{URL: w.URL}
}

func decodePayment(w paymentWire) (*Payment, error) {
	status, err := parsePaymentStatus(w.Status)
	if err != nil {
		return nil, &DecodeError{Entity: "payment", Field: "status", Err: err}
	}
	createdAt, err := decodeTime("payment", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}
	var payer *Payer
	if w.Payer != nil {
		if payer, err = decodePayer(*w.Payer); err != nil {
			return nil, err
		}
	}
	return &Payment{
		ID:             w.ID,
		OrderID:        w.OrderID,
		Status:         status,
		CreatedAt:      createdAt,
		ApprovedAmount: w.ApprovedAmount,
		CapturedAmount: w.CapturedAmount,
		RefundedAmount: w.RefundedAmount,
		ProcessingFee:  w.ProcessingFee,
		Payer:          payer,
		Error:          decodeErrorModel(w.Error),
		Acquirer:       decodeAcquirer(w.Acquirer),
		Action:         decodeAction(w.Action),
	}, nil
}

func decodeOrder(w orderWire) (*Order, error) {
	status, err := parseOrderStatus(w.Status)
	if err != nil {
		return nil, &DecodeError{Entity: "order", Field: "status", Err: err}
	}
	captureMethod, err := parseCaptureMethod(w.CaptureMethod)
	if err != nil {
		return nil, &DecodeError{Entity: "order", Field: "capture_method", Err: err}
	}
	createdAt, err := decodeTime("order", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}
	// Orders carry no currency fallback: the server must send it.
	if w.Currency == nil {
		return nil, &DecodeError{
			Entity: "order",
			Field:  "currency",
			Err:    errMissingCurrency,
		}
	}
	amount, err := money.FromMinor(w.Amount, money.Currency(*w.Currency))
	if err != nil {
		return nil, err
	}

	var payments []Payment
	if w.Payments != nil {
		payments = make([]Payment, 0, len(w.Payments))
		for _, pw := range w.Payments {
			p, err := decodePayment(pw)
			if err != nil {
				return nil, err
			}
			payments = append(payments, *p)
		}
	}

	return &Order{
		ID:            w.ID,
		ShopID:        w.ShopID,
		Status:        status,
		CreatedAt:     createdAt,
		Amount:        amount,
		CaptureMethod: captureMethod,
		ExternalID:    w.ExternalID,
		Description:   w.Description,
		ExtraInfo:     w.ExtraInfo,
		MCC:           w.MCC,
		Acquirer:      w.Acquirer,
		CustomerID:    w.CustomerID,
		CardID:        w.CardID,
		Attempts:      w.Attempts,
		CheckoutURL:   w.CheckoutURL,
		Payments:      payments,
	}, nil
}

func decodeRefund(w refundWire) (*Refund, error) {
	status, err := parseRefundStatus(w.Status)
	if err != nil {
		return nil, &DecodeError{Entity: "refund", Field: "status", Err: err}
	}
	createdAt, err := decodeOptionalTime("refund", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &Refund{
		ID:        w.ID,
		PaymentID: w.PaymentID,
		OrderID:   w.OrderID,
		Status:    status,
		CreatedAt: createdAt,
		Error:     decodeErrorModel(w.Error),
		Acquirer:  decodeAcquirer(w.Acquirer),
	}, nil
}

func decodeAccount(w accountWire) (*Account, error) {
	status, err := parseAccountStatus(w.Status)
	if err != nil {
		return nil, &DecodeError{Entity: "account", Field: "status", Err: err}
	}
	createdAt, err := decodeTime("account", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}
	// Accounts tolerate a missing currency and fall back to KZT. The
	// server contract leaves the field out for tenge accounts; keep the
	// fallback until that is fixed upstream.
	currency := money.KZT
	if w.Currency != nil {
		currency = money.Currency(*w.Currency)
	}
	amount, err := money.FromMinor(w.Amount, currency)
	if err != nil {
		return nil, err
	}

	var resources []AccountResource
	if w.Resources != nil {
		resources = make([]AccountResource, 0, len(w.Resources))
		for _, rw := range w.Resources {
			resources = append(resources, AccountResource{
				ID:        rw.ID,
				IBAN:      rw.IBAN,
				IsDefault: rw.IsDefault,
			})
		}
	}

	return &Account{
		ID:         w.ID,
		ShopID:     w.ShopID,
		CustomerID: w.CustomerID,
		Status:     status,
		Name:       w.Name,
		Amount:     amount,
		Resources:  resources,
		CreatedAt:  createdAt,
		ExternalID: w.ExternalID,
	}, nil
}

func decodeCustomer(w customerWire) (*Customer, error) {
	status, err := parseCustomerStatus(w.Status)
	if err != nil {
		return nil, &DecodeError{Entity: "customer", Field: "status", Err: err}
	}
	createdAt, err := decodeTime("customer", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if w.Accounts != nil {
		accounts = make([]Account, 0, len(w.Accounts))
		for _, aw := range w.Accounts {
			a, err := decodeAccount(aw)
			if err != nil {
				return nil, err
			}
			accounts = append(accounts, *a)
		}
	}

	return &Customer{
		ID:          w.ID,
		CreatedAt:   createdAt,
		Status:      status,
		ExternalID:  w.ExternalID,
		Email:       w.Email,
		Phone:       w.Phone,
		Accounts:    accounts,
		CheckoutURL: w.CheckoutURL,
		AccessToken: w.AccessToken,
	}, nil
}

func decodeEvent(w eventWire) (*Event, error) {
	name, err := parseEventName(w.Name)
	if err != nil {
		return nil, &DecodeError{Entity: "event", Field: "name", Err: err}
	}
	createdAt, err := decodeTime("event", "created_at", w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        w.ID,
		Name:      name,
		CreatedAt: createdAt,
		OrderID:   w.OrderID,
		PaymentID: w.PaymentID,
		RefundID:  w.RefundID,
		MD:        w.MD,
		PaReq:     w.PaReq,
		ACSURL:    w.ACSURL,
		TermURL:   w.TermURL,
		ActionURL: w.ActionURL,
		Code:      w.Code,
		Message:   w.Message,
	}, nil
}
