package tengepay

import (
	"fmt"
	"time"

	"github.com/tengepay/tengepay-go/money"
)

// OrderStatus represents the current state of an order in its lifecycle.
type OrderStatus string

const (
	OrderUnpaid  OrderStatus = "UNPAID"
	OrderOnHold  OrderStatus = "ON_HOLD"
	OrderPaid    OrderStatus = "PAID"
	OrderExpired OrderStatus = "EXPIRED"
)

func parseOrderStatus(s string) (OrderStatus, error) {
	switch v := OrderStatus(s); v {
	case OrderUnpaid, OrderOnHold, OrderPaid, OrderExpired:
		return v, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// PaymentStatus represents the state of a single payment attempt.
type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "PENDING"
	PaymentRequiresAction PaymentStatus = "REQUIRES_ACTION"
	PaymentApproved       PaymentStatus = "APPROVED"
	PaymentCaptured       PaymentStatus = "CAPTURED"
	PaymentCancelled      PaymentStatus = "CANCELLED"
	PaymentDeclined       PaymentStatus = "DECLINED"
)

func parsePaymentStatus(s string) (PaymentStatus, error) {
	switch v := PaymentStatus(s); v {
	case PaymentPending, PaymentRequiresAction, PaymentApproved,
		PaymentCaptured, PaymentCancelled, PaymentDeclined:
		return v, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// RefundStatus represents the state of a refund.
type RefundStatus string

const (
	RefundPending  RefundStatus = "PENDING"
	RefundApproved RefundStatus = "APPROVED"
	RefundDeclined RefundStatus = "DECLINED"
)

func parseRefundStatus(s string) (RefundStatus, error) {
	switch v := RefundStatus(s); v {
	case RefundPending, RefundApproved, RefundDeclined:
		return v, nil
	}
	return "", fmt.Errorf("unknown refund status %q", s)
}

// CaptureMethod controls whether a paid order is captured automatically.
type CaptureMethod string

const (
	CaptureAuto   CaptureMethod = "AUTO"
	CaptureManual CaptureMethod = "MANUAL"
)

func parseCaptureMethod(s string) (CaptureMethod, error) {
	switch v := CaptureMethod(s); v {
	case CaptureAuto, CaptureManual:
		return v, nil
	}
	return "", fmt.Errorf("unknown capture method %q", s)
}

// PayerType identifies the instrument a payment was made with.
type PayerType string

const (
	PayerCard            PayerType = "CARD"
	PayerCardNoCVC       PayerType = "CARD_NO_CVC"
	PayerCardWithBinding PayerType = "CARD_WITH_BINDING"
	PayerBinding         PayerType = "BINDING"
	PayerApplePay        PayerType = "APPLE_PAY"
	PayerGooglePay       PayerType = "GOOGLE_PAY"
	PayerMasterpass      PayerType = "MASTERPASS"
)

func parsePayerType(s string) (PayerType, error) {
	switch v := PayerType(s); v {
	case PayerCard, PayerCardNoCVC, PayerCardWithBinding, PayerBinding,
		PayerApplePay, PayerGooglePay, PayerMasterpass:
		return v, nil
	}
	return "", fmt.Errorf("unknown payer type %q", s)
}

// CustomerStatus represents the state of a customer record.
type CustomerStatus string

const (
	CustomerPending CustomerStatus = "PENDING"
	CustomerReady   CustomerStatus = "READY"
)

func parseCustomerStatus(s string) (CustomerStatus, error) {
	switch v := CustomerStatus(s); v {
	case CustomerPending, CustomerReady:
		return v, nil
	}
	return "", fmt.Errorf("unknown customer status %q", s)
}

// AccountStatus represents the state of a customer account.
type AccountStatus string

const (
	AccountPending  AccountStatus = "PENDING"
	AccountAccepted AccountStatus = "ACCEPTED"
	AccountBlocked  AccountStatus = "BLOCKED"
)

func parseAccountStatus(s string) (AccountStatus, error) {
	switch v := AccountStatus(s); v {
	case AccountPending, AccountAccepted, AccountBlocked:
		return v, nil
	}
	return "", fmt.Errorf("unknown account status %q", s)
}

// AmountCategory selects between a fixed amount filter and a range.
type AmountCategory string

const (
	AmountFixed AmountCategory = "FIXED"
	AmountRange AmountCategory = "RANGE"
)

// DateCategory groups list filters by a reporting period.
type DateCategory string

const (
	DateDaily     DateCategory = "DAILY"
	DateMonthly   DateCategory = "MONTHLY"
	DateQuarterly DateCategory = "QUARTERLY"
	DateYearly    DateCategory = "YEARLY"
	DateManual    DateCategory = "MANUAL"
)

// TaxType selects the VAT mode of a fiscal receipt position.
type TaxType int

const (
	TaxWithout TaxType = 0
	TaxWith    TaxType = 100
)

// EventName identifies a lifecycle event delivered for an order.
type EventName string

const (
	EventOrderCreated              EventName = "ORDER_CREATED"
	EventPaymentCreated            EventName = "PAYMENT_CREATED"
	EventRefundCreated             EventName = "REFUND_CREATED"
	EventInstallmentCreated        EventName = "INSTALLMENT_CREATED"
	EventSplitCreated              EventName = "SPLIT_CREATED"
	EventOrderOnHold               EventName = "ORDER_ON_HOLD"
	EventOrderPaid                 EventName = "ORDER_PAID"
	EventOrderExpired              EventName = "ORDER_EXPIRED"
	EventPaymentDeclined           EventName = "PAYMENT_DECLINED"
	EventPaymentActionRequired     EventName = "PAYMENT_ACTION_REQUIRED"
	EventPaymentApproved           EventName = "PAYMENT_APPROVED"
	EventPaymentCaptured           EventName = "PAYMENT_CAPTURED"
	EventCaptureDeclined           EventName = "CAPTURE_DECLINED"
	EventPaymentCancelled          EventName = "PAYMENT_CANCELLED"
	EventCancelDeclined            EventName = "CANCEL_DECLINED"
	EventRefundApproved            EventName = "REFUND_APPROVED"
	EventRefundDeclined            EventName = "REFUND_DECLINED"
	EventSplitApproved             EventName = "SPLIT_APPROVED"
	EventSplitDeclined             EventName = "SPLIT_DECLINED"
	EventSplitRefundApproved       EventName = "SPLIT_REFUND_APPROVED"
	EventSplitRefundDeclined       EventName = "SPLIT_REFUND_DECLINED"
	EventCheckApproved             EventName = "CHECK_APPROVED"
	EventCheckDeclined             EventName = "CHECK_DECLINED"
	EventOTPSent                   EventName = "OTP_SENT"
	EventSendOTPDeclined           EventName = "SEND_OTP_DECLINED"
	EventOTPConfirmed              EventName = "OTP_CONFIRMED"
	EventConfirmOTPDeclined        EventName = "CONFIRM_OTP_DECLINED"
	EventInstallmentActionRequired EventName = "INSTALLMENT_ACTION_REQUIRED"
	EventInstallmentIssued         EventName = "INSTALLMENT_ISSUED"
	EventInstallmentRejected       EventName = "INSTALLMENT_REJECTED"
	EventInstallmentDeclined       EventName = "INSTALLMENT_DECLINED"
)

func parseEventName(s string) (EventName, error) {
	switch v := EventName(s); v {
	case EventOrderCreated, EventPaymentCreated, EventRefundCreated,
		EventInstallmentCreated, EventSplitCreated, EventOrderOnHold,
		EventOrderPaid, EventOrderExpired, EventPaymentDeclined,
		EventPaymentActionRequired, EventPaymentApproved,
		EventPaymentCaptured, EventCaptureDeclined, EventPaymentCancelled,
		EventCancelDeclined, EventRefundApproved, EventRefundDeclined,
		EventSplitApproved, EventSplitDeclined, EventSplitRefundApproved,
		EventSplitRefundDeclined, EventCheckApproved, EventCheckDeclined,
		EventOTPSent, EventSendOTPDeclined, EventOTPConfirmed,
		EventConfirmOTPDeclined, EventInstallmentActionRequired,
		EventInstallmentIssued, EventInstallmentRejected,
		EventInstallmentDeclined:
		return v, nil
	}
	return "", fmt.Errorf("unknown event name %q", s)
}

// Payer holds the instrument details of a payment attempt.
type Payer struct {
	Type          PayerType
	PanMasked     *string
	ExpiryDate    *string
	Holder        *string
	PaymentSystem *string
	Emitter       *string
	Email         *string
	Phone         *string
	CustomerID    *string
	CardID        *string
}

// ErrorModel is the code/message pair attached to declined payments and
// refunds.
type ErrorModel struct {
	Code    string
	Message string
}

// Acquirer identifies the acquiring bank that processed an attempt.
type Acquirer struct {
	Name      string
	Reference *string
}

// Action carries the redirect URL for 3-D Secure style flows.
type Action struct {
	URL string
}

// Order is a purchase intent. Orders are created server-side and change
// status only through server responses; Update is the single local
// mutation and applies the new amount only after the server confirms it.
type Order struct {
	client *Client

	ID            string
	ShopID        string
	Status        OrderStatus
	CreatedAt     time.Time
	Amount        money.Money
	CaptureMethod CaptureMethod
	ExternalID    *string
	Description   *string
	ExtraInfo     map[string]any
	MCC           *string
	Acquirer      *string
	CustomerID    *string
	CardID        *string
	Attempts      *int
	CheckoutURL   string
	Payments      []Payment
}

// Payment is an immutable snapshot of one payment attempt against an
// order. Amount fields stay in raw minor units as the server sends them.
type Payment struct {
	ID             string
	OrderID        string
	Status         PaymentStatus
	CreatedAt      time.Time
	ApprovedAmount int64
	CapturedAmount int64
	RefundedAmount int64
	ProcessingFee  float64
	Payer          *Payer
	Error          *ErrorModel
	Acquirer       *Acquirer
	Action         *Action
}

// Refund is an immutable snapshot of a refund against a payment.
type Refund struct {
	ID        string
	PaymentID string
	OrderID   string
	Status    RefundStatus
	CreatedAt *time.Time
	Error     *ErrorModel
	Acquirer  *Acquirer
}

// RefundRule splits a refund amount towards a specific account.
type RefundRule struct {
	AccountID string
	Amount    money.Money
}

// CheckPosition is a fiscal receipt line item attached to a refund. The
// zero values of TaxType, TaxAmount and UnitCode are meaningful defaults
// and are always sent on the wire.
type CheckPosition struct {
	Name       string
	Amount     money.Money
	Count      int
	Section    int
	TaxPercent int
	TaxType    TaxType
	TaxAmount  int64
	UnitCode   int
}

// Customer is a payer profile registered with the shop.
type Customer struct {
	ID          string
	CreatedAt   time.Time
	Status      CustomerStatus
	ExternalID  *string
	Email       *string
	Phone       *string
	Accounts    []Account
	CheckoutURL string
	AccessToken string
}

// AccountResource is a banking detail attached to an account.
type AccountResource struct {
	ID        string
	IBAN      *string
	IsDefault *bool
}

// Account is a payout destination belonging to the shop or a customer.
type Account struct {
	ID         string
	ShopID     string
	CustomerID *string
	Status     AccountStatus
	Name       string
	Amount     money.Money
	Resources  []AccountResource
	CreatedAt  time.Time
	ExternalID *string
}

// Event is a lifecycle event recorded for an order. Code and Message
// carry the error detail for declined events and are empty otherwise.
type Event struct {
	ID        string
	Name      EventName
	CreatedAt time.Time
	OrderID   string
	PaymentID *string
	RefundID  *string
	MD        *string
	PaReq     *string
	ACSURL    *string
	TermURL   *string
	ActionURL *string
	Code      string
	Message   string
}
