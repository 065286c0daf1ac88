package trade

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice bills a customer for an order. OrderID is zero for invoices
// raised without an order.
type Invoice struct {
	Document
	OrderID    int64
	DueDate    time.Time
	AmountPaid decimal.Decimal
}

// NewInvoice creates a new invoice for a customer
func NewInvoice(customerID, statusID int64) (*Invoice, error) {
	doc, err := newDocument(customerID, statusID)
	if err != nil {
		return nil, err
	}
	return &Invoice{
		Document:   doc,
		AmountPaid: decimal.Zero,
	}, nil
}

// SetOrderID links the invoice to an order
func (i *Invoice) SetOrderID(orderID int64) error {
	if orderID <= 0 {
		return shared.NewDomainError("INVALID_ORDER", "Order ID must be positive")
	}
	i.OrderID = orderID
	i.Touch()
	return nil
}

// SetDueDate sets the payment due date
func (i *Invoice) SetDueDate(dueDate time.Time) {
	i.DueDate = dueDate
	i.Touch()
}

// RegisterPayment records a received payment against the invoice
func (i *Invoice) RegisterPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be positive")
	}
	if i.AmountPaid.Add(amount).GreaterThan(i.Total) {
		return shared.NewDomainError("OVERPAYMENT", "Payment exceeds the outstanding balance")
	}
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.Touch()
	return nil
}

// Outstanding returns the unpaid balance
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}

// IsPaid reports whether the invoice is fully paid
func (i *Invoice) IsPaid() bool {
	return i.Total.GreaterThan(decimal.Zero) && i.AmountPaid.GreaterThanOrEqual(i.Total)
}

// IsOverdue reports whether the invoice is unpaid past its due date
func (i *Invoice) IsOverdue() bool {
	return !i.IsPaid() && !i.DueDate.IsZero() && time.Now().After(i.DueDate)
}
