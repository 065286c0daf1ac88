package trade

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// Quote is a priced offer to a customer. A quote can be converted into
// an order exactly once; the converted order id links the two documents.
type Quote struct {
	Document
	ValidUntil       time.Time
	ConvertedOrderID int64
}

// NewQuote creates a new quote for a customer
func NewQuote(customerID, statusID int64) (*Quote, error) {
	doc, err := newDocument(customerID, statusID)
	if err != nil {
		return nil, err
	}
	return &Quote{Document: doc}, nil
}

// SetValidUntil sets the quote expiry date
func (q *Quote) SetValidUntil(validUntil time.Time) {
	q.ValidUntil = validUntil
	q.Touch()
}

// IsConverted reports whether the quote has already been converted
func (q *Quote) IsConverted() bool {
	return q.ConvertedOrderID > 0
}

// ConvertToOrder creates an order carrying the quote's customer, notes
// and line items. The order starts in the given status; line item ids
// are reset so the store assigns fresh ones.
func (q *Quote) ConvertToOrder(orderStatusID int64) (*Order, error) {
	if q.IsConverted() {
		return nil, shared.NewDomainError("ALREADY_CONVERTED", "Quote has already been converted to an order")
	}
	if len(q.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_QUOTE", "Cannot convert a quote without line items")
	}

	order, err := NewOrder(q.CustomerID, orderStatusID)
	if err != nil {
		return nil, err
	}
	order.QuoteID = q.ID
	order.Notes = q.Notes
	for idx := range q.Items {
		item := q.Items[idx]
		item.ID = 0
		item.DocumentID = 0
		order.AddItem(&item)
	}
	return order, nil
}

// MarkConverted records the order the quote was converted into
func (q *Quote) MarkConverted(orderID int64) error {
	if orderID <= 0 {
		return shared.NewDomainError("INVALID_ORDER", "Order ID must be positive")
	}
	if q.IsConverted() {
		return shared.NewDomainError("ALREADY_CONVERTED", "Quote has already been converted to an order")
	}
	q.ConvertedOrderID = orderID
	q.Touch()
	return nil
}
