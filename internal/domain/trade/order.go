package trade

import "time"

// Order is a confirmed sale. QuoteID links back to the originating
// quote, zero for orders created directly.
type Order struct {
	Document
	QuoteID      int64
	ShippingDate time.Time
}

// NewOrder creates a new order for a customer
func NewOrder(customerID, statusID int64) (*Order, error) {
	doc, err := newDocument(customerID, statusID)
	if err != nil {
		return nil, err
	}
	return &Order{Document: doc}, nil
}

// SetShippingDate sets the planned shipping date
func (o *Order) SetShippingDate(shippingDate time.Time) {
	o.ShippingDate = shippingDate
	o.Touch()
}

// FromQuote reports whether the order originated from a quote
func (o *Order) FromQuote() bool {
	return o.QuoteID > 0
}
