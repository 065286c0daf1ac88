package trade

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Document holds the fields every trade document shares: a customer
// reference, a pipeline status id from the status directory, a document
// number assigned at creation time, and line items. Aggregates embed it.
type Document struct {
	shared.BaseEntity
	Number     string
	CustomerID int64
	StatusID   int64
	Notes      string
	Items      []LineItem
	Total      decimal.Decimal
}

func newDocument(customerID, statusID int64) (Document, error) {
	if customerID <= 0 {
		return Document{}, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	if statusID <= 0 {
		return Document{}, shared.NewDomainError("INVALID_STATUS", "Status ID must be positive")
	}
	return Document{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		StatusID:   statusID,
		Total:      decimal.Zero,
	}, nil
}

// SetNumber assigns the document number
func (d *Document) SetNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	d.Number = number
	d.Touch()
	return nil
}

// SetStatus moves the document to another status
func (d *Document) SetStatus(statusID int64) error {
	if statusID <= 0 {
		return shared.NewDomainError("INVALID_STATUS", "Status ID must be positive")
	}
	d.StatusID = statusID
	d.Touch()
	return nil
}

// SetNotes replaces the free-text notes
func (d *Document) SetNotes(notes string) {
	d.Notes = notes
	d.Touch()
}

// AddItem appends a line item and recalculates the total
func (d *Document) AddItem(item *LineItem) {
	item.DocumentID = d.ID
	d.Items = append(d.Items, *item)
	d.recalcTotal()
	d.Touch()
}

// UpdateItem replaces the line item with the same ID
func (d *Document) UpdateItem(item *LineItem) error {
	for idx := range d.Items {
		if d.Items[idx].ID == item.ID {
			d.Items[idx] = *item
			d.recalcTotal()
			d.Touch()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
}

// RemoveItem removes the line item with the given ID
func (d *Document) RemoveItem(itemID int64) error {
	for idx := range d.Items {
		if d.Items[idx].ID == itemID {
			d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
			d.recalcTotal()
			d.Touch()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
}

// FindItem returns the line item with the given ID
func (d *Document) FindItem(itemID int64) (*LineItem, error) {
	for idx := range d.Items {
		if d.Items[idx].ID == itemID {
			return &d.Items[idx], nil
		}
	}
	return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
}

// ItemCount returns the number of line items
func (d *Document) ItemCount() int {
	return len(d.Items)
}

func (d *Document) recalcTotal() {
	total := decimal.Zero
	for idx := range d.Items {
		total = total.Add(d.Items[idx].Amount)
	}
	d.Total = total
}
