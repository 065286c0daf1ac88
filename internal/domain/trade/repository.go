package trade

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
)

// QuoteRepository defines the interface for quote persistence
type QuoteRepository interface {
	// FindByID finds a quote with its line items
	FindByID(ctx context.Context, id int64) (*Quote, error)

	// FindAll finds all quotes matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Quote, error)

	// FindByCustomer finds quotes for a customer
	FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]Quote, error)

	// Save creates or updates a quote with its line items
	Save(ctx context.Context, quote *Quote) error

	// Delete deletes a quote and its line items
	Delete(ctx context.Context, id int64) error

	// Count counts quotes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts quotes for a customer
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its line items
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByCustomer finds orders for a customer
	FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order with its line items
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its line items
	Delete(ctx context.Context, id int64) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts orders for a customer
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice with its line items
	FindByID(ctx context.Context, id int64) (*Invoice, error)

	// FindAll finds all invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// FindByCustomer finds invoices for a customer
	FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice with its line items
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice and its line items
	Delete(ctx context.Context, id int64) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts invoices for a customer
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order with its line items
	FindByID(ctx context.Context, id int64) (*PurchaseOrder, error)

	// FindAll finds all purchase orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByCustomer finds purchase orders for a customer
	FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order with its line items
	Save(ctx context.Context, purchaseOrder *PurchaseOrder) error

	// Delete deletes a purchase order and its line items
	Delete(ctx context.Context, id int64) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts purchase orders for a customer
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}
