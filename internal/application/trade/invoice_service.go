package trade

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
)

// InvoiceService handles invoice business operations
type InvoiceService struct {
	invoices trade.InvoiceRepository
	scope    TransactionScope
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices trade.InvoiceRepository, scope TransactionScope) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		scope:    scope,
	}
}

// Create creates an invoice with its line items. When OrderID is set the
// order must exist; the invoice links to it.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := trade.NewInvoice(req.CustomerID, req.StatusID)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		invoice.SetNotes(req.Notes)
	}
	if req.DueDate != nil {
		invoice.SetDueDate(*req.DueDate)
	}
	for _, itemReq := range req.Items {
		item, err := trade.NewLineItem(itemReq.ProductName, itemReq.SKU, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		if itemReq.Notes != "" {
			item.SetNotes(itemReq.Notes)
		}
		invoice.AddItem(item)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if req.OrderID > 0 {
			if _, err := repos.Orders().FindByID(ctx, req.OrderID); err != nil {
				return err
			}
			if err := invoice.SetOrderID(req.OrderID); err != nil {
				return err
			}
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		if err := invoice.SetNumber(documentNumber("INV", invoice.ID)); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Create new Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameCreate, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List lists invoices
func (s *InvoiceService) List(ctx context.Context, filter shared.Filter) (*shared.Page[InvoiceResponse], error) {
	filter.Normalize()

	invoices, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoices.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.toPage(invoices, total, filter), nil
}

// ListByCustomer lists a customer's invoices
func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[InvoiceResponse], error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	filter.Normalize()

	invoices, err := s.invoices.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoices.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.toPage(invoices, total, filter), nil
}

// Update applies a partial update to an invoice
func (s *InvoiceService) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		if req.Notes != nil {
			invoice.SetNotes(*req.Notes)
		}
		if req.DueDate != nil {
			invoice.SetDueDate(*req.DueDate)
		}

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameUpdate, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// SetStatus moves an invoice to another status
func (s *InvoiceService) SetStatus(ctx context.Context, id int64, req SetStatusRequest) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		if err := invoice.SetStatus(req.StatusID); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Set status of Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameSet, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// RegisterPayment records a payment against an invoice
func (s *InvoiceService) RegisterPayment(ctx context.Context, id int64, req RegisterPaymentRequest) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		if err := invoice.RegisterPayment(req.Amount); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameUpdate, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// AddItem adds a line item to an invoice
func (s *InvoiceService) AddItem(ctx context.Context, id int64, req LineItemRequest) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		item, err := trade.NewLineItem(req.ProductName, req.SKU, req.Quantity, req.UnitPrice)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			item.SetNotes(req.Notes)
		}
		invoice.AddItem(item)

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameUpdate, invoiceRef(invoice.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// UpdateItem applies a partial update to an invoice line item
func (s *InvoiceService) UpdateItem(ctx context.Context, id, itemID int64, req UpdateLineItemRequest) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		item, err := invoice.FindItem(itemID)
		if err != nil {
			return err
		}
		if err := applyItemUpdate(item, req); err != nil {
			return err
		}
		if err := invoice.UpdateItem(item); err != nil {
			return err
		}

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameUpdate, invoiceRef(invoice.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// RemoveItem removes a line item from an invoice
func (s *InvoiceService) RemoveItem(ctx context.Context, id, itemID int64, userOwner string) (*InvoiceResponse, error) {
	var invoice *trade.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		invoice = found

		if err := invoice.RemoveItem(itemID); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameUpdate, invoiceRef(invoice.ID), userOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete deletes an invoice and records the deletion
func (s *InvoiceService) Delete(ctx context.Context, id int64, userOwner string) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.Invoices().Delete(ctx, id); err != nil {
			return err
		}
		text := fmt.Sprintf("Delete Invoice #%d", invoice.ID)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameDelete, invoiceRef(invoice.ID), userOwner)
	})
}

func (s *InvoiceService) toPage(invoices []trade.Invoice, total int64, filter shared.Filter) *shared.Page[InvoiceResponse] {
	responses := make([]InvoiceResponse, len(invoices))
	for idx := range invoices {
		responses[idx] = ToInvoiceResponse(&invoices[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page
}
