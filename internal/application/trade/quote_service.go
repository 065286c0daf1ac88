package trade

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
)

// QuoteService handles quote business operations. Every mutation runs in
// one transaction together with the activity record describing it.
type QuoteService struct {
	quotes trade.QuoteRepository
	scope  TransactionScope
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quotes trade.QuoteRepository, scope TransactionScope) *QuoteService {
	return &QuoteService{
		quotes: quotes,
		scope:  scope,
	}
}

// Create creates a quote with its line items
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*QuoteResponse, error) {
	quote, err := trade.NewQuote(req.CustomerID, req.StatusID)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		quote.SetNotes(req.Notes)
	}
	if req.ValidUntil != nil {
		quote.SetValidUntil(*req.ValidUntil)
	}
	for _, itemReq := range req.Items {
		item, err := trade.NewLineItem(itemReq.ProductName, itemReq.SKU, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		if itemReq.Notes != "" {
			item.SetNotes(itemReq.Notes)
		}
		quote.AddItem(item)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		if err := quote.SetNumber(documentNumber("QUO", quote.ID)); err != nil {
			return err
		}
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Create new Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameCreate, quoteRef(quote.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByID retrieves a quote by ID
func (s *QuoteService) GetByID(ctx context.Context, id int64) (*QuoteResponse, error) {
	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}

// List lists quotes
func (s *QuoteService) List(ctx context.Context, filter shared.Filter) (*shared.Page[QuoteResponse], error) {
	filter.Normalize()

	quotes, err := s.quotes.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.quotes.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]QuoteResponse, len(quotes))
	for idx := range quotes {
		responses[idx] = ToQuoteResponse(&quotes[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page, nil
}

// ListByCustomer lists a customer's quotes
func (s *QuoteService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[QuoteResponse], error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	filter.Normalize()

	quotes, err := s.quotes.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.quotes.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]QuoteResponse, len(quotes))
	for idx := range quotes {
		responses[idx] = ToQuoteResponse(&quotes[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page, nil
}

// Update applies a partial update to a quote
func (s *QuoteService) Update(ctx context.Context, id int64, req UpdateQuoteRequest) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		quote = found

		if req.Notes != nil {
			quote.SetNotes(*req.Notes)
		}
		if req.ValidUntil != nil {
			quote.SetValidUntil(*req.ValidUntil)
		}

		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameUpdate, quoteRef(quote.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// SetStatus moves a quote to another status
func (s *QuoteService) SetStatus(ctx context.Context, id int64, req SetStatusRequest) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		quote = found

		if err := quote.SetStatus(req.StatusID); err != nil {
			return err
		}
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Set status of Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameSet, quoteRef(quote.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// AddItem adds a line item to a quote
func (s *QuoteService) AddItem(ctx context.Context, id int64, req LineItemRequest) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		quote = found

		item, err := trade.NewLineItem(req.ProductName, req.SKU, req.Quantity, req.UnitPrice)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			item.SetNotes(req.Notes)
		}
		quote.AddItem(item)

		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameUpdate, quoteRef(quote.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// UpdateItem applies a partial update to a quote line item
func (s *QuoteService) UpdateItem(ctx context.Context, id, itemID int64, req UpdateLineItemRequest) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		quote = found

		item, err := quote.FindItem(itemID)
		if err != nil {
			return err
		}
		if err := applyItemUpdate(item, req); err != nil {
			return err
		}
		if err := quote.UpdateItem(item); err != nil {
			return err
		}

		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameUpdate, quoteRef(quote.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// RemoveItem removes a line item from a quote
func (s *QuoteService) RemoveItem(ctx context.Context, id, itemID int64, userOwner string) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		quote = found

		if err := quote.RemoveItem(itemID); err != nil {
			return err
		}
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameUpdate, quoteRef(quote.ID), userOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// Convert converts a quote into an order. The order is created, the
// quote marked converted, and Convert activities appended on both
// documents, all in one transaction.
func (s *QuoteService) Convert(ctx context.Context, id int64, req ConvertQuoteRequest) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		quote, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}

		created, err := quote.ConvertToOrder(req.OrderStatusID)
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, created); err != nil {
			return err
		}
		if err := created.SetNumber(documentNumber("ORD", created.ID)); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, created); err != nil {
			return err
		}

		if err := quote.MarkConverted(created.ID); err != nil {
			return err
		}
		if err := repos.Quotes().Save(ctx, quote); err != nil {
			return err
		}

		text := fmt.Sprintf("Convert Quote #%d to Order #%d", quote.ID, created.ID)
		if err := logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameConvert, quoteRef(quote.ID), req.UserOwner); err != nil {
			return err
		}
		if err := logActivity(ctx, repos, created.CustomerID, created.StatusID, text, activity.TypeNameConvert, orderRef(created.ID), req.UserOwner); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete deletes a quote and records the deletion
func (s *QuoteService) Delete(ctx context.Context, id int64, userOwner string) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		quote, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.Quotes().Delete(ctx, id); err != nil {
			return err
		}
		text := fmt.Sprintf("Delete Quote #%d", quote.ID)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameDelete, quoteRef(quote.ID), userOwner)
	})
}

func applyItemUpdate(item *trade.LineItem, req UpdateLineItemRequest) error {
	if req.Quantity != nil {
		if err := item.UpdateQuantity(*req.Quantity); err != nil {
			return err
		}
	}
	if req.UnitPrice != nil {
		if err := item.UpdateUnitPrice(*req.UnitPrice); err != nil {
			return err
		}
	}
	if req.Notes != nil {
		item.SetNotes(*req.Notes)
	}
	return nil
}
