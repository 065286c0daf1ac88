package trade

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
)

// OrderService handles order business operations
type OrderService struct {
	orders trade.OrderRepository
	scope  TransactionScope
}

// NewOrderService creates a new OrderService
func NewOrderService(orders trade.OrderRepository, scope TransactionScope) *OrderService {
	return &OrderService{
		orders: orders,
		scope:  scope,
	}
}

// Create creates an order with its line items
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := trade.NewOrder(req.CustomerID, req.StatusID)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}
	if req.ShippingDate != nil {
		order.SetShippingDate(*req.ShippingDate)
	}
	for _, itemReq := range req.Items {
		item, err := trade.NewLineItem(itemReq.ProductName, itemReq.SKU, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		if itemReq.Notes != "" {
			item.SetNotes(itemReq.Notes)
		}
		order.AddItem(item)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		if err := order.SetNumber(documentNumber("ORD", order.ID)); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Create new Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameCreate, orderRef(order.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List lists orders
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (*shared.Page[OrderResponse], error) {
	filter.Normalize()

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.toPage(orders, total, filter), nil
}

// ListByCustomer lists a customer's orders
func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[OrderResponse], error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	filter.Normalize()

	orders, err := s.orders.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.toPage(orders, total, filter), nil
}

// Update applies a partial update to an order
func (s *OrderService) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		order = found

		if req.Notes != nil {
			order.SetNotes(*req.Notes)
		}
		if req.ShippingDate != nil {
			order.SetShippingDate(*req.ShippingDate)
		}

		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameUpdate, orderRef(order.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// SetStatus moves an order to another status
func (s *OrderService) SetStatus(ctx context.Context, id int64, req SetStatusRequest) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		order = found

		if err := order.SetStatus(req.StatusID); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Set status of Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameSet, orderRef(order.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// AddItem adds a line item to an order
func (s *OrderService) AddItem(ctx context.Context, id int64, req LineItemRequest) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		order = found

		item, err := trade.NewLineItem(req.ProductName, req.SKU, req.Quantity, req.UnitPrice)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			item.SetNotes(req.Notes)
		}
		order.AddItem(item)

		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameUpdate, orderRef(order.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// UpdateItem applies a partial update to an order line item
func (s *OrderService) UpdateItem(ctx context.Context, id, itemID int64, req UpdateLineItemRequest) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		order = found

		item, err := order.FindItem(itemID)
		if err != nil {
			return err
		}
		if err := applyItemUpdate(item, req); err != nil {
			return err
		}
		if err := order.UpdateItem(item); err != nil {
			return err
		}

		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameUpdate, orderRef(order.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// RemoveItem removes a line item from an order
func (s *OrderService) RemoveItem(ctx context.Context, id, itemID int64, userOwner string) (*OrderResponse, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		order = found

		if err := order.RemoveItem(itemID); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameUpdate, orderRef(order.ID), userOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete deletes an order and records the deletion
func (s *OrderService) Delete(ctx context.Context, id int64, userOwner string) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.Orders().Delete(ctx, id); err != nil {
			return err
		}
		text := fmt.Sprintf("Delete Order #%d", order.ID)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameDelete, orderRef(order.ID), userOwner)
	})
}

func (s *OrderService) toPage(orders []trade.Order, total int64, filter shared.Filter) *shared.Page[OrderResponse] {
	responses := make([]OrderResponse, len(orders))
	for idx := range orders {
		responses[idx] = ToOrderResponse(&orders[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page
}
