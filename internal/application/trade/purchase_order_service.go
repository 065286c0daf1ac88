package trade

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	purchaseOrders trade.PurchaseOrderRepository
	scope          TransactionScope
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(purchaseOrders trade.PurchaseOrderRepository, scope TransactionScope) *PurchaseOrderService {
	return &PurchaseOrderService{
		purchaseOrders: purchaseOrders,
		scope:          scope,
	}
}

// Create creates a purchase order with its line items
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	po, err := trade.NewPurchaseOrder(req.CustomerID, req.StatusID, req.VendorName)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		po.SetNotes(req.Notes)
	}
	if req.ExpectedDate != nil {
		po.SetExpectedDate(*req.ExpectedDate)
	}
	for _, itemReq := range req.Items {
		item, err := trade.NewLineItem(itemReq.ProductName, itemReq.SKU, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		if itemReq.Notes != "" {
			item.SetNotes(itemReq.Notes)
		}
		po.AddItem(item)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		if err := po.SetNumber(documentNumber("PO", po.ID)); err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Create new Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameCreate, purchaseOrderRef(po.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, id int64) (*PurchaseOrderResponse, error) {
	po, err := s.purchaseOrders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// List lists purchase orders
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) (*shared.Page[PurchaseOrderResponse], error) {
	filter.Normalize()

	purchaseOrders, err := s.purchaseOrders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.purchaseOrders.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.toPage(purchaseOrders, total, filter), nil
}

// ListByCustomer lists a customer's purchase orders
func (s *PurchaseOrderService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[PurchaseOrderResponse], error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	filter.Normalize()

	purchaseOrders, err := s.purchaseOrders.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.purchaseOrders.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.toPage(purchaseOrders, total, filter), nil
}

// Update applies a partial update to a purchase order
func (s *PurchaseOrderService) Update(ctx context.Context, id int64, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	var po *trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		po = found

		if req.VendorName != nil {
			if err := po.SetVendorName(*req.VendorName); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			po.SetNotes(*req.Notes)
		}
		if req.ExpectedDate != nil {
			po.SetExpectedDate(*req.ExpectedDate)
		}

		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameUpdate, purchaseOrderRef(po.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// SetStatus moves a purchase order to another status
func (s *PurchaseOrderService) SetStatus(ctx context.Context, id int64, req SetStatusRequest) (*PurchaseOrderResponse, error) {
	var po *trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		po = found

		if err := po.SetStatus(req.StatusID); err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Set status of Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameSet, purchaseOrderRef(po.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// AddItem adds a line item to a purchase order
func (s *PurchaseOrderService) AddItem(ctx context.Context, id int64, req LineItemRequest) (*PurchaseOrderResponse, error) {
	var po *trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		po = found

		item, err := trade.NewLineItem(req.ProductName, req.SKU, req.Quantity, req.UnitPrice)
		if err != nil {
			return err
		}
		if req.Notes != "" {
			item.SetNotes(req.Notes)
		}
		po.AddItem(item)

		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameUpdate, purchaseOrderRef(po.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// UpdateItem applies a partial update to a purchase order line item
func (s *PurchaseOrderService) UpdateItem(ctx context.Context, id, itemID int64, req UpdateLineItemRequest) (*PurchaseOrderResponse, error) {
	var po *trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		po = found

		item, err := po.FindItem(itemID)
		if err != nil {
			return err
		}
		if err := applyItemUpdate(item, req); err != nil {
			return err
		}
		if err := po.UpdateItem(item); err != nil {
			return err
		}

		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameUpdate, purchaseOrderRef(po.ID), "")
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// RemoveItem removes a line item from a purchase order
func (s *PurchaseOrderService) RemoveItem(ctx context.Context, id, itemID int64, userOwner string) (*PurchaseOrderResponse, error) {
	var po *trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		po = found

		if err := po.RemoveItem(itemID); err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		text := fmt.Sprintf("Update Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameUpdate, purchaseOrderRef(po.ID), userOwner)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// Delete deletes a purchase order and records the deletion
func (s *PurchaseOrderService) Delete(ctx context.Context, id int64, userOwner string) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Delete(ctx, id); err != nil {
			return err
		}
		text := fmt.Sprintf("Delete Purchase Order #%d", po.ID)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameDelete, purchaseOrderRef(po.ID), userOwner)
	})
}

func (s *PurchaseOrderService) toPage(purchaseOrders []trade.PurchaseOrder, total int64, filter shared.Filter) *shared.Page[PurchaseOrderResponse] {
	responses := make([]PurchaseOrderResponse, len(purchaseOrders))
	for idx := range purchaseOrders {
		responses[idx] = ToPurchaseOrderResponse(&purchaseOrders[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page
}
