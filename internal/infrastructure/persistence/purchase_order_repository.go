package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its line items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*trade.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var purchaseOrderModels []models.PurchaseOrderModel
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Preload("Items").
		Order("id DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&purchaseOrderModels).Error; err != nil {
		return nil, err
	}
	return toDomainPurchaseOrders(purchaseOrderModels), nil
}

// FindByCustomer finds purchase orders for a customer
func (r *GormPurchaseOrderRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var purchaseOrderModels []models.PurchaseOrderModel
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&purchaseOrderModels).Error; err != nil {
		return nil, err
	}
	return toDomainPurchaseOrders(purchaseOrderModels), nil
}

// Save creates or updates a purchase order and replaces its line items
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, purchaseOrder *trade.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(purchaseOrder)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		// Replace the item set: delete rows dropped from the
		// document, then upsert the rest.
		keepIDs := make([]int64, 0, len(model.Items))
		for i := range model.Items {
			if model.Items[i].ID > 0 {
				keepIDs = append(keepIDs, model.Items[i].ID)
			}
		}
		stale := tx.Where("document_id = ?", model.ID)
		if len(keepIDs) > 0 {
			stale = stale.Where("id NOT IN ?", keepIDs)
		}
		if err := stale.Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
			return err
		}
		for i := range model.Items {
			model.Items[i].DocumentID = model.ID
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	purchaseOrder.ID = model.ID
	for i := range model.Items {
		purchaseOrder.Items[i].ID = model.Items[i].ID
		purchaseOrder.Items[i].DocumentID = model.Items[i].DocumentID
	}
	return nil
}

// Delete deletes a purchase order and its line items
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseOrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts purchase orders for a customer
func (r *GormPurchaseOrderRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainPurchaseOrders(purchaseOrderModels []models.PurchaseOrderModel) []trade.PurchaseOrder {
	purchaseOrders := make([]trade.PurchaseOrder, len(purchaseOrderModels))
	for i, model := range purchaseOrderModels {
		purchaseOrders[i] = *model.ToDomain()
	}
	return purchaseOrders
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
