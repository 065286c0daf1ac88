package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormQuoteRepository implements trade.QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote with its line items
func (r *GormQuoteRepository) FindByID(ctx context.Context, id int64) (*trade.Quote, error) {
	var model models.QuoteModel
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

// FindAll finds all quotes matching the filter
func (r *GormQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quote, error) {
	var quoteModels []models.QuoteModel
	query := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Preload("Items").
		Order("id DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, err
	}
	return toDomainQuotes(quoteModels), nil
}

// FindByCustomer finds quotes for a customer
func (r *GormQuoteRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]trade.Quote, error) {
	var quoteModels []models.QuoteModel
	query := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, err
	}
	return toDomainQuotes(quoteModels), nil
}

// Save creates or updates a quote and replaces its line items
func (r *GormQuoteRepository) Save(ctx context.Context, quote *trade.Quote) error {
	model := models.QuoteModelFromDomain(quote)
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
		if err := stale.Delete(&models.QuoteItemModel{}).Error; err != nil {
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
	quote.ID = model.ID
	for i := range model.Items {
		quote.Items[i].ID = model.Items[i].ID
		quote.Items[i].DocumentID = model.Items[i].DocumentID
	}
	return nil
}

// Delete deletes a quote and its line items
func (r *GormQuoteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.QuoteItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.QuoteModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts quotes matching the filter
func (r *GormQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QuoteModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts quotes for a customer
func (r *GormQuoteRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QuoteModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainQuotes(quoteModels []models.QuoteModel) []trade.Quote {
	quotes := make([]trade.Quote, len(quoteModels))
	for i, model := range quoteModels {
		quotes[i] = *model.ToDomain()
	}
	return quotes
}

// Ensure GormQuoteRepository implements QuoteRepository
var _ trade.QuoteRepository = (*GormQuoteRepository)(nil)
