package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAddressRepository implements directory.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id int64) (*directory.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all addresses matching the filter
func (r *GormAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]directory.Address, error) {
	var addressModels []models.AddressModel
	query := r.db.WithContext(ctx).Model(&models.AddressModel{}).
		Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}
	return toDomainAddresses(addressModels), nil
}

// FindByOwner finds the addresses attached to the given owner, optionally
// restricted to one address type
func (r *GormAddressRepository) FindByOwner(ctx context.Context, owner activity.DocumentRef, addressType directory.AddressType, filter shared.Filter) ([]directory.Address, error) {
	var addressModels []models.AddressModel
	query := r.byOwner(r.db.WithContext(ctx).Model(&models.AddressModel{}), owner, addressType).
		Order("address_type ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}
	return toDomainAddresses(addressModels), nil
}

// FindByOwnerAndType finds the single address of the given type attached
// to the owner
func (r *GormAddressRepository) FindByOwnerAndType(ctx context.Context, owner activity.DocumentRef, addressType directory.AddressType) (*directory.Address, error) {
	var model models.AddressModel
	err := r.db.WithContext(ctx).
		First(&model, "document_type = ? AND document_id = ? AND address_type = ?",
			owner.Type.String(), owner.ID, addressType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *directory.Address) error {
	model := &models.AddressModel{}
	model.FromDomain(address)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	address.ID = model.ID
	return nil
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all addresses
func (r *GormAddressRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByOwner counts the addresses attached to the given owner, optionally
// restricted to one address type
func (r *GormAddressRepository) CountByOwner(ctx context.Context, owner activity.DocumentRef, addressType directory.AddressType) (int64, error) {
	var count int64
	if err := r.byOwner(r.db.WithContext(ctx).Model(&models.AddressModel{}), owner, addressType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAddressRepository) byOwner(query *gorm.DB, owner activity.DocumentRef, addressType directory.AddressType) *gorm.DB {
	query = query.Where("document_type = ? AND document_id = ?", owner.Type.String(), owner.ID)
	if addressType != "" {
		query = query.Where("address_type = ?", addressType.String())
	}
	return query
}

func toDomainAddresses(addressModels []models.AddressModel) []directory.Address {
	addresses := make([]directory.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses
}

// Ensure GormAddressRepository implements AddressRepository
var _ directory.AddressRepository = (*GormAddressRepository)(nil)
