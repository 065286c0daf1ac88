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

// GormContactRepository implements directory.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByID finds a contact by its ID
func (r *GormContactRepository) FindByID(ctx context.Context, id int64) (*directory.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all contacts matching the filter
func (r *GormContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]directory.Contact, error) {
	var contactModels []models.ContactModel
	query := r.db.WithContext(ctx).Model(&models.ContactModel{}).
		Order("first_name ASC, last_name ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return toDomainContacts(contactModels), nil
}

// FindByOwner finds the contacts attached to the given owner
func (r *GormContactRepository) FindByOwner(ctx context.Context, owner activity.DocumentRef, filter shared.Filter) ([]directory.Contact, error) {
	var contactModels []models.ContactModel
	query := r.db.WithContext(ctx).Model(&models.ContactModel{}).
		Where("document_type = ? AND document_id = ?", owner.Type.String(), owner.ID).
		Order("contact_type ASC, first_name ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return toDomainContacts(contactModels), nil
}

// FindByOwnerAndType finds the single contact of the given type attached
// to the owner
func (r *GormContactRepository) FindByOwnerAndType(ctx context.Context, owner activity.DocumentRef, contactType directory.ContactType) (*directory.Contact, error) {
	var model models.ContactModel
	err := r.db.WithContext(ctx).
		First(&model, "document_type = ? AND document_id = ? AND contact_type = ?",
			owner.Type.String(), owner.ID, contactType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a contact
func (r *GormContactRepository) Save(ctx context.Context, contact *directory.Contact) error {
	model := &models.ContactModel{}
	model.FromDomain(contact)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	contact.ID = model.ID
	return nil
}

// Delete deletes a contact
func (r *GormContactRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all contacts
func (r *GormContactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByOwner counts the contacts attached to the given owner
func (r *GormContactRepository) CountByOwner(ctx context.Context, owner activity.DocumentRef) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("document_type = ? AND document_id = ?", owner.Type.String(), owner.ID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainContacts(contactModels []models.ContactModel) []directory.Contact {
	contacts := make([]directory.Contact, len(contactModels))
	for i, model := range contactModels {
		contacts[i] = *model.ToDomain()
	}
	return contacts
}

// Ensure GormContactRepository implements ContactRepository
var _ directory.ContactRepository = (*GormContactRepository)(nil)
