package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityTypeRepository implements activity.ActivityTypeRepository using GORM
type GormActivityTypeRepository struct {
	db *gorm.DB
}

// NewGormActivityTypeRepository creates a new GormActivityTypeRepository
func NewGormActivityTypeRepository(db *gorm.DB) *GormActivityTypeRepository {
	return &GormActivityTypeRepository{db: db}
}

// FindByID finds an activity type by its ID
func (r *GormActivityTypeRepository) FindByID(ctx context.Context, id int64) (*activity.ActivityType, error) {
	var model models.ActivityTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTypeName finds an activity type by its unique name
func (r *GormActivityTypeRepository) FindByTypeName(ctx context.Context, typeName string) (*activity.ActivityType, error) {
	var model models.ActivityTypeModel
	if err := r.db.WithContext(ctx).First(&model, "type_name = ?", typeName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all activity types matching the filter
func (r *GormActivityTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]activity.ActivityType, error) {
	var typeModels []models.ActivityTypeModel
	query := r.db.WithContext(ctx).Model(&models.ActivityTypeModel{}).
		Order("id ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&typeModels).Error; err != nil {
		return nil, err
	}
	return toDomainActivityTypes(typeModels), nil
}

// FindByTypeNames finds multiple activity types by name
func (r *GormActivityTypeRepository) FindByTypeNames(ctx context.Context, typeNames []string) ([]activity.ActivityType, error) {
	if len(typeNames) == 0 {
		return nil, nil
	}
	var typeModels []models.ActivityTypeModel
	if err := r.db.WithContext(ctx).
		Where("type_name IN ?", typeNames).
		Find(&typeModels).Error; err != nil {
		return nil, err
	}
	return toDomainActivityTypes(typeModels), nil
}

// Save creates or updates an activity type
func (r *GormActivityTypeRepository) Save(ctx context.Context, activityType *activity.ActivityType) error {
	model := &models.ActivityTypeModel{}
	model.FromDomain(activityType)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	activityType.ID = model.ID
	return nil
}

// Delete deletes an activity type
func (r *GormActivityTypeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ActivityTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all activity types
func (r *GormActivityTypeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityTypeModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByTypeName checks if an activity type with the given name exists
func (r *GormActivityTypeRepository) ExistsByTypeName(ctx context.Context, typeName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityTypeModel{}).
		Where("type_name = ?", typeName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainActivityTypes(typeModels []models.ActivityTypeModel) []activity.ActivityType {
	types := make([]activity.ActivityType, len(typeModels))
	for i, model := range typeModels {
		types[i] = *model.ToDomain()
	}
	return types
}

// Ensure GormActivityTypeRepository implements ActivityTypeRepository
var _ activity.ActivityTypeRepository = (*GormActivityTypeRepository)(nil)
