package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStatusRepository implements directory.StatusRepository using GORM
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GormStatusRepository
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// FindByID finds a status by its ID
func (r *GormStatusRepository) FindByID(ctx context.Context, id int64) (*directory.Status, error) {
	var model models.StatusModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all statuses matching the filter
func (r *GormStatusRepository) FindAll(ctx context.Context, filter shared.Filter) ([]directory.Status, error) {
	var statusModels []models.StatusModel
	query := r.db.WithContext(ctx).Model(&models.StatusModel{}).
		Order("process ASC, id ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&statusModels).Error; err != nil {
		return nil, err
	}
	return toDomainStatuses(statusModels), nil
}

// FindByProcess finds all statuses belonging to a process
func (r *GormStatusRepository) FindByProcess(ctx context.Context, process string, filter shared.Filter) ([]directory.Status, error) {
	var statusModels []models.StatusModel
	query := r.db.WithContext(ctx).Model(&models.StatusModel{}).
		Where("process = ?", process).
		Order("id ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&statusModels).Error; err != nil {
		return nil, err
	}
	return toDomainStatuses(statusModels), nil
}

// FindByIDs finds multiple statuses by their IDs
func (r *GormStatusRepository) FindByIDs(ctx context.Context, ids []int64) ([]directory.Status, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var statusModels []models.StatusModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&statusModels).Error; err != nil {
		return nil, err
	}
	return toDomainStatuses(statusModels), nil
}

// Save creates or updates a status
func (r *GormStatusRepository) Save(ctx context.Context, status *directory.Status) error {
	model := &models.StatusModel{}
	model.FromDomain(status)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	status.ID = model.ID
	return nil
}

// Delete deletes a status
func (r *GormStatusRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.StatusModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all statuses
func (r *GormStatusRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StatusModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProcess counts statuses belonging to a process
func (r *GormStatusRepository) CountByProcess(ctx context.Context, process string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StatusModel{}).
		Where("process = ?", process).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainStatuses(statusModels []models.StatusModel) []directory.Status {
	statuses := make([]directory.Status, len(statusModels))
	for i, model := range statusModels {
		statuses[i] = *model.ToDomain()
	}
	return statuses
}

// Ensure GormStatusRepository implements StatusRepository
var _ directory.StatusRepository = (*GormStatusRepository)(nil)
