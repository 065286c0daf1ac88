package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityRecordRepository implements activity.RecordRepository using GORM
type GormActivityRecordRepository struct {
	db *gorm.DB
}

// NewGormActivityRecordRepository creates a new GormActivityRecordRepository
func NewGormActivityRecordRepository(db *gorm.DB) *GormActivityRecordRepository {
	return &GormActivityRecordRepository{db: db}
}

// FindByID finds an activity record by its ID
func (r *GormActivityRecordRepository) FindByID(ctx context.Context, id int64) (*activity.Record, error) {
	var model models.ActivityRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all activity records ordered by ID ascending
func (r *GormActivityRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]activity.Record, error) {
	var recordModels []models.ActivityRecordModel
	query := r.db.WithContext(ctx).Model(&models.ActivityRecordModel{}).
		Order("id ASC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(recordModels), nil
}

// FindByCustomer finds records for a customer, newest first
func (r *GormActivityRecordRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]activity.Record, error) {
	var recordModels []models.ActivityRecordModel
	query := r.db.WithContext(ctx).Model(&models.ActivityRecordModel{}).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(recordModels), nil
}

// FindByDocument finds records for a document reference, newest first,
// optionally restricted to a set of activity type names
func (r *GormActivityRecordRepository) FindByDocument(ctx context.Context, ref activity.DocumentRef, typeNames []string, filter shared.Filter) ([]activity.Record, error) {
	var recordModels []models.ActivityRecordModel
	query := r.byDocument(r.db.WithContext(ctx).Model(&models.ActivityRecordModel{}), ref, typeNames).
		Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(recordModels), nil
}

// Save creates or updates an activity record
func (r *GormActivityRecordRepository) Save(ctx context.Context, record *activity.Record) error {
	model := &models.ActivityRecordModel{}
	model.FromDomain(record)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	record.ID = model.ID
	return nil
}

// Delete deletes an activity record
func (r *GormActivityRecordRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ActivityRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all activity records
func (r *GormActivityRecordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityRecordModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts records for a customer
func (r *GormActivityRecordRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityRecordModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByDocument counts records for a document reference with the same
// optional type-name restriction as FindByDocument
func (r *GormActivityRecordRepository) CountByDocument(ctx context.Context, ref activity.DocumentRef, typeNames []string) (int64, error) {
	var count int64
	query := r.byDocument(r.db.WithContext(ctx).Model(&models.ActivityRecordModel{}), ref, typeNames)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormActivityRecordRepository) byDocument(query *gorm.DB, ref activity.DocumentRef, typeNames []string) *gorm.DB {
	query = query.Where("document_type = ? AND document_id = ?", string(ref.Type), ref.ID)
	if len(typeNames) > 0 {
		query = query.Where("activity_type IN ?", typeNames)
	}
	return query
}

func toDomainRecords(recordModels []models.ActivityRecordModel) []activity.Record {
	records := make([]activity.Record, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records
}

// Ensure GormActivityRecordRepository implements RecordRepository
var _ activity.RecordRepository = (*GormActivityRecordRepository)(nil)
