package persistence

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerLookup implements activity.CustomerLookup with a single
// IN query per batch. Only the display columns are selected.
type GormCustomerLookup struct {
	db *gorm.DB
}

// NewGormCustomerLookup creates a new GormCustomerLookup
func NewGormCustomerLookup(db *gorm.DB) *GormCustomerLookup {
	return &GormCustomerLookup{db: db}
}

// FindInfoByIDs resolves customer display data for a batch of ids.
// Ids with no matching row are absent from the result.
func (l *GormCustomerLookup) FindInfoByIDs(ctx context.Context, ids []int64) (map[int64]activity.CustomerInfo, error) {
	result := make(map[int64]activity.CustomerInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.CustomerModel
	if err := l.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Select("id", "name", "owner_name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = activity.CustomerInfo{
			ID:        row.ID,
			Name:      row.Name,
			OwnerName: row.OwnerName,
		}
	}
	return result, nil
}

// GormStatusLookup implements activity.StatusLookup with a single IN
// query per batch
type GormStatusLookup struct {
	db *gorm.DB
}

// NewGormStatusLookup creates a new GormStatusLookup
func NewGormStatusLookup(db *gorm.DB) *GormStatusLookup {
	return &GormStatusLookup{db: db}
}

// FindInfoByIDs resolves status display data for a batch of ids
func (l *GormStatusLookup) FindInfoByIDs(ctx context.Context, ids []int64) (map[int64]activity.StatusInfo, error) {
	result := make(map[int64]activity.StatusInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.StatusModel
	if err := l.db.WithContext(ctx).
		Model(&models.StatusModel{}).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = activity.StatusInfo{
			ID:      row.ID,
			Process: row.Process,
			Status:  row.Status,
			Color:   row.Color,
		}
	}
	return result, nil
}

// GormTypeLookup implements activity.TypeLookup with a single IN query
// per batch
type GormTypeLookup struct {
	db *gorm.DB
}

// NewGormTypeLookup creates a new GormTypeLookup
func NewGormTypeLookup(db *gorm.DB) *GormTypeLookup {
	return &GormTypeLookup{db: db}
}

// FindInfoByTypeNames resolves activity type display data for a batch
// of type names
func (l *GormTypeLookup) FindInfoByTypeNames(ctx context.Context, typeNames []string) (map[string]activity.TypeInfo, error) {
	result := make(map[string]activity.TypeInfo, len(typeNames))
	if len(typeNames) == 0 {
		return result, nil
	}

	var rows []models.ActivityTypeModel
	if err := l.db.WithContext(ctx).
		Model(&models.ActivityTypeModel{}).
		Where("type_name IN ?", typeNames).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.TypeName] = activity.TypeInfo{
			ID:       row.ID,
			TypeName: row.TypeName,
			Color:    row.Color,
		}
	}
	return result, nil
}

// Interface assertions
var (
	_ activity.CustomerLookup = (*GormCustomerLookup)(nil)
	_ activity.StatusLookup   = (*GormStatusLookup)(nil)
	_ activity.TypeLookup     = (*GormTypeLookup)(nil)
)
