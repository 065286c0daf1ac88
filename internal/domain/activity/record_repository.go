package activity

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
)

// RecordRepository defines the interface for activity record persistence
type RecordRepository interface {
	// FindByID finds an activity record by its ID
	FindByID(ctx context.Context, id int64) (*Record, error)

	// FindAll finds all activity records ordered by ID ascending
	FindAll(ctx context.Context, filter shared.Filter) ([]Record, error)

	// FindByCustomer finds records for a customer ordered by creation
	// time, newest first
	FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]Record, error)

	// FindByDocument finds records for a document reference ordered by
	// creation time, newest first. A non-empty typeNames slice restricts
	// results to records whose type name is in the slice.
	FindByDocument(ctx context.Context, ref DocumentRef, typeNames []string, filter shared.Filter) ([]Record, error)

	// Save creates or updates an activity record
	Save(ctx context.Context, record *Record) error

	// Delete deletes an activity record
	Delete(ctx context.Context, id int64) error

	// Count counts all activity records
	Count(ctx context.Context) (int64, error)

	// CountByCustomer counts records for a customer
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)

	// CountByDocument counts records for a document reference with the
	// same optional type-name restriction as FindByDocument
	CountByDocument(ctx context.Context, ref DocumentRef, typeNames []string) (int64, error)
}

// ActivityTypeRepository defines the interface for activity type persistence
type ActivityTypeRepository interface {
	// FindByID finds an activity type by its ID
	FindByID(ctx context.Context, id int64) (*ActivityType, error)

	// FindByTypeName finds an activity type by its unique name
	FindByTypeName(ctx context.Context, typeName string) (*ActivityType, error)

	// FindAll finds all activity types matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ActivityType, error)

	// FindByTypeNames finds multiple activity types by name
	FindByTypeNames(ctx context.Context, typeNames []string) ([]ActivityType, error)

	// Save creates or updates an activity type
	Save(ctx context.Context, activityType *ActivityType) error

	// Delete deletes an activity type
	Delete(ctx context.Context, id int64) error

	// Count counts all activity types
	Count(ctx context.Context) (int64, error)

	// ExistsByTypeName checks if an activity type with the given name exists
	ExistsByTypeName(ctx context.Context, typeName string) (bool, error)
}
