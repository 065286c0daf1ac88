package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
)

// StatusRepository defines the interface for status persistence
type StatusRepository interface {
	// FindByID finds a status by its ID
	FindByID(ctx context.Context, id int64) (*Status, error)

	// FindAll finds all statuses matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Status, error)

	// FindByProcess finds all statuses belonging to a process
	FindByProcess(ctx context.Context, process string, filter shared.Filter) ([]Status, error)

	// FindByIDs finds multiple statuses by their IDs
	FindByIDs(ctx context.Context, ids []int64) ([]Status, error)

	// Save creates or updates a status
	Save(ctx context.Context, status *Status) error

	// Delete deletes a status
	Delete(ctx context.Context, id int64) error

	// Count counts all statuses
	Count(ctx context.Context) (int64, error)

	// CountByProcess counts statuses belonging to a process
	CountByProcess(ctx context.Context, process string) (int64, error)
}
