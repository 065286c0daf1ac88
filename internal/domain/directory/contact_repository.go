package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
)

// ContactRepository defines the interface for contact persistence
type ContactRepository interface {
	// FindByID finds a contact by its ID
	FindByID(ctx context.Context, id int64) (*Contact, error)

	// FindAll finds all contacts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Contact, error)

	// FindByOwner finds the contacts attached to the given owner
	FindByOwner(ctx context.Context, owner activity.DocumentRef, filter shared.Filter) ([]Contact, error)

	// FindByOwnerAndType finds the single contact of the given type
	// attached to the owner, shared.ErrNotFound when there is none
	FindByOwnerAndType(ctx context.Context, owner activity.DocumentRef, contactType ContactType) (*Contact, error)

	// Save creates or updates a contact
	Save(ctx context.Context, contact *Contact) error

	// Delete deletes a contact
	Delete(ctx context.Context, id int64) error

	// Count counts all contacts
	Count(ctx context.Context) (int64, error)

	// CountByOwner counts the contacts attached to the given owner
	CountByOwner(ctx context.Context, owner activity.DocumentRef) (int64, error)
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByID finds an address by its ID
	FindByID(ctx context.Context, id int64) (*Address, error)

	// FindAll finds all addresses matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Address, error)

	// FindByOwner finds the addresses attached to the given owner.
	// When addressType is non-empty only addresses of that type match.
	FindByOwner(ctx context.Context, owner activity.DocumentRef, addressType AddressType, filter shared.Filter) ([]Address, error)

	// FindByOwnerAndType finds the single address of the given type
	// attached to the owner, shared.ErrNotFound when there is none
	FindByOwnerAndType(ctx context.Context, owner activity.DocumentRef, addressType AddressType) (*Address, error)

	// Save creates or updates an address
	Save(ctx context.Context, address *Address) error

	// Delete deletes an address
	Delete(ctx context.Context, id int64) error

	// Count counts all addresses
	Count(ctx context.Context) (int64, error)

	// CountByOwner counts the addresses attached to the given owner.
	// When addressType is non-empty only addresses of that type match.
	CountByOwner(ctx context.Context, owner activity.DocumentRef, addressType AddressType) (int64, error)
}
