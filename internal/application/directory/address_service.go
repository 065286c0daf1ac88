package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
)

// AddressService handles the address directory, keyed the same way as
// contacts: polymorphic owner plus an address type.
type AddressService struct {
	addresses directory.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addresses directory.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// Create creates a new address
func (s *AddressService) Create(ctx context.Context, req CreateAddressRequest) (*AddressResponse, error) {
	owner, err := activity.NewDocumentRef(activity.DocumentType(req.DocumentType), req.DocumentID)
	if err != nil {
		return nil, err
	}
	addressType, err := directory.ParseAddressType(req.AddressType)
	if err != nil {
		return nil, err
	}

	address, err := directory.NewAddress(owner, addressType, req.Address1)
	if err != nil {
		return nil, err
	}
	if req.Address2 != "" {
		if err := address.SetLines(req.Address1, req.Address2); err != nil {
			return nil, err
		}
	}
	address.SetRegion(req.City, req.State, req.Zip, req.Country)

	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// GetByID retrieves an address by ID
func (s *AddressService) GetByID(ctx context.Context, id int64) (*AddressResponse, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAddressResponse(address)
	return &response, nil
}

// List lists all addresses
func (s *AddressService) List(ctx context.Context, filter shared.Filter) (*shared.Page[AddressResponse], error) {
	filter.Normalize()

	addresses, err := s.addresses.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.addresses.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := shared.NewPage(toAddressResponses(addresses), total, filter.Page, filter.Limit)
	return &page, nil
}

// ListByCustomer lists the addresses attached to a customer. A non-empty
// addressType narrows the listing to billing or shipping addresses.
func (s *AddressService) ListByCustomer(ctx context.Context, customerID int64, addressType string, filter shared.Filter) (*shared.Page[AddressResponse], error) {
	owner, err := activity.NewDocumentRef(activity.DocumentTypeCustomers, customerID)
	if err != nil {
		return nil, err
	}
	var typeFilter directory.AddressType
	if addressType != "" {
		typeFilter, err = directory.ParseAddressType(addressType)
		if err != nil {
			return nil, err
		}
	}
	filter.Normalize()

	addresses, err := s.addresses.FindByOwner(ctx, owner, typeFilter, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.addresses.CountByOwner(ctx, owner, typeFilter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPage(toAddressResponses(addresses), total, filter.Page, filter.Limit)
	return &page, nil
}

// Update applies a partial update to an address
func (s *AddressService) Update(ctx context.Context, id int64, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Address1 != nil || req.Address2 != nil {
		address1 := address.Address1
		address2 := address.Address2
		if req.Address1 != nil {
			address1 = *req.Address1
		}
		if req.Address2 != nil {
			address2 = *req.Address2
		}
		if err := address.SetLines(address1, address2); err != nil {
			return nil, err
		}
	}
	if req.City != nil || req.State != nil || req.Zip != nil || req.Country != nil {
		city := address.City
		state := address.State
		zip := address.Zip
		country := address.Country
		if req.City != nil {
			city = *req.City
		}
		if req.State != nil {
			state = *req.State
		}
		if req.Zip != nil {
			zip = *req.Zip
		}
		if req.Country != nil {
			country = *req.Country
		}
		address.SetRegion(city, state, zip, country)
	}

	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Delete deletes an address
func (s *AddressService) Delete(ctx context.Context, id int64) error {
	return s.addresses.Delete(ctx, id)
}

func toAddressResponses(addresses []directory.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for idx := range addresses {
		responses[idx] = ToAddressResponse(&addresses[idx])
	}
	return responses
}
