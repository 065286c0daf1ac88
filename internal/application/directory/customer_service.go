package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerService handles customer directory operations
type CustomerService struct {
	customers directory.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers directory.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
	}

	customer, err := directory.NewCustomer(req.Name, req.OwnerName, req.Email)
	if err != nil {
		return nil, err
	}
	customer.SetContactNumbers(req.PhoneNumber, req.MobileNumber)
	customer.SetWebsite(req.WebsiteURL)
	customer.SetAddresses(req.BillingAddress, req.ShippingAddress, req.City, req.State, req.PostalCode, req.Country)
	customer.SetIndustry(req.Industry)
	if req.Notes != "" {
		customer.SetNotes(req.Notes)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List lists customers; the filter's search term matches name, owner
// name, email and phone numbers
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Page[CustomerResponse], error) {
	filter.Normalize()

	customers, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customers.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for idx := range customers {
		responses[idx] = ToCustomerResponse(&customers[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := customer.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.OwnerName != nil {
		if err := customer.SetOwnerName(*req.OwnerName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil && *req.Email != customer.Email {
		exists, err := s.customers.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
		}
		if err := customer.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != nil || req.MobileNumber != nil {
		phone := customer.PhoneNumber
		mobile := customer.MobileNumber
		if req.PhoneNumber != nil {
			phone = *req.PhoneNumber
		}
		if req.MobileNumber != nil {
			mobile = *req.MobileNumber
		}
		customer.SetContactNumbers(phone, mobile)
	}
	if req.WebsiteURL != nil {
		customer.SetWebsite(*req.WebsiteURL)
	}
	if req.BillingAddress != nil || req.ShippingAddress != nil || req.City != nil ||
		req.State != nil || req.PostalCode != nil || req.Country != nil {
		billing := pick(req.BillingAddress, customer.BillingAddress)
		shipping := pick(req.ShippingAddress, customer.ShippingAddress)
		city := pick(req.City, customer.City)
		state := pick(req.State, customer.State)
		postal := pick(req.PostalCode, customer.PostalCode)
		country := pick(req.Country, customer.Country)
		customer.SetAddresses(billing, shipping, city, state, postal, country)
	}
	if req.Industry != nil {
		customer.SetIndustry(*req.Industry)
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete deletes a customer. Activity records referencing the customer
// are left in place; the audit log tolerates dangling references.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}

func pick(override *string, current string) string {
	if override != nil {
		return *override
	}
	return current
}
