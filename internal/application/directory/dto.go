package directory

import (
	"time"

	"github.com/crm/backend/internal/domain/directory"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=200"`
	OwnerName       string `json:"owner_name" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email,max=200"`
	PhoneNumber     string `json:"phone_number" binding:"max=50"`
	MobileNumber    string `json:"mobile_number" binding:"max=50"`
	WebsiteURL      string `json:"website_url" binding:"max=200"`
	BillingAddress  string `json:"billing_address" binding:"max=500"`
	ShippingAddress string `json:"shipping_address" binding:"max=500"`
	City            string `json:"city" binding:"max=100"`
	State           string `json:"state" binding:"max=100"`
	PostalCode      string `json:"postal_code" binding:"max=20"`
	Country         string `json:"country" binding:"max=100"`
	Industry        string `json:"industry" binding:"max=100"`
	Notes           string `json:"notes"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=200"`
	OwnerName       *string `json:"owner_name" binding:"omitempty,min=1,max=100"`
	Email           *string `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber     *string `json:"phone_number" binding:"omitempty,max=50"`
	MobileNumber    *string `json:"mobile_number" binding:"omitempty,max=50"`
	WebsiteURL      *string `json:"website_url" binding:"omitempty,max=200"`
	BillingAddress  *string `json:"billing_address" binding:"omitempty,max=500"`
	ShippingAddress *string `json:"shipping_address" binding:"omitempty,max=500"`
	City            *string `json:"city" binding:"omitempty,max=100"`
	State           *string `json:"state" binding:"omitempty,max=100"`
	PostalCode      *string `json:"postal_code" binding:"omitempty,max=20"`
	Country         *string `json:"country" binding:"omitempty,max=100"`
	Industry        *string `json:"industry" binding:"omitempty,max=100"`
	Notes           *string `json:"notes"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	OwnerName       string    `json:"owner_name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number"`
	MobileNumber    string    `json:"mobile_number"`
	WebsiteURL      string    `json:"website_url"`
	BillingAddress  string    `json:"billing_address"`
	ShippingAddress string    `json:"shipping_address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	PostalCode      string    `json:"postal_code"`
	Country         string    `json:"country"`
	Industry        string    `json:"industry"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a customer to its response form
func ToCustomerResponse(customer *directory.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              customer.ID,
		Name:            customer.Name,
		OwnerName:       customer.OwnerName,
		Email:           customer.Email,
		PhoneNumber:     customer.PhoneNumber,
		MobileNumber:    customer.MobileNumber,
		WebsiteURL:      customer.WebsiteURL,
		BillingAddress:  customer.BillingAddress,
		ShippingAddress: customer.ShippingAddress,
		City:            customer.City,
		State:           customer.State,
		PostalCode:      customer.PostalCode,
		Country:         customer.Country,
		Industry:        customer.Industry,
		Notes:           customer.Notes,
		CreatedAt:       customer.CreatedAt,
		UpdatedAt:       customer.UpdatedAt,
	}
}

// =============================================================================
// Status DTOs
// =============================================================================

// CreateStatusRequest represents a request to create a new status
type CreateStatusRequest struct {
	Process string `json:"process" binding:"required,min=1,max=100"`
	Status  string `json:"status" binding:"required,min=1,max=100"`
	Color   int    `json:"color" binding:"gte=0"`
}

// UpdateStatusRequest represents a partial status update
type UpdateStatusRequest struct {
	Process *string `json:"process" binding:"omitempty,min=1,max=100"`
	Status  *string `json:"status" binding:"omitempty,min=1,max=100"`
	Color   *int    `json:"color" binding:"omitempty,gte=0"`
}

// StatusResponse represents a status in API responses
type StatusResponse struct {
	ID        int64     `json:"id"`
	Process   string    `json:"process"`
	Status    string    `json:"status"`
	Color     int       `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToStatusResponse converts a status to its response form
func ToStatusResponse(status *directory.Status) StatusResponse {
	return StatusResponse{
		ID:        status.ID,
		Process:   status.Process,
		Status:    status.Status,
		Color:     status.Color,
		CreatedAt: status.CreatedAt,
		UpdatedAt: status.UpdatedAt,
	}
}

// =============================================================================
// Contact DTOs
// =============================================================================

// CreateContactRequest represents a request to create a new contact
type CreateContactRequest struct {
	DocumentType  string `json:"document_type" binding:"required"`
	DocumentID    int64  `json:"document_id" binding:"required,gt=0"`
	ContactType   string `json:"contact_type" binding:"required"`
	FirstName     string `json:"first_name" binding:"required,min=1,max=100"`
	LastName      string `json:"last_name" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber   string `json:"phone_number" binding:"max=50"`
	MobileNumber  string `json:"mobile_number" binding:"max=50"`
	PositionTitle string `json:"position_title" binding:"max=100"`
}

// UpdateContactRequest represents a partial contact update
type UpdateContactRequest struct {
	FirstName     *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,max=50"`
	MobileNumber  *string `json:"mobile_number" binding:"omitempty,max=50"`
	PositionTitle *string `json:"position_title" binding:"omitempty,max=100"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID            int64     `json:"id"`
	DocumentType  string    `json:"document_type"`
	DocumentID    int64     `json:"document_id"`
	ContactType   string    `json:"contact_type"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phone_number"`
	MobileNumber  string    `json:"mobile_number"`
	PositionTitle string    `json:"position_title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToContactResponse converts a contact to its response form
func ToContactResponse(contact *directory.Contact) ContactResponse {
	return ContactResponse{
		ID:            contact.ID,
		DocumentType:  contact.Owner.Type.String(),
		DocumentID:    contact.Owner.ID,
		ContactType:   contact.ContactType.String(),
		FirstName:     contact.FirstName,
		LastName:      contact.LastName,
		Email:         contact.Email,
		PhoneNumber:   contact.PhoneNumber,
		MobileNumber:  contact.MobileNumber,
		PositionTitle: contact.PositionTitle,
		CreatedAt:     contact.CreatedAt,
		UpdatedAt:     contact.UpdatedAt,
	}
}

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest represents a request to create a new address
type CreateAddressRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	DocumentID   int64  `json:"document_id" binding:"required,gt=0"`
	AddressType  string `json:"address_type" binding:"required"`
	Address1     string `json:"address1" binding:"required,min=1,max=200"`
	Address2     string `json:"address2" binding:"max=200"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"max=100"`
	Zip          string `json:"zip" binding:"max=20"`
	Country      string `json:"country" binding:"max=100"`
}

// UpdateAddressRequest represents a partial address update
type UpdateAddressRequest struct {
	Address1 *string `json:"address1" binding:"omitempty,min=1,max=200"`
	Address2 *string `json:"address2" binding:"omitempty,max=200"`
	City     *string `json:"city" binding:"omitempty,max=100"`
	State    *string `json:"state" binding:"omitempty,max=100"`
	Zip      *string `json:"zip" binding:"omitempty,max=20"`
	Country  *string `json:"country" binding:"omitempty,max=100"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID           int64     `json:"id"`
	DocumentType string    `json:"document_type"`
	DocumentID   int64     `json:"document_id"`
	AddressType  string    `json:"address_type"`
	Address1     string    `json:"address1"`
	Address2     string    `json:"address2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToAddressResponse converts an address to its response form
func ToAddressResponse(address *directory.Address) AddressResponse {
	return AddressResponse{
		ID:           address.ID,
		DocumentType: address.Owner.Type.String(),
		DocumentID:   address.Owner.ID,
		AddressType:  address.AddressType.String(),
		Address1:     address.Address1,
		Address2:     address.Address2,
		City:         address.City,
		State:        address.State,
		Zip:          address.Zip,
		Country:      address.Country,
		CreatedAt:    address.CreatedAt,
		UpdatedAt:    address.UpdatedAt,
	}
}
