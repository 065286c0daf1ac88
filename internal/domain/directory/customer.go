package directory

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// Customer is a CRM directory entry. Activity records reference
// customers by id; deleting a customer intentionally leaves those
// references dangling.
type Customer struct {
	shared.BaseEntity
	Name            string
	OwnerName       string
	Email           string
	PhoneNumber     string
	MobileNumber    string
	WebsiteURL      string
	BillingAddress  string
	ShippingAddress string
	City            string
	State           string
	PostalCode      string
	Country         string
	Industry        string
	Notes           string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, ownerName, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return nil, shared.NewDomainError("INVALID_OWNER_NAME", "Owner name cannot be empty")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		OwnerName:  ownerName,
		Email:      email,
	}, nil
}

// Rename changes the customer name
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetOwnerName changes the account owner display name
func (c *Customer) SetOwnerName(ownerName string) error {
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return shared.NewDomainError("INVALID_OWNER_NAME", "Owner name cannot be empty")
	}
	c.OwnerName = ownerName
	c.Touch()
	return nil
}

// SetEmail changes the contact email
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	c.Email = email
	c.Touch()
	return nil
}

// SetContactNumbers updates phone and mobile numbers
func (c *Customer) SetContactNumbers(phone, mobile string) {
	c.PhoneNumber = strings.TrimSpace(phone)
	c.MobileNumber = strings.TrimSpace(mobile)
	c.Touch()
}

// SetWebsite updates the website URL
func (c *Customer) SetWebsite(url string) {
	c.WebsiteURL = strings.TrimSpace(url)
	c.Touch()
}

// SetAddresses updates billing and shipping addresses
func (c *Customer) SetAddresses(billing, shipping, city, state, postalCode, country string) {
	c.BillingAddress = strings.TrimSpace(billing)
	c.ShippingAddress = strings.TrimSpace(shipping)
	c.City = strings.TrimSpace(city)
	c.State = strings.TrimSpace(state)
	c.PostalCode = strings.TrimSpace(postalCode)
	c.Country = strings.TrimSpace(country)
	c.Touch()
}

// SetIndustry updates the industry label
func (c *Customer) SetIndustry(industry string) {
	c.Industry = strings.TrimSpace(industry)
	c.Touch()
}

// SetNotes replaces the free-text notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}
