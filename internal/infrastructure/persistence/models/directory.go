package models

import (
	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
)

// CustomerModel is the GORM model for customers
type CustomerModel struct {
	BaseModel
	Name            string `gorm:"type:varchar(255);not null;index"`
	OwnerName       string `gorm:"type:varchar(255);not null"`
	Email           string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber     string `gorm:"type:varchar(50)"`
	MobileNumber    string `gorm:"type:varchar(50)"`
	WebsiteURL      string `gorm:"type:varchar(255)"`
	BillingAddress  string `gorm:"type:text"`
	ShippingAddress string `gorm:"type:text"`
	City            string `gorm:"type:varchar(100)"`
	State           string `gorm:"type:varchar(100)"`
	PostalCode      string `gorm:"type:varchar(20)"`
	Country         string `gorm:"type:varchar(100)"`
	Industry        string `gorm:"type:varchar(100)"`
	Notes           string `gorm:"type:text"`
}

// TableName returns the table name for CustomerModel
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *directory.Customer {
	return &directory.Customer{
		BaseEntity:      m.ToBaseEntity(),
		Name:            m.Name,
		OwnerName:       m.OwnerName,
		Email:           m.Email,
		PhoneNumber:     m.PhoneNumber,
		MobileNumber:    m.MobileNumber,
		WebsiteURL:      m.WebsiteURL,
		BillingAddress:  m.BillingAddress,
		ShippingAddress: m.ShippingAddress,
		City:            m.City,
		State:           m.State,
		PostalCode:      m.PostalCode,
		Country:         m.Country,
		Industry:        m.Industry,
		Notes:           m.Notes,
	}
}

// FromDomain converts a domain customer to the model
func (m *CustomerModel) FromDomain(c *directory.Customer) {
	m.FromBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.OwnerName = c.OwnerName
	m.Email = c.Email
	m.PhoneNumber = c.PhoneNumber
	m.MobileNumber = c.MobileNumber
	m.WebsiteURL = c.WebsiteURL
	m.BillingAddress = c.BillingAddress
	m.ShippingAddress = c.ShippingAddress
	m.City = c.City
	m.State = c.State
	m.PostalCode = c.PostalCode
	m.Country = c.Country
	m.Industry = c.Industry
	m.Notes = c.Notes
}

// StatusModel is the GORM model for pipeline statuses
type StatusModel struct {
	BaseModel
	Process string `gorm:"type:varchar(50);not null;index"`
	Status  string `gorm:"type:varchar(100);not null"`
	Color   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for StatusModel
func (StatusModel) TableName() string {
	return "statuses"
}

// ToDomain converts the model to a domain status
func (m *StatusModel) ToDomain() *directory.Status {
	return &directory.Status{
		BaseEntity: m.ToBaseEntity(),
		Process:    m.Process,
		Status:     m.Status,
		Color:      m.Color,
	}
}

// FromDomain converts a domain status to the model
func (m *StatusModel) FromDomain(s *directory.Status) {
	m.FromBaseEntity(s.BaseEntity)
	m.Process = s.Process
	m.Status = s.Status
	m.Color = s.Color
}

// ContactModel is the GORM model for contacts. The owner is a polymorphic
// document reference; one contact per (owner, contact_type) pair.
type ContactModel struct {
	BaseModel
	DocumentType  string `gorm:"type:varchar(30);not null;index:idx_contacts_owner,priority:1"`
	DocumentID    int64  `gorm:"not null;index:idx_contacts_owner,priority:2"`
	ContactType   string `gorm:"type:varchar(20);not null;index:idx_contacts_owner,priority:3"`
	FirstName     string `gorm:"type:varchar(100);not null"`
	LastName      string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(255)"`
	PhoneNumber   string `gorm:"type:varchar(50)"`
	MobileNumber  string `gorm:"type:varchar(50)"`
	PositionTitle string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for ContactModel
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the model to a domain contact
func (m *ContactModel) ToDomain() *directory.Contact {
	return &directory.Contact{
		BaseEntity: m.ToBaseEntity(),
		Owner: activity.DocumentRef{
			Type: activity.DocumentType(m.DocumentType),
			ID:   m.DocumentID,
		},
		ContactType:   directory.ContactType(m.ContactType),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		MobileNumber:  m.MobileNumber,
		PositionTitle: m.PositionTitle,
	}
}

// FromDomain converts a domain contact to the model
func (m *ContactModel) FromDomain(c *directory.Contact) {
	m.FromBaseEntity(c.BaseEntity)
	m.DocumentType = c.Owner.Type.String()
	m.DocumentID = c.Owner.ID
	m.ContactType = c.ContactType.String()
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.PhoneNumber = c.PhoneNumber
	m.MobileNumber = c.MobileNumber
	m.PositionTitle = c.PositionTitle
}

// AddressModel is the GORM model for addresses, keyed like contacts.
type AddressModel struct {
	BaseModel
	DocumentType string `gorm:"type:varchar(30);not null;index:idx_addresses_owner,priority:1"`
	DocumentID   int64  `gorm:"not null;index:idx_addresses_owner,priority:2"`
	AddressType  string `gorm:"type:varchar(20);not null;index:idx_addresses_owner,priority:3"`
	Address1     string `gorm:"type:varchar(200);not null"`
	Address2     string `gorm:"type:varchar(200)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Zip          string `gorm:"type:varchar(20)"`
	Country      string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for AddressModel
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the model to a domain address
func (m *AddressModel) ToDomain() *directory.Address {
	return &directory.Address{
		BaseEntity: m.ToBaseEntity(),
		Owner: activity.DocumentRef{
			Type: activity.DocumentType(m.DocumentType),
			ID:   m.DocumentID,
		},
		AddressType: directory.AddressType(m.AddressType),
		Address1:    m.Address1,
		Address2:    m.Address2,
		City:        m.City,
		State:       m.State,
		Zip:         m.Zip,
		Country:     m.Country,
	}
}

// FromDomain converts a domain address to the model
func (m *AddressModel) FromDomain(a *directory.Address) {
	m.FromBaseEntity(a.BaseEntity)
	m.DocumentType = a.Owner.Type.String()
	m.DocumentID = a.Owner.ID
	m.AddressType = a.AddressType.String()
	m.Address1 = a.Address1
	m.Address2 = a.Address2
	m.City = a.City
	m.State = a.State
	m.Zip = a.Zip
	m.Country = a.Country
}
