package directory

import (
	"strings"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
)

// ContactType classifies the role a contact plays for its owner.
type ContactType string

const (
	ContactTypePrimary  ContactType = "PRIMARY"
	ContactTypeBilling  ContactType = "BILLING"
	ContactTypeShipping ContactType = "SHIPPING"
)

// IsValid checks if the type is a known ContactType
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypePrimary, ContactTypeBilling, ContactTypeShipping:
		return true
	}
	return false
}

// String returns the string representation of ContactType
func (t ContactType) String() string {
	return string(t)
}

// ParseContactType parses a contact type, accepting any casing
func ParseContactType(value string) (ContactType, error) {
	t := ContactType(strings.ToUpper(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", shared.NewDomainError("INVALID_CONTACT_TYPE", "Unknown contact type: "+value)
	}
	return t, nil
}

// Contact is a person attached to a customer or to a trade document.
// The owner is a polymorphic reference, so the same table serves the
// customer rolodex and the billing/shipping contacts of quotes, orders,
// invoices and purchase orders. At most one contact per owner and type
// is meaningful; assignment flows upsert on that pair.
type Contact struct {
	shared.BaseEntity
	Owner         activity.DocumentRef
	ContactType   ContactType
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	MobileNumber  string
	PositionTitle string
}

// NewContact creates a new contact for the given owner
func NewContact(owner activity.DocumentRef, contactType ContactType, firstName, lastName string) (*Contact, error) {
	if _, err := activity.NewDocumentRef(owner.Type, owner.ID); err != nil {
		return nil, err
	}
	if !contactType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Unknown contact type: "+string(contactType))
	}
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, shared.NewDomainError("INVALID_FIRST_NAME", "Contact first name cannot be empty")
	}

	return &Contact{
		BaseEntity:  shared.NewBaseEntity(),
		Owner:       owner,
		ContactType: contactType,
		FirstName:   firstName,
		LastName:    strings.TrimSpace(lastName),
	}, nil
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// SetName changes the contact's name
func (c *Contact) SetName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return shared.NewDomainError("INVALID_FIRST_NAME", "Contact first name cannot be empty")
	}
	c.FirstName = firstName
	c.LastName = strings.TrimSpace(lastName)
	c.Touch()
	return nil
}

// SetEmail changes the contact's email address
func (c *Contact) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	c.Email = email
	c.Touch()
	return nil
}

// SetContactNumbers sets phone and mobile numbers
func (c *Contact) SetContactNumbers(phone, mobile string) {
	c.PhoneNumber = strings.TrimSpace(phone)
	c.MobileNumber = strings.TrimSpace(mobile)
	c.Touch()
}

// SetPositionTitle sets the contact's position title
func (c *Contact) SetPositionTitle(title string) {
	c.PositionTitle = strings.TrimSpace(title)
	c.Touch()
}
