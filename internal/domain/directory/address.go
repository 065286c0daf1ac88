package directory

import (
	"strings"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
)

// AddressType classifies the role an address plays for its owner.
type AddressType string

const (
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeShipping AddressType = "SHIPPING"
)

// IsValid checks if the type is a known AddressType
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeBilling, AddressTypeShipping:
		return true
	}
	return false
}

// String returns the string representation of AddressType
func (t AddressType) String() string {
	return string(t)
}

// ParseAddressType parses an address type, accepting any casing
func ParseAddressType(value string) (AddressType, error) {
	t := AddressType(strings.ToUpper(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", shared.NewDomainError("INVALID_ADDRESS_TYPE", "Unknown address type: "+value)
	}
	return t, nil
}

// Address is a postal address attached to a customer or to a trade
// document, keyed the same way as Contact: polymorphic owner reference
// plus an address type, upserted on that pair by assignment flows.
type Address struct {
	shared.BaseEntity
	Owner       activity.DocumentRef
	AddressType AddressType
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	Country     string
}

// NewAddress creates a new address for the given owner
func NewAddress(owner activity.DocumentRef, addressType AddressType, address1 string) (*Address, error) {
	if _, err := activity.NewDocumentRef(owner.Type, owner.ID); err != nil {
		return nil, err
	}
	if !addressType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Unknown address type: "+string(addressType))
	}
	address1 = strings.TrimSpace(address1)
	if address1 == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}

	return &Address{
		BaseEntity:  shared.NewBaseEntity(),
		Owner:       owner,
		AddressType: addressType,
		Address1:    address1,
	}, nil
}

// SetLines changes the street lines
func (a *Address) SetLines(address1, address2 string) error {
	address1 = strings.TrimSpace(address1)
	if address1 == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	a.Address1 = address1
	a.Address2 = strings.TrimSpace(address2)
	a.Touch()
	return nil
}

// SetRegion sets city, state, zip and country
func (a *Address) SetRegion(city, state, zip, country string) {
	a.City = strings.TrimSpace(city)
	a.State = strings.TrimSpace(state)
	a.Zip = strings.TrimSpace(zip)
	a.Country = strings.TrimSpace(country)
	a.Touch()
}

// OneLine renders the address as a single display line
func (a *Address) OneLine() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.Address1, a.Address2, a.City, a.State, a.Zip, a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
