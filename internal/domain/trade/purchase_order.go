package trade

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// PurchaseOrder orders goods from a vendor on behalf of a customer
// project. CustomerID references the customer the purchase is for.
type PurchaseOrder struct {
	Document
	VendorName   string
	ExpectedDate time.Time
}

// NewPurchaseOrder creates a new purchase order
func NewPurchaseOrder(customerID, statusID int64, vendorName string) (*PurchaseOrder, error) {
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor name cannot be empty")
	}
	doc, err := newDocument(customerID, statusID)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrder{
		Document:   doc,
		VendorName: vendorName,
	}, nil
}

// SetVendorName changes the vendor
func (p *PurchaseOrder) SetVendorName(vendorName string) error {
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return shared.NewDomainError("INVALID_VENDOR", "Vendor name cannot be empty")
	}
	p.VendorName = vendorName
	p.Touch()
	return nil
}

// SetExpectedDate sets the expected delivery date
func (p *PurchaseOrder) SetExpectedDate(expectedDate time.Time) {
	p.ExpectedDate = expectedDate
	p.Touch()
}
