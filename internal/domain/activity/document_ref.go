package activity

import (
	"github.com/crm/backend/internal/domain/shared"
)

// DocumentType identifies which kind of business document an activity
// record pertains to. The set is closed: the storage layer keeps the type
// as a plain string column, but the service boundary only accepts values
// from this enum.
type DocumentType string

const (
	DocumentTypeCustomers      DocumentType = "Customers"
	DocumentTypeQuotes         DocumentType = "Quotes"
	DocumentTypeOrders         DocumentType = "Orders"
	DocumentTypeInvoices       DocumentType = "Invoices"
	DocumentTypePurchaseOrders DocumentType = "PurchaseOrders"
)

// IsValid checks if the type is a known DocumentType
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeCustomers, DocumentTypeQuotes, DocumentTypeOrders,
		DocumentTypeInvoices, DocumentTypePurchaseOrders:
		return true
	}
	return false
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// DocumentRef is the polymorphic reference identifying the business
// document an activity record belongs to. No referential integrity is
// enforced against the referenced table; the pair is purely a query key.
type DocumentRef struct {
	Type DocumentType
	ID   int64
}

// NewDocumentRef builds a validated document reference
func NewDocumentRef(docType DocumentType, id int64) (DocumentRef, error) {
	if !docType.IsValid() {
		return DocumentRef{}, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type: "+string(docType))
	}
	if id <= 0 {
		return DocumentRef{}, shared.NewDomainError("INVALID_DOCUMENT_ID", "Document ID must be positive")
	}
	return DocumentRef{Type: docType, ID: id}, nil
}
