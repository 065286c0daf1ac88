package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
)

// ContactService handles the contact directory. Contacts hang off a
// polymorphic owner reference, so the same CRUD serves customer contacts
// and the billing/shipping contacts of trade documents.
type ContactService struct {
	contacts directory.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contacts directory.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create creates a new contact
func (s *ContactService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	owner, err := activity.NewDocumentRef(activity.DocumentType(req.DocumentType), req.DocumentID)
	if err != nil {
		return nil, err
	}
	contactType, err := directory.ParseContactType(req.ContactType)
	if err != nil {
		return nil, err
	}

	contact, err := directory.NewContact(owner, contactType, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if err := contact.SetEmail(req.Email); err != nil {
		return nil, err
	}
	contact.SetContactNumbers(req.PhoneNumber, req.MobileNumber)
	contact.SetPositionTitle(req.PositionTitle)

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, id int64) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToContactResponse(contact)
	return &response, nil
}

// List lists all contacts
func (s *ContactService) List(ctx context.Context, filter shared.Filter) (*shared.Page[ContactResponse], error) {
	filter.Normalize()

	contacts, err := s.contacts.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := shared.NewPage(toContactResponses(contacts), total, filter.Page, filter.Limit)
	return &page, nil
}

// ListByCustomer lists the contacts attached to a customer
func (s *ContactService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[ContactResponse], error) {
	owner, err := activity.NewDocumentRef(activity.DocumentTypeCustomers, customerID)
	if err != nil {
		return nil, err
	}
	filter.Normalize()

	contacts, err := s.contacts.FindByOwner(ctx, owner, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.contacts.CountByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	page := shared.NewPage(toContactResponses(contacts), total, filter.Page, filter.Limit)
	return &page, nil
}

// Update applies a partial update to a contact
func (s *ContactService) Update(ctx context.Context, id int64, req UpdateContactRequest) (*ContactResponse, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil || req.LastName != nil {
		firstName := contact.FirstName
		lastName := contact.LastName
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if err := contact.SetName(firstName, lastName); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := contact.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != nil || req.MobileNumber != nil {
		phone := contact.PhoneNumber
		mobile := contact.MobileNumber
		if req.PhoneNumber != nil {
			phone = *req.PhoneNumber
		}
		if req.MobileNumber != nil {
			mobile = *req.MobileNumber
		}
		contact.SetContactNumbers(phone, mobile)
	}
	if req.PositionTitle != nil {
		contact.SetPositionTitle(*req.PositionTitle)
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Delete deletes a contact
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}

func toContactResponses(contacts []directory.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for idx := range contacts {
		responses[idx] = ToContactResponse(&contacts[idx])
	}
	return responses
}
