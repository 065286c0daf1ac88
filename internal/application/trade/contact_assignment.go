package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appdirectory "github.com/crm/backend/internal/application/directory"
	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
)

// Contact and address assignment for trade documents. Each document holds
// at most one contact and one address per type; assigning one upserts the
// row keyed by (document reference, type) and records a "Set" activity in
// the same transaction.

// upsertContact stores req as the owner's contact of the requested type,
// updating the row already assigned when there is one.
func upsertContact(ctx context.Context, contacts directory.ContactRepository, owner activity.DocumentRef, req SetContactRequest) (*directory.Contact, error) {
	contactType, err := directory.ParseContactType(req.ContactType)
	if err != nil {
		return nil, err
	}

	contact, err := contacts.FindByOwnerAndType(ctx, owner, contactType)
	switch {
	case err == nil:
		if err := contact.SetName(req.FirstName, req.LastName); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		contact, err = directory.NewContact(owner, contactType, req.FirstName, req.LastName)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := contact.SetEmail(req.Email); err != nil {
		return nil, err
	}
	contact.SetContactNumbers(req.PhoneNumber, req.MobileNumber)
	contact.SetPositionTitle(req.PositionTitle)

	if err := contacts.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// upsertAddress stores req as the owner's address of the requested type,
// updating the row already assigned when there is one.
func upsertAddress(ctx context.Context, addresses directory.AddressRepository, owner activity.DocumentRef, req SetAddressRequest) (*directory.Address, error) {
	addressType, err := directory.ParseAddressType(req.AddressType)
	if err != nil {
		return nil, err
	}

	address, err := addresses.FindByOwnerAndType(ctx, owner, addressType)
	switch {
	case err == nil:
		if err := address.SetLines(req.Address1, req.Address2); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		address, err = directory.NewAddress(owner, addressType, req.Address1)
		if err != nil {
			return nil, err
		}
		if req.Address2 != "" {
			if err := address.SetLines(req.Address1, req.Address2); err != nil {
				return nil, err
			}
		}
	default:
		return nil, err
	}
	address.SetRegion(req.City, req.State, req.Zip, req.Country)

	if err := addresses.Save(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func setContactText(label string, id int64, contact *directory.Contact) string {
	return fmt.Sprintf("Set %s #%d %s contact to %s", label, id, strings.ToLower(contact.ContactType.String()), contact.FullName())
}

func setAddressText(label string, id int64, address *directory.Address) string {
	return fmt.Sprintf("Set %s #%d %s address to %s", label, id, strings.ToLower(address.AddressType.String()), address.OneLine())
}

// SetContact assigns a contact to a quote and records a "Set" activity
func (s *QuoteService) SetContact(ctx context.Context, id int64, req SetContactRequest) (*appdirectory.ContactResponse, error) {
	var contact *directory.Contact
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		quote, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		contact, err = upsertContact(ctx, repos.Contacts(), quoteRef(quote.ID), req)
		if err != nil {
			return err
		}
		text := setContactText("Quote", quote.ID, contact)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameSet, quoteRef(quote.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToContactResponse(contact)
	return &response, nil
}

// SetAddress assigns an address to a quote and records a "Set" activity
func (s *QuoteService) SetAddress(ctx context.Context, id int64, req SetAddressRequest) (*appdirectory.AddressResponse, error) {
	var address *directory.Address
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		quote, err := repos.Quotes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		address, err = upsertAddress(ctx, repos.Addresses(), quoteRef(quote.ID), req)
		if err != nil {
			return err
		}
		text := setAddressText("Quote", quote.ID, address)
		return logActivity(ctx, repos, quote.CustomerID, quote.StatusID, text, activity.TypeNameSet, quoteRef(quote.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToAddressResponse(address)
	return &response, nil
}

// SetContact assigns a contact to an order and records a "Set" activity
func (s *OrderService) SetContact(ctx context.Context, id int64, req SetContactRequest) (*appdirectory.ContactResponse, error) {
	var contact *directory.Contact
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		contact, err = upsertContact(ctx, repos.Contacts(), orderRef(order.ID), req)
		if err != nil {
			return err
		}
		text := setContactText("Order", order.ID, contact)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameSet, orderRef(order.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToContactResponse(contact)
	return &response, nil
}

// SetAddress assigns an address to an order and records a "Set" activity
func (s *OrderService) SetAddress(ctx context.Context, id int64, req SetAddressRequest) (*appdirectory.AddressResponse, error) {
	var address *directory.Address
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		address, err = upsertAddress(ctx, repos.Addresses(), orderRef(order.ID), req)
		if err != nil {
			return err
		}
		text := setAddressText("Order", order.ID, address)
		return logActivity(ctx, repos, order.CustomerID, order.StatusID, text, activity.TypeNameSet, orderRef(order.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToAddressResponse(address)
	return &response, nil
}

// SetContact assigns a contact to an invoice and records a "Set" activity
func (s *InvoiceService) SetContact(ctx context.Context, id int64, req SetContactRequest) (*appdirectory.ContactResponse, error) {
	var contact *directory.Contact
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		contact, err = upsertContact(ctx, repos.Contacts(), invoiceRef(invoice.ID), req)
		if err != nil {
			return err
		}
		text := setContactText("Invoice", invoice.ID, contact)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameSet, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToContactResponse(contact)
	return &response, nil
}

// SetAddress assigns an address to an invoice and records a "Set" activity
func (s *InvoiceService) SetAddress(ctx context.Context, id int64, req SetAddressRequest) (*appdirectory.AddressResponse, error) {
	var address *directory.Address
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		address, err = upsertAddress(ctx, repos.Addresses(), invoiceRef(invoice.ID), req)
		if err != nil {
			return err
		}
		text := setAddressText("Invoice", invoice.ID, address)
		return logActivity(ctx, repos, invoice.CustomerID, invoice.StatusID, text, activity.TypeNameSet, invoiceRef(invoice.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToAddressResponse(address)
	return &response, nil
}

// SetContact assigns a contact to a purchase order and records a "Set" activity
func (s *PurchaseOrderService) SetContact(ctx context.Context, id int64, req SetContactRequest) (*appdirectory.ContactResponse, error) {
	var contact *directory.Contact
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		contact, err = upsertContact(ctx, repos.Contacts(), purchaseOrderRef(po.ID), req)
		if err != nil {
			return err
		}
		text := setContactText("Purchase Order", po.ID, contact)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameSet, purchaseOrderRef(po.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToContactResponse(contact)
	return &response, nil
}

// SetAddress assigns an address to a purchase order and records a "Set" activity
func (s *PurchaseOrderService) SetAddress(ctx context.Context, id int64, req SetAddressRequest) (*appdirectory.AddressResponse, error) {
	var address *directory.Address
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.PurchaseOrders().FindByID(ctx, id)
		if err != nil {
			return err
		}
		address, err = upsertAddress(ctx, repos.Addresses(), purchaseOrderRef(po.ID), req)
		if err != nil {
			return err
		}
		text := setAddressText("Purchase Order", po.ID, address)
		return logActivity(ctx, repos, po.CustomerID, po.StatusID, text, activity.TypeNameSet, purchaseOrderRef(po.ID), req.UserOwner)
	})
	if err != nil {
		return nil, err
	}

	response := appdirectory.ToAddressResponse(address)
	return &response, nil
}
