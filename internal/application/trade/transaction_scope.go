package trade

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the trade repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. The activity record repository is included so the audit
// trail of a business change commits together with the change itself.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the trade repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// Quotes returns the quote repository scoped to the current transaction
	Quotes() trade.QuoteRepository
	// Orders returns the order repository scoped to the current transaction
	Orders() trade.OrderRepository
	// Invoices returns the invoice repository scoped to the current transaction
	Invoices() trade.InvoiceRepository
	// PurchaseOrders returns the purchase order repository scoped to the current transaction
	PurchaseOrders() trade.PurchaseOrderRepository
	// ActivityRecords returns the activity record repository scoped to the current transaction
	ActivityRecords() activity.RecordRepository
	// Contacts returns the contact repository scoped to the current transaction
	Contacts() directory.ContactRepository
	// Addresses returns the address repository scoped to the current transaction
	Addresses() directory.AddressRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests and wherever transactional guarantees are not needed.
type NoOpTransactionScope struct {
	quotes         trade.QuoteRepository
	orders         trade.OrderRepository
	invoices       trade.InvoiceRepository
	purchaseOrders trade.PurchaseOrderRepository
	records        activity.RecordRepository
	contacts       directory.ContactRepository
	addresses      directory.AddressRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	quotes trade.QuoteRepository,
	orders trade.OrderRepository,
	invoices trade.InvoiceRepository,
	purchaseOrders trade.PurchaseOrderRepository,
	records activity.RecordRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		quotes:         quotes,
		orders:         orders,
		invoices:       invoices,
		purchaseOrders: purchaseOrders,
		records:        records,
	}
}

// WithDirectories attaches contact and address repositories to the scope
func (s *NoOpTransactionScope) WithDirectories(
	contacts directory.ContactRepository,
	addresses directory.AddressRepository,
) *NoOpTransactionScope {
	s.contacts = contacts
	s.addresses = addresses
	return s
}

// Execute runs the function without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Quotes returns the quote repository
func (s *NoOpTransactionScope) Quotes() trade.QuoteRepository { return s.quotes }

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() trade.OrderRepository { return s.orders }

// Invoices returns the invoice repository
func (s *NoOpTransactionScope) Invoices() trade.InvoiceRepository { return s.invoices }

// PurchaseOrders returns the purchase order repository
func (s *NoOpTransactionScope) PurchaseOrders() trade.PurchaseOrderRepository {
	return s.purchaseOrders
}

// ActivityRecords returns the activity record repository
func (s *NoOpTransactionScope) ActivityRecords() activity.RecordRepository { return s.records }

// Contacts returns the contact repository
func (s *NoOpTransactionScope) Contacts() directory.ContactRepository { return s.contacts }

// Addresses returns the address repository
func (s *NoOpTransactionScope) Addresses() directory.AddressRepository { return s.addresses }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
