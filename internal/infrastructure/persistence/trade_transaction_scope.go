package persistence

import (
	"context"

	apptrade "github.com/crm/backend/internal/application/trade"
	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements the trade TransactionScope using GORM
// transactions. Document mutations and the activity records describing
// them commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories exposes repositories bound to the
// current transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Quotes returns the quote repository scoped to the current transaction
func (r *gormTransactionalRepositories) Quotes() trade.QuoteRepository {
	return NewGormQuoteRepository(r.tx)
}

// Orders returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) Orders() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Invoices returns the invoice repository scoped to the current transaction
func (r *gormTransactionalRepositories) Invoices() trade.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// PurchaseOrders returns the purchase order repository scoped to the current transaction
func (r *gormTransactionalRepositories) PurchaseOrders() trade.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// ActivityRecords returns the activity record repository scoped to the current transaction
func (r *gormTransactionalRepositories) ActivityRecords() activity.RecordRepository {
	return NewGormActivityRecordRepository(r.tx)
}

// Contacts returns the contact repository scoped to the current transaction
func (r *gormTransactionalRepositories) Contacts() directory.ContactRepository {
	return NewGormContactRepository(r.tx)
}

// Addresses returns the address repository scoped to the current transaction
func (r *gormTransactionalRepositories) Addresses() directory.AddressRepository {
	return NewGormAddressRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apptrade.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
