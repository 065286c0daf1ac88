package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockQuoteRepository is a mock implementation of trade.QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id int64) (*trade.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quote, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]trade.Quote, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *trade.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecordRepository is a mock implementation of activity.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id int64) (*activity.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Record), args.Error(1)
}

func (m *MockRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]activity.Record, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]activity.Record), args.Error(1)
}

func (m *MockRecordRepository) FindByCustomer(ctx context.Context, customerID int64, filter shared.Filter) ([]activity.Record, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]activity.Record), args.Error(1)
}

func (m *MockRecordRepository) FindByDocument(ctx context.Context, ref activity.DocumentRef, typeNames []string, filter shared.Filter) ([]activity.Record, error) {
	args := m.Called(ctx, ref, typeNames, filter)
	return args.Get(0).([]activity.Record), args.Error(1)
}

func (m *MockRecordRepository) Save(ctx context.Context, record *activity.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordRepository) CountByDocument(ctx context.Context, ref activity.DocumentRef, typeNames []string) (int64, error) {
	args := m.Called(ctx, ref, typeNames)
	return args.Get(0).(int64), args.Error(1)
}

// =============================================================================
// Helpers
// =============================================================================

type testScope struct {
	quotes    *MockQuoteRepository
	orders    *MockOrderRepository
	records   *MockRecordRepository
	contacts  *MockContactRepository
	addresses *MockAddressRepository
	scope     TransactionScope
}

func newTestScope() testScope {
	quotes := new(MockQuoteRepository)
	orders := new(MockOrderRepository)
	records := new(MockRecordRepository)
	contacts := new(MockContactRepository)
	addresses := new(MockAddressRepository)
	return testScope{
		quotes:    quotes,
		orders:    orders,
		records:   records,
		contacts:  contacts,
		addresses: addresses,
		scope:     NewNoOpTransactionScope(quotes, orders, nil, nil, records).WithDirectories(contacts, addresses),
	}
}

func assignID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		switch doc := args.Get(1).(type) {
		case *trade.Quote:
			if doc.ID == 0 {
				doc.ID = id
			}
		case *trade.Order:
			if doc.ID == 0 {
				doc.ID = id
			}
		}
	}
}

func quoteItemRequest() LineItemRequest {
	return LineItemRequest{
		ProductName: "Hoodie",
		SKU:         "HD-01",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(10),
	}
}

// =============================================================================
// Create
// =============================================================================

func TestQuoteServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates quote, assigns number and records activity", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		ts.quotes.On("Save", ctx, mock.Anything).Return(nil).Run(assignID(42))
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.Activity == "Create new Quote #42" &&
				r.TypeName == activity.TypeNameCreate &&
				r.Document == quoteRef(42) &&
				r.CustomerID == 1 && r.StatusID == 2 &&
				r.UserOwner == "alice"
		})).Return(nil)

		response, err := service.Create(ctx, CreateQuoteRequest{
			CustomerID: 1,
			StatusID:   2,
			Items:      []LineItemRequest{quoteItemRequest()},
			UserOwner:  "alice",
		})

		require.NoError(t, err)
		assert.Equal(t, "QUO-000042", response.Number)
		assert.True(t, response.Total.Equal(decimal.NewFromInt(20)))
		ts.records.AssertExpectations(t)
	})

	t.Run("fails when the activity record cannot be appended", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		ts.quotes.On("Save", ctx, mock.Anything).Return(nil).Run(assignID(42))
		ts.records.On("Save", ctx, mock.Anything).Return(errors.New("write failed"))

		_, err := service.Create(ctx, CreateQuoteRequest{CustomerID: 1, StatusID: 2, Items: []LineItemRequest{quoteItemRequest()}})

		assert.Error(t, err)
	})

	t.Run("rejects invalid line items before touching the store", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		_, err := service.Create(ctx, CreateQuoteRequest{
			CustomerID: 1,
			StatusID:   2,
			Items: []LineItemRequest{{
				ProductName: "Hoodie",
				Quantity:    decimal.Zero,
				UnitPrice:   decimal.NewFromInt(10),
			}},
		})

		assert.Error(t, err)
		ts.quotes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// =============================================================================
// Status and items
// =============================================================================

func TestQuoteServiceSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves status and records a Set activity", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote, err := trade.NewQuote(1, 2)
		require.NoError(t, err)
		quote.ID = 7
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)
		ts.quotes.On("Save", ctx, quote).Return(nil)
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.TypeName == activity.TypeNameSet && r.StatusID == 9 && r.Document == quoteRef(7)
		})).Return(nil)

		response, err := service.SetStatus(ctx, 7, SetStatusRequest{StatusID: 9, UserOwner: "bob"})

		require.NoError(t, err)
		assert.Equal(t, int64(9), response.StatusID)
		ts.records.AssertExpectations(t)
	})

	t.Run("fails with not found for missing quote", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		ts.quotes.On("FindByID", ctx, int64(404)).Return(nil, shared.ErrNotFound)

		_, err := service.SetStatus(ctx, 404, SetStatusRequest{StatusID: 9})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestQuoteServiceItems(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T) *trade.Quote {
		quote, err := trade.NewQuote(1, 2)
		require.NoError(t, err)
		quote.ID = 7
		item, err := trade.NewLineItem("Hoodie", "HD-01", decimal.NewFromInt(2), decimal.NewFromInt(10))
		require.NoError(t, err)
		item.ID = 11
		quote.AddItem(item)
		return quote
	}

	t.Run("add item records an Update activity", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote := existing(t)
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)
		ts.quotes.On("Save", ctx, quote).Return(nil)
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.TypeName == activity.TypeNameUpdate && r.Document == quoteRef(7)
		})).Return(nil)

		response, err := service.AddItem(ctx, 7, quoteItemRequest())

		require.NoError(t, err)
		assert.Len(t, response.Items, 2)
		assert.True(t, response.Total.Equal(decimal.NewFromInt(40)))
	})

	t.Run("update item recalculates totals", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote := existing(t)
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)
		ts.quotes.On("Save", ctx, quote).Return(nil)
		ts.records.On("Save", ctx, mock.Anything).Return(nil)

		qty := decimal.NewFromInt(5)
		response, err := service.UpdateItem(ctx, 7, 11, UpdateLineItemRequest{Quantity: &qty})

		require.NoError(t, err)
		assert.True(t, response.Total.Equal(decimal.NewFromInt(50)))
	})

	t.Run("remove unknown item fails without saving", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		ts.quotes.On("FindByID", ctx, int64(7)).Return(existing(t), nil)

		_, err := service.RemoveItem(ctx, 7, 99, "bob")

		assert.Error(t, err)
		ts.quotes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// =============================================================================
// Convert
// =============================================================================

func TestQuoteServiceConvert(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T) *trade.Quote {
		quote, err := trade.NewQuote(1, 2)
		require.NoError(t, err)
		quote.ID = 7
		item, err := trade.NewLineItem("Hoodie", "HD-01", decimal.NewFromInt(2), decimal.NewFromInt(10))
		require.NoError(t, err)
		item.ID = 11
		quote.AddItem(item)
		return quote
	}

	t.Run("creates the order and records Convert on both documents", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote := existing(t)
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)
		ts.quotes.On("Save", ctx, quote).Return(nil)
		ts.orders.On("Save", ctx, mock.Anything).Return(nil).Run(assignID(55))
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.TypeName == activity.TypeNameConvert && r.Document == quoteRef(7)
		})).Return(nil).Once()
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.TypeName == activity.TypeNameConvert && r.Document == orderRef(55)
		})).Return(nil).Once()

		response, err := service.Convert(ctx, 7, ConvertQuoteRequest{OrderStatusID: 3, UserOwner: "alice"})

		require.NoError(t, err)
		assert.Equal(t, int64(55), response.ID)
		assert.Equal(t, "ORD-000055", response.Number)
		assert.Equal(t, int64(7), response.QuoteID)
		assert.Equal(t, int64(55), quote.ConvertedOrderID)
		ts.records.AssertExpectations(t)
	})

	t.Run("rejects converting twice", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote := existing(t)
		require.NoError(t, quote.MarkConverted(55))
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)

		_, err := service.Convert(ctx, 7, ConvertQuoteRequest{OrderStatusID: 3})

		assert.Error(t, err)
		ts.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// =============================================================================
// Delete
// =============================================================================

func TestQuoteServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and records a Delete activity", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		quote, err := trade.NewQuote(1, 2)
		require.NoError(t, err)
		quote.ID = 7
		ts.quotes.On("FindByID", ctx, int64(7)).Return(quote, nil)
		ts.quotes.On("Delete", ctx, int64(7)).Return(nil)
		ts.records.On("Save", ctx, mock.MatchedBy(func(r *activity.Record) bool {
			return r.TypeName == activity.TypeNameDelete && r.Document == quoteRef(7)
		})).Return(nil)

		require.NoError(t, service.Delete(ctx, 7, "alice"))
		ts.records.AssertExpectations(t)
	})

	t.Run("fails with not found for missing quote", func(t *testing.T) {
		ts := newTestScope()
		service := NewQuoteService(ts.quotes, ts.scope)

		ts.quotes.On("FindByID", ctx, int64(404)).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, 404, ""), shared.ErrNotFound)
	})
}
