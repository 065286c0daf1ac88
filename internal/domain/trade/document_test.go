package trade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, qty, price string) *LineItem {
	t.Helper()
	item, err := NewLineItem(name, "SKU-"+name, decimal.RequireFromString(qty), decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestNewLineItem(t *testing.T) {
	t.Run("creates item with computed amount", func(t *testing.T) {
		item, err := NewLineItem("Hoodie", "HD-01", decimal.NewFromInt(3), decimal.RequireFromString("19.99"))

		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.RequireFromString("59.97")))
	})

	t.Run("fails with empty product name", func(t *testing.T) {
		_, err := NewLineItem("", "HD-01", decimal.NewFromInt(1), decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		_, err := NewLineItem("Hoodie", "HD-01", decimal.Zero, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewLineItem("Hoodie", "HD-01", decimal.NewFromInt(1), decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("recalculates amount on update", func(t *testing.T) {
		item := mustItem(t, "Hoodie", "2", "10")

		require.NoError(t, item.UpdateQuantity(decimal.NewFromInt(5)))
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(50)))

		require.NoError(t, item.UpdateUnitPrice(decimal.NewFromInt(4)))
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(20)))

		assert.Error(t, item.UpdateQuantity(decimal.Zero))
		assert.Error(t, item.UpdateUnitPrice(decimal.NewFromInt(-1)))
	})
}

func TestDocumentItems(t *testing.T) {
	t.Run("add and total", func(t *testing.T) {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)

		quote.AddItem(mustItem(t, "Hoodie", "2", "10"))
		quote.AddItem(mustItem(t, "Cap", "1", "5.50"))

		assert.Equal(t, 2, quote.ItemCount())
		assert.True(t, quote.Total.Equal(decimal.RequireFromString("25.50")))
	})

	t.Run("update recalculates total", func(t *testing.T) {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)

		item := mustItem(t, "Hoodie", "2", "10")
		item.ID = 11
		quote.AddItem(item)

		updated := *item
		require.NoError(t, updated.UpdateQuantity(decimal.NewFromInt(4)))
		require.NoError(t, quote.UpdateItem(&updated))

		assert.True(t, quote.Total.Equal(decimal.NewFromInt(40)))
	})

	t.Run("remove recalculates total", func(t *testing.T) {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)

		item := mustItem(t, "Hoodie", "2", "10")
		item.ID = 11
		quote.AddItem(item)

		require.NoError(t, quote.RemoveItem(11))

		assert.Zero(t, quote.ItemCount())
		assert.True(t, quote.Total.IsZero())
	})

	t.Run("unknown item ids fail", func(t *testing.T) {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)

		assert.Error(t, quote.RemoveItem(99))
		assert.Error(t, quote.UpdateItem(&LineItem{ID: 99}))
		_, err = quote.FindItem(99)
		assert.Error(t, err)
	})
}

func TestDocumentStatusAndNumber(t *testing.T) {
	order, err := NewOrder(1, 2)
	require.NoError(t, err)

	require.NoError(t, order.SetStatus(5))
	assert.Equal(t, int64(5), order.StatusID)
	assert.Error(t, order.SetStatus(0))

	require.NoError(t, order.SetNumber("ORD-000042"))
	assert.Equal(t, "ORD-000042", order.Number)
	assert.Error(t, order.SetNumber(""))
}

func TestQuoteConversion(t *testing.T) {
	newQuoteWithItem := func(t *testing.T) *Quote {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)
		quote.ID = 77
		item := mustItem(t, "Hoodie", "2", "10")
		item.ID = 11
		quote.AddItem(item)
		return quote
	}

	t.Run("converts items and links back", func(t *testing.T) {
		quote := newQuoteWithItem(t)

		order, err := quote.ConvertToOrder(3)

		require.NoError(t, err)
		assert.Equal(t, int64(77), order.QuoteID)
		assert.Equal(t, quote.CustomerID, order.CustomerID)
		assert.Equal(t, int64(3), order.StatusID)
		require.Len(t, order.Items, 1)
		assert.Zero(t, order.Items[0].ID, "item ids are reset for the new document")
		assert.True(t, order.Total.Equal(quote.Total))
	})

	t.Run("fails on empty quote", func(t *testing.T) {
		quote, err := NewQuote(1, 2)
		require.NoError(t, err)

		_, err = quote.ConvertToOrder(3)
		assert.Error(t, err)
	})

	t.Run("fails when already converted", func(t *testing.T) {
		quote := newQuoteWithItem(t)
		require.NoError(t, quote.MarkConverted(5))

		_, err := quote.ConvertToOrder(3)
		assert.Error(t, err)
		assert.Error(t, quote.MarkConverted(6))
		assert.True(t, quote.IsConverted())
	})
}

func TestInvoicePayments(t *testing.T) {
	newInvoice := func(t *testing.T) *Invoice {
		invoice, err := NewInvoice(1, 2)
		require.NoError(t, err)
		invoice.AddItem(mustItem(t, "Hoodie", "10", "10"))
		return invoice
	}

	t.Run("registers partial and full payments", func(t *testing.T) {
		invoice := newInvoice(t)

		require.NoError(t, invoice.RegisterPayment(decimal.NewFromInt(40)))
		assert.False(t, invoice.IsPaid())
		assert.True(t, invoice.Outstanding().Equal(decimal.NewFromInt(60)))

		require.NoError(t, invoice.RegisterPayment(decimal.NewFromInt(60)))
		assert.True(t, invoice.IsPaid())
		assert.True(t, invoice.Outstanding().IsZero())
	})

	t.Run("rejects overpayment and non-positive amounts", func(t *testing.T) {
		invoice := newInvoice(t)

		assert.Error(t, invoice.RegisterPayment(decimal.NewFromInt(101)))
		assert.Error(t, invoice.RegisterPayment(decimal.Zero))
	})

	t.Run("overdue only when unpaid past due date", func(t *testing.T) {
		invoice := newInvoice(t)
		invoice.SetDueDate(time.Now().Add(-24 * time.Hour))
		assert.True(t, invoice.IsOverdue())

		require.NoError(t, invoice.RegisterPayment(decimal.NewFromInt(100)))
		assert.False(t, invoice.IsOverdue())
	})
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("requires vendor name", func(t *testing.T) {
		_, err := NewPurchaseOrder(1, 2, "  ")
		assert.Error(t, err)
	})

	t.Run("creates and updates vendor", func(t *testing.T) {
		po, err := NewPurchaseOrder(1, 2, "Knitwear Ltd")
		require.NoError(t, err)

		require.NoError(t, po.SetVendorName("Fabrics Inc"))
		assert.Equal(t, "Fabrics Inc", po.VendorName)
		assert.Error(t, po.SetVendorName(""))
	})
}
