package models

import (
	"time"

	"github.com/crm/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// DocumentColumns holds the columns shared by every trade document table.
type DocumentColumns struct {
	BaseModel
	Number     string          `gorm:"type:varchar(30);not null;index"`
	CustomerID int64           `gorm:"not null;index"`
	StatusID   int64           `gorm:"not null"`
	Notes      string          `gorm:"type:text"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

func (c *DocumentColumns) toDomain() trade.Document {
	return trade.Document{
		BaseEntity: c.ToBaseEntity(),
		Number:     c.Number,
		CustomerID: c.CustomerID,
		StatusID:   c.StatusID,
		Notes:      c.Notes,
		Total:      c.Total,
	}
}

func (c *DocumentColumns) fromDomain(d *trade.Document) {
	c.FromBaseEntity(d.BaseEntity)
	c.Number = d.Number
	c.CustomerID = d.CustomerID
	c.StatusID = d.StatusID
	c.Notes = d.Notes
	c.Total = d.Total
}

// LineItemColumns holds the columns shared by every document item table.
// Each document type keeps its items in its own table; DocumentID
// references the owning document.
type LineItemColumns struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	DocumentID  int64           `gorm:"not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	SKU         string          `gorm:"type:varchar(50)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes       string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (c *LineItemColumns) toDomain() trade.LineItem {
	return trade.LineItem{
		ID:          c.ID,
		DocumentID:  c.DocumentID,
		ProductName: c.ProductName,
		SKU:         c.SKU,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		Amount:      c.Amount,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func lineItemColumnsFromDomain(item *trade.LineItem) LineItemColumns {
	return LineItemColumns{
		ID:          item.ID,
		DocumentID:  item.DocumentID,
		ProductName: item.ProductName,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Amount:      item.Amount,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// QuoteModel is the persistence model for the Quote aggregate root.
type QuoteModel struct {
	DocumentColumns
	ValidUntil       *time.Time
	ConvertedOrderID int64            `gorm:"not null;default:0;index"`
	Items            []QuoteItemModel `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the persistence model to a domain Quote entity.
func (m *QuoteModel) ToDomain() *trade.Quote {
	quote := &trade.Quote{
		Document:         m.toDomain(),
		ConvertedOrderID: m.ConvertedOrderID,
	}
	if m.ValidUntil != nil {
		quote.ValidUntil = *m.ValidUntil
	}
	quote.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		quote.Items[i] = item.toDomain()
	}
	return quote
}

// FromDomain populates the persistence model from a domain Quote entity.
func (m *QuoteModel) FromDomain(q *trade.Quote) {
	m.fromDomain(&q.Document)
	m.ValidUntil = optionalTime(q.ValidUntil)
	m.ConvertedOrderID = q.ConvertedOrderID
	m.Items = make([]QuoteItemModel, len(q.Items))
	for i, item := range q.Items {
		m.Items[i] = QuoteItemModel{LineItemColumns: lineItemColumnsFromDomain(&item)}
	}
}

// QuoteModelFromDomain creates a new persistence model from a domain Quote entity.
func QuoteModelFromDomain(q *trade.Quote) *QuoteModel {
	m := &QuoteModel{}
	m.FromDomain(q)
	return m
}

// QuoteItemModel is the persistence model for quote line items.
type QuoteItemModel struct {
	LineItemColumns
}

// TableName returns the table name for GORM
func (QuoteItemModel) TableName() string {
	return "quote_items"
}

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	DocumentColumns
	QuoteID      int64 `gorm:"not null;default:0;index"`
	ShippingDate *time.Time
	Items        []OrderItemModel `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		Document: m.toDomain(),
		QuoteID:  m.QuoteID,
	}
	if m.ShippingDate != nil {
		order.ShippingDate = *m.ShippingDate
	}
	order.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		order.Items[i] = item.toDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.fromDomain(&o.Document)
	m.QuoteID = o.QuoteID
	m.ShippingDate = optionalTime(o.ShippingDate)
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{LineItemColumns: lineItemColumnsFromDomain(&item)}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for order line items.
type OrderItemModel struct {
	LineItemColumns
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	DocumentColumns
	OrderID    int64 `gorm:"not null;default:0;index"`
	DueDate    *time.Time
	AmountPaid decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Items      []InvoiceItemModel `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *trade.Invoice {
	invoice := &trade.Invoice{
		Document:   m.toDomain(),
		OrderID:    m.OrderID,
		AmountPaid: m.AmountPaid,
	}
	if m.DueDate != nil {
		invoice.DueDate = *m.DueDate
	}
	invoice.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		invoice.Items[i] = item.toDomain()
	}
	return invoice
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *trade.Invoice) {
	m.fromDomain(&inv.Document)
	m.OrderID = inv.OrderID
	m.DueDate = optionalTime(inv.DueDate)
	m.AmountPaid = inv.AmountPaid
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = InvoiceItemModel{LineItemColumns: lineItemColumnsFromDomain(&item)}
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *trade.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is the persistence model for invoice line items.
type InvoiceItemModel struct {
	LineItemColumns
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	DocumentColumns
	VendorName   string `gorm:"type:varchar(200);not null"`
	ExpectedDate *time.Time
	Items        []PurchaseOrderItemModel `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	po := &trade.PurchaseOrder{
		Document:   m.toDomain(),
		VendorName: m.VendorName,
	}
	if m.ExpectedDate != nil {
		po.ExpectedDate = *m.ExpectedDate
	}
	po.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		po.Items[i] = item.toDomain()
	}
	return po
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(po *trade.PurchaseOrder) {
	m.fromDomain(&po.Document)
	m.VendorName = po.VendorName
	m.ExpectedDate = optionalTime(po.ExpectedDate)
	m.Items = make([]PurchaseOrderItemModel, len(po.Items))
	for i, item := range po.Items {
		m.Items[i] = PurchaseOrderItemModel{LineItemColumns: lineItemColumnsFromDomain(&item)}
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(po *trade.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// PurchaseOrderItemModel is the persistence model for purchase order line items.
type PurchaseOrderItemModel struct {
	LineItemColumns
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// optionalTime maps the zero time to NULL so optional dates stay unset
// in the database.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
