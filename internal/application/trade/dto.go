package trade

import (
	"time"

	"github.com/crm/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// LineItemRequest represents a line item in a create or item request
type LineItemRequest struct {
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	SKU         string          `json:"sku" binding:"max=100"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateLineItemRequest represents a partial line item update
type UpdateLineItemRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Notes     *string          `json:"notes"`
}

// LineItemResponse represents a line item in API responses
type LineItemResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
}

// SetStatusRequest moves a document to another status
type SetStatusRequest struct {
	StatusID  int64  `json:"status_id" binding:"required,gt=0"`
	UserOwner string `json:"user_owner" binding:"max=100"`
}

// SetContactRequest assigns a contact of the given type to a document,
// replacing the one already assigned if any
type SetContactRequest struct {
	ContactType   string `json:"contact_type" binding:"required"`
	FirstName     string `json:"first_name" binding:"required,min=1,max=100"`
	LastName      string `json:"last_name" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber   string `json:"phone_number" binding:"max=50"`
	MobileNumber  string `json:"mobile_number" binding:"max=50"`
	PositionTitle string `json:"position_title" binding:"max=100"`
	UserOwner     string `json:"user_owner" binding:"max=100"`
}

// SetAddressRequest assigns an address of the given type to a document,
// replacing the one already assigned if any
type SetAddressRequest struct {
	AddressType string `json:"address_type" binding:"required"`
	Address1    string `json:"address1" binding:"required,min=1,max=200"`
	Address2    string `json:"address2" binding:"max=200"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"max=100"`
	Zip         string `json:"zip" binding:"max=20"`
	Country     string `json:"country" binding:"max=100"`
	UserOwner   string `json:"user_owner" binding:"max=100"`
}

// =============================================================================
// Quote DTOs
// =============================================================================

// CreateQuoteRequest represents a request to create a quote
type CreateQuoteRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required,gt=0"`
	StatusID   int64             `json:"status_id" binding:"required,gt=0"`
	Notes      string            `json:"notes"`
	ValidUntil *time.Time        `json:"valid_until"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
	UserOwner  string            `json:"user_owner" binding:"max=100"`
}

// UpdateQuoteRequest represents a partial quote update
type UpdateQuoteRequest struct {
	Notes      *string    `json:"notes"`
	ValidUntil *time.Time `json:"valid_until"`
	UserOwner  string     `json:"user_owner" binding:"max=100"`
}

// ConvertQuoteRequest converts a quote into an order
type ConvertQuoteRequest struct {
	OrderStatusID int64  `json:"order_status_id" binding:"required,gt=0"`
	UserOwner     string `json:"user_owner" binding:"max=100"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID               int64              `json:"id"`
	Number           string             `json:"number"`
	CustomerID       int64              `json:"customer_id"`
	StatusID         int64              `json:"status_id"`
	Notes            string             `json:"notes"`
	ValidUntil       *time.Time         `json:"valid_until,omitempty"`
	ConvertedOrderID int64              `json:"converted_order_id,omitempty"`
	Items            []LineItemResponse `json:"items"`
	Total            decimal.Decimal    `json:"total"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// =============================================================================
// Order DTOs
// =============================================================================

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerID   int64             `json:"customer_id" binding:"required,gt=0"`
	StatusID     int64             `json:"status_id" binding:"required,gt=0"`
	Notes        string            `json:"notes"`
	ShippingDate *time.Time        `json:"shipping_date"`
	Items        []LineItemRequest `json:"items" binding:"dive"`
	UserOwner    string            `json:"user_owner" binding:"max=100"`
}

// UpdateOrderRequest represents a partial order update
type UpdateOrderRequest struct {
	Notes        *string    `json:"notes"`
	ShippingDate *time.Time `json:"shipping_date"`
	UserOwner    string     `json:"user_owner" binding:"max=100"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           int64              `json:"id"`
	Number       string             `json:"number"`
	CustomerID   int64              `json:"customer_id"`
	StatusID     int64              `json:"status_id"`
	QuoteID      int64              `json:"quote_id,omitempty"`
	Notes        string             `json:"notes"`
	ShippingDate *time.Time         `json:"shipping_date,omitempty"`
	Items        []LineItemResponse `json:"items"`
	Total        decimal.Decimal    `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required,gt=0"`
	StatusID   int64             `json:"status_id" binding:"required,gt=0"`
	OrderID    int64             `json:"order_id" binding:"omitempty,gt=0"`
	Notes      string            `json:"notes"`
	DueDate    *time.Time        `json:"due_date"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
	UserOwner  string            `json:"user_owner" binding:"max=100"`
}

// UpdateInvoiceRequest represents a partial invoice update
type UpdateInvoiceRequest struct {
	Notes     *string    `json:"notes"`
	DueDate   *time.Time `json:"due_date"`
	UserOwner string     `json:"user_owner" binding:"max=100"`
}

// RegisterPaymentRequest records a payment against an invoice
type RegisterPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	UserOwner string          `json:"user_owner" binding:"max=100"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          int64              `json:"id"`
	Number      string             `json:"number"`
	CustomerID  int64              `json:"customer_id"`
	StatusID    int64              `json:"status_id"`
	OrderID     int64              `json:"order_id,omitempty"`
	Notes       string             `json:"notes"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Items       []LineItemResponse `json:"items"`
	Total       decimal.Decimal    `json:"total"`
	AmountPaid  decimal.Decimal    `json:"amount_paid"`
	Outstanding decimal.Decimal    `json:"outstanding"`
	Paid        bool               `json:"paid"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// =============================================================================
// Purchase order DTOs
// =============================================================================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	CustomerID   int64             `json:"customer_id" binding:"required,gt=0"`
	StatusID     int64             `json:"status_id" binding:"required,gt=0"`
	VendorName   string            `json:"vendor_name" binding:"required,min=1,max=200"`
	Notes        string            `json:"notes"`
	ExpectedDate *time.Time        `json:"expected_date"`
	Items        []LineItemRequest `json:"items" binding:"dive"`
	UserOwner    string            `json:"user_owner" binding:"max=100"`
}

// UpdatePurchaseOrderRequest represents a partial purchase order update
type UpdatePurchaseOrderRequest struct {
	VendorName   *string    `json:"vendor_name" binding:"omitempty,min=1,max=200"`
	Notes        *string    `json:"notes"`
	ExpectedDate *time.Time `json:"expected_date"`
	UserOwner    string     `json:"user_owner" binding:"max=100"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID           int64              `json:"id"`
	Number       string             `json:"number"`
	CustomerID   int64              `json:"customer_id"`
	StatusID     int64              `json:"status_id"`
	VendorName   string             `json:"vendor_name"`
	Notes        string             `json:"notes"`
	ExpectedDate *time.Time         `json:"expected_date,omitempty"`
	Items        []LineItemResponse `json:"items"`
	Total        decimal.Decimal    `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

func toLineItemResponses(items []trade.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for idx := range items {
		responses[idx] = LineItemResponse{
			ID:          items[idx].ID,
			ProductName: items[idx].ProductName,
			SKU:         items[idx].SKU,
			Quantity:    items[idx].Quantity,
			UnitPrice:   items[idx].UnitPrice,
			Amount:      items[idx].Amount,
			Notes:       items[idx].Notes,
		}
	}
	return responses
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ToQuoteResponse converts a quote to its response form
func ToQuoteResponse(quote *trade.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               quote.ID,
		Number:           quote.Number,
		CustomerID:       quote.CustomerID,
		StatusID:         quote.StatusID,
		Notes:            quote.Notes,
		ValidUntil:       optionalTime(quote.ValidUntil),
		ConvertedOrderID: quote.ConvertedOrderID,
		Items:            toLineItemResponses(quote.Items),
		Total:            quote.Total,
		CreatedAt:        quote.CreatedAt,
		UpdatedAt:        quote.UpdatedAt,
	}
}

// ToOrderResponse converts an order to its response form
func ToOrderResponse(order *trade.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		Number:       order.Number,
		CustomerID:   order.CustomerID,
		StatusID:     order.StatusID,
		QuoteID:      order.QuoteID,
		Notes:        order.Notes,
		ShippingDate: optionalTime(order.ShippingDate),
		Items:        toLineItemResponses(order.Items),
		Total:        order.Total,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToInvoiceResponse converts an invoice to its response form
func ToInvoiceResponse(invoice *trade.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          invoice.ID,
		Number:      invoice.Number,
		CustomerID:  invoice.CustomerID,
		StatusID:    invoice.StatusID,
		OrderID:     invoice.OrderID,
		Notes:       invoice.Notes,
		DueDate:     optionalTime(invoice.DueDate),
		Items:       toLineItemResponses(invoice.Items),
		Total:       invoice.Total,
		AmountPaid:  invoice.AmountPaid,
		Outstanding: invoice.Outstanding(),
		Paid:        invoice.IsPaid(),
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}

// ToPurchaseOrderResponse converts a purchase order to its response form
func ToPurchaseOrderResponse(po *trade.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:           po.ID,
		Number:       po.Number,
		CustomerID:   po.CustomerID,
		StatusID:     po.StatusID,
		VendorName:   po.VendorName,
		Notes:        po.Notes,
		ExpectedDate: optionalTime(po.ExpectedDate),
		Items:        toLineItemResponses(po.Items),
		Total:        po.Total,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
}
