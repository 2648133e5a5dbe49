package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body for order creation.
type CreateOrderRequest struct {
	ExternalID int64              `json:"external_id"`
	CustomerID int64              `json:"customer_id"`
	Lines      []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one line item in an order creation request.
// Prices are integer cents.
type OrderLineRequest struct {
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

// CancelOrderRequest is the request body for order cancellation.
type CancelOrderRequest struct {
	Justification string `json:"justification"`
}

// DispatchResponse reports the outcome of one dispatch cycle.
type DispatchResponse struct {
	Delivered int `json:"delivered"`
}

// Order is the response representation of one order.
type Order struct {
	ID                 string      `json:"id"`
	ExternalID         int64       `json:"external_id"`
	CustomerID         int64       `json:"customer_id"`
	TaxCents           int64       `json:"tax_cents"`
	Status             string      `json:"status"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	SentAt             *time.Time  `json:"sent_at,omitempty"`
	DeliveryAttempts   int         `json:"delivery_attempts"`
	Lines              []OrderLine `json:"lines"`
}

// OrderLine is the response representation of one line item.
type OrderLine struct {
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

// orderFromProjection maps a domain snapshot onto the response shape.
func orderFromProjection(snapshot order.Projection) Order {
	lines := make([]OrderLine, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		lines[i] = OrderLine{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			PriceCents: line.Price.Cents(),
		}
	}

	return Order{
		ID:                 snapshot.ID.String(),
		ExternalID:         snapshot.ExternalID,
		CustomerID:         snapshot.CustomerID,
		TaxCents:           snapshot.Tax.Cents(),
		Status:             snapshot.Status,
		CancellationReason: snapshot.CancellationReason,
		CreatedAt:          snapshot.CreatedAt,
		SentAt:             snapshot.SentAt,
		DeliveryAttempts:   snapshot.DeliveryAttempts,
		Lines:              lines,
	}
}

// orderFromQueryResponse maps a query result onto the response shape.
func orderFromQueryResponse(result queries.OrderResponse) Order {
	lines := make([]OrderLine, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = OrderLine{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			PriceCents: line.Price.Cents(),
		}
	}

	return Order{
		ID:                 result.ID.String(),
		ExternalID:         result.ExternalID,
		CustomerID:         result.CustomerID,
		TaxCents:           result.Tax.Cents(),
		Status:             result.Status,
		CancellationReason: result.CancellationReason,
		CreatedAt:          result.CreatedAt,
		SentAt:             result.SentAt,
		DeliveryAttempts:   result.DeliveryAttempts,
		Lines:              lines,
	}
}
