package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// Projection is a read-only, derived view of an Order used for external
// consumption: delivery to the destination system, created-order
// notifications, and transport responses. It is a value snapshot; mutating
// it never affects the aggregate it was derived from.
type Projection struct {
	ID                 kernel.UUID
	ExternalID         int64
	CustomerID         int64
	Tax                kernel.Money
	Status             string
	CancellationReason string
	CreatedAt          time.Time
	SentAt             *time.Time
	DeliveryAttempts   int
	Lines              []LineProjection
}

// LineProjection is the read-only view of a single order line.
type LineProjection struct {
	ProductID int64
	Quantity  int
	Price     kernel.Money
}

// Projection derives the read-only view of the order's current state.
func (o *Order) Projection() Projection {
	lines := make([]LineProjection, len(o.lines))
	for i, line := range o.lines {
		lines[i] = LineProjection{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			Price:     line.Price(),
		}
	}

	var sentAt *time.Time
	if o.sentAt != nil {
		t := *o.sentAt
		sentAt = &t
	}

	return Projection{
		ID:                 o.id,
		ExternalID:         o.externalID,
		CustomerID:         o.customerID,
		Tax:                o.tax,
		Status:             o.status.String(),
		CancellationReason: o.cancellationReason,
		CreatedAt:          o.createdAt,
		SentAt:             sentAt,
		DeliveryAttempts:   o.deliveryAttempts,
		Lines:              lines,
	}
}
