// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient duplicate detection and dispatch eligibility scans.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID         int64     `gorm:"uniqueIndex"`
	CustomerID         int64     `gorm:"index"`
	TaxCents           int64
	Status             int `gorm:"index"`
	CancellationReason *string
	CreatedAt          time.Time
	SentAt             *time.Time
	DeliveryAttempts   int
	Lines              []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one line item row belonging to an order.
type OrderLineDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  int64
	Quantity   int
	PriceCents int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var reason *string
	if r := aggregate.CancellationReason(); r != "" {
		reason = &r
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  line.ProductID(),
			Quantity:   line.Quantity(),
			PriceCents: line.Price().Cents(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		ExternalID:         aggregate.ExternalID(),
		CustomerID:         aggregate.CustomerID(),
		TaxCents:           aggregate.Tax().Cents(),
		Status:             int(aggregate.Status()),
		CancellationReason: reason,
		CreatedAt:          aggregate.CreatedAt(),
		SentAt:             aggregate.SentAt(),
		DeliveryAttempts:   aggregate.DeliveryAttempts(),
		Lines:              lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, tax, and the
// delivery-attempt counter using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		price, priceErr := kernel.NewMoney(lineDTO.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(lineDTO.ProductID, lineDTO.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	tax, err := kernel.NewMoney(dto.TaxCents)
	if err != nil {
		return nil, err
	}

	var reason string
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}

	return order.RestoreOrder(
		id,
		dto.ExternalID,
		dto.CustomerID,
		lines,
		tax,
		order.Status(dto.Status),
		reason,
		dto.CreatedAt,
		dto.SentAt,
		dto.DeliveryAttempts,
	)
}
