package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanOrderRow maps one order row onto an OrderResponse. The scan argument
// order must match the SELECT column order used by the query handlers.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id       uuid.UUID
		taxCents int64
		status   int
		reason   *string
		sentAt   *time.Time
		response OrderResponse
	)

	err := scan(
		&id,
		&response.ExternalID,
		&response.CustomerID,
		&taxCents,
		&status,
		&reason,
		&response.CreatedAt,
		&sentAt,
		&response.DeliveryAttempts,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.ID = orderID

	tax, err := kernel.NewMoney(taxCents)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Tax = tax

	response.Status = order.Status(status).String()
	if reason != nil {
		response.CancellationReason = *reason
	}
	response.SentAt = sentAt

	return response, nil
}

// fetchOrderLines loads the line items belonging to one order.
func fetchOrderLines(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			price_cents
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var priceCents int64

		if err = rows.Scan(&line.ProductID, &line.Quantity, &priceCents); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoney(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		line.Price = price

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
