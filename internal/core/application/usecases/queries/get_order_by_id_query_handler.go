package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order row plus its line items.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query, _ := NewGetOrderByIDQuery(orderID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", response.ID, response.Status)
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no order with
// the given id exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_id,
			customer_id,
			tax_cents,
			status,
			cancellation_reason,
			created_at,
			sent_at,
			delivery_attempts
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	lines, err := fetchOrderLines(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Lines = lines

	return response, nil
}
