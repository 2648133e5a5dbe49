package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a value object representing a single order line: a product, the
// quantity ordered, and the unit price. Lines are immutable once created
// and an order carries at least one of them.
type Line struct {
	productID int64
	quantity  int
	price     kernel.Money

	isConstructed bool
}

// NewLine creates a validated order line.
// Quantity must be at least 1 and the unit price strictly positive.
func NewLine(productID int64, quantity int, price kernel.Money) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setPrice(price),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the ordered product.
func (l Line) ProductID() int64 {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// Price returns the unit price.
func (l Line) Price() kernel.Money {
	return l.price
}

// Total returns quantity times unit price.
func (l Line) Total() kernel.Money {
	return l.price.MulInt(l.quantity)
}

func (l *Line) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	l.price = price
	return nil
}
