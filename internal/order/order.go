package order

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
	"backend/internal/models"
)

// Build converts the cart into an immutable order. The cart lines are
// snapshotted, the total is computed with the same formula the cart preview
// uses, and for card payments only the last four digits and holder name are
// carried over. The caller persists the result and then clears the cart;
// those are two independent steps with no shared transaction.
func Build(c *cart.Cart, userID primitive.ObjectID, userName, address, paymentMethod string, card *CardDetails, now time.Time) (models.Order, error) {
	if c.IsEmpty() {
		return models.Order{}, EmptyCartError{}
	}

	if strings.TrimSpace(address) == "" {
		return models.Order{}, ValidationError{Field: "address", Message: "delivery address is required"}
	}

	var summary *models.PaymentSummary
	switch paymentMethod {
	case PaymentCard:
		if card == nil {
			return models.Order{}, ValidationError{Field: "paymentDetails", Message: "card details are required"}
		}
		if err := ValidateCard(*card, now); err != nil {
			return models.Order{}, err
		}
		summary = SummarizeCard(*card)
	case PaymentCashOnDelivery:
		// no payment details retained
	default:
		return models.Order{}, ValidationError{Field: "paymentMethod", Message: "payment method must be card or cash-on-delivery"}
	}

	items := make([]models.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, models.OrderItem{
			FoodID:   line.ItemID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
		})
	}

	totals := cart.ComputeTotals(c)

	return models.Order{
		ID:             NewID(),
		UserID:         userID,
		UserName:       userName,
		Items:          items,
		TotalAmount:    totals.Total,
		Status:         string(StatusPending),
		Address:        strings.TrimSpace(address),
		PaymentMethod:  paymentMethod,
		PaymentSummary: summary,
		CreatedAt:      now,
	}, nil
}
