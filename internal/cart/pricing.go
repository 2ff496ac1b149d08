package cart

// DeliveryFee is a flat charge in whole rupees applied to every order.
const DeliveryFee = 40.0

// TaxRate is applied to the subtotal only, not to subtotal plus delivery fee.
const TaxRate = 0.05

// Totals carries every money figure shown before checkout. The same figures
// are written into the order at placement time; preview and persisted totals
// must never diverge.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// ComputeTotals derives the order total from the cart's current lines:
// total = subtotal + delivery fee + 5% tax on the subtotal. Amounts keep full
// float precision; rounding for display is the client's concern.
func ComputeTotals(c *Cart) Totals {
	subtotal := c.Subtotal()
	tax := subtotal * TaxRate
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       subtotal + DeliveryFee + tax,
	}
}
