package cart

// Line is one distinct menu item held in the cart. Name, price and image are
// snapshots taken when the item was first added.
type Line struct {
	ItemID    string  `bson:"itemId" json:"itemId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Cart holds the shopper's pending selection. Lines keep insertion order and
// every line's quantity is at least 1; a line whose quantity would drop below
// 1 is removed instead.
type Cart struct {
	Lines []Line `bson:"lines" json:"lines"`
}

// AddItem increments the quantity of an existing line by one, or appends a
// new line with quantity 1. On repeat adds the stored name, price and image
// are kept as first seen; the freshly supplied values are ignored.
func (c *Cart) AddItem(itemID, name string, unitPrice float64, image string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Image:     image,
		Quantity:  1,
	})
}

// RemoveItem deletes the line with the given id. Removing an absent id is a
// no-op, not an error.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to the given value. A quantity below 1
// removes the line. Absent ids are ignored.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(itemID)
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItemCount returns the sum of quantities across all lines.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of unitPrice*quantity across all lines. It is
// recomputed on every call so it always reflects the latest mutation.
func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, line := range c.Lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
