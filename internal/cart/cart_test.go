package cart

import "testing"

func TestAddItemDistinctIDsAppendLines(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Paneer Tikka", 120, "a.jpg")
	c.AddItem("b", "Butter Naan", 30, "b.jpg")
	c.AddItem("c", "Lassi", 60, "c.jpg")

	if len(c.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(c.Lines))
	}
	if c.TotalItemCount() != 3 {
		t.Fatalf("expected total item count 3, got %d", c.TotalItemCount())
	}
	if c.Lines[0].ItemID != "a" || c.Lines[1].ItemID != "b" || c.Lines[2].ItemID != "c" {
		t.Fatalf("expected insertion order a,b,c, got %+v", c.Lines)
	}
}

func TestAddItemRepeatIncrementsQuantityOnly(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Paneer Tikka", 120, "a.jpg")
	c.AddItem("a", "Paneer Tikka Special", 150, "new.jpg")
	c.AddItem("a", "Paneer Tikka", 120, "a.jpg")

	if len(c.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", c.Lines[0].Quantity)
	}
	if c.Lines[0].Name != "Paneer Tikka" || c.Lines[0].UnitPrice != 120 || c.Lines[0].Image != "a.jpg" {
		t.Fatalf("expected first-seen values to win, got %+v", c.Lines[0])
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Paneer Tikka", 120, "")
	c.RemoveItem("a")
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart after remove, got %d lines", len(c.Lines))
	}

	c.RemoveItem("a")
	c.RemoveItem("missing")
	if len(c.Lines) != 0 {
		t.Fatalf("expected removing absent ids to be a no-op, got %d lines", len(c.Lines))
	}
}

func TestSetQuantity(t *testing.T) {
	c := &Cart{}
	c.AddItem("a", "Paneer Tikka", 120, "")

	c.SetQuantity("a", 5)
	if c.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Lines[0].Quantity)
	}

	c.SetQuantity("missing", 3)
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 5 {
		t.Fatalf("expected absent id to be ignored, got %+v", c.Lines)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1, -10} {
		c := &Cart{}
		c.AddItem("a", "Paneer Tikka", 120, "")
		c.SetQuantity("a", quantity)
		if len(c.Lines) != 0 {
			t.Fatalf("expected line removed for quantity=%d, got %+v", quantity, c.Lines)
		}
	}
}

func TestSubtotalReflectsEveryMutation(t *testing.T) {
	c := &Cart{}
	if c.Subtotal() != 0 {
		t.Fatalf("expected empty cart subtotal 0, got %v", c.Subtotal())
	}

	c.AddItem("a", "Paneer Tikka", 120, "")
	c.AddItem("b", "Butter Naan", 30, "")
	if got := c.Subtotal(); got != 150 {
		t.Fatalf("expected subtotal 150, got %v", got)
	}

	c.SetQuantity("b", 4)
	if got := c.Subtotal(); got != 240 {
		t.Fatalf("expected subtotal 240 after quantity change, got %v", got)
	}

	c.RemoveItem("a")
	if got := c.Subtotal(); got != 120 {
		t.Fatalf("expected subtotal 120 after removal, got %v", got)
	}

	c.Clear()
	if got := c.Subtotal(); got != 0 {
		t.Fatalf("expected subtotal 0 after clear, got %v", got)
	}
	if c.TotalItemCount() != 0 {
		t.Fatalf("expected item count 0 after clear, got %d", c.TotalItemCount())
	}
}
