package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
)

func book(id string, price float64) catalogdomain.Book {
	return catalogdomain.Book{
		ID:     id,
		Title:  "Book " + id,
		Author: "Author " + id,
		Price:  price,
	}
}

func TestAddItem(t *testing.T) {
	cart := NewCart()

	cart.AddItem(book("1", 19.99))
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// Adding the same book again bumps the quantity, not the line count
	cart.AddItem(book("1", 19.99))
	items = cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	cart.AddItem(book("2", 34.50))
	assert.Len(t, cart.Items(), 2)
}

func TestDerivedTotals(t *testing.T) {
	cart := NewCart()
	cart.AddItem(book("1", 19.99))
	cart.AddItem(book("1", 19.99))

	assert.InDelta(t, 39.98, cart.Total(), 1e-9)
	assert.Equal(t, 2, cart.Count())

	cart.AddItem(book("2", 10.00))
	assert.InDelta(t, 49.98, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name  string
		setup int // initial quantity
		delta int
		want  int
	}{
		{name: "increment", setup: 1, delta: 1, want: 2},
		{name: "decrement", setup: 3, delta: -1, want: 2},
		{name: "clamped at one", setup: 1, delta: -1, want: 1},
		{name: "large negative delta clamped", setup: 2, delta: -5, want: 1},
		{name: "zero delta", setup: 2, delta: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			for i := 0; i < tt.setup; i++ {
				cart.AddItem(book("1", 9.99))
			}
			cart.UpdateQuantity("1", tt.delta)
			assert.Equal(t, tt.want, cart.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	cart := NewCart()
	cart.AddItem(book("1", 9.99))

	cart.UpdateQuantity("missing", 5)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(book("1", 10))
	cart.AddItem(book("2", 20))
	cart.AddItem(book("3", 30))

	cart.RemoveItem("2")

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)

	// Index survives the removal: later ids still resolve
	cart.UpdateQuantity("3", 1)
	assert.Equal(t, 2, cart.Items()[1].Quantity)

	cart.RemoveItem("missing")
	assert.Len(t, cart.Items(), 2)
}

func TestInsertionOrderPreserved(t *testing.T) {
	cart := NewCart()
	cart.AddItem(book("3", 1))
	cart.AddItem(book("1", 1))
	cart.AddItem(book("2", 1))
	cart.AddItem(book("1", 1))

	items := cart.Items()
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "2", items[2].ID)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	assert.True(t, cart.IsEmpty())

	cart.AddItem(book("1", 10))
	assert.False(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
	assert.Zero(t, cart.Total())

	// A cleared cart accepts new items from scratch
	cart.AddItem(book("1", 10))
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
