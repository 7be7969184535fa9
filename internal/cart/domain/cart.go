package domain

import (
	"sync"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
)

// CartItem is a book plus a quantity. Identity is the book id.
type CartItem struct {
	catalogdomain.Book
	Quantity int `json:"quantity"`
}

// Cart is the session-scoped cart store. It holds at most one entry per
// book id, preserves insertion order, and never lets a quantity drop
// below 1. Totals are derived on read, never stored.
type Cart struct {
	mu    sync.RWMutex
	items []CartItem
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem inserts the book with quantity 1, or increments the existing
// entry's quantity by exactly 1. No other field of an existing entry changes.
func (c *Cart) AddItem(book catalogdomain.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[book.ID]; ok {
		c.items[i].Quantity++
		return
	}
	c.index[book.ID] = len(c.items)
	c.items = append(c.items, CartItem{Book: book, Quantity: 1})
}

// UpdateQuantity applies a delta to an entry's quantity, clamped at 1.
// An unknown id is a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	q := c.items[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.items[i].Quantity = q
}

// RemoveItem deletes an entry. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
}

// Items returns a copy of the cart entries in insertion order
func (c *Cart) Items() []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price times quantity over all entries
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities over all entries
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no entries
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// Clear empties the cart. The only caller is checkout completion.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.index = make(map[string]int)
}
