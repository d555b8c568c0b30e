package models

// CartLine is a snapshot of a product taken when it was added to the cart.
// Later catalog edits do not change lines already in a cart.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart maps product IDs to line items. It is a plain value scoped to one
// browser session; persistence is handled by the caller. Every mutating
// method keeps the invariant that a stored line has quantity >= 1.
type Cart struct {
	Items map[uint]CartLine `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: map[uint]CartLine{}}
}

// Add inserts a new line with quantity 1 snapshotting the given product,
// or increments the quantity if the product is already in the cart.
func (c *Cart) Add(product *Product) {
	if c.Items == nil {
		c.Items = map[uint]CartLine{}
	}
	if line, ok := c.Items[product.ID]; ok {
		line.Quantity++
		c.Items[product.ID] = line
		return
	}
	c.Items[product.ID] = CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	}
}

// Remove deletes the line for productID. Removing an absent product is a no-op;
// the returned bool reports whether a line was actually deleted.
func (c *Cart) Remove(productID uint) bool {
	if _, ok := c.Items[productID]; !ok {
		return false
	}
	delete(c.Items, productID)
	return true
}

// SetQuantity sets the line's quantity to max(quantity, 1). Non-positive
// input is clamped, never rejected. Absent product is a no-op.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	line, ok := c.Items[productID]
	if !ok {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity
	c.Items[productID] = line
}

// Increase adds 1 to the line's quantity.
func (c *Cart) Increase(productID uint) {
	line, ok := c.Items[productID]
	if !ok {
		return
	}
	line.Quantity++
	c.Items[productID] = line
}

// Decrease subtracts 1 from the line's quantity but never below 1.
// Decrementing never removes a line; only Remove does that.
func (c *Cart) Decrease(productID uint) {
	line, ok := c.Items[productID]
	if !ok {
		return
	}
	if line.Quantity <= 1 {
		return
	}
	line.Quantity--
	c.Items[productID] = line
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = map[uint]CartLine{}
}

// Total sums unit price times quantity over all lines. Empty cart totals 0.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Items {
		total += line.Subtotal()
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
