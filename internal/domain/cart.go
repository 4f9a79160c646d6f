package domain

// CartLineItem is one product in the cart together with its quantity.
// Quantity is at least 1 for as long as the line is in a cart.
type CartLineItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price times quantity for the line.
func (li CartLineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Cart is the ordered list of line items, at most one per product.
// Order is insertion order.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// Total is the sum of price times quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, li := range c.Items {
		total += li.Subtotal()
	}
	return total
}

// Count is the number of units in the cart, used for the header badge.
func (c Cart) Count() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Find returns the line for productID, if any.
func (c Cart) Find(productID int64) (CartLineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i], true
	}
	return CartLineItem{}, false
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

func (c Cart) indexOf(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// CartAction is a request to change the cart. The set of actions is closed:
// AddItem, RemoveItem and UpdateQuantity.
type CartAction interface {
	cartAction()
}

// AddItem adds one unit of Product.
type AddItem struct {
	Product Product
}

// RemoveItem drops the line for ProductID.
type RemoveItem struct {
	ProductID int64
}

// UpdateQuantity sets the quantity of the line for ProductID. Values of zero
// or below remove the line.
type UpdateQuantity struct {
	ProductID int64
	Quantity  int
}

func (AddItem) cartAction()        {}
func (RemoveItem) cartAction()     {}
func (UpdateQuantity) cartAction() {}

// ReduceCart applies action to cart and returns the next cart. It never
// modifies cart; unknown actions return an unchanged copy.
func ReduceCart(cart Cart, action CartAction) Cart {
	next := cart.Clone()

	switch a := action.(type) {
	case AddItem:
		if i := next.indexOf(a.Product.ID); i >= 0 {
			next.Items[i].Quantity++
			return next
		}
		next.Items = append(next.Items, CartLineItem{
			ProductID: a.Product.ID,
			Name:      a.Product.Name,
			Price:     a.Product.Price,
			Image:     a.Product.Image,
			Quantity:  1,
		})
	case RemoveItem:
		if i := next.indexOf(a.ProductID); i >= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}
	case UpdateQuantity:
		i := next.indexOf(a.ProductID)
		if i < 0 {
			return next
		}
		qty := max(a.Quantity, 0)
		if qty == 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
			return next
		}
		next.Items[i].Quantity = qty
	}
	return next
}
