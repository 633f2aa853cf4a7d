package store

import "audira/pkg/domain"

type OrderUpdate struct {
	Status *domain.OrderStatus
	Items  *[]domain.CartItem
	Total  *float64
}

type PaymentUpdate struct {
	Status *domain.PaymentStatus
}

func (m *Memory) ListProducts() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out
}

func (m *Memory) GetProduct(id string) (domain.Product, bool) {
	m.mu.RLock()
	p, ok := m.products[id]
	m.mu.RUnlock()
	return p, ok
}

func (m *Memory) ListCategories() []domain.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out
}

// GetCart returns the user's cart with a detached copy of its line items.
func (m *Memory) GetCart(userID string) (domain.Cart, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cart, ok := m.carts[userID]
	if ok {
		cart.Items = append([]domain.CartItem(nil), cart.Items...)
	}
	return cart, ok
}

func (m *Memory) CreateCart(cart domain.Cart) {
	m.mu.Lock()
	m.carts[cart.UserID] = cart
	m.mu.Unlock()
}

func (m *Memory) DeleteCart(userID string) bool {
	m.mu.Lock()
	_, ok := m.carts[userID]
	delete(m.carts, userID)
	m.mu.Unlock()
	return ok
}

// AddItemToCart inserts a line item, creating the cart on first use. When a
// line with the same item id exists its quantity is incremented instead of
// duplicating the line. The cart total is recomputed before returning.
func (m *Memory) AddItemToCart(userID string, item domain.CartItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		cart = domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	}
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ItemID == item.ItemID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}
	cart.TotalAmount = cartTotal(cart.Items)
	m.carts[userID] = cart
}

// UpdateCartItem sets the quantity of an existing line item and recomputes
// the total. Reports false when the cart or the line does not exist.
func (m *Memory) UpdateCartItem(userID, itemID string, quantity int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		return false
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].ItemID == itemID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return false
	}
	cart.TotalAmount = cartTotal(cart.Items)
	m.carts[userID] = cart
	return true
}

// RemoveCartItem drops a line item and recomputes the total. Reports false
// when the cart does not exist.
func (m *Memory) RemoveCartItem(userID, itemID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		return false
	}
	filtered := cart.Items[:0:0]
	for _, it := range cart.Items {
		if it.ItemID != itemID {
			filtered = append(filtered, it)
		}
	}
	cart.Items = filtered
	cart.TotalAmount = cartTotal(cart.Items)
	m.carts[userID] = cart
	return true
}

func cartTotal(items []domain.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (m *Memory) GetOrder(id string) (domain.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if ok {
		o.Items = append([]domain.CartItem(nil), o.Items...)
	}
	return o, ok
}

// ListOrdersByUser scans all orders placed by the given user.
func (m *Memory) ListOrdersByUser(userID string) []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (m *Memory) CreateOrder(o domain.Order) {
	m.mu.Lock()
	m.orders[o.ID] = o
	m.mu.Unlock()
}

func (m *Memory) UpdateOrder(id string, upd OrderUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return false
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.Items != nil {
		o.Items = append([]domain.CartItem(nil), (*upd.Items)...)
	}
	if upd.Total != nil {
		o.Total = *upd.Total
	}
	m.orders[id] = o
	return true
}

func (m *Memory) DeleteOrder(id string) bool {
	m.mu.Lock()
	_, ok := m.orders[id]
	delete(m.orders, id)
	m.mu.Unlock()
	return ok
}

func (m *Memory) GetPayment(id string) (domain.Payment, bool) {
	m.mu.RLock()
	p, ok := m.payments[id]
	m.mu.RUnlock()
	return p, ok
}

// ListPaymentsByUser scans all payments made by the given user.
func (m *Memory) ListPaymentsByUser(userID string) []domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Payment, 0)
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (m *Memory) CreatePayment(p domain.Payment) {
	m.mu.Lock()
	m.payments[p.ID] = p
	m.mu.Unlock()
}

func (m *Memory) UpdatePayment(id string, upd PaymentUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return false
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	m.payments[id] = p
	return true
}
