package app

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"audira/pkg/auth"
	"audira/pkg/domain"
	"audira/pkg/store"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ProductFilter narrows the product listing. Zero values mean "no filter".
type ProductFilter struct {
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
}

// PaymentInput holds the fields for initiating a payment.
type PaymentInput struct {
	Amount        float64
	Currency      string
	PaymentMethod string
	OrderID       string
}

// WebhookEvent is the payment gateway's callback payload.
type WebhookEvent struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// StoreFilters are the facets the storefront offers. Fixed until the catalog
// is big enough to derive them from live data.
type StoreFilters struct {
	Categories  []string `json:"categories"`
	Brands      []string `json:"brands"`
	PriceRanges []string `json:"priceRanges"`
}

// CartSummary totals a cart without its line items.
type CartSummary struct {
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`
	ItemCount   int     `json:"itemCount"`
}

// Products lists the merch catalog, optionally filtered by price and stock.
func (a *App) Products(f ProductFilter) []domain.Product {
	all := a.store.ListProducts()
	out := all[:0:0]
	for _, p := range all {
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Product looks up one product.
func (a *App) Product(id string) (domain.Product, error) {
	p, ok := a.store.GetProduct(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// Categories lists the store's product categories.
func (a *App) Categories() []domain.Category {
	return a.store.ListCategories()
}

// ProductFilters returns the storefront's filter facets.
func (a *App) ProductFilters() StoreFilters {
	return StoreFilters{
		Categories:  []string{"Apparel", "Music", "Tickets"},
		Brands:      []string{"Brand A", "Brand B", "Brand C"},
		PriceRanges: []string{"0-25", "25-50", "50-100", "100+"},
	}
}

// Cart returns the caller's cart. A user who never added anything gets an
// empty cart, not an error.
func (a *App) Cart(userID string) domain.Cart {
	cart, ok := a.store.GetCart(userID)
	if !ok {
		return domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	}
	return cart
}

// AddToCart puts quantity units of a product in the caller's cart, creating
// the cart on first use and merging repeat adds of the same product.
func (a *App) AddToCart(userID, productID string, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidInput)
	}
	product, ok := a.store.GetProduct(productID)
	if !ok {
		return domain.Cart{}, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	a.store.AddItemToCart(userID, domain.CartItem{
		ItemID:   product.ID,
		Name:     product.Name,
		Quantity: quantity,
		Price:    product.Price,
	})
	cart, _ := a.store.GetCart(userID)
	return cart, nil
}

// UpdateCartItem sets a cart line's quantity.
func (a *App) UpdateCartItem(userID, itemID string, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidInput)
	}
	if !a.store.UpdateCartItem(userID, itemID, quantity) {
		return domain.Cart{}, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	cart, _ := a.store.GetCart(userID)
	return cart, nil
}

// RemoveCartItem drops a line from the caller's cart.
func (a *App) RemoveCartItem(userID, itemID string) (domain.Cart, error) {
	if !a.store.RemoveCartItem(userID, itemID) {
		return domain.Cart{}, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	cart, _ := a.store.GetCart(userID)
	return cart, nil
}

// CartTotal summarizes the caller's cart. An absent cart sums to zero.
func (a *App) CartTotal(userID string) CartSummary {
	cart, _ := a.store.GetCart(userID)
	return CartSummary{
		TotalAmount: cart.TotalAmount,
		Currency:    "USD",
		ItemCount:   len(cart.Items),
	}
}

// ClearCart empties the caller's cart. Clearing an absent cart is a no-op.
func (a *App) ClearCart(userID string) {
	a.store.DeleteCart(userID)
}

// Orders lists the caller's orders.
func (a *App) Orders(userID string) []domain.Order {
	return a.store.ListOrdersByUser(userID)
}

// Order looks up one order. Owner only.
func (a *App) Order(actorID, id string) (domain.Order, error) {
	o, ok := a.store.GetOrder(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.UserID != actorID {
		return domain.Order{}, ErrForbidden
	}
	return o, nil
}

// PlaceOrder turns the caller's cart into a pending order and empties the
// cart. An empty cart cannot be ordered.
func (a *App) PlaceOrder(userID string) (domain.Order, error) {
	cart, ok := a.store.GetCart(userID)
	if !ok || len(cart.Items) == 0 {
		return domain.Order{}, fmt.Errorf("cart is empty: %w", ErrInvalidInput)
	}
	o := domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     cart.Items,
		Total:     cart.TotalAmount,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC(),
	}
	a.store.CreateOrder(o)
	a.store.DeleteCart(userID)
	return o, nil
}

// UpdateOrder applies a free-form edit to an order. Owner only. Status
// writes are not checked against a transition table.
func (a *App) UpdateOrder(actorID, id string, upd store.OrderUpdate) (domain.Order, error) {
	o, ok := a.store.GetOrder(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.UserID != actorID {
		return domain.Order{}, ErrForbidden
	}
	a.store.UpdateOrder(id, upd)
	updated, _ := a.store.GetOrder(id)
	return updated, nil
}

// DeleteOrder removes an order outright. Owner only.
func (a *App) DeleteOrder(actorID, id string) error {
	o, ok := a.store.GetOrder(id)
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.UserID != actorID {
		return ErrForbidden
	}
	a.store.DeleteOrder(id)
	return nil
}

// CancelOrder moves an order to cancelled. Owner only. Orders are not
// checked against a transition table; even a delivered order can be
// cancelled.
func (a *App) CancelOrder(actorID, id string) (domain.Order, error) {
	o, ok := a.store.GetOrder(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if o.UserID != actorID {
		return domain.Order{}, ErrForbidden
	}
	cancelled := domain.OrderCancelled
	a.store.UpdateOrder(id, store.OrderUpdate{Status: &cancelled})
	updated, _ := a.store.GetOrder(id)
	return updated, nil
}

// Payments lists the caller's payments.
func (a *App) Payments(userID string) []domain.Payment {
	return a.store.ListPaymentsByUser(userID)
}

// Payment looks up one payment. Owner only.
func (a *App) Payment(actorID, id string) (domain.Payment, error) {
	p, ok := a.store.GetPayment(id)
	if !ok {
		return domain.Payment{}, fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	if p.UserID != actorID {
		return domain.Payment{}, ErrForbidden
	}
	return p, nil
}

// InitiatePayment opens a pending payment. Amount must be positive and the
// currency an ISO 4217 alpha code.
func (a *App) InitiatePayment(userID string, in PaymentInput) (domain.Payment, error) {
	if in.Amount <= 0 {
		return domain.Payment{}, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}
	if !currencyPattern.MatchString(in.Currency) {
		return domain.Payment{}, fmt.Errorf("currency must be a 3-letter code: %w", ErrInvalidInput)
	}
	p := domain.Payment{
		ID:            uuid.NewString(),
		Amount:        in.Amount,
		Currency:      in.Currency,
		Status:        domain.PaymentPending,
		PaymentMethod: in.PaymentMethod,
		UserID:        userID,
		OrderID:       in.OrderID,
		CreatedAt:     time.Now().UTC(),
	}
	a.store.CreatePayment(p)
	return p, nil
}

// HandlePaymentWebhook applies a gateway callback. Only completed and failed
// are accepted; anything else is rejected so a replayed or malformed event
// cannot corrupt payment state. When a webhook secret is configured the body
// signature must verify.
func (a *App) HandlePaymentWebhook(body []byte, signature string, event WebhookEvent) error {
	if a.webhookSecret != "" {
		if !auth.VerifyWebhookSignature(body, signature, a.webhookSecret) {
			return fmt.Errorf("bad webhook signature: %w", ErrUnauthorized)
		}
	}
	status := domain.PaymentStatus(strings.ToLower(event.Status))
	if status != domain.PaymentCompleted && status != domain.PaymentFailed {
		return fmt.Errorf("unsupported webhook status %q: %w", event.Status, ErrInvalidInput)
	}
	p, ok := a.store.GetPayment(event.PaymentID)
	if !ok {
		return fmt.Errorf("payment %s: %w", event.PaymentID, ErrNotFound)
	}
	a.store.UpdatePayment(event.PaymentID, store.PaymentUpdate{Status: &status})
	if status == domain.PaymentCompleted && p.OrderID != "" {
		paid := domain.OrderPaid
		a.store.UpdateOrder(p.OrderID, store.OrderUpdate{Status: &paid})
	}
	title := "Payment failed"
	message := fmt.Sprintf("Your payment of %.2f %s could not be processed.", p.Amount, p.Currency)
	if status == domain.PaymentCompleted {
		title = "Payment received"
		message = fmt.Sprintf("Your payment of %.2f %s was processed.", p.Amount, p.Currency)
	}
	a.notify(p.UserID, title, message)
	return nil
}
