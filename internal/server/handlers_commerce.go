package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"audira/internal/app"
	"audira/pkg/auth"
	"audira/pkg/domain"
	"audira/pkg/store"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartItemUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type orderUpdateRequest struct {
	Status *string            `json:"status"`
	Items  *[]domain.CartItem `json:"items"`
	Total  *float64           `json:"total"`
}

type paymentRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
	OrderID       string  `json:"orderId"`
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	q := r.URL.Query()
	var filter app.ProductFilter
	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}
	filter.InStockOnly = q.Get("inStock") == "true"
	limit, offset := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.app.Products(filter), limit, offset))
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/store/products/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "product not found")
		return
	}
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	product, err := s.app.Product(id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.Categories())
}

func (s *Server) handleStoreFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.ProductFilters())
}

func (s *Server) handleCartTotal(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.app.CartTotal(claims.UserID))
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.app.Cart(claims.UserID))
	case http.MethodDelete:
		s.app.ClearCart(claims.UserID)
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	cart, err := s.app.AddToCart(claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// /api/v1/cart/items/{itemId}
func (s *Server) handleCartItemByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	itemID := strings.TrimPrefix(r.URL.Path, "/api/v1/cart/items/")
	if itemID == "" || strings.Contains(itemID, "/") {
		s.notFound(w, r, "cart item not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req cartItemUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		cart, err := s.app.UpdateCartItem(claims.UserID, itemID, req.Quantity)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, cart)
	case http.MethodDelete:
		cart, err := s.app.RemoveCartItem(claims.UserID, itemID)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, cart)
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Orders(claims.UserID), limit, offset))
	case http.MethodPost:
		order, err := s.app.PlaceOrder(claims.UserID)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, order)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/orders/{id} plus cancel subresource.
func (s *Server) handleOrderByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/orders/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		s.notFound(w, r, "order not found")
		return
	}
	if len(parts) == 2 {
		if parts[1] != "cancel" || r.Method != http.MethodPost {
			s.notFound(w, r, "route not found")
			return
		}
		order, err := s.app.CancelOrder(claims.UserID, id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
		return
	}
	switch r.Method {
	case http.MethodGet:
		order, err := s.app.Order(claims.UserID, id)
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
	case http.MethodPut:
		var req orderUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		var status *domain.OrderStatus
		if req.Status != nil {
			st := domain.OrderStatus(*req.Status)
			status = &st
		}
		order, err := s.app.UpdateOrder(claims.UserID, id, store.OrderUpdate{
			Status: status,
			Items:  req.Items,
			Total:  req.Total,
		})
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
	case http.MethodDelete:
		if err := s.app.DeleteOrder(claims.UserID, id); err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		s.methodNotAllowed(w, r)
	}
}

func (s *Server) handlePayments(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := pageParams(r)
		writeJSON(w, http.StatusOK, paginate(s.app.Payments(claims.UserID), limit, offset))
	case http.MethodPost:
		var req paymentRequest
		if err := decodeJSON(r, &req); err != nil {
			s.badRequest(w, r, "invalid JSON body")
			return
		}
		payment, err := s.app.InitiatePayment(claims.UserID, app.PaymentInput{
			Amount:        req.Amount,
			Currency:      req.Currency,
			PaymentMethod: req.PaymentMethod,
			OrderID:       req.OrderID,
		})
		if err != nil {
			s.appError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, payment)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/payments/{id}
func (s *Server) handlePaymentByID(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/payments/")
	if id == "" || strings.Contains(id, "/") {
		s.notFound(w, r, "payment not found")
		return
	}
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	payment, err := s.app.Payment(claims.UserID, id)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// The gateway signs the raw body, so it is read before decoding.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.badRequest(w, r, "unreadable body")
		return
	}
	var event app.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}
	signature := r.Header.Get("X-Webhook-Signature")
	if err := s.app.HandlePaymentWebhook(body, signature, event); err != nil {
		s.appError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
